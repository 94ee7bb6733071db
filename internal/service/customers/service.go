package customers

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/mamadbah2/wms/internal/domain/models"
)

var (
	// ErrMissingFields indicates a required customer field is empty.
	ErrMissingFields = errors.New("please fill in all fields")
	// ErrInvalidPhone indicates the phone number is not numeric.
	ErrInvalidPhone = errors.New("phone number must be numeric")
	// ErrZeroSpecialPrice indicates a special price of 0.
	ErrZeroSpecialPrice = errors.New("special price must not be 0")
)

// Repository is the storage needed by the customer pages.
type Repository interface {
	GetCustomer(ctx context.Context, id string) (models.Customer, error)
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	UpdateCustomer(ctx context.Context, customer models.Customer) error
	GetProduct(ctx context.Context, id string) (models.Product, error)
	SearchProductsByBrand(ctx context.Context, search string) ([]models.Product, error)
}

// Service edits customers and their special prices.
type Service struct {
	repo   Repository
	logger *zap.Logger
}

// NewService wires a customer service.
func NewService(repo Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger}
}

// IsValidationError reports whether err was produced by Validate.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingFields) || errors.Is(err, ErrInvalidPhone) || errors.Is(err, ErrZeroSpecialPrice)
}

// GetCustomer loads a customer with its special prices.
func (s *Service) GetCustomer(ctx context.Context, id string) (models.Customer, error) {
	return s.repo.GetCustomer(ctx, id)
}

// ListCustomers returns every customer.
func (s *Service) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	return s.repo.ListCustomers(ctx)
}

// SearchProducts finds special price candidates by brand prefix. Candidates
// are priced at the product's sell price.
func (s *Service) SearchProducts(ctx context.Context, brand string) ([]models.SpecialPrice, error) {
	products, err := s.repo.SearchProductsByBrand(ctx, brand)
	if err != nil {
		return nil, err
	}

	candidates := make([]models.SpecialPrice, 0, len(products))
	for _, p := range products {
		candidates = append(candidates, models.SpecialPriceFromProduct(p))
	}
	return candidates, nil
}

// Validate applies the edit-customer form rules.
func Validate(req models.UpdateCustomerRequest) error {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Address) == "" || strings.TrimSpace(req.PhoneNumber) == "" {
		return ErrMissingFields
	}

	if n, err := strconv.ParseFloat(strings.TrimSpace(req.PhoneNumber), 64); err != nil || math.IsNaN(n) {
		return ErrInvalidPhone
	}

	for _, sp := range req.SpecialPrices {
		if sp.Price == 0 {
			return fmt.Errorf("%w (product %s)", ErrZeroSpecialPrice, sp.ProductID)
		}
	}

	return nil
}

// UpdateCustomer validates req and overwrites the customer's fields and
// special price list in a single write.
func (s *Service) UpdateCustomer(ctx context.Context, id string, req models.UpdateCustomerRequest) (models.Customer, error) {
	if err := Validate(req); err != nil {
		return models.Customer{}, err
	}

	prices := req.SpecialPrices
	if prices == nil {
		prices = []models.SpecialPrice{}
	}

	customer := models.Customer{
		ID:            id,
		Name:          strings.TrimSpace(req.Name),
		Address:       strings.TrimSpace(req.Address),
		PhoneNumber:   strings.TrimSpace(req.PhoneNumber),
		SpecialPrices: prices,
	}

	if err := s.repo.UpdateCustomer(ctx, customer); err != nil {
		return models.Customer{}, err
	}

	s.logger.Info("customer updated", zap.String("customer", id), zap.Int("special_prices", len(prices)))
	return customer, nil
}

// ToggleSpecialPrice adds the product to the customer's overrides at its sell
// price, or removes it when already present, and persists the result.
func (s *Service) ToggleSpecialPrice(ctx context.Context, customerID, productID string) (models.Customer, error) {
	customer, err := s.repo.GetCustomer(ctx, customerID)
	if err != nil {
		return models.Customer{}, err
	}

	candidate := models.SpecialPrice{ProductID: productID}
	if !hasProduct(customer.SpecialPrices, productID) {
		product, err := s.repo.GetProduct(ctx, productID)
		if err != nil {
			return models.Customer{}, err
		}
		candidate = models.SpecialPriceFromProduct(product)
	}

	customer.SpecialPrices = models.ToggleSpecialPrice(customer.SpecialPrices, candidate)
	if err := s.repo.UpdateCustomer(ctx, customer); err != nil {
		return models.Customer{}, err
	}
	return customer, nil
}

func hasProduct(prices []models.SpecialPrice, productID string) bool {
	for _, sp := range prices {
		if sp.ProductID == productID {
			return true
		}
	}
	return false
}
