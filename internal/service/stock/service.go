package stock

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mamadbah2/wms/internal/domain/models"
	"github.com/mamadbah2/wms/internal/repository/mongodb"
)

var (
	// ErrValidation indicates the mutation request is incomplete or malformed.
	ErrValidation = errors.New("invalid stock mutation")
	// ErrSubmitInProgress indicates another mutation for the product has not finished.
	ErrSubmitInProgress = errors.New("a stock mutation for this product is already in progress")
	// ErrWarehouseMismatch indicates the product is stored in another warehouse.
	ErrWarehouseMismatch = errors.New("product is not stored in the selected warehouse")
	// ErrSupplierMismatch indicates the product comes from another supplier.
	ErrSupplierMismatch = errors.New("product is not supplied by the selected supplier")
)

const dateLayout = "2006-01-02"

// Repository is the storage needed by the manage-stock workflow.
type Repository interface {
	mongodb.StockTransactor
	ListSuppliers(ctx context.Context) ([]models.Supplier, error)
	ListProductsBySupplierAndWarehouse(ctx context.Context, supplierID, warehouse string) ([]models.Product, error)
}

// Locker serializes mutations of one product. TryLock returns ok=false when
// key is already held; otherwise unlock releases exactly this acquisition.
type Locker interface {
	TryLock(ctx context.Context, key string) (unlock func(context.Context) error, ok bool, err error)
}

// Service applies stock mutations.
type Service struct {
	repo   Repository
	locker Locker
	logger *zap.Logger
	now    func() time.Time
	newID  func() string
}

// Option customizes a Service.
type Option func(*Service)

// WithLocker replaces the in-process submit guard, e.g. with a lock shared
// by several server instances.
func WithLocker(l Locker) Option {
	return func(s *Service) { s.locker = l }
}

// NewService wires a stock service.
func NewService(repo Repository, logger *zap.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		repo:   repo,
		locker: NewSubmitGuard(),
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListSuppliers returns the suppliers selectable in purchase mode.
func (s *Service) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	return s.repo.ListSuppliers(ctx)
}

// ListProducts returns the products selectable for a warehouse, optionally
// narrowed to a supplier.
func (s *Service) ListProducts(ctx context.Context, supplierID, warehouse string) ([]models.Product, error) {
	if !models.IsWarehouse(warehouse) {
		return nil, fmt.Errorf("%w: unknown warehouse %q", ErrValidation, warehouse)
	}
	return s.repo.ListProductsBySupplierAndWarehouse(ctx, strings.TrimSpace(supplierID), warehouse)
}

// Validate checks a request and converts it into a mutation. It never touches
// the repository.
func (s *Service) Validate(req models.StockMutationRequest) (models.StockMutation, error) {
	invalid := func(reason string) (models.StockMutation, error) {
		return models.StockMutation{}, fmt.Errorf("%w: %s", ErrValidation, reason)
	}

	switch {
	case req.Mode == "":
		return invalid("mode must be selected")
	case req.Warehouse == "":
		return invalid("warehouse must be selected")
	case strings.TrimSpace(req.ProductID) == "":
		return invalid("product must be selected")
	case req.Mode == models.ModePurchase && strings.TrimSpace(req.SupplierID) == "":
		return invalid("supplier must be selected")
	case req.Mode == models.ModePurchase && strings.TrimSpace(req.PurchasePrice) == "":
		return invalid("purchase price is required")
	case req.Mode == models.ModeFromOtherWarehouse && strings.TrimSpace(req.DispatchNote) == "":
		return invalid("dispatch note is required")
	}

	switch req.Mode {
	case models.ModePurchase:
		if !models.IsWarehouse(req.Warehouse) {
			return invalid(fmt.Sprintf("unknown warehouse %q", req.Warehouse))
		}
	case models.ModeFromOtherWarehouse:
		// stock only moves from the raw-material warehouse into finished goods
		if req.Warehouse != models.WarehouseFinished {
			return invalid(fmt.Sprintf("transfers must target %s", models.WarehouseFinished))
		}
	default:
		return invalid(fmt.Sprintf("unknown mode %q", req.Mode))
	}

	count, err := strconv.Atoi(strings.TrimSpace(req.Count))
	if err != nil || count < 0 {
		return invalid("quantity must be a non-negative whole number")
	}

	m := models.StockMutation{
		Mode:      req.Mode,
		Warehouse: req.Warehouse,
		ProductID: strings.TrimSpace(req.ProductID),
		NewCount:  count,
		CreatedAt: s.now().UTC(),
	}

	if req.Mode == models.ModePurchase {
		price, err := strconv.ParseFloat(strings.TrimSpace(req.PurchasePrice), 64)
		if err != nil || price < 0 {
			return invalid("purchase price must be a non-negative number")
		}
		m.PurchasePrice = price
		m.SupplierID = strings.TrimSpace(req.SupplierID)
	} else {
		m.DispatchNote = strings.TrimSpace(req.DispatchNote)
	}

	if created := strings.TrimSpace(req.CreatedAt); created != "" {
		t, err := parseDate(created)
		if err != nil {
			return invalid("date must be formatted as YYYY-MM-DD")
		}
		m.CreatedAt = t
	}

	return m, nil
}

// ApplyMutation validates req and, in one transaction, sets the product count,
// appends a purchase history record and appends a stock history record.
func (s *Service) ApplyMutation(ctx context.Context, req models.StockMutationRequest) (models.StockMutationResult, error) {
	m, err := s.Validate(req)
	if err != nil {
		return models.StockMutationResult{}, err
	}

	unlock, locked, err := s.locker.TryLock(ctx, m.ProductID)
	if err != nil {
		return models.StockMutationResult{}, fmt.Errorf("acquire submit lock: %w", err)
	}
	if !locked {
		return models.StockMutationResult{}, ErrSubmitInProgress
	}
	defer func() {
		if err := unlock(context.WithoutCancel(ctx)); err != nil {
			s.logger.Warn("failed to release submit lock", zap.String("product", m.ProductID), zap.Error(err))
		}
	}()

	var result models.StockMutationResult
	err = s.repo.RunStockTransaction(ctx, func(ctx context.Context, w mongodb.StockWriter) error {
		res, err := s.applyWithin(ctx, w, m)
		if err != nil {
			return err
		}
		result = res
		return nil
	})
	if err != nil {
		s.logger.Warn("stock mutation failed",
			zap.String("product", m.ProductID),
			zap.String("mode", string(m.Mode)),
			zap.Error(err))
		return models.StockMutationResult{}, err
	}

	s.logger.Info("stock mutation applied",
		zap.String("product", m.ProductID),
		zap.String("mode", string(m.Mode)),
		zap.String("warehouse", m.Warehouse),
		zap.Int("old_count", result.StockHistory.OldCount),
		zap.Int("new_count", result.StockHistory.Count))

	return result, nil
}

func (s *Service) applyWithin(ctx context.Context, w mongodb.StockWriter, m models.StockMutation) (models.StockMutationResult, error) {
	product, err := w.GetProduct(ctx, m.ProductID)
	if err != nil {
		return models.StockMutationResult{}, err
	}
	if product.WarehousePosition != m.Warehouse {
		return models.StockMutationResult{}, ErrWarehouseMismatch
	}
	if m.Mode == models.ModePurchase && product.Supplier != m.SupplierID {
		return models.StockMutationResult{}, ErrSupplierMismatch
	}

	if err := w.SetProductCount(ctx, product.ID, m.NewCount); err != nil {
		return models.StockMutationResult{}, err
	}

	purchase := models.PurchaseHistory{
		ID:           s.newID(),
		CreatedAt:    m.CreatedAt,
		Count:        m.NewCount,
		Product:      product.ID,
		DispatchNote: m.DispatchNote,
	}
	if m.Mode == models.ModePurchase {
		purchase.Supplier = m.SupplierID
		purchase.PurchasePrice = m.PurchasePrice
		purchase.PaymentStatus = models.PaymentUnpaid
	}
	if err := w.InsertPurchaseHistory(ctx, purchase); err != nil {
		return models.StockMutationResult{}, err
	}

	history := models.StockHistory{
		ID:                s.newID(),
		Product:           product.ID,
		OldCount:          product.Count,
		Count:             m.NewCount,
		Difference:        m.NewCount - product.Count,
		WarehousePosition: m.Warehouse,
		Type:              m.Mode.HistoryType(),
		CreatedAt:         m.CreatedAt,
		PurchaseHistory:   purchase.ID,
	}
	if err := w.InsertStockHistory(ctx, history); err != nil {
		return models.StockMutationResult{}, err
	}

	product.Count = m.NewCount
	return models.StockMutationResult{
		Product:         product,
		PurchaseHistory: purchase,
		StockHistory:    history,
	}, nil
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
