package voidlist

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/mamadbah2/wms/internal/domain/models"
)

// Repository reads the invoice collection.
type Repository interface {
	ListInvoices(ctx context.Context) ([]models.Invoice, error)
}

// Service serves the read-only void list.
type Service struct {
	repo   Repository
	logger *zap.Logger
}

// NewService wires a void list service.
func NewService(repo Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger}
}

// List fetches every invoice and returns the void list view of it, filtered by search.
func (s *Service) List(ctx context.Context, search string) ([]models.Invoice, error) {
	invoices, err := s.repo.ListInvoices(ctx)
	if err != nil {
		return nil, err
	}

	list := Filter(invoices, search)
	s.logger.Debug("void list fetched", zap.Int("fetched", len(invoices)), zap.Int("listed", len(list)), zap.String("search", search))
	return list, nil
}

// Get returns one entry of the void list with its line items. The seed record
// is not reachable.
func (s *Service) Get(ctx context.Context, id string) (models.Invoice, error) {
	list, err := s.List(ctx, "")
	if err != nil {
		return models.Invoice{}, err
	}
	for _, inv := range list {
		if inv.ID == id {
			return inv, nil
		}
	}
	return models.Invoice{}, fmt.Errorf("void invoice %s: %w", id, models.ErrNotFound)
}

// Filter drops the first fetched record (the collection's seed document),
// records without id or customer name, and records matching neither the id nor
// the customer name by case-insensitive substring.
func Filter(invoices []models.Invoice, search string) []models.Invoice {
	out := make([]models.Invoice, 0, len(invoices))
	if len(invoices) <= 1 {
		return out
	}

	needle := strings.ToLower(search)
	for _, inv := range invoices[1:] {
		if inv.ID == "" || inv.CustomerName == "" {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(inv.ID), needle) &&
			!strings.Contains(strings.ToLower(inv.CustomerName), needle) {
			continue
		}
		out = append(out, inv)
	}
	return out
}
