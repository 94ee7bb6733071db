package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/wms/internal/domain/models"
	"github.com/mamadbah2/wms/internal/metrics"
)

// StockService is the stock workflow used by StockHandler.
type StockService interface {
	ListSuppliers(ctx context.Context) ([]models.Supplier, error)
	ListProducts(ctx context.Context, supplierID, warehouse string) ([]models.Product, error)
	ApplyMutation(ctx context.Context, req models.StockMutationRequest) (models.StockMutationResult, error)
}

// StockHandler serves the manage-stock form.
type StockHandler struct {
	svc    StockService
	logger *zap.Logger
}

// NewStockHandler constructs the stock HTTP adapter.
func NewStockHandler(svc StockService, logger *zap.Logger) *StockHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StockHandler{svc: svc, logger: logger}
}

// ListSuppliers handles GET /suppliers.
func (h *StockHandler) ListSuppliers(c *gin.Context) {
	suppliers, err := h.svc.ListSuppliers(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, suppliers)
}

// ListProducts handles GET /products?supplier=&warehouse=.
func (h *StockHandler) ListProducts(c *gin.Context) {
	products, err := h.svc.ListProducts(c.Request.Context(), c.Query("supplier"), c.Query("warehouse"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// ApplyMutation handles POST /stock/mutations.
func (h *StockHandler) ApplyMutation(c *gin.Context) {
	var req models.StockMutationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	result, err := h.svc.ApplyMutation(c.Request.Context(), req)
	if err != nil {
		outcome := "failed"
		if statusFor(err) < http.StatusInternalServerError {
			outcome = "rejected"
		}
		metrics.StockMutationsTotal.WithLabelValues(string(req.Mode), outcome).Inc()
		respondError(c, h.logger, err)
		return
	}

	metrics.StockMutationsTotal.WithLabelValues(string(req.Mode), "applied").Inc()
	c.JSON(http.StatusCreated, result)
}
