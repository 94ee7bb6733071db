package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/wms/internal/domain/models"
)

// CustomerService is the customer editing flow used by CustomerHandler.
type CustomerService interface {
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	GetCustomer(ctx context.Context, id string) (models.Customer, error)
	UpdateCustomer(ctx context.Context, id string, req models.UpdateCustomerRequest) (models.Customer, error)
	ToggleSpecialPrice(ctx context.Context, customerID, productID string) (models.Customer, error)
	SearchProducts(ctx context.Context, brand string) ([]models.SpecialPrice, error)
}

// CustomerHandler serves the customer edit page.
type CustomerHandler struct {
	svc    CustomerService
	logger *zap.Logger
}

// NewCustomerHandler constructs the customer HTTP adapter.
func NewCustomerHandler(svc CustomerService, logger *zap.Logger) *CustomerHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CustomerHandler{svc: svc, logger: logger}
}

// List handles GET /customers.
func (h *CustomerHandler) List(c *gin.Context) {
	list, err := h.svc.ListCustomers(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Get handles GET /customers/:id.
func (h *CustomerHandler) Get(c *gin.Context) {
	customer, err := h.svc.GetCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// Update handles PUT /customers/:id. The special price list in the body
// replaces the stored one.
func (h *CustomerHandler) Update(c *gin.Context) {
	var req models.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	customer, err := h.svc.UpdateCustomer(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// ToggleSpecialPrice handles POST /customers/:id/special-prices/:productId/toggle.
func (h *CustomerHandler) ToggleSpecialPrice(c *gin.Context) {
	customer, err := h.svc.ToggleSpecialPrice(c.Request.Context(), c.Param("id"), c.Param("productId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// SearchProducts handles GET /products/search?brand=.
func (h *CustomerHandler) SearchProducts(c *gin.Context) {
	results, err := h.svc.SearchProducts(c.Request.Context(), c.Query("brand"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, results)
}
