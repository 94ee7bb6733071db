package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/wms/internal/domain/models"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// VoidListService is the void list used by VoidListHandler.
type VoidListService interface {
	List(ctx context.Context, search string) ([]models.Invoice, error)
	Get(ctx context.Context, id string) (models.Invoice, error)
	Export(ctx context.Context, search string) ([]byte, error)
}

// VoidListHandler serves the read-only void list.
type VoidListHandler struct {
	svc    VoidListService
	logger *zap.Logger
	now    func() time.Time
}

// NewVoidListHandler constructs the void list HTTP adapter.
func NewVoidListHandler(svc VoidListService, logger *zap.Logger) *VoidListHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VoidListHandler{svc: svc, logger: logger, now: time.Now}
}

// List handles GET /void-list?search=.
func (h *VoidListHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Get handles GET /void-list/:id.
func (h *VoidListHandler) Get(c *gin.Context) {
	invoice, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// Export handles GET /void-list/export and streams an xlsx workbook.
func (h *VoidListHandler) Export(c *gin.Context) {
	data, err := h.svc.Export(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	filename := fmt.Sprintf("void-list-%s.xlsx", h.now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
