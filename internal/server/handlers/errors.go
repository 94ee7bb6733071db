package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/wms/internal/auth"
	"github.com/mamadbah2/wms/internal/domain/models"
	"github.com/mamadbah2/wms/internal/service/account"
	"github.com/mamadbah2/wms/internal/service/customers"
	"github.com/mamadbah2/wms/internal/service/stock"
	"github.com/mamadbah2/wms/pkg/errmsg"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, stock.ErrValidation),
		errors.Is(err, stock.ErrWarehouseMismatch),
		errors.Is(err, stock.ErrSupplierMismatch),
		customers.IsValidationError(err),
		errors.Is(err, account.ErrValidation),
		errors.Is(err, account.ErrPasswordMismatch):
		return http.StatusBadRequest
	case errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, stock.ErrSubmitInProgress):
		return http.StatusConflict
	case errors.Is(err, account.ErrIdentityProvider):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes {"error": msg} with the status matching err.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	} else {
		logger.Debug("request rejected", zap.String("path", c.FullPath()), zap.Int("status", status), zap.Error(err))
	}
	c.JSON(status, gin.H{"error": errmsg.Sanitize(err)})
}

func badRequest(c *gin.Context, logger *zap.Logger, err error) {
	logger.Warn("invalid payload", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
}
