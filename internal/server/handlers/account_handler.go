package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/wms/internal/domain/models"
	"github.com/mamadbah2/wms/internal/server/middleware"
)

// AccountService handles login and password changes.
type AccountService interface {
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)
	ChangePassword(ctx context.Context, email string, req models.ChangePasswordRequest) error
}

// AccountHandler serves login and password changes.
type AccountHandler struct {
	svc    AccountService
	logger *zap.Logger
}

// NewAccountHandler constructs the account HTTP adapter.
func NewAccountHandler(svc AccountService, logger *zap.Logger) *AccountHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AccountHandler{svc: svc, logger: logger}
}

// Login handles POST /auth/login.
func (h *AccountHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ChangePassword handles POST /auth/password for the authenticated caller.
func (h *AccountHandler) ChangePassword(c *gin.Context) {
	var req models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	if err := h.svc.ChangePassword(c.Request.Context(), c.GetString(middleware.EmailKey), req); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password changed"})
}
