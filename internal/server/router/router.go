package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/mamadbah2/wms/internal/server/handlers"
	"github.com/mamadbah2/wms/internal/server/middleware"
)

// Handlers groups the HTTP adapters mounted by New.
type Handlers struct {
	Account  *handlers.AccountHandler
	Stock    *handlers.StockHandler
	Customer *handlers.CustomerHandler
	VoidList *handlers.VoidListHandler
}

// New wires the Gin engine with required routes and middlewares.
func New(h Handlers, tokens middleware.TokenValidator, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.POST("/auth/login", h.Account.Login)

	api := r.Group("/", middleware.Authenticate(tokens))
	{
		api.POST("/auth/password", h.Account.ChangePassword)

		api.GET("/suppliers", h.Stock.ListSuppliers)
		api.GET("/products", h.Stock.ListProducts)
		api.GET("/products/search", h.Customer.SearchProducts)
		api.POST("/stock/mutations", h.Stock.ApplyMutation)

		api.GET("/customers", h.Customer.List)
		api.GET("/customers/:id", h.Customer.Get)
		api.PUT("/customers/:id", h.Customer.Update)
		api.POST("/customers/:id/special-prices/:productId/toggle", h.Customer.ToggleSpecialPrice)

		api.GET("/void-list", h.VoidList.List)
		api.GET("/void-list/export", h.VoidList.Export)
		api.GET("/void-list/:id", h.VoidList.Get)
	}

	logger.Info("router initialized", zap.Int("routes", len(r.Routes())))
	return r
}
