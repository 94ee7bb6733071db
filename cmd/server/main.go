package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/wms/internal/auth"
	"github.com/mamadbah2/wms/internal/cache"
	"github.com/mamadbah2/wms/internal/config"
	"github.com/mamadbah2/wms/internal/repository/mongodb"
	"github.com/mamadbah2/wms/internal/repository/sheets"
	"github.com/mamadbah2/wms/internal/scheduler"
	"github.com/mamadbah2/wms/internal/server/handlers"
	"github.com/mamadbah2/wms/internal/server/middleware"
	"github.com/mamadbah2/wms/internal/server/router"
	accountsvc "github.com/mamadbah2/wms/internal/service/account"
	customersvc "github.com/mamadbah2/wms/internal/service/customers"
	reportingsvc "github.com/mamadbah2/wms/internal/service/reporting"
	stocksvc "github.com/mamadbah2/wms/internal/service/stock"
	voidlistsvc "github.com/mamadbah2/wms/internal/service/voidlist"
	"github.com/mamadbah2/wms/pkg/clients/identity"
	whatsappclient "github.com/mamadbah2/wms/pkg/clients/whatsapp"
	"github.com/mamadbah2/wms/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.LogLevel))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)
	gin.SetMode(gin.ReleaseMode)

	mongoRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := mongoRepo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	var provider auth.Provider
	switch cfg.Auth.IdentityProvider {
	case config.IdentityFirebase:
		provider = auth.NewFirebaseProvider(identity.NewClient(cfg.Auth.FirebaseBaseURL, cfg.Auth.FirebaseAPIKey), baseLogger.Named("auth.firebase"))
	default:
		provider = auth.NewLocalProvider(mongoRepo, baseLogger.Named("auth.local"))
	}
	baseLogger.Info("identity provider selected", zap.String("provider", cfg.Auth.IdentityProvider))

	tokens := auth.NewJWTManager(cfg.Auth)

	var stockOpts []stocksvc.Option
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewClient(context.Background(), cfg.Redis)
		if err != nil {
			baseLogger.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer func() { _ = redisClient.Close() }()
		stockOpts = append(stockOpts, stocksvc.WithLocker(cache.NewRedisLocker(redisClient, cfg.Redis.LockTTL)))
		baseLogger.Info("redis submit lock enabled")
	}

	stockSvc := stocksvc.NewService(mongoRepo, baseLogger.Named("svc.stock"), stockOpts...)
	customerSvc := customersvc.NewService(mongoRepo, baseLogger.Named("svc.customers"))
	voidListSvc := voidlistsvc.NewService(mongoRepo, baseLogger.Named("svc.voidlist"))
	accountSvc := accountsvc.NewService(provider, tokens, baseLogger.Named("svc.account"))

	var reportOpts []reportingsvc.Option
	if cfg.Sheets.Enabled() {
		sheetsRepo, err := sheets.NewGoogleSheetRepository(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
		}
		reportOpts = append(reportOpts, reportingsvc.WithSheet(sheetsRepo))
	} else {
		baseLogger.Warn("google sheets not configured, stock reports will not be appended to a sheet")
	}
	if cfg.WhatsApp.Enabled() {
		reportOpts = append(reportOpts, reportingsvc.WithWhatsApp(whatsappclient.NewClient(cfg.WhatsApp), cfg.WhatsApp.ReportReceiver))
	} else {
		baseLogger.Warn("whatsapp not configured, stock reports will not be sent")
	}
	reportingSvc := reportingsvc.NewService(mongoRepo, baseLogger.Named("svc.reporting"), reportOpts...)

	sched, err := scheduler.NewScheduler(cfg.Reporting, reportingSvc, baseLogger.Named("scheduler"))
	if err != nil {
		baseLogger.Fatal("failed to init scheduler", zap.Error(err))
	}
	if err := sched.Start(); err != nil {
		baseLogger.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer sched.Stop()

	engine := router.New(router.Handlers{
		Account:  handlers.NewAccountHandler(accountSvc, baseLogger.Named("handlers.account")),
		Stock:    handlers.NewStockHandler(stockSvc, baseLogger.Named("handlers.stock")),
		Customer: handlers.NewCustomerHandler(customerSvc, baseLogger.Named("handlers.customers")),
		VoidList: handlers.NewVoidListHandler(voidListSvc, baseLogger.Named("handlers.voidlist")),
	}, tokens, baseLogger.Named("router"))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      middleware.NewCORS(cfg.Server)(engine),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
