package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appreporting "github.com/erp/odoo-dashboard/internal/application/reporting"
	"github.com/erp/odoo-dashboard/internal/infrastructure/cache"
	"github.com/erp/odoo-dashboard/internal/infrastructure/config"
	"github.com/erp/odoo-dashboard/internal/infrastructure/logger"
	"github.com/erp/odoo-dashboard/internal/infrastructure/odoo"
	"github.com/erp/odoo-dashboard/internal/interfaces/http/handler"
	"github.com/erp/odoo-dashboard/internal/interfaces/http/middleware"
	"github.com/erp/odoo-dashboard/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting Odoo reporting dashboard",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("odoo_url", cfg.Odoo.URL),
		zap.String("odoo_db", cfg.Odoo.Database))

	// Upstream ERP client and shared session
	odooClient, err := odoo.NewClient(&odoo.Config{
		BaseURL:    cfg.Odoo.URL,
		Database:   cfg.Odoo.Database,
		Timeout:    cfg.Odoo.Timeout,
		MaxRetries: uint64(cfg.Odoo.MaxRetries),
		Timezone:   cfg.Odoo.Timezone,
		Language:   cfg.Odoo.Language,
	}, log)
	if err != nil {
		log.Fatal("Failed to build Odoo client", zap.Error(err))
	}
	sessions := odoo.NewSessionManager(odooClient, cfg.Odoo.Login, cfg.Odoo.Password, log)
	querier := odoo.NewQuerier(odooClient, sessions, cfg.Odoo.RecordCap)

	// Report cache
	reportCache, err := cache.NewReportCache(cfg, log)
	if err != nil {
		log.Fatal("Failed to build report cache", zap.Error(err))
	}
	defer func() {
		_ = reportCache.Close()
	}()

	reportService := appreporting.NewService(querier, reportCache, cfg.Cache.TTL, log)

	// HTTP engine and middleware chain
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	corsCfg := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	corsCfg.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsCfg.AllowHeaders = cfg.HTTP.CORSAllowHeaders

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(corsCfg))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Handlers and routes
	systemHandler := handler.NewSystemHandler(cfg, sessions)
	authHandler := handler.NewAuthHandler(sessions)
	reportHandler := handler.NewReportHandler(reportService)

	router.NewRouter(engine).
		Register(systemHandler).
		Register(authHandler).
		Register(reportHandler).
		Setup()

	engine.GET("/health", systemHandler.Health)

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
