package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "fleetflow/api/swagger" // swagger docs
	"fleetflow/internal/config"
	"fleetflow/internal/database"
	"fleetflow/internal/eld"
	"fleetflow/internal/handler"
	"fleetflow/internal/jurisdiction"
	"fleetflow/internal/logger"
	"fleetflow/internal/middleware"
	"fleetflow/internal/repository"
	"fleetflow/internal/service"
	"fleetflow/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title           FleetFlow IFTA API
// @version         1.0
// @description     Quarterly IFTA fuel-tax returns for multi-tenant trucking fleets.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	envErr := config.LoadEnvFile(config.DefaultEnvFile)

	cfg, err := config.Load()
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		_, _ = os.Stderr.WriteString("logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if envErr != nil {
		log.Warn("could not load env file", zap.String("path", config.DefaultEnvFile), zap.Error(envErr))
	}

	registry, err := jurisdiction.Load(cfg.RatesFile)
	if err != nil {
		log.Fatal("jurisdiction registry", zap.String("rates_file", cfg.RatesFile), zap.Error(err))
	}
	log.Info("jurisdiction registry loaded",
		zap.Int("jurisdictions", registry.Len()),
		zap.String("effective_quarter", registry.EffectiveQuarter()),
	)

	db, err := database.NewConnection(cfg.DB.DSN(), log)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	log.Info("connected to PostgreSQL")

	// Set up WebSocket Hub
	wsHub := websocket.NewHub(log)
	go wsHub.Run()

	var source eld.MileageSource
	if cfg.ELD.Enabled() {
		retry := eld.DefaultRetryConfig()
		retry.MaxRetries = cfg.ELD.MaxRetries
		source = eld.NewClient(cfg.ELD.BaseURL, cfg.ELD.APIKey, cfg.ELD.Timeout, retry, log)
	}

	// Set up dependencies (Repository -> Service -> Handler)
	store := repository.NewGormStore(db)
	iftaService := service.NewIFTAService(store, registry, service.IFTASettings{
		FleetMPG:         cfg.FleetMPG,
		DefaultFuelType:  cfg.DefaultFuelType,
		FilingBufferDays: cfg.FilingBufferDays,
	}, source, wsHub, log)
	auditService := service.NewAuditService(store.Audit)

	jwtSecret := []byte(cfg.JWTSecret)
	iftaHandler := handler.NewIFTAHandler(iftaService, jwtSecret, log)
	auditHandler := handler.NewAuditHandler(auditService, jwtSecret, log)

	if cfg.AppEnv == logger.ProductionEnv {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(log))

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", middleware.TenantHeader, middleware.CorrelationIDHeader}
	corsConfig.ExposeHeaders = []string{middleware.CorrelationIDHeader}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	// WebSocket endpoint
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, jwtSecret)
	})

	iftaHandler.RegisterRoutes(router.Group(""))
	auditHandler.RegisterRoutes(router.Group(""))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr), zap.Bool("eld_sync", source != nil), zap.Bool("auth", len(jwtSecret) > 0))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
	log.Info("server stopped")
}
