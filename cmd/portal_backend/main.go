package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/nimbusworks/intranet_portal_app/internal/adapters/sharepoint"
	"github.com/nimbusworks/intranet_portal_app/internal/core/services"
	"github.com/nimbusworks/intranet_portal_app/internal/dto"
	"github.com/nimbusworks/intranet_portal_app/internal/handlers"
	"github.com/nimbusworks/intranet_portal_app/internal/middleware"
	"github.com/nimbusworks/intranet_portal_app/pkg/config"
	spclient "github.com/nimbusworks/intranet_portal_app/pkg/sharepoint"
)

// @title Intranet Portal Backend API
// @version 1.0
// @description Corporate intranet portal backend over SharePoint lists.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if !dto.RegisterValidations() {
		logger.Warn("Validator engine unavailable, dateonly validation disabled")
	}

	store := spclient.NewClient(spclient.Config{
		TenantID:     cfg.TenantID,
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		SiteHostname: cfg.SiteHostname,
		SitePath:     cfg.SitePath,
		BaseURL:      cfg.GraphBaseURL,
	})
	repos := sharepoint.NewRepositoryProvider(store, cfg.Lists)
	serviceContainer := services.NewServiceContainer(&repos, services.AuthServiceConfig{
		AdminEmail:        cfg.AdminEmail,
		AdminName:         cfg.AdminName,
		AdminPasswordHash: cfg.AdminPasswordHash,
		JWTSecret:         cfg.JWTSecret,
		JWTExpiryDuration: cfg.JWTExpiryDuration,
		JWTIssuer:         cfg.JWTIssuer,
	})

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
