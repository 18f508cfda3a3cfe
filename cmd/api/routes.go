package main

import (
	"github.com/labstack/echo/v4"

	"github.com/mittr/linkup/internal/infrastructure/httpserver"
	"github.com/mittr/linkup/internal/middleware"
)

// SetupRoutes builds the Echo router and registers every handler.
func SetupRoutes(c *Container) *httpserver.Router {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	corsConfig := middleware.DefaultCORSConfig()
	if len(c.Config.CORS.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = c.Config.CORS.AllowedOrigins
		corsConfig.AllowCredentials = true
	}

	loggingConfig := middleware.DefaultLoggingConfig()
	loggingConfig.Logger = c.Logger

	recoveryConfig := middleware.DefaultRecoveryConfig()
	recoveryConfig.Logger = c.Logger

	router := httpserver.NewRouter(e, httpserver.RouterConfig{
		Logger:         c.Logger,
		AuthMiddleware: middleware.Auth(c.AuthMiddleware()),
		CORSConfig:     corsConfig,
		LoggingConfig:  loggingConfig,
		RecoveryConfig: recoveryConfig,
	})

	router.RegisterHealthEndpoints(c.IsReady)

	c.AuthHandler.RegisterRoutes(router)
	c.UserHandler.RegisterRoutes(router)
	c.FriendHandler.RegisterRoutes(router)

	return router
}
