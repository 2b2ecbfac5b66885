package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/autopress-api/internal/service"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	authHandler := NewAuthHandler(services, log)
	siteHandler := NewSiteHandler(services, log)
	postHandler := NewPostHandler(services, log)
	contentHandler := NewContentHandler(services, log)
	providerHandler := NewProviderHandler(services, log)
	settingsHandler := NewSettingsHandler(services, log)

	// Health check
	router.GET("/health", healthCheck)

	// API v1
	v1 := router.Group("/v1")
	{
		// Public auth endpoints
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)
		}

		// Everything below requires a valid access token
		protected := v1.Group("")
		protected.Use(authMiddleware(services.Auth))
		{
			protected.GET("/auth/me", authHandler.Me)

			sites := protected.Group("/sites")
			{
				sites.POST("", siteHandler.Create)
				sites.GET("", siteHandler.List)
				sites.GET("/:site_id", siteHandler.Get)
				sites.PUT("/:site_id", siteHandler.Update)
				sites.DELETE("/:site_id", siteHandler.Delete)
				sites.POST("/:site_id/test", siteHandler.Test)
				sites.POST("/test", siteHandler.TestCredentials)
				sites.GET("/:site_id/posts", postHandler.ListRemote)
				sites.PUT("/:site_id/posts/:remote_id", postHandler.UpdateRemote)
				sites.DELETE("/:site_id/posts/:remote_id", postHandler.DeleteRemote)
			}

			posts := protected.Group("/posts")
			{
				posts.GET("", postHandler.List)
				posts.GET("/statistics", postHandler.Statistics)
				posts.GET("/:post_id", postHandler.Get)
				posts.PUT("/:post_id", postHandler.Update)
				posts.DELETE("/:post_id", postHandler.Delete)
				posts.POST("/:post_id/publish", postHandler.Publish)
			}

			content := protected.Group("/content")
			{
				content.POST("/generate", contentHandler.Generate)
				content.POST("/analyze", contentHandler.Analyze)
				content.GET("/keywords", contentHandler.Keywords)
			}

			providers := protected.Group("/providers")
			{
				providers.POST("", providerHandler.Create)
				providers.GET("", providerHandler.List)
				providers.GET("/:provider_id", providerHandler.Get)
				providers.PUT("/:provider_id", providerHandler.Update)
				providers.DELETE("/:provider_id", providerHandler.Delete)
			}

			settings := protected.Group("/settings")
			{
				settings.GET("", settingsHandler.Get)
				settings.PUT("", settingsHandler.Update)
				settings.POST("/reset", settingsHandler.Reset)
			}
		}
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "autopress-api",
	})
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
