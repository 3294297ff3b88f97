package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"book-store-service/internal/shared/middleware"
	"book-store-service/internal/shared/response"
	"book-store-service/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		middleware.Logger(),
	)
	if c.RateLimiter != nil {
		router.Use(middleware.RateLimit(c.RateLimiter))
	}

	v1 := router.Group(c.Config.App.BasePath)
	{
		v1.GET("/health", healthCheckHandler(c))

		c.AuthorHandler.RegisterRoutes(v1)
		c.BookHandler.RegisterRoutes(v1)
		c.CustomerHandler.RegisterRoutes(v1)
		c.PurchaseHandler.RegisterRoutes(v1)
		c.AppUserHandler.RegisterRoutes(v1)
	}

	return router
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := gin.H{
			"service":   c.Config.App.Name,
			"version":   c.Config.App.Version,
			"store":     c.Config.Store.Driver,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		}

		if err := c.Store.Ping(ctx.Request.Context()); err != nil {
			response.ErrorResponse(ctx, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", err.Error())
			return
		}
		if c.Redis != nil {
			status["cache"] = "up"
			if err := c.Redis.Ping(ctx.Request.Context()); err != nil {
				status["cache"] = "down"
			}
		}

		response.Success(ctx, http.StatusOK, status)
	}
}
