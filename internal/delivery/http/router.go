package http

import (
	"github.com/gin-gonic/gin"
	"github.com/swagateam/swagabot/internal/delivery/http/handler"
	"github.com/swagateam/swagabot/internal/delivery/http/middleware"
)

type Router struct {
	updateHandler *handler.UpdateHandler
	webhookAuth   *middleware.WebhookAuth
}

func NewRouter(
	updateHandler *handler.UpdateHandler,
	webhookAuth *middleware.WebhookAuth,
) *Router {
	return &Router{
		updateHandler: updateHandler,
		webhookAuth:   webhookAuth,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.Default()

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// API v1
	v1 := router.Group("/api/v1")
	{
		updates := v1.Group("/updates")
		updates.Use(r.webhookAuth.Require())
		{
			updates.POST("", r.updateHandler.HandleUpdate)
		}
	}

	return router
}
