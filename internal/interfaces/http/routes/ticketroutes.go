package routes

import (
	"github.com/gin-gonic/gin"

	"lumistream/internal/interfaces/http/handlers"
	"lumistream/internal/interfaces/http/middleware"
)

// TicketRouteConfig holds dependencies for ticket routes.
type TicketRouteConfig struct {
	TicketHandler  *handlers.TicketHandler
	StreamHandler  *handlers.StreamHandler
	AuthMiddleware *middleware.AuthMiddleware
	PublicLimiter  gin.HandlerFunc
}

func SetupTicketRoutes(engine *gin.Engine, cfg *TicketRouteConfig) {
	// The storefront support form. Rate limited per client IP; the anti-bot
	// filter runs inside the use case.
	engine.POST("/support/tickets",
		cfg.PublicLimiter,
		cfg.AuthMiddleware.RequireAuth(),
		cfg.TicketHandler.CreatePublic)

	tickets := engine.Group("/tickets")
	tickets.Use(cfg.AuthMiddleware.RequireAuth())
	{
		tickets.POST("", cfg.TicketHandler.Create)
		tickets.GET("", cfg.TicketHandler.List)

		// Specific paths before the parameterized ones to avoid conflicts.
		tickets.POST("/:id/messages", cfg.TicketHandler.PostMessage)
		tickets.PATCH("/:id/status", cfg.TicketHandler.UpdateStatus)
		tickets.GET("/:id/stream", cfg.StreamHandler.Stream)

		tickets.GET("/:id", cfg.TicketHandler.Get)
		tickets.DELETE("/:id", cfg.TicketHandler.Delete)
	}
}
