package routes

import (
	"github.com/gin-gonic/gin"

	"lumistream/internal/interfaces/http/handlers"
	"lumistream/internal/interfaces/http/middleware"
)

// ReviewRouteConfig holds dependencies for review routes.
type ReviewRouteConfig struct {
	ReviewHandler  *handlers.ReviewHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupReviewRoutes(engine *gin.Engine, cfg *ReviewRouteConfig) {
	// Storefront listing only ever sees published reviews.
	engine.GET("/reviews", cfg.ReviewHandler.ListPublic)
	engine.POST("/reviews", cfg.AuthMiddleware.RequireAuth(), cfg.ReviewHandler.Create)

	admin := engine.Group("/admin/reviews")
	admin.Use(cfg.AuthMiddleware.RequireAuth(), cfg.AuthMiddleware.RequireStaff())
	{
		admin.GET("", cfg.ReviewHandler.ListAdmin)
		admin.PATCH("/:id/status", cfg.ReviewHandler.Moderate)
		admin.POST("/:id/reply", cfg.ReviewHandler.Reply)
	}
}
