package routes

import (
	"github.com/gin-gonic/gin"

	"lumistream/internal/interfaces/http/handlers"
	"lumistream/internal/interfaces/http/middleware"
)

// NotificationRouteConfig holds dependencies for notification routes.
type NotificationRouteConfig struct {
	NotificationHandler    *handlers.NotificationHandler
	RecipientConfigHandler *handlers.RecipientConfigHandler
	AuthMiddleware         *middleware.AuthMiddleware
}

func SetupNotificationRoutes(engine *gin.Engine, cfg *NotificationRouteConfig) {
	notifications := engine.Group("/notifications")
	notifications.Use(cfg.AuthMiddleware.RequireAuth())
	{
		notifications.GET("", cfg.NotificationHandler.List)
		notifications.GET("/unread-count", cfg.NotificationHandler.UnreadCount)
		notifications.POST("/read-all", cfg.NotificationHandler.MarkAllAsRead)
		notifications.PATCH("/:id/read", cfg.NotificationHandler.MarkAsRead)
		notifications.DELETE("/:id", cfg.NotificationHandler.Delete)
	}

	admin := engine.Group("/admin")
	admin.Use(cfg.AuthMiddleware.RequireAuth(), cfg.AuthMiddleware.RequireStaff())
	{
		admin.POST("/notifications/broadcast", cfg.NotificationHandler.Broadcast)

		admin.GET("/recipients", cfg.RecipientConfigHandler.List)
		admin.POST("/recipients", cfg.RecipientConfigHandler.Create)
		admin.PATCH("/recipients/:id", cfg.RecipientConfigHandler.Update)
		admin.DELETE("/recipients/:id", cfg.RecipientConfigHandler.Delete)
	}
}
