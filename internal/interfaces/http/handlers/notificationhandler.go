package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	notifusecases "lumistream/internal/application/notification/usecases"
	"lumistream/internal/domain/notification"
	"lumistream/internal/interfaces/http/middleware"
	"lumistream/internal/shared/authorization"
	"lumistream/internal/shared/logger"
	"lumistream/internal/shared/utils"
)

type NotificationHandler struct {
	list      notifusecases.ListNotificationsExecutor
	unread    notifusecases.GetUnreadCountExecutor
	markRead  notifusecases.MarkNotificationAsReadExecutor
	markAll   notifusecases.MarkAllAsReadExecutor
	remove    notifusecases.DeleteNotificationExecutor
	broadcast notifusecases.BroadcastNotificationExecutor
	logger    logger.Interface
}

func NewNotificationHandler(
	list notifusecases.ListNotificationsExecutor,
	unread notifusecases.GetUnreadCountExecutor,
	markRead notifusecases.MarkNotificationAsReadExecutor,
	markAll notifusecases.MarkAllAsReadExecutor,
	remove notifusecases.DeleteNotificationExecutor,
	broadcast notifusecases.BroadcastNotificationExecutor,
	logger logger.Interface,
) *NotificationHandler {
	return &NotificationHandler{
		list:      list,
		unread:    unread,
		markRead:  markRead,
		markAll:   markAll,
		remove:    remove,
		broadcast: broadcast,
		logger:    logger,
	}
}

type notificationResponse struct {
	ID        uint       `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Type      string     `json:"type"`
	Category  string     `json:"category"`
	Link      string     `json:"link,omitempty"`
	IsRead    bool       `json:"is_read"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func toNotificationResponse(n *notification.Notification) notificationResponse {
	return notificationResponse{
		ID:        n.ID(),
		Title:     n.Title(),
		Content:   n.Content(),
		Type:      n.Type().String(),
		Category:  n.Category().String(),
		Link:      n.Link(),
		IsRead:    n.IsRead(),
		ReadAt:    n.ReadAt(),
		CreatedAt: n.CreatedAt(),
	}
}

func (h *NotificationHandler) List(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.list.Execute(c.Request.Context(), notifusecases.ListNotificationsQuery{
		UserID:     middleware.CurrentUserID(c),
		UnreadOnly: c.Query("unread") == "true",
		Category:   c.Query("category"),
		Page:       p.Page,
		PageSize:   p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]notificationResponse, len(result.Notifications))
	for i, n := range result.Notifications {
		items[i] = toNotificationResponse(n)
	}

	utils.ListSuccessResponse(c, items, result.Total, result.Page, result.PageSize)
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	count, err := h.unread.Execute(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"unread": count})
}

func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.markRead.Execute(c.Request.Context(), id, middleware.CurrentUserID(c)); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notification marked as read", nil)
}

func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	updated, err := h.markAll.Execute(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "All notifications marked as read", gin.H{"updated": updated})
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.remove.Execute(c.Request.Context(), id, middleware.CurrentUserID(c)); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

type broadcastRequest struct {
	Roles    []string `json:"roles" binding:"required,min=1"`
	Title    string   `json:"title" binding:"required,max=200"`
	Content  string   `json:"content" binding:"required,max=2000"`
	Type     string   `json:"type" binding:"omitempty,oneof=info success warning error"`
	Category string   `json:"category" binding:"omitempty,oneof=system order ticket subscription security"`
	Link     string   `json:"link" binding:"omitempty,max=500"`
	Event    string   `json:"event" binding:"omitempty,oneof=orders tickets reviews"`
}

// Broadcast lets staff push an announcement to every user holding one of the
// target roles.
func (h *NotificationHandler) Broadcast(c *gin.Context) {
	var req broadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid broadcast request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	roles := make([]authorization.UserRole, len(req.Roles))
	for i, r := range req.Roles {
		roles[i] = authorization.ParseUserRole(r)
	}

	notifType := req.Type
	if notifType == "" {
		notifType = "info"
	}
	category := req.Category
	if category == "" {
		category = "system"
	}

	result, err := h.broadcast.Execute(c.Request.Context(), notifusecases.BroadcastNotificationCommand{
		Roles:    roles,
		Title:    req.Title,
		Content:  req.Content,
		Type:     notifType,
		Category: category,
		Link:     req.Link,
		Event:    req.Event,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Broadcast dispatched", gin.H{
		"notifications_created": result.NotificationsCreated,
		"emails_attempted":      result.EmailsAttempted,
	})
}
