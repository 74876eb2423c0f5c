package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	notifusecases "lumistream/internal/application/notification/usecases"
	"lumistream/internal/domain/notification"
	"lumistream/internal/shared/logger"
	"lumistream/internal/shared/utils"
)

// RecipientConfigHandler exposes the admin-managed operator email allowlist.
type RecipientConfigHandler struct {
	create notifusecases.CreateRecipientConfigExecutor
	update notifusecases.UpdateRecipientConfigExecutor
	remove notifusecases.DeleteRecipientConfigExecutor
	list   notifusecases.ListRecipientConfigsExecutor
	logger logger.Interface
}

func NewRecipientConfigHandler(
	create notifusecases.CreateRecipientConfigExecutor,
	update notifusecases.UpdateRecipientConfigExecutor,
	remove notifusecases.DeleteRecipientConfigExecutor,
	list notifusecases.ListRecipientConfigsExecutor,
	logger logger.Interface,
) *RecipientConfigHandler {
	return &RecipientConfigHandler{
		create: create,
		update: update,
		remove: remove,
		list:   list,
		logger: logger,
	}
}

type recipientConfigResponse struct {
	ID           uint      `json:"id"`
	Email        string    `json:"email"`
	NotifyOrders bool      `json:"notify_on_orders"`
	NotifyTicket bool      `json:"notify_on_tickets"`
	NotifyReview bool      `json:"notify_on_reviews"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toRecipientConfigResponse(cfg *notification.RecipientConfig) recipientConfigResponse {
	return recipientConfigResponse{
		ID:           cfg.ID(),
		Email:        cfg.Email(),
		NotifyOrders: cfg.NotifyOrders(),
		NotifyTicket: cfg.NotifyTickets(),
		NotifyReview: cfg.NotifyReviews(),
		CreatedAt:    cfg.CreatedAt(),
		UpdatedAt:    cfg.UpdatedAt(),
	}
}

type createRecipientConfigRequest struct {
	Email        string `json:"email" binding:"required,email"`
	NotifyOrders bool   `json:"notify_on_orders"`
	NotifyTicket bool   `json:"notify_on_tickets"`
	NotifyReview bool   `json:"notify_on_reviews"`
}

func (h *RecipientConfigHandler) Create(c *gin.Context) {
	var req createRecipientConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid recipient config request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cfg, err := h.create.Execute(c.Request.Context(), notifusecases.CreateRecipientConfigCommand{
		Email:        req.Email,
		NotifyOrders: req.NotifyOrders,
		NotifyTicket: req.NotifyTicket,
		NotifyReview: req.NotifyReview,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toRecipientConfigResponse(cfg), "Recipient added successfully")
}

type updateRecipientConfigRequest struct {
	NotifyOrders bool `json:"notify_on_orders"`
	NotifyTicket bool `json:"notify_on_tickets"`
	NotifyReview bool `json:"notify_on_reviews"`
}

func (h *RecipientConfigHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req updateRecipientConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cfg, err := h.update.Execute(c.Request.Context(), notifusecases.UpdateRecipientConfigCommand{
		ID:           id,
		NotifyOrders: req.NotifyOrders,
		NotifyTicket: req.NotifyTicket,
		NotifyReview: req.NotifyReview,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Recipient updated successfully", toRecipientConfigResponse(cfg))
}

func (h *RecipientConfigHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.remove.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *RecipientConfigHandler) List(c *gin.Context) {
	configs, err := h.list.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]recipientConfigResponse, len(configs))
	for i, cfg := range configs {
		items[i] = toRecipientConfigResponse(cfg)
	}

	utils.SuccessResponse(c, http.StatusOK, "", items)
}
