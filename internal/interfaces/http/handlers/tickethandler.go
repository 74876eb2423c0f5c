package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	ticketusecases "lumistream/internal/application/ticket/usecases"
	"lumistream/internal/domain/ticket"
	"lumistream/internal/interfaces/http/middleware"
	"lumistream/internal/shared/botguard"
	"lumistream/internal/shared/errors"
	"lumistream/internal/shared/logger"
	"lumistream/internal/shared/utils"
)

type TicketHandler struct {
	createTicket ticketusecases.CreateTicketExecutor
	postMessage  ticketusecases.PostMessageExecutor
	updateStatus ticketusecases.UpdateStatusExecutor
	deleteTicket ticketusecases.DeleteTicketExecutor
	getTicket    ticketusecases.GetTicketExecutor
	listTickets  ticketusecases.ListTicketsExecutor
	logger       logger.Interface
}

func NewTicketHandler(
	createTicket ticketusecases.CreateTicketExecutor,
	postMessage ticketusecases.PostMessageExecutor,
	updateStatus ticketusecases.UpdateStatusExecutor,
	deleteTicket ticketusecases.DeleteTicketExecutor,
	getTicket ticketusecases.GetTicketExecutor,
	listTickets ticketusecases.ListTicketsExecutor,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicket: createTicket,
		postMessage:  postMessage,
		updateStatus: updateStatus,
		deleteTicket: deleteTicket,
		getTicket:    getTicket,
		listTickets:  listTickets,
		logger:       logger,
	}
}

type createTicketRequest struct {
	Subject     string `json:"subject" binding:"required,max=200"`
	Description string `json:"description" binding:"required,max=5000"`
	Priority    string `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
}

type publicCreateTicketRequest struct {
	Subject     string `json:"subject" binding:"required,max=200"`
	Description string `json:"description" binding:"required,max=5000"`
	Priority    string `json:"priority" binding:"omitempty,oneof=low medium high urgent"`

	// Anti-bot fields rendered into the storefront form.
	WebsiteURL    string `json:"website_url"`
	MathChallenge string `json:"math_challenge"`
	MathAnswer    string `json:"math_answer"`
}

type ticketResponse struct {
	ID          uint      `json:"id"`
	OwnerID     uint      `json:"owner_id"`
	Subject     string    `json:"subject"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type messageResponse struct {
	ID         uint      `json:"id"`
	TicketID   uint      `json:"ticket_id"`
	SenderID   uint      `json:"sender_id"`
	AuthorRole string    `json:"author_role"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

func toTicketResponse(t *ticket.Ticket) ticketResponse {
	return ticketResponse{
		ID:          t.ID(),
		OwnerID:     t.OwnerID(),
		Subject:     t.Subject(),
		Description: t.Description(),
		Priority:    t.Priority().String(),
		Status:      t.Status().String(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

func toMessageResponse(m *ticket.Message) messageResponse {
	return messageResponse{
		ID:         m.ID(),
		TicketID:   m.TicketID(),
		SenderID:   m.SenderID(),
		AuthorRole: m.AuthorRole().String(),
		Content:    m.Content(),
		CreatedAt:  m.CreatedAt(),
	}
}

// Create handles ticket creation from the authenticated account portal.
func (h *TicketHandler) Create(c *gin.Context) {
	var req createTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create ticket request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createTicket.Execute(c.Request.Context(), ticketusecases.CreateTicketCommand{
		UserID:      middleware.CurrentUserID(c),
		Subject:     req.Subject,
		Description: req.Description,
		Priority:    req.Priority,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"ticket_id":  result.TicketID,
		"status":     result.Status,
		"created_at": result.CreatedAt,
	}, "Ticket created successfully")
}

// CreatePublic handles the rate-limited storefront support form. The anti-bot
// fields are checked before anything is written; a honeypot hit still reports
// success.
func (h *TicketHandler) CreatePublic(c *gin.Context) {
	var req publicCreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid public ticket request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	userID := middleware.CurrentUserID(c)
	if userID == 0 {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authentication required"))
		return
	}

	result, err := h.createTicket.Execute(c.Request.Context(), ticketusecases.CreateTicketCommand{
		UserID:      userID,
		Subject:     req.Subject,
		Description: req.Description,
		Priority:    req.Priority,
		Guard: &botguard.Fields{
			WebsiteURL:    req.WebsiteURL,
			MathChallenge: req.MathChallenge,
			MathAnswer:    req.MathAnswer,
		},
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if result.Decoy {
		// Indistinguishable from a real acceptance.
		utils.CreatedResponse(c, gin.H{"status": result.Status}, "Ticket created successfully")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"ticket_id":  result.TicketID,
		"status":     result.Status,
		"created_at": result.CreatedAt,
	}, "Ticket created successfully")
}

func (h *TicketHandler) Get(c *gin.Context) {
	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicket.Execute(c.Request.Context(), ticketusecases.GetTicketQuery{
		TicketID: ticketID,
		UserID:   middleware.CurrentUserID(c),
		UserRole: middleware.CurrentUserRole(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	messages := make([]messageResponse, len(result.Messages))
	for i, m := range result.Messages {
		messages[i] = toMessageResponse(m)
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"ticket":   toTicketResponse(result.Ticket),
		"messages": messages,
	})
}

func (h *TicketHandler) List(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listTickets.Execute(c.Request.Context(), ticketusecases.ListTicketsQuery{
		UserID:   middleware.CurrentUserID(c),
		UserRole: middleware.CurrentUserRole(c),
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	tickets := make([]ticketResponse, len(result.Tickets))
	for i, t := range result.Tickets {
		tickets[i] = toTicketResponse(t)
	}

	utils.ListSuccessResponse(c, tickets, result.Total, result.Page, result.PageSize)
}

type postMessageRequest struct {
	Content string `json:"content" binding:"required,max=5000"`
}

func (h *TicketHandler) PostMessage(c *gin.Context) {
	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req postMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid post message request", "ticket_id", ticketID, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.postMessage.Execute(c.Request.Context(), ticketusecases.PostMessageCommand{
		TicketID: ticketID,
		UserID:   middleware.CurrentUserID(c),
		UserRole: middleware.CurrentUserRole(c),
		Content:  req.Content,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message_id":  result.MessageID,
		"author_role": result.AuthorRole,
		"created_at":  result.CreatedAt,
	}, "Message posted successfully")
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=open closed"`
}

func (h *TicketHandler) UpdateStatus(c *gin.Context) {
	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateStatus.Execute(c.Request.Context(), ticketusecases.UpdateStatusCommand{
		TicketID: ticketID,
		UserID:   middleware.CurrentUserID(c),
		UserRole: middleware.CurrentUserRole(c),
		Status:   req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket status updated", gin.H{
		"ticket_id": ticketID,
		"status":    result.Status,
	})
}

func (h *TicketHandler) Delete(c *gin.Context) {
	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteTicket.Execute(c.Request.Context(), ticketusecases.DeleteTicketCommand{
		TicketID: ticketID,
		UserID:   middleware.CurrentUserID(c),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + name + " parameter")
	}
	return uint(id), nil
}
