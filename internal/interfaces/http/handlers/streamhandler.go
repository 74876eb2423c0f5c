package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	ticketusecases "lumistream/internal/application/ticket/usecases"
	"lumistream/internal/infrastructure/realtime"
	"lumistream/internal/interfaces/http/middleware"
	"lumistream/internal/shared/logger"
	"lumistream/internal/shared/utils"
)

// StreamHandler upgrades ticket thread viewers to a websocket fed by the hub.
type StreamHandler struct {
	hub       *realtime.Hub
	getTicket ticketusecases.GetTicketExecutor
	upgrader  websocket.Upgrader
	logger    logger.Interface
}

func NewStreamHandler(
	hub *realtime.Hub,
	getTicket ticketusecases.GetTicketExecutor,
	allowedOrigins []string,
	logger logger.Interface,
) *StreamHandler {
	return &StreamHandler{
		hub:       hub,
		getTicket: getTicket,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				for _, allowed := range allowedOrigins {
					if origin == allowed {
						return true
					}
				}
				return false
			},
		},
		logger: logger,
	}
}

// Stream subscribes the caller to live messages on one ticket. Access is
// checked with the same rules as reading the thread before upgrading.
func (h *StreamHandler) Stream(c *gin.Context) {
	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// Reuse the read-path authorization so a stranger cannot watch a thread.
	if _, err := h.getTicket.Execute(c.Request.Context(), ticketusecases.GetTicketQuery{
		TicketID: ticketID,
		UserID:   middleware.CurrentUserID(c),
		UserRole: middleware.CurrentUserRole(c),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warnw("websocket upgrade failed", "ticket_id", ticketID, "error", err)
		return
	}

	client := realtime.NewClient(conn, h.logger)
	h.hub.Subscribe(ticketID, client)

	go client.WritePump()
	go func() {
		client.ReadPump()
		h.hub.Unsubscribe(ticketID, client)
	}()
}
