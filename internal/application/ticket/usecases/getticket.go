package usecases

import (
	"context"
	"fmt"

	"lumistream/internal/domain/ticket"
	"lumistream/internal/shared/authorization"
	"lumistream/internal/shared/errors"
	"lumistream/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
	UserID   uint
	UserRole authorization.UserRole
}

type GetTicketResult struct {
	Ticket   *ticket.Ticket
	Messages []*ticket.Message
}

type GetTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	messageRepo ticket.MessageRepository
	logger      logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	messageRepo ticket.MessageRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:  ticketRepo,
		messageRepo: messageRepo,
		logger:      logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*GetTicketResult, error) {
	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "ticket_id", query.TicketID, "error", err)
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if !t.CanBeViewedBy(query.UserID, query.UserRole.IsStaff()) {
		uc.logger.Warnw("user cannot view ticket", "ticket_id", query.TicketID, "user_id", query.UserID)
		return nil, errors.NewForbiddenError("you don't have permission to access this ticket")
	}

	messages, err := uc.messageRepo.ListByTicketID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket messages", "ticket_id", query.TicketID, "error", err)
		return nil, fmt.Errorf("failed to load ticket messages: %w", err)
	}

	return &GetTicketResult{
		Ticket:   t,
		Messages: messages,
	}, nil
}
