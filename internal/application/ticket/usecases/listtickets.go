package usecases

import (
	"context"
	"fmt"

	"lumistream/internal/domain/ticket"
	vo "lumistream/internal/domain/ticket/valueobjects"
	"lumistream/internal/shared/authorization"
	"lumistream/internal/shared/errors"
	"lumistream/internal/shared/logger"
	"lumistream/internal/shared/utils"
)

type ListTicketsQuery struct {
	UserID   uint
	UserRole authorization.UserRole
	Status   string
	Priority string
	Page     int
	PageSize int
}

type ListTicketsResult struct {
	Tickets  []*ticket.Ticket
	Total    int64
	Page     int
	PageSize int
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	p := utils.ValidatePagination(query.Page, query.PageSize)

	filter := ticket.TicketFilter{
		Page:     p.Page,
		PageSize: p.PageSize,
	}

	// Customers only ever see their own tickets regardless of the filter
	// they send.
	if !query.UserRole.IsStaff() {
		ownerID := query.UserID
		filter.OwnerID = &ownerID
	}

	if query.Status != "" {
		status, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	if query.Priority != "" {
		priority, err := vo.NewPriority(query.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "user_id", query.UserID, "error", err)
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	return &ListTicketsResult{
		Tickets:  tickets,
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}
