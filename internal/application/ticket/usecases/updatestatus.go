package usecases

import (
	"context"
	"fmt"

	"lumistream/internal/domain/ticket"
	vo "lumistream/internal/domain/ticket/valueobjects"
	"lumistream/internal/shared/authorization"
	"lumistream/internal/shared/errors"
	"lumistream/internal/shared/logger"
)

type UpdateStatusCommand struct {
	TicketID uint
	UserID   uint
	UserRole authorization.UserRole
	Status   string
}

type UpdateStatusResult struct {
	TicketID uint
	Status   string
}

type UpdateStatusUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewUpdateStatusUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *UpdateStatusUseCase) Execute(ctx context.Context, cmd UpdateStatusCommand) (*UpdateStatusResult, error) {
	uc.logger.Infow("executing update status use case", "ticket_id", cmd.TicketID, "status", cmd.Status)

	status, err := vo.NewTicketStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if !t.CanBeViewedBy(cmd.UserID, cmd.UserRole.IsStaff()) {
		uc.logger.Warnw("user cannot access ticket", "ticket_id", cmd.TicketID, "user_id", cmd.UserID)
		return nil, errors.NewForbiddenError("you don't have permission to access this ticket")
	}

	// Requesting the current status is a no-op, which keeps double-clicked
	// close buttons from erroring.
	if t.Status() != status {
		if err := t.ChangeStatus(status); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}

		if err := uc.ticketRepo.Update(ctx, t); err != nil {
			uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
			return nil, fmt.Errorf("failed to update ticket: %w", err)
		}
	}

	uc.logger.Infow("ticket status updated", "ticket_id", cmd.TicketID, "status", t.Status())
	return &UpdateStatusResult{
		TicketID: t.ID(),
		Status:   t.Status().String(),
	}, nil
}
