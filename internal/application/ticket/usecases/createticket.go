package usecases

import (
	"context"
	"fmt"
	"time"

	"lumistream/internal/domain/ticket"
	vo "lumistream/internal/domain/ticket/valueobjects"
	"lumistream/internal/shared/botguard"
	"lumistream/internal/shared/errors"
	"lumistream/internal/shared/logger"
)

type CreateTicketCommand struct {
	UserID      uint
	Subject     string
	Description string
	Priority    string
	// Guard carries the bot-mitigation fields from the public storefront
	// form. The in-account portal path leaves it nil.
	Guard *botguard.Fields
}

type CreateTicketResult struct {
	TicketID  uint
	Status    string
	CreatedAt time.Time
	// Decoy is set when a honeypot submission was silently discarded. The
	// handler still reports success so the bot learns nothing.
	Decoy bool
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	notifier   TicketNotifier
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	notifier TicketNotifier,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "user_id", cmd.UserID)

	if cmd.Guard != nil {
		verdict, err := botguard.Check(*cmd.Guard)
		if err != nil {
			return nil, err
		}
		if verdict == botguard.VerdictDecoy {
			uc.logger.Warnw("honeypot triggered, discarding submission", "user_id", cmd.UserID)
			return &CreateTicketResult{Decoy: true, Status: vo.StatusOpen.String()}, nil
		}
	}

	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := ticket.NewTicket(cmd.UserID, cmd.Subject, cmd.Description, priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, t); err != nil {
		uc.logger.Errorw("failed to save ticket", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to save ticket: %w", err)
	}

	uc.notifier.TicketCreated(ctx, t)

	uc.logger.Infow("ticket created", "ticket_id", t.ID(), "user_id", cmd.UserID)
	return &CreateTicketResult{
		TicketID:  t.ID(),
		Status:    t.Status().String(),
		CreatedAt: t.CreatedAt(),
	}, nil
}
