package usecases

import (
	"context"
	"fmt"

	"lumistream/internal/domain/ticket"
	"lumistream/internal/shared/errors"
	"lumistream/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID uint
	UserID   uint
}

type DeleteTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	messageRepo ticket.MessageRepository
	txMgr       Transactor
	logger      logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.TicketRepository,
	messageRepo ticket.MessageRepository,
	txMgr Transactor,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo:  ticketRepo,
		messageRepo: messageRepo,
		txMgr:       txMgr,
		logger:      logger,
	}
}

// Execute removes a ticket and its whole thread. Only the owner may delete;
// staff close tickets instead so the audit trail survives.
func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", cmd.TicketID, "user_id", cmd.UserID)

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "ticket_id", cmd.TicketID, "error", err)
		return errors.NewNotFoundError("ticket not found")
	}

	if t.OwnerID() != cmd.UserID {
		uc.logger.Warnw("non-owner attempted ticket deletion", "ticket_id", cmd.TicketID, "user_id", cmd.UserID)
		return errors.NewForbiddenError("only the ticket owner can delete it")
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.messageRepo.DeleteByTicketID(txCtx, cmd.TicketID); err != nil {
			uc.logger.Errorw("failed to delete ticket messages", "ticket_id", cmd.TicketID, "error", err)
			return fmt.Errorf("failed to delete ticket messages: %w", err)
		}

		if err := uc.ticketRepo.Delete(txCtx, cmd.TicketID); err != nil {
			uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketID, "error", err)
			return fmt.Errorf("failed to delete ticket: %w", err)
		}

		return nil
	})
	if txErr != nil {
		return txErr
	}

	uc.logger.Infow("ticket deleted", "ticket_id", cmd.TicketID)
	return nil
}
