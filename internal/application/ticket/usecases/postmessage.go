package usecases

import (
	"context"
	"fmt"
	"time"

	"lumistream/internal/domain/ticket"
	vo "lumistream/internal/domain/ticket/valueobjects"
	"lumistream/internal/shared/authorization"
	"lumistream/internal/shared/errors"
	"lumistream/internal/shared/logger"
)

type PostMessageCommand struct {
	TicketID uint
	UserID   uint
	UserRole authorization.UserRole
	Content  string
}

type PostMessageResult struct {
	MessageID  uint
	AuthorRole string
	CreatedAt  time.Time
}

type PostMessageUseCase struct {
	ticketRepo  ticket.TicketRepository
	messageRepo ticket.MessageRepository
	txMgr       Transactor
	eventBus    EventBus
	notifier    TicketNotifier
	logger      logger.Interface
}

func NewPostMessageUseCase(
	ticketRepo ticket.TicketRepository,
	messageRepo ticket.MessageRepository,
	txMgr Transactor,
	eventBus EventBus,
	notifier TicketNotifier,
	logger logger.Interface,
) *PostMessageUseCase {
	return &PostMessageUseCase{
		ticketRepo:  ticketRepo,
		messageRepo: messageRepo,
		txMgr:       txMgr,
		eventBus:    eventBus,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *PostMessageUseCase) Execute(ctx context.Context, cmd PostMessageCommand) (*PostMessageResult, error) {
	uc.logger.Infow("executing post message use case", "ticket_id", cmd.TicketID, "user_id", cmd.UserID)

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if !t.CanBeViewedBy(cmd.UserID, cmd.UserRole.IsStaff()) {
		uc.logger.Warnw("user cannot access ticket", "ticket_id", cmd.TicketID, "user_id", cmd.UserID)
		return nil, errors.NewForbiddenError("you don't have permission to access this ticket")
	}

	if t.Status().IsClosed() {
		return nil, errors.NewConflictError("cannot post message to a closed ticket")
	}

	// The author role is resolved once here and stored with the message,
	// so a later role change never rewrites past attribution.
	authorRole := vo.AuthorCustomer
	if cmd.UserRole.IsStaff() {
		authorRole = vo.AuthorStaff
	}

	msg, err := ticket.NewMessage(cmd.TicketID, cmd.UserID, authorRole, cmd.Content)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.messageRepo.Save(txCtx, msg); err != nil {
			uc.logger.Errorw("failed to save message", "ticket_id", cmd.TicketID, "error", err)
			return fmt.Errorf("failed to save message: %w", err)
		}

		if err := t.AppendMessage(msg); err != nil {
			return fmt.Errorf("failed to append message: %w", err)
		}

		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
			return fmt.Errorf("failed to update ticket: %w", err)
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	// Fan-out happens only after the transaction commits so subscribers
	// never see a message that later rolled back.
	if err := uc.eventBus.PublishMessagePosted(ctx, MessageEvent{
		TicketID:   msg.TicketID(),
		MessageID:  msg.ID(),
		SenderID:   msg.SenderID(),
		AuthorRole: msg.AuthorRole().String(),
		Content:    msg.Content(),
		CreatedAt:  msg.CreatedAt(),
	}); err != nil {
		uc.logger.Warnw("failed to publish message event", "ticket_id", cmd.TicketID, "error", err)
	}

	uc.notifier.TicketReplied(ctx, t, msg)

	uc.logger.Infow("message posted", "ticket_id", cmd.TicketID, "message_id", msg.ID())
	return &PostMessageResult{
		MessageID:  msg.ID(),
		AuthorRole: msg.AuthorRole().String(),
		CreatedAt:  msg.CreatedAt(),
	}, nil
}
