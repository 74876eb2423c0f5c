package usecases

import (
	"context"
	"time"

	"lumistream/internal/domain/ticket"
)

// MessageEvent is the payload fanned out to realtime subscribers after a
// message commits.
type MessageEvent struct {
	TicketID   uint      `json:"ticket_id"`
	MessageID  uint      `json:"message_id"`
	SenderID   uint      `json:"sender_id"`
	AuthorRole string    `json:"author_role"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

// Transactor runs a function inside a database transaction. Satisfied by
// db.TransactionManager.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventBus publishes committed message events for live thread views. A
// publish failure never fails the originating request.
type EventBus interface {
	PublishMessagePosted(ctx context.Context, event MessageEvent) error
}

// TicketNotifier delivers best-effort notifications after ticket activity.
// Implementations run asynchronously and must never block the caller.
type TicketNotifier interface {
	TicketCreated(ctx context.Context, t *ticket.Ticket)
	TicketReplied(ctx context.Context, t *ticket.Ticket, msg *ticket.Message)
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type PostMessageExecutor interface {
	Execute(ctx context.Context, cmd PostMessageCommand) (*PostMessageResult, error)
}

type UpdateStatusExecutor interface {
	Execute(ctx context.Context, cmd UpdateStatusCommand) (*UpdateStatusResult, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) error
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*GetTicketResult, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}
