package ticket

import (
	"context"

	vo "lumistream/internal/domain/ticket/valueobjects"
)

// TicketFilter narrows List queries.
type TicketFilter struct {
	OwnerID  *uint
	Status   *vo.TicketStatus
	Priority *vo.Priority
	Page     int
	PageSize int
}

type TicketRepository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	// Delete removes the ticket and its entire thread.
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, int64, error)
}

type MessageRepository interface {
	Save(ctx context.Context, msg *Message) error
	// ListByTicketID returns the thread in ascending created_at order,
	// ties broken by primary key.
	ListByTicketID(ctx context.Context, ticketID uint) ([]*Message, error)
	DeleteByTicketID(ctx context.Context, ticketID uint) error
}
