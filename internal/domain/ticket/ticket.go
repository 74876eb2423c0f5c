package ticket

import (
	"fmt"
	"time"

	vo "lumistream/internal/domain/ticket/valueobjects"
	"lumistream/internal/shared/biztime"
)

type Ticket struct {
	id          uint
	ownerID     uint
	subject     string
	description string
	priority    vo.Priority
	status      vo.TicketStatus
	createdAt   time.Time
	updatedAt   time.Time
	messages    []*Message
}

func NewTicket(
	ownerID uint,
	subject string,
	description string,
	priority vo.Priority,
) (*Ticket, error) {
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if len(subject) == 0 {
		return nil, fmt.Errorf("subject is required")
	}
	if len(subject) > 200 {
		return nil, fmt.Errorf("subject exceeds maximum length of 200 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	now := biztime.NowUTC()
	return &Ticket{
		ownerID:     ownerID,
		subject:     subject,
		description: description,
		priority:    priority,
		status:      vo.StatusOpen,
		createdAt:   now,
		updatedAt:   now,
		messages:    []*Message{},
	}, nil
}

func ReconstructTicket(
	id uint,
	ownerID uint,
	subject string,
	description string,
	priority vo.Priority,
	status vo.TicketStatus,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if len(subject) == 0 {
		return nil, fmt.Errorf("subject is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &Ticket{
		id:          id,
		ownerID:     ownerID,
		subject:     subject,
		description: description,
		priority:    priority,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		messages:    []*Message{},
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) OwnerID() uint {
	return t.ownerID
}

func (t *Ticket) Subject() string {
	return t.subject
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) Messages() []*Message {
	messagesCopy := make([]*Message, len(t.messages))
	copy(messagesCopy, t.messages)
	return messagesCopy
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// ChangeStatus transitions the ticket. Requesting the current status is a
// no-op so repeated submissions stay idempotent.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if t.status == newStatus {
		return nil
	}

	if !t.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", t.status, newStatus)
	}

	t.status = newStatus
	t.updatedAt = biztime.NowUTC()

	return nil
}

func (t *Ticket) Close() error {
	return t.ChangeStatus(vo.StatusClosed)
}

func (t *Ticket) Reopen() error {
	return t.ChangeStatus(vo.StatusOpen)
}

// AppendMessage attaches a message to the thread and bumps the activity
// timestamp. Closed tickets reject new messages until reopened.
func (t *Ticket) AppendMessage(msg *Message) error {
	if msg == nil {
		return fmt.Errorf("message cannot be nil")
	}
	if msg.TicketID() != t.id {
		return fmt.Errorf("message ticket ID mismatch")
	}
	if t.status.IsClosed() {
		return fmt.Errorf("cannot post message to a closed ticket")
	}

	t.messages = append(t.messages, msg)
	t.updatedAt = biztime.NowUTC()

	return nil
}

// CanBeViewedBy reports whether the user may see this ticket. Staff see all
// tickets; customers only their own.
func (t *Ticket) CanBeViewedBy(userID uint, isStaff bool) bool {
	if isStaff {
		return true
	}
	return t.ownerID == userID
}
