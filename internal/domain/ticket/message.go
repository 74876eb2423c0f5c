package ticket

import (
	"fmt"
	"time"

	vo "lumistream/internal/domain/ticket/valueobjects"
	"lumistream/internal/shared/biztime"
)

// Message is an immutable entry in a ticket's thread. There is no update
// path; display order is ascending createdAt with primary key as tiebreaker.
type Message struct {
	id         uint
	ticketID   uint
	senderID   uint
	authorRole vo.AuthorRole
	content    string
	createdAt  time.Time
}

func NewMessage(
	ticketID uint,
	senderID uint,
	authorRole vo.AuthorRole,
	content string,
) (*Message, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if senderID == 0 {
		return nil, fmt.Errorf("sender ID is required")
	}
	if !authorRole.IsValid() {
		return nil, fmt.Errorf("invalid author role")
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content cannot be empty")
	}
	if len(content) > 5000 {
		return nil, fmt.Errorf("content exceeds maximum length of 5000 characters")
	}

	return &Message{
		ticketID:   ticketID,
		senderID:   senderID,
		authorRole: authorRole,
		content:    content,
		createdAt:  biztime.NowUTC(),
	}, nil
}

func ReconstructMessage(
	id uint,
	ticketID uint,
	senderID uint,
	authorRole vo.AuthorRole,
	content string,
	createdAt time.Time,
) (*Message, error) {
	if id == 0 {
		return nil, fmt.Errorf("message ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if senderID == 0 {
		return nil, fmt.Errorf("sender ID is required")
	}
	if !authorRole.IsValid() {
		return nil, fmt.Errorf("invalid author role")
	}

	return &Message{
		id:         id,
		ticketID:   ticketID,
		senderID:   senderID,
		authorRole: authorRole,
		content:    content,
		createdAt:  createdAt,
	}, nil
}

func (m *Message) ID() uint {
	return m.id
}

func (m *Message) TicketID() uint {
	return m.ticketID
}

func (m *Message) SenderID() uint {
	return m.senderID
}

func (m *Message) AuthorRole() vo.AuthorRole {
	return m.authorRole
}

func (m *Message) Content() string {
	return m.content
}

func (m *Message) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Message) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("message ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("message ID cannot be zero")
	}
	m.id = id
	return nil
}

func (m *Message) IsFromStaff() bool {
	return m.authorRole == vo.AuthorStaff
}
