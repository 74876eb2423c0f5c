package ticket

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "lumistream/internal/domain/ticket/valueobjects"
)

func TestNewTicket(t *testing.T) {
	tests := []struct {
		name        string
		ownerID     uint
		subject     string
		description string
		priority    vo.Priority
		wantErr     bool
		errContains string
	}{
		{
			name:        "valid ticket",
			ownerID:     1,
			subject:     "Stream keeps buffering",
			description: "The HD channels freeze every few minutes since yesterday.",
			priority:    vo.PriorityHigh,
			wantErr:     false,
		},
		{
			name:        "missing owner",
			ownerID:     0,
			subject:     "Subject",
			description: "Description",
			priority:    vo.PriorityLow,
			wantErr:     true,
			errContains: "owner ID is required",
		},
		{
			name:        "empty subject",
			ownerID:     1,
			subject:     "",
			description: "Description",
			priority:    vo.PriorityLow,
			wantErr:     true,
			errContains: "subject is required",
		},
		{
			name:        "subject too long",
			ownerID:     1,
			subject:     strings.Repeat("a", 201),
			description: "Description",
			priority:    vo.PriorityLow,
			wantErr:     true,
			errContains: "maximum length",
		},
		{
			name:        "empty description",
			ownerID:     1,
			subject:     "Subject",
			description: "",
			priority:    vo.PriorityLow,
			wantErr:     true,
			errContains: "description is required",
		},
		{
			name:        "description too long",
			ownerID:     1,
			subject:     "Subject",
			description: strings.Repeat("a", 5001),
			priority:    vo.PriorityLow,
			wantErr:     true,
			errContains: "maximum length",
		},
		{
			name:        "invalid priority",
			ownerID:     1,
			subject:     "Subject",
			description: "Description",
			priority:    vo.Priority("critical"),
			wantErr:     true,
			errContains: "invalid priority",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticket, err := NewTicket(tt.ownerID, tt.subject, tt.description, tt.priority)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				assert.Nil(t, ticket)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, ticket)
			assert.Equal(t, tt.ownerID, ticket.OwnerID())
			assert.Equal(t, tt.subject, ticket.Subject())
			assert.Equal(t, vo.StatusOpen, ticket.Status())
			assert.Equal(t, uint(0), ticket.ID())
			assert.False(t, ticket.CreatedAt().IsZero())
			assert.Equal(t, ticket.CreatedAt(), ticket.UpdatedAt())
		})
	}
}

func TestTicket_ChangeStatus(t *testing.T) {
	newOpenTicket := func(t *testing.T) *Ticket {
		ticket, err := NewTicket(1, "Subject", "Description", vo.PriorityMedium)
		require.NoError(t, err)
		require.NoError(t, ticket.SetID(10))
		return ticket
	}

	t.Run("close open ticket", func(t *testing.T) {
		ticket := newOpenTicket(t)
		err := ticket.Close()
		require.NoError(t, err)
		assert.Equal(t, vo.StatusClosed, ticket.Status())
	})

	t.Run("reopen closed ticket", func(t *testing.T) {
		ticket := newOpenTicket(t)
		require.NoError(t, ticket.Close())
		err := ticket.Reopen()
		require.NoError(t, err)
		assert.Equal(t, vo.StatusOpen, ticket.Status())
	})

	t.Run("same status is idempotent", func(t *testing.T) {
		ticket := newOpenTicket(t)
		before := ticket.UpdatedAt()
		err := ticket.ChangeStatus(vo.StatusOpen)
		require.NoError(t, err)
		assert.Equal(t, vo.StatusOpen, ticket.Status())
		assert.Equal(t, before, ticket.UpdatedAt())
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		ticket := newOpenTicket(t)
		err := ticket.ChangeStatus(vo.TicketStatus("archived"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid status")
	})
}

func TestTicket_AppendMessage(t *testing.T) {
	newTicketWithID := func(t *testing.T) *Ticket {
		ticket, err := NewTicket(1, "Subject", "Description", vo.PriorityMedium)
		require.NoError(t, err)
		require.NoError(t, ticket.SetID(10))
		return ticket
	}

	t.Run("append to open ticket", func(t *testing.T) {
		ticket := newTicketWithID(t)
		msg, err := NewMessage(10, 1, vo.AuthorCustomer, "Any update on this?")
		require.NoError(t, err)

		err = ticket.AppendMessage(msg)
		require.NoError(t, err)
		assert.Len(t, ticket.Messages(), 1)
	})

	t.Run("closed ticket rejects messages", func(t *testing.T) {
		ticket := newTicketWithID(t)
		require.NoError(t, ticket.Close())

		msg, err := NewMessage(10, 1, vo.AuthorCustomer, "Hello again")
		require.NoError(t, err)

		err = ticket.AppendMessage(msg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "closed")
	})

	t.Run("ticket ID mismatch rejected", func(t *testing.T) {
		ticket := newTicketWithID(t)
		msg, err := NewMessage(99, 1, vo.AuthorCustomer, "Wrong thread")
		require.NoError(t, err)

		err = ticket.AppendMessage(msg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mismatch")
	})

	t.Run("nil message rejected", func(t *testing.T) {
		ticket := newTicketWithID(t)
		err := ticket.AppendMessage(nil)
		require.Error(t, err)
	})
}

func TestTicket_CanBeViewedBy(t *testing.T) {
	ticket, err := NewTicket(5, "Subject", "Description", vo.PriorityLow)
	require.NoError(t, err)

	assert.True(t, ticket.CanBeViewedBy(5, false), "owner can view")
	assert.False(t, ticket.CanBeViewedBy(6, false), "other customer cannot view")
	assert.True(t, ticket.CanBeViewedBy(6, true), "staff can view any ticket")
}

func TestReconstructTicket(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	updatedAt := createdAt.Add(time.Hour)

	t.Run("valid reconstruction", func(t *testing.T) {
		ticket, err := ReconstructTicket(7, 3, "Subject", "Description",
			vo.PriorityUrgent, vo.StatusClosed, createdAt, updatedAt)
		require.NoError(t, err)
		assert.Equal(t, uint(7), ticket.ID())
		assert.Equal(t, vo.StatusClosed, ticket.Status())
		assert.Equal(t, createdAt, ticket.CreatedAt())
		assert.Equal(t, updatedAt, ticket.UpdatedAt())
	})

	t.Run("zero ID rejected", func(t *testing.T) {
		_, err := ReconstructTicket(0, 3, "Subject", "Description",
			vo.PriorityUrgent, vo.StatusOpen, createdAt, updatedAt)
		require.Error(t, err)
	})
}
