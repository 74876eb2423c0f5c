package ticket

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "lumistream/internal/domain/ticket/valueobjects"
)

func TestNewMessage(t *testing.T) {
	tests := []struct {
		name        string
		ticketID    uint
		senderID    uint
		authorRole  vo.AuthorRole
		content     string
		wantErr     bool
		errContains string
	}{
		{
			name:       "valid customer message",
			ticketID:   1,
			senderID:   2,
			authorRole: vo.AuthorCustomer,
			content:    "My playlist stopped loading.",
			wantErr:    false,
		},
		{
			name:       "valid staff message",
			ticketID:   1,
			senderID:   3,
			authorRole: vo.AuthorStaff,
			content:    "We restarted the transcoder, please retry.",
			wantErr:    false,
		},
		{
			name:        "missing ticket ID",
			ticketID:    0,
			senderID:    2,
			authorRole:  vo.AuthorCustomer,
			content:     "Hello",
			wantErr:     true,
			errContains: "ticket ID is required",
		},
		{
			name:        "missing sender ID",
			ticketID:    1,
			senderID:    0,
			authorRole:  vo.AuthorCustomer,
			content:     "Hello",
			wantErr:     true,
			errContains: "sender ID is required",
		},
		{
			name:        "invalid author role",
			ticketID:    1,
			senderID:    2,
			authorRole:  vo.AuthorRole("bot"),
			content:     "Hello",
			wantErr:     true,
			errContains: "invalid author role",
		},
		{
			name:        "empty content",
			ticketID:    1,
			senderID:    2,
			authorRole:  vo.AuthorCustomer,
			content:     "",
			wantErr:     true,
			errContains: "content cannot be empty",
		},
		{
			name:        "content too long",
			ticketID:    1,
			senderID:    2,
			authorRole:  vo.AuthorCustomer,
			content:     strings.Repeat("a", 5001),
			wantErr:     true,
			errContains: "maximum length",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := NewMessage(tt.ticketID, tt.senderID, tt.authorRole, tt.content)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				assert.Nil(t, msg)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, msg)
			assert.Equal(t, tt.ticketID, msg.TicketID())
			assert.Equal(t, tt.senderID, msg.SenderID())
			assert.Equal(t, tt.authorRole, msg.AuthorRole())
			assert.Equal(t, tt.content, msg.Content())
			assert.False(t, msg.CreatedAt().IsZero())
		})
	}
}

func TestMessage_SetID(t *testing.T) {
	msg, err := NewMessage(1, 2, vo.AuthorCustomer, "Hello")
	require.NoError(t, err)

	require.NoError(t, msg.SetID(42))
	assert.Equal(t, uint(42), msg.ID())

	err = msg.SetID(43)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already set")
}

func TestMessage_IsFromStaff(t *testing.T) {
	staffMsg, err := NewMessage(1, 2, vo.AuthorStaff, "Resolved")
	require.NoError(t, err)
	assert.True(t, staffMsg.IsFromStaff())

	customerMsg, err := NewMessage(1, 3, vo.AuthorCustomer, "Thanks")
	require.NoError(t, err)
	assert.False(t, customerMsg.IsFromStaff())
}
