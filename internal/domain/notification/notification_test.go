package notification

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "lumistream/internal/domain/notification/valueobjects"
)

func TestNewNotification(t *testing.T) {
	tests := []struct {
		name        string
		userID      uint
		title       string
		content     string
		notifType   vo.NotificationType
		category    vo.Category
		wantErr     bool
		errContains string
	}{
		{
			name:      "valid notification",
			userID:    1,
			title:     "New reply on your ticket",
			content:   "Support replied to your ticket about channel buffering.",
			notifType: vo.TypeInfo,
			category:  vo.CategoryTicket,
			wantErr:   false,
		},
		{
			name:        "missing user",
			userID:      0,
			title:       "Title",
			content:     "Content",
			notifType:   vo.TypeInfo,
			category:    vo.CategorySystem,
			wantErr:     true,
			errContains: "user ID is required",
		},
		{
			name:        "empty title",
			userID:      1,
			title:       "",
			content:     "Content",
			notifType:   vo.TypeInfo,
			category:    vo.CategorySystem,
			wantErr:     true,
			errContains: "title is required",
		},
		{
			name:        "title too long",
			userID:      1,
			title:       strings.Repeat("a", 201),
			content:     "Content",
			notifType:   vo.TypeInfo,
			category:    vo.CategorySystem,
			wantErr:     true,
			errContains: "maximum length",
		},
		{
			name:        "empty content",
			userID:      1,
			title:       "Title",
			content:     "",
			notifType:   vo.TypeInfo,
			category:    vo.CategorySystem,
			wantErr:     true,
			errContains: "content is required",
		},
		{
			name:        "invalid type",
			userID:      1,
			title:       "Title",
			content:     "Content",
			notifType:   vo.NotificationType("critical"),
			category:    vo.CategorySystem,
			wantErr:     true,
			errContains: "invalid notification type",
		},
		{
			name:        "invalid category",
			userID:      1,
			title:       "Title",
			content:     "Content",
			notifType:   vo.TypeInfo,
			category:    vo.Category("billing"),
			wantErr:     true,
			errContains: "invalid notification category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := NewNotification(tt.userID, tt.title, tt.content, tt.notifType, tt.category, "")

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				assert.Nil(t, n)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, n)
			assert.Equal(t, tt.userID, n.UserID())
			assert.False(t, n.IsRead())
			assert.Nil(t, n.ReadAt())
		})
	}
}

func TestNotification_MarkAsRead(t *testing.T) {
	n, err := NewNotification(1, "Title", "Content", vo.TypeSuccess, vo.CategoryOrder, "/orders/5")
	require.NoError(t, err)

	n.MarkAsRead()
	require.True(t, n.IsRead())
	require.NotNil(t, n.ReadAt())
	firstReadAt := *n.ReadAt()

	// second call keeps the original timestamp
	n.MarkAsRead()
	assert.Equal(t, firstReadAt, *n.ReadAt())
}

func TestNewRecipientConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		c, err := NewRecipientConfig("ops@lumistream.tv", true, true, false)
		require.NoError(t, err)
		assert.Equal(t, "ops@lumistream.tv", c.Email())
		assert.True(t, c.NotifyOrders())
		assert.True(t, c.NotifyTickets())
		assert.False(t, c.NotifyReviews())
	})

	t.Run("invalid email rejected", func(t *testing.T) {
		_, err := NewRecipientConfig("not-an-email", true, true, true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid email")
	})
}

func TestRecipientConfig_SubscribedTo(t *testing.T) {
	c, err := NewRecipientConfig("ops@lumistream.tv", true, false, true)
	require.NoError(t, err)

	assert.True(t, c.SubscribedTo("orders"))
	assert.False(t, c.SubscribedTo("tickets"))
	assert.True(t, c.SubscribedTo("reviews"))
	assert.True(t, c.SubscribedTo(""), "empty event matches all configs")
	assert.False(t, c.SubscribedTo("payments"), "unknown event matches nothing")
}
