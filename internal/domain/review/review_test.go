package review

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "lumistream/internal/domain/review/valueobjects"
)

func TestNewReview(t *testing.T) {
	tests := []struct {
		name        string
		productID   uint
		userID      uint
		rating      int
		title       string
		content     string
		imageURL    string
		wantErr     bool
		errContains string
	}{
		{
			name:      "valid review",
			productID: 2,
			userID:    1,
			rating:    5,
			title:     "Excellent streams",
			content:   "Rock solid streams, support answered within the hour.",
			wantErr:   false,
		},
		{
			name:        "missing product",
			productID:   0,
			userID:      1,
			rating:      4,
			title:       "Good",
			content:     "Good",
			wantErr:     true,
			errContains: "product ID is required",
		},
		{
			name:        "missing user",
			productID:   2,
			userID:      0,
			rating:      4,
			title:       "Good",
			content:     "Good",
			wantErr:     true,
			errContains: "user ID is required",
		},
		{
			name:        "rating too low",
			productID:   2,
			userID:      1,
			rating:      0,
			title:       "Good",
			content:     "Good",
			wantErr:     true,
			errContains: "between 1 and 5",
		},
		{
			name:        "rating too high",
			productID:   2,
			userID:      1,
			rating:      6,
			title:       "Good",
			content:     "Good",
			wantErr:     true,
			errContains: "between 1 and 5",
		},
		{
			name:        "empty title",
			productID:   2,
			userID:      1,
			rating:      3,
			title:       "",
			content:     "Good",
			wantErr:     true,
			errContains: "title is required",
		},
		{
			name:        "empty content",
			productID:   2,
			userID:      1,
			rating:      3,
			title:       "Good",
			content:     "",
			wantErr:     true,
			errContains: "content is required",
		},
		{
			name:        "content too long",
			productID:   2,
			userID:      1,
			rating:      3,
			title:       "Good",
			content:     strings.Repeat("a", 2001),
			wantErr:     true,
			errContains: "maximum length",
		},
		{
			name:        "image url too long",
			productID:   2,
			userID:      1,
			rating:      3,
			title:       "Good",
			content:     "Good",
			imageURL:    "https://cdn.example.com/" + strings.Repeat("a", 500),
			wantErr:     true,
			errContains: "image URL exceeds",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReview(tt.productID, tt.userID, tt.rating, tt.title, tt.content, tt.imageURL)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				assert.Nil(t, r)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, r)
			assert.Equal(t, vo.StatusPending, r.Status())
		})
	}
}

func TestReview_Moderate(t *testing.T) {
	newPending := func(t *testing.T) *Review {
		r, err := NewReview(2, 1, 4, "Decent", "Solid service overall.", "")
		require.NoError(t, err)
		return r
	}

	t.Run("publish pending review", func(t *testing.T) {
		r := newPending(t)
		require.NoError(t, r.Moderate(vo.StatusPublished))
		assert.Equal(t, vo.StatusPublished, r.Status())
	})

	t.Run("reject pending review", func(t *testing.T) {
		r := newPending(t)
		require.NoError(t, r.Moderate(vo.StatusRejected))
		assert.Equal(t, vo.StatusRejected, r.Status())
	})

	t.Run("publish previously rejected review", func(t *testing.T) {
		r := newPending(t)
		require.NoError(t, r.Moderate(vo.StatusRejected))
		require.NoError(t, r.Moderate(vo.StatusPublished))
		assert.Equal(t, vo.StatusPublished, r.Status())
	})

	t.Run("cannot moderate back to pending", func(t *testing.T) {
		r := newPending(t)
		err := r.Moderate(vo.StatusPending)
		require.Error(t, err)
	})
}

func TestReview_SetReply(t *testing.T) {
	r, err := NewReview(2, 1, 2, "Buffering issues", "Stream dropped during the match.", "")
	require.NoError(t, err)

	require.NoError(t, r.SetReply("Sorry about that, we have added extra capacity."))
	assert.NotNil(t, r.RepliedAt())

	err = r.SetReply("")
	require.Error(t, err)
}
