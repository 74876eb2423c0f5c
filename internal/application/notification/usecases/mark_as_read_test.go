package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumistream/internal/domain/notification"
	vo "lumistream/internal/domain/notification/valueobjects"
	"lumistream/internal/shared/biztime"
	apperrors "lumistream/internal/shared/errors"
)

func reconstructNotification(t *testing.T, id, userID uint, isRead bool) *notification.Notification {
	t.Helper()
	n, err := notification.ReconstructNotification(
		id, userID, "Title", "Content",
		vo.TypeInfo, vo.CategoryTicket, "/tickets/1",
		isRead, nil, biztime.NowUTC(),
	)
	require.NoError(t, err)
	return n
}

func TestMarkNotificationAsReadUseCase_Execute(t *testing.T) {
	t.Run("owner marks as read", func(t *testing.T) {
		n := reconstructNotification(t, 5, 10, false)

		var updated *notification.Notification
		repo := &mockNotificationRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*notification.Notification, error) {
				return n, nil
			},
			UpdateFunc: func(ctx context.Context, got *notification.Notification) error {
				updated = got
				return nil
			},
		}

		useCase := NewMarkNotificationAsReadUseCase(repo, &mockLogger{})
		err := useCase.Execute(context.Background(), 5, 10)

		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.True(t, updated.IsRead())
		assert.NotNil(t, updated.ReadAt())
	})

	t.Run("non-owner forbidden", func(t *testing.T) {
		n := reconstructNotification(t, 5, 10, false)
		repo := &mockNotificationRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*notification.Notification, error) {
				return n, nil
			},
		}

		useCase := NewMarkNotificationAsReadUseCase(repo, &mockLogger{})
		err := useCase.Execute(context.Background(), 5, 99)

		require.Error(t, err)
		assert.True(t, apperrors.IsForbiddenError(err))
	})

	t.Run("missing notification yields not found", func(t *testing.T) {
		repo := &mockNotificationRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*notification.Notification, error) {
				return nil, assert.AnError
			},
		}

		useCase := NewMarkNotificationAsReadUseCase(repo, &mockLogger{})
		err := useCase.Execute(context.Background(), 404, 10)

		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestMarkAllAsReadUseCase_Execute(t *testing.T) {
	repo := &mockNotificationRepository{
		MarkAllAsReadFunc: func(ctx context.Context, userID uint) (int64, error) {
			assert.Equal(t, uint(10), userID)
			return 7, nil
		},
	}

	useCase := NewMarkAllAsReadUseCase(repo, &mockLogger{})
	affected, err := useCase.Execute(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, int64(7), affected)
}

func TestDeleteNotificationUseCase_Execute(t *testing.T) {
	t.Run("owner deletes", func(t *testing.T) {
		n := reconstructNotification(t, 5, 10, true)
		deleted := false
		repo := &mockNotificationRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*notification.Notification, error) {
				return n, nil
			},
			DeleteFunc: func(ctx context.Context, id uint) error {
				deleted = true
				return nil
			},
		}

		useCase := NewDeleteNotificationUseCase(repo, &mockLogger{})
		require.NoError(t, useCase.Execute(context.Background(), 5, 10))
		assert.True(t, deleted)
	})

	t.Run("non-owner forbidden", func(t *testing.T) {
		n := reconstructNotification(t, 5, 10, true)
		repo := &mockNotificationRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*notification.Notification, error) {
				return n, nil
			},
		}

		useCase := NewDeleteNotificationUseCase(repo, &mockLogger{})
		err := useCase.Execute(context.Background(), 5, 11)
		require.Error(t, err)
		assert.True(t, apperrors.IsForbiddenError(err))
	})
}

func TestCreateRecipientConfigUseCase_Execute(t *testing.T) {
	t.Run("creates new config", func(t *testing.T) {
		repo := &mockRecipientConfigRepository{
			GetByEmailFunc: func(ctx context.Context, email string) (*notification.RecipientConfig, error) {
				return nil, apperrors.NewNotFoundError("not found")
			},
			SaveFunc: func(ctx context.Context, c *notification.RecipientConfig) error {
				return c.SetID(3)
			},
		}

		useCase := NewCreateRecipientConfigUseCase(repo, &mockLogger{})
		cfg, err := useCase.Execute(context.Background(), CreateRecipientConfigCommand{
			Email:        "ops@lumistream.tv",
			NotifyOrders: true,
			NotifyTicket: true,
		})

		require.NoError(t, err)
		assert.Equal(t, uint(3), cfg.ID())
		assert.True(t, cfg.NotifyTickets())
		assert.False(t, cfg.NotifyReviews())
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		existing := reconstructConfig(t, 1, "ops@lumistream.tv", true, true, true)
		repo := &mockRecipientConfigRepository{
			GetByEmailFunc: func(ctx context.Context, email string) (*notification.RecipientConfig, error) {
				return existing, nil
			},
		}

		useCase := NewCreateRecipientConfigUseCase(repo, &mockLogger{})
		cfg, err := useCase.Execute(context.Background(), CreateRecipientConfigCommand{
			Email: "ops@lumistream.tv",
		})

		require.Error(t, err)
		assert.Nil(t, cfg)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrorTypeConflict, appErr.Type)
	})
}
