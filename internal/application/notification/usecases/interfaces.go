package usecases

import (
	"context"

	"lumistream/internal/domain/notification"
)

// EmailSender delivers a single email. Implementations report whether SMTP
// is configured at all; when it is not, callers skip email delivery
// entirely instead of queueing failures.
type EmailSender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
	IsConfigured() bool
}

type SendNotificationExecutor interface {
	Execute(ctx context.Context, cmd SendNotificationCommand) (*SendNotificationResult, error)
}

type BroadcastNotificationExecutor interface {
	Execute(ctx context.Context, cmd BroadcastNotificationCommand) (*BroadcastNotificationResult, error)
}

type MarkNotificationAsReadExecutor interface {
	Execute(ctx context.Context, id uint, userID uint) error
}

type MarkAllAsReadExecutor interface {
	Execute(ctx context.Context, userID uint) (int64, error)
}

type DeleteNotificationExecutor interface {
	Execute(ctx context.Context, id uint, userID uint) error
}

type ListNotificationsExecutor interface {
	Execute(ctx context.Context, query ListNotificationsQuery) (*ListNotificationsResult, error)
}

type GetUnreadCountExecutor interface {
	Execute(ctx context.Context, userID uint) (int64, error)
}

type CreateRecipientConfigExecutor interface {
	Execute(ctx context.Context, cmd CreateRecipientConfigCommand) (*notification.RecipientConfig, error)
}

type UpdateRecipientConfigExecutor interface {
	Execute(ctx context.Context, cmd UpdateRecipientConfigCommand) (*notification.RecipientConfig, error)
}

type DeleteRecipientConfigExecutor interface {
	Execute(ctx context.Context, id uint) error
}

type ListRecipientConfigsExecutor interface {
	Execute(ctx context.Context) ([]*notification.RecipientConfig, error)
}
