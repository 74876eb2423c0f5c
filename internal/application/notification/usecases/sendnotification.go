package usecases

import (
	"context"
	"fmt"

	"lumistream/internal/domain/notification"
	vo "lumistream/internal/domain/notification/valueobjects"
	"lumistream/internal/shared/errors"
	"lumistream/internal/shared/logger"
)

type SendNotificationCommand struct {
	UserID   uint
	Title    string
	Content  string
	Type     string
	Category string
	Link     string
}

type SendNotificationResult struct {
	NotificationID uint
}

// SendNotificationUseCase creates a single in-app notification for one user.
type SendNotificationUseCase struct {
	repo   notification.Repository
	logger logger.Interface
}

func NewSendNotificationUseCase(repo notification.Repository, logger logger.Interface) *SendNotificationUseCase {
	return &SendNotificationUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *SendNotificationUseCase) Execute(ctx context.Context, cmd SendNotificationCommand) (*SendNotificationResult, error) {
	notifType, err := vo.NewNotificationType(cmd.Type)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	category, err := vo.NewCategory(cmd.Category)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	n, err := notification.NewNotification(cmd.UserID, cmd.Title, cmd.Content, notifType, category, cmd.Link)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.repo.Save(ctx, n); err != nil {
		uc.logger.Errorw("failed to save notification", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to save notification: %w", err)
	}

	uc.logger.Infow("notification sent", "notification_id", n.ID(), "user_id", cmd.UserID)
	return &SendNotificationResult{NotificationID: n.ID()}, nil
}
