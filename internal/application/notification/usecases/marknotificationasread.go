package usecases

import (
	"context"
	"fmt"

	"lumistream/internal/domain/notification"
	"lumistream/internal/shared/errors"
	"lumistream/internal/shared/logger"
)

type MarkNotificationAsReadUseCase struct {
	repo   notification.Repository
	logger logger.Interface
}

func NewMarkNotificationAsReadUseCase(repo notification.Repository, logger logger.Interface) *MarkNotificationAsReadUseCase {
	return &MarkNotificationAsReadUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *MarkNotificationAsReadUseCase) Execute(ctx context.Context, id uint, userID uint) error {
	n, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to find notification", "id", id, "error", err)
		return errors.NewNotFoundError("notification not found")
	}

	if n.UserID() != userID {
		uc.logger.Warnw("unauthorized access to notification", "id", id, "user_id", userID, "owner_id", n.UserID())
		return errors.NewForbiddenError("you don't have permission to access this notification")
	}

	n.MarkAsRead()

	if err := uc.repo.Update(ctx, n); err != nil {
		uc.logger.Errorw("failed to persist notification update", "id", id, "error", err)
		return fmt.Errorf("failed to save notification: %w", err)
	}

	return nil
}
