package usecases

import (
	"context"
	"fmt"

	"lumistream/internal/domain/notification"
	vo "lumistream/internal/domain/notification/valueobjects"
	"lumistream/internal/shared/errors"
	"lumistream/internal/shared/logger"
	"lumistream/internal/shared/utils"
)

type ListNotificationsQuery struct {
	UserID     uint
	UnreadOnly bool
	Category   string
	Page       int
	PageSize   int
}

type ListNotificationsResult struct {
	Notifications []*notification.Notification
	Total         int64
	Page          int
	PageSize      int
}

type ListNotificationsUseCase struct {
	repo   notification.Repository
	logger logger.Interface
}

func NewListNotificationsUseCase(repo notification.Repository, logger logger.Interface) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, query ListNotificationsQuery) (*ListNotificationsResult, error) {
	p := utils.ValidatePagination(query.Page, query.PageSize)

	filter := notification.NotificationFilter{
		UserID:   query.UserID,
		Page:     p.Page,
		PageSize: p.PageSize,
	}

	if query.UnreadOnly {
		unread := false
		filter.IsRead = &unread
	}

	if query.Category != "" {
		if _, err := vo.NewCategory(query.Category); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Category = &query.Category
	}

	notifications, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "user_id", query.UserID, "error", err)
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	return &ListNotificationsResult{
		Notifications: notifications,
		Total:         total,
		Page:          p.Page,
		PageSize:      p.PageSize,
	}, nil
}
