package usecases

import (
	"context"
	"fmt"

	"lumistream/internal/domain/notification"
	"lumistream/internal/shared/logger"
)

type ListRecipientConfigsUseCase struct {
	repo   notification.RecipientConfigRepository
	logger logger.Interface
}

func NewListRecipientConfigsUseCase(repo notification.RecipientConfigRepository, logger logger.Interface) *ListRecipientConfigsUseCase {
	return &ListRecipientConfigsUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *ListRecipientConfigsUseCase) Execute(ctx context.Context) ([]*notification.RecipientConfig, error) {
	configs, err := uc.repo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list recipient configs", "error", err)
		return nil, fmt.Errorf("failed to list recipient configs: %w", err)
	}
	return configs, nil
}
