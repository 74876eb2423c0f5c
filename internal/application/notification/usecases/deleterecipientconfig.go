package usecases

import (
	"context"
	"fmt"

	"lumistream/internal/domain/notification"
	"lumistream/internal/shared/errors"
	"lumistream/internal/shared/logger"
)

type DeleteRecipientConfigUseCase struct {
	repo   notification.RecipientConfigRepository
	logger logger.Interface
}

func NewDeleteRecipientConfigUseCase(repo notification.RecipientConfigRepository, logger logger.Interface) *DeleteRecipientConfigUseCase {
	return &DeleteRecipientConfigUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *DeleteRecipientConfigUseCase) Execute(ctx context.Context, id uint) error {
	if _, err := uc.repo.GetByID(ctx, id); err != nil {
		return errors.NewNotFoundError("recipient config not found")
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete recipient config", "id", id, "error", err)
		return fmt.Errorf("failed to delete recipient config: %w", err)
	}

	uc.logger.Infow("recipient config deleted", "id", id)
	return nil
}
