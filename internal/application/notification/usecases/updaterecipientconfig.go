package usecases

import (
	"context"
	"fmt"

	"lumistream/internal/domain/notification"
	"lumistream/internal/shared/errors"
	"lumistream/internal/shared/logger"
)

type UpdateRecipientConfigCommand struct {
	ID           uint
	NotifyOrders bool
	NotifyTicket bool
	NotifyReview bool
}

type UpdateRecipientConfigUseCase struct {
	repo   notification.RecipientConfigRepository
	logger logger.Interface
}

func NewUpdateRecipientConfigUseCase(repo notification.RecipientConfigRepository, logger logger.Interface) *UpdateRecipientConfigUseCase {
	return &UpdateRecipientConfigUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *UpdateRecipientConfigUseCase) Execute(ctx context.Context, cmd UpdateRecipientConfigCommand) (*notification.RecipientConfig, error) {
	cfg, err := uc.repo.GetByID(ctx, cmd.ID)
	if err != nil {
		return nil, errors.NewNotFoundError("recipient config not found")
	}

	cfg.UpdatePreferences(cmd.NotifyOrders, cmd.NotifyTicket, cmd.NotifyReview)

	if err := uc.repo.Update(ctx, cfg); err != nil {
		uc.logger.Errorw("failed to update recipient config", "id", cmd.ID, "error", err)
		return nil, fmt.Errorf("failed to update recipient config: %w", err)
	}

	return cfg, nil
}
