package usecases

import (
	"context"
	"fmt"

	"lumistream/internal/domain/notification"
	"lumistream/internal/shared/errors"
	"lumistream/internal/shared/logger"
)

type CreateRecipientConfigCommand struct {
	Email        string
	NotifyOrders bool
	NotifyTicket bool
	NotifyReview bool
}

type CreateRecipientConfigUseCase struct {
	repo   notification.RecipientConfigRepository
	logger logger.Interface
}

func NewCreateRecipientConfigUseCase(repo notification.RecipientConfigRepository, logger logger.Interface) *CreateRecipientConfigUseCase {
	return &CreateRecipientConfigUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *CreateRecipientConfigUseCase) Execute(ctx context.Context, cmd CreateRecipientConfigCommand) (*notification.RecipientConfig, error) {
	if existing, err := uc.repo.GetByEmail(ctx, cmd.Email); err == nil && existing != nil {
		return nil, errors.NewConflictError("recipient config already exists for this email")
	}

	cfg, err := notification.NewRecipientConfig(cmd.Email, cmd.NotifyOrders, cmd.NotifyTicket, cmd.NotifyReview)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.repo.Save(ctx, cfg); err != nil {
		uc.logger.Errorw("failed to save recipient config", "email", cmd.Email, "error", err)
		return nil, fmt.Errorf("failed to save recipient config: %w", err)
	}

	uc.logger.Infow("recipient config created", "id", cfg.ID(), "email", cfg.Email())
	return cfg, nil
}
