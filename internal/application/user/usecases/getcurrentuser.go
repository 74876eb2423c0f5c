package usecases

import (
	"context"

	"lumistream/internal/domain/user"
	"lumistream/internal/shared/errors"
	"lumistream/internal/shared/logger"
)

type CurrentUserResult struct {
	UserID uint
	Email  string
	Name   string
	Role   string
}

type GetCurrentUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetCurrentUserUseCase(userRepo user.Repository, logger logger.Interface) *GetCurrentUserUseCase {
	return &GetCurrentUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetCurrentUserUseCase) Execute(ctx context.Context, userID uint) (*CurrentUserResult, error) {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		uc.logger.Warnw("failed to load current user", "user_id", userID, "error", err)
		return nil, errors.NewNotFoundError("user not found")
	}

	return &CurrentUserResult{
		UserID: u.ID(),
		Email:  u.Email(),
		Name:   u.Name(),
		Role:   u.Role().String(),
	}, nil
}
