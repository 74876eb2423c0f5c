package usecases

import (
	"context"

	"lumistream/internal/domain/user"
	"lumistream/internal/shared/errors"
	"lumistream/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token     string
	ExpiresIn int64
	UserID    uint
	Email     string
	Name      string
	Role      string
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   PasswordVerifier
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher PasswordVerifier,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	u, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Warnw("login attempt for unknown email", "email", cmd.Email)
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	if err := uc.hasher.Verify(cmd.Password, u.PasswordHash()); err != nil {
		uc.logger.Warnw("login attempt with wrong password", "user_id", u.ID())
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	token, err := uc.tokens.Generate(u.ID(), u.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate token", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to create session")
	}

	uc.logger.Infow("user logged in", "user_id", u.ID(), "role", u.Role().String())
	return &LoginResult{
		Token:     token,
		ExpiresIn: int64(uc.tokens.AccessExpMinutes()) * 60,
		UserID:    u.ID(),
		Email:     u.Email(),
		Name:      u.Name(),
		Role:      u.Role().String(),
	}, nil
}
