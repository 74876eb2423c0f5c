package usecases

import (
	"context"

	"lumistream/internal/shared/authorization"
)

// PasswordVerifier checks a plaintext password against a stored hash.
type PasswordVerifier interface {
	Verify(password, hash string) error
}

// TokenIssuer mints session tokens for authenticated users.
type TokenIssuer interface {
	Generate(userID uint, role authorization.UserRole) (string, error)
	AccessExpMinutes() int
}

// LoginExecutor is the handler-facing port of the login use case.
type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

// GetCurrentUserExecutor resolves the authenticated user's profile.
type GetCurrentUserExecutor interface {
	Execute(ctx context.Context, userID uint) (*CurrentUserResult, error)
}
