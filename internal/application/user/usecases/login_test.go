package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumistream/internal/domain/user"
	"lumistream/internal/shared/authorization"
	apperrors "lumistream/internal/shared/errors"
)

func newStoredUser(t *testing.T) *user.User {
	t.Helper()
	u, err := user.NewUser("viewer@example.com", "$2a$12$hash", "Viewer", authorization.RoleCustomer)
	require.NoError(t, err)
	require.NoError(t, u.SetID(7))
	return u
}

func TestLoginUseCase_Execute(t *testing.T) {
	t.Run("successful login returns token", func(t *testing.T) {
		u := newStoredUser(t)
		repo := &mockUserRepository{
			GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
				assert.Equal(t, "viewer@example.com", email)
				return u, nil
			},
		}
		tokens := &mockTokenIssuer{
			GenerateFunc: func(userID uint, role authorization.UserRole) (string, error) {
				assert.Equal(t, uint(7), userID)
				assert.Equal(t, authorization.RoleCustomer, role)
				return "signed-token", nil
			},
			expMinutes: 30,
		}

		useCase := NewLoginUseCase(repo, &mockPasswordVerifier{}, tokens, &mockLogger{})
		result, err := useCase.Execute(context.Background(), LoginCommand{
			Email:    "viewer@example.com",
			Password: "secret",
		})

		require.NoError(t, err)
		assert.Equal(t, "signed-token", result.Token)
		assert.Equal(t, int64(1800), result.ExpiresIn)
		assert.Equal(t, uint(7), result.UserID)
		assert.Equal(t, "customer", result.Role)
	})

	t.Run("unknown email yields generic unauthorized", func(t *testing.T) {
		repo := &mockUserRepository{
			GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
				return nil, fmt.Errorf("user not found")
			},
		}

		useCase := NewLoginUseCase(repo, &mockPasswordVerifier{}, &mockTokenIssuer{}, &mockLogger{})
		result, err := useCase.Execute(context.Background(), LoginCommand{
			Email:    "nobody@example.com",
			Password: "secret",
		})

		require.Error(t, err)
		assert.Nil(t, result)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)
		assert.Equal(t, "invalid email or password", appErr.Message)
	})

	t.Run("wrong password yields same generic message", func(t *testing.T) {
		u := newStoredUser(t)
		repo := &mockUserRepository{
			GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
				return u, nil
			},
		}
		verifier := &mockPasswordVerifier{
			VerifyFunc: func(password, hash string) error {
				return fmt.Errorf("password verification failed")
			},
		}

		useCase := NewLoginUseCase(repo, verifier, &mockTokenIssuer{}, &mockLogger{})
		result, err := useCase.Execute(context.Background(), LoginCommand{
			Email:    "viewer@example.com",
			Password: "wrong",
		})

		require.Error(t, err)
		assert.Nil(t, result)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, "invalid email or password", appErr.Message)
	})

	t.Run("missing credentials rejected", func(t *testing.T) {
		useCase := NewLoginUseCase(&mockUserRepository{}, &mockPasswordVerifier{}, &mockTokenIssuer{}, &mockLogger{})
		_, err := useCase.Execute(context.Background(), LoginCommand{})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	})
}

func TestGetCurrentUserUseCase_Execute(t *testing.T) {
	u := newStoredUser(t)
	repo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			if id != 7 {
				return nil, fmt.Errorf("user not found")
			}
			return u, nil
		},
	}

	useCase := NewGetCurrentUserUseCase(repo, &mockLogger{})

	result, err := useCase.Execute(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "viewer@example.com", result.Email)

	_, err = useCase.Execute(context.Background(), 99)
	require.Error(t, err)
}
