package user

import (
	"context"

	"lumistream/internal/shared/authorization"
)

type Repository interface {
	Save(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// FindByRoles returns every user holding one of the given roles. Used
	// by the broadcast dispatcher to resolve staff audiences.
	FindByRoles(ctx context.Context, roles []authorization.UserRole) ([]*User, error)
}
