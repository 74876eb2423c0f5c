package mappers

import (
	"fmt"
	"time"

	"lumistream/internal/domain/user"
	"lumistream/internal/infrastructure/persistence/models"
	"lumistream/internal/shared/authorization"
)

type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Name:         u.Name(),
		Role:         u.Role().String(),
		CreatedAt:    u.CreatedAt().UnixMilli(),
		UpdatedAt:    u.UpdatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	role := authorization.UserRole(model.Role)
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role in user %d: %s", model.ID, model.Role)
	}

	return user.ReconstructUser(
		model.ID,
		model.Email,
		model.PasswordHash,
		model.Name,
		role,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
}
