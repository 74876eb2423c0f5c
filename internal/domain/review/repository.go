package review

import (
	"context"

	vo "lumistream/internal/domain/review/valueobjects"
)

type ReviewFilter struct {
	Status    *vo.ReviewStatus
	ProductID *uint
	UserID    *uint
	Page      int
	PageSize  int
}

type Repository interface {
	Save(ctx context.Context, r *Review) error
	Update(ctx context.Context, r *Review) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Review, error)
	List(ctx context.Context, filter ReviewFilter) ([]*Review, int64, error)
}
