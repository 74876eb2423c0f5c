package usecases

import (
	"context"
	"fmt"

	"lumistream/internal/domain/review"
	vo "lumistream/internal/domain/review/valueobjects"
	"lumistream/internal/shared/errors"
	"lumistream/internal/shared/logger"
	"lumistream/internal/shared/utils"
)

type ListReviewsQuery struct {
	Status    string
	ProductID *uint
	// PublicOnly forces the published filter regardless of Status. Used by
	// the storefront listing so moderation states never leak.
	PublicOnly bool
	Page       int
	PageSize   int
}

type ListReviewsResult struct {
	Reviews  []*review.Review
	Total    int64
	Page     int
	PageSize int
}

type ListReviewsUseCase struct {
	reviewRepo review.Repository
	logger     logger.Interface
}

func NewListReviewsUseCase(reviewRepo review.Repository, logger logger.Interface) *ListReviewsUseCase {
	return &ListReviewsUseCase{
		reviewRepo: reviewRepo,
		logger:     logger,
	}
}

func (uc *ListReviewsUseCase) Execute(ctx context.Context, query ListReviewsQuery) (*ListReviewsResult, error) {
	p := utils.ValidatePagination(query.Page, query.PageSize)

	filter := review.ReviewFilter{
		ProductID: query.ProductID,
		Page:      p.Page,
		PageSize:  p.PageSize,
	}

	if query.PublicOnly {
		published := vo.StatusPublished
		filter.Status = &published
	} else if query.Status != "" {
		status, err := vo.NewReviewStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	reviews, total, err := uc.reviewRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list reviews", "error", err)
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	return &ListReviewsResult{
		Reviews:  reviews,
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}
