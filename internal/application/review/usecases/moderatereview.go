package usecases

import (
	"context"
	"fmt"

	"lumistream/internal/domain/review"
	vo "lumistream/internal/domain/review/valueobjects"
	"lumistream/internal/shared/errors"
	"lumistream/internal/shared/logger"
)

type ModerateReviewCommand struct {
	ReviewID uint
	Status   string
}

type ModerateReviewUseCase struct {
	reviewRepo review.Repository
	logger     logger.Interface
}

func NewModerateReviewUseCase(reviewRepo review.Repository, logger logger.Interface) *ModerateReviewUseCase {
	return &ModerateReviewUseCase{
		reviewRepo: reviewRepo,
		logger:     logger,
	}
}

func (uc *ModerateReviewUseCase) Execute(ctx context.Context, cmd ModerateReviewCommand) error {
	status, err := vo.NewReviewStatus(cmd.Status)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}

	r, err := uc.reviewRepo.GetByID(ctx, cmd.ReviewID)
	if err != nil {
		return errors.NewNotFoundError("review not found")
	}

	if err := r.Moderate(status); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.reviewRepo.Update(ctx, r); err != nil {
		uc.logger.Errorw("failed to update review", "review_id", cmd.ReviewID, "error", err)
		return fmt.Errorf("failed to update review: %w", err)
	}

	uc.logger.Infow("review moderated", "review_id", cmd.ReviewID, "status", status)
	return nil
}
