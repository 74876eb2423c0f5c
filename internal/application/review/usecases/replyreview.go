package usecases

import (
	"context"
	"fmt"

	"lumistream/internal/domain/review"
	"lumistream/internal/shared/errors"
	"lumistream/internal/shared/logger"
)

type ReplyReviewCommand struct {
	ReviewID uint
	Reply    string
}

type ReplyReviewUseCase struct {
	reviewRepo review.Repository
	logger     logger.Interface
}

func NewReplyReviewUseCase(reviewRepo review.Repository, logger logger.Interface) *ReplyReviewUseCase {
	return &ReplyReviewUseCase{
		reviewRepo: reviewRepo,
		logger:     logger,
	}
}

func (uc *ReplyReviewUseCase) Execute(ctx context.Context, cmd ReplyReviewCommand) error {
	r, err := uc.reviewRepo.GetByID(ctx, cmd.ReviewID)
	if err != nil {
		return errors.NewNotFoundError("review not found")
	}

	if err := r.SetReply(cmd.Reply); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.reviewRepo.Update(ctx, r); err != nil {
		uc.logger.Errorw("failed to update review", "review_id", cmd.ReviewID, "error", err)
		return fmt.Errorf("failed to update review: %w", err)
	}

	uc.logger.Infow("review reply saved", "review_id", cmd.ReviewID)
	return nil
}
