package usecases

import (
	"context"
	"fmt"

	"lumistream/internal/domain/review"
	"lumistream/internal/shared/botguard"
	"lumistream/internal/shared/errors"
	"lumistream/internal/shared/logger"
)

type CreateReviewCommand struct {
	ProductID uint
	UserID    uint
	Rating    int
	Title     string
	Content   string
	ImageURL  string
	// Guard carries the anti-bot fields from the public review form.
	Guard *botguard.Fields
}

type CreateReviewResult struct {
	ReviewID uint
	Status   string
	Decoy    bool
}

type CreateReviewUseCase struct {
	reviewRepo review.Repository
	notifier   ReviewNotifier
	logger     logger.Interface
}

func NewCreateReviewUseCase(
	reviewRepo review.Repository,
	notifier ReviewNotifier,
	logger logger.Interface,
) *CreateReviewUseCase {
	return &CreateReviewUseCase{
		reviewRepo: reviewRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *CreateReviewUseCase) Execute(ctx context.Context, cmd CreateReviewCommand) (*CreateReviewResult, error) {
	uc.logger.Infow("executing create review use case", "user_id", cmd.UserID)

	if cmd.Guard != nil {
		verdict, err := botguard.Check(*cmd.Guard)
		if err != nil {
			return nil, err
		}
		if verdict == botguard.VerdictDecoy {
			uc.logger.Warnw("honeypot triggered, discarding review", "user_id", cmd.UserID)
			return &CreateReviewResult{Decoy: true, Status: "pending"}, nil
		}
	}

	r, err := review.NewReview(cmd.ProductID, cmd.UserID, cmd.Rating, cmd.Title, cmd.Content, cmd.ImageURL)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.reviewRepo.Save(ctx, r); err != nil {
		uc.logger.Errorw("failed to save review", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to save review: %w", err)
	}

	uc.notifier.ReviewSubmitted(ctx, r)

	uc.logger.Infow("review created", "review_id", r.ID(), "user_id", cmd.UserID)
	return &CreateReviewResult{
		ReviewID: r.ID(),
		Status:   r.Status().String(),
	}, nil
}
