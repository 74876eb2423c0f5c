package usecases

import (
	"context"

	"lumistream/internal/domain/review"
)

// ReviewNotifier alerts moderators about newly submitted reviews. Delivery
// is best effort and asynchronous.
type ReviewNotifier interface {
	ReviewSubmitted(ctx context.Context, r *review.Review)
}

type CreateReviewExecutor interface {
	Execute(ctx context.Context, cmd CreateReviewCommand) (*CreateReviewResult, error)
}

type ModerateReviewExecutor interface {
	Execute(ctx context.Context, cmd ModerateReviewCommand) error
}

type ReplyReviewExecutor interface {
	Execute(ctx context.Context, cmd ReplyReviewCommand) error
}

type ListReviewsExecutor interface {
	Execute(ctx context.Context, query ListReviewsQuery) (*ListReviewsResult, error)
}
