package mappers

import (
	"fmt"
	"time"

	"lumistream/internal/domain/review"
	vo "lumistream/internal/domain/review/valueobjects"
	"lumistream/internal/infrastructure/persistence/models"
)

type ReviewMapper interface {
	ToModel(r *review.Review) *models.ReviewModel
	ToDomain(model *models.ReviewModel) (*review.Review, error)
}

type ReviewMapperImpl struct{}

func NewReviewMapper() ReviewMapper {
	return &ReviewMapperImpl{}
}

func (m *ReviewMapperImpl) ToModel(r *review.Review) *models.ReviewModel {
	model := &models.ReviewModel{
		ID:        r.ID(),
		ProductID: r.ProductID(),
		UserID:    r.UserID(),
		Rating:    r.Rating(),
		Title:     r.Title(),
		Content:   r.Content(),
		ImageURL:  r.ImageURL(),
		Status:    r.Status().String(),
		Reply:     r.Reply(),
		CreatedAt: r.CreatedAt().UnixMilli(),
		UpdatedAt: r.UpdatedAt().UnixMilli(),
	}

	if r.RepliedAt() != nil {
		repliedAt := r.RepliedAt().UnixMilli()
		model.RepliedAt = &repliedAt
	}

	return model
}

func (m *ReviewMapperImpl) ToDomain(model *models.ReviewModel) (*review.Review, error) {
	status, err := vo.NewReviewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid status in review %d: %w", model.ID, err)
	}

	var repliedAt *time.Time
	if model.RepliedAt != nil {
		t := time.UnixMilli(*model.RepliedAt).UTC()
		repliedAt = &t
	}

	return review.ReconstructReview(
		model.ID,
		model.ProductID,
		model.UserID,
		model.Rating,
		model.Title,
		model.Content,
		model.ImageURL,
		status,
		model.Reply,
		repliedAt,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
}
