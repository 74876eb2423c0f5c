package review

import (
	"fmt"
	"time"

	vo "lumistream/internal/domain/review/valueobjects"
	"lumistream/internal/shared/biztime"
)

type Review struct {
	id        uint
	productID uint
	userID    uint
	rating    int
	title     string
	content   string
	imageURL  string
	status    vo.ReviewStatus
	reply     string
	repliedAt *time.Time
	createdAt time.Time
	updatedAt time.Time
}

func NewReview(productID, userID uint, rating int, title, content, imageURL string) (*Review, error) {
	if productID == 0 {
		return nil, fmt.Errorf("product ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content is required")
	}
	if len(content) > 2000 {
		return nil, fmt.Errorf("content exceeds maximum length of 2000 characters")
	}
	if len(imageURL) > 500 {
		return nil, fmt.Errorf("image URL exceeds maximum length of 500 characters")
	}

	now := biztime.NowUTC()
	return &Review{
		productID: productID,
		userID:    userID,
		rating:    rating,
		title:     title,
		content:   content,
		imageURL:  imageURL,
		status:    vo.StatusPending,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructReview(
	id uint,
	productID uint,
	userID uint,
	rating int,
	title string,
	content string,
	imageURL string,
	status vo.ReviewStatus,
	reply string,
	repliedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Review, error) {
	if id == 0 {
		return nil, fmt.Errorf("review ID cannot be zero")
	}
	if productID == 0 {
		return nil, fmt.Errorf("product ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid review status")
	}

	return &Review{
		id:        id,
		productID: productID,
		userID:    userID,
		rating:    rating,
		title:     title,
		content:   content,
		imageURL:  imageURL,
		status:    status,
		reply:     reply,
		repliedAt: repliedAt,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (r *Review) ID() uint {
	return r.id
}

func (r *Review) ProductID() uint {
	return r.productID
}

func (r *Review) UserID() uint {
	return r.userID
}

func (r *Review) Rating() int {
	return r.rating
}

func (r *Review) Title() string {
	return r.title
}

func (r *Review) Content() string {
	return r.content
}

func (r *Review) ImageURL() string {
	return r.imageURL
}

func (r *Review) Status() vo.ReviewStatus {
	return r.status
}

func (r *Review) Reply() string {
	return r.reply
}

func (r *Review) RepliedAt() *time.Time {
	return r.repliedAt
}

func (r *Review) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Review) UpdatedAt() time.Time {
	return r.updatedAt
}

func (r *Review) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("review ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("review ID cannot be zero")
	}
	r.id = id
	return nil
}

// Moderate moves the review to a final state. Re-moderating is allowed so a
// rejected review can still be published later.
func (r *Review) Moderate(status vo.ReviewStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid review status: %s", status)
	}
	if status == vo.StatusPending {
		return fmt.Errorf("cannot moderate a review back to pending")
	}

	r.status = status
	r.updatedAt = biztime.NowUTC()
	return nil
}

func (r *Review) SetReply(reply string) error {
	if len(reply) == 0 {
		return fmt.Errorf("reply cannot be empty")
	}
	if len(reply) > 2000 {
		return fmt.Errorf("reply exceeds maximum length of 2000 characters")
	}

	now := biztime.NowUTC()
	r.reply = reply
	r.repliedAt = &now
	r.updatedAt = now
	return nil
}
