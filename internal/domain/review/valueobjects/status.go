package valueobjects

import "fmt"

// ReviewStatus is the moderation state of a storefront review. New reviews
// start pending and only become visible once a moderator publishes them.
type ReviewStatus string

const (
	StatusPending   ReviewStatus = "pending"
	StatusPublished ReviewStatus = "published"
	StatusRejected  ReviewStatus = "rejected"
)

var validReviewStatuses = map[ReviewStatus]bool{
	StatusPending:   true,
	StatusPublished: true,
	StatusRejected:  true,
}

func (s ReviewStatus) String() string {
	return string(s)
}

func (s ReviewStatus) IsValid() bool {
	return validReviewStatuses[s]
}

func (s ReviewStatus) IsPending() bool {
	return s == StatusPending
}

func NewReviewStatus(str string) (ReviewStatus, error) {
	s := ReviewStatus(str)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid review status: %s", str)
	}
	return s, nil
}
