package notification

import (
	"fmt"
	"net/mail"
	"time"

	"lumistream/internal/shared/biztime"
)

// RecipientConfig is an operator-managed email address subscribed to
// broadcast events. It lets the storefront alert mailboxes that have no
// user account, such as a shared support inbox.
type RecipientConfig struct {
	id           uint
	email        string
	notifyOrders bool
	notifyTicket bool
	notifyReview bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewRecipientConfig(email string, notifyOrders, notifyTicket, notifyReview bool) (*RecipientConfig, error) {
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email address: %s", email)
	}

	now := biztime.NowUTC()
	return &RecipientConfig{
		email:        email,
		notifyOrders: notifyOrders,
		notifyTicket: notifyTicket,
		notifyReview: notifyReview,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructRecipientConfig(
	id uint,
	email string,
	notifyOrders, notifyTicket, notifyReview bool,
	createdAt, updatedAt time.Time,
) (*RecipientConfig, error) {
	if id == 0 {
		return nil, fmt.Errorf("recipient config ID cannot be zero")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}

	return &RecipientConfig{
		id:           id,
		email:        email,
		notifyOrders: notifyOrders,
		notifyTicket: notifyTicket,
		notifyReview: notifyReview,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (c *RecipientConfig) ID() uint {
	return c.id
}

func (c *RecipientConfig) Email() string {
	return c.email
}

func (c *RecipientConfig) NotifyOrders() bool {
	return c.notifyOrders
}

func (c *RecipientConfig) NotifyTickets() bool {
	return c.notifyTicket
}

func (c *RecipientConfig) NotifyReviews() bool {
	return c.notifyReview
}

func (c *RecipientConfig) CreatedAt() time.Time {
	return c.createdAt
}

func (c *RecipientConfig) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *RecipientConfig) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("recipient config ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("recipient config ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *RecipientConfig) UpdatePreferences(notifyOrders, notifyTicket, notifyReview bool) {
	c.notifyOrders = notifyOrders
	c.notifyTicket = notifyTicket
	c.notifyReview = notifyReview
	c.updatedAt = biztime.NowUTC()
}

// SubscribedTo reports whether this address opted into the given broadcast
// event. Known events are "orders", "tickets" and "reviews"; an empty event
// matches every config.
func (c *RecipientConfig) SubscribedTo(event string) bool {
	switch event {
	case "orders":
		return c.notifyOrders
	case "tickets":
		return c.notifyTicket
	case "reviews":
		return c.notifyReview
	case "":
		return true
	default:
		return false
	}
}
