package notification

import "context"

// NotificationFilter narrows List queries for a user's inbox.
type NotificationFilter struct {
	UserID   uint
	IsRead   *bool
	Category *string
	Page     int
	PageSize int
}

type Repository interface {
	Save(ctx context.Context, n *Notification) error
	// BulkCreate inserts one row per notification in a single statement.
	BulkCreate(ctx context.Context, notifications []*Notification) error
	Update(ctx context.Context, n *Notification) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Notification, error)
	List(ctx context.Context, filter NotificationFilter) ([]*Notification, int64, error)
	CountUnread(ctx context.Context, userID uint) (int64, error)
	MarkAllAsRead(ctx context.Context, userID uint) (int64, error)
}

type RecipientConfigRepository interface {
	Save(ctx context.Context, c *RecipientConfig) error
	Update(ctx context.Context, c *RecipientConfig) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*RecipientConfig, error)
	GetByEmail(ctx context.Context, email string) (*RecipientConfig, error)
	ListAll(ctx context.Context) ([]*RecipientConfig, error)
	// FindOptedIn returns configs subscribed to the given event; an empty
	// event returns every config.
	FindOptedIn(ctx context.Context, event string) ([]*RecipientConfig, error)
}
