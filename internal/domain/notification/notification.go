package notification

import (
	"fmt"
	"time"

	vo "lumistream/internal/domain/notification/valueobjects"
	"lumistream/internal/shared/biztime"
)

type Notification struct {
	id        uint
	userID    uint
	title     string
	content   string
	notifType vo.NotificationType
	category  vo.Category
	link      string
	isRead    bool
	readAt    *time.Time
	createdAt time.Time
}

func NewNotification(
	userID uint,
	title string,
	content string,
	notifType vo.NotificationType,
	category vo.Category,
	link string,
) (*Notification, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
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
	if !notifType.IsValid() {
		return nil, fmt.Errorf("invalid notification type")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid notification category")
	}

	return &Notification{
		userID:    userID,
		title:     title,
		content:   content,
		notifType: notifType,
		category:  category,
		link:      link,
		isRead:    false,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructNotification(
	id uint,
	userID uint,
	title string,
	content string,
	notifType vo.NotificationType,
	category vo.Category,
	link string,
	isRead bool,
	readAt *time.Time,
	createdAt time.Time,
) (*Notification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !notifType.IsValid() {
		return nil, fmt.Errorf("invalid notification type")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid notification category")
	}

	return &Notification{
		id:        id,
		userID:    userID,
		title:     title,
		content:   content,
		notifType: notifType,
		category:  category,
		link:      link,
		isRead:    isRead,
		readAt:    readAt,
		createdAt: createdAt,
	}, nil
}

func (n *Notification) ID() uint {
	return n.id
}

func (n *Notification) UserID() uint {
	return n.userID
}

func (n *Notification) Title() string {
	return n.title
}

func (n *Notification) Content() string {
	return n.content
}

func (n *Notification) Type() vo.NotificationType {
	return n.notifType
}

func (n *Notification) Category() vo.Category {
	return n.category
}

func (n *Notification) Link() string {
	return n.link
}

func (n *Notification) IsRead() bool {
	return n.isRead
}

func (n *Notification) ReadAt() *time.Time {
	return n.readAt
}

func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}

// MarkAsRead is idempotent; the first read timestamp is preserved.
func (n *Notification) MarkAsRead() {
	if n.isRead {
		return
	}
	now := biztime.NowUTC()
	n.isRead = true
	n.readAt = &now
}
