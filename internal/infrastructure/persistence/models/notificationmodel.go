package models

type NotificationModel struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index:idx_notifications_user_read"`
	Title     string `gorm:"size:200;not null"`
	Content   string `gorm:"type:text;not null"`
	Type      string `gorm:"size:20;not null"`
	Category  string `gorm:"size:30;not null;index"`
	Link      string `gorm:"size:500"`
	IsRead    bool   `gorm:"not null;default:false;index:idx_notifications_user_read"`
	ReadAt    *int64
	CreatedAt int64 `gorm:"autoCreateTime:milli;not null;index"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

type RecipientConfigModel struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"size:255;not null;uniqueIndex"`
	NotifyOrders bool   `gorm:"not null;default:false"`
	NotifyTicket bool   `gorm:"not null;default:false"`
	NotifyReview bool   `gorm:"not null;default:false"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (RecipientConfigModel) TableName() string {
	return "notification_recipients"
}
