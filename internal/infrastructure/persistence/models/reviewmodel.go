package models

type ReviewModel struct {
	ID        uint   `gorm:"primaryKey"`
	ProductID uint   `gorm:"not null;index"`
	UserID    uint   `gorm:"not null;index"`
	Rating    int    `gorm:"not null"`
	Title     string `gorm:"size:200;not null"`
	Content   string `gorm:"type:text;not null"`
	ImageURL  string `gorm:"size:500"`
	Status    string `gorm:"size:20;not null;index"`
	Reply     string `gorm:"type:text"`
	RepliedAt *int64
	CreatedAt int64 `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (ReviewModel) TableName() string {
	return "reviews"
}
