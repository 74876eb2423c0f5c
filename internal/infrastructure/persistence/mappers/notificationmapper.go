package mappers

import (
	"fmt"
	"time"

	"lumistream/internal/domain/notification"
	vo "lumistream/internal/domain/notification/valueobjects"
	"lumistream/internal/infrastructure/persistence/models"
)

type NotificationMapper interface {
	ToModel(n *notification.Notification) *models.NotificationModel
	ToDomain(model *models.NotificationModel) (*notification.Notification, error)
	RecipientConfigToModel(c *notification.RecipientConfig) *models.RecipientConfigModel
	RecipientConfigToDomain(model *models.RecipientConfigModel) (*notification.RecipientConfig, error)
}

type NotificationMapperImpl struct{}

func NewNotificationMapper() NotificationMapper {
	return &NotificationMapperImpl{}
}

func (m *NotificationMapperImpl) ToModel(n *notification.Notification) *models.NotificationModel {
	model := &models.NotificationModel{
		ID:        n.ID(),
		UserID:    n.UserID(),
		Title:     n.Title(),
		Content:   n.Content(),
		Type:      n.Type().String(),
		Category:  n.Category().String(),
		Link:      n.Link(),
		IsRead:    n.IsRead(),
		CreatedAt: n.CreatedAt().UnixMilli(),
	}

	if n.ReadAt() != nil {
		readAt := n.ReadAt().UnixMilli()
		model.ReadAt = &readAt
	}

	return model
}

func (m *NotificationMapperImpl) ToDomain(model *models.NotificationModel) (*notification.Notification, error) {
	notifType, err := vo.NewNotificationType(model.Type)
	if err != nil {
		return nil, fmt.Errorf("invalid type in notification %d: %w", model.ID, err)
	}

	category, err := vo.NewCategory(model.Category)
	if err != nil {
		return nil, fmt.Errorf("invalid category in notification %d: %w", model.ID, err)
	}

	var readAt *time.Time
	if model.ReadAt != nil {
		t := time.UnixMilli(*model.ReadAt).UTC()
		readAt = &t
	}

	return notification.ReconstructNotification(
		model.ID,
		model.UserID,
		model.Title,
		model.Content,
		notifType,
		category,
		model.Link,
		model.IsRead,
		readAt,
		time.UnixMilli(model.CreatedAt).UTC(),
	)
}

func (m *NotificationMapperImpl) RecipientConfigToModel(c *notification.RecipientConfig) *models.RecipientConfigModel {
	return &models.RecipientConfigModel{
		ID:           c.ID(),
		Email:        c.Email(),
		NotifyOrders: c.NotifyOrders(),
		NotifyTicket: c.NotifyTickets(),
		NotifyReview: c.NotifyReviews(),
		CreatedAt:    c.CreatedAt().UnixMilli(),
		UpdatedAt:    c.UpdatedAt().UnixMilli(),
	}
}

func (m *NotificationMapperImpl) RecipientConfigToDomain(model *models.RecipientConfigModel) (*notification.RecipientConfig, error) {
	return notification.ReconstructRecipientConfig(
		model.ID,
		model.Email,
		model.NotifyOrders,
		model.NotifyTicket,
		model.NotifyReview,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
}
