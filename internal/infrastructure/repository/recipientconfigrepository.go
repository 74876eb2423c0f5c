package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"lumistream/internal/domain/notification"
	"lumistream/internal/infrastructure/persistence/mappers"
	"lumistream/internal/infrastructure/persistence/models"
	db "lumistream/internal/shared/db"
)

type RecipientConfigRepository struct {
	db     *gorm.DB
	mapper mappers.NotificationMapper
}

func NewRecipientConfigRepository(db *gorm.DB) *RecipientConfigRepository {
	return &RecipientConfigRepository{
		db:     db,
		mapper: mappers.NewNotificationMapper(),
	}
}

func (r *RecipientConfigRepository) Save(ctx context.Context, c *notification.RecipientConfig) error {
	model := r.mapper.RecipientConfigToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save recipient config: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *RecipientConfigRepository) Update(ctx context.Context, c *notification.RecipientConfig) error {
	model := r.mapper.RecipientConfigToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.RecipientConfigModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"email":         model.Email,
			"notify_orders": model.NotifyOrders,
			"notify_ticket": model.NotifyTicket,
			"notify_review": model.NotifyReview,
			"updated_at":    model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update recipient config: %w", result.Error)
	}

	return nil
}

func (r *RecipientConfigRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.RecipientConfigModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete recipient config: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("recipient config not found")
	}
	return nil
}

func (r *RecipientConfigRepository) GetByID(ctx context.Context, id uint) (*notification.RecipientConfig, error) {
	var model models.RecipientConfigModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("recipient config not found")
		}
		return nil, fmt.Errorf("failed to find recipient config: %w", err)
	}

	return r.mapper.RecipientConfigToDomain(&model)
}

func (r *RecipientConfigRepository) GetByEmail(ctx context.Context, email string) (*notification.RecipientConfig, error) {
	var model models.RecipientConfigModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("email = ?", email).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("recipient config not found")
		}
		return nil, fmt.Errorf("failed to find recipient config: %w", err)
	}

	return r.mapper.RecipientConfigToDomain(&model)
}

func (r *RecipientConfigRepository) ListAll(ctx context.Context) ([]*notification.RecipientConfig, error) {
	var configModels []models.RecipientConfigModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Order("id ASC").
		Find(&configModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list recipient configs: %w", err)
	}

	return r.toDomainSlice(configModels)
}

func (r *RecipientConfigRepository) FindOptedIn(ctx context.Context, event string) ([]*notification.RecipientConfig, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.RecipientConfigModel{})

	switch event {
	case "":
		// every config receives untargeted broadcasts
	case "orders":
		query = query.Where("notify_orders = ?", true)
	case "tickets":
		query = query.Where("notify_ticket = ?", true)
	case "reviews":
		query = query.Where("notify_review = ?", true)
	default:
		// unknown events match nobody
		return []*notification.RecipientConfig{}, nil
	}

	var configModels []models.RecipientConfigModel
	if err := query.Find(&configModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find opted-in recipients: %w", err)
	}

	return r.toDomainSlice(configModels)
}

func (r *RecipientConfigRepository) toDomainSlice(configModels []models.RecipientConfigModel) ([]*notification.RecipientConfig, error) {
	configs := make([]*notification.RecipientConfig, len(configModels))
	for i, model := range configModels {
		c, err := r.mapper.RecipientConfigToDomain(&model)
		if err != nil {
			return nil, err
		}
		configs[i] = c
	}
	return configs, nil
}
