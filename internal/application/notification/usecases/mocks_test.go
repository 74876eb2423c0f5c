package usecases

import (
	"context"

	"lumistream/internal/domain/notification"
	"lumistream/internal/domain/user"
	"lumistream/internal/shared/authorization"
	"lumistream/internal/shared/logger"
)

type mockNotificationRepository struct {
	SaveFunc          func(ctx context.Context, n *notification.Notification) error
	BulkCreateFunc    func(ctx context.Context, notifications []*notification.Notification) error
	UpdateFunc        func(ctx context.Context, n *notification.Notification) error
	DeleteFunc        func(ctx context.Context, id uint) error
	GetByIDFunc       func(ctx context.Context, id uint) (*notification.Notification, error)
	ListFunc          func(ctx context.Context, filter notification.NotificationFilter) ([]*notification.Notification, int64, error)
	CountUnreadFunc   func(ctx context.Context, userID uint) (int64, error)
	MarkAllAsReadFunc func(ctx context.Context, userID uint) (int64, error)
}

func (m *mockNotificationRepository) Save(ctx context.Context, n *notification.Notification) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, n)
	}
	return nil
}

func (m *mockNotificationRepository) BulkCreate(ctx context.Context, notifications []*notification.Notification) error {
	if m.BulkCreateFunc != nil {
		return m.BulkCreateFunc(ctx, notifications)
	}
	return nil
}

func (m *mockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, n)
	}
	return nil
}

func (m *mockNotificationRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockNotificationRepository) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockNotificationRepository) List(ctx context.Context, filter notification.NotificationFilter) ([]*notification.Notification, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockNotificationRepository) CountUnread(ctx context.Context, userID uint) (int64, error) {
	if m.CountUnreadFunc != nil {
		return m.CountUnreadFunc(ctx, userID)
	}
	return 0, nil
}

func (m *mockNotificationRepository) MarkAllAsRead(ctx context.Context, userID uint) (int64, error) {
	if m.MarkAllAsReadFunc != nil {
		return m.MarkAllAsReadFunc(ctx, userID)
	}
	return 0, nil
}

type mockRecipientConfigRepository struct {
	SaveFunc        func(ctx context.Context, c *notification.RecipientConfig) error
	UpdateFunc      func(ctx context.Context, c *notification.RecipientConfig) error
	DeleteFunc      func(ctx context.Context, id uint) error
	GetByIDFunc     func(ctx context.Context, id uint) (*notification.RecipientConfig, error)
	GetByEmailFunc  func(ctx context.Context, email string) (*notification.RecipientConfig, error)
	ListAllFunc     func(ctx context.Context) ([]*notification.RecipientConfig, error)
	FindOptedInFunc func(ctx context.Context, event string) ([]*notification.RecipientConfig, error)
}

func (m *mockRecipientConfigRepository) Save(ctx context.Context, c *notification.RecipientConfig) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockRecipientConfigRepository) Update(ctx context.Context, c *notification.RecipientConfig) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockRecipientConfigRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockRecipientConfigRepository) GetByID(ctx context.Context, id uint) (*notification.RecipientConfig, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockRecipientConfigRepository) GetByEmail(ctx context.Context, email string) (*notification.RecipientConfig, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockRecipientConfigRepository) ListAll(ctx context.Context) ([]*notification.RecipientConfig, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockRecipientConfigRepository) FindOptedIn(ctx context.Context, event string) ([]*notification.RecipientConfig, error) {
	if m.FindOptedInFunc != nil {
		return m.FindOptedInFunc(ctx, event)
	}
	return nil, nil
}

type mockUserRepository struct {
	SaveFunc        func(ctx context.Context, u *user.User) error
	UpdateFunc      func(ctx context.Context, u *user.User) error
	GetByIDFunc     func(ctx context.Context, id uint) (*user.User, error)
	GetByEmailFunc  func(ctx context.Context, email string) (*user.User, error)
	FindByRolesFunc func(ctx context.Context, roles []authorization.UserRole) ([]*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByRoles(ctx context.Context, roles []authorization.UserRole) ([]*user.User, error) {
	if m.FindByRolesFunc != nil {
		return m.FindByRolesFunc(ctx, roles)
	}
	return nil, nil
}

type mockEmailSender struct {
	SendFunc         func(ctx context.Context, to, subject, htmlBody string) error
	IsConfiguredFunc func() bool
}

func (m *mockEmailSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, to, subject, htmlBody)
	}
	return nil
}

func (m *mockEmailSender) IsConfigured() bool {
	if m.IsConfiguredFunc != nil {
		return m.IsConfiguredFunc()
	}
	return true
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Fatal(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
