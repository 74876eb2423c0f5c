package usecases

import (
	"context"

	"lumistream/internal/domain/review"
	"lumistream/internal/shared/logger"
)

type mockReviewRepository struct {
	SaveFunc    func(ctx context.Context, r *review.Review) error
	UpdateFunc  func(ctx context.Context, r *review.Review) error
	DeleteFunc  func(ctx context.Context, id uint) error
	GetByIDFunc func(ctx context.Context, id uint) (*review.Review, error)
	ListFunc    func(ctx context.Context, filter review.ReviewFilter) ([]*review.Review, int64, error)
}

func (m *mockReviewRepository) Save(ctx context.Context, r *review.Review) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, r)
	}
	return nil
}

func (m *mockReviewRepository) Update(ctx context.Context, r *review.Review) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	return nil
}

func (m *mockReviewRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockReviewRepository) GetByID(ctx context.Context, id uint) (*review.Review, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockReviewRepository) List(ctx context.Context, filter review.ReviewFilter) ([]*review.Review, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockReviewNotifier struct {
	ReviewSubmittedFunc func(ctx context.Context, r *review.Review)
}

func (m *mockReviewNotifier) ReviewSubmitted(ctx context.Context, r *review.Review) {
	if m.ReviewSubmittedFunc != nil {
		m.ReviewSubmittedFunc(ctx, r)
	}
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
