package expensemock

import (
	"context"

	domain "lendbook-backend/internal/domain/expense"
)

// Ensure compile-time compliance
var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn         func(ctx context.Context, e *domain.Expense) error
	GetByExpenseIDFn func(ctx context.Context, expenseID string) (*domain.Expense, error)
	ListByUserFn     func(ctx context.Context, userID string) ([]domain.Expense, error)
	SaveFn           func(ctx context.Context, e *domain.Expense) error
	DeleteFn         func(ctx context.Context, expenseID string) (bool, error)
}

func (m *Repo) Create(ctx context.Context, e *domain.Expense) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	return nil
}
func (m *Repo) GetByExpenseID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	if m.GetByExpenseIDFn != nil {
		return m.GetByExpenseIDFn(ctx, expenseID)
	}
	return nil, context.Canceled
}
func (m *Repo) ListByUser(ctx context.Context, userID string) ([]domain.Expense, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}
	return nil, nil
}
func (m *Repo) Save(ctx context.Context, e *domain.Expense) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, e)
	}
	return nil
}
func (m *Repo) Delete(ctx context.Context, expenseID string) (bool, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, expenseID)
	}
	return false, nil
}
