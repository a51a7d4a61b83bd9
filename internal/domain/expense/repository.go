package expense

import "context"

type Repository interface {
	Create(ctx context.Context, e *Expense) error
	GetByExpenseID(ctx context.Context, expenseID string) (*Expense, error)
	ListByUser(ctx context.Context, userID string) ([]Expense, error)
	Save(ctx context.Context, e *Expense) error
	Delete(ctx context.Context, expenseID string) (bool, error)
}
