package mysql

import (
	"context"

	"gorm.io/gorm"

	expenseDomain "lendbook-backend/internal/domain/expense"
)

type ExpenseRepository struct{ db *gorm.DB }

func NewExpenseRepository(db *gorm.DB) *ExpenseRepository { return &ExpenseRepository{db: db} }

func (r *ExpenseRepository) Create(ctx context.Context, e *expenseDomain.Expense) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *ExpenseRepository) Save(ctx context.Context, e *expenseDomain.Expense) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *ExpenseRepository) GetByExpenseID(ctx context.Context, expenseID string) (*expenseDomain.Expense, error) {
	var out expenseDomain.Expense
	res := r.db.WithContext(ctx).Where("expense_id = ?", expenseID).First(&out)
	return &out, res.Error
}

func (r *ExpenseRepository) ListByUser(ctx context.Context, userID string) ([]expenseDomain.Expense, error) {
	var out []expenseDomain.Expense
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("expense_date DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *ExpenseRepository) Delete(ctx context.Context, expenseID string) (bool, error) {
	res := r.db.WithContext(ctx).Where("expense_id = ?", expenseID).Delete(&expenseDomain.Expense{})
	return res.RowsAffected > 0, res.Error
}
