package expense

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"lendbook-backend/internal/domain/apperr"
	"lendbook-backend/internal/domain/expense"
	"lendbook-backend/internal/domain/identity"
	"lendbook-backend/pkg/id"
)

type Usecase struct{ repo expense.Repository }

func NewUsecase(r expense.Repository) *Usecase { return &Usecase{repo: r} }

type ExpenseInput struct {
	Description   string  `json:"description"`
	Amount        float64 `json:"amount"`
	Category      string  `json:"category"`
	ExpenseDate   string  `json:"expense_date"` // YYYY-MM-DD
	IsRecurring   bool    `json:"is_recurring"`
	RecurrenceDay *int    `json:"recurrence_day"`
}

func (in ExpenseInput) validate() (time.Time, error) {
	if strings.TrimSpace(in.Description) == "" || strings.TrimSpace(in.Category) == "" {
		return time.Time{}, apperr.Validationf("description and category are required")
	}
	if in.Amount <= 0 {
		return time.Time{}, apperr.Validationf("amount must be positive")
	}
	day, err := time.Parse("2006-01-02", in.ExpenseDate)
	if err != nil {
		return time.Time{}, apperr.Validationf("expense date must be YYYY-MM-DD")
	}
	if in.IsRecurring {
		if in.RecurrenceDay == nil || *in.RecurrenceDay < 1 || *in.RecurrenceDay > 31 {
			return time.Time{}, apperr.Validationf("recurring expenses need a recurrence day between 1 and 31")
		}
	}
	return day, nil
}

func (u *Usecase) Create(ctx context.Context, actor identity.Actor, in ExpenseInput) (*expense.Expense, error) {
	if actor.Anonymous() {
		return nil, apperr.ErrUnauthenticated
	}
	day, err := in.validate()
	if err != nil {
		return nil, err
	}

	e := &expense.Expense{
		ExpenseID:     id.NewID32(),
		UserID:        actor.ID,
		Description:   strings.TrimSpace(in.Description),
		Amount:        in.Amount,
		Category:      in.Category,
		ExpenseDate:   day,
		IsRecurring:   in.IsRecurring,
		RecurrenceDay: in.RecurrenceDay,
	}
	if err := u.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (u *Usecase) List(ctx context.Context, actor identity.Actor) ([]expense.Expense, error) {
	if actor.Anonymous() {
		return nil, apperr.ErrUnauthenticated
	}
	return u.repo.ListByUser(ctx, actor.ID)
}

func (u *Usecase) Update(ctx context.Context, actor identity.Actor, expenseID string, in ExpenseInput) (*expense.Expense, error) {
	if actor.Anonymous() {
		return nil, apperr.ErrUnauthenticated
	}
	day, err := in.validate()
	if err != nil {
		return nil, err
	}

	e, err := u.owned(ctx, actor, expenseID)
	if err != nil {
		return nil, err
	}
	e.Description = strings.TrimSpace(in.Description)
	e.Amount = in.Amount
	e.Category = in.Category
	e.ExpenseDate = day
	e.IsRecurring = in.IsRecurring
	e.RecurrenceDay = in.RecurrenceDay
	if err := u.repo.Save(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (u *Usecase) Delete(ctx context.Context, actor identity.Actor, expenseID string) error {
	if actor.Anonymous() {
		return apperr.ErrUnauthenticated
	}
	if _, err := u.owned(ctx, actor, expenseID); err != nil {
		return err
	}
	ok, err := u.repo.Delete(ctx, expenseID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFoundf("expense %s", expenseID)
	}
	return nil
}

func (u *Usecase) owned(ctx context.Context, actor identity.Actor, expenseID string) (*expense.Expense, error) {
	e, err := u.repo.GetByExpenseID(ctx, expenseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("expense %s", expenseID)
		}
		return nil, err
	}
	if e.UserID != actor.ID {
		return nil, apperr.Forbiddenf("expense %s belongs to another user", expenseID)
	}
	return e, nil
}
