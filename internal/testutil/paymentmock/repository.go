package paymentmock

import (
	"context"
	"time"

	domain "lendbook-backend/internal/domain/payment"
)

// Ensure compile-time compliance
var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn             func(ctx context.Context, p *domain.Payment) error
	GetByPaymentIDFn     func(ctx context.Context, paymentID string) (*domain.Payment, error)
	ListByLoanFn         func(ctx context.Context, loanID string) ([]domain.Payment, error)
	CountPendingByLoanFn func(ctx context.Context, loanID string) (int64, error)
	SumByStatusFn        func(ctx context.Context, loanID string, st domain.Status) (float64, error)
	ConfirmFn            func(ctx context.Context, paymentID, confirmedBy string, at time.Time) (bool, error)
	RejectFn             func(ctx context.Context, paymentID, reason string, at time.Time) (bool, error)
	DeleteByLoanFn       func(ctx context.Context, loanID string) error
}

func (m *Repo) Create(ctx context.Context, p *domain.Payment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}
func (m *Repo) GetByPaymentID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	if m.GetByPaymentIDFn != nil {
		return m.GetByPaymentIDFn(ctx, paymentID)
	}
	return nil, context.Canceled
}
func (m *Repo) ListByLoan(ctx context.Context, loanID string) ([]domain.Payment, error) {
	if m.ListByLoanFn != nil {
		return m.ListByLoanFn(ctx, loanID)
	}
	return nil, nil
}
func (m *Repo) CountPendingByLoan(ctx context.Context, loanID string) (int64, error) {
	if m.CountPendingByLoanFn != nil {
		return m.CountPendingByLoanFn(ctx, loanID)
	}
	return 0, nil
}
func (m *Repo) SumByStatus(ctx context.Context, loanID string, st domain.Status) (float64, error) {
	if m.SumByStatusFn != nil {
		return m.SumByStatusFn(ctx, loanID, st)
	}
	return 0, nil
}
func (m *Repo) Confirm(ctx context.Context, paymentID, confirmedBy string, at time.Time) (bool, error) {
	if m.ConfirmFn != nil {
		return m.ConfirmFn(ctx, paymentID, confirmedBy, at)
	}
	return false, nil
}
func (m *Repo) Reject(ctx context.Context, paymentID, reason string, at time.Time) (bool, error) {
	if m.RejectFn != nil {
		return m.RejectFn(ctx, paymentID, reason, at)
	}
	return false, nil
}
func (m *Repo) DeleteByLoan(ctx context.Context, loanID string) error {
	if m.DeleteByLoanFn != nil {
		return m.DeleteByLoanFn(ctx, loanID)
	}
	return nil
}
