package loanmock

import (
	"context"

	domain "lendbook-backend/internal/domain/loan"
)

// Ensure compile-time compliance
var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Fill in the function fields a test needs; unfilled getters return
// context.Canceled, unfilled mutations are no-ops.
type Repo struct {
	CreateFn               func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn          func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetByLoanIDForUpdateFn func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetByInvitationTokenFn func(ctx context.Context, token string) (*domain.Loan, error)
	ListByLenderFn         func(ctx context.Context, lenderID string) ([]domain.Loan, error)
	ListByBorrowerFn       func(ctx context.Context, borrowerID string) ([]domain.Loan, error)
	ListPendingByEmailFn   func(ctx context.Context, email string) ([]domain.Loan, error)
	SaveFn                 func(ctx context.Context, l *domain.Loan) error
	AcceptFn               func(ctx context.Context, loanID, borrowerID string) (bool, error)
	RejectFn               func(ctx context.Context, loanID string) (bool, error)
	MarkReturnedFn         func(ctx context.Context, loanID string) (bool, error)
	AddEvidenceFn          func(ctx context.Context, loanID, evidence string) (bool, error)
	DeleteFn               func(ctx context.Context, loanID string) (bool, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}
func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDForUpdateFn != nil {
		return m.GetByLoanIDForUpdateFn(ctx, loanID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByInvitationToken(ctx context.Context, token string) (*domain.Loan, error) {
	if m.GetByInvitationTokenFn != nil {
		return m.GetByInvitationTokenFn(ctx, token)
	}
	return nil, context.Canceled
}
func (m *Repo) ListByLender(ctx context.Context, lenderID string) ([]domain.Loan, error) {
	if m.ListByLenderFn != nil {
		return m.ListByLenderFn(ctx, lenderID)
	}
	return nil, nil
}
func (m *Repo) ListByBorrower(ctx context.Context, borrowerID string) ([]domain.Loan, error) {
	if m.ListByBorrowerFn != nil {
		return m.ListByBorrowerFn(ctx, borrowerID)
	}
	return nil, nil
}
func (m *Repo) ListPendingByEmail(ctx context.Context, email string) ([]domain.Loan, error) {
	if m.ListPendingByEmailFn != nil {
		return m.ListPendingByEmailFn(ctx, email)
	}
	return nil, nil
}
func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}
func (m *Repo) Accept(ctx context.Context, loanID, borrowerID string) (bool, error) {
	if m.AcceptFn != nil {
		return m.AcceptFn(ctx, loanID, borrowerID)
	}
	return false, nil
}
func (m *Repo) Reject(ctx context.Context, loanID string) (bool, error) {
	if m.RejectFn != nil {
		return m.RejectFn(ctx, loanID)
	}
	return false, nil
}
func (m *Repo) MarkReturned(ctx context.Context, loanID string) (bool, error) {
	if m.MarkReturnedFn != nil {
		return m.MarkReturnedFn(ctx, loanID)
	}
	return false, nil
}
func (m *Repo) AddEvidence(ctx context.Context, loanID, evidence string) (bool, error) {
	if m.AddEvidenceFn != nil {
		return m.AddEvidenceFn(ctx, loanID, evidence)
	}
	return false, nil
}
func (m *Repo) Delete(ctx context.Context, loanID string) (bool, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, loanID)
	}
	return false, nil
}
