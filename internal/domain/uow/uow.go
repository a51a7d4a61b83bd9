package uow

import (
	"context"

	"lendbook-backend/internal/domain/contact"
	"lendbook-backend/internal/domain/loan"
	"lendbook-backend/internal/domain/payment"
	"lendbook-backend/internal/domain/user"
)

type Repos struct {
	Users    user.Repository
	Loans    loan.Repository
	Payments payment.Repository
	Contacts contact.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// WithinLoanTx locks the loan row up-front and runs fn against
	// tx-bound repos. All guarded loan/payment transitions go through this
	// so the read-then-write settlement check cannot race a concurrent
	// confirmation.
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
