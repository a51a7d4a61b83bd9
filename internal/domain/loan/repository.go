package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// GetByLoanIDForUpdate locks the row (SELECT ... FOR UPDATE); only valid
	// inside a transaction.
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	GetByInvitationToken(ctx context.Context, token string) (*Loan, error)
	ListByLender(ctx context.Context, lenderID string) ([]Loan, error)
	ListByBorrower(ctx context.Context, borrowerID string) ([]Loan, error)
	ListPendingByEmail(ctx context.Context, email string) ([]Loan, error)
	Save(ctx context.Context, l *Loan) error

	// Guarded transitions: compare-and-swap on status. Each succeeds only if
	// the row is still in the expected status and reports whether a row was
	// changed, so concurrent duplicate requests resolve to one winner and
	// no-op losers.
	Accept(ctx context.Context, loanID, borrowerID string) (bool, error)
	Reject(ctx context.Context, loanID string) (bool, error)
	MarkReturned(ctx context.Context, loanID string) (bool, error)
	// AddEvidence stores the proof-of-return reference and forces the status
	// to returned with no status guard (legacy single-evidence path).
	AddEvidence(ctx context.Context, loanID, evidence string) (bool, error)
	Delete(ctx context.Context, loanID string) (bool, error)
}
