package payment

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	GetByPaymentID(ctx context.Context, paymentID string) (*Payment, error)
	ListByLoan(ctx context.Context, loanID string) ([]Payment, error)
	CountPendingByLoan(ctx context.Context, loanID string) (int64, error)
	// SumByStatus totals payment amounts for one loan in one status
	// (COALESCE to 0 when there are none).
	SumByStatus(ctx context.Context, loanID string, st Status) (float64, error)

	// Confirm and Reject resolve a pending payment exactly once
	// (compare-and-swap on status). A false return means the payment was
	// missing or already resolved; that is a no-op, not an error.
	Confirm(ctx context.Context, paymentID, confirmedBy string, at time.Time) (bool, error)
	Reject(ctx context.Context, paymentID, reason string, at time.Time) (bool, error)

	// DeleteByLoan cascades a loan deletion onto its payments.
	DeleteByLoan(ctx context.Context, loanID string) error
}
