package loan

import "github.com/shopspring/decimal"

// Balance is the derived repayment position of a loan. Pending is
// informational only and never reduces the outstanding balance.
type Balance struct {
	Total   float64 `json:"total"`
	Paid    float64 `json:"paid"`
	Pending float64 `json:"pending"`
	Balance float64 `json:"balance"`
}

// ComputeBalance derives the position from the principal and the confirmed
// and pending payment sums. Outstanding balance never goes below zero even
// when confirmed payments overshoot the principal.
func ComputeBalance(total, paid, pending float64) Balance {
	out := decimal.NewFromFloat(total).Sub(decimal.NewFromFloat(paid))
	if out.IsNegative() {
		out = decimal.Zero
	}
	bal, _ := out.Float64()
	return Balance{Total: total, Paid: paid, Pending: pending, Balance: bal}
}

// Repaid reports whether confirmed payments cover the principal. The
// comparison runs through decimals so a fully-paid loan is detected exactly
// instead of hoping float sums land on 0.
func (b Balance) Repaid() bool {
	return decimal.NewFromFloat(b.Balance).IsZero() &&
		decimal.NewFromFloat(b.Paid).GreaterThanOrEqual(decimal.NewFromFloat(b.Total))
}

// Settle overwrites the status to returned once the balance shows the loan
// repaid, and reports whether it did. The overwrite deliberately skips the
// usual status guard: a loan that somehow over-collected still resolves to
// returned. Callers run this inside the transaction that confirmed the
// payment, with the loan row locked.
func (l *Loan) Settle(b Balance) bool {
	if !b.Repaid() {
		return false
	}
	l.Status = StatusReturned
	return true
}
