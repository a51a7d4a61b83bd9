package events

import "time"

// Event types
const (
	LoanCreated  = "loan.created"
	LoanAccepted = "loan.accepted"
	LoanReturned = "loan.returned"

	PaymentSubmitted = "payment.submitted"
	PaymentConfirmed = "payment.confirmed"
	PaymentRejected  = "payment.rejected"
)

// Stream names
const (
	LoanEventsStream    = "loan.events"
	PaymentEventsStream = "payment.events"
)

// Base event structure
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

type LoanCreatedEvent struct {
	LoanID   string  `json:"loanId"`
	LenderID string  `json:"lenderId"`
	Amount   float64 `json:"amount"`
	Personal bool    `json:"personal"`
}

type LoanAcceptedEvent struct {
	LoanID     string `json:"loanId"`
	BorrowerID string `json:"borrowerId"`
}

type LoanReturnedEvent struct {
	LoanID string  `json:"loanId"`
	Paid   float64 `json:"paid"`
}

type PaymentSubmittedEvent struct {
	PaymentID string  `json:"paymentId"`
	LoanID    string  `json:"loanId"`
	Amount    float64 `json:"amount"`
	Type      string  `json:"type"`
}

// PaymentConfirmedEvent is the explicit hand-off between the payment ledger
// and the loan state machine: Settled reports whether this confirmation
// drove the loan to returned.
type PaymentConfirmedEvent struct {
	PaymentID string  `json:"paymentId"`
	LoanID    string  `json:"loanId"`
	Amount    float64 `json:"amount"`
	Settled   bool    `json:"settled"`
}

type PaymentRejectedEvent struct {
	PaymentID string `json:"paymentId"`
	LoanID    string `json:"loanId"`
	Reason    string `json:"reason"`
}
