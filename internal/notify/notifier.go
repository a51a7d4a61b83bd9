package notify

import (
	"context"
	"log"
)

// Invitation is the payload for a new-loan invitation mail.
type Invitation struct {
	LenderName    string
	BorrowerEmail string
	BorrowerName  string
	Amount        float64
	Description   string
	InvitationURL string
}

// PaymentSubmitted is the payload for the "borrower registered a payment"
// mail to the lender.
type PaymentSubmitted struct {
	LenderEmail   string
	LenderName    string
	BorrowerName  string
	LoanID        string
	LoanAmount    float64
	PaymentAmount float64
	PaymentType   string
	Notes         string
}

// Notifier is the outbound notification sink. Implementations are
// fire-and-forget collaborators: callers log a returned error and move on,
// a failed delivery never blocks or rolls back a state transition.
type Notifier interface {
	SendInvitation(ctx context.Context, inv Invitation) error
	SendPaymentSubmitted(ctx context.Context, ps PaymentSubmitted) error
}

// LogNotifier is the fallback when no mail transport is configured.
type LogNotifier struct{}

func (LogNotifier) SendInvitation(_ context.Context, inv Invitation) error {
	log.Printf("notify: invitation for %s (%s, amount %.2f) not delivered, mail transport unconfigured",
		inv.BorrowerEmail, inv.BorrowerName, inv.Amount)
	return nil
}

func (LogNotifier) SendPaymentSubmitted(_ context.Context, ps PaymentSubmitted) error {
	log.Printf("notify: payment of %.2f on loan %s not delivered to %s, mail transport unconfigured",
		ps.PaymentAmount, ps.LoanID, ps.LenderEmail)
	return nil
}
