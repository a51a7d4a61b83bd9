package payment

import (
	"time"

	domainLoan "lendbook-backend/internal/domain/loan"
	domain "lendbook-backend/internal/domain/payment"
)

type SubmitPaymentInput struct {
	Amount      float64 `json:"amount"`
	PaymentType string  `json:"payment_type"`
	EvidenceURL string  `json:"evidence_url"`
	Notes       string  `json:"notes"`
}

type PaymentDTO struct {
	PaymentID       string     `json:"payment_id"`
	LoanID          string     `json:"loan_id"`
	Amount          float64    `json:"amount"`
	PaymentType     string     `json:"payment_type"`
	EvidenceURL     string     `json:"evidence_url"`
	Status          string     `json:"status"`
	Notes           string     `json:"notes,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	CreatedBy       string     `json:"created_by"`
	ConfirmedBy     *string    `json:"confirmed_by,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	ConfirmedAt     *time.Time `json:"confirmed_at,omitempty"`
}

// LoanPaymentsDTO pairs a loan's payment history with its derived balance.
type LoanPaymentsDTO struct {
	Payments []PaymentDTO       `json:"payments"`
	Balance  domainLoan.Balance `json:"balance"`
}

func toDTO(p *domain.Payment) *PaymentDTO {
	return &PaymentDTO{
		PaymentID:       p.PaymentID,
		LoanID:          p.LoanID,
		Amount:          p.Amount,
		PaymentType:     string(p.PaymentType),
		EvidenceURL:     p.EvidenceURL,
		Status:          string(p.Status),
		Notes:           p.Notes,
		RejectionReason: p.RejectionReason,
		CreatedBy:       p.CreatedBy,
		ConfirmedBy:     p.ConfirmedBy,
		CreatedAt:       p.CreatedAt,
		ConfirmedAt:     p.ConfirmedAt,
	}
}
