package loan

import (
	"time"

	domain "lendbook-backend/internal/domain/loan"
)

type CreateLoanInput struct {
	BorrowerEmail string  `json:"borrower_email"`
	BorrowerName  string  `json:"borrower_name"`
	Amount        float64 `json:"amount"`
	Description   string  `json:"description"`
	IsPersonal    bool    `json:"is_personal"`
}

type LoanDTO struct {
	LoanID          string    `json:"loan_id"`
	LenderID        string    `json:"lender_id"`
	BorrowerEmail   string    `json:"borrower_email"`
	BorrowerID      *string   `json:"borrower_id,omitempty"`
	BorrowerName    string    `json:"borrower_name"`
	Amount          float64   `json:"amount"`
	Description     string    `json:"description"`
	Status          string    `json:"status"`
	Evidence        string    `json:"evidence,omitempty"`
	InvitationToken string    `json:"invitation_token,omitempty"`
	IsPersonal      bool      `json:"is_personal"`
	PendingPayments int64     `json:"pending_payments,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// LoanListDTO is the dashboard view: both sides of the caller's loans plus
// invitations addressed to their email that nobody accepted yet.
type LoanListDTO struct {
	AsLender           []LoanDTO `json:"loans_as_lender"`
	AsBorrower         []LoanDTO `json:"loans_as_borrower"`
	PendingInvitations []LoanDTO `json:"pending_invitations"`
}

func toDTO(l *domain.Loan) *LoanDTO {
	return &LoanDTO{
		LoanID:          l.LoanID,
		LenderID:        l.LenderID,
		BorrowerEmail:   l.BorrowerEmail,
		BorrowerID:      l.BorrowerID,
		BorrowerName:    l.BorrowerName,
		Amount:          l.Amount,
		Description:     l.Description,
		Status:          string(l.Status),
		Evidence:        l.Evidence,
		InvitationToken: l.InvitationToken,
		IsPersonal:      l.IsPersonal,
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
	}
}
