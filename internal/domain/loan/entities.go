package loan

import (
	"time"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
	StatusReturned Status = "returned"
	// StatusEditPending is reserved for a term-amendment flow. No transition
	// currently produces it, but stored rows may carry it so the enum keeps
	// the value.
	StatusEditPending Status = "edit-pending"
)

// Deletable reports whether a loan in this status may be hard-deleted.
// Only unactioned invitations and declined loans go away; anything with a
// repayment history stays.
func (s Status) Deletable() bool {
	return s == StatusPending || s == StatusRejected
}

type Loan struct {
	ID            uint64  `gorm:"primaryKey;column:id" json:"-"`
	LoanID        string  `gorm:"size:32;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	LenderID      string  `gorm:"size:32;index:idx_loans_lender" json:"lender_id"`
	BorrowerEmail string  `gorm:"size:255;index:idx_loans_borrower_email" json:"borrower_email"`
	BorrowerID    *string `gorm:"size:32;index:idx_loans_borrower" json:"borrower_id"`
	BorrowerName  string  `gorm:"size:255" json:"borrower_name"`
	Amount        float64 `gorm:"type:decimal(18,2)" json:"amount"`
	Description   string  `gorm:"type:text" json:"description"`
	Status        Status  `gorm:"type:enum('pending','accepted','rejected','returned','edit-pending');default:'pending'" json:"status"`
	// Evidence is the legacy single proof-of-return reference; per-payment
	// evidence lives on the payments table.
	Evidence        string    `gorm:"type:text" json:"evidence,omitempty"`
	InvitationToken string    `gorm:"size:32;uniqueIndex:ux_loans_invitation_token" json:"invitation_token"`
	IsPersonal      bool      `gorm:"default:false" json:"is_personal"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Loan) TableName() string { return "loans" }

// BorrowedBy reports whether the given user is the bound borrower.
func (l *Loan) BorrowedBy(userID string) bool {
	return l.BorrowerID != nil && *l.BorrowerID == userID
}

// Party reports whether the given user is on either side of the loan.
func (l *Loan) Party(userID string) bool {
	return l.LenderID == userID || l.BorrowedBy(userID)
}
