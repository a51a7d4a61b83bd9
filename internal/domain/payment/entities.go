package payment

import (
	"time"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusRejected  Status = "rejected"
)

// Type is the borrower's advisory classification; it is never enforced
// against the amount.
type Type string

const (
	TypePartial Type = "partial"
	TypeFull    Type = "full"
)

func (t Type) Valid() bool { return t == TypePartial || t == TypeFull }

type Payment struct {
	ID        uint64 `gorm:"primaryKey;column:id" json:"-"`
	PaymentID string `gorm:"size:32;uniqueIndex:ux_payments_payment_id" json:"payment_id"`
	// LoanID is the owning loan's public id. Rows are removed together with
	// the loan.
	LoanID          string     `gorm:"size:32;index:idx_payments_loan" json:"loan_id"`
	Amount          float64    `gorm:"type:decimal(18,2)" json:"amount"`
	PaymentType     Type       `gorm:"type:enum('partial','full')" json:"payment_type"`
	EvidenceURL     string     `gorm:"type:text" json:"evidence_url"`
	Status          Status     `gorm:"type:enum('pending','confirmed','rejected');default:'pending'" json:"status"`
	Notes           string     `gorm:"type:text" json:"notes,omitempty"`
	RejectionReason string     `gorm:"type:text" json:"rejection_reason,omitempty"`
	CreatedBy       string     `gorm:"size:32" json:"created_by"`
	ConfirmedBy     *string    `gorm:"size:32" json:"confirmed_by"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	ConfirmedAt     *time.Time `json:"confirmed_at"`
}

func (Payment) TableName() string { return "payments" }
