package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	loanDomain "lendbook-backend/internal/domain/loan"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("loan_id = ?", loanID).
		First(&out)
	return &out, res.Error
}

func (r *LoanRepository) GetByInvitationToken(ctx context.Context, token string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("invitation_token = ?", token).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) ListByLender(ctx context.Context, lenderID string) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).
		Where("lender_id = ?", lenderID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) ListByBorrower(ctx context.Context, borrowerID string) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).
		Where("borrower_id = ?", borrowerID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) ListPendingByEmail(ctx context.Context, email string) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).
		Where("borrower_email = ? AND status = ?", email, loanDomain.StatusPending).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

// Accept is a compare-and-swap: only a still-pending row is moved to
// accepted and bound to the borrower. RowsAffected reports who won.
func (r *LoanRepository) Accept(ctx context.Context, loanID, borrowerID string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).
		Where("loan_id = ? AND status = ?", loanID, loanDomain.StatusPending).
		Updates(map[string]any{"status": loanDomain.StatusAccepted, "borrower_id": borrowerID})
	return res.RowsAffected > 0, res.Error
}

func (r *LoanRepository) Reject(ctx context.Context, loanID string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).
		Where("loan_id = ? AND status = ?", loanID, loanDomain.StatusPending).
		Update("status", loanDomain.StatusRejected)
	return res.RowsAffected > 0, res.Error
}

func (r *LoanRepository) MarkReturned(ctx context.Context, loanID string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).
		Where("loan_id = ? AND status = ?", loanID, loanDomain.StatusAccepted).
		Update("status", loanDomain.StatusReturned)
	return res.RowsAffected > 0, res.Error
}

// AddEvidence has no status guard: the legacy evidence flow forces the loan
// to returned whatever state it was in.
func (r *LoanRepository) AddEvidence(ctx context.Context, loanID, evidence string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).
		Where("loan_id = ?", loanID).
		Updates(map[string]any{"evidence": evidence, "status": loanDomain.StatusReturned})
	return res.RowsAffected > 0, res.Error
}

func (r *LoanRepository) Delete(ctx context.Context, loanID string) (bool, error) {
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).Delete(&loanDomain.Loan{})
	return res.RowsAffected > 0, res.Error
}
