package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	paymentDomain "lendbook-backend/internal/domain/payment"
)

type PaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{db: db} }

func (r *PaymentRepository) Create(ctx context.Context, p *paymentDomain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) GetByPaymentID(ctx context.Context, paymentID string) (*paymentDomain.Payment, error) {
	var out paymentDomain.Payment
	res := r.db.WithContext(ctx).Where("payment_id = ?", paymentID).First(&out)
	return &out, res.Error
}

func (r *PaymentRepository) ListByLoan(ctx context.Context, loanID string) ([]paymentDomain.Payment, error) {
	var out []paymentDomain.Payment
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *PaymentRepository) CountPendingByLoan(ctx context.Context, loanID string) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&paymentDomain.Payment{}).
		Where("loan_id = ? AND status = ?", loanID, paymentDomain.StatusPending).
		Count(&n)
	return n, res.Error
}

func (r *PaymentRepository) SumByStatus(ctx context.Context, loanID string, st paymentDomain.Status) (float64, error) {
	var total float64
	res := r.db.WithContext(ctx).Model(&paymentDomain.Payment{}).
		Where("loan_id = ? AND status = ?", loanID, st).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total)
	return total, res.Error
}

// Confirm resolves a pending payment exactly once (compare-and-swap on
// status). Zero rows affected means it was missing or already resolved.
func (r *PaymentRepository) Confirm(ctx context.Context, paymentID, confirmedBy string, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Model(&paymentDomain.Payment{}).
		Where("payment_id = ? AND status = ?", paymentID, paymentDomain.StatusPending).
		Updates(map[string]any{
			"status":       paymentDomain.StatusConfirmed,
			"confirmed_by": confirmedBy,
			"confirmed_at": at,
		})
	return res.RowsAffected > 0, res.Error
}

func (r *PaymentRepository) Reject(ctx context.Context, paymentID, reason string, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Model(&paymentDomain.Payment{}).
		Where("payment_id = ? AND status = ?", paymentID, paymentDomain.StatusPending).
		Updates(map[string]any{
			"status":           paymentDomain.StatusRejected,
			"rejection_reason": reason,
			"confirmed_at":     at,
		})
	return res.RowsAffected > 0, res.Error
}

func (r *PaymentRepository) DeleteByLoan(ctx context.Context, loanID string) error {
	return r.db.WithContext(ctx).Where("loan_id = ?", loanID).Delete(&paymentDomain.Payment{}).Error
}
