package payment

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"lendbook-backend/internal/domain/apperr"
	"lendbook-backend/internal/domain/identity"
	domainLoan "lendbook-backend/internal/domain/loan"
	domain "lendbook-backend/internal/domain/payment"
	"lendbook-backend/internal/domain/uow"
	"lendbook-backend/internal/domain/user"
	"lendbook-backend/internal/events"
	"lendbook-backend/internal/notify"
	"lendbook-backend/pkg/id"
)

type Usecase struct {
	loans    domainLoan.Repository
	payments domain.Repository
	users    user.Repository
	uow      uow.UnitOfWork
	notifier notify.Notifier
	sink     events.Sink
}

func NewUsecase(
	loans domainLoan.Repository,
	payments domain.Repository,
	users user.Repository,
	tx uow.UnitOfWork,
	notifier notify.Notifier,
	sink events.Sink,
) *Usecase {
	return &Usecase{loans: loans, payments: payments, users: users, uow: tx, notifier: notifier, sink: sink}
}

// Submit records a repayment attempt by the bound borrower of an accepted
// loan. The amount is validated against the outstanding balance inside the
// locked transaction, so two racing submissions cannot both fit into the
// same remaining balance. Personal loans auto-confirm on the spot and run
// the settlement check immediately.
func (u *Usecase) Submit(ctx context.Context, actor identity.Actor, loanID string, in SubmitPaymentInput) (*PaymentDTO, error) {
	if actor.Anonymous() {
		return nil, apperr.ErrUnauthenticated
	}
	if in.Amount <= 0 {
		return nil, apperr.Validationf("amount must be positive")
	}
	if !domain.Type(in.PaymentType).Valid() {
		return nil, apperr.Validationf("payment type must be partial or full")
	}
	if strings.TrimSpace(in.EvidenceURL) == "" {
		return nil, apperr.Validationf("evidence url is required")
	}

	var (
		p        *domain.Payment
		settled  bool
		personal bool
		lenderID string
		loanAmt  float64
	)
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domainLoan.Loan) error {
		if !l.BorrowedBy(actor.ID) {
			return apperr.Forbiddenf("only the borrower may register payments on loan %s", loanID)
		}
		if l.Status != domainLoan.StatusAccepted {
			return apperr.InvalidStatef("loan %s is %s, payments require an accepted loan", loanID, l.Status)
		}

		bal, err := balanceWithin(ctx, r, l)
		if err != nil {
			return err
		}
		if decimal.NewFromFloat(in.Amount).GreaterThan(decimal.NewFromFloat(bal.Balance)) {
			return apperr.Validationf("amount %.2f exceeds outstanding balance %.2f", in.Amount, bal.Balance)
		}

		p = &domain.Payment{
			PaymentID:   id.NewID32(),
			LoanID:      l.LoanID,
			Amount:      in.Amount,
			PaymentType: domain.Type(in.PaymentType),
			EvidenceURL: in.EvidenceURL,
			Status:      domain.StatusPending,
			Notes:       in.Notes,
			CreatedBy:   actor.ID,
		}
		if err := r.Payments.Create(ctx, p); err != nil {
			return err
		}

		personal = l.IsPersonal
		lenderID = l.LenderID
		loanAmt = l.Amount

		if !l.IsPersonal {
			return nil
		}

		// self-loan: nobody else can adjudicate, confirm right away
		now := time.Now().UTC()
		ok, err := r.Payments.Confirm(ctx, p.PaymentID, actor.ID, now)
		if err != nil {
			return err
		}
		if ok {
			p.Status = domain.StatusConfirmed
			p.ConfirmedBy = &actor.ID
			p.ConfirmedAt = &now
			settled, _, err = u.settleWithin(ctx, r, l)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, loanNotFound(err, loanID)
	}

	if !personal {
		u.notifyLender(ctx, actor, lenderID, loanID, loanAmt, in)
	}
	u.publish(ctx, events.PaymentEventsStream, events.PaymentSubmitted, events.PaymentSubmittedEvent{
		PaymentID: p.PaymentID, LoanID: loanID, Amount: p.Amount, Type: string(p.PaymentType),
	})
	if p.Status == domain.StatusConfirmed {
		u.publish(ctx, events.PaymentEventsStream, events.PaymentConfirmed, events.PaymentConfirmedEvent{
			PaymentID: p.PaymentID, LoanID: loanID, Amount: p.Amount, Settled: settled,
		})
	}
	if settled {
		u.publish(ctx, events.LoanEventsStream, events.LoanReturned, events.LoanReturnedEvent{LoanID: loanID, Paid: loanAmt})
	}

	return toDTO(p), nil
}

// Confirm resolves a pending payment as accepted by the lender and runs the
// settlement check against the owning loan in the same transaction. A
// resolved or missing-from-pending payment makes this a no-op returning
// false.
func (u *Usecase) Confirm(ctx context.Context, actor identity.Actor, loanID, paymentID string) (bool, error) {
	if actor.Anonymous() {
		return false, apperr.ErrUnauthenticated
	}

	var (
		applied bool
		settled bool
		amount  float64
		paid    float64
	)
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domainLoan.Loan) error {
		if l.LenderID != actor.ID {
			return apperr.Forbiddenf("only the lender may confirm payments on loan %s", loanID)
		}
		p, err := getPayment(ctx, r, l, paymentID)
		if err != nil {
			return err
		}
		amount = p.Amount

		ok, err := r.Payments.Confirm(ctx, paymentID, actor.ID, time.Now().UTC())
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		applied = true

		settled, paid, err = u.settleWithin(ctx, r, l)
		return err
	})
	if err != nil {
		return false, loanNotFound(err, loanID)
	}
	if !applied {
		return false, nil
	}

	u.publish(ctx, events.PaymentEventsStream, events.PaymentConfirmed, events.PaymentConfirmedEvent{
		PaymentID: paymentID, LoanID: loanID, Amount: amount, Settled: settled,
	})
	if settled {
		u.publish(ctx, events.LoanEventsStream, events.LoanReturned, events.LoanReturnedEvent{LoanID: loanID, Paid: paid})
	}
	return true, nil
}

// Reject resolves a pending payment as declined. Requires a reason; never
// touches the loan's status or balance.
func (u *Usecase) Reject(ctx context.Context, actor identity.Actor, loanID, paymentID, reason string) (bool, error) {
	if actor.Anonymous() {
		return false, apperr.ErrUnauthenticated
	}
	if strings.TrimSpace(reason) == "" {
		return false, apperr.Validationf("rejection reason is required")
	}

	applied := false
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domainLoan.Loan) error {
		if l.LenderID != actor.ID {
			return apperr.Forbiddenf("only the lender may reject payments on loan %s", loanID)
		}
		if _, err := getPayment(ctx, r, l, paymentID); err != nil {
			return err
		}
		ok, err := r.Payments.Reject(ctx, paymentID, reason, time.Now().UTC())
		if err != nil {
			return err
		}
		applied = ok
		return nil
	})
	if err != nil {
		return false, loanNotFound(err, loanID)
	}
	if applied {
		u.publish(ctx, events.PaymentEventsStream, events.PaymentRejected, events.PaymentRejectedEvent{
			PaymentID: paymentID, LoanID: loanID, Reason: reason,
		})
	}
	return applied, nil
}

// Balance derives a loan's repayment position. A missing loan yields the
// zero value rather than an error.
func (u *Usecase) Balance(ctx context.Context, loanID string) (domainLoan.Balance, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainLoan.Balance{}, nil
		}
		return domainLoan.Balance{}, err
	}
	paid, err := u.payments.SumByStatus(ctx, loanID, domain.StatusConfirmed)
	if err != nil {
		return domainLoan.Balance{}, err
	}
	pending, err := u.payments.SumByStatus(ctx, loanID, domain.StatusPending)
	if err != nil {
		return domainLoan.Balance{}, err
	}
	return domainLoan.ComputeBalance(l.Amount, paid, pending), nil
}

// ListForLoan returns the payment history plus the balance to either party.
func (u *Usecase) ListForLoan(ctx context.Context, actor identity.Actor, loanID string) (*LoanPaymentsDTO, error) {
	if actor.Anonymous() {
		return nil, apperr.ErrUnauthenticated
	}
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, loanNotFound(err, loanID)
	}
	if !l.Party(actor.ID) {
		return nil, apperr.Forbiddenf("loan %s does not involve this caller", loanID)
	}

	rows, err := u.payments.ListByLoan(ctx, loanID)
	if err != nil {
		return nil, err
	}
	bal, err := u.Balance(ctx, loanID)
	if err != nil {
		return nil, err
	}

	out := &LoanPaymentsDTO{Payments: make([]PaymentDTO, 0, len(rows)), Balance: bal}
	for i := range rows {
		out.Payments = append(out.Payments, *toDTO(&rows[i]))
	}
	return out, nil
}

// settleWithin re-derives the confirmed sum with the loan row still locked
// and overwrites the status to returned when the principal is covered.
func (u *Usecase) settleWithin(ctx context.Context, r uow.Repos, l *domainLoan.Loan) (settled bool, paid float64, err error) {
	paid, err = r.Payments.SumByStatus(ctx, l.LoanID, domain.StatusConfirmed)
	if err != nil {
		return false, 0, err
	}
	if !l.Settle(domainLoan.ComputeBalance(l.Amount, paid, 0)) {
		return false, paid, nil
	}
	if err := r.Loans.Save(ctx, l); err != nil {
		return false, paid, err
	}
	return true, paid, nil
}

func balanceWithin(ctx context.Context, r uow.Repos, l *domainLoan.Loan) (domainLoan.Balance, error) {
	paid, err := r.Payments.SumByStatus(ctx, l.LoanID, domain.StatusConfirmed)
	if err != nil {
		return domainLoan.Balance{}, err
	}
	pending, err := r.Payments.SumByStatus(ctx, l.LoanID, domain.StatusPending)
	if err != nil {
		return domainLoan.Balance{}, err
	}
	return domainLoan.ComputeBalance(l.Amount, paid, pending), nil
}

func getPayment(ctx context.Context, r uow.Repos, l *domainLoan.Loan, paymentID string) (*domain.Payment, error) {
	p, err := r.Payments.GetByPaymentID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("payment %s", paymentID)
		}
		return nil, err
	}
	if p.LoanID != l.LoanID {
		return nil, apperr.Validationf("payment %s does not belong to loan %s", paymentID, l.LoanID)
	}
	return p, nil
}

func (u *Usecase) notifyLender(ctx context.Context, actor identity.Actor, lenderID, loanID string, loanAmount float64, in SubmitPaymentInput) {
	if u.notifier == nil {
		return
	}
	lender, err := u.users.GetByID(ctx, lenderID)
	if err != nil {
		log.Printf("payment: lender %s lookup for notification: %v", lenderID, err)
		return
	}
	borrowerName := actor.Email
	if b, err := u.users.GetByID(ctx, actor.ID); err == nil {
		borrowerName = b.Username
	}
	err = u.notifier.SendPaymentSubmitted(ctx, notify.PaymentSubmitted{
		LenderEmail:   lender.Email,
		LenderName:    lender.Username,
		BorrowerName:  borrowerName,
		LoanID:        loanID,
		LoanAmount:    loanAmount,
		PaymentAmount: in.Amount,
		PaymentType:   in.PaymentType,
		Notes:         in.Notes,
	})
	if err != nil {
		log.Printf("payment: submission mail for loan %s: %v", loanID, err)
	}
}

func (u *Usecase) publish(ctx context.Context, stream, eventType string, data any) {
	if u.sink == nil {
		return
	}
	if err := u.sink.Publish(ctx, stream, eventType, data); err != nil {
		log.Printf("payment: publish %s: %v", eventType, err)
	}
}

func loanNotFound(err error, loanID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFoundf("loan %s", loanID)
	}
	return err
}
