package payment

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"

	"lendbook-backend/internal/domain/apperr"
	"lendbook-backend/internal/domain/identity"
	domainLoan "lendbook-backend/internal/domain/loan"
	domain "lendbook-backend/internal/domain/payment"
	"lendbook-backend/internal/domain/uow"
	"lendbook-backend/internal/testutil/loanmock"
	"lendbook-backend/internal/testutil/paymentmock"
	"lendbook-backend/internal/testutil/uowmock"
	"lendbook-backend/internal/testutil/usermock"
)

var (
	lender   = identity.New(strings.Repeat("1", 32), "alice@example.com")
	borrower = identity.New(strings.Repeat("2", 32), "bob@example.com")
)

func acceptedLoan() *domainLoan.Loan {
	bid := borrower.ID
	return &domainLoan.Loan{
		LoanID:        strings.Repeat("a", 32),
		LenderID:      lender.ID,
		BorrowerID:    &bid,
		BorrowerEmail: "bob@example.com",
		Amount:        100000,
		Status:        domainLoan.StatusAccepted,
	}
}

// ledger is a tiny in-memory payment store driving SumByStatus / Confirm so
// multi-step settlement scenarios read naturally.
type ledger struct {
	rows []*domain.Payment
}

func (g *ledger) repo() *paymentmock.Repo {
	return &paymentmock.Repo{
		CreateFn: func(ctx context.Context, p *domain.Payment) error {
			g.rows = append(g.rows, p)
			return nil
		},
		GetByPaymentIDFn: func(ctx context.Context, id string) (*domain.Payment, error) {
			for _, p := range g.rows {
				if p.PaymentID == id {
					return p, nil
				}
			}
			return nil, gorm.ErrRecordNotFound
		},
		SumByStatusFn: func(ctx context.Context, loanID string, st domain.Status) (float64, error) {
			var total float64
			for _, p := range g.rows {
				if p.LoanID == loanID && p.Status == st {
					total += p.Amount
				}
			}
			return total, nil
		},
		ConfirmFn: func(ctx context.Context, id, by string, at time.Time) (bool, error) {
			for _, p := range g.rows {
				if p.PaymentID == id && p.Status == domain.StatusPending {
					p.Status = domain.StatusConfirmed
					p.ConfirmedBy = &by
					p.ConfirmedAt = &at
					return true, nil
				}
			}
			return false, nil
		},
		RejectFn: func(ctx context.Context, id, reason string, at time.Time) (bool, error) {
			for _, p := range g.rows {
				if p.PaymentID == id && p.Status == domain.StatusPending {
					p.Status = domain.StatusRejected
					p.RejectionReason = reason
					p.ConfirmedAt = &at
					return true, nil
				}
			}
			return false, nil
		},
	}
}

func (g *ledger) add(loanID string, amount float64, st domain.Status) *domain.Payment {
	p := &domain.Payment{
		PaymentID: strings.Repeat("d", 31) + string(rune('0'+len(g.rows))),
		LoanID:    loanID,
		Amount:    amount,
		Status:    st,
		CreatedBy: borrower.ID,
	}
	g.rows = append(g.rows, p)
	return p
}

func newTestUsecase(loans *loanmock.Repo, pays *paymentmock.Repo, unit *uowmock.UoW) *Usecase {
	if loans == nil {
		loans = &loanmock.Repo{}
	}
	if pays == nil {
		pays = &paymentmock.Repo{}
	}
	if unit == nil {
		unit = uowmock.New()
	}
	return NewUsecase(loans, pays, &usermock.Repo{}, unit, nil, nil)
}

func validSubmit(amount float64) SubmitPaymentInput {
	return SubmitPaymentInput{
		Amount:      amount,
		PaymentType: "partial",
		EvidenceURL: "https://files.example.com/tx/1.png",
	}
}

func TestSubmit_Validations(t *testing.T) {
	u := newTestUsecase(nil, nil, nil)
	ctx := context.Background()

	if _, err := u.Submit(ctx, identity.Actor{}, "x", validSubmit(100)); !errors.Is(err, apperr.ErrUnauthenticated) {
		t.Fatalf("anonymous: want ErrUnauthenticated, got %v", err)
	}
	if _, err := u.Submit(ctx, borrower, "x", validSubmit(0)); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("zero amount: want ErrValidation, got %v", err)
	}
	in := validSubmit(100)
	in.PaymentType = "installment"
	if _, err := u.Submit(ctx, borrower, "x", in); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("bad type: want ErrValidation, got %v", err)
	}
	in = validSubmit(100)
	in.EvidenceURL = " "
	if _, err := u.Submit(ctx, borrower, "x", in); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("missing evidence: want ErrValidation, got %v", err)
	}
}

func TestSubmit_BorrowerOnly_AcceptedOnly(t *testing.T) {
	l := acceptedLoan()
	g := &ledger{}
	pays := g.repo()
	loans := &loanmock.Repo{}
	u := newTestUsecase(loans, pays, uowmock.Passthrough(uow.Repos{Loans: loans, Payments: pays}, l))

	// the lender is not the borrower here
	if _, err := u.Submit(context.Background(), lender, l.LoanID, validSubmit(100)); !errors.Is(err, apperr.ErrForbidden) {
		t.Fatalf("non-borrower: want ErrForbidden, got %v", err)
	}

	l2 := acceptedLoan()
	l2.Status = domainLoan.StatusPending
	u2 := newTestUsecase(loans, pays, uowmock.Passthrough(uow.Repos{Loans: loans, Payments: pays}, l2))
	if _, err := u2.Submit(context.Background(), borrower, l2.LoanID, validSubmit(100)); !errors.Is(err, apperr.ErrInvalidState) {
		t.Fatalf("pending loan: want ErrInvalidState, got %v", err)
	}
}

func TestSubmit_OverBalance_NoRow(t *testing.T) {
	l := acceptedLoan()
	g := &ledger{}
	g.add(l.LoanID, 60000, domain.StatusConfirmed)
	pays := g.repo()
	loans := &loanmock.Repo{}
	u := newTestUsecase(loans, pays, uowmock.Passthrough(uow.Repos{Loans: loans, Payments: pays}, l))

	before := len(g.rows)
	_, err := u.Submit(context.Background(), borrower, l.LoanID, validSubmit(50000))
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("over balance: want ErrValidation, got %v", err)
	}
	if len(g.rows) != before {
		t.Fatalf("over-balance submission created a row")
	}
}

func TestSubmit_ExactBalance_OK(t *testing.T) {
	l := acceptedLoan()
	g := &ledger{}
	g.add(l.LoanID, 60000, domain.StatusConfirmed)
	pays := g.repo()
	loans := &loanmock.Repo{}
	u := newTestUsecase(loans, pays, uowmock.Passthrough(uow.Repos{Loans: loans, Payments: pays}, l))

	dto, err := u.Submit(context.Background(), borrower, l.LoanID, validSubmit(40000))
	if err != nil {
		t.Fatalf("exact-balance submit: %v", err)
	}
	if dto.Status != string(domain.StatusPending) {
		t.Fatalf("submitted payment must stay pending, got %s", dto.Status)
	}
}

func TestSubmit_PersonalLoan_AutoConfirmsAndSettles(t *testing.T) {
	l := acceptedLoan()
	l.IsPersonal = true
	bid := lender.ID
	l.BorrowerID = &bid
	l.BorrowerEmail = lender.Email

	g := &ledger{}
	pays := g.repo()
	var saved *domainLoan.Loan
	loans := &loanmock.Repo{
		SaveFn: func(ctx context.Context, got *domainLoan.Loan) error {
			saved = got
			return nil
		},
	}
	u := newTestUsecase(loans, pays, uowmock.Passthrough(uow.Repos{Loans: loans, Payments: pays}, l))

	dto, err := u.Submit(context.Background(), lender, l.LoanID, validSubmit(100000))
	if err != nil {
		t.Fatalf("personal submit: %v", err)
	}
	if dto.Status != string(domain.StatusConfirmed) {
		t.Fatalf("personal payment must auto-confirm, got %s", dto.Status)
	}
	if dto.ConfirmedBy == nil || *dto.ConfirmedBy != lender.ID {
		t.Fatalf("confirmed_by not stamped: %+v", dto)
	}
	if saved == nil || saved.Status != domainLoan.StatusReturned {
		t.Fatalf("covering payment must settle the personal loan, got %+v", saved)
	}
}

// Full repayment walk: 100000 principal, 60000 then 40000 confirmed. The
// first confirmation leaves the loan open, the second settles it.
func TestConfirm_TwoPayments_SettlesOnSecond(t *testing.T) {
	l := acceptedLoan()
	g := &ledger{}
	p1 := g.add(l.LoanID, 60000, domain.StatusPending)
	p2 := g.add(l.LoanID, 40000, domain.StatusPending)

	pays := g.repo()
	var saved *domainLoan.Loan
	loans := &loanmock.Repo{
		SaveFn: func(ctx context.Context, got *domainLoan.Loan) error {
			saved = got
			return nil
		},
	}
	u := newTestUsecase(loans, pays, uowmock.Passthrough(uow.Repos{Loans: loans, Payments: pays}, l))
	ctx := context.Background()

	applied, err := u.Confirm(ctx, lender, l.LoanID, p1.PaymentID)
	if err != nil || !applied {
		t.Fatalf("first confirm: want (true, nil), got (%v, %v)", applied, err)
	}
	if saved != nil {
		t.Fatalf("60000/100000 must not settle the loan")
	}

	bal, err := u.Balance(ctx, loanIDVia(loans, l))
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if bal.Balance != 40000 {
		t.Fatalf("after first confirm balance = %v, want 40000", bal.Balance)
	}

	applied, err = u.Confirm(ctx, lender, l.LoanID, p2.PaymentID)
	if err != nil || !applied {
		t.Fatalf("second confirm: want (true, nil), got (%v, %v)", applied, err)
	}
	if saved == nil || saved.Status != domainLoan.StatusReturned {
		t.Fatalf("full repayment must settle the loan, got %+v", saved)
	}
}

// Balance reads go through GetByLoanID; wire the mock lazily so the walk
// above can reuse the same loan.
func loanIDVia(loans *loanmock.Repo, l *domainLoan.Loan) string {
	loans.GetByLoanIDFn = func(ctx context.Context, loanID string) (*domainLoan.Loan, error) {
		if loanID == l.LoanID {
			return l, nil
		}
		return nil, gorm.ErrRecordNotFound
	}
	return l.LoanID
}

func TestConfirm_LenderOnly(t *testing.T) {
	l := acceptedLoan()
	g := &ledger{}
	p := g.add(l.LoanID, 1000, domain.StatusPending)
	pays := g.repo()
	loans := &loanmock.Repo{}
	u := newTestUsecase(loans, pays, uowmock.Passthrough(uow.Repos{Loans: loans, Payments: pays}, l))

	if _, err := u.Confirm(context.Background(), borrower, l.LoanID, p.PaymentID); !errors.Is(err, apperr.ErrForbidden) {
		t.Fatalf("borrower confirming: want ErrForbidden, got %v", err)
	}
}

func TestConfirm_ForeignPayment_Rejected(t *testing.T) {
	l := acceptedLoan()
	g := &ledger{}
	p := g.add("otherloanotherloanotherloanother", 1000, domain.StatusPending)
	pays := g.repo()
	loans := &loanmock.Repo{}
	u := newTestUsecase(loans, pays, uowmock.Passthrough(uow.Repos{Loans: loans, Payments: pays}, l))

	if _, err := u.Confirm(context.Background(), lender, l.LoanID, p.PaymentID); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("foreign payment: want ErrValidation, got %v", err)
	}
}

func TestConfirm_AlreadyResolved_NoOp(t *testing.T) {
	l := acceptedLoan()
	g := &ledger{}
	p := g.add(l.LoanID, 1000, domain.StatusConfirmed)
	pays := g.repo()
	loans := &loanmock.Repo{}
	u := newTestUsecase(loans, pays, uowmock.Passthrough(uow.Repos{Loans: loans, Payments: pays}, l))

	applied, err := u.Confirm(context.Background(), lender, l.LoanID, p.PaymentID)
	if err != nil {
		t.Fatalf("confirm resolved: %v", err)
	}
	if applied {
		t.Fatalf("confirming a resolved payment must be a no-op")
	}
}

func TestReject_RequiresReason_NeverTouchesLoan(t *testing.T) {
	l := acceptedLoan()
	g := &ledger{}
	p := g.add(l.LoanID, 1000, domain.StatusPending)
	pays := g.repo()
	loans := &loanmock.Repo{
		SaveFn: func(ctx context.Context, got *domainLoan.Loan) error {
			t.Fatalf("rejection must never write the loan")
			return nil
		},
	}
	u := newTestUsecase(loans, pays, uowmock.Passthrough(uow.Repos{Loans: loans, Payments: pays}, l))
	ctx := context.Background()

	if _, err := u.Reject(ctx, lender, l.LoanID, p.PaymentID, "  "); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("blank reason: want ErrValidation, got %v", err)
	}

	applied, err := u.Reject(ctx, lender, l.LoanID, p.PaymentID, "wrong amount")
	if err != nil || !applied {
		t.Fatalf("reject: want (true, nil), got (%v, %v)", applied, err)
	}
	if p.Status != domain.StatusRejected || p.RejectionReason != "wrong amount" {
		t.Fatalf("payment not resolved: %+v", p)
	}
}

func TestBalance_MissingLoan_ZeroValue(t *testing.T) {
	u := newTestUsecase(&loanmock.Repo{
		GetByLoanIDFn: func(ctx context.Context, loanID string) (*domainLoan.Loan, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}, nil, nil)

	bal, err := u.Balance(context.Background(), "missing")
	if err != nil {
		t.Fatalf("Balance missing loan: %v", err)
	}
	if bal != (domainLoan.Balance{}) {
		t.Fatalf("want zero balance, got %+v", bal)
	}
}

func TestBalance_PendingIsInformational(t *testing.T) {
	l := acceptedLoan()
	g := &ledger{}
	g.add(l.LoanID, 60000, domain.StatusConfirmed)
	g.add(l.LoanID, 30000, domain.StatusPending)

	u := newTestUsecase(&loanmock.Repo{
		GetByLoanIDFn: func(ctx context.Context, loanID string) (*domainLoan.Loan, error) { return l, nil },
	}, g.repo(), nil)

	bal, err := u.Balance(context.Background(), l.LoanID)
	if err != nil {
		t.Fatalf("Balance: %v", err)
	}
	if bal.Total != 100000 || bal.Paid != 60000 || bal.Pending != 30000 {
		t.Fatalf("unexpected sums: %+v", bal)
	}
	// outstanding ignores pending rows
	if bal.Balance != 40000 {
		t.Fatalf("balance = %v, want 40000", bal.Balance)
	}
}
