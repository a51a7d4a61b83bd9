package paymentmock

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "lendbook-backend/internal/domain/payment"
)

func TestRepo_Create(t *testing.T) {
	ctx := context.Background()
	p := &domain.Payment{PaymentID: "PMT-1", LoanID: "LN-1"}

	// Uses provided func
	called := false
	wantErr := errors.New("boom")
	m := &Repo{
		CreateFn: func(gotCtx context.Context, got *domain.Payment) error {
			called = true
			if gotCtx != ctx {
				t.Fatalf("ctx mismatch")
			}
			if got != p {
				t.Fatalf("arg mismatch")
			}
			return wantErr
		},
	}
	if err := m.Create(ctx, p); !errors.Is(err, wantErr) {
		t.Fatalf("Create: want %v, got %v", wantErr, err)
	}
	if !called {
		t.Fatalf("CreateFn not called")
	}

	// Default (nil func) → no-op, nil error
	m = &Repo{}
	if err := m.Create(ctx, p); err != nil {
		t.Fatalf("Create default: want nil, got %v", err)
	}
}

func TestRepo_GetByPaymentID(t *testing.T) {
	ctx := context.Background()
	want := &domain.Payment{PaymentID: "PMT-2", LoanID: "LN-2"}

	// Uses provided func
	called := false
	m := &Repo{
		GetByPaymentIDFn: func(gotCtx context.Context, paymentID string) (*domain.Payment, error) {
			called = true
			if gotCtx != ctx {
				t.Fatalf("ctx mismatch")
			}
			if paymentID != "PMT-2" {
				t.Fatalf("paymentID mismatch: got %s", paymentID)
			}
			return want, nil
		},
	}
	got, err := m.GetByPaymentID(ctx, "PMT-2")
	if err != nil {
		t.Fatalf("GetByPaymentID: unexpected err %v", err)
	}
	if got != want {
		t.Fatalf("GetByPaymentID: want %+v, got %+v", want, got)
	}
	if !called {
		t.Fatalf("GetByPaymentIDFn not called")
	}

	// Default (nil func) → context.Canceled
	m = &Repo{}
	got, err = m.GetByPaymentID(ctx, "PMT-9")
	if err != context.Canceled {
		t.Fatalf("GetByPaymentID default: want context.Canceled, got %v", err)
	}
	if got != nil {
		t.Fatalf("GetByPaymentID default: want nil, got %+v", got)
	}
}

func TestRepo_SumByStatus(t *testing.T) {
	ctx := context.Background()

	m := &Repo{
		SumByStatusFn: func(gotCtx context.Context, loanID string, st domain.Status) (float64, error) {
			if loanID != "LN-3" || st != domain.StatusConfirmed {
				t.Fatalf("arg mismatch: %s %s", loanID, st)
			}
			return 75_000, nil
		},
	}
	got, err := m.SumByStatus(ctx, "LN-3", domain.StatusConfirmed)
	if err != nil || got != 75_000 {
		t.Fatalf("SumByStatus: got %v err %v", got, err)
	}

	// Default (nil func) → zero sum, nil error
	m = &Repo{}
	got, err = m.SumByStatus(ctx, "LN-3", domain.StatusConfirmed)
	if err != nil || got != 0 {
		t.Fatalf("SumByStatus default: got %v err %v", got, err)
	}
}

func TestRepo_Confirm(t *testing.T) {
	ctx := context.Background()
	at := time.Now().UTC()

	called := false
	m := &Repo{
		ConfirmFn: func(gotCtx context.Context, paymentID, confirmedBy string, gotAt time.Time) (bool, error) {
			called = true
			if paymentID != "PMT-4" || confirmedBy != "USR-L1" || !gotAt.Equal(at) {
				t.Fatalf("arg mismatch: %s %s %v", paymentID, confirmedBy, gotAt)
			}
			return true, nil
		},
	}
	ok, err := m.Confirm(ctx, "PMT-4", "USR-L1", at)
	if err != nil || !ok {
		t.Fatalf("Confirm: ok=%v err=%v", ok, err)
	}
	if !called {
		t.Fatalf("ConfirmFn not called")
	}

	// Default (nil func) → swap lost, nil error
	m = &Repo{}
	ok, err = m.Confirm(ctx, "PMT-4", "USR-L1", at)
	if err != nil || ok {
		t.Fatalf("Confirm default: ok=%v err=%v", ok, err)
	}
}

func TestRepo_Reject(t *testing.T) {
	ctx := context.Background()
	at := time.Now().UTC()

	m := &Repo{
		RejectFn: func(gotCtx context.Context, paymentID, reason string, gotAt time.Time) (bool, error) {
			if paymentID != "PMT-5" || reason != "wrong amount" {
				t.Fatalf("arg mismatch: %s %s", paymentID, reason)
			}
			return true, nil
		},
	}
	ok, err := m.Reject(ctx, "PMT-5", "wrong amount", at)
	if err != nil || !ok {
		t.Fatalf("Reject: ok=%v err=%v", ok, err)
	}

	m = &Repo{}
	ok, err = m.Reject(ctx, "PMT-5", "wrong amount", at)
	if err != nil || ok {
		t.Fatalf("Reject default: ok=%v err=%v", ok, err)
	}
}

func TestRepo_DeleteByLoan(t *testing.T) {
	ctx := context.Background()

	called := false
	m := &Repo{
		DeleteByLoanFn: func(gotCtx context.Context, loanID string) error {
			called = true
			if loanID != "LN-6" {
				t.Fatalf("loanID mismatch: got %s", loanID)
			}
			return nil
		},
	}
	if err := m.DeleteByLoan(ctx, "LN-6"); err != nil {
		t.Fatalf("DeleteByLoan: %v", err)
	}
	if !called {
		t.Fatalf("DeleteByLoanFn not called")
	}

	m = &Repo{}
	if err := m.DeleteByLoan(ctx, "LN-6"); err != nil {
		t.Fatalf("DeleteByLoan default: %v", err)
	}
}
