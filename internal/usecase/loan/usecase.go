package loan

import (
	"context"
	"errors"
	"log"
	"strings"

	"lendbook-backend/internal/domain/apperr"
	"lendbook-backend/internal/domain/contact"
	"lendbook-backend/internal/domain/identity"
	"lendbook-backend/internal/domain/loan"
	"lendbook-backend/internal/domain/payment"
	"lendbook-backend/internal/domain/uow"
	"lendbook-backend/internal/domain/user"
	"lendbook-backend/internal/events"
	"lendbook-backend/internal/notify"
	"lendbook-backend/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	loans    loan.Repository
	payments payment.Repository
	users    user.Repository
	contacts contact.Repository
	uow      uow.UnitOfWork
	notifier notify.Notifier
	sink     events.Sink
	appURL   string
}

func NewUsecase(
	loans loan.Repository,
	payments payment.Repository,
	users user.Repository,
	contacts contact.Repository,
	tx uow.UnitOfWork,
	notifier notify.Notifier,
	sink events.Sink,
	appURL string,
) *Usecase {
	return &Usecase{
		loans:    loans,
		payments: payments,
		users:    users,
		contacts: contacts,
		uow:      tx,
		notifier: notifier,
		sink:     sink,
		appURL:   strings.TrimRight(appURL, "/"),
	}
}

// Create registers a new loan. Invitation loans start pending with a fresh
// invitation token; personal loans bind the lender as borrower and start
// accepted so payments can be registered immediately.
func (u *Usecase) Create(ctx context.Context, actor identity.Actor, in CreateLoanInput) (*LoanDTO, error) {
	if actor.Anonymous() {
		return nil, apperr.ErrUnauthenticated
	}
	if in.Amount <= 0 {
		return nil, apperr.Validationf("amount must be positive")
	}
	if strings.TrimSpace(in.Description) == "" {
		return nil, apperr.Validationf("description is required")
	}
	if !in.IsPersonal {
		if strings.TrimSpace(in.BorrowerEmail) == "" || strings.TrimSpace(in.BorrowerName) == "" {
			return nil, apperr.Validationf("borrower email and name are required")
		}
	}

	l := &loan.Loan{
		LoanID:          id.NewID32(),
		LenderID:        actor.ID,
		BorrowerEmail:   strings.ToLower(strings.TrimSpace(in.BorrowerEmail)),
		BorrowerName:    strings.TrimSpace(in.BorrowerName),
		Amount:          in.Amount,
		Description:     in.Description,
		Status:          loan.StatusPending,
		InvitationToken: id.NewToken(),
	}
	if in.IsPersonal {
		borrowerID := actor.ID
		l.IsPersonal = true
		l.Status = loan.StatusAccepted
		l.BorrowerID = &borrowerID
		l.BorrowerEmail = actor.Email
	}

	if err := u.loans.Create(ctx, l); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflictf("loan id or invitation token already taken")
		}
		return nil, err
	}

	if !l.IsPersonal {
		u.ensureContact(ctx, actor.ID, l.BorrowerEmail, l.BorrowerName, "")
		u.sendInvitation(ctx, actor, l)
	}
	u.publish(ctx, events.LoanEventsStream, events.LoanCreated, events.LoanCreatedEvent{
		LoanID: l.LoanID, LenderID: l.LenderID, Amount: l.Amount, Personal: l.IsPersonal,
	})

	return toDTO(l), nil
}

// Accept binds the caller as borrower of a pending loan. A loan that is no
// longer pending makes this a no-op returning false, so duplicate accepts
// (double click, concurrent requests) never error and never rebind.
func (u *Usecase) Accept(ctx context.Context, actor identity.Actor, loanID string) (bool, error) {
	if actor.Anonymous() {
		return false, apperr.ErrUnauthenticated
	}

	applied := false
	var lenderID string
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loan.Loan) error {
		if !strings.EqualFold(l.BorrowerEmail, actor.Email) {
			return apperr.Forbiddenf("loan %s is not addressed to this caller", loanID)
		}
		if l.Status != loan.StatusPending {
			return nil
		}
		ok, err := r.Loans.Accept(ctx, loanID, actor.ID)
		if err != nil {
			return err
		}
		applied = ok
		lenderID = l.LenderID
		return nil
	})
	if err != nil {
		return false, loanNotFound(err, loanID)
	}
	if !applied {
		return false, nil
	}

	// the borrower gets the lender in their contact book; best effort
	if lender, err := u.users.GetByID(ctx, lenderID); err == nil {
		u.ensureContact(ctx, actor.ID, lender.Email, lender.Username, lender.Phone)
	}
	u.publish(ctx, events.LoanEventsStream, events.LoanAccepted, events.LoanAcceptedEvent{
		LoanID: loanID, BorrowerID: actor.ID,
	})
	return true, nil
}

// Reject declines a pending invitation. Same no-op semantics as Accept.
func (u *Usecase) Reject(ctx context.Context, actor identity.Actor, loanID string) (bool, error) {
	if actor.Anonymous() {
		return false, apperr.ErrUnauthenticated
	}

	applied := false
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loan.Loan) error {
		if !strings.EqualFold(l.BorrowerEmail, actor.Email) {
			return apperr.Forbiddenf("loan %s is not addressed to this caller", loanID)
		}
		if l.Status != loan.StatusPending {
			return nil
		}
		ok, err := r.Loans.Reject(ctx, loanID)
		if err != nil {
			return err
		}
		applied = ok
		return nil
	})
	if err != nil {
		return false, loanNotFound(err, loanID)
	}
	return applied, nil
}

// MarkReturned is the lender's manual settlement path, independent of
// payment reconciliation.
func (u *Usecase) MarkReturned(ctx context.Context, actor identity.Actor, loanID string) (bool, error) {
	if actor.Anonymous() {
		return false, apperr.ErrUnauthenticated
	}

	applied := false
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loan.Loan) error {
		if l.LenderID != actor.ID {
			return apperr.Forbiddenf("only the lender may mark loan %s returned", loanID)
		}
		if l.Status != loan.StatusAccepted {
			return apperr.InvalidStatef("loan %s is %s, only accepted loans can be marked returned", loanID, l.Status)
		}
		ok, err := r.Loans.MarkReturned(ctx, loanID)
		if err != nil {
			return err
		}
		applied = ok
		return nil
	})
	if err != nil {
		return false, loanNotFound(err, loanID)
	}
	return applied, nil
}

// AddEvidence records a single proof-of-return reference and forces the loan
// to returned regardless of its current status (legacy flow).
func (u *Usecase) AddEvidence(ctx context.Context, actor identity.Actor, loanID, evidence string) error {
	if actor.Anonymous() {
		return apperr.ErrUnauthenticated
	}
	if strings.TrimSpace(evidence) == "" {
		return apperr.Validationf("evidence is required")
	}

	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loan.Loan) error {
		if l.LenderID != actor.ID {
			return apperr.Forbiddenf("only the lender may attach evidence to loan %s", loanID)
		}
		_, err := r.Loans.AddEvidence(ctx, loanID, evidence)
		return err
	})
	return loanNotFound(err, loanID)
}

// Delete removes an unactioned or declined loan together with its payments.
func (u *Usecase) Delete(ctx context.Context, actor identity.Actor, loanID string) error {
	if actor.Anonymous() {
		return apperr.ErrUnauthenticated
	}

	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loan.Loan) error {
		if l.LenderID != actor.ID {
			return apperr.Forbiddenf("only the lender may delete loan %s", loanID)
		}
		if !l.Status.Deletable() {
			return apperr.InvalidStatef("loan %s is %s, only pending or rejected loans can be deleted", loanID, l.Status)
		}
		if err := r.Payments.DeleteByLoan(ctx, loanID); err != nil {
			return err
		}
		_, err := r.Loans.Delete(ctx, loanID)
		return err
	})
	return loanNotFound(err, loanID)
}

// Get returns one loan to either of its parties.
func (u *Usecase) Get(ctx context.Context, actor identity.Actor, loanID string) (*LoanDTO, error) {
	if actor.Anonymous() {
		return nil, apperr.ErrUnauthenticated
	}
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, loanNotFound(err, loanID)
	}
	if !l.Party(actor.ID) && !strings.EqualFold(l.BorrowerEmail, actor.Email) {
		return nil, apperr.Forbiddenf("loan %s does not involve this caller", loanID)
	}
	return toDTO(l), nil
}

// List builds the caller's dashboard: lent loans (with pending-payment
// counts), borrowed loans, and open invitations for their email.
func (u *Usecase) List(ctx context.Context, actor identity.Actor) (*LoanListDTO, error) {
	if actor.Anonymous() {
		return nil, apperr.ErrUnauthenticated
	}

	lent, err := u.loans.ListByLender(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	asLender := make([]LoanDTO, 0, len(lent))
	for i := range lent {
		dto := toDTO(&lent[i])
		if n, err := u.payments.CountPendingByLoan(ctx, lent[i].LoanID); err == nil {
			dto.PendingPayments = n
		}
		asLender = append(asLender, *dto)
	}

	borrowed, err := u.loans.ListByBorrower(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	invited, err := u.loans.ListPendingByEmail(ctx, actor.Email)
	if err != nil {
		return nil, err
	}

	out := &LoanListDTO{
		AsLender:           asLender,
		AsBorrower:         make([]LoanDTO, 0, len(borrowed)),
		PendingInvitations: make([]LoanDTO, 0, len(invited)),
	}
	for i := range borrowed {
		out.AsBorrower = append(out.AsBorrower, *toDTO(&borrowed[i]))
	}
	for i := range invited {
		out.PendingInvitations = append(out.PendingInvitations, *toDTO(&invited[i]))
	}
	return out, nil
}

// ResolveInvitation looks a loan up by its invitation token. Anonymous
// callers are allowed: this is how an unregistered invitee first sees the
// loan.
func (u *Usecase) ResolveInvitation(ctx context.Context, token string) (*LoanDTO, error) {
	l, err := u.loans.GetByInvitationToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("invitation %s", token)
		}
		return nil, err
	}
	return toDTO(l), nil
}

// ---- side effects (never escalate) ----

func (u *Usecase) ensureContact(ctx context.Context, ownerID, email, name, phone string) {
	if u.contacts == nil {
		return
	}
	if err := u.contacts.Ensure(ctx, ownerID, email, name, phone); err != nil {
		log.Printf("loan: ensure contact %s for %s: %v", email, ownerID, err)
	}
}

func (u *Usecase) sendInvitation(ctx context.Context, actor identity.Actor, l *loan.Loan) {
	if u.notifier == nil {
		return
	}
	lenderName := actor.Email
	if lender, err := u.users.GetByID(ctx, actor.ID); err == nil {
		lenderName = lender.Username
	}
	err := u.notifier.SendInvitation(ctx, notify.Invitation{
		LenderName:    lenderName,
		BorrowerEmail: l.BorrowerEmail,
		BorrowerName:  l.BorrowerName,
		Amount:        l.Amount,
		Description:   l.Description,
		InvitationURL: u.appURL + "/invitation/" + l.InvitationToken,
	})
	if err != nil {
		log.Printf("loan: invitation mail for %s: %v", l.LoanID, err)
	}
}

func (u *Usecase) publish(ctx context.Context, stream, eventType string, data any) {
	if u.sink == nil {
		return
	}
	if err := u.sink.Publish(ctx, stream, eventType, data); err != nil {
		log.Printf("loan: publish %s: %v", eventType, err)
	}
}

func loanNotFound(err error, loanID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFoundf("loan %s", loanID)
	}
	return err
}
