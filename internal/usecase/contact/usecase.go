package contact

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"lendbook-backend/internal/domain/apperr"
	"lendbook-backend/internal/domain/contact"
	"lendbook-backend/internal/domain/identity"
)

type Usecase struct{ repo contact.Repository }

func NewUsecase(r contact.Repository) *Usecase { return &Usecase{repo: r} }

type CreateContactInput struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

type UpdateContactInput struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Notes *string `json:"notes"`
}

func (u *Usecase) Create(ctx context.Context, actor identity.Actor, in CreateContactInput) (*contact.Contact, error) {
	if actor.Anonymous() {
		return nil, apperr.ErrUnauthenticated
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || strings.TrimSpace(in.Name) == "" {
		return nil, apperr.Validationf("email and name are required")
	}

	c := &contact.Contact{
		Email:   email,
		OwnerID: actor.ID,
		Name:    strings.TrimSpace(in.Name),
		Phone:   in.Phone,
		Notes:   in.Notes,
	}
	if err := u.repo.Create(ctx, c); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflictf("contact %s already exists", email)
		}
		return nil, err
	}
	return c, nil
}

func (u *Usecase) List(ctx context.Context, actor identity.Actor) ([]contact.Contact, error) {
	if actor.Anonymous() {
		return nil, apperr.ErrUnauthenticated
	}
	return u.repo.ListByOwner(ctx, actor.ID)
}

func (u *Usecase) Update(ctx context.Context, actor identity.Actor, email string, in UpdateContactInput) error {
	if actor.Anonymous() {
		return apperr.ErrUnauthenticated
	}
	upd := contact.Update{Name: in.Name, Phone: in.Phone, Notes: in.Notes}
	if upd.Empty() {
		return apperr.Validationf("nothing to update")
	}
	ok, err := u.repo.Update(ctx, actor.ID, strings.ToLower(email), upd)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFoundf("contact %s", email)
	}
	return nil
}

func (u *Usecase) Delete(ctx context.Context, actor identity.Actor, email string) error {
	if actor.Anonymous() {
		return apperr.ErrUnauthenticated
	}
	ok, err := u.repo.Delete(ctx, actor.ID, strings.ToLower(email))
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFoundf("contact %s", email)
	}
	return nil
}
