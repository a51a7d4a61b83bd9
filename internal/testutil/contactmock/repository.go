package contactmock

import (
	"context"

	domain "lendbook-backend/internal/domain/contact"
)

// Ensure compile-time compliance
var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn      func(ctx context.Context, c *domain.Contact) error
	EnsureFn      func(ctx context.Context, ownerID, email, name, phone string) error
	GetFn         func(ctx context.Context, ownerID, email string) (*domain.Contact, error)
	ListByOwnerFn func(ctx context.Context, ownerID string) ([]domain.Contact, error)
	UpdateFn      func(ctx context.Context, ownerID, email string, upd domain.Update) (bool, error)
	DeleteFn      func(ctx context.Context, ownerID, email string) (bool, error)
}

func (m *Repo) Create(ctx context.Context, c *domain.Contact) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}
func (m *Repo) Ensure(ctx context.Context, ownerID, email, name, phone string) error {
	if m.EnsureFn != nil {
		return m.EnsureFn(ctx, ownerID, email, name, phone)
	}
	return nil
}
func (m *Repo) Get(ctx context.Context, ownerID, email string) (*domain.Contact, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, ownerID, email)
	}
	return nil, context.Canceled
}
func (m *Repo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Contact, error) {
	if m.ListByOwnerFn != nil {
		return m.ListByOwnerFn(ctx, ownerID)
	}
	return nil, nil
}
func (m *Repo) Update(ctx context.Context, ownerID, email string, upd domain.Update) (bool, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, ownerID, email, upd)
	}
	return false, nil
}
func (m *Repo) Delete(ctx context.Context, ownerID, email string) (bool, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, ownerID, email)
	}
	return false, nil
}
