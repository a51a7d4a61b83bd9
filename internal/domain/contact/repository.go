package contact

import "context"

type Repository interface {
	Create(ctx context.Context, c *Contact) error
	// Ensure inserts the contact if the (owner, email) pair is new and
	// leaves an existing entry untouched. Used opportunistically on loan
	// create/accept; callers swallow its error.
	Ensure(ctx context.Context, ownerID, email, name, phone string) error
	Get(ctx context.Context, ownerID, email string) (*Contact, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Contact, error)
	Update(ctx context.Context, ownerID, email string, upd Update) (bool, error)
	Delete(ctx context.Context, ownerID, email string) (bool, error)
}
