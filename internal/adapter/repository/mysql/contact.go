package mysql

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	contactDomain "lendbook-backend/internal/domain/contact"
)

type ContactRepository struct{ db *gorm.DB }

func NewContactRepository(db *gorm.DB) *ContactRepository { return &ContactRepository{db: db} }

func (r *ContactRepository) Create(ctx context.Context, c *contactDomain.Contact) error {
	c.Email = strings.ToLower(c.Email)
	return r.db.WithContext(ctx).Create(c).Error
}

// Ensure inserts only when the (owner, email) pair is new; an existing
// entry is left untouched.
func (r *ContactRepository) Ensure(ctx context.Context, ownerID, email, name, phone string) error {
	c := &contactDomain.Contact{
		Email:   strings.ToLower(email),
		OwnerID: ownerID,
		Name:    name,
		Phone:   phone,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(c).Error
}

func (r *ContactRepository) Get(ctx context.Context, ownerID, email string) (*contactDomain.Contact, error) {
	var out contactDomain.Contact
	res := r.db.WithContext(ctx).
		Where("owner_id = ? AND email = ?", ownerID, strings.ToLower(email)).
		First(&out)
	return &out, res.Error
}

func (r *ContactRepository) ListByOwner(ctx context.Context, ownerID string) ([]contactDomain.Contact, error) {
	var out []contactDomain.Contact
	res := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("name ASC").
		Find(&out)
	return out, res.Error
}

func (r *ContactRepository) Update(ctx context.Context, ownerID, email string, upd contactDomain.Update) (bool, error) {
	fields := map[string]any{}
	if upd.Name != nil {
		fields["name"] = *upd.Name
	}
	if upd.Phone != nil {
		fields["phone"] = *upd.Phone
	}
	if upd.Notes != nil {
		fields["notes"] = *upd.Notes
	}
	if len(fields) == 0 {
		return false, nil
	}
	res := r.db.WithContext(ctx).Model(&contactDomain.Contact{}).
		Where("owner_id = ? AND email = ?", ownerID, strings.ToLower(email)).
		Updates(fields)
	return res.RowsAffected > 0, res.Error
}

func (r *ContactRepository) Delete(ctx context.Context, ownerID, email string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("owner_id = ? AND email = ?", ownerID, strings.ToLower(email)).
		Delete(&contactDomain.Contact{})
	return res.RowsAffected > 0, res.Error
}
