package contact

import "time"

// Contact is one entry in a user's personal contact book, keyed by
// (owner, lowercased email). Contacts are an independent per-user ledger;
// loans reference people by email, never by contact row.
type Contact struct {
	Email     string    `gorm:"primaryKey;size:255" json:"email"`
	OwnerID   string    `gorm:"primaryKey;size:32;column:owner_id" json:"owner_id"`
	Name      string    `gorm:"size:255" json:"name"`
	Phone     string    `gorm:"size:50" json:"phone,omitempty"`
	Notes     string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Contact) TableName() string { return "contacts" }

// Update carries the patchable fields; nil means leave unchanged.
type Update struct {
	Name  *string
	Phone *string
	Notes *string
}

func (u Update) Empty() bool { return u.Name == nil && u.Phone == nil && u.Notes == nil }
