package user

import "time"

// User carries the identity records referenced by loans and notifications.
// Registration and credentials live upstream; this table only mirrors what
// the core needs to render contact entries and outbound mail.
type User struct {
	ID        string    `gorm:"primaryKey;size:32" json:"id"`
	Username  string    `gorm:"size:255;uniqueIndex:ux_users_username" json:"username"`
	Email     string    `gorm:"size:255;uniqueIndex:ux_users_email" json:"email"`
	Phone     string    `gorm:"size:50" json:"phone,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "users" }
