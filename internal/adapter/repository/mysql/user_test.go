package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	domain "lendbook-backend/internal/domain/user"
)

type userSQLite struct {
	ID        string    `gorm:"primaryKey;size:32;column:id"`
	Username  string    `gorm:"size:255;uniqueIndex;column:username"`
	Email     string    `gorm:"size:255;uniqueIndex;column:email"`
	Phone     string    `gorm:"size:50;column:phone"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (userSQLite) TableName() string { return "users" }

func openUserTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&userSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func TestUserCreateAndGetByID(t *testing.T) {
	db := openUserTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	in := &domain.User{ID: "USR-1", Username: "ana", Email: "Ana@Example.com"}
	if err := repo.Create(ctx, in); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, "USR-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Username != "ana" || got.Email != "ana@example.com" {
		t.Fatalf("unexpected user: %+v", got)
	}

	if _, err := repo.GetByID(ctx, "USR-NOPE"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestUserGetByEmail_CaseInsensitive(t *testing.T) {
	db := openUserTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, &domain.User{ID: "USR-2", Username: "budi", Email: "budi@example.com"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByEmail(ctx, "BUDI@Example.COM")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if got.ID != "USR-2" {
		t.Fatalf("wrong user: %+v", got)
	}

	if _, err := repo.GetByEmail(ctx, "nobody@example.com"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
