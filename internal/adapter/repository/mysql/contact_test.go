package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	domain "lendbook-backend/internal/domain/contact"
)

type contactSQLite struct {
	Email     string    `gorm:"primaryKey;size:255;column:email"`
	OwnerID   string    `gorm:"primaryKey;size:32;column:owner_id"`
	Name      string    `gorm:"size:255;column:name"`
	Phone     string    `gorm:"size:50;column:phone"`
	Notes     string    `gorm:"column:notes"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (contactSQLite) TableName() string { return "contacts" }

func openContactTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&contactSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func TestContactCreate_LowercasesEmail(t *testing.T) {
	db := openContactTestDB(t)
	repo := NewContactRepository(db)
	ctx := context.Background()

	in := &domain.Contact{Email: "Ana@Example.COM", OwnerID: "USR-1", Name: "Ana"}
	if err := repo.Create(ctx, in); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.Get(ctx, "USR-1", "ana@example.com")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "Ana" || got.Email != "ana@example.com" {
		t.Fatalf("unexpected contact: %+v", got)
	}
}

func TestContactEnsure_InsertsOnlyWhenAbsent(t *testing.T) {
	db := openContactTestDB(t)
	repo := NewContactRepository(db)
	ctx := context.Background()

	if err := repo.Ensure(ctx, "USR-1", "budi@example.com", "Budi", "0812"); err != nil {
		t.Fatalf("first Ensure: %v", err)
	}

	// same pair again with a different name: existing row kept
	if err := repo.Ensure(ctx, "USR-1", "Budi@example.com", "Someone Else", ""); err != nil {
		t.Fatalf("second Ensure: %v", err)
	}

	got, err := repo.Get(ctx, "USR-1", "budi@example.com")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "Budi" || got.Phone != "0812" {
		t.Fatalf("existing entry was overwritten: %+v", got)
	}

	// another owner may hold the same email
	if err := repo.Ensure(ctx, "USR-2", "budi@example.com", "Budi 2", ""); err != nil {
		t.Fatalf("Ensure other owner: %v", err)
	}
	if _, err := repo.Get(ctx, "USR-2", "budi@example.com"); err != nil {
		t.Fatalf("Get other owner: %v", err)
	}
}

func TestContactListByOwner_SortedByName(t *testing.T) {
	db := openContactTestDB(t)
	repo := NewContactRepository(db)
	ctx := context.Background()

	for _, c := range []struct{ email, name string }{
		{"zed@example.com", "Zed"},
		{"ana@example.com", "Ana"},
		{"mia@example.com", "Mia"},
	} {
		if err := repo.Create(ctx, &domain.Contact{Email: c.email, OwnerID: "USR-1", Name: c.name}); err != nil {
			t.Fatalf("Create %s: %v", c.email, err)
		}
	}
	if err := repo.Create(ctx, &domain.Contact{Email: "other@example.com", OwnerID: "USR-2", Name: "Other"}); err != nil {
		t.Fatalf("Create other: %v", err)
	}

	got, err := repo.ListByOwner(ctx, "USR-1")
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("want 3 contacts, got %d", len(got))
	}
	if got[0].Name != "Ana" || got[1].Name != "Mia" || got[2].Name != "Zed" {
		t.Fatalf("unexpected order: %s, %s, %s", got[0].Name, got[1].Name, got[2].Name)
	}
}

func TestContactUpdate(t *testing.T) {
	db := openContactTestDB(t)
	repo := NewContactRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, &domain.Contact{Email: "ana@example.com", OwnerID: "USR-1", Name: "Ana"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	name := "Ana Maria"
	phone := "0813"
	ok, err := repo.Update(ctx, "USR-1", "Ana@Example.com", domain.Update{Name: &name, Phone: &phone})
	if err != nil || !ok {
		t.Fatalf("Update: ok=%v err=%v", ok, err)
	}

	got, err := repo.Get(ctx, "USR-1", "ana@example.com")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "Ana Maria" || got.Phone != "0813" {
		t.Fatalf("patch not applied: %+v", got)
	}

	// empty patch is a no-op, not an error
	ok, err = repo.Update(ctx, "USR-1", "ana@example.com", domain.Update{})
	if err != nil || ok {
		t.Fatalf("empty Update: ok=%v err=%v", ok, err)
	}

	// unknown entry
	ok, err = repo.Update(ctx, "USR-1", "nobody@example.com", domain.Update{Name: &name})
	if err != nil || ok {
		t.Fatalf("Update missing: ok=%v err=%v", ok, err)
	}
}

func TestContactDelete(t *testing.T) {
	db := openContactTestDB(t)
	repo := NewContactRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, &domain.Contact{Email: "ana@example.com", OwnerID: "USR-1", Name: "Ana"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	ok, err := repo.Delete(ctx, "USR-1", "ANA@example.com")
	if err != nil || !ok {
		t.Fatalf("Delete: ok=%v err=%v", ok, err)
	}
	if _, err := repo.Get(ctx, "USR-1", "ana@example.com"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("contact still visible: %v", err)
	}

	ok, err = repo.Delete(ctx, "USR-1", "ana@example.com")
	if err != nil || ok {
		t.Fatalf("repeat Delete: ok=%v err=%v", ok, err)
	}
}
