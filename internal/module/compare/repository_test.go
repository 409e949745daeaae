package compare

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/hazed32-ctrl/source-egypt-portal/internal/domain"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&domain.CompareSession{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestSessionSaveAndGet(t *testing.T) {
	repo := NewSessionRepository(setupTestDB(t))
	ctx := context.Background()

	if err := repo.Save(ctx, &domain.CompareSession{Token: "tok-1", Items: "1,2"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByToken(ctx, "tok-1")
	if err != nil {
		t.Fatalf("GetByToken: %v", err)
	}
	if got.Items != "1,2" {
		t.Errorf("Items = %q; want 1,2", got.Items)
	}
}

func TestSessionSave_UpsertsByToken(t *testing.T) {
	repo := NewSessionRepository(setupTestDB(t))
	ctx := context.Background()

	if err := repo.Save(ctx, &domain.CompareSession{Token: "tok-1", Items: "1"}); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	if err := repo.Save(ctx, &domain.CompareSession{Token: "tok-1", Items: "1,3"}); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	got, err := repo.GetByToken(ctx, "tok-1")
	if err != nil {
		t.Fatalf("GetByToken: %v", err)
	}
	if got.Items != "1,3" {
		t.Errorf("Items = %q; want 1,3", got.Items)
	}
}

func TestSessionGet_NotFound(t *testing.T) {
	repo := NewSessionRepository(setupTestDB(t))

	_, err := repo.GetByToken(context.Background(), "missing")
	if !domain.IsNotFound(err) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSessionDelete(t *testing.T) {
	repo := NewSessionRepository(setupTestDB(t))
	ctx := context.Background()

	if err := repo.Save(ctx, &domain.CompareSession{Token: "tok-1", Items: "1"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := repo.Delete(ctx, "tok-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByToken(ctx, "tok-1"); !domain.IsNotFound(err) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := repo.Delete(ctx, "tok-1"); !domain.IsNotFound(err) {
		t.Errorf("second delete: expected ErrNotFound, got %v", err)
	}
}
