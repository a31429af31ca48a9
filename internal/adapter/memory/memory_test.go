package memory

import (
	"context"
	"testing"
	"time"

	"cataloguer/internal/domain"
)

func TestCatalogueCreateAndGet(t *testing.T) {
	db := New()
	ctx := context.Background()

	n, err := db.Create(ctx, domain.Catalogue{
		Name: "Spring", Description: "Spring sale",
		EffectiveFrom: "2026-03-01", EffectiveTo: "2026-05-31", Status: "Active",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 row inserted, got %d", n)
	}

	c, err := db.GetByID(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if c == nil {
		t.Fatal("expected a record")
	}
	if c.Name != "Spring" || c.Status != "Active" || c.EffectiveFrom != "2026-03-01" {
		t.Fatalf("round trip mismatch: %+v", c)
	}
}

func TestCatalogueGetAbsent(t *testing.T) {
	db := New()

	c, err := db.GetByID(context.Background(), 42)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if c != nil {
		t.Fatalf("expected nil for absent id, got %+v", c)
	}
}

func TestCatalogueGetAllOrder(t *testing.T) {
	db := New()
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		if _, err := db.Create(ctx, domain.Catalogue{Name: name}); err != nil {
			t.Fatal(err)
		}
	}

	items, err := db.GetAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0].ID != 1 || items[2].ID != 3 {
		t.Fatalf("ids not assigned sequentially: %+v", items)
	}
}

func TestCatalogueUpdate(t *testing.T) {
	db := New()
	ctx := context.Background()

	if _, err := db.Create(ctx, domain.Catalogue{Name: "Spring", Status: "Active"}); err != nil {
		t.Fatal(err)
	}

	n, err := db.UpdateByID(ctx, 1, domain.Catalogue{Name: "Spring", Status: "Inactive"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("expected 1 row affected, got %d", n)
	}

	c, _ := db.GetByID(ctx, 1)
	if c.Status != "Inactive" {
		t.Fatalf("update not applied: %+v", c)
	}
}

func TestCatalogueUpdateMissingID(t *testing.T) {
	db := New()

	n, err := db.UpdateByID(context.Background(), 99, domain.Catalogue{Name: "Ghost"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("expected 0 rows affected, got %d", n)
	}

	items, _ := db.GetAll(context.Background())
	if len(items) != 0 {
		t.Fatalf("update must not create rows, got %+v", items)
	}
}

func TestCatalogueDelete(t *testing.T) {
	db := New()
	ctx := context.Background()

	if _, err := db.Create(ctx, domain.Catalogue{Name: "Spring"}); err != nil {
		t.Fatal(err)
	}

	ok, err := db.DeleteByID(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected delete to report a removed row")
	}

	c, _ := db.GetByID(ctx, 1)
	if c != nil {
		t.Fatalf("record still present after delete: %+v", c)
	}

	ok, err = db.DeleteByID(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("second delete must report no removed row")
	}
}

func TestUserSeedAndLookup(t *testing.T) {
	db := New()
	db.SeedUser("admin", "hash")

	u, err := db.GetByUsername(context.Background(), "admin")
	if err != nil {
		t.Fatal(err)
	}
	if u == nil || u.Password != "hash" {
		t.Fatalf("unexpected user %+v", u)
	}

	u, err = db.GetByUsername(context.Background(), "ghost")
	if err != nil {
		t.Fatal(err)
	}
	if u != nil {
		t.Fatalf("expected nil for unknown user, got %+v", u)
	}
}

func TestSessionLifecycle(t *testing.T) {
	db := New()
	repo := db.NewSessionRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, "admin", "tok", time.Now().Add(time.Hour)); err != nil {
		t.Fatal(err)
	}

	s, err := repo.GetByToken(ctx, "tok")
	if err != nil {
		t.Fatal(err)
	}
	if s == nil || s.Username != "admin" {
		t.Fatalf("unexpected session %+v", s)
	}

	if err := repo.Delete(ctx, "tok"); err != nil {
		t.Fatal(err)
	}
	s, _ = repo.GetByToken(ctx, "tok")
	if s != nil {
		t.Fatalf("session still present after delete: %+v", s)
	}

	// Deleting again is fine.
	if err := repo.Delete(ctx, "tok"); err != nil {
		t.Fatal(err)
	}
}

func TestSessionExpiry(t *testing.T) {
	db := New()
	repo := db.NewSessionRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, "admin", "old", time.Now().Add(-time.Minute)); err != nil {
		t.Fatal(err)
	}

	s, err := repo.GetByToken(ctx, "old")
	if err != nil {
		t.Fatal(err)
	}
	if s != nil {
		t.Fatalf("expired session must not be returned: %+v", s)
	}
}
