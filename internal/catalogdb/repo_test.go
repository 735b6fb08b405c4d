package catalogdb

import (
	"context"
	"testing"

	pkgerrors "github.com/scoutworks/supplierscout-backend/pkg/errors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := conn.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}
	if err := conn.AutoMigrate(&Supplier{}, &Product{}, &SearchRecord{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	repo, err := NewRepository(conn)
	if err != nil {
		t.Fatalf("new repository: %v", err)
	}
	return repo
}

func seedSupplier(t *testing.T, repo *Repository, supplierID, name, category string) *Supplier {
	t.Helper()
	s, err := repo.AddSupplier(context.Background(), &Supplier{
		SupplierID: supplierID,
		Name:       name,
		Category:   category,
	})
	if err != nil {
		t.Fatalf("seed supplier %s: %v", supplierID, err)
	}
	return s
}

func TestAddSupplierDefaultsAndDuplicates(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	s := seedSupplier(t, repo, "SUP-001", "Acme Lumber", "Lumber & Wood Products")
	if s.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if s.Status != StatusActive || s.Country != "USA" {
		t.Fatalf("expected defaults, got status=%q country=%q", s.Status, s.Country)
	}

	_, err := repo.AddSupplier(ctx, &Supplier{SupplierID: "SUP-001", Name: "Other"})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict on duplicate supplier_id, got %v", err)
	}

	_, err = repo.AddSupplier(ctx, &Supplier{SupplierID: "SUP-002", Name: "Bad", Status: "retired"})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error on bad status, got %v", err)
	}
}

func TestSearchFiltersAndLogs(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	seedSupplier(t, repo, "SUP-001", "Acme Steel", "Steel & Metal")
	seedSupplier(t, repo, "SUP-002", "Summit Steel", "Steel & Metal")
	seedSupplier(t, repo, "SUP-003", "Valley Concrete", "Concrete & Masonry")

	results, err := repo.Search(ctx, "Steel", "")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(results))
	}
	if results[0].Name != "Acme Steel" {
		t.Fatalf("expected name-ordered results, got %q first", results[0].Name)
	}

	narrowed, err := repo.Search(ctx, "S", "Concrete & Masonry")
	if err != nil {
		t.Fatalf("narrowed search: %v", err)
	}
	if len(narrowed) != 0 {
		t.Fatalf("expected category filter to exclude steel, got %d", len(narrowed))
	}

	stats, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalSearches != 2 {
		t.Fatalf("expected 2 logged searches, got %d", stats.TotalSearches)
	}
}

func TestProductsAndCascadeDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	s := seedSupplier(t, repo, "SUP-001", "Acme Lumber", "Lumber & Wood Products")

	for _, name := range []string{"Plywood", "2x4 Lumber"} {
		_, err := repo.AddProduct(ctx, &Product{
			SupplierRef: s.ID,
			ProductCode: "PC-" + name[:2],
			ProductName: name,
			UnitCost:    12.5,
		})
		if err != nil {
			t.Fatalf("add product %s: %v", name, err)
		}
	}

	products, err := repo.ListProducts(ctx, s.ID)
	if err != nil {
		t.Fatalf("list products: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].ProductName != "2x4 Lumber" {
		t.Fatalf("expected name-ordered products, got %q first", products[0].ProductName)
	}

	if err := repo.DeleteSupplier(ctx, s.ID); err != nil {
		t.Fatalf("delete supplier: %v", err)
	}

	orphans, err := repo.ListProducts(ctx, s.ID)
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}
	if len(orphans) != 0 {
		t.Fatalf("expected cascade to remove products, got %d", len(orphans))
	}
}

func TestAddProductRequiresExistingSupplier(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.AddProduct(context.Background(), &Product{
		SupplierRef: 999,
		ProductCode: "PC-1",
		ProductName: "Ghost Product",
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found for missing supplier, got %v", err)
	}
}

func TestStatsBreakdown(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	seedSupplier(t, repo, "SUP-001", "A", "Steel & Metal")
	seedSupplier(t, repo, "SUP-002", "B", "Steel & Metal")
	seedSupplier(t, repo, "SUP-003", "C", "Concrete & Masonry")

	stats, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalActiveSuppliers != 3 {
		t.Fatalf("expected 3 active suppliers, got %d", stats.TotalActiveSuppliers)
	}
	if len(stats.CategoryBreakdown) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(stats.CategoryBreakdown))
	}
	if stats.CategoryBreakdown[0].Category != "Steel & Metal" || stats.CategoryBreakdown[0].Count != 2 {
		t.Fatalf("expected Steel & Metal first with count 2, got %+v", stats.CategoryBreakdown[0])
	}
}
