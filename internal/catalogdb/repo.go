package catalogdb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	pkgerrors "github.com/scoutworks/supplierscout-backend/pkg/errors"
	"gorm.io/gorm"
)

// Stats is the aggregate the CLI stats subcommand prints.
type Stats struct {
	TotalActiveSuppliers int64           `json:"total_active_suppliers"`
	TotalProducts        int64           `json:"total_products"`
	TotalSearches        int64           `json:"total_searches"`
	CategoryBreakdown    []CategoryCount `json:"category_breakdown"`
}

// CategoryCount is one row of the per-category breakdown.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// Repository wraps the supplier database operations used by the CLI.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a catalog repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) (*Repository, error) {
	if db == nil {
		return nil, fmt.Errorf("db is required")
	}
	return &Repository{db: db}, nil
}

// AddSupplier inserts a new supplier row and returns it with its ID set.
func (r *Repository) AddSupplier(ctx context.Context, supplier *Supplier) (*Supplier, error) {
	if supplier == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "supplier is required")
	}
	if strings.TrimSpace(supplier.SupplierID) == "" || strings.TrimSpace(supplier.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "supplier_id and name are required")
	}
	if supplier.Status == "" {
		supplier.Status = StatusActive
	}
	if !ValidStatus(supplier.Status) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid status %q", supplier.Status))
	}
	if supplier.Country == "" {
		supplier.Country = "USA"
	}

	if err := r.db.WithContext(ctx).Create(supplier).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "supplier_id already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "insert supplier")
	}
	return supplier, nil
}

// Search matches active suppliers whose name or supplier_id contains the
// query, optionally narrowed to one category, ordered by name. Every search
// is logged for the stats counters.
func (r *Repository) Search(ctx context.Context, query, category string) ([]Supplier, error) {
	tx := r.db.WithContext(ctx).
		Where("(name LIKE ? OR supplier_id LIKE ?)", "%"+query+"%", "%"+query+"%").
		Where("status = ?", StatusActive)
	if category != "" {
		tx = tx.Where("category = ?", category)
	}

	var results []Supplier
	if err := tx.Order("name ASC").Find(&results).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "search suppliers")
	}

	if err := r.logSearch(ctx, query, len(results)); err != nil {
		return nil, err
	}
	return results, nil
}

// FindBySupplierID loads one supplier by its external identifier.
func (r *Repository) FindBySupplierID(ctx context.Context, supplierID string) (*Supplier, error) {
	var supplier Supplier
	err := r.db.WithContext(ctx).Where("supplier_id = ?", supplierID).First(&supplier).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "supplier not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load supplier")
	}
	return &supplier, nil
}

// AddProduct attaches a product to an existing supplier row.
func (r *Repository) AddProduct(ctx context.Context, product *Product) (*Product, error) {
	if product == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product is required")
	}
	if strings.TrimSpace(product.ProductCode) == "" || strings.TrimSpace(product.ProductName) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product_code and product_name are required")
	}
	if product.MinOrderQty <= 0 {
		product.MinOrderQty = 1
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&Supplier{}).Where("id = ?", product.SupplierRef).Count(&count).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check supplier")
	}
	if count == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "supplier not found")
	}

	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "insert product")
	}
	return product, nil
}

// ListProducts returns a supplier's products ordered by name.
func (r *Repository) ListProducts(ctx context.Context, supplierRef uint) ([]Product, error) {
	var products []Product
	err := r.db.WithContext(ctx).
		Where("supplier_id = ?", supplierRef).
		Order("product_name ASC").
		Find(&products).Error
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}
	return products, nil
}

// DeleteSupplier removes the supplier row; its products go with it via the
// foreign-key cascade.
func (r *Repository) DeleteSupplier(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&Supplier{}, id)
	if res.Error != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, res.Error, "delete supplier")
	}
	if res.RowsAffected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "supplier not found")
	}
	return nil
}

// Stats aggregates the counters the dashboard subcommand prints.
func (r *Repository) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{CategoryBreakdown: []CategoryCount{}}
	db := r.db.WithContext(ctx)

	if err := db.Model(&Supplier{}).Where("status = ?", StatusActive).Count(&stats.TotalActiveSuppliers).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count suppliers")
	}
	if err := db.Model(&Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count products")
	}
	if err := db.Model(&SearchRecord{}).Count(&stats.TotalSearches).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count searches")
	}

	err := db.Model(&Supplier{}).
		Select("category, COUNT(*) as count").
		Where("status = ?", StatusActive).
		Group("category").
		Order("count DESC").
		Scan(&stats.CategoryBreakdown).Error
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "category breakdown")
	}
	return stats, nil
}

func (r *Repository) logSearch(ctx context.Context, query string, results int) error {
	record := &SearchRecord{SearchQuery: query, ResultsCount: results}
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "log search")
	}
	return nil
}
