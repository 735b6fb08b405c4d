package catalogdb

import "time"

// Supplier is a managed supplier row. Unlike the generated catalog this
// table is writable and survives restarts.
type Supplier struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	SupplierID string `gorm:"uniqueIndex;not null" json:"supplier_id"`
	Name       string `gorm:"index;not null" json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zip_code"`
	Country    string `gorm:"default:USA" json:"country"`
	Category   string `gorm:"index" json:"category"`
	Status     string `gorm:"default:active" json:"status"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Products []Product `gorm:"foreignKey:SupplierRef;constraint:OnDelete:CASCADE" json:"-"`
}

// Product belongs to a supplier and is removed with it via the FK cascade.
type Product struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	SupplierRef  uint    `gorm:"column:supplier_id;index;not null" json:"supplier_id"`
	ProductCode  string  `gorm:"not null" json:"product_code"`
	ProductName  string  `gorm:"not null" json:"product_name"`
	Description  string  `json:"description"`
	UnitCost     float64 `json:"unit_cost"`
	LeadTimeDays int     `json:"lead_time_days"`
	MinOrderQty  int     `gorm:"default:1" json:"min_order_qty"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SearchRecord is one logged search for the stats counters.
type SearchRecord struct {
	ID           uint    `gorm:"primaryKey"`
	SearchQuery  string  `gorm:"not null"`
	ResultsCount int     `gorm:"not null"`
	UserID       *string `gorm:"column:user_id"`
	CreatedAt    time.Time
}

// TableName keeps the table aligned with the goose migration.
func (SearchRecord) TableName() string { return "search_history" }

// Statuses a supplier row may carry.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusPending  = "pending"
)

// ValidStatus reports whether s is a recognized supplier status.
func ValidStatus(s string) bool {
	switch s {
	case StatusActive, StatusInactive, StatusPending:
		return true
	}
	return false
}
