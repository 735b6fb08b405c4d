package suppliers

import "github.com/scoutworks/supplierscout-backend/pkg/generator"

// ListResult is the pagination window over the catalog.
type ListResult struct {
	Total     int                  `json:"total"`
	Skip      int                  `json:"skip"`
	Limit     int                  `json:"limit"`
	Suppliers []generator.Supplier `json:"suppliers"`
}

// SearchResult carries a search query and its matches.
type SearchResult struct {
	Query   string               `json:"query"`
	Count   int                  `json:"count"`
	Results []generator.Supplier `json:"results"`
}

// CategoryResult carries the suppliers in one category.
type CategoryResult struct {
	Category string               `json:"category"`
	Count    int                  `json:"count"`
	Results  []generator.Supplier `json:"results"`
}

// StatsDTO is the dashboard aggregate over the whole catalog.
type StatsDTO struct {
	TotalSuppliers     int            `json:"total_suppliers"`
	WalmartVerified    int            `json:"walmart_verified"`
	VerifiedPercentage float64        `json:"verified_percentage"`
	AverageRating      float64        `json:"average_rating"`
	AverageAIScore     float64        `json:"average_ai_score"`
	Categories         map[string]int `json:"categories"`
	Regions            map[string]int `json:"regions"`
}
