package suppliers

import (
	"fmt"
	"strings"

	pkgerrors "github.com/scoutworks/supplierscout-backend/pkg/errors"
	"github.com/scoutworks/supplierscout-backend/pkg/generator"
	"github.com/scoutworks/supplierscout-backend/pkg/pagination"
)

// Service exposes read operations over the generated catalog.
type Service interface {
	List(skip, limit int) ListResult
	Get(id int) (*generator.Supplier, error)
	Search(query string) SearchResult
	ByCategory(category string) CategoryResult
	Stats() StatsDTO
}

// service holds the catalog. The slice is immutable after construction, so
// every method is safe for concurrent use without locking.
type service struct {
	records []generator.Supplier
	byID    map[int]int
	stats   StatsDTO
}

// NewService builds a catalog service over the generated records. Stats are
// computed once up front since the data never changes.
func NewService(records []generator.Supplier) (Service, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("catalog requires at least one supplier")
	}

	byID := make(map[int]int, len(records))
	for i, s := range records {
		if _, dup := byID[s.ID]; dup {
			return nil, fmt.Errorf("duplicate supplier id %d", s.ID)
		}
		byID[s.ID] = i
	}

	return &service{
		records: records,
		byID:    byID,
		stats:   computeStats(records),
	}, nil
}

// List returns the requested window in generation order.
func (s *service) List(skip, limit int) ListResult {
	skip = pagination.NormalizeSkip(skip)
	limit = pagination.NormalizeLimit(limit)
	lo, hi := pagination.Window(skip, limit, len(s.records))

	window := make([]generator.Supplier, hi-lo)
	copy(window, s.records[lo:hi])

	return ListResult{
		Total:     len(s.records),
		Skip:      skip,
		Limit:     limit,
		Suppliers: window,
	}
}

// Get returns the supplier with the given ID.
func (s *service) Get(id int) (*generator.Supplier, error) {
	i, ok := s.byID[id]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("supplier %d not found", id))
	}
	out := s.records[i]
	return &out, nil
}

// Search matches the query as a case-insensitive substring of name or
// category. A blank query matches nothing.
func (s *service) Search(query string) SearchResult {
	trimmed := strings.TrimSpace(query)
	result := SearchResult{Query: query, Results: []generator.Supplier{}}
	if trimmed == "" {
		return result
	}

	needle := strings.ToLower(trimmed)
	for _, rec := range s.records {
		if strings.Contains(strings.ToLower(rec.Name), needle) ||
			strings.Contains(strings.ToLower(rec.Category), needle) {
			result.Results = append(result.Results, rec)
		}
	}
	result.Count = len(result.Results)
	return result
}

// ByCategory returns every supplier whose category matches exactly.
func (s *service) ByCategory(category string) CategoryResult {
	result := CategoryResult{Category: category, Results: []generator.Supplier{}}
	for _, rec := range s.records {
		if rec.Category == category {
			result.Results = append(result.Results, rec)
		}
	}
	result.Count = len(result.Results)
	return result
}

// Stats returns the precomputed dashboard aggregate.
func (s *service) Stats() StatsDTO {
	out := s.stats
	out.Categories = copyCounts(s.stats.Categories)
	out.Regions = copyCounts(s.stats.Regions)
	return out
}

func copyCounts(in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
