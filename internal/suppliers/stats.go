package suppliers

import (
	"github.com/scoutworks/supplierscout-backend/pkg/generator"
	"github.com/shopspring/decimal"
)

// computeStats aggregates the full catalog. Averages go through decimal so
// the rounded figures do not drift with float accumulation order.
func computeStats(records []generator.Supplier) StatsDTO {
	stats := StatsDTO{
		TotalSuppliers: len(records),
		Categories:     make(map[string]int),
		Regions:        make(map[string]int),
	}

	ratingSum := decimal.Zero
	scoreSum := decimal.Zero
	for _, rec := range records {
		if rec.WalmartVerified {
			stats.WalmartVerified++
		}
		stats.Categories[rec.Category]++
		stats.Regions[rec.Region]++
		ratingSum = ratingSum.Add(decimal.NewFromFloat(rec.Rating))
		scoreSum = scoreSum.Add(decimal.NewFromInt(int64(rec.AIScore)))
	}

	total := decimal.NewFromInt(int64(len(records)))
	stats.AverageRating = ratingSum.Div(total).Round(2).InexactFloat64()
	stats.AverageAIScore = scoreSum.Div(total).Round(1).InexactFloat64()
	stats.VerifiedPercentage = decimal.NewFromInt(int64(stats.WalmartVerified)).
		Mul(decimal.NewFromInt(100)).
		Div(total).
		Round(1).
		InexactFloat64()

	return stats
}
