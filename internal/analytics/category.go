package analytics

import (
	"wms-dashboard/backend/pkg/models"
)

// CategoryRollup is a derived per-category quantity sum for the dashboard
// chart. Rollups are recomputed on every call and never persisted.
type CategoryRollup struct {
	CategoryID    string `json:"category_id"`
	CategoryName  string `json:"category_name"`
	TotalQuantity int    `json:"total_quantity"`
}

// AggregateByCategory joins stock positions to their category through the
// product lookup and sums available quantities per category. Stock records
// whose product or category cannot be resolved are excluded from the sums,
// not treated as errors: reference data loads independently of stock data and
// dangling links are expected while it catches up. The count of excluded
// records is returned for diagnostics.
//
// Rollups follow the order of the categories slice, include only categories
// with a strictly positive sum, and are truncated to topN. A topN of zero or
// less means no limit.
func AggregateByCategory(stocks []models.Stock, productCategory map[string]string, categories []models.Category, topN int) ([]CategoryRollup, int) {
	known := make(map[string]bool, len(categories))
	for _, c := range categories {
		known[c.ID] = true
	}

	totals := make(map[string]int, len(categories))
	dropped := 0
	for _, s := range stocks {
		categoryID, ok := productCategory[s.ProductID]
		if !ok || !known[categoryID] {
			dropped++
			continue
		}
		totals[categoryID] += s.QuantityAvailable
	}

	rollups := make([]CategoryRollup, 0, len(categories))
	for _, c := range categories {
		if topN > 0 && len(rollups) == topN {
			break
		}
		if totals[c.ID] <= 0 {
			continue
		}
		rollups = append(rollups, CategoryRollup{
			CategoryID:    c.ID,
			CategoryName:  c.Name,
			TotalQuantity: totals[c.ID],
		})
	}

	return rollups, dropped
}
