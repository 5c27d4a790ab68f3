package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wms-dashboard/backend/pkg/models"
)

func testCategories() []models.Category {
	return []models.Category{
		{ID: "cat-electronics", Name: "Electronics"},
		{ID: "cat-clothing", Name: "Clothing"},
		{ID: "cat-books", Name: "Books"},
		{ID: "cat-tools", Name: "Tools"},
	}
}

func TestAggregateByCategory(t *testing.T) {
	productCategory := map[string]string{
		"p1": "cat-electronics",
		"p2": "cat-electronics",
		"p3": "cat-books",
		"p4": "cat-tools",
	}
	stocks := []models.Stock{
		{ProductID: "p1", QuantityAvailable: 10},
		{ProductID: "p2", QuantityAvailable: 5},
		{ProductID: "p3", QuantityAvailable: 7},
		{ProductID: "p4", QuantityAvailable: 0},
	}

	rollups, dropped := AggregateByCategory(stocks, productCategory, testCategories(), 10)
	require.Len(t, rollups, 2)
	assert.Zero(t, dropped)

	// category order follows the reference list, not quantity
	assert.Equal(t, "Electronics", rollups[0].CategoryName)
	assert.Equal(t, 15, rollups[0].TotalQuantity)
	assert.Equal(t, "Books", rollups[1].CategoryName)
	assert.Equal(t, 7, rollups[1].TotalQuantity)
}

func TestAggregateByCategoryDropsUnresolved(t *testing.T) {
	productCategory := map[string]string{
		"p1": "cat-books",
		"p2": "cat-unlisted", // category not in reference list
	}
	stocks := []models.Stock{
		{ProductID: "p1", QuantityAvailable: 3},
		{ProductID: "p2", QuantityAvailable: 100},
		{ProductID: "orphan", QuantityAvailable: 50}, // product unknown
	}

	rollups, dropped := AggregateByCategory(stocks, productCategory, testCategories(), 10)
	require.Len(t, rollups, 1)
	assert.Equal(t, "Books", rollups[0].CategoryName)
	assert.Equal(t, 3, rollups[0].TotalQuantity)
	assert.Equal(t, 2, dropped)
}

func TestAggregateByCategoryTopN(t *testing.T) {
	productCategory := map[string]string{
		"p1": "cat-electronics",
		"p2": "cat-clothing",
		"p3": "cat-books",
	}
	stocks := []models.Stock{
		{ProductID: "p1", QuantityAvailable: 1},
		{ProductID: "p2", QuantityAvailable: 2},
		{ProductID: "p3", QuantityAvailable: 3},
	}

	rollups, _ := AggregateByCategory(stocks, productCategory, testCategories(), 2)
	require.Len(t, rollups, 2)
	assert.Equal(t, "Electronics", rollups[0].CategoryName)
	assert.Equal(t, "Clothing", rollups[1].CategoryName)
}

func TestAggregateByCategoryNeverEmitsZeroSums(t *testing.T) {
	productCategory := map[string]string{"p1": "cat-books"}
	stocks := []models.Stock{{ProductID: "p1", QuantityAvailable: 0}}

	rollups, dropped := AggregateByCategory(stocks, productCategory, testCategories(), 10)
	assert.Empty(t, rollups)
	assert.Zero(t, dropped)
}

func TestAggregateByCategoryEmptyInputs(t *testing.T) {
	rollups, dropped := AggregateByCategory(nil, nil, nil, 5)
	assert.Empty(t, rollups)
	assert.Zero(t, dropped)
}
