// Package services wires repository snapshots into the analytics and workflow
// cores.
package services

import (
	"context"
	"fmt"

	"wms-dashboard/backend/internal/analytics"
	"wms-dashboard/backend/internal/repository"
	"wms-dashboard/backend/pkg/models"
)

// InventoryService computes the inventory views from fresh store snapshots.
// Every call re-reads and recomputes; there is no cached aggregate to go
// stale.
type InventoryService struct {
	store repository.Store
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(store repository.Store) *InventoryService {
	return &InventoryService{store: store}
}

// productIndex loads the product catalog keyed by ID.
func (s *InventoryService) productIndex(ctx context.Context) (map[string]models.Product, error) {
	products, err := s.store.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	index := make(map[string]models.Product, len(products))
	for _, p := range products {
		index[p.ID] = p
	}
	return index, nil
}

// bufferIndex loads stock buffers keyed by product ID.
func (s *InventoryService) bufferIndex(ctx context.Context) (map[string]models.StockBuffer, error) {
	buffers, err := s.store.ListStockBuffers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load stock buffers: %w", err)
	}
	index := make(map[string]models.StockBuffer, len(buffers))
	for _, b := range buffers {
		index[b.ProductID] = b
	}
	return index, nil
}

// CategoryRollups returns per-category stock totals for the chart, truncated
// to topN, along with the count of stock records that could not be joined to
// a category.
func (s *InventoryService) CategoryRollups(ctx context.Context, topN int) ([]analytics.CategoryRollup, int, error) {
	stocks, err := s.store.ListStock(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("load stock: %w", err)
	}
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("load categories: %w", err)
	}
	products, err := s.productIndex(ctx)
	if err != nil {
		return nil, 0, err
	}

	productCategory := make(map[string]string, len(products))
	for id, p := range products {
		productCategory[id] = p.CategoryID
	}

	rollups, dropped := analytics.AggregateByCategory(stocks, productCategory, categories, topN)
	return rollups, dropped, nil
}

// WeeklyActivity returns the 7-slot inbound/outbound movement summary.
func (s *InventoryService) WeeklyActivity(ctx context.Context, filter repository.MovementFilter) ([7]analytics.DayBucket, error) {
	movements, err := s.store.ListMovements(ctx, filter)
	if err != nil {
		return [7]analytics.DayBucket{}, fmt.Errorf("load movements: %w", err)
	}
	return analytics.BucketWeekly(movements), nil
}

// Summary returns the inventory stat cards.
func (s *InventoryService) Summary(ctx context.Context) (analytics.InventorySummary, error) {
	stocks, err := s.store.ListStock(ctx)
	if err != nil {
		return analytics.InventorySummary{}, fmt.Errorf("load stock: %w", err)
	}
	products, err := s.productIndex(ctx)
	if err != nil {
		return analytics.InventorySummary{}, err
	}
	buffers, err := s.bufferIndex(ctx)
	if err != nil {
		return analytics.InventorySummary{}, err
	}
	return analytics.SummarizeInventory(stocks, products, buffers), nil
}

// LowStock returns the replenishment report, most marginal shortage first.
func (s *InventoryService) LowStock(ctx context.Context) ([]analytics.LowStockItem, error) {
	stocks, err := s.store.ListStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("load stock: %w", err)
	}
	products, err := s.productIndex(ctx)
	if err != nil {
		return nil, err
	}
	buffers, err := s.bufferIndex(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.LowStockReport(stocks, products, buffers), nil
}
