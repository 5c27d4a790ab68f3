package services

import (
	"context"
	"fmt"
	"time"

	"wms-dashboard/backend/internal/analytics"
	"wms-dashboard/backend/internal/repository"
	"wms-dashboard/backend/pkg/models"
)

// recentMovementCount matches the dashboard's activity feed length.
const recentMovementCount = 10

// orderWindow is the trailing period the order stat cards cover.
const orderWindow = 30 * 24 * time.Hour

// DashboardSummary aggregates everything the landing page renders in one
// response.
type DashboardSummary struct {
	Inventory       analytics.InventorySummary `json:"inventory"`
	Orders          analytics.OrderSummary     `json:"orders"`
	TopCategories   []analytics.CategoryRollup `json:"top_categories"`
	WeeklyActivity  []analytics.DayBucket      `json:"weekly_activity"`
	RecentMovements []models.StockMovement     `json:"recent_movements"`
	DroppedRecords  int                        `json:"dropped_records,omitempty"`
	GeneratedAt     time.Time                  `json:"generated_at"`
}

// DashboardService assembles the landing page summary from one consistent
// pass over the store.
type DashboardService struct {
	store     repository.Store
	inventory *InventoryService
	topN      int
}

// NewDashboardService creates a new DashboardService. topN bounds the
// category chart.
func NewDashboardService(store repository.Store, inventory *InventoryService, topN int) *DashboardService {
	return &DashboardService{store: store, inventory: inventory, topN: topN}
}

// Summary builds the full dashboard payload.
func (s *DashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	inventorySummary, err := s.inventory.Summary(ctx)
	if err != nil {
		return nil, err
	}

	rollups, dropped, err := s.inventory.CategoryRollups(ctx, s.topN)
	if err != nil {
		return nil, err
	}

	weekAgo := time.Now().Add(-7 * 24 * time.Hour)
	weekly, err := s.inventory.WeeklyActivity(ctx, repository.MovementFilter{DateFrom: &weekAgo})
	if err != nil {
		return nil, err
	}

	recent, err := s.store.ListMovements(ctx, repository.MovementFilter{Limit: recentMovementCount})
	if err != nil {
		return nil, fmt.Errorf("load recent movements: %w", err)
	}

	since := time.Now().Add(-orderWindow)
	orders, err := s.store.ListOrders(ctx, repository.OrderFilter{Since: &since})
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}

	return &DashboardSummary{
		Inventory:       inventorySummary,
		Orders:          analytics.SummarizeOrders(orders),
		TopCategories:   rollups,
		WeeklyActivity:  weekly[:],
		RecentMovements: recent,
		DroppedRecords:  dropped,
		GeneratedAt:     time.Now().UTC(),
	}, nil
}
