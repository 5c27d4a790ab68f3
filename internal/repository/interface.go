// Package repository is the persistence boundary for the dashboard resources.
package repository

import (
	"context"
	"errors"
	"time"

	"wms-dashboard/backend/pkg/models"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrStaleState is returned when a guarded status update finds the record no
// longer at the expected state. The stored record is left untouched.
var ErrStaleState = errors.New("record state changed concurrently")

// MovementFilter narrows movement history queries. Nil fields match
// everything.
type MovementFilter struct {
	ProductID    *string
	WarehouseID  *string
	MovementType *models.MovementType
	DateFrom     *time.Time
	DateTo       *time.Time
	Limit        int
}

// OrderFilter narrows order list queries.
type OrderFilter struct {
	Status    *models.OrderStatus
	OrderType *models.OrderType
	Since     *time.Time
	Limit     int
}

// Store is the persistence interface consumed by the service layer.
type Store interface {
	// Master data
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) error
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	ListSuppliers(ctx context.Context) ([]models.Supplier, error)
	CreateSupplier(ctx context.Context, supplier *models.Supplier) error
	ListWarehouses(ctx context.Context) ([]models.Warehouse, error)
	CreateWarehouse(ctx context.Context, warehouse *models.Warehouse) error

	// Inventory
	ListStock(ctx context.Context) ([]models.Stock, error)
	UpsertStock(ctx context.Context, stock *models.Stock) error
	ListStockBuffers(ctx context.Context) ([]models.StockBuffer, error)
	ListMovements(ctx context.Context, filter MovementFilter) ([]models.StockMovement, error)
	RecordMovement(ctx context.Context, movement *models.StockMovement) error

	// Orders
	ListOrders(ctx context.Context, filter OrderFilter) ([]models.Order, error)
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	CreateOrder(ctx context.Context, order *models.Order) error
	// UpdateOrderStatus moves an order from expected to next. It fails with
	// ErrStaleState when the stored status is no longer expected, leaving the
	// record unchanged.
	UpdateOrderStatus(ctx context.Context, id string, expected, next models.OrderStatus, assignee *string) error
}
