package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"wms-dashboard/backend/pkg/models"
)

const testSchema = `
CREATE TABLE categories (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	description TEXT,
	parent_id UUID,
	status TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE TABLE suppliers (
	id UUID PRIMARY KEY,
	code TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL,
	contact_person TEXT,
	phone TEXT,
	email TEXT,
	address TEXT,
	payment_terms TEXT,
	lead_time_days INT,
	rating FLOAT,
	status TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE TABLE warehouses (
	id UUID PRIMARY KEY,
	code TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL,
	type TEXT NOT NULL,
	address TEXT,
	capacity INT,
	status TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE TABLE products (
	id UUID PRIMARY KEY,
	sku TEXT NOT NULL UNIQUE,
	barcode TEXT,
	name TEXT NOT NULL,
	description TEXT,
	category_id UUID NOT NULL,
	brand TEXT,
	unit TEXT NOT NULL,
	cost_price FLOAT NOT NULL,
	selling_price FLOAT NOT NULL,
	minimum_stock FLOAT NOT NULL,
	maximum_stock FLOAT,
	reorder_point FLOAT NOT NULL,
	primary_supplier_id UUID,
	status TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE TABLE stock (
	id UUID PRIMARY KEY,
	product_id UUID NOT NULL,
	warehouse_id UUID NOT NULL,
	quantity_available INT NOT NULL,
	quantity_reserved INT NOT NULL,
	unit_cost FLOAT,
	total_value FLOAT,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL,
	UNIQUE (product_id, warehouse_id)
);
CREATE TABLE stock_buffers (
	id UUID PRIMARY KEY,
	product_id UUID NOT NULL,
	warehouse_id UUID NOT NULL,
	minimum_quantity FLOAT NOT NULL,
	maximum_quantity FLOAT,
	reorder_point FLOAT NOT NULL,
	lead_time_days INT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE TABLE stock_movements (
	id UUID PRIMARY KEY,
	product_id UUID NOT NULL,
	warehouse_id UUID NOT NULL,
	movement_type TEXT NOT NULL,
	quantity INT NOT NULL,
	unit_cost FLOAT,
	reference_type TEXT,
	reference_id TEXT,
	movement_date TIMESTAMPTZ NOT NULL,
	performed_by TEXT,
	notes TEXT
);
CREATE TABLE orders (
	id UUID PRIMARY KEY,
	order_no TEXT NOT NULL UNIQUE,
	customer_name TEXT NOT NULL,
	customer_email TEXT,
	customer_address TEXT,
	order_type TEXT NOT NULL,
	status TEXT NOT NULL,
	subtotal FLOAT NOT NULL,
	tax_amount FLOAT NOT NULL,
	shipping_amount FLOAT NOT NULL,
	discount_amount FLOAT NOT NULL,
	total_amount FLOAT NOT NULL,
	assigned_to TEXT,
	processed_at TIMESTAMPTZ,
	shipped_at TIMESTAMPTZ,
	delivered_at TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE TABLE order_items (
	id UUID PRIMARY KEY,
	order_id UUID NOT NULL REFERENCES orders(id),
	product_id UUID NOT NULL,
	quantity INT NOT NULL,
	unit_price FLOAT NOT NULL,
	discount_percent FLOAT NOT NULL
);
`

func TestPostgresStore(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test-db"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2)),
	)
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Fatalf("failed to terminate container: %s", err)
		}
	}()

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		t.Fatal(err)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, testSchema); err != nil {
		t.Fatal(err)
	}

	store := NewPostgresStore(pool)

	categoryID := uuid.New().String()
	warehouseID := uuid.New().String()
	productID := uuid.New().String()

	t.Run("categories roundtrip", func(t *testing.T) {
		err := store.CreateCategory(ctx, &models.Category{
			ID:     categoryID,
			Name:   "Electronics",
			Status: models.CategoryStatusActive,
		})
		require.NoError(t, err)

		categories, err := store.ListCategories(ctx)
		require.NoError(t, err)
		require.Len(t, categories, 1)
		assert.Equal(t, "Electronics", categories[0].Name)
	})

	t.Run("products roundtrip", func(t *testing.T) {
		err := store.CreateWarehouse(ctx, &models.Warehouse{
			ID:     warehouseID,
			Code:   "WH-001",
			Name:   "Main",
			Type:   models.WarehouseTypeMain,
			Status: "active",
		})
		require.NoError(t, err)

		err = store.CreateProduct(ctx, &models.Product{
			ID:           productID,
			SKU:          "SKU-000001",
			Name:         "Widget",
			CategoryID:   categoryID,
			Unit:         "pcs",
			CostPrice:    4,
			SellingPrice: 9,
			MinimumStock: 10,
			ReorderPoint: 25,
			Status:       models.ProductStatusActive,
		})
		require.NoError(t, err)

		got, err := store.GetProduct(ctx, productID)
		require.NoError(t, err)
		assert.Equal(t, "SKU-000001", got.SKU)
		assert.Equal(t, 25.0, got.ReorderPoint)

		_, err = store.GetProduct(ctx, uuid.New().String())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("stock upsert replaces quantities", func(t *testing.T) {
		stock := &models.Stock{
			ID:                uuid.New().String(),
			ProductID:         productID,
			WarehouseID:       warehouseID,
			QuantityAvailable: 40,
		}
		require.NoError(t, store.UpsertStock(ctx, stock))

		stock.QuantityAvailable = 15
		require.NoError(t, store.UpsertStock(ctx, stock))

		stocks, err := store.ListStock(ctx)
		require.NoError(t, err)
		require.Len(t, stocks, 1)
		assert.Equal(t, 15, stocks[0].QuantityAvailable)
	})

	t.Run("movement filters", func(t *testing.T) {
		now := time.Now().UTC()
		for i, mt := range []models.MovementType{models.MovementTypeIn, models.MovementTypeOut, models.MovementTypeTransfer} {
			err := store.RecordMovement(ctx, &models.StockMovement{
				ID:           uuid.New().String(),
				ProductID:    productID,
				WarehouseID:  warehouseID,
				MovementType: mt,
				Quantity:     (i + 1) * 10,
				MovementDate: now.Add(-time.Duration(i) * time.Hour),
			})
			require.NoError(t, err)
		}

		all, err := store.ListMovements(ctx, MovementFilter{})
		require.NoError(t, err)
		assert.Len(t, all, 3)

		out := models.MovementTypeOut
		filtered, err := store.ListMovements(ctx, MovementFilter{MovementType: &out})
		require.NoError(t, err)
		require.Len(t, filtered, 1)
		assert.Equal(t, 20, filtered[0].Quantity)

		limited, err := store.ListMovements(ctx, MovementFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, limited, 2)
	})

	t.Run("order lifecycle", func(t *testing.T) {
		orderID := uuid.New().String()
		order := &models.Order{
			ID:           orderID,
			OrderNo:      "ORD-2026-001",
			CustomerName: "Acme Corp",
			OrderType:    models.OrderTypeStandard,
			Status:       models.OrderStatusPending,
			Subtotal:     100,
			TotalAmount:  100,
			Items: []models.OrderItem{
				{ID: uuid.New().String(), ProductID: productID, Quantity: 2, UnitPrice: 50},
			},
		}
		require.NoError(t, store.CreateOrder(ctx, order))

		got, err := store.GetOrder(ctx, orderID)
		require.NoError(t, err)
		require.Len(t, got.Items, 1)
		assert.Equal(t, models.OrderStatusPending, got.Status)

		picker := "picker-7"
		err = store.UpdateOrderStatus(ctx, orderID, models.OrderStatusPending, models.OrderStatusConfirmed, &picker)
		require.NoError(t, err)

		// a second transition from the stale expected state fails and leaves
		// the record where it is
		err = store.UpdateOrderStatus(ctx, orderID, models.OrderStatusPending, models.OrderStatusConfirmed, nil)
		assert.ErrorIs(t, err, ErrStaleState)

		got, err = store.GetOrder(ctx, orderID)
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusConfirmed, got.Status)
		require.NotNil(t, got.AssignedTo)
		assert.Equal(t, "picker-7", *got.AssignedTo)
	})
}
