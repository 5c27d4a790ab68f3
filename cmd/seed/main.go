package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"wms-dashboard/backend/internal/config"
	"wms-dashboard/backend/internal/logging"
	"wms-dashboard/backend/internal/repository"
	"wms-dashboard/backend/pkg/models"
)

var (
	flagConfig   string
	flagProducts int
	flagDays     int
	flagOrders   int
)

var categoryNames = []string{
	"Electronics", "Clothing", "Books", "Home & Garden", "Sports", "Tools", "Food & Beverage",
}

var supplierNames = []string{
	"Acme Supply Co", "Global Parts Ltd", "Northwind Traders", "Pacific Wholesale",
}

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the warehouse database with demo data",
	Long: `Generates a realistic demo dataset: categories, suppliers, a warehouse,
products with stock thresholds, current stock positions, a movement history
over the trailing days, and a handful of orders at various workflow states.`,
	RunE: runSeed,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.Flags().IntVar(&flagProducts, "products", 40, "number of products to generate")
	rootCmd.Flags().IntVar(&flagDays, "days", 30, "days of movement history to generate")
	rootCmd.Flags().IntVar(&flagOrders, "orders", 25, "number of orders to generate")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	logger := logging.NewLogger()

	cfg, err := config.LoadConfig(flagConfig)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	connStr := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Password, cfg.DB.Name, cfg.DB.SSLMode,
	)
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	store := repository.NewPostgresStore(pool)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	// Categories; skip ones already present so reruns don't duplicate
	existing, err := store.ListCategories(ctx)
	if err != nil {
		return fmt.Errorf("failed to list categories: %w", err)
	}
	existingCats := make(map[string]string, len(existing))
	for _, c := range existing {
		existingCats[c.Name] = c.ID
	}

	var categoryIDs []string
	for _, name := range categoryNames {
		if id, ok := existingCats[name]; ok {
			categoryIDs = append(categoryIDs, id)
			continue
		}
		cat := &models.Category{
			ID:     uuid.New().String(),
			Name:   name,
			Status: models.CategoryStatusActive,
		}
		if err := store.CreateCategory(ctx, cat); err != nil {
			return fmt.Errorf("failed to create category %q: %w", name, err)
		}
		categoryIDs = append(categoryIDs, cat.ID)
	}
	logger.Info("Categories ready: %d", len(categoryIDs))

	// Suppliers
	var supplierIDs []string
	for i, name := range supplierNames {
		leadTime := 3 + rng.Intn(12)
		sup := &models.Supplier{
			ID:           uuid.New().String(),
			Code:         fmt.Sprintf("SUP-%03d", i+1),
			Name:         name,
			LeadTimeDays: &leadTime,
			Status:       models.SupplierStatusActive,
		}
		if err := store.CreateSupplier(ctx, sup); err != nil {
			return fmt.Errorf("failed to create supplier %q: %w", name, err)
		}
		supplierIDs = append(supplierIDs, sup.ID)
	}
	logger.Info("Suppliers created: %d", len(supplierIDs))

	// One main warehouse carries all demo stock
	warehouse := &models.Warehouse{
		ID:     uuid.New().String(),
		Code:   "WH-MAIN",
		Name:   "Main Distribution Center",
		Type:   models.WarehouseTypeMain,
		Status: "active",
	}
	if err := store.CreateWarehouse(ctx, warehouse); err != nil {
		return fmt.Errorf("failed to create warehouse: %w", err)
	}

	// Products with stock thresholds and current positions
	productIDs := make([]string, 0, flagProducts)
	for i := 0; i < flagProducts; i++ {
		cost := 5 + rng.Float64()*195
		minStock := float64(10 + rng.Intn(40))
		reorder := minStock * (1.2 + rng.Float64()*0.8)
		supplierID := supplierIDs[rng.Intn(len(supplierIDs))]

		product := &models.Product{
			ID:                uuid.New().String(),
			SKU:               fmt.Sprintf("SKU-%06d", i+1),
			Name:              fmt.Sprintf("Demo Product %d", i+1),
			CategoryID:        categoryIDs[rng.Intn(len(categoryIDs))],
			Unit:              "pcs",
			CostPrice:         cost,
			SellingPrice:      cost * (1.2 + rng.Float64()*0.6),
			MinimumStock:      minStock,
			ReorderPoint:      reorder,
			PrimarySupplierID: &supplierID,
			Status:            models.ProductStatusActive,
		}
		if err := store.CreateProduct(ctx, product); err != nil {
			return fmt.Errorf("failed to create product %s: %w", product.SKU, err)
		}
		productIDs = append(productIDs, product.ID)

		// Roughly a fifth of positions land below threshold so the
		// low-stock report has something to show
		var qty int
		switch rng.Intn(10) {
		case 0:
			qty = 0
		case 1:
			qty = rng.Intn(int(minStock)/2 + 1)
		default:
			qty = int(reorder) + rng.Intn(200)
		}
		unitCost := product.CostPrice
		totalValue := float64(qty) * unitCost
		stock := &models.Stock{
			ID:                uuid.New().String(),
			ProductID:         product.ID,
			WarehouseID:       warehouse.ID,
			QuantityAvailable: qty,
			UnitCost:          &unitCost,
			TotalValue:        &totalValue,
		}
		if err := store.UpsertStock(ctx, stock); err != nil {
			return fmt.Errorf("failed to create stock position: %w", err)
		}
	}
	logger.Info("Products created: %d", len(productIDs))

	// Movement history over the trailing window
	movementCount := 0
	for day := flagDays; day >= 0; day-- {
		date := time.Now().AddDate(0, 0, -day)
		perDay := 2 + rng.Intn(6)
		for i := 0; i < perDay; i++ {
			mtype := models.MovementTypeIn
			if rng.Intn(2) == 1 {
				mtype = models.MovementTypeOut
			}
			movement := &models.StockMovement{
				ID:           uuid.New().String(),
				ProductID:    productIDs[rng.Intn(len(productIDs))],
				WarehouseID:  warehouse.ID,
				MovementType: mtype,
				Quantity:     1 + rng.Intn(50),
				MovementDate: date,
			}
			if err := store.RecordMovement(ctx, movement); err != nil {
				return fmt.Errorf("failed to record movement: %w", err)
			}
			movementCount++
		}
	}
	logger.Info("Movements recorded: %d over %d days", movementCount, flagDays)

	// Orders spread across workflow states; most are assigned so they can
	// advance through the dashboard
	statuses := []models.OrderStatus{
		models.OrderStatusPending,
		models.OrderStatusConfirmed,
		models.OrderStatusProcessing,
		models.OrderStatusShipped,
		models.OrderStatusDelivered,
	}
	for i := 0; i < flagOrders; i++ {
		order := &models.Order{
			ID:           uuid.New().String(),
			OrderNo:      fmt.Sprintf("ORD-%05d", i+1),
			CustomerName: fmt.Sprintf("Customer %d", i+1),
			OrderType:    models.OrderTypeStandard,
			Status:       statuses[rng.Intn(len(statuses))],
		}
		if rng.Intn(4) > 0 {
			assignee := fmt.Sprintf("operator-%d", 1+rng.Intn(3))
			order.AssignedTo = &assignee
		}
		itemCount := 1 + rng.Intn(4)
		for j := 0; j < itemCount; j++ {
			item := models.OrderItem{
				ID:        uuid.New().String(),
				OrderID:   order.ID,
				ProductID: productIDs[rng.Intn(len(productIDs))],
				Quantity:  1 + rng.Intn(10),
				UnitPrice: 10 + rng.Float64()*90,
			}
			order.Items = append(order.Items, item)
			order.Subtotal += item.LineTotal()
		}
		order.TaxAmount = order.Subtotal * 0.08
		order.ShippingAmount = 9.90
		order.ComputeTotal()
		if err := store.CreateOrder(ctx, order); err != nil {
			return fmt.Errorf("failed to create order %s: %w", order.OrderNo, err)
		}
	}
	logger.Info("Orders created: %d", flagOrders)

	logger.Info("Seed complete")
	return nil
}
