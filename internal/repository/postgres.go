package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"wms-dashboard/backend/pkg/models"
)

// psql builds queries with Postgres-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// PostgresStore is a PostgreSQL implementation of the Store interface.
type PostgresStore struct {
	db *pgxpool.Pool
}

var _ Store = (*PostgresStore)(nil)

// NewPostgresStore creates a new PostgresStore.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// ListCategories returns all categories ordered by name.
func (s *PostgresStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	query, args, err := psql.
		Select("id", "name", "description", "parent_id", "status", "created_at", "updated_at").
		From("categories").
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build categories query: %w", err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.ParentID, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// CreateCategory inserts a new category.
func (s *PostgresStore) CreateCategory(ctx context.Context, category *models.Category) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO categories (id, name, description, parent_id, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, NOW(), NOW())`,
		category.ID, category.Name, category.Description, category.ParentID, category.Status)
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

const productColumns = `id, sku, barcode, name, description, category_id, brand, unit,
	cost_price, selling_price, minimum_stock, maximum_stock, reorder_point,
	primary_supplier_id, status, created_at, updated_at`

func scanProduct(row pgx.Row, p *models.Product) error {
	return row.Scan(&p.ID, &p.SKU, &p.Barcode, &p.Name, &p.Description, &p.CategoryID,
		&p.Brand, &p.Unit, &p.CostPrice, &p.SellingPrice, &p.MinimumStock,
		&p.MaximumStock, &p.ReorderPoint, &p.PrimarySupplierID, &p.Status,
		&p.CreatedAt, &p.UpdatedAt)
}

// ListProducts returns all products ordered by SKU.
func (s *PostgresStore) ListProducts(ctx context.Context) ([]models.Product, error) {
	rows, err := s.db.Query(ctx, "SELECT "+productColumns+" FROM products ORDER BY sku")
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// GetProduct retrieves a product by its ID.
func (s *PostgresStore) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product
	row := s.db.QueryRow(ctx, "SELECT "+productColumns+" FROM products WHERE id = $1", id)
	if err := scanProduct(row, &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// CreateProduct inserts a new product.
func (s *PostgresStore) CreateProduct(ctx context.Context, product *models.Product) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO products (id, sku, barcode, name, description, category_id, brand, unit,
			cost_price, selling_price, minimum_stock, maximum_stock, reorder_point,
			primary_supplier_id, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW(), NOW())`,
		product.ID, product.SKU, product.Barcode, product.Name, product.Description,
		product.CategoryID, product.Brand, product.Unit, product.CostPrice,
		product.SellingPrice, product.MinimumStock, product.MaximumStock,
		product.ReorderPoint, product.PrimarySupplierID, product.Status)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// ListSuppliers returns all suppliers ordered by name.
func (s *PostgresStore) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, code, name, contact_person, phone, email, address, payment_terms,
			lead_time_days, rating, status, created_at, updated_at
		 FROM suppliers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query suppliers: %w", err)
	}
	defer rows.Close()

	var suppliers []models.Supplier
	for rows.Next() {
		var sp models.Supplier
		if err := rows.Scan(&sp.ID, &sp.Code, &sp.Name, &sp.ContactPerson, &sp.Phone,
			&sp.Email, &sp.Address, &sp.PaymentTerms, &sp.LeadTimeDays, &sp.Rating,
			&sp.Status, &sp.CreatedAt, &sp.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		suppliers = append(suppliers, sp)
	}
	return suppliers, rows.Err()
}

// CreateSupplier inserts a new supplier.
func (s *PostgresStore) CreateSupplier(ctx context.Context, supplier *models.Supplier) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO suppliers (id, code, name, contact_person, phone, email, address,
			payment_terms, lead_time_days, rating, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())`,
		supplier.ID, supplier.Code, supplier.Name, supplier.ContactPerson, supplier.Phone,
		supplier.Email, supplier.Address, supplier.PaymentTerms, supplier.LeadTimeDays,
		supplier.Rating, supplier.Status)
	if err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// ListWarehouses returns all warehouses ordered by code.
func (s *PostgresStore) ListWarehouses(ctx context.Context) ([]models.Warehouse, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, code, name, type, address, capacity, status, created_at, updated_at
		 FROM warehouses ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("query warehouses: %w", err)
	}
	defer rows.Close()

	var warehouses []models.Warehouse
	for rows.Next() {
		var w models.Warehouse
		if err := rows.Scan(&w.ID, &w.Code, &w.Name, &w.Type, &w.Address, &w.Capacity,
			&w.Status, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		warehouses = append(warehouses, w)
	}
	return warehouses, rows.Err()
}

// CreateWarehouse inserts a new warehouse.
func (s *PostgresStore) CreateWarehouse(ctx context.Context, warehouse *models.Warehouse) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO warehouses (id, code, name, type, address, capacity, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())`,
		warehouse.ID, warehouse.Code, warehouse.Name, warehouse.Type, warehouse.Address,
		warehouse.Capacity, warehouse.Status)
	if err != nil {
		return fmt.Errorf("insert warehouse: %w", err)
	}
	return nil
}

// ListStock returns the full stock snapshot.
func (s *PostgresStore) ListStock(ctx context.Context) ([]models.Stock, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, product_id, warehouse_id, quantity_available, quantity_reserved,
			unit_cost, total_value, created_at, updated_at
		 FROM stock ORDER BY product_id, warehouse_id`)
	if err != nil {
		return nil, fmt.Errorf("query stock: %w", err)
	}
	defer rows.Close()

	var stocks []models.Stock
	for rows.Next() {
		var st models.Stock
		if err := rows.Scan(&st.ID, &st.ProductID, &st.WarehouseID, &st.QuantityAvailable,
			&st.QuantityReserved, &st.UnitCost, &st.TotalValue, &st.CreatedAt, &st.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		stocks = append(stocks, st)
	}
	return stocks, rows.Err()
}

// UpsertStock inserts or replaces the stock position for a product/warehouse
// pair.
func (s *PostgresStore) UpsertStock(ctx context.Context, stock *models.Stock) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO stock (id, product_id, warehouse_id, quantity_available,
			quantity_reserved, unit_cost, total_value, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		 ON CONFLICT (product_id, warehouse_id) DO UPDATE
		 SET quantity_available = EXCLUDED.quantity_available,
		     quantity_reserved = EXCLUDED.quantity_reserved,
		     unit_cost = EXCLUDED.unit_cost,
		     total_value = EXCLUDED.total_value,
		     updated_at = NOW()`,
		stock.ID, stock.ProductID, stock.WarehouseID, stock.QuantityAvailable,
		stock.QuantityReserved, stock.UnitCost, stock.TotalValue)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// ListStockBuffers returns all stock buffers.
func (s *PostgresStore) ListStockBuffers(ctx context.Context) ([]models.StockBuffer, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, product_id, warehouse_id, minimum_quantity, maximum_quantity,
			reorder_point, lead_time_days, created_at, updated_at
		 FROM stock_buffers`)
	if err != nil {
		return nil, fmt.Errorf("query stock buffers: %w", err)
	}
	defer rows.Close()

	var buffers []models.StockBuffer
	for rows.Next() {
		var b models.StockBuffer
		if err := rows.Scan(&b.ID, &b.ProductID, &b.WarehouseID, &b.MinimumQuantity,
			&b.MaximumQuantity, &b.ReorderPoint, &b.LeadTimeDays, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock buffer: %w", err)
		}
		buffers = append(buffers, b)
	}
	return buffers, rows.Err()
}

// ListMovements returns the movement history, newest first, narrowed by the
// filter.
func (s *PostgresStore) ListMovements(ctx context.Context, filter MovementFilter) ([]models.StockMovement, error) {
	builder := psql.
		Select("id", "product_id", "warehouse_id", "movement_type", "quantity",
			"unit_cost", "reference_type", "reference_id", "movement_date",
			"performed_by", "notes").
		From("stock_movements").
		OrderBy("movement_date DESC")

	if filter.ProductID != nil {
		builder = builder.Where(sq.Eq{"product_id": *filter.ProductID})
	}
	if filter.WarehouseID != nil {
		builder = builder.Where(sq.Eq{"warehouse_id": *filter.WarehouseID})
	}
	if filter.MovementType != nil {
		builder = builder.Where(sq.Eq{"movement_type": *filter.MovementType})
	}
	if filter.DateFrom != nil {
		builder = builder.Where(sq.GtOrEq{"movement_date": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		builder = builder.Where(sq.LtOrEq{"movement_date": *filter.DateTo})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build movements query: %w", err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query movements: %w", err)
	}
	defer rows.Close()

	var movements []models.StockMovement
	for rows.Next() {
		var m models.StockMovement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.WarehouseID, &m.MovementType,
			&m.Quantity, &m.UnitCost, &m.ReferenceType, &m.ReferenceID,
			&m.MovementDate, &m.PerformedBy, &m.Notes); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		movements = append(movements, m)
	}
	return movements, rows.Err()
}

// RecordMovement appends a movement to the history.
func (s *PostgresStore) RecordMovement(ctx context.Context, movement *models.StockMovement) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO stock_movements (id, product_id, warehouse_id, movement_type,
			quantity, unit_cost, reference_type, reference_id, movement_date,
			performed_by, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		movement.ID, movement.ProductID, movement.WarehouseID, movement.MovementType,
		movement.Quantity, movement.UnitCost, movement.ReferenceType, movement.ReferenceID,
		movement.MovementDate, movement.PerformedBy, movement.Notes)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

const orderColumns = `id, order_no, customer_name, customer_email, customer_address,
	order_type, status, subtotal, tax_amount, shipping_amount, discount_amount,
	total_amount, assigned_to, processed_at, shipped_at, delivered_at,
	created_at, updated_at`

func scanOrder(row pgx.Row, o *models.Order) error {
	return row.Scan(&o.ID, &o.OrderNo, &o.CustomerName, &o.CustomerEmail, &o.CustomerAddress,
		&o.OrderType, &o.Status, &o.Subtotal, &o.TaxAmount, &o.ShippingAmount,
		&o.DiscountAmount, &o.TotalAmount, &o.AssignedTo, &o.ProcessedAt,
		&o.ShippedAt, &o.DeliveredAt, &o.CreatedAt, &o.UpdatedAt)
}

// ListOrders returns orders newest first, narrowed by the filter.
func (s *PostgresStore) ListOrders(ctx context.Context, filter OrderFilter) ([]models.Order, error) {
	builder := psql.
		Select(orderColumns).
		From("orders").
		OrderBy("created_at DESC")

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": *filter.Status})
	}
	if filter.OrderType != nil {
		builder = builder.Where(sq.Eq{"order_type": *filter.OrderType})
	}
	if filter.Since != nil {
		builder = builder.Where(sq.GtOrEq{"created_at": *filter.Since})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build orders query: %w", err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// GetOrder retrieves an order and its items by ID.
func (s *PostgresStore) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	var o models.Order
	row := s.db.QueryRow(ctx, "SELECT "+orderColumns+" FROM orders WHERE id = $1", id)
	if err := scanOrder(row, &o); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	rows, err := s.db.Query(ctx,
		`SELECT id, order_id, product_id, quantity, unit_price, discount_percent
		 FROM order_items WHERE order_id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("query order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity,
			&item.UnitPrice, &item.DiscountPercent); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		o.Items = append(o.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &o, nil
}

// CreateOrder inserts an order and its items in one transaction.
func (s *PostgresStore) CreateOrder(ctx context.Context, order *models.Order) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin order tx: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO orders (id, order_no, customer_name, customer_email, customer_address,
			order_type, status, subtotal, tax_amount, shipping_amount, discount_amount,
			total_amount, assigned_to, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())`,
		order.ID, order.OrderNo, order.CustomerName, order.CustomerEmail, order.CustomerAddress,
		order.OrderType, order.Status, order.Subtotal, order.TaxAmount, order.ShippingAmount,
		order.DiscountAmount, order.TotalAmount, order.AssignedTo)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for _, item := range order.Items {
		_, err = tx.Exec(ctx,
			`INSERT INTO order_items (id, order_id, product_id, quantity, unit_price, discount_percent)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			item.ID, order.ID, item.ProductID, item.Quantity, item.UnitPrice, item.DiscountPercent)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// UpdateOrderStatus moves an order from expected to next, guarded so a
// concurrent transition loses cleanly instead of skipping a state.
func (s *PostgresStore) UpdateOrderStatus(ctx context.Context, id string, expected, next models.OrderStatus, assignee *string) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE orders
		 SET status = $1,
		     assigned_to = COALESCE($2, assigned_to),
		     processed_at = CASE WHEN $1 = 'processing' THEN NOW() ELSE processed_at END,
		     shipped_at = CASE WHEN $1 = 'shipped' THEN NOW() ELSE shipped_at END,
		     delivered_at = CASE WHEN $1 = 'delivered' THEN NOW() ELSE delivered_at END,
		     updated_at = NOW()
		 WHERE id = $3 AND status = $4`,
		next, assignee, id, expected)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Either the order is gone or its status moved under us.
		if _, getErr := s.GetOrder(ctx, id); getErr != nil {
			return getErr
		}
		return ErrStaleState
	}
	return nil
}
