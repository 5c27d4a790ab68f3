package services

import (
	"context"
	"errors"

	"wms-dashboard/backend/internal/repository"
	"wms-dashboard/backend/pkg/models"
)

// fakeStore is an in-memory Store for service tests.
type fakeStore struct {
	categories []models.Category
	products   []models.Product
	suppliers  []models.Supplier
	warehouses []models.Warehouse
	stocks     []models.Stock
	buffers    []models.StockBuffer
	movements  []models.StockMovement
	orders     map[string]*models.Order

	// failUpdate forces UpdateOrderStatus to fail, leaving orders untouched.
	failUpdate error
}

var _ repository.Store = (*fakeStore)(nil)

func newFakeStore() *fakeStore {
	return &fakeStore{orders: make(map[string]*models.Order)}
}

func (f *fakeStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	return f.categories, nil
}

func (f *fakeStore) CreateCategory(ctx context.Context, c *models.Category) error {
	f.categories = append(f.categories, *c)
	return nil
}

func (f *fakeStore) ListProducts(ctx context.Context) ([]models.Product, error) {
	return f.products, nil
}

func (f *fakeStore) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			return &f.products[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeStore) CreateProduct(ctx context.Context, p *models.Product) error {
	f.products = append(f.products, *p)
	return nil
}

func (f *fakeStore) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	return f.suppliers, nil
}

func (f *fakeStore) CreateSupplier(ctx context.Context, s *models.Supplier) error {
	f.suppliers = append(f.suppliers, *s)
	return nil
}

func (f *fakeStore) ListWarehouses(ctx context.Context) ([]models.Warehouse, error) {
	return f.warehouses, nil
}

func (f *fakeStore) CreateWarehouse(ctx context.Context, w *models.Warehouse) error {
	f.warehouses = append(f.warehouses, *w)
	return nil
}

func (f *fakeStore) ListStock(ctx context.Context) ([]models.Stock, error) {
	return f.stocks, nil
}

func (f *fakeStore) UpsertStock(ctx context.Context, s *models.Stock) error {
	f.stocks = append(f.stocks, *s)
	return nil
}

func (f *fakeStore) ListStockBuffers(ctx context.Context) ([]models.StockBuffer, error) {
	return f.buffers, nil
}

func (f *fakeStore) ListMovements(ctx context.Context, filter repository.MovementFilter) ([]models.StockMovement, error) {
	var out []models.StockMovement
	for _, m := range f.movements {
		if filter.MovementType != nil && m.MovementType != *filter.MovementType {
			continue
		}
		if filter.DateFrom != nil && m.MovementDate.Before(*filter.DateFrom) {
			continue
		}
		out = append(out, m)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func (f *fakeStore) RecordMovement(ctx context.Context, m *models.StockMovement) error {
	f.movements = append(f.movements, *m)
	return nil
}

func (f *fakeStore) ListOrders(ctx context.Context, filter repository.OrderFilter) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		if filter.Status != nil && o.Status != *filter.Status {
			continue
		}
		if filter.Since != nil && o.CreatedAt.Before(*filter.Since) {
			continue
		}
		out = append(out, *o)
	}
	return out, nil
}

func (f *fakeStore) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *o
	return &clone, nil
}

func (f *fakeStore) CreateOrder(ctx context.Context, o *models.Order) error {
	clone := *o
	f.orders[o.ID] = &clone
	return nil
}

func (f *fakeStore) UpdateOrderStatus(ctx context.Context, id string, expected, next models.OrderStatus, assignee *string) error {
	if f.failUpdate != nil {
		return f.failUpdate
	}
	o, ok := f.orders[id]
	if !ok {
		return repository.ErrNotFound
	}
	if o.Status != expected {
		return repository.ErrStaleState
	}
	o.Status = next
	if assignee != nil {
		o.AssignedTo = assignee
	}
	return nil
}

var errStoreDown = errors.New("store unavailable")
