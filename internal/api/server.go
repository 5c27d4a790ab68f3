package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"wms-dashboard/backend/internal/repository"
	"wms-dashboard/backend/internal/services"
	"wms-dashboard/backend/pkg/models"
)

// Server holds the dependencies for the API server.
type Server struct {
	Repo      repository.Store
	Inventory *services.InventoryService
	Orders    *services.OrderService
	Dashboard *services.DashboardService
}

// NewServer creates a new Server.
func NewServer(repo repository.Store, inventory *services.InventoryService, orders *services.OrderService, dashboard *services.DashboardService) *Server {
	return &Server{Repo: repo, Inventory: inventory, Orders: orders, Dashboard: dashboard}
}

// RegisterRoutes mounts all REST handlers on the given group.
func RegisterRoutes(g *echo.Group, s *Server) {
	g.GET("/categories", s.ListCategories)
	g.POST("/categories", s.CreateCategory)
	g.GET("/products", s.ListProducts)
	g.POST("/products", s.CreateProduct)
	g.GET("/suppliers", s.ListSuppliers)
	g.POST("/suppliers", s.CreateSupplier)
	g.GET("/warehouses", s.ListWarehouses)
	g.GET("/stock", s.ListStock)
	g.GET("/movements", s.ListMovements)
	g.GET("/orders", s.ListOrders)
	g.POST("/orders", s.CreateOrder)
	g.GET("/orders/:id", s.GetOrder)
	g.GET("/orders/:id/next-action", s.NextOrderAction)
	g.POST("/orders/:id/advance", s.AdvanceOrder)
	g.GET("/analytics/summary", s.InventorySummary)
	g.GET("/analytics/low-stock", s.LowStockReport)
	g.GET("/analytics/categories", s.CategoryRollups)
	g.GET("/analytics/weekly-activity", s.WeeklyActivity)
	g.GET("/analytics/dashboard", s.DashboardSummary)
}

// ListCategories returns all categories
// (GET /api/v1/categories)
func (s *Server) ListCategories(c echo.Context) error {
	categories, err := s.Repo.ListCategories(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, categories)
}

// CreateCategory creates a new category
// (POST /api/v1/categories)
func (s *Server) CreateCategory(c echo.Context) error {
	var category models.Category
	if err := c.Bind(&category); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body: "+err.Error())
	}
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	if category.Status == "" {
		category.Status = models.CategoryStatusActive
	}
	if err := s.Repo.CreateCategory(c.Request().Context(), &category); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save category: "+err.Error())
	}
	return c.JSON(http.StatusCreated, category)
}

// ListProducts returns all products
// (GET /api/v1/products)
func (s *Server) ListProducts(c echo.Context) error {
	products, err := s.Repo.ListProducts(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, products)
}

// CreateProduct creates a new product
// (POST /api/v1/products)
func (s *Server) CreateProduct(c echo.Context) error {
	var product models.Product
	if err := c.Bind(&product); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body: "+err.Error())
	}
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if product.Status == "" {
		product.Status = models.ProductStatusActive
	}
	if err := s.Repo.CreateProduct(c.Request().Context(), &product); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save product: "+err.Error())
	}
	return c.JSON(http.StatusCreated, product)
}

// ListSuppliers returns all suppliers
// (GET /api/v1/suppliers)
func (s *Server) ListSuppliers(c echo.Context) error {
	suppliers, err := s.Repo.ListSuppliers(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, suppliers)
}

// CreateSupplier creates a new supplier
// (POST /api/v1/suppliers)
func (s *Server) CreateSupplier(c echo.Context) error {
	var supplier models.Supplier
	if err := c.Bind(&supplier); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body: "+err.Error())
	}
	if supplier.ID == "" {
		supplier.ID = uuid.New().String()
	}
	if supplier.Status == "" {
		supplier.Status = models.SupplierStatusActive
	}
	if err := s.Repo.CreateSupplier(c.Request().Context(), &supplier); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save supplier: "+err.Error())
	}
	return c.JSON(http.StatusCreated, supplier)
}

// ListWarehouses returns all warehouses
// (GET /api/v1/warehouses)
func (s *Server) ListWarehouses(c echo.Context) error {
	warehouses, err := s.Repo.ListWarehouses(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, warehouses)
}

// ListStock returns the full stock snapshot
// (GET /api/v1/stock)
func (s *Server) ListStock(c echo.Context) error {
	stocks, err := s.Repo.ListStock(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, stocks)
}

// ListMovements returns the movement history, filtered by query params
// (GET /api/v1/movements?product_id=&warehouse_id=&movement_type=&date_from=&date_to=)
func (s *Server) ListMovements(c echo.Context) error {
	filter, err := movementFilterFromQuery(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	movements, err := s.Repo.ListMovements(c.Request().Context(), filter)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, movements)
}

func movementFilterFromQuery(c echo.Context) (repository.MovementFilter, error) {
	var filter repository.MovementFilter
	if v := c.QueryParam("product_id"); v != "" {
		filter.ProductID = &v
	}
	if v := c.QueryParam("warehouse_id"); v != "" {
		filter.WarehouseID = &v
	}
	if v := c.QueryParam("movement_type"); v != "" {
		mt := models.MovementType(v)
		filter.MovementType = &mt
	}
	if v := c.QueryParam("date_from"); v != "" {
		from, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, errors.New("date_from must be RFC 3339")
		}
		filter.DateFrom = &from
	}
	if v := c.QueryParam("date_to"); v != "" {
		to, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, errors.New("date_to must be RFC 3339")
		}
		filter.DateTo = &to
	}
	return filter, nil
}

// ListOrders returns orders, optionally filtered by status
// (GET /api/v1/orders?status=)
func (s *Server) ListOrders(c echo.Context) error {
	var filter repository.OrderFilter
	if v := c.QueryParam("status"); v != "" {
		status := models.OrderStatus(v)
		filter.Status = &status
	}

	orders, err := s.Repo.ListOrders(c.Request().Context(), filter)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, orders)
}

// CreateOrder creates a new order
// (POST /api/v1/orders)
func (s *Server) CreateOrder(c echo.Context) error {
	var order models.Order
	if err := c.Bind(&order); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body: "+err.Error())
	}
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}
	if order.OrderType == "" {
		order.OrderType = models.OrderTypeStandard
	}
	for i := range order.Items {
		if order.Items[i].ID == "" {
			order.Items[i].ID = uuid.New().String()
		}
	}
	order.ComputeTotal()

	if err := s.Repo.CreateOrder(c.Request().Context(), &order); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save order: "+err.Error())
	}
	return c.JSON(http.StatusCreated, order)
}

// GetOrder returns a single order with its items
// (GET /api/v1/orders/:id)
func (s *Server) GetOrder(c echo.Context) error {
	order, err := s.Repo.GetOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Order not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, order)
}

// NextOrderAction reports the next legal workflow transition for an order
// (GET /api/v1/orders/:id/next-action)
func (s *Server) NextOrderAction(c echo.Context) error {
	action, err := s.Orders.NextAction(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Order not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, action)
}

// advanceRequest carries the actor taking a workflow transition.
type advanceRequest struct {
	Actor string `json:"actor"`
}

// AdvanceOrder applies an order's next workflow transition
// (POST /api/v1/orders/:id/advance)
func (s *Server) AdvanceOrder(c echo.Context) error {
	var req advanceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body: "+err.Error())
	}

	order, err := s.Orders.Advance(c.Request().Context(), c.Param("id"), req.Actor)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Order not found")
		case errors.Is(err, services.ErrTerminalState):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		case errors.Is(err, services.ErrNotEligible):
			return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, repository.ErrStaleState):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusOK, order)
}

// InventorySummary returns the inventory stat cards
// (GET /api/v1/analytics/summary)
func (s *Server) InventorySummary(c echo.Context) error {
	summary, err := s.Inventory.Summary(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, summary)
}

// LowStockReport returns the replenishment report
// (GET /api/v1/analytics/low-stock)
func (s *Server) LowStockReport(c echo.Context) error {
	report, err := s.Inventory.LowStock(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, report)
}

// categoryRollupResponse pairs the rollups with their diagnostic.
type categoryRollupResponse struct {
	Categories     interface{} `json:"categories"`
	DroppedRecords int         `json:"dropped_records"`
}

// CategoryRollups returns per-category stock totals
// (GET /api/v1/analytics/categories?top=)
func (s *Server) CategoryRollups(c echo.Context) error {
	topN := 0
	if v := c.QueryParam("top"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "top must be an integer")
		}
		topN = n
	}

	rollups, dropped, err := s.Inventory.CategoryRollups(c.Request().Context(), topN)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, categoryRollupResponse{Categories: rollups, DroppedRecords: dropped})
}

// WeeklyActivity returns the 7-slot movement summary
// (GET /api/v1/analytics/weekly-activity)
func (s *Server) WeeklyActivity(c echo.Context) error {
	filter, err := movementFilterFromQuery(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	week, err := s.Inventory.WeeklyActivity(c.Request().Context(), filter)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, week[:])
}

// DashboardSummary returns the full landing page payload
// (GET /api/v1/analytics/dashboard)
func (s *Server) DashboardSummary(c echo.Context) error {
	summary, err := s.Dashboard.Summary(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, summary)
}
