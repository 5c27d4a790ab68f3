package analytics

import (
	"sort"

	"wms-dashboard/backend/pkg/models"
)

// InventorySummary backs the dashboard stat cards.
type InventorySummary struct {
	TotalProducts   int     `json:"total_products"`
	TotalWarehouses int     `json:"total_warehouses"`
	TotalQuantity   int     `json:"total_quantity"`
	TotalStockValue float64 `json:"total_stock_value"`
	ActiveProducts  int     `json:"active_products"`
	LowStockItems   int     `json:"low_stock_items"`
}

// LowStockItem is one row of the replenishment report.
type LowStockItem struct {
	ProductID       string  `json:"product_id"`
	ProductSKU      string  `json:"product_sku"`
	ProductName     string  `json:"product_name"`
	MinimumStock    float64 `json:"minimum_stock"`
	ReorderPoint    float64 `json:"reorder_point"`
	CurrentQuantity int     `json:"current_quantity"`
	Shortage        int     `json:"shortage"`
	Tier            Tier    `json:"tier"`
}

// OrderSummary backs the order stat cards.
type OrderSummary struct {
	TotalOrders      int     `json:"total_orders"`
	PendingOrders    int     `json:"pending_orders"`
	ProcessingOrders int     `json:"processing_orders"`
	ShippedOrders    int     `json:"shipped_orders"`
	DeliveredOrders  int     `json:"delivered_orders"`
	TotalRevenue     float64 `json:"total_revenue"`
	CompletedRevenue float64 `json:"completed_revenue"`
}

// thresholds resolves the effective minimum stock and reorder point for a
// product: the stock buffer wins when one exists, otherwise the product's own
// thresholds apply. Missing both leaves zero-effect values.
func thresholds(productID string, products map[string]models.Product, buffers map[string]models.StockBuffer) (minimum, reorder float64) {
	if b, ok := buffers[productID]; ok {
		return b.MinimumQuantity, b.ReorderPoint
	}
	if p, ok := products[productID]; ok {
		return p.MinimumStock, p.ReorderPoint
	}
	return 0, 0
}

// SummarizeInventory computes the inventory stat cards from a stock snapshot.
func SummarizeInventory(stocks []models.Stock, products map[string]models.Product, buffers map[string]models.StockBuffer) InventorySummary {
	var s InventorySummary

	seenProducts := make(map[string]bool)
	seenWarehouses := make(map[string]bool)
	activeProducts := make(map[string]bool)

	for _, st := range stocks {
		seenProducts[st.ProductID] = true
		seenWarehouses[st.WarehouseID] = true
		s.TotalQuantity += st.QuantityAvailable
		if st.TotalValue != nil {
			s.TotalStockValue += *st.TotalValue
		}
		if st.QuantityAvailable > 0 {
			activeProducts[st.ProductID] = true
		}

		minimum, reorder := thresholds(st.ProductID, products, buffers)
		if Classify(st.QuantityAvailable, minimum, reorder) != TierOK {
			s.LowStockItems++
		}
	}

	s.TotalProducts = len(seenProducts)
	s.TotalWarehouses = len(seenWarehouses)
	s.ActiveProducts = len(activeProducts)
	return s
}

// LowStockReport lists every stock position classified below ok, with the
// shortage against its effective reorder level. Positions whose product is
// unknown are skipped the same way category rollups skip them. Rows are
// sorted by ascending shortage, most marginal first.
func LowStockReport(stocks []models.Stock, products map[string]models.Product, buffers map[string]models.StockBuffer) []LowStockItem {
	var report []LowStockItem

	for _, st := range stocks {
		p, ok := products[st.ProductID]
		if !ok {
			continue
		}

		minimum, reorder := thresholds(st.ProductID, products, buffers)
		tier := Classify(st.QuantityAvailable, minimum, reorder)
		if tier == TierOK {
			continue
		}

		effective := reorder
		if effective <= 0 {
			effective = minimum
		}
		shortage := int(effective) - st.QuantityAvailable
		if shortage < 0 {
			shortage = 0
		}

		report = append(report, LowStockItem{
			ProductID:       st.ProductID,
			ProductSKU:      p.SKU,
			ProductName:     p.Name,
			MinimumStock:    minimum,
			ReorderPoint:    reorder,
			CurrentQuantity: st.QuantityAvailable,
			Shortage:        shortage,
			Tier:            tier,
		})
	}

	sort.SliceStable(report, func(i, j int) bool {
		return report[i].Shortage < report[j].Shortage
	})
	return report
}

// SummarizeOrders computes per-status counts and revenue across an order
// snapshot. CompletedRevenue counts only shipped and delivered orders.
func SummarizeOrders(orders []models.Order) OrderSummary {
	var s OrderSummary
	for _, o := range orders {
		s.TotalOrders++
		s.TotalRevenue += o.TotalAmount
		switch o.Status {
		case models.OrderStatusPending:
			s.PendingOrders++
		case models.OrderStatusProcessing:
			s.ProcessingOrders++
		case models.OrderStatusShipped:
			s.ShippedOrders++
			s.CompletedRevenue += o.TotalAmount
		case models.OrderStatusDelivered:
			s.DeliveredOrders++
			s.CompletedRevenue += o.TotalAmount
		}
	}
	return s
}
