package models

import (
	"time"
)

// MovementType classifies a stock movement. Transfers and adjustments move
// stock sideways and are excluded from the inbound/outbound dashboard view.
type MovementType string

const (
	MovementTypeIn         MovementType = "in"
	MovementTypeOut        MovementType = "out"
	MovementTypeTransfer   MovementType = "transfer"
	MovementTypeAdjustment MovementType = "adjustment"
)

// Stock represents the current stock level for a product in a warehouse
type Stock struct {
	ID          string `json:"id" db:"id"`
	ProductID   string `json:"product_id" db:"product_id"`
	WarehouseID string `json:"warehouse_id" db:"warehouse_id"`

	QuantityAvailable int `json:"quantity_available" db:"quantity_available"`
	QuantityReserved  int `json:"quantity_reserved" db:"quantity_reserved"`

	UnitCost   *float64 `json:"unit_cost,omitempty" db:"unit_cost"`
	TotalValue *float64 `json:"total_value,omitempty" db:"total_value"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// StockBuffer holds the safety stock thresholds for a product. When no
// buffer exists for a product, the product's own thresholds apply.
type StockBuffer struct {
	ID          string `json:"id" db:"id"`
	ProductID   string `json:"product_id" db:"product_id"`
	WarehouseID string `json:"warehouse_id" db:"warehouse_id"`

	MinimumQuantity float64  `json:"minimum_quantity" db:"minimum_quantity"`
	MaximumQuantity *float64 `json:"maximum_quantity,omitempty" db:"maximum_quantity"`
	ReorderPoint    float64  `json:"reorder_point" db:"reorder_point"`
	LeadTimeDays    int      `json:"lead_time_days" db:"lead_time_days"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// StockMovement is an immutable historical fact recording stock entering or
// leaving a warehouse. Quantities are magnitudes; the type carries direction.
type StockMovement struct {
	ID          string `json:"id" db:"id"`
	ProductID   string `json:"product_id" db:"product_id"`
	WarehouseID string `json:"warehouse_id" db:"warehouse_id"`

	MovementType MovementType `json:"movement_type" db:"movement_type"`
	Quantity     int          `json:"quantity" db:"quantity"`
	UnitCost     *float64     `json:"unit_cost,omitempty" db:"unit_cost"`

	// Reference to the source document (order, receiving, adjustment...)
	ReferenceType *string `json:"reference_type,omitempty" db:"reference_type"`
	ReferenceID   *string `json:"reference_id,omitempty" db:"reference_id"`

	MovementDate time.Time `json:"movement_date" db:"movement_date"`
	PerformedBy  *string   `json:"performed_by,omitempty" db:"performed_by"`
	Notes        *string   `json:"notes,omitempty" db:"notes"`
}
