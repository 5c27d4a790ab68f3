// Package models defines the domain models for the warehouse dashboard service
package models

import (
	"time"
)

// CategoryStatus represents the lifecycle status of a product category
type CategoryStatus string

const (
	CategoryStatusActive   CategoryStatus = "active"
	CategoryStatusInactive CategoryStatus = "inactive"
)

// ProductStatus represents the lifecycle status of a product
type ProductStatus string

const (
	ProductStatusActive       ProductStatus = "active"
	ProductStatusInactive     ProductStatus = "inactive"
	ProductStatusDiscontinued ProductStatus = "discontinued"
)

// SupplierStatus represents the operational status of a supplier
type SupplierStatus string

const (
	SupplierStatusActive   SupplierStatus = "active"
	SupplierStatusInactive SupplierStatus = "inactive"
	SupplierStatusBlocked  SupplierStatus = "blocked"
)

// WarehouseType represents the role of a warehouse in the network
type WarehouseType string

const (
	WarehouseTypeMain     WarehouseType = "main"
	WarehouseTypeRegional WarehouseType = "regional"
	WarehouseTypeOutlet   WarehouseType = "outlet"
	WarehouseTypeTransit  WarehouseType = "transit"
)

// Category represents a product category
type Category struct {
	ID          string         `json:"id" db:"id"`
	Name        string         `json:"name" db:"name"`
	Description *string        `json:"description,omitempty" db:"description"`
	ParentID    *string        `json:"parent_id,omitempty" db:"parent_id"`
	Status      CategoryStatus `json:"status" db:"status"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" db:"updated_at"`
}

// Product represents product master data
type Product struct {
	ID          string  `json:"id" db:"id"`
	SKU         string  `json:"sku" db:"sku"`
	Barcode     *string `json:"barcode,omitempty" db:"barcode"`
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description,omitempty" db:"description"`

	// Categorization
	CategoryID string  `json:"category_id" db:"category_id"`
	Brand      *string `json:"brand,omitempty" db:"brand"`

	// Pricing
	Unit         string  `json:"unit" db:"unit"`
	CostPrice    float64 `json:"cost_price" db:"cost_price"`
	SellingPrice float64 `json:"selling_price" db:"selling_price"`

	// Inventory control thresholds; a zero reorder point falls back to
	// minimum stock when classifying stock levels
	MinimumStock float64  `json:"minimum_stock" db:"minimum_stock"`
	MaximumStock *float64 `json:"maximum_stock,omitempty" db:"maximum_stock"`
	ReorderPoint float64  `json:"reorder_point" db:"reorder_point"`

	// Supplier relationship
	PrimarySupplierID *string `json:"primary_supplier_id,omitempty" db:"primary_supplier_id"`

	Status    ProductStatus `json:"status" db:"status"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" db:"updated_at"`
}

// Supplier represents vendor master data
type Supplier struct {
	ID            string         `json:"id" db:"id"`
	Code          string         `json:"code" db:"code"`
	Name          string         `json:"name" db:"name"`
	ContactPerson *string        `json:"contact_person,omitempty" db:"contact_person"`
	Phone         *string        `json:"phone,omitempty" db:"phone"`
	Email         *string        `json:"email,omitempty" db:"email"`
	Address       *string        `json:"address,omitempty" db:"address"`
	PaymentTerms  *string        `json:"payment_terms,omitempty" db:"payment_terms"`
	LeadTimeDays  *int           `json:"lead_time_days,omitempty" db:"lead_time_days"`
	Rating        *float64       `json:"rating,omitempty" db:"rating"`
	Status        SupplierStatus `json:"status" db:"status"`
	CreatedAt     time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at" db:"updated_at"`
}

// Warehouse represents a physical warehouse location
type Warehouse struct {
	ID        string        `json:"id" db:"id"`
	Code      string        `json:"code" db:"code"`
	Name      string        `json:"name" db:"name"`
	Type      WarehouseType `json:"type" db:"type"`
	Address   *string       `json:"address,omitempty" db:"address"`
	Capacity  *int          `json:"capacity,omitempty" db:"capacity"`
	Status    string        `json:"status" db:"status"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" db:"updated_at"`
}

// HealthStatus represents service health
type HealthStatus struct {
	Status    string            `json:"status"`
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}
