package models

import (
	"time"
)

// OrderStatus represents where a customer order sits in its workflow
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// OrderType represents the fulfillment priority of an order
type OrderType string

const (
	OrderTypeStandard  OrderType = "standard"
	OrderTypeExpress   OrderType = "express"
	OrderTypeBackorder OrderType = "backorder"
)

// ReceivingStatus represents where a goods receipt sits in its workflow
type ReceivingStatus string

const (
	ReceivingStatusDraft     ReceivingStatus = "draft"
	ReceivingStatusReceived  ReceivingStatus = "received"
	ReceivingStatusInspected ReceivingStatus = "inspected"
	ReceivingStatusApproved  ReceivingStatus = "approved"
	ReceivingStatusRejected  ReceivingStatus = "rejected"
)

// ShipmentStatus represents where an outbound shipment sits in its workflow
type ShipmentStatus string

const (
	ShipmentStatusDraft     ShipmentStatus = "draft"
	ShipmentStatusPacked    ShipmentStatus = "packed"
	ShipmentStatusShipped   ShipmentStatus = "shipped"
	ShipmentStatusDelivered ShipmentStatus = "delivered"
	ShipmentStatusCancelled ShipmentStatus = "cancelled"
)

// ReturnStatus represents where a customer return sits in its workflow
type ReturnStatus string

const (
	ReturnStatusReceived  ReturnStatus = "received"
	ReturnStatusInspected ReturnStatus = "inspected"
	ReturnStatusApproved  ReturnStatus = "approved"
	ReturnStatusRejected  ReturnStatus = "rejected"
	ReturnStatusProcessed ReturnStatus = "processed"
)

// TransferStatus represents where an inter-warehouse transfer sits in its workflow
type TransferStatus string

const (
	TransferStatusPending   TransferStatus = "pending"
	TransferStatusInTransit TransferStatus = "in_transit"
	TransferStatusCompleted TransferStatus = "completed"
	TransferStatusCancelled TransferStatus = "cancelled"
)

// TaggingStatus represents where a tagging task sits in its workflow
type TaggingStatus string

const (
	TaggingStatusPending TaggingStatus = "pending"
	TaggingStatusTagging TaggingStatus = "tagging"
	TaggingStatusTagged  TaggingStatus = "tagged"
)

// Order represents a customer order
type Order struct {
	ID      string `json:"id" db:"id"`
	OrderNo string `json:"order_no" db:"order_no"`

	// Customer information
	CustomerName    string  `json:"customer_name" db:"customer_name"`
	CustomerEmail   *string `json:"customer_email,omitempty" db:"customer_email"`
	CustomerAddress *string `json:"customer_address,omitempty" db:"customer_address"`

	OrderType OrderType   `json:"order_type" db:"order_type"`
	Status    OrderStatus `json:"status" db:"status"`

	// Financial
	Subtotal       float64 `json:"subtotal" db:"subtotal"`
	TaxAmount      float64 `json:"tax_amount" db:"tax_amount"`
	ShippingAmount float64 `json:"shipping_amount" db:"shipping_amount"`
	DiscountAmount float64 `json:"discount_amount" db:"discount_amount"`
	TotalAmount    float64 `json:"total_amount" db:"total_amount"`

	// Processing; an order with no assignee cannot advance
	AssignedTo  *string    `json:"assigned_to,omitempty" db:"assigned_to"`
	ProcessedAt *time.Time `json:"processed_at,omitempty" db:"processed_at"`
	ShippedAt   *time.Time `json:"shipped_at,omitempty" db:"shipped_at"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty" db:"delivered_at"`

	Items []OrderItem `json:"items,omitempty" db:"-"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// IsAssigned reports whether the order has an assignee. Workflow advancement
// is gated on this.
func (o *Order) IsAssigned() bool {
	return o.AssignedTo != nil && *o.AssignedTo != ""
}

// ComputeTotal recalculates the order total from its components.
func (o *Order) ComputeTotal() {
	o.TotalAmount = o.Subtotal + o.TaxAmount + o.ShippingAmount - o.DiscountAmount
}

// OrderItem represents a single line of an order
type OrderItem struct {
	ID              string  `json:"id" db:"id"`
	OrderID         string  `json:"order_id" db:"order_id"`
	ProductID       string  `json:"product_id" db:"product_id"`
	Quantity        int     `json:"quantity" db:"quantity"`
	UnitPrice       float64 `json:"unit_price" db:"unit_price"`
	DiscountPercent float64 `json:"discount_percent" db:"discount_percent"`
}

// LineTotal returns the item total after the line discount.
func (i OrderItem) LineTotal() float64 {
	gross := float64(i.Quantity) * i.UnitPrice
	return gross - gross*(i.DiscountPercent/100)
}
