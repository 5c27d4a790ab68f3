package workflow

import (
	"wms-dashboard/backend/pkg/models"
)

// Concrete transition tables for the record types the dashboard manages.
// Cancelled and rejected states carry no outgoing edge, so the engine treats
// them as terminal the same way it treats the end of each chain.

// OrderTable drives a customer order from intake to delivery.
var OrderTable = Table[models.OrderStatus]{
	{From: models.OrderStatusPending, To: models.OrderStatusConfirmed, Label: "Confirm"},
	{From: models.OrderStatusConfirmed, To: models.OrderStatusProcessing, Label: "Process"},
	{From: models.OrderStatusProcessing, To: models.OrderStatusShipped, Label: "Ship"},
	{From: models.OrderStatusShipped, To: models.OrderStatusDelivered, Label: "Deliver"},
}

// ReceivingTable drives a goods receipt through inspection and approval.
var ReceivingTable = Table[models.ReceivingStatus]{
	{From: models.ReceivingStatusDraft, To: models.ReceivingStatusReceived, Label: "Receive"},
	{From: models.ReceivingStatusReceived, To: models.ReceivingStatusInspected, Label: "Inspect"},
	{From: models.ReceivingStatusInspected, To: models.ReceivingStatusApproved, Label: "Approve"},
}

// ShipmentTable drives an outbound shipment from packing to delivery.
var ShipmentTable = Table[models.ShipmentStatus]{
	{From: models.ShipmentStatusDraft, To: models.ShipmentStatusPacked, Label: "Pack"},
	{From: models.ShipmentStatusPacked, To: models.ShipmentStatusShipped, Label: "Ship"},
	{From: models.ShipmentStatusShipped, To: models.ShipmentStatusDelivered, Label: "Deliver"},
}

// ReturnTable drives a customer return through inspection to processing.
var ReturnTable = Table[models.ReturnStatus]{
	{From: models.ReturnStatusReceived, To: models.ReturnStatusInspected, Label: "Inspect"},
	{From: models.ReturnStatusInspected, To: models.ReturnStatusApproved, Label: "Approve"},
	{From: models.ReturnStatusApproved, To: models.ReturnStatusProcessed, Label: "Process"},
}

// TransferTable drives an inter-warehouse stock transfer.
var TransferTable = Table[models.TransferStatus]{
	{From: models.TransferStatusPending, To: models.TransferStatusInTransit, Label: "Dispatch"},
	{From: models.TransferStatusInTransit, To: models.TransferStatusCompleted, Label: "Complete"},
}

// TaggingTable drives a product tagging task.
var TaggingTable = Table[models.TaggingStatus]{
	{From: models.TaggingStatusPending, To: models.TaggingStatusTagging, Label: "Start Tagging"},
	{From: models.TaggingStatusTagging, To: models.TaggingStatusTagged, Label: "Finish Tagging"},
}
