package services

import (
	"context"
	"errors"
	"fmt"

	"wms-dashboard/backend/internal/repository"
	"wms-dashboard/backend/internal/workflow"
	"wms-dashboard/backend/pkg/models"
)

// ErrTerminalState is returned when a record has no further transition.
var ErrTerminalState = errors.New("record is in a terminal state")

// ErrNotEligible is returned when a record cannot advance because it has no
// assignee.
var ErrNotEligible = errors.New("record has no assignee")

// NextAction describes the next legal transition for a record, or that it is
// terminal.
type NextAction struct {
	Current    models.OrderStatus `json:"current"`
	Terminal   bool               `json:"terminal"`
	CanAdvance bool               `json:"can_advance"`
	Next       *models.OrderStatus `json:"next,omitempty"`
	Label      string             `json:"label,omitempty"`
}

// OrderService advances orders through their workflow. The transition itself
// is computed by the workflow engine over a snapshot; this service only
// applies the result, and a failed application leaves the stored order at its
// current state.
type OrderService struct {
	store repository.Store
}

// NewOrderService creates a new OrderService.
func NewOrderService(store repository.Store) *OrderService {
	return &OrderService{store: store}
}

// NextAction reports the next legal transition for an order without applying
// it.
func (s *OrderService) NextAction(ctx context.Context, id string) (*NextAction, error) {
	order, err := s.store.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	action := &NextAction{Current: order.Status}
	edge, ok := workflow.OrderTable.Next(order.Status)
	if !ok {
		action.Terminal = true
		return action, nil
	}

	next := edge.To
	action.Next = &next
	action.Label = edge.Label
	action.CanAdvance = workflow.OrderTable.CanAdvance(order.Status, order.IsAssigned())
	return action, nil
}

// Advance moves an order to its next workflow state. A non-empty actor is
// assigned to the order as part of the transition and satisfies the
// eligibility gate for an unassigned order.
func (s *OrderService) Advance(ctx context.Context, id, actor string) (*models.Order, error) {
	order, err := s.store.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	edge, ok := workflow.OrderTable.Next(order.Status)
	if !ok {
		return nil, fmt.Errorf("order %s at %q: %w", order.OrderNo, order.Status, ErrTerminalState)
	}

	eligible := order.IsAssigned() || actor != ""
	if !workflow.OrderTable.CanAdvance(order.Status, eligible) {
		return nil, fmt.Errorf("order %s at %q: %w", order.OrderNo, order.Status, ErrNotEligible)
	}

	var assignee *string
	if actor != "" {
		assignee = &actor
	}

	if err := s.store.UpdateOrderStatus(ctx, id, edge.From, edge.To, assignee); err != nil {
		return nil, fmt.Errorf("apply transition %s: %w", edge.Label, err)
	}

	return s.store.GetOrder(ctx, id)
}
