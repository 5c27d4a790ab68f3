package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wms-dashboard/backend/internal/repository"
	"wms-dashboard/backend/pkg/models"
)

func strPtr(s string) *string { return &s }

func seedOrder(store *fakeStore, status models.OrderStatus, assignee *string) *models.Order {
	order := &models.Order{
		ID:           "ord-1",
		OrderNo:      "ORD-2026-001",
		CustomerName: "Acme Corp",
		OrderType:    models.OrderTypeStandard,
		Status:       status,
		AssignedTo:   assignee,
		TotalAmount:  150,
		CreatedAt:    time.Now(),
	}
	_ = store.CreateOrder(context.Background(), order)
	return order
}

func TestOrderServiceAdvance(t *testing.T) {
	ctx := context.Background()

	t.Run("assigned order advances one step", func(t *testing.T) {
		store := newFakeStore()
		seedOrder(store, models.OrderStatusPending, strPtr("picker-1"))

		svc := NewOrderService(store)
		got, err := svc.Advance(ctx, "ord-1", "")
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusConfirmed, got.Status)
	})

	t.Run("actor satisfies eligibility and is assigned", func(t *testing.T) {
		store := newFakeStore()
		seedOrder(store, models.OrderStatusPending, nil)

		svc := NewOrderService(store)
		got, err := svc.Advance(ctx, "ord-1", "picker-2")
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusConfirmed, got.Status)
		require.NotNil(t, got.AssignedTo)
		assert.Equal(t, "picker-2", *got.AssignedTo)
	})

	t.Run("unassigned order without actor cannot advance", func(t *testing.T) {
		store := newFakeStore()
		seedOrder(store, models.OrderStatusPending, nil)

		svc := NewOrderService(store)
		_, err := svc.Advance(ctx, "ord-1", "")
		assert.ErrorIs(t, err, ErrNotEligible)

		got, _ := store.GetOrder(ctx, "ord-1")
		assert.Equal(t, models.OrderStatusPending, got.Status)
	})

	t.Run("delivered order is terminal", func(t *testing.T) {
		store := newFakeStore()
		seedOrder(store, models.OrderStatusDelivered, strPtr("picker-1"))

		svc := NewOrderService(store)
		_, err := svc.Advance(ctx, "ord-1", "picker-1")
		assert.ErrorIs(t, err, ErrTerminalState)
	})

	t.Run("cancelled order is terminal", func(t *testing.T) {
		store := newFakeStore()
		seedOrder(store, models.OrderStatusCancelled, strPtr("picker-1"))

		svc := NewOrderService(store)
		_, err := svc.Advance(ctx, "ord-1", "picker-1")
		assert.ErrorIs(t, err, ErrTerminalState)
	})

	t.Run("persistence failure leaves order at current state", func(t *testing.T) {
		store := newFakeStore()
		seedOrder(store, models.OrderStatusProcessing, strPtr("picker-1"))
		store.failUpdate = errStoreDown

		svc := NewOrderService(store)
		_, err := svc.Advance(ctx, "ord-1", "")
		assert.ErrorIs(t, err, errStoreDown)

		got, _ := store.GetOrder(ctx, "ord-1")
		assert.Equal(t, models.OrderStatusProcessing, got.Status)
	})

	t.Run("unknown order", func(t *testing.T) {
		svc := NewOrderService(newFakeStore())
		_, err := svc.Advance(ctx, "missing", "picker-1")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestOrderServiceNextAction(t *testing.T) {
	ctx := context.Background()

	t.Run("mid-chain order", func(t *testing.T) {
		store := newFakeStore()
		seedOrder(store, models.OrderStatusConfirmed, strPtr("picker-1"))

		svc := NewOrderService(store)
		action, err := svc.NextAction(ctx, "ord-1")
		require.NoError(t, err)
		assert.False(t, action.Terminal)
		assert.True(t, action.CanAdvance)
		require.NotNil(t, action.Next)
		assert.Equal(t, models.OrderStatusProcessing, *action.Next)
		assert.Equal(t, "Process", action.Label)
	})

	t.Run("unassigned order reports it cannot advance", func(t *testing.T) {
		store := newFakeStore()
		seedOrder(store, models.OrderStatusConfirmed, nil)

		svc := NewOrderService(store)
		action, err := svc.NextAction(ctx, "ord-1")
		require.NoError(t, err)
		assert.False(t, action.Terminal)
		assert.False(t, action.CanAdvance)
	})

	t.Run("terminal order", func(t *testing.T) {
		store := newFakeStore()
		seedOrder(store, models.OrderStatusDelivered, strPtr("picker-1"))

		svc := NewOrderService(store)
		action, err := svc.NextAction(ctx, "ord-1")
		require.NoError(t, err)
		assert.True(t, action.Terminal)
		assert.Nil(t, action.Next)
	})
}
