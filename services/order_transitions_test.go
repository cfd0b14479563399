package services

import (
	"context"
	"testing"

	"github.com/Subhashreel/orders/entity"
	"github.com/Subhashreel/orders/pkg/apperr"
)

func createPendingOrder(t *testing.T, svc *OrderService, restID, itemID uint) uint {
	t.Helper()
	res, err := svc.Create(context.Background(), &CreateOrderReq{
		RestaurantID:  restID,
		CustomerName:  "Hal",
		CustomerPhone: "0812345678",
		Items:         []OrderItemIn{{MenuItemID: itemID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return res.OrderID
}

func TestUpdateStatus_RecordsHistory(t *testing.T) {
	db := newTestDB(t)
	rest := seedRestaurant(t, db, entity.Restaurant{})
	item := seedMenuItem(t, db, rest.ID, "Noodles", "7.00", "1.5")
	svc := newTestOrderService(db, testNow)
	id := createPendingOrder(t, svc, rest.ID, item.ID)

	steps := []entity.OrderStatus{
		entity.StatusConfirmed,
		entity.StatusPreparing,
		entity.StatusReady,
		entity.StatusDelivered,
		// corrections are allowed by default
		entity.StatusPreparing,
	}
	prev := entity.StatusPending
	for _, next := range steps {
		change, err := svc.UpdateStatus(context.Background(), id, next)
		if err != nil {
			t.Fatalf("UpdateStatus(%s): %v", next, err)
		}
		if change.OldStatus != prev || change.NewStatus != next {
			t.Errorf("change = %+v, want %s -> %s", change, prev, next)
		}
		prev = next
	}

	detail, err := svc.Detail(id)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if detail.Order.Status != entity.StatusPreparing {
		t.Errorf("status = %s, want preparing", detail.Order.Status)
	}
	if len(detail.StatusHistory) != len(steps)+1 {
		t.Fatalf("history rows = %d, want %d", len(detail.StatusHistory), len(steps)+1)
	}
	for i, h := range detail.StatusHistory[1:] {
		if h.OldStatus == nil || h.NewStatus != steps[i] {
			t.Errorf("history[%d] = %+v", i+1, h)
		}
	}
}

func TestUpdateStatus_UnknownOrderWritesNothing(t *testing.T) {
	db := newTestDB(t)
	svc := newTestOrderService(db, testNow)

	_, err := svc.UpdateStatus(context.Background(), 404, entity.StatusConfirmed)
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
	if n := countRows(t, db, &entity.OrderStatusHistory{}); n != 0 {
		t.Errorf("history rows = %d, want 0", n)
	}
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	svc := newTestOrderService(newTestDB(t), testNow)
	_, err := svc.UpdateStatus(context.Background(), 1, entity.OrderStatus("lost"))
	if !apperr.Is(err, apperr.KindBadRequest) {
		t.Errorf("err = %v, want bad request", err)
	}
}

func TestUpdateStatus_ForwardOnlyRejectsWithoutWriting(t *testing.T) {
	db := newTestDB(t)
	rest := seedRestaurant(t, db, entity.Restaurant{})
	item := seedMenuItem(t, db, rest.ID, "Dumplings", "6.00", "1.0")
	svc := newTestOrderService(db, testNow)
	svc.Policy = ForwardOnly()
	id := createPendingOrder(t, svc, rest.ID, item.ID)

	if _, err := svc.UpdateStatus(context.Background(), id, entity.StatusReady); !apperr.Is(err, apperr.KindBadRequest) {
		t.Fatalf("skip ahead: err = %v, want bad request", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), id, entity.StatusCancelled); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), id, entity.StatusPending); !apperr.Is(err, apperr.KindBadRequest) {
		t.Fatalf("reopen cancelled: err = %v, want bad request", err)
	}

	detail, err := svc.Detail(id)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if detail.Order.Status != entity.StatusCancelled {
		t.Errorf("status = %s, want cancelled", detail.Order.Status)
	}
	if len(detail.StatusHistory) != 2 {
		t.Errorf("history rows = %d, want 2", len(detail.StatusHistory))
	}
}

func TestTransitionPolicies(t *testing.T) {
	forward := ForwardOnly()
	tests := []struct {
		name     string
		policy   TransitionPolicy
		from, to entity.OrderStatus
		want     bool
	}{
		{"any: backwards", PermitAny(), entity.StatusDelivered, entity.StatusPending, true},
		{"any: same status", PermitAny(), entity.StatusReady, entity.StatusReady, true},
		{"any: unknown target", PermitAny(), entity.StatusReady, "lost", false},
		{"forward: next step", forward, entity.StatusConfirmed, entity.StatusPreparing, true},
		{"forward: skip", forward, entity.StatusPending, entity.StatusPreparing, false},
		{"forward: cancel", forward, entity.StatusReady, entity.StatusCancelled, true},
		{"forward: from terminal", forward, entity.StatusDelivered, entity.StatusCancelled, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.policy.Allows(tt.from, tt.to); got != tt.want {
				t.Errorf("Allows(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestParseTransitionTable(t *testing.T) {
	p, err := ParseTransitionTable(nil)
	if err != nil {
		t.Fatalf("empty: %v", err)
	}
	if !p.Allows(entity.StatusDelivered, entity.StatusPending) {
		t.Error("empty table should permit any move")
	}

	p, err = ParseTransitionTable(map[string][]string{
		"pending":   {"confirmed", "cancelled"},
		"confirmed": {"delivered"},
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !p.Allows(entity.StatusConfirmed, entity.StatusDelivered) {
		t.Error("confirmed -> delivered should be allowed")
	}
	if p.Allows(entity.StatusPending, entity.StatusDelivered) {
		t.Error("pending -> delivered should be refused")
	}

	for _, raw := range []map[string][]string{
		{"lost": {"pending"}},
		{"pending": {"found"}},
	} {
		if _, err := ParseTransitionTable(raw); err == nil {
			t.Errorf("ParseTransitionTable(%v) succeeded, want error", raw)
		}
	}
}

func TestUpdateStatus_HistoryFailureKeepsStatus(t *testing.T) {
	db := newTestDB(t)
	rest := seedRestaurant(t, db, entity.Restaurant{})
	item := seedMenuItem(t, db, rest.ID, "Satay", "5.00", "1.0")
	failHistory := failInserts(t, db, "order_status_history")
	svc := newTestOrderService(db, testNow)
	id := createPendingOrder(t, svc, rest.ID, item.ID)

	*failHistory = true
	_, err := svc.UpdateStatus(context.Background(), id, entity.StatusConfirmed)
	if !apperr.Is(err, apperr.KindInternal) {
		t.Fatalf("err = %v (kind %v), want internal", err, apperr.KindOf(err))
	}
	*failHistory = false

	detail, err := svc.Detail(id)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if detail.Order.Status != entity.StatusPending {
		t.Errorf("status = %s after failed update, want pending", detail.Order.Status)
	}
	if len(detail.StatusHistory) != 1 {
		t.Errorf("history rows = %d, want 1", len(detail.StatusHistory))
	}
}
