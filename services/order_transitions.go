// services/order_transitions.go
package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/Subhashreel/orders/entity"
	"github.com/Subhashreel/orders/pkg/apperr"
	"github.com/Subhashreel/orders/pkg/metrics"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// TransitionPolicy decides whether an order may move between two statuses.
type TransitionPolicy interface {
	Allows(from, to entity.OrderStatus) bool
}

type permitAny struct{}

func (permitAny) Allows(from, to entity.OrderStatus) bool {
	return from.Valid() && to.Valid()
}

// PermitAny lets any status follow any other, which supports manual
// corrections such as reopening a delivered order.
func PermitAny() TransitionPolicy { return permitAny{} }

// TransitionTable lists the allowed next statuses for each status.
type TransitionTable map[entity.OrderStatus][]entity.OrderStatus

func (t TransitionTable) Allows(from, to entity.OrderStatus) bool {
	for _, next := range t[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ForwardOnly walks pending → confirmed → preparing → ready → delivered one
// step at a time; any non-terminal order may be cancelled.
func ForwardOnly() TransitionTable {
	return TransitionTable{
		entity.StatusPending:   {entity.StatusConfirmed, entity.StatusCancelled},
		entity.StatusConfirmed: {entity.StatusPreparing, entity.StatusCancelled},
		entity.StatusPreparing: {entity.StatusReady, entity.StatusCancelled},
		entity.StatusReady:     {entity.StatusDelivered, entity.StatusCancelled},
	}
}

// ParseTransitionTable builds a table from configuration, rejecting unknown
// statuses. An empty map yields PermitAny.
func ParseTransitionTable(raw map[string][]string) (TransitionPolicy, error) {
	if len(raw) == 0 {
		return PermitAny(), nil
	}
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	table := make(TransitionTable, len(raw))
	for _, k := range keys {
		from := entity.OrderStatus(k)
		if !from.Valid() {
			return nil, fmt.Errorf("transitions: unknown status %q", k)
		}
		for _, v := range raw[k] {
			to := entity.OrderStatus(v)
			if !to.Valid() {
				return nil, fmt.Errorf("transitions.%s: unknown status %q", k, v)
			}
			table[from] = append(table[from], to)
		}
	}
	return table, nil
}

type StatusChange struct {
	OldStatus entity.OrderStatus `json:"oldStatus"`
	NewStatus entity.OrderStatus `json:"newStatus"`
}

// UpdateStatus reads the current status, writes the new one and appends a
// history row in one transaction. Nothing is written when the order is
// missing or the policy refuses the move.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID uint, newStatus entity.OrderStatus) (*StatusChange, error) {
	if !newStatus.Valid() {
		return nil, apperr.BadRequest("invalid status %q", newStatus)
	}

	now := s.now().UTC()
	var change StatusChange
	err := runGuarded(s.breaker, func() error {
		return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			o, err := s.Repo.LockOrder(tx, orderID)
			if err != nil {
				return notFoundOr(err, "order %d not found", orderID)
			}
			old := o.Status
			if !s.Policy.Allows(old, newStatus) {
				return apperr.BadRequest("order %d cannot move from %s to %s", orderID, old, newStatus)
			}

			if err := s.Repo.UpdateStatus(tx, orderID, newStatus, now); err != nil {
				return apperr.Internal(fmt.Errorf("update status: %w", err))
			}
			if err := s.Repo.AppendStatusHistory(tx, &entity.OrderStatusHistory{
				OrderID:   orderID,
				OldStatus: &old,
				NewStatus: newStatus,
				ChangedAt: now,
			}); err != nil {
				return apperr.Internal(fmt.Errorf("insert status history: %w", err))
			}
			change = StatusChange{OldStatus: old, NewStatus: newStatus}
			return nil
		})
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}

	metrics.StatusTransitions.WithLabelValues(string(change.OldStatus), string(change.NewStatus)).Inc()
	log.WithFields(log.Fields{
		"order_id": orderID,
		"from":     change.OldStatus,
		"to":       change.NewStatus,
	}).Info("order status changed")
	return &change, nil
}
