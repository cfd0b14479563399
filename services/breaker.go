package services

import (
	"errors"
	"time"

	"github.com/Subhashreel/orders/pkg/apperr"
	"github.com/Subhashreel/orders/pkg/metrics"

	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

// newStoreBreaker trips after repeated storage failures so callers fail fast
// instead of piling onto a sick database. Domain rejections (not found, bad
// input) count as successes.
func newStoreBreaker(name string) *gobreaker.CircuitBreaker {
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    30 * time.Second,
		Timeout:     15 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			return err == nil || apperr.KindOf(err) != apperr.KindInternal
		},
		OnStateChange: func(cbName string, from, to gobreaker.State) {
			state := float64(0)
			switch to {
			case gobreaker.StateOpen:
				state = 1
			case gobreaker.StateHalfOpen:
				state = 2
			}
			metrics.CircuitBreakerState.WithLabelValues(cbName).Set(state)
			log.WithFields(log.Fields{
				"circuit": cbName,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("circuit breaker state changed")
		},
	})
}

func runGuarded(cb *gobreaker.CircuitBreaker, fn func() error) error {
	_, err := cb.Execute(func() (interface{}, error) {
		return nil, fn()
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return apperr.Unavailable("order store unavailable, try again later")
	}
	return err
}
