package translation

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerSettings configures the circuit breaker around a backend
type BreakerSettings struct {
	Name string
	// MaxFailures is the number of consecutive failures that opens the circuit
	MaxFailures uint32
	// Cooldown is how long the circuit stays open before probing again
	Cooldown time.Duration
}

type breaker struct {
	backend Backend
	cb      *gobreaker.CircuitBreaker
}

// Breaker stops calling b after repeated failures so a dead service
// does not stall a whole job
func Breaker(b Backend, s BreakerSettings) Backend {
	if s.Name == "" {
		s.Name = "translation"
	}
	if s.MaxFailures == 0 {
		s.MaxFailures = 5
	}
	if s.Cooldown <= 0 {
		s.Cooldown = 30 * time.Second
	}

	maxFailures := s.MaxFailures
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        s.Name,
		MaxRequests: 1,
		Timeout:     s.Cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Printf("circuit breaker %s: %s -> %s", name, from, to)
		},
	})

	return &breaker{backend: b, cb: cb}
}

func (b *breaker) TranslateText(ctx context.Context, req Request) (string, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.backend.TranslateText(ctx, req)
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", b.cb.Name(), err)
	}
	return result.(string), nil
}
