// Package memory keeps the saved order collection in process memory. It serves
// ephemeral runs and tests; nothing survives a restart.
package memory

import (
	"context"
	"sync"

	"catering/internal/core/domain/model/order"
)

// Store implements ports.OrderPersistence. Orders are immutable values, so
// holding a copy of the slice is enough to snapshot them.
type Store struct {
	mu     sync.RWMutex
	orders []order.Order
	saves  int
}

// NewStore returns a store preloaded with seed.
func NewStore(seed ...order.Order) *Store {
	return &Store{orders: append([]order.Order{}, seed...)}
}

func (s *Store) Load(ctx context.Context) ([]order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]order.Order{}, s.orders...), nil
}

func (s *Store) Save(ctx context.Context, orders []order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append([]order.Order{}, orders...)
	s.saves++
	return nil
}

// Saves reports how many saves succeeded.
func (s *Store) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}
