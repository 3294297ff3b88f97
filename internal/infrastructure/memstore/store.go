// Package memstore is an in-process transactional store. It backs the
// "memory" STORE_DRIVER and serves as the repository double in tests.
//
// Every table registers with its Store; WithinTx snapshots all tables and
// restores them when the callback fails. A transaction runs alone: table
// operations outside it wait until it commits or rolls back, so they never
// see its uncommitted rows and a rollback never discards their writes.
package memstore

import (
	"context"
	"sync"
)

type snapshotter interface {
	snapshot() (restore func())
}

type Store struct {
	mu     sync.RWMutex
	txMu   sync.RWMutex
	tables []snapshotter
}

func New() *Store {
	return &Store{}
}

type txKey struct{}

// WithinTx runs fn atomically with respect to all other table access.
// Nested calls join the outer transaction.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	restore := s.snapshot()
	if err := fn(context.WithValue(ctx, txKey{}, struct{}{})); err != nil {
		restore()
		return err
	}
	return nil
}

// enter admits one table operation. Inside a transaction the caller already
// holds txMu exclusively.
func (s *Store) enter(ctx context.Context) (leave func()) {
	if ctx.Value(txKey{}) != nil {
		return func() {}
	}
	s.txMu.RLock()
	return s.txMu.RUnlock
}

// Ping always succeeds; present so the store satisfies health checks.
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *Store) snapshot() func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	restores := make([]func(), 0, len(s.tables))
	for _, t := range s.tables {
		restores = append(restores, t.snapshot())
	}
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for _, r := range restores {
			r()
		}
	}
}

func (s *Store) register(t snapshotter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables = append(s.tables, t)
}
