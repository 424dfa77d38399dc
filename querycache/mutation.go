package querycache

import (
	"context"
	"sync"
)

// WriteFunc performs the write against the source of truth.
type WriteFunc func(ctx context.Context) (any, error)

// Mutation is a tracked write with a declared invalidation fan-out. On
// success every declared key prefix is marked stale so subsequent reads
// refetch; on failure nothing is invalidated and cached reads keep serving
// the previous state.
//
// A Mutation may be reused; each Do runs the write exactly once. Writes are
// never retried.
type Mutation struct {
	cache       *Cache
	invalidates []Key

	mu     sync.Mutex
	status Status
	err    error
}

// NewMutation builds a mutation that invalidates the given key prefixes when
// its write succeeds.
func (c *Cache) NewMutation(invalidates ...Key) *Mutation {
	return &Mutation{
		cache:       c,
		invalidates: invalidates,
		status:      StatusIdle,
	}
}

// Do executes write and, on success, invalidates the declared keys. The
// write's result and error are returned verbatim.
func (m *Mutation) Do(ctx context.Context, write WriteFunc) (any, error) {
	m.mu.Lock()
	m.status = StatusPending
	m.err = nil
	m.mu.Unlock()

	v, err := write(ctx)
	if err != nil {
		m.mu.Lock()
		m.status = StatusError
		m.err = err
		m.mu.Unlock()
		return nil, err
	}

	for _, key := range m.invalidates {
		m.cache.Invalidate(key)
	}

	m.mu.Lock()
	m.status = StatusSuccess
	m.mu.Unlock()
	return v, nil
}

// Status reports the phase of the most recent Do, StatusIdle before any.
func (m *Mutation) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// Err returns the error of the most recent Do, nil on success or before any.
func (m *Mutation) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}
