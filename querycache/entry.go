package querycache

import "sync"

// Status is the lifecycle phase of a cache entry or mutation.
type Status int

const (
	StatusIdle Status = iota
	StatusPending
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

// EventKind describes why subscribers were notified.
type EventKind int

const (
	// EventUpdated fires when a fetch stored a new value for the key.
	EventUpdated EventKind = iota
	// EventInvalidated fires when the key was marked stale by a mutation.
	EventInvalidated
)

// Event is delivered to subscribers of a key.
type Event struct {
	Key  Key
	Kind EventKind
}

// entry is the per-key cache record: last-known value, lifecycle status, and
// the subscriber set that re-renders together.
type entry struct {
	key Key

	mu      sync.Mutex
	status  Status
	value   any
	err     error
	stale   bool
	subs    map[int]chan Event
	nextSub int

	// gen counts invalidations. A fetch captures it when it starts so a
	// result computed before an intervening invalidation cannot clear the
	// staleness that invalidation set.
	gen      uint64
	fetchGen uint64
}

func newEntry(key Key) *entry {
	return &entry{key: key, subs: make(map[int]chan Event)}
}

// fresh returns the cached value when it is current: a successful fetch not
// yet invalidated.
func (e *entry) fresh() (any, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.status == StatusSuccess && !e.stale {
		return e.value, true
	}
	return nil, false
}

// markPending flags a first load. A stale entry keeps its last value and
// StatusSuccess while the refetch is in flight.
func (e *entry) markPending() {
	e.mu.Lock()
	if e.status != StatusSuccess {
		e.status = StatusPending
	}
	e.fetchGen = e.gen
	e.mu.Unlock()
}

func (e *entry) storeValue(v any) {
	e.mu.Lock()
	e.status = StatusSuccess
	e.value = v
	e.err = nil
	// Stays stale when an invalidation landed mid-fetch, so the next read
	// refetches instead of serving this possibly outdated result.
	e.stale = e.gen != e.fetchGen
	e.mu.Unlock()
	e.notify(EventUpdated)
}

func (e *entry) storeErr(err error) {
	e.mu.Lock()
	e.status = StatusError
	e.err = err
	e.mu.Unlock()
}

func (e *entry) invalidate() {
	e.mu.Lock()
	e.stale = true
	e.gen++
	e.mu.Unlock()
	e.notify(EventInvalidated)
}

// notify delivers the event without blocking; slow subscribers drop events
// rather than stall the cache.
func (e *entry) notify(kind EventKind) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, ch := range e.subs {
		select {
		case ch <- Event{Key: e.key, Kind: kind}:
		default:
		}
	}
}

func (e *entry) subscribe() (chan Event, int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	id := e.nextSub
	e.nextSub++
	ch := make(chan Event, 4)
	e.subs[id] = ch
	return ch, id
}

func (e *entry) unsubscribe(id int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if ch, ok := e.subs[id]; ok {
		delete(e.subs, id)
		close(ch)
	}
}

func (e *entry) hasSubscribers() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.subs) > 0
}

func (e *entry) currentStatus() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}
