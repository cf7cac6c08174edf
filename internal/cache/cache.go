// Package cache holds the last-known collection per entity type. A fetched
// collection stays served from memory until a mutation against that entity
// invalidates its key, forcing the next read to refetch. Invalidation is
// idempotent, so a stale in-flight mutation resolving late is harmless.
package cache

import "sync"

// Key identifies a cached collection.
type Key string

// Collection keys shared by every consumer of an entity type.
const (
	KeyTasks    Key = "tasks"
	KeyGoals    Key = "goals"
	KeyEvents   Key = "events"
	KeyNotes    Key = "notes"
	KeyContacts Key = "contacts"
	KeySettings Key = "planner_settings"
)

type entry struct {
	value interface{}
	stale bool
}

// Collections is an explicit collection cache: key to last-known value plus
// a staleness flag.
type Collections struct {
	mu      sync.Mutex
	entries map[Key]*entry
}

// New creates an empty collection cache.
func New() *Collections {
	return &Collections{
		entries: make(map[Key]*entry),
	}
}

// Invalidate marks the key stale so the next read refetches. Unknown keys
// are ignored.
func (c *Collections) Invalidate(key Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		e.stale = true
	}
}

// InvalidateAll marks every cached collection stale.
func (c *Collections) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range c.entries {
		e.stale = true
	}
}

// IsFresh reports whether the key holds a non-stale value.
func (c *Collections) IsFresh(key Key) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	return ok && !e.stale
}

func (c *Collections) load(key Key) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok || e.stale {
		return nil, false
	}
	return e.value, true
}

func (c *Collections) store(key Key, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = &entry{value: value}
}

// GetOrFetch returns the cached collection for key, calling fetch only when
// the key is missing or stale. A fetch error leaves the cache untouched.
func GetOrFetch[T any](c *Collections, key Key, fetch func() (T, error)) (T, error) {
	if v, ok := c.load(key); ok {
		return v.(T), nil
	}

	value, err := fetch()
	if err != nil {
		var zero T
		return zero, err
	}

	c.store(key, value)
	return value, nil
}
