package pathcache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

// DefaultCapacity is the Memory size used when NewMemory gets capacity ≤ 0.
const DefaultCapacity = 4096

// Memory is an in-process LRU cache. Expired entries are dropped lazily on
// access. Safe for concurrent use.
type Memory struct {
	mu       sync.Mutex
	capacity int
	ll       *list.List // front = most recently used
	items    map[string]*list.Element
	now      func() time.Time
}

type memEntry struct {
	key       string
	data      []byte
	expiresAt time.Time // zero = never
}

// NewMemory creates an LRU cache holding at most capacity entries.
func NewMemory(capacity int) *Memory {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &Memory{
		capacity: capacity,
		ll:       list.New(),
		items:    make(map[string]*list.Element, capacity),
		now:      time.Now,
	}
}

// Get retrieves a value, refreshing its recency.
func (m *Memory) Get(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	el, ok := m.items[key]
	if !ok {
		return nil, false, nil
	}
	e := el.Value.(*memEntry)
	if !e.expiresAt.IsZero() && m.now().After(e.expiresAt) {
		m.remove(el)
		return nil, false, nil
	}
	m.ll.MoveToFront(el)

	return e.data, true, nil
}

// Set stores a copy of data, evicting the least recently used entry when full.
func (m *Memory) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := &memEntry{key: key, data: append([]byte(nil), data...)}
	if ttl > 0 {
		e.expiresAt = m.now().Add(ttl)
	}
	if el, ok := m.items[key]; ok {
		el.Value = e
		m.ll.MoveToFront(el)
		return nil
	}
	m.items[key] = m.ll.PushFront(e)
	for m.ll.Len() > m.capacity {
		m.remove(m.ll.Back())
	}

	return nil
}

// Delete removes key if present.
func (m *Memory) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if el, ok := m.items[key]; ok {
		m.remove(el)
	}

	return nil
}

// Len returns the number of stored entries, expired ones included.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.ll.Len()
}

// Close drops every entry.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ll.Init()
	clear(m.items)

	return nil
}

func (m *Memory) remove(el *list.Element) {
	m.ll.Remove(el)
	delete(m.items, el.Value.(*memEntry).key)
}

var _ Cache = (*Memory)(nil)
