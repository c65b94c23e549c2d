package store

import (
	"sort"
	"sync"

	"github.com/tbeaudouin05/stripe-mirror/api/entity"
)

// Collection is one keyed set of cached entities. Upsert overwrites whole
// values by id; there is no merging. Reads return snapshot copies so callers
// never observe later mutations through a returned slice.
type Collection[E entity.Object] struct {
	mu    sync.RWMutex
	items map[string]E
}

func NewCollection[E entity.Object]() *Collection[E] {
	return &Collection[E]{items: make(map[string]E)}
}

// Upsert inserts or overwrites the entity under its id. It never fails.
func (c *Collection[E]) Upsert(e E) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[e.EntityID()] = e
}

// Get looks up an entity by id. A missing id is not an error.
func (c *Collection[E]) Get(id string) (E, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.items[id]
	return e, ok
}

// Remove deletes the entity under id, reporting whether it was present.
// Removing a missing id is a no-op.
func (c *Collection[E]) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	return true
}

// List returns a snapshot of the collection ordered by id.
func (c *Collection[E]) List() []E {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]E, 0, len(c.items))
	for _, e := range c.items {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EntityID() < out[j].EntityID() })
	return out
}

// Find returns the entities matching pred, in id order. Linear scan; the
// cache carries no indexes.
func (c *Collection[E]) Find(pred func(E) bool) []E {
	var out []E
	for _, e := range c.List() {
		if pred(e) {
			out = append(out, e)
		}
	}
	return out
}

func (c *Collection[E]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Collection[E]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]E)
}

// snapshotMap returns a copy of the underlying map for serialization.
func (c *Collection[E]) snapshotMap() map[string]E {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]E, len(c.items))
	for k, v := range c.items {
		out[k] = v
	}
	return out
}
