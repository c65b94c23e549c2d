package app

import (
	"log/slog"

	"github.com/tbeaudouin05/stripe-mirror/api/entity"
	"github.com/tbeaudouin05/stripe-mirror/api/gateway"
	"github.com/tbeaudouin05/stripe-mirror/api/metrics"
	"github.com/tbeaudouin05/stripe-mirror/api/store"
)

// cacheOp runs one backend call that yields a single entity and, on
// success, upserts the result and refreshes lastSync. A failing call
// leaves the store untouched.
func cacheOp[E entity.Object](s serviceImpl, op string, call func() (E, error), col *store.Collection[E]) (E, error) {
	var zero E
	resource := string(zero.EntityKind())
	e, err := call()
	metrics.Observe(resource, op, err)
	if err != nil {
		slog.Error("backend call failed", "resource", resource, "op", op, "err", err)
		return zero, err
	}
	col.Upsert(e)
	s.store.Touch()
	slog.Debug("resource cached", "resource", resource, "op", op, "id", e.EntityID())
	return e, nil
}

// listOp runs one backend list call and upserts every returned item.
// Listing is the cache's refresh mechanism.
func listOp[E entity.Object](s serviceImpl, call func() (gateway.Page[E], error), col *store.Collection[E]) (gateway.Page[E], error) {
	var zero E
	resource := string(zero.EntityKind())
	page, err := call()
	metrics.Observe(resource, "list", err)
	if err != nil {
		slog.Error("backend call failed", "resource", resource, "op", "list", "err", err)
		return gateway.Page[E]{}, err
	}
	for _, e := range page.Data {
		col.Upsert(e)
	}
	s.store.Touch()
	slog.Debug("resources listed", "resource", resource, "count", len(page.Data), "has_more", page.HasMore)
	return page, nil
}
