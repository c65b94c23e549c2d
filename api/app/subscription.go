package app

import (
	"log/slog"

	"github.com/tbeaudouin05/stripe-mirror/api/entity"
	"github.com/tbeaudouin05/stripe-mirror/api/gateway"
	"github.com/tbeaudouin05/stripe-mirror/api/metrics"
)

// CancelSubscription cancels on the backend and applies the terminal-state
// lifecycle rule: a subscription that comes back canceled is evicted from
// the cache, any other resulting status is cached like a normal update.
func (s serviceImpl) CancelSubscription(id string, p gateway.CancelSubscriptionParams) (entity.Subscription, error) {
	sub, err := s.backend.CancelSubscription(id, p)
	metrics.Observe(string(entity.KindSubscription), "cancel", err)
	if err != nil {
		slog.Error("backend call failed", "resource", entity.KindSubscription, "op", "cancel", "err", err)
		return entity.Subscription{}, err
	}
	if sub.Status == entity.SubscriptionStatusCanceled {
		s.store.Subscriptions.Remove(sub.ID)
		slog.Debug("subscription evicted", "id", sub.ID)
	} else {
		s.store.Subscriptions.Upsert(sub)
	}
	s.store.Touch()
	return sub, nil
}

func (s serviceImpl) UpdateSubscription(id string, p gateway.UpdateSubscriptionParams) (entity.Subscription, error) {
	return cacheOp(s, "update", func() (entity.Subscription, error) {
		return s.backend.UpdateSubscription(id, p)
	}, s.store.Subscriptions)
}

func (s serviceImpl) ListSubscriptions(p gateway.ListSubscriptionsParams) (gateway.Page[entity.Subscription], error) {
	return listOp(s, func() (gateway.Page[entity.Subscription], error) {
		return s.backend.ListSubscriptions(p)
	}, s.store.Subscriptions)
}
