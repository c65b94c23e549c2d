package sim

import (
	"github.com/tbeaudouin05/stripe-mirror/api/entity"
	"github.com/tbeaudouin05/stripe-mirror/api/gateway"
)

// SeedSubscription plants an active monthly subscription for a customer on
// a price. Subscriptions are born on the billing side, so the simulation
// exposes this instead of a create operation.
func (b *Backend) SeedSubscription(customer, priceID string) (entity.Subscription, error) {
	if _, ok := b.state.Customers.Get(customer); !ok {
		return entity.Subscription{}, notFoundErr(entity.KindCustomer, customer)
	}
	currency := "usd"
	if priceID != "" {
		price, ok := b.state.Prices.Get(priceID)
		if !ok {
			return entity.Subscription{}, notFoundErr(entity.KindPrice, priceID)
		}
		currency = price.Currency
	}

	now := b.timestamp()
	sub := entity.Subscription{
		ID:                 b.newID(entity.KindSubscription),
		Object:             string(entity.KindSubscription),
		Created:            now,
		Currency:           currency,
		CurrentPeriodStart: now,
		CurrentPeriodEnd:   b.now().AddDate(0, 1, 0).Unix(),
		Customer:           customer,
		StartDate:          now,
		Status:             entity.SubscriptionStatusActive,
	}
	b.state.Subscriptions.Upsert(sub)
	if priceID != "" {
		// The subscription model carries no price field; keep the seeded
		// price aside so list filtering can honor it.
		b.mu.Lock()
		b.subPrice[sub.ID] = priceID
		b.mu.Unlock()
	}
	return sub, nil
}

// CancelSubscription cancels immediately. The subscription stays in the
// simulated remote state with status canceled, the way the real service
// keeps canceled subscriptions retrievable.
func (b *Backend) CancelSubscription(id string, p gateway.CancelSubscriptionParams) (entity.Subscription, error) {
	sub, ok := b.state.Subscriptions.Get(id)
	if !ok {
		return entity.Subscription{}, notFoundErr(entity.KindSubscription, id)
	}
	sub.Status = entity.SubscriptionStatusCanceled
	sub.CancelAtPeriodEnd = false
	b.state.Subscriptions.Upsert(sub)
	return sub, nil
}

func (b *Backend) UpdateSubscription(id string, p gateway.UpdateSubscriptionParams) (entity.Subscription, error) {
	sub, ok := b.state.Subscriptions.Get(id)
	if !ok {
		return entity.Subscription{}, notFoundErr(entity.KindSubscription, id)
	}
	if p.CancelAtPeriodEnd != nil {
		sub.CancelAtPeriodEnd = *p.CancelAtPeriodEnd
	}
	if p.Metadata != nil {
		sub.Metadata = p.Metadata
	}
	if p.TrialEnd != 0 {
		sub.Status = entity.SubscriptionStatusTrialing
		sub.CurrentPeriodEnd = p.TrialEnd
	}
	b.state.Subscriptions.Upsert(sub)
	return sub, nil
}

// ListSubscriptions defaults to the billable statuses: without an explicit
// status filter, canceled and incomplete_expired subscriptions are omitted,
// matching the remote service's default list behavior.
func (b *Backend) ListSubscriptions(p gateway.ListSubscriptionsParams) (gateway.Page[entity.Subscription], error) {
	var priceOf map[string]string
	if p.Price != "" {
		b.mu.Lock()
		priceOf = make(map[string]string, len(b.subPrice))
		for id, price := range b.subPrice {
			priceOf[id] = price
		}
		b.mu.Unlock()
	}
	matches := b.state.Subscriptions.Find(func(sub entity.Subscription) bool {
		if p.Customer != "" && sub.Customer != p.Customer {
			return false
		}
		if p.Price != "" && priceOf[sub.ID] != p.Price {
			return false
		}
		switch {
		case p.Status == "all":
		case p.Status != "":
			if sub.Status != p.Status {
				return false
			}
		default:
			if sub.Status == entity.SubscriptionStatusCanceled ||
				sub.Status == entity.SubscriptionStatusIncompleteExpired {
				return false
			}
		}
		return p.Created.Matches(sub.Created)
	})
	return paginate(matches, p.ListParams), nil
}

func (b *Backend) RetrieveSubscription(id string) (entity.Subscription, error) {
	sub, ok := b.state.Subscriptions.Get(id)
	if !ok {
		return entity.Subscription{}, notFoundErr(entity.KindSubscription, id)
	}
	return sub, nil
}
