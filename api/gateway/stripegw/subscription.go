package stripegw

import (
	stripe "github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/sub"

	"github.com/tbeaudouin05/stripe-mirror/api/entity"
	"github.com/tbeaudouin05/stripe-mirror/api/gateway"
)

func (c client) CancelSubscription(id string, p gateway.CancelSubscriptionParams) (entity.Subscription, error) {
	if err := c.ready(); err != nil {
		return entity.Subscription{}, err
	}
	params := &stripe.SubscriptionCancelParams{}
	if p.InvoiceNow {
		params.InvoiceNow = stripe.Bool(true)
	}
	if p.Prorate {
		params.Prorate = stripe.Bool(true)
	}
	if d := p.CancellationDetails; d != nil {
		if d.Comment != "" {
			params.AddExtra("cancellation_details[comment]", d.Comment)
		}
		if d.Feedback != "" {
			params.AddExtra("cancellation_details[feedback]", d.Feedback)
		}
	}
	s, err := sub.Cancel(id, params)
	if err != nil {
		return entity.Subscription{}, mapErr(err)
	}
	return decode(s.LastResponse, fromSubscription(s)), nil
}

func (c client) UpdateSubscription(id string, p gateway.UpdateSubscriptionParams) (entity.Subscription, error) {
	if err := c.ready(); err != nil {
		return entity.Subscription{}, err
	}
	params := &stripe.SubscriptionParams{
		Params: stripe.Params{Metadata: p.Metadata},
	}
	if p.CancelAtPeriodEnd != nil {
		params.CancelAtPeriodEnd = stripe.Bool(*p.CancelAtPeriodEnd)
	}
	if p.DefaultPaymentMethod != "" {
		params.DefaultPaymentMethod = stripe.String(p.DefaultPaymentMethod)
	}
	if p.ProrationBehavior != "" {
		params.ProrationBehavior = stripe.String(p.ProrationBehavior)
	}
	if p.TrialEnd != 0 {
		params.TrialEnd = stripe.Int64(p.TrialEnd)
	}
	s, err := sub.Update(id, params)
	if err != nil {
		return entity.Subscription{}, mapErr(err)
	}
	return decode(s.LastResponse, fromSubscription(s)), nil
}

func (c client) ListSubscriptions(p gateway.ListSubscriptionsParams) (gateway.Page[entity.Subscription], error) {
	if err := c.ready(); err != nil {
		return gateway.Page[entity.Subscription]{}, err
	}
	params := &stripe.SubscriptionListParams{
		ListParams:   listParams(p.ListParams),
		CreatedRange: rangeQuery(p.Created),
		Customer:     p.Customer,
		Price:        p.Price,
		Status:       p.Status,
	}
	iter := sub.List(params)
	page := collectPage(p.Limit, func() (entity.Subscription, bool) {
		if !iter.Next() {
			return entity.Subscription{}, false
		}
		return fromSubscription(iter.Subscription()), true
	})
	if err := iter.Err(); err != nil {
		return gateway.Page[entity.Subscription]{}, mapErr(err)
	}
	return page, nil
}

func (c client) RetrieveSubscription(id string) (entity.Subscription, error) {
	if err := c.ready(); err != nil {
		return entity.Subscription{}, err
	}
	s, err := sub.Get(id, nil)
	if err != nil {
		return entity.Subscription{}, mapErr(err)
	}
	return decode(s.LastResponse, fromSubscription(s)), nil
}
