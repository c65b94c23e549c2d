package stripegw

import (
	stripe "github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/paymentintent"
	"github.com/stripe/stripe-go/v72/paymentlink"
	"github.com/stripe/stripe-go/v72/refund"

	"github.com/tbeaudouin05/stripe-mirror/api/entity"
	"github.com/tbeaudouin05/stripe-mirror/api/gateway"
)

func (c client) CreatePaymentLink(p gateway.CreatePaymentLinkParams) (entity.PaymentLink, error) {
	if err := c.ready(); err != nil {
		return entity.PaymentLink{}, err
	}
	params := &stripe.PaymentLinkParams{
		Params: stripe.Params{Metadata: p.Metadata},
	}
	for _, li := range p.LineItems {
		params.LineItems = append(params.LineItems, &stripe.PaymentLinkLineItemParams{
			Price:    stripe.String(li.Price),
			Quantity: stripe.Int64(li.Quantity),
		})
	}
	if p.AllowPromotionCodes != nil {
		params.AllowPromotionCodes = stripe.Bool(*p.AllowPromotionCodes)
	}
	if p.BillingAddressCollection != "" {
		params.BillingAddressCollection = stripe.String(p.BillingAddressCollection)
	}
	if p.CustomerCreation != "" {
		params.AddExtra("customer_creation", p.CustomerCreation)
	}
	pl, err := paymentlink.New(params)
	if err != nil {
		return entity.PaymentLink{}, mapErr(err)
	}
	return decode(pl.LastResponse, fromPaymentLink(pl)), nil
}

func (c client) RetrievePaymentLink(id string) (entity.PaymentLink, error) {
	if err := c.ready(); err != nil {
		return entity.PaymentLink{}, err
	}
	pl, err := paymentlink.Get(id, nil)
	if err != nil {
		return entity.PaymentLink{}, mapErr(err)
	}
	return decode(pl.LastResponse, fromPaymentLink(pl)), nil
}

func (c client) ListPaymentIntents(p gateway.ListPaymentIntentsParams) (gateway.Page[entity.PaymentIntent], error) {
	if err := c.ready(); err != nil {
		return gateway.Page[entity.PaymentIntent]{}, err
	}
	params := &stripe.PaymentIntentListParams{
		ListParams:   listParams(p.ListParams),
		CreatedRange: rangeQuery(p.Created),
	}
	if p.Customer != "" {
		params.Customer = stripe.String(p.Customer)
	}
	iter := paymentintent.List(params)
	page := collectPage(p.Limit, func() (entity.PaymentIntent, bool) {
		if !iter.Next() {
			return entity.PaymentIntent{}, false
		}
		return fromPaymentIntent(iter.PaymentIntent()), true
	})
	if err := iter.Err(); err != nil {
		return gateway.Page[entity.PaymentIntent]{}, mapErr(err)
	}
	return page, nil
}

func (c client) RetrievePaymentIntent(id string) (entity.PaymentIntent, error) {
	if err := c.ready(); err != nil {
		return entity.PaymentIntent{}, err
	}
	pi, err := paymentintent.Get(id, nil)
	if err != nil {
		return entity.PaymentIntent{}, mapErr(err)
	}
	return decode(pi.LastResponse, fromPaymentIntent(pi)), nil
}

func (c client) CreateRefund(p gateway.CreateRefundParams) (entity.Refund, error) {
	if err := c.ready(); err != nil {
		return entity.Refund{}, err
	}
	params := &stripe.RefundParams{
		Params: stripe.Params{Metadata: p.Metadata},
	}
	if p.Charge != "" {
		params.Charge = stripe.String(p.Charge)
	}
	if p.PaymentIntent != "" {
		params.PaymentIntent = stripe.String(p.PaymentIntent)
	}
	if p.Amount != 0 {
		params.Amount = stripe.Int64(p.Amount)
	}
	if p.Reason != "" {
		params.Reason = stripe.String(p.Reason)
	}
	r, err := refund.New(params)
	if err != nil {
		return entity.Refund{}, mapErr(err)
	}
	return decode(r.LastResponse, fromRefund(r)), nil
}

func (c client) RetrieveRefund(id string) (entity.Refund, error) {
	if err := c.ready(); err != nil {
		return entity.Refund{}, err
	}
	r, err := refund.Get(id, nil)
	if err != nil {
		return entity.Refund{}, mapErr(err)
	}
	return decode(r.LastResponse, fromRefund(r)), nil
}
