package sim

import (
	"github.com/tbeaudouin05/stripe-mirror/api/entity"
	"github.com/tbeaudouin05/stripe-mirror/api/gateway"
)

func (b *Backend) CreatePaymentLink(p gateway.CreatePaymentLinkParams) (entity.PaymentLink, error) {
	currency := p.Currency
	for _, li := range p.LineItems {
		price, ok := b.state.Prices.Get(li.Price)
		if !ok {
			return entity.PaymentLink{}, notFoundErr(entity.KindPrice, li.Price)
		}
		if currency == "" {
			currency = price.Currency
		}
	}

	link := entity.PaymentLink{
		ID:                       b.newID(entity.KindPaymentLink),
		Object:                   string(entity.KindPaymentLink),
		Active:                   true,
		BillingAddressCollection: p.BillingAddressCollection,
		Currency:                 currency,
		CustomerCreation:         p.CustomerCreation,
		Metadata:                 p.Metadata,
	}
	if p.AllowPromotionCodes != nil {
		link.AllowPromotionCodes = *p.AllowPromotionCodes
	}
	if link.CustomerCreation == "" {
		link.CustomerCreation = "if_required"
	}
	link.URL = "https://pay.sim.local/" + link.ID

	b.state.PaymentLinks.Upsert(link)
	return link, nil
}

func (b *Backend) RetrievePaymentLink(id string) (entity.PaymentLink, error) {
	link, ok := b.state.PaymentLinks.Get(id)
	if !ok {
		return entity.PaymentLink{}, notFoundErr(entity.KindPaymentLink, id)
	}
	return link, nil
}

// SeedPaymentIntent plants a succeeded payment intent for a customer. The
// gateway has no create operation for intents, so simulated payments enter
// through here.
func (b *Backend) SeedPaymentIntent(customer string, amount int64, currency string) entity.PaymentIntent {
	pi := entity.PaymentIntent{
		ID:                 b.newID(entity.KindPaymentIntent),
		Object:             string(entity.KindPaymentIntent),
		Amount:             amount,
		AmountReceived:     amount,
		CaptureMethod:      "automatic",
		ConfirmationMethod: "automatic",
		Created:            b.timestamp(),
		Currency:           currency,
		Customer:           customer,
		Status:             "succeeded",
	}
	b.state.PaymentIntents.Upsert(pi)
	return pi
}

func (b *Backend) ListPaymentIntents(p gateway.ListPaymentIntentsParams) (gateway.Page[entity.PaymentIntent], error) {
	matches := b.state.PaymentIntents.Find(func(pi entity.PaymentIntent) bool {
		if p.Customer != "" && pi.Customer != p.Customer {
			return false
		}
		return p.Created.Matches(pi.Created)
	})
	return paginate(matches, p.ListParams), nil
}

func (b *Backend) RetrievePaymentIntent(id string) (entity.PaymentIntent, error) {
	pi, ok := b.state.PaymentIntents.Get(id)
	if !ok {
		return entity.PaymentIntent{}, notFoundErr(entity.KindPaymentIntent, id)
	}
	return pi, nil
}

// CreateRefund refunds a payment intent (or bare charge reference). The
// refunded amount defaults to the intent's full amount.
func (b *Backend) CreateRefund(p gateway.CreateRefundParams) (entity.Refund, error) {
	amount := p.Amount
	currency := "usd"
	if p.PaymentIntent != "" {
		pi, ok := b.state.PaymentIntents.Get(p.PaymentIntent)
		if !ok {
			return entity.Refund{}, notFoundErr(entity.KindPaymentIntent, p.PaymentIntent)
		}
		if amount == 0 {
			amount = pi.Amount
		}
		currency = pi.Currency
	}

	r := entity.Refund{
		ID:            b.newID(entity.KindRefund),
		Object:        string(entity.KindRefund),
		Amount:        amount,
		Charge:        p.Charge,
		Created:       b.timestamp(),
		Currency:      currency,
		Metadata:      p.Metadata,
		PaymentIntent: p.PaymentIntent,
		Reason:        p.Reason,
		Status:        "succeeded",
	}
	b.state.Refunds.Upsert(r)
	return r, nil
}

func (b *Backend) RetrieveRefund(id string) (entity.Refund, error) {
	r, ok := b.state.Refunds.Get(id)
	if !ok {
		return entity.Refund{}, notFoundErr(entity.KindRefund, id)
	}
	return r, nil
}
