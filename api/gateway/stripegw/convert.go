package stripegw

import (
	"encoding/json"

	"github.com/shopspring/decimal"
	stripe "github.com/stripe/stripe-go/v72"

	"github.com/tbeaudouin05/stripe-mirror/api/entity"
)

// decode prefers the raw wire payload of a single-resource response, which
// preserves fields the typed SDK struct does not model (they land in the
// entity's Extra bag). When no raw payload is attached, or it does not
// parse, the hand-mapped fallback wins.
func decode[E any](res *stripe.APIResponse, fallback E) E {
	if res == nil || len(res.RawJSON) == 0 {
		return fallback
	}
	var e E
	if err := json.Unmarshal(res.RawJSON, &e); err != nil {
		return fallback
	}
	return e
}

// Hand converters cover iterator items, where the SDK attaches no raw
// payload. Expandable references collapse to their ids.

func fromAccount(a *stripe.Account) entity.Account {
	return entity.Account{
		ID:               a.ID,
		Object:           string(entity.KindAccount),
		BusinessType:     string(a.BusinessType),
		ChargesEnabled:   a.ChargesEnabled,
		Country:          a.Country,
		Created:          a.Created,
		DefaultCurrency:  string(a.DefaultCurrency),
		DetailsSubmitted: a.DetailsSubmitted,
		Email:            a.Email,
		PayoutsEnabled:   a.PayoutsEnabled,
		Type:             string(a.Type),
		Metadata:         a.Metadata,
	}
}

func fromBalance(b *stripe.Balance) entity.Balance {
	return entity.Balance{
		Object:    string(entity.KindBalance),
		Available: fromAmounts(b.Available),
		Pending:   fromAmounts(b.Pending),
		Livemode:  b.Livemode,
	}
}

func fromAmounts(in []*stripe.Amount) []entity.BalanceAmount {
	out := make([]entity.BalanceAmount, 0, len(in))
	for _, a := range in {
		if a == nil {
			continue
		}
		sourceTypes := make(map[string]int64, len(a.SourceTypes))
		for k, v := range a.SourceTypes {
			sourceTypes[string(k)] = v
		}
		out = append(out, entity.BalanceAmount{
			Amount:      a.Value,
			Currency:    string(a.Currency),
			SourceTypes: sourceTypes,
		})
	}
	return out
}

func fromCoupon(c *stripe.Coupon) entity.Coupon {
	return entity.Coupon{
		ID:               c.ID,
		Object:           string(entity.KindCoupon),
		AmountOff:        c.AmountOff,
		Created:          c.Created,
		Currency:         string(c.Currency),
		Duration:         string(c.Duration),
		DurationInMonths: int(c.DurationInMonths),
		Livemode:         c.Livemode,
		MaxRedemptions:   int(c.MaxRedemptions),
		Metadata:         c.Metadata,
		Name:             c.Name,
		PercentOff:       c.PercentOff,
		TimesRedeemed:    int(c.TimesRedeemed),
		Valid:            c.Valid,
	}
}

func fromCustomer(c *stripe.Customer) entity.Customer {
	out := entity.Customer{
		ID:          c.ID,
		Object:      string(entity.KindCustomer),
		Balance:     c.Balance,
		Created:     c.Created,
		Currency:    string(c.Currency),
		Delinquent:  c.Delinquent,
		Description: c.Description,
		Email:       c.Email,
		Livemode:    c.Livemode,
		Metadata:    c.Metadata,
		Name:        c.Name,
		Phone:       c.Phone,
	}
	if c.Address.Line1 != "" || c.Address.Country != "" || c.Address.City != "" {
		addr := entity.Address{
			Line1:      c.Address.Line1,
			Line2:      c.Address.Line2,
			City:       c.Address.City,
			State:      c.Address.State,
			PostalCode: c.Address.PostalCode,
			Country:    c.Address.Country,
		}
		out.Address = &addr
	}
	return out
}

func fromDispute(d *stripe.Dispute) entity.Dispute {
	out := entity.Dispute{
		ID:                 d.ID,
		Object:             string(entity.KindDispute),
		Amount:             d.Amount,
		Created:            d.Created,
		Currency:           string(d.Currency),
		IsChargeRefundable: d.IsChargeRefundable,
		Livemode:           d.Livemode,
		Metadata:           d.Metadata,
		Reason:             string(d.Reason),
		Status:             string(d.Status),
	}
	if d.Charge != nil {
		out.Charge = d.Charge.ID
	}
	if d.PaymentIntent != nil {
		out.PaymentIntent = d.PaymentIntent.ID
	}
	return out
}

func fromInvoice(in *stripe.Invoice) entity.Invoice {
	out := entity.Invoice{
		ID:               in.ID,
		Object:           string(entity.KindInvoice),
		AccountCountry:   in.AccountCountry,
		AccountName:      in.AccountName,
		AmountDue:        in.AmountDue,
		AmountPaid:       in.AmountPaid,
		AmountRemaining:  in.AmountRemaining,
		AttemptCount:     int(in.AttemptCount),
		Attempted:        in.Attempted,
		AutoAdvance:      in.AutoAdvance,
		Created:          in.Created,
		Currency:         string(in.Currency),
		Description:      in.Description,
		HostedInvoiceURL: in.HostedInvoiceURL,
		InvoicePDF:       in.InvoicePDF,
		Livemode:         in.Livemode,
		Metadata:         in.Metadata,
		Number:           in.Number,
		Paid:             in.Paid,
		Status:           string(in.Status),
		Subtotal:         in.Subtotal,
		Total:            in.Total,
	}
	if in.CollectionMethod != nil {
		out.CollectionMethod = string(*in.CollectionMethod)
	}
	if in.Customer != nil {
		out.Customer = in.Customer.ID
	}
	if in.Subscription != nil {
		out.Subscription = in.Subscription.ID
	}
	return out
}

func fromInvoiceItem(it *stripe.InvoiceItem) entity.InvoiceItem {
	out := entity.InvoiceItem{
		ID:          it.ID,
		Object:      string(entity.KindInvoiceItem),
		Amount:      it.Amount,
		Currency:    string(it.Currency),
		Date:        it.Date,
		Description: it.Description,
		Livemode:    it.Livemode,
		Metadata:    it.Metadata,
		Proration:   it.Proration,
		Quantity:    it.Quantity,
	}
	if it.Customer != nil {
		out.Customer = it.Customer.ID
	}
	if it.Invoice != nil {
		out.Invoice = it.Invoice.ID
	}
	if it.Subscription != nil {
		out.Subscription = it.Subscription.ID
	}
	return out
}

func fromPaymentLink(pl *stripe.PaymentLink) entity.PaymentLink {
	return entity.PaymentLink{
		ID:                       pl.ID,
		Object:                   string(entity.KindPaymentLink),
		Active:                   pl.Active,
		AllowPromotionCodes:      pl.AllowPromotionCodes,
		BillingAddressCollection: string(pl.BillingAddressCollection),
		Livemode:                 pl.Livemode,
		Metadata:                 pl.Metadata,
		URL:                      pl.URL,
	}
}

func fromPaymentIntent(pi *stripe.PaymentIntent) entity.PaymentIntent {
	out := entity.PaymentIntent{
		ID:                 pi.ID,
		Object:             string(entity.KindPaymentIntent),
		Amount:             pi.Amount,
		AmountReceived:     pi.AmountReceived,
		CaptureMethod:      string(pi.CaptureMethod),
		ClientSecret:       pi.ClientSecret,
		ConfirmationMethod: string(pi.ConfirmationMethod),
		Created:            pi.Created,
		Currency:           string(pi.Currency),
		Description:        pi.Description,
		Livemode:           pi.Livemode,
		Metadata:           pi.Metadata,
		Status:             string(pi.Status),
	}
	if pi.Customer != nil {
		out.Customer = pi.Customer.ID
	}
	if pi.Invoice != nil {
		out.Invoice = pi.Invoice.ID
	}
	if pi.PaymentMethod != nil {
		out.PaymentMethod = pi.PaymentMethod.ID
	}
	return out
}

func fromPrice(p *stripe.Price) entity.Price {
	out := entity.Price{
		ID:            p.ID,
		Object:        string(entity.KindPrice),
		Active:        p.Active,
		BillingScheme: string(p.BillingScheme),
		Created:       p.Created,
		Currency:      string(p.Currency),
		Livemode:      p.Livemode,
		LookupKey:     p.LookupKey,
		Metadata:      p.Metadata,
		Nickname:      p.Nickname,
		Type:          string(p.Type),
		UnitAmount:    p.UnitAmount,
	}
	if p.UnitAmountDecimal != 0 {
		out.UnitAmountDecimal = decimal.NewFromFloat(p.UnitAmountDecimal).String()
	}
	if p.Product != nil {
		out.Product = p.Product.ID
	}
	if p.Recurring != nil {
		out.Recurring = map[string]any{
			"interval":       string(p.Recurring.Interval),
			"interval_count": p.Recurring.IntervalCount,
			"usage_type":     string(p.Recurring.UsageType),
		}
	}
	return out
}

func fromProduct(p *stripe.Product) entity.Product {
	return entity.Product{
		ID:                  p.ID,
		Object:              string(entity.KindProduct),
		Active:              p.Active,
		Created:             p.Created,
		Description:         p.Description,
		Images:              p.Images,
		Livemode:            p.Livemode,
		Metadata:            p.Metadata,
		Name:                p.Name,
		Shippable:           p.Shippable,
		StatementDescriptor: p.StatementDescriptor,
		Type:                string(p.Type),
		UnitLabel:           p.UnitLabel,
		Updated:             p.Updated,
		URL:                 p.URL,
	}
}

func fromRefund(r *stripe.Refund) entity.Refund {
	out := entity.Refund{
		ID:       r.ID,
		Object:   string(entity.KindRefund),
		Amount:   r.Amount,
		Created:  r.Created,
		Currency: string(r.Currency),
		Metadata: r.Metadata,
		Reason:   string(r.Reason),
		Status:   string(r.Status),
	}
	if r.Charge != nil {
		out.Charge = r.Charge.ID
	}
	if r.PaymentIntent != nil {
		out.PaymentIntent = r.PaymentIntent.ID
	}
	return out
}

func fromSubscription(s *stripe.Subscription) entity.Subscription {
	out := entity.Subscription{
		ID:                 s.ID,
		Object:             string(entity.KindSubscription),
		CancelAtPeriodEnd:  s.CancelAtPeriodEnd,
		Created:            s.Created,
		CurrentPeriodEnd:   s.CurrentPeriodEnd,
		CurrentPeriodStart: s.CurrentPeriodStart,
		Livemode:           s.Livemode,
		Metadata:           s.Metadata,
		StartDate:          s.StartDate,
		Status:             string(s.Status),
	}
	if s.Customer != nil {
		out.Customer = s.Customer.ID
	}
	return out
}
