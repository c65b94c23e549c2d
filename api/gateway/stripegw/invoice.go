package stripegw

import (
	stripe "github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/invoice"
	"github.com/stripe/stripe-go/v72/invoiceitem"

	"github.com/tbeaudouin05/stripe-mirror/api/entity"
	"github.com/tbeaudouin05/stripe-mirror/api/gateway"
)

func (c client) CreateInvoice(p gateway.CreateInvoiceParams) (entity.Invoice, error) {
	if err := c.ready(); err != nil {
		return entity.Invoice{}, err
	}
	params := &stripe.InvoiceParams{
		Params:   stripe.Params{Metadata: p.Metadata},
		Customer: stripe.String(p.Customer),
	}
	if p.AutoAdvance != nil {
		params.AutoAdvance = stripe.Bool(*p.AutoAdvance)
	}
	if p.CollectionMethod != "" {
		params.CollectionMethod = stripe.String(p.CollectionMethod)
	}
	if p.Description != "" {
		params.Description = stripe.String(p.Description)
	}
	if p.DueDate != 0 {
		params.DueDate = stripe.Int64(p.DueDate)
	}
	if p.DaysUntilDue != 0 {
		params.DaysUntilDue = stripe.Int64(int64(p.DaysUntilDue))
	}
	if p.Subscription != "" {
		params.Subscription = stripe.String(p.Subscription)
	}
	if p.Currency != "" {
		params.AddExtra("currency", p.Currency)
	}
	if p.Coupon != "" {
		params.AddExtra("discounts[0][coupon]", p.Coupon)
	}
	inv, err := invoice.New(params)
	if err != nil {
		return entity.Invoice{}, mapErr(err)
	}
	return decode(inv.LastResponse, fromInvoice(inv)), nil
}

func (c client) FinalizeInvoice(id string) (entity.Invoice, error) {
	if err := c.ready(); err != nil {
		return entity.Invoice{}, err
	}
	inv, err := invoice.FinalizeInvoice(id, nil)
	if err != nil {
		return entity.Invoice{}, mapErr(err)
	}
	return decode(inv.LastResponse, fromInvoice(inv)), nil
}

func (c client) ListInvoices(p gateway.ListInvoicesParams) (gateway.Page[entity.Invoice], error) {
	if err := c.ready(); err != nil {
		return gateway.Page[entity.Invoice]{}, err
	}
	params := &stripe.InvoiceListParams{
		ListParams:   listParams(p.ListParams),
		CreatedRange: rangeQuery(p.Created),
	}
	if p.Customer != "" {
		params.Customer = stripe.String(p.Customer)
	}
	if p.Subscription != "" {
		params.Subscription = stripe.String(p.Subscription)
	}
	if p.Status != "" {
		params.Status = stripe.String(p.Status)
	}
	iter := invoice.List(params)
	page := collectPage(p.Limit, func() (entity.Invoice, bool) {
		if !iter.Next() {
			return entity.Invoice{}, false
		}
		return fromInvoice(iter.Invoice()), true
	})
	if err := iter.Err(); err != nil {
		return gateway.Page[entity.Invoice]{}, mapErr(err)
	}
	return page, nil
}

func (c client) RetrieveInvoice(id string) (entity.Invoice, error) {
	if err := c.ready(); err != nil {
		return entity.Invoice{}, err
	}
	inv, err := invoice.Get(id, nil)
	if err != nil {
		return entity.Invoice{}, mapErr(err)
	}
	return decode(inv.LastResponse, fromInvoice(inv)), nil
}

func (c client) CreateInvoiceItem(p gateway.CreateInvoiceItemParams) (entity.InvoiceItem, error) {
	if err := c.ready(); err != nil {
		return entity.InvoiceItem{}, err
	}
	params := &stripe.InvoiceItemParams{
		Params:   stripe.Params{Metadata: p.Metadata},
		Customer: stripe.String(p.Customer),
	}
	if p.Amount != 0 {
		params.Amount = stripe.Int64(p.Amount)
	}
	if p.Currency != "" {
		params.Currency = stripe.String(p.Currency)
	}
	if p.Description != "" {
		params.Description = stripe.String(p.Description)
	}
	if p.Invoice != "" {
		params.Invoice = stripe.String(p.Invoice)
	}
	if p.Price != "" {
		params.Price = stripe.String(p.Price)
	}
	if p.Quantity != 0 {
		params.Quantity = stripe.Int64(p.Quantity)
	}
	if p.Subscription != "" {
		params.Subscription = stripe.String(p.Subscription)
	}
	it, err := invoiceitem.New(params)
	if err != nil {
		return entity.InvoiceItem{}, mapErr(err)
	}
	return decode(it.LastResponse, fromInvoiceItem(it)), nil
}

func (c client) RetrieveInvoiceItem(id string) (entity.InvoiceItem, error) {
	if err := c.ready(); err != nil {
		return entity.InvoiceItem{}, err
	}
	it, err := invoiceitem.Get(id, nil)
	if err != nil {
		return entity.InvoiceItem{}, mapErr(err)
	}
	return decode(it.LastResponse, fromInvoiceItem(it)), nil
}
