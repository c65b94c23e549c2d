package sim

import (
	"github.com/tbeaudouin05/stripe-mirror/api/entity"
	"github.com/tbeaudouin05/stripe-mirror/api/gateway"
)

// CreateInvoice drafts an invoice for a customer. Pending invoice items
// (those created without an invoice id, for the same customer) are swept
// onto it, and an optional coupon discounts the subtotal.
func (b *Backend) CreateInvoice(p gateway.CreateInvoiceParams) (entity.Invoice, error) {
	if _, ok := b.state.Customers.Get(p.Customer); !ok {
		return entity.Invoice{}, notFoundErr(entity.KindCustomer, p.Customer)
	}

	inv := entity.Invoice{
		ID:               b.newID(entity.KindInvoice),
		Object:           string(entity.KindInvoice),
		CollectionMethod: p.CollectionMethod,
		Created:          b.timestamp(),
		Currency:         p.Currency,
		Customer:         p.Customer,
		Description:      p.Description,
		Metadata:         p.Metadata,
		Status:           entity.InvoiceStatusDraft,
		Subscription:     p.Subscription,
	}
	if inv.CollectionMethod == "" {
		inv.CollectionMethod = "charge_automatically"
	}
	if inv.Currency == "" {
		inv.Currency = "usd"
	}
	if p.AutoAdvance != nil {
		inv.AutoAdvance = *p.AutoAdvance
	}

	pending := b.state.InvoiceItems.Find(func(it entity.InvoiceItem) bool {
		return it.Invoice == "" && it.Customer == p.Customer
	})
	var subtotal int64
	for _, it := range pending {
		it.Invoice = inv.ID
		b.state.InvoiceItems.Upsert(it)
		subtotal += it.Amount
	}
	inv.Subtotal = subtotal

	total := subtotal
	if p.Coupon != "" {
		c, ok := b.state.Coupons.Get(p.Coupon)
		if !ok {
			return entity.Invoice{}, notFoundErr(entity.KindCoupon, p.Coupon)
		}
		total -= couponDiscount(subtotal, c)
	}
	inv.Total = total
	inv.AmountDue = total
	inv.AmountRemaining = total

	b.state.Invoices.Upsert(inv)
	return inv, nil
}

// FinalizeInvoice moves a draft invoice to open. Finalizing an invoice
// that is already past draft leaves it unchanged.
func (b *Backend) FinalizeInvoice(id string) (entity.Invoice, error) {
	inv, ok := b.state.Invoices.Get(id)
	if !ok {
		return entity.Invoice{}, notFoundErr(entity.KindInvoice, id)
	}
	if inv.Status == entity.InvoiceStatusDraft {
		inv.Status = entity.InvoiceStatusOpen
		inv.Number = "SIM-" + inv.ID[len(inv.ID)-8:]
		inv.HostedInvoiceURL = "https://invoice.sim.local/" + inv.ID
		inv.InvoicePDF = "https://invoice.sim.local/" + inv.ID + "/pdf"
		b.state.Invoices.Upsert(inv)
	}
	return inv, nil
}

func (b *Backend) ListInvoices(p gateway.ListInvoicesParams) (gateway.Page[entity.Invoice], error) {
	matches := b.state.Invoices.Find(func(inv entity.Invoice) bool {
		if p.Customer != "" && inv.Customer != p.Customer {
			return false
		}
		if p.Subscription != "" && inv.Subscription != p.Subscription {
			return false
		}
		if p.Status != "" && inv.Status != p.Status {
			return false
		}
		return p.Created.Matches(inv.Created)
	})
	return paginate(matches, p.ListParams), nil
}

func (b *Backend) RetrieveInvoice(id string) (entity.Invoice, error) {
	inv, ok := b.state.Invoices.Get(id)
	if !ok {
		return entity.Invoice{}, notFoundErr(entity.KindInvoice, id)
	}
	return inv, nil
}

// CreateInvoiceItem adds a line item. Amount may come directly or from a
// price times quantity.
func (b *Backend) CreateInvoiceItem(p gateway.CreateInvoiceItemParams) (entity.InvoiceItem, error) {
	if _, ok := b.state.Customers.Get(p.Customer); !ok {
		return entity.InvoiceItem{}, notFoundErr(entity.KindCustomer, p.Customer)
	}
	if p.Invoice != "" {
		if _, ok := b.state.Invoices.Get(p.Invoice); !ok {
			return entity.InvoiceItem{}, notFoundErr(entity.KindInvoice, p.Invoice)
		}
	}

	qty := p.Quantity
	if qty <= 0 {
		qty = 1
	}
	amount := p.Amount
	currency := p.Currency
	if p.Price != "" {
		price, ok := b.state.Prices.Get(p.Price)
		if !ok {
			return entity.InvoiceItem{}, notFoundErr(entity.KindPrice, p.Price)
		}
		amount = price.UnitAmount * qty
		if currency == "" {
			currency = price.Currency
		}
	}

	it := entity.InvoiceItem{
		ID:           b.newID(entity.KindInvoiceItem),
		Object:       string(entity.KindInvoiceItem),
		Amount:       amount,
		Currency:     currency,
		Customer:     p.Customer,
		Date:         b.timestamp(),
		Description:  p.Description,
		Invoice:      p.Invoice,
		Metadata:     p.Metadata,
		Quantity:     qty,
		Subscription: p.Subscription,
	}
	b.state.InvoiceItems.Upsert(it)

	if it.Invoice != "" {
		inv, _ := b.state.Invoices.Get(it.Invoice)
		inv.Subtotal += it.Amount
		inv.Total += it.Amount
		inv.AmountDue = inv.Total
		inv.AmountRemaining = inv.Total
		b.state.Invoices.Upsert(inv)
	}
	return it, nil
}

func (b *Backend) RetrieveInvoiceItem(id string) (entity.InvoiceItem, error) {
	it, ok := b.state.InvoiceItems.Get(id)
	if !ok {
		return entity.InvoiceItem{}, notFoundErr(entity.KindInvoiceItem, id)
	}
	return it, nil
}
