package store

import "github.com/tbeaudouin05/stripe-mirror/api/entity"

// Snapshot is a JSON-serializable view of the full cache, exposed by the
// debug surface. It is a copy; mutating it does not touch the store.
type Snapshot struct {
	Account        *entity.Account                 `json:"account,omitempty"`
	Balance        *entity.Balance                 `json:"balance,omitempty"`
	Coupons        map[string]entity.Coupon        `json:"coupons"`
	Customers      map[string]entity.Customer      `json:"customers"`
	Disputes       map[string]entity.Dispute       `json:"disputes"`
	Invoices       map[string]entity.Invoice       `json:"invoices"`
	InvoiceItems   map[string]entity.InvoiceItem   `json:"invoice_items"`
	PaymentLinks   map[string]entity.PaymentLink   `json:"payment_links"`
	PaymentIntents map[string]entity.PaymentIntent `json:"payment_intents"`
	Prices         map[string]entity.Price         `json:"prices"`
	Products       map[string]entity.Product       `json:"products"`
	Refunds        map[string]entity.Refund        `json:"refunds"`
	Subscriptions  map[string]entity.Subscription  `json:"subscriptions"`
	APIVersion     string                          `json:"api_version"`
	Livemode       bool                            `json:"livemode"`
	LastSync       int64                           `json:"last_sync,omitempty"`
}

func (s *Store) Snapshot() Snapshot {
	snap := Snapshot{
		Coupons:        s.Coupons.snapshotMap(),
		Customers:      s.Customers.snapshotMap(),
		Disputes:       s.Disputes.snapshotMap(),
		Invoices:       s.Invoices.snapshotMap(),
		InvoiceItems:   s.InvoiceItems.snapshotMap(),
		PaymentLinks:   s.PaymentLinks.snapshotMap(),
		PaymentIntents: s.PaymentIntents.snapshotMap(),
		Prices:         s.Prices.snapshotMap(),
		Products:       s.Products.snapshotMap(),
		Refunds:        s.Refunds.snapshotMap(),
		Subscriptions:  s.Subscriptions.snapshotMap(),
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.account != nil {
		a := *s.account
		snap.Account = &a
	}
	if s.balance != nil {
		b := *s.balance
		snap.Balance = &b
	}
	snap.APIVersion = s.apiVersion
	snap.Livemode = s.livemode
	snap.LastSync = s.lastSync
	return snap
}
