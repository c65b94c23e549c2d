// Package store implements the in-memory cache of Stripe entities: one
// keyed collection per resource kind plus the account and balance
// singletons. The store never talks to a backend; entities only enter it as
// the result of a gateway operation.
package store

import (
	"sync"
	"time"

	"github.com/tbeaudouin05/stripe-mirror/api/entity"
)

// DefaultAPIVersion is the Stripe API version recorded on a fresh store.
const DefaultAPIVersion = "2023-10-16"

// Store holds all cached state. Collections are exported so callers reach
// them directly; singletons and bookkeeping go through accessors because
// they share a lock.
type Store struct {
	Coupons        *Collection[entity.Coupon]
	Customers      *Collection[entity.Customer]
	Disputes       *Collection[entity.Dispute]
	Invoices       *Collection[entity.Invoice]
	InvoiceItems   *Collection[entity.InvoiceItem]
	PaymentLinks   *Collection[entity.PaymentLink]
	PaymentIntents *Collection[entity.PaymentIntent]
	Prices         *Collection[entity.Price]
	Products       *Collection[entity.Product]
	Refunds        *Collection[entity.Refund]
	Subscriptions  *Collection[entity.Subscription]

	mu         sync.RWMutex
	account    *entity.Account
	balance    *entity.Balance
	apiVersion string
	livemode   bool
	lastSync   int64
}

func New() *Store {
	return &Store{
		Coupons:        NewCollection[entity.Coupon](),
		Customers:      NewCollection[entity.Customer](),
		Disputes:       NewCollection[entity.Dispute](),
		Invoices:       NewCollection[entity.Invoice](),
		InvoiceItems:   NewCollection[entity.InvoiceItem](),
		PaymentLinks:   NewCollection[entity.PaymentLink](),
		PaymentIntents: NewCollection[entity.PaymentIntent](),
		Prices:         NewCollection[entity.Price](),
		Products:       NewCollection[entity.Product](),
		Refunds:        NewCollection[entity.Refund](),
		Subscriptions:  NewCollection[entity.Subscription](),
		apiVersion:     DefaultAPIVersion,
	}
}

func (s *Store) SetAccount(a entity.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.account = &a
}

func (s *Store) Account() (entity.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.account == nil {
		return entity.Account{}, false
	}
	return *s.account, true
}

func (s *Store) SetBalance(b entity.Balance) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balance = &b
}

func (s *Store) Balance() (entity.Balance, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.balance == nil {
		return entity.Balance{}, false
	}
	return *s.balance, true
}

func (s *Store) APIVersion() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.apiVersion
}

func (s *Store) SetAPIVersion(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apiVersion = v
}

func (s *Store) Livemode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.livemode
}

func (s *Store) SetLivemode(live bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.livemode = live
}

// Touch records "now" as the last successful backend sync. It only moves
// forward; a stale clock never rolls it back.
func (s *Store) Touch() {
	now := time.Now().Unix()
	s.mu.Lock()
	defer s.mu.Unlock()
	if now > s.lastSync {
		s.lastSync = now
	}
}

// LastSync returns the epoch second of the last backend-touching operation,
// and false if nothing has synced yet.
func (s *Store) LastSync() (int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastSync, s.lastSync != 0
}

// Stats counts every collection kind. Singletons are not counted.
func (s *Store) Stats() map[entity.Kind]int {
	stats := make(map[entity.Kind]int, len(entity.CollectionKinds))
	for _, k := range entity.CollectionKinds {
		stats[k] = s.Count(k)
	}
	return stats
}

// Count returns the size of one collection kind, or 0 for singleton kinds.
func (s *Store) Count(k entity.Kind) int {
	switch k {
	case entity.KindCoupon:
		return s.Coupons.Len()
	case entity.KindCustomer:
		return s.Customers.Len()
	case entity.KindDispute:
		return s.Disputes.Len()
	case entity.KindInvoice:
		return s.Invoices.Len()
	case entity.KindInvoiceItem:
		return s.InvoiceItems.Len()
	case entity.KindPaymentLink:
		return s.PaymentLinks.Len()
	case entity.KindPaymentIntent:
		return s.PaymentIntents.Len()
	case entity.KindPrice:
		return s.Prices.Len()
	case entity.KindProduct:
		return s.Products.Len()
	case entity.KindRefund:
		return s.Refunds.Len()
	case entity.KindSubscription:
		return s.Subscriptions.Len()
	}
	return 0
}

// ListKind returns the snapshot of one collection kind as Objects, for
// callers that dispatch on kind tokens. Singleton kinds return nil.
func (s *Store) ListKind(k entity.Kind) []entity.Object {
	switch k {
	case entity.KindCoupon:
		return asObjects(s.Coupons.List())
	case entity.KindCustomer:
		return asObjects(s.Customers.List())
	case entity.KindDispute:
		return asObjects(s.Disputes.List())
	case entity.KindInvoice:
		return asObjects(s.Invoices.List())
	case entity.KindInvoiceItem:
		return asObjects(s.InvoiceItems.List())
	case entity.KindPaymentLink:
		return asObjects(s.PaymentLinks.List())
	case entity.KindPaymentIntent:
		return asObjects(s.PaymentIntents.List())
	case entity.KindPrice:
		return asObjects(s.Prices.List())
	case entity.KindProduct:
		return asObjects(s.Products.List())
	case entity.KindRefund:
		return asObjects(s.Refunds.List())
	case entity.KindSubscription:
		return asObjects(s.Subscriptions.List())
	}
	return nil
}

func asObjects[E entity.Object](items []E) []entity.Object {
	out := make([]entity.Object, len(items))
	for i, e := range items {
		out[i] = e
	}
	return out
}

// ClearAll empties every collection and both singletons. The recorded API
// version stays, and lastSync is never rolled back.
func (s *Store) ClearAll() {
	s.Coupons.Clear()
	s.Customers.Clear()
	s.Disputes.Clear()
	s.Invoices.Clear()
	s.InvoiceItems.Clear()
	s.PaymentLinks.Clear()
	s.PaymentIntents.Clear()
	s.Prices.Clear()
	s.Products.Clear()
	s.Refunds.Clear()
	s.Subscriptions.Clear()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.account = nil
	s.balance = nil
}
