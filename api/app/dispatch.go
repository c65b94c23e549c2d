package app

import (
	"fmt"
	"log/slog"

	"github.com/tbeaudouin05/stripe-mirror/api/entity"
	"github.com/tbeaudouin05/stripe-mirror/api/gateway"
	"github.com/tbeaudouin05/stripe-mirror/api/metrics"
)

// syncPageLimit is the page size SyncAll requests per collection kind.
const syncPageLimit = 100

// searchableKinds is the closed set of kinds the search endpoint indexes.
var searchableKinds = map[entity.Kind]bool{
	entity.KindCustomer:      true,
	entity.KindInvoice:       true,
	entity.KindPaymentIntent: true,
	entity.KindPrice:         true,
	entity.KindProduct:       true,
	entity.KindSubscription:  true,
}

// Fetch retrieves one resource by kind token and id and refreshes its
// cached copy. The token is validated before any backend call; account and
// balance route to the singleton retrievals and ignore the id.
func (s serviceImpl) Fetch(kindToken, id string) (entity.Object, error) {
	kind, ok := entity.ParseKind(kindToken)
	if !ok {
		return nil, fmt.Errorf("%w: %q", gateway.ErrUnsupportedKind, kindToken)
	}
	switch kind {
	case entity.KindAccount:
		return s.GetAccount()
	case entity.KindBalance:
		return s.GetBalance()
	case entity.KindCoupon:
		return cacheOp(s, "fetch", func() (entity.Coupon, error) {
			return s.backend.RetrieveCoupon(id)
		}, s.store.Coupons)
	case entity.KindCustomer:
		return cacheOp(s, "fetch", func() (entity.Customer, error) {
			return s.backend.RetrieveCustomer(id)
		}, s.store.Customers)
	case entity.KindDispute:
		return cacheOp(s, "fetch", func() (entity.Dispute, error) {
			return s.backend.RetrieveDispute(id)
		}, s.store.Disputes)
	case entity.KindInvoice:
		return cacheOp(s, "fetch", func() (entity.Invoice, error) {
			return s.backend.RetrieveInvoice(id)
		}, s.store.Invoices)
	case entity.KindInvoiceItem:
		return cacheOp(s, "fetch", func() (entity.InvoiceItem, error) {
			return s.backend.RetrieveInvoiceItem(id)
		}, s.store.InvoiceItems)
	case entity.KindPaymentLink:
		return cacheOp(s, "fetch", func() (entity.PaymentLink, error) {
			return s.backend.RetrievePaymentLink(id)
		}, s.store.PaymentLinks)
	case entity.KindPaymentIntent:
		return cacheOp(s, "fetch", func() (entity.PaymentIntent, error) {
			return s.backend.RetrievePaymentIntent(id)
		}, s.store.PaymentIntents)
	case entity.KindPrice:
		return cacheOp(s, "fetch", func() (entity.Price, error) {
			return s.backend.RetrievePrice(id)
		}, s.store.Prices)
	case entity.KindProduct:
		return cacheOp(s, "fetch", func() (entity.Product, error) {
			return s.backend.RetrieveProduct(id)
		}, s.store.Products)
	case entity.KindRefund:
		return cacheOp(s, "fetch", func() (entity.Refund, error) {
			return s.backend.RetrieveRefund(id)
		}, s.store.Refunds)
	case entity.KindSubscription:
		return cacheOp(s, "fetch", func() (entity.Subscription, error) {
			return s.backend.RetrieveSubscription(id)
		}, s.store.Subscriptions)
	}
	return nil, fmt.Errorf("%w: %q", gateway.ErrUnsupportedKind, kindToken)
}

// Search runs the backend's query language over one searchable kind.
// Results go back to the caller without entering the cache; a successful
// round-trip still refreshes lastSync.
func (s serviceImpl) Search(kindToken, query string, p gateway.SearchParams) (gateway.SearchPage, error) {
	kind, ok := entity.ParseKind(kindToken)
	if !ok || !searchableKinds[kind] {
		return gateway.SearchPage{}, fmt.Errorf("%w: search over %q", gateway.ErrUnsupportedKind, kindToken)
	}
	page, err := s.backend.Search(kind, query, p)
	metrics.Observe(string(kind), "search", err)
	if err != nil {
		slog.Error("backend call failed", "resource", kind, "op", "search", "err", err)
		return gateway.SearchPage{}, err
	}
	s.store.Touch()
	return page, nil
}

// SyncAll refreshes the whole cache: account, balance, then every listable
// collection kind in a fixed order. There is no cross-kind atomicity; a
// midway failure returns the counts synced so far along with the error.
func (s serviceImpl) SyncAll() (map[entity.Kind]int, error) {
	counts := make(map[entity.Kind]int)

	if _, err := s.GetAccount(); err != nil {
		return counts, fmt.Errorf("sync %s: %w", entity.KindAccount, err)
	}
	if _, err := s.GetBalance(); err != nil {
		return counts, fmt.Errorf("sync %s: %w", entity.KindBalance, err)
	}

	lp := gateway.ListParams{Limit: syncPageLimit}
	steps := []struct {
		kind entity.Kind
		run  func() error
	}{
		{entity.KindCoupon, func() error {
			_, err := s.ListCoupons(gateway.ListCouponsParams{ListParams: lp})
			return err
		}},
		{entity.KindCustomer, func() error {
			_, err := s.ListCustomers(gateway.ListCustomersParams{ListParams: lp})
			return err
		}},
		{entity.KindDispute, func() error {
			_, err := s.ListDisputes(gateway.ListDisputesParams{ListParams: lp})
			return err
		}},
		{entity.KindInvoice, func() error {
			_, err := s.ListInvoices(gateway.ListInvoicesParams{ListParams: lp})
			return err
		}},
		{entity.KindPaymentIntent, func() error {
			_, err := s.ListPaymentIntents(gateway.ListPaymentIntentsParams{ListParams: lp})
			return err
		}},
		{entity.KindPrice, func() error {
			_, err := s.ListPrices(gateway.ListPricesParams{ListParams: lp})
			return err
		}},
		{entity.KindProduct, func() error {
			_, err := s.ListProducts(gateway.ListProductsParams{ListParams: lp})
			return err
		}},
		{entity.KindSubscription, func() error {
			_, err := s.ListSubscriptions(gateway.ListSubscriptionsParams{ListParams: lp})
			return err
		}},
	}
	for _, step := range steps {
		if err := step.run(); err != nil {
			return counts, fmt.Errorf("sync %s: %w", step.kind, err)
		}
		counts[step.kind] = s.store.Count(step.kind)
	}
	slog.Info("full sync complete", "kinds", len(counts))
	return counts, nil
}
