// Package app implements the operation gateway: the business operations
// callers use to act on Stripe resources and keep the local cache current.
// Every operation talks to the injected gateway.Backend and applies the
// result to the injected store under the per-kind lifecycle rules.
package app

import (
	"log/slog"

	"github.com/tbeaudouin05/stripe-mirror/api/entity"
	"github.com/tbeaudouin05/stripe-mirror/api/gateway"
	"github.com/tbeaudouin05/stripe-mirror/api/metrics"
	"github.com/tbeaudouin05/stripe-mirror/api/store"
)

// Service defines the business operations for the Stripe domain.
type Service interface {
	GetAccount() (entity.Account, error)
	GetBalance() (entity.Balance, error)

	CreateCoupon(p gateway.CreateCouponParams) (entity.Coupon, error)
	ListCoupons(p gateway.ListCouponsParams) (gateway.Page[entity.Coupon], error)

	CreateCustomer(p gateway.CreateCustomerParams) (entity.Customer, error)
	ListCustomers(p gateway.ListCustomersParams) (gateway.Page[entity.Customer], error)

	ListDisputes(p gateway.ListDisputesParams) (gateway.Page[entity.Dispute], error)
	UpdateDispute(id string, p gateway.UpdateDisputeParams) (entity.Dispute, error)

	CreateInvoice(p gateway.CreateInvoiceParams) (entity.Invoice, error)
	CreateInvoiceItem(p gateway.CreateInvoiceItemParams) (entity.InvoiceItem, error)
	FinalizeInvoice(id string) (entity.Invoice, error)
	ListInvoices(p gateway.ListInvoicesParams) (gateway.Page[entity.Invoice], error)

	CreatePaymentLink(p gateway.CreatePaymentLinkParams) (entity.PaymentLink, error)
	ListPaymentIntents(p gateway.ListPaymentIntentsParams) (gateway.Page[entity.PaymentIntent], error)

	CreatePrice(p gateway.CreatePriceParams) (entity.Price, error)
	ListPrices(p gateway.ListPricesParams) (gateway.Page[entity.Price], error)

	CreateProduct(p gateway.CreateProductParams) (entity.Product, error)
	ListProducts(p gateway.ListProductsParams) (gateway.Page[entity.Product], error)

	CreateRefund(p gateway.CreateRefundParams) (entity.Refund, error)

	CancelSubscription(id string, p gateway.CancelSubscriptionParams) (entity.Subscription, error)
	UpdateSubscription(id string, p gateway.UpdateSubscriptionParams) (entity.Subscription, error)
	ListSubscriptions(p gateway.ListSubscriptionsParams) (gateway.Page[entity.Subscription], error)

	// Fetch retrieves one resource by kind token and id, refreshing the
	// cached copy. Account and balance route to the singleton retrievals.
	Fetch(kindToken, id string) (entity.Object, error)
	// Search runs the backend's query language over one searchable kind.
	// Results are returned to the caller, never cached.
	Search(kindToken, query string, p gateway.SearchParams) (gateway.SearchPage, error)
	// SyncAll refreshes the account, the balance, then every listable
	// collection kind in a fixed order. It returns the post-sync collection
	// sizes; a midway failure returns the counts synced so far.
	SyncAll() (map[entity.Kind]int, error)
	// TestConnection probes the backend with a balance retrieval. This is
	// the one place an error is downgraded to a bool.
	TestConnection() bool

	Store() *store.Store
}

// serviceImpl is a concrete implementation. The backend and store are
// injected; the service owns neither.
type serviceImpl struct {
	backend gateway.Backend
	store   *store.Store
}

func NewService(b gateway.Backend, st *store.Store) Service {
	return serviceImpl{backend: b, store: st}
}

func (s serviceImpl) Store() *store.Store { return s.store }

// GetAccount retrieves the account from the backend and refreshes the
// singleton slot.
func (s serviceImpl) GetAccount() (entity.Account, error) {
	acct, err := s.backend.GetAccount()
	metrics.Observe(string(entity.KindAccount), "retrieve", err)
	if err != nil {
		slog.Error("account retrieval failed", "err", err)
		return entity.Account{}, err
	}
	s.store.SetAccount(acct)
	s.store.Touch()
	return acct, nil
}

// GetBalance retrieves the balance from the backend and refreshes the
// singleton slot.
func (s serviceImpl) GetBalance() (entity.Balance, error) {
	bal, err := s.backend.GetBalance()
	metrics.Observe(string(entity.KindBalance), "retrieve", err)
	if err != nil {
		slog.Error("balance retrieval failed", "err", err)
		return entity.Balance{}, err
	}
	s.store.SetBalance(bal)
	s.store.Touch()
	return bal, nil
}

// TestConnection probes the backend without writing to the store.
func (s serviceImpl) TestConnection() bool {
	_, err := s.backend.GetBalance()
	if err != nil {
		slog.Warn("backend connection test failed", "err", err)
		return false
	}
	return true
}
