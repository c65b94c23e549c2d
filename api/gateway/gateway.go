// Package gateway defines the collaborator boundary: the Backend interface
// every remote (or simulated) Stripe implementation satisfies, the typed
// request parameters, and the shared error sentinels. The app layer depends
// only on this package; which implementation sits behind it is the caller's
// explicit choice at construction time.
package gateway

import "github.com/tbeaudouin05/stripe-mirror/api/entity"

// Page is one page of a list call. NextCursor is the id to pass as
// starting_after to continue.
type Page[E entity.Object] struct {
	Data       []E    `json:"data"`
	HasMore    bool   `json:"has_more"`
	NextCursor string `json:"next_cursor,omitempty"`
}

// SearchPage is the result envelope of a search call. Search results are
// returned to the caller but never cached.
type SearchPage struct {
	Data       []entity.Object `json:"data"`
	HasMore    bool            `json:"has_more"`
	TotalCount int64           `json:"total_count,omitempty"`
}

// Backend abstracts the Stripe operations the app layer needs, one method
// family per resource kind. Implementations: stripegw (live SDK) and sim
// (local simulation). Methods return values, not pointers, to keep the
// boundary free of shared mutable state.
type Backend interface {
	GetAccount() (entity.Account, error)
	GetBalance() (entity.Balance, error)

	CreateCoupon(p CreateCouponParams) (entity.Coupon, error)
	ListCoupons(p ListCouponsParams) (Page[entity.Coupon], error)
	RetrieveCoupon(id string) (entity.Coupon, error)

	CreateCustomer(p CreateCustomerParams) (entity.Customer, error)
	ListCustomers(p ListCustomersParams) (Page[entity.Customer], error)
	RetrieveCustomer(id string) (entity.Customer, error)

	ListDisputes(p ListDisputesParams) (Page[entity.Dispute], error)
	UpdateDispute(id string, p UpdateDisputeParams) (entity.Dispute, error)
	RetrieveDispute(id string) (entity.Dispute, error)

	CreateInvoice(p CreateInvoiceParams) (entity.Invoice, error)
	FinalizeInvoice(id string) (entity.Invoice, error)
	ListInvoices(p ListInvoicesParams) (Page[entity.Invoice], error)
	RetrieveInvoice(id string) (entity.Invoice, error)

	CreateInvoiceItem(p CreateInvoiceItemParams) (entity.InvoiceItem, error)
	RetrieveInvoiceItem(id string) (entity.InvoiceItem, error)

	CreatePaymentLink(p CreatePaymentLinkParams) (entity.PaymentLink, error)
	RetrievePaymentLink(id string) (entity.PaymentLink, error)

	ListPaymentIntents(p ListPaymentIntentsParams) (Page[entity.PaymentIntent], error)
	RetrievePaymentIntent(id string) (entity.PaymentIntent, error)

	CreatePrice(p CreatePriceParams) (entity.Price, error)
	ListPrices(p ListPricesParams) (Page[entity.Price], error)
	RetrievePrice(id string) (entity.Price, error)

	CreateProduct(p CreateProductParams) (entity.Product, error)
	ListProducts(p ListProductsParams) (Page[entity.Product], error)
	RetrieveProduct(id string) (entity.Product, error)

	CreateRefund(p CreateRefundParams) (entity.Refund, error)
	RetrieveRefund(id string) (entity.Refund, error)

	CancelSubscription(id string, p CancelSubscriptionParams) (entity.Subscription, error)
	UpdateSubscription(id string, p UpdateSubscriptionParams) (entity.Subscription, error)
	ListSubscriptions(p ListSubscriptionsParams) (Page[entity.Subscription], error)
	RetrieveSubscription(id string) (entity.Subscription, error)

	// Search runs the backend's query language over one resource kind.
	// The simulation degrades to returning everything of that kind.
	Search(kind entity.Kind, query string, p SearchParams) (SearchPage, error)
}
