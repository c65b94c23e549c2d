package stripegw

import (
	"fmt"

	stripe "github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/customer"
	"github.com/stripe/stripe-go/v72/invoice"
	"github.com/stripe/stripe-go/v72/paymentintent"
	"github.com/stripe/stripe-go/v72/price"
	"github.com/stripe/stripe-go/v72/product"
	"github.com/stripe/stripe-go/v72/sub"

	"github.com/tbeaudouin05/stripe-mirror/api/entity"
	"github.com/tbeaudouin05/stripe-mirror/api/gateway"
)

func searchParams(query string, p gateway.SearchParams) stripe.SearchParams {
	sp := stripe.SearchParams{Query: query}
	if p.Limit > 0 {
		sp.Limit = stripe.Int64(int64(p.Limit))
	}
	if p.Page != "" {
		sp.Page = stripe.String(p.Page)
	}
	return sp
}

// Search dispatches one query to the kind's search endpoint. Only the kinds
// Stripe indexes are searchable; the rest fail before any network call.
func (c client) Search(kind entity.Kind, query string, p gateway.SearchParams) (gateway.SearchPage, error) {
	if err := c.ready(); err != nil {
		return gateway.SearchPage{}, err
	}
	var next func() (entity.Object, bool)
	var iterErr func() error
	switch kind {
	case entity.KindCustomer:
		iter := customer.Search(&stripe.CustomerSearchParams{SearchParams: searchParams(query, p)})
		next = func() (entity.Object, bool) {
			if !iter.Next() {
				return nil, false
			}
			return fromCustomer(iter.Customer()), true
		}
		iterErr = iter.Err
	case entity.KindInvoice:
		iter := invoice.Search(&stripe.InvoiceSearchParams{SearchParams: searchParams(query, p)})
		next = func() (entity.Object, bool) {
			if !iter.Next() {
				return nil, false
			}
			return fromInvoice(iter.Invoice()), true
		}
		iterErr = iter.Err
	case entity.KindPaymentIntent:
		iter := paymentintent.Search(&stripe.PaymentIntentSearchParams{SearchParams: searchParams(query, p)})
		next = func() (entity.Object, bool) {
			if !iter.Next() {
				return nil, false
			}
			return fromPaymentIntent(iter.PaymentIntent()), true
		}
		iterErr = iter.Err
	case entity.KindPrice:
		iter := price.Search(&stripe.PriceSearchParams{SearchParams: searchParams(query, p)})
		next = func() (entity.Object, bool) {
			if !iter.Next() {
				return nil, false
			}
			return fromPrice(iter.Price()), true
		}
		iterErr = iter.Err
	case entity.KindProduct:
		iter := product.Search(&stripe.ProductSearchParams{SearchParams: searchParams(query, p)})
		next = func() (entity.Object, bool) {
			if !iter.Next() {
				return nil, false
			}
			return fromProduct(iter.Product()), true
		}
		iterErr = iter.Err
	case entity.KindSubscription:
		iter := sub.Search(&stripe.SubscriptionSearchParams{SearchParams: searchParams(query, p)})
		next = func() (entity.Object, bool) {
			if !iter.Next() {
				return nil, false
			}
			return fromSubscription(iter.Subscription()), true
		}
		iterErr = iter.Err
	default:
		return gateway.SearchPage{}, fmt.Errorf("%w: search over %s", gateway.ErrUnsupportedKind, kind)
	}

	limit := p.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	var page gateway.SearchPage
	for {
		obj, ok := next()
		if !ok {
			break
		}
		if len(page.Data) == limit {
			page.HasMore = true
			break
		}
		page.Data = append(page.Data, obj)
	}
	if err := iterErr(); err != nil {
		return gateway.SearchPage{}, mapErr(err)
	}
	page.TotalCount = int64(len(page.Data))
	return page, nil
}
