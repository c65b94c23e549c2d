// Package stripegw implements gateway.Backend on the official Stripe SDK.
// The SDK key is process-global, set once during bootstrap; every method
// checks it lazily so a missing key surfaces as gateway.ErrConfiguration on
// first use instead of failing construction.
package stripegw

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	stripe "github.com/stripe/stripe-go/v72"

	"github.com/tbeaudouin05/stripe-mirror/api/entity"
	"github.com/tbeaudouin05/stripe-mirror/api/gateway"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// SetKey configures the Stripe SDK key once during bootstrap.
func SetKey(key string) { stripe.Key = key }

// Configure tunes the SDK transport: request timeout and network retries.
// The configured STRIPE_API_VERSION is deliberately not forwarded here: the
// SDK pins the API version its response types were generated against, and
// overriding it per request would desynchronize decoding. The configured
// version is recorded as store bookkeeping only.
func Configure(timeout time.Duration, maxNetworkRetries int64) {
	stripe.SetBackend(stripe.APIBackend, stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		HTTPClient:        &http.Client{Timeout: timeout},
		MaxNetworkRetries: stripe.Int64(maxNetworkRetries),
	}))
}

// client is the Stripe SDK-backed implementation of the gateway.
type client struct{}

// New returns a gateway.Backend backed by the official Stripe SDK.
func New() gateway.Backend { return client{} }

func (client) ready() error {
	if stripe.Key == "" {
		return fmt.Errorf("%w: missing Stripe secret key", gateway.ErrConfiguration)
	}
	return nil
}

// mapErr rewrites SDK errors so callers can match sentinels: a missing
// resource becomes gateway.ErrNotFound, everything else passes through as a
// collaborator failure.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	var sErr *stripe.Error
	if errors.As(err, &sErr) {
		if sErr.Code == stripe.ErrorCodeResourceMissing || sErr.HTTPStatusCode == http.StatusNotFound {
			return fmt.Errorf("%w: %s", gateway.ErrNotFound, sErr.Msg)
		}
	}
	return err
}

func listParams(p gateway.ListParams) stripe.ListParams {
	lp := stripe.ListParams{}
	if p.Limit > 0 {
		lp.Limit = stripe.Int64(int64(p.Limit))
	}
	if p.StartingAfter != "" {
		lp.StartingAfter = stripe.String(p.StartingAfter)
	}
	if p.EndingBefore != "" {
		lp.EndingBefore = stripe.String(p.EndingBefore)
	}
	return lp
}

func rangeQuery(r *gateway.CreatedRange) *stripe.RangeQueryParams {
	if r == nil {
		return nil
	}
	return &stripe.RangeQueryParams{
		GreaterThan:        r.GT,
		GreaterThanOrEqual: r.GTE,
		LesserThan:         r.LT,
		LesserThanOrEqual:  r.LTE,
	}
}

// collectPage drains an SDK iterator into at most limit items. The SDK
// auto-paginates, so asking for one item past the limit tells us whether
// more exist without trusting page metadata.
func collectPage[E entity.Object](limit int, next func() (E, bool)) gateway.Page[E] {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	var page gateway.Page[E]
	for {
		e, ok := next()
		if !ok {
			break
		}
		if len(page.Data) == limit {
			page.HasMore = true
			break
		}
		page.Data = append(page.Data, e)
	}
	if page.HasMore && len(page.Data) > 0 {
		page.NextCursor = page.Data[len(page.Data)-1].EntityID()
	}
	return page
}
