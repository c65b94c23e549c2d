// Package sim implements gateway.Backend without touching the network. It
// keeps its own store.Store as the "remote" state, mints Stripe-shaped
// identifiers and timestamps, and enforces the same lookup-before-mutate
// behavior a live backend would: modifying an id that was never created
// fails with gateway.ErrNotFound.
package sim

import (
	"math/rand"
	"sync"
	"time"

	"github.com/tbeaudouin05/stripe-mirror/api/entity"
	"github.com/tbeaudouin05/stripe-mirror/api/store"
)

// Backend is the simulated collaborator.
type Backend struct {
	state *store.Store
	now   func() time.Time

	mu       sync.Mutex // guards rng and subPrice
	rng      *rand.Rand
	subPrice map[string]string // subscription id -> price id, for list filtering
}

// Option customizes a simulated backend, mainly for tests.
type Option func(*Backend)

// WithClock fixes the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(b *Backend) { b.now = now }
}

// WithSeed makes identifier generation reproducible.
func WithSeed(seed int64) Option {
	return func(b *Backend) { b.rng = rand.New(rand.NewSource(seed)) }
}

func New(opts ...Option) *Backend {
	b := &Backend{
		state:    store.New(),
		now:      time.Now,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		subPrice: make(map[string]string),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// State exposes the simulator's backing store so tests and tooling can seed
// remote-side fixtures directly.
func (b *Backend) State() *store.Store { return b.state }

func (b *Backend) timestamp() int64 { return b.now().Unix() }

var idPrefixes = map[entity.Kind]string{
	entity.KindAccount:       "acct_",
	entity.KindCoupon:        "coupon_",
	entity.KindCustomer:      "cus_",
	entity.KindDispute:       "dp_",
	entity.KindInvoice:       "in_",
	entity.KindInvoiceItem:   "ii_",
	entity.KindPaymentLink:   "plink_",
	entity.KindPaymentIntent: "pi_",
	entity.KindPrice:         "price_",
	entity.KindProduct:       "prod_",
	entity.KindRefund:        "re_",
	entity.KindSubscription:  "sub_",
}

const (
	idAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	idLength   = 24
)

// newID mints a Stripe-shaped identifier: per-kind prefix plus a random
// alphanumeric suffix.
func (b *Backend) newID(k entity.Kind) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	buf := make([]byte, idLength)
	for i := range buf {
		buf[i] = idAlphabet[b.rng.Intn(len(idAlphabet))]
	}
	return idPrefixes[k] + string(buf)
}

// GetAccount returns the simulated account, creating it on first use.
func (b *Backend) GetAccount() (entity.Account, error) {
	if acct, ok := b.state.Account(); ok {
		return acct, nil
	}
	acct := entity.Account{
		ID:               b.newID(entity.KindAccount),
		Object:           string(entity.KindAccount),
		BusinessType:     "company",
		ChargesEnabled:   true,
		Country:          "US",
		Created:          b.timestamp(),
		DefaultCurrency:  "usd",
		DetailsSubmitted: true,
		PayoutsEnabled:   true,
		Type:             "standard",
	}
	b.state.SetAccount(acct)
	return acct, nil
}

// GetBalance returns the simulated balance, creating an empty one on first
// use.
func (b *Backend) GetBalance() (entity.Balance, error) {
	if bal, ok := b.state.Balance(); ok {
		return bal, nil
	}
	bal := entity.Balance{
		Object:    string(entity.KindBalance),
		Available: []entity.BalanceAmount{{Amount: 0, Currency: "usd"}},
		Pending:   []entity.BalanceAmount{{Amount: 0, Currency: "usd"}},
	}
	b.state.SetBalance(bal)
	return bal, nil
}
