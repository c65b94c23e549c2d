package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbeaudouin05/stripe-mirror/api/entity"
	"github.com/tbeaudouin05/stripe-mirror/api/gateway"
	"github.com/tbeaudouin05/stripe-mirror/api/gateway/sim"
	"github.com/tbeaudouin05/stripe-mirror/api/store"
)

func newSimService(t *testing.T) (Service, *sim.Backend, *store.Store) {
	t.Helper()
	backend := sim.New(sim.WithSeed(1))
	st := store.New()
	return NewService(backend, st), backend, st
}

var errBoom = errors.New("boom")

// failingBackend fails every call it overrides; the embedded nil Backend
// panics on anything else, which doubles as a "was not called" assertion.
type failingBackend struct{ gateway.Backend }

func (failingBackend) CreateCustomer(gateway.CreateCustomerParams) (entity.Customer, error) {
	return entity.Customer{}, errBoom
}

func (failingBackend) GetBalance() (entity.Balance, error) {
	return entity.Balance{}, errBoom
}

func (failingBackend) ListCoupons(gateway.ListCouponsParams) (gateway.Page[entity.Coupon], error) {
	return gateway.Page[entity.Coupon]{}, errBoom
}

func (failingBackend) GetAccount() (entity.Account, error) {
	return entity.Account{}, errBoom
}

// softCancelBackend simulates a deferred cancellation: the subscription
// comes back still active with cancel_at_period_end set.
type softCancelBackend struct{ *sim.Backend }

func (b softCancelBackend) CancelSubscription(id string, _ gateway.CancelSubscriptionParams) (entity.Subscription, error) {
	sub, err := b.Backend.RetrieveSubscription(id)
	if err != nil {
		return entity.Subscription{}, err
	}
	sub.CancelAtPeriodEnd = true
	return sub, nil
}

func Test_CreateThenFetch_RefreshesCache(t *testing.T) {
	svc, _, st := newSimService(t)

	created, err := svc.CreateCustomer(gateway.CreateCustomerParams{Email: "ada@x.co", Name: "Ada"})
	require.NoError(t, err)

	cached, ok := st.Customers.Get(created.ID)
	require.True(t, ok)
	assert.Equal(t, created, cached)

	fetched, err := svc.Fetch("customer", created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.EntityID())
	assert.Equal(t, entity.KindCustomer, fetched.EntityKind())
}

func Test_Fetch_SingletonRouting(t *testing.T) {
	svc, _, st := newSimService(t)

	obj, err := svc.Fetch("balance", "")
	require.NoError(t, err)
	assert.Equal(t, entity.KindBalance, obj.EntityKind())
	_, ok := st.Balance()
	assert.True(t, ok)

	acct, err := svc.Fetch("account", "ignored")
	require.NoError(t, err)
	assert.Equal(t, entity.KindAccount, acct.EntityKind())
}

func Test_Fetch_UnsupportedKindBeforeBackend(t *testing.T) {
	// A nil backend proves the token is rejected before any call.
	svc := NewService(nil, store.New())

	_, err := svc.Fetch("charge", "ch_123")
	require.Error(t, err)
	assert.True(t, errors.Is(err, gateway.ErrUnsupportedKind))

	_, err = svc.Search("charge", "total>999", gateway.SearchParams{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, gateway.ErrUnsupportedKind))

	// Searchable set is narrower than the kind enumeration.
	_, err = svc.Search("refund", "anything", gateway.SearchParams{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, gateway.ErrUnsupportedKind))
}

func Test_CancelSubscription_EvictsTerminal(t *testing.T) {
	svc, backend, st := newSimService(t)

	cust, err := svc.CreateCustomer(gateway.CreateCustomerParams{})
	require.NoError(t, err)
	sub, err := backend.SeedSubscription(cust.ID, "")
	require.NoError(t, err)

	_, err = svc.ListSubscriptions(gateway.ListSubscriptionsParams{})
	require.NoError(t, err)
	require.Equal(t, 1, st.Subscriptions.Len())

	canceled, err := svc.CancelSubscription(sub.ID, gateway.CancelSubscriptionParams{})
	require.NoError(t, err)
	assert.Equal(t, entity.SubscriptionStatusCanceled, canceled.Status)
	assert.Equal(t, 0, st.Subscriptions.Len())
}

func Test_CancelSubscription_KeepsNonTerminal(t *testing.T) {
	backend := sim.New(sim.WithSeed(2))
	st := store.New()
	svc := NewService(softCancelBackend{backend}, st)

	cust, err := backend.CreateCustomer(gateway.CreateCustomerParams{})
	require.NoError(t, err)
	sub, err := backend.SeedSubscription(cust.ID, "")
	require.NoError(t, err)

	got, err := svc.CancelSubscription(sub.ID, gateway.CancelSubscriptionParams{})
	require.NoError(t, err)
	assert.Equal(t, entity.SubscriptionStatusActive, got.Status)
	assert.True(t, got.CancelAtPeriodEnd)

	cached, ok := st.Subscriptions.Get(sub.ID)
	require.True(t, ok)
	assert.True(t, cached.CancelAtPeriodEnd)
}

func Test_SyncAll_CountsMatchStats(t *testing.T) {
	svc, backend, st := newSimService(t)

	// Seed remote-side state directly.
	_, err := backend.CreateCustomer(gateway.CreateCustomerParams{Email: "a@x.co"})
	require.NoError(t, err)
	prod, err := backend.CreateProduct(gateway.CreateProductParams{Name: "Widget"})
	require.NoError(t, err)
	amount := int64(500)
	_, err = backend.CreatePrice(gateway.CreatePriceParams{Currency: "usd", Product: prod.ID, UnitAmount: &amount})
	require.NoError(t, err)
	backend.SeedDispute("ch_1", 100, "usd")

	counts, err := svc.SyncAll()
	require.NoError(t, err)

	stats := st.Stats()
	for kind, n := range counts {
		assert.Equal(t, stats[kind], n, string(kind))
	}
	assert.Equal(t, 1, counts[entity.KindCustomer])
	assert.Equal(t, 1, counts[entity.KindProduct])
	assert.Equal(t, 1, counts[entity.KindPrice])
	assert.Equal(t, 1, counts[entity.KindDispute])

	_, ok := st.Account()
	assert.True(t, ok)
	_, ok = st.Balance()
	assert.True(t, ok)
	_, ok = st.LastSync()
	assert.True(t, ok)
}

func Test_SyncAll_FailureReturnsPartialCounts(t *testing.T) {
	st := store.New()
	svc := NewService(failingBackend{}, st)

	_, err := svc.SyncAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, errBoom)
}

func Test_StoreUntouchedOnBackendFailure(t *testing.T) {
	st := store.New()
	svc := NewService(failingBackend{}, st)

	_, err := svc.CreateCustomer(gateway.CreateCustomerParams{Email: "x@x.co"})
	require.Error(t, err)
	assert.Equal(t, 0, st.Customers.Len())
	_, ok := st.LastSync()
	assert.False(t, ok)
}

func Test_LastSync_RefreshedOnSuccess(t *testing.T) {
	svc, _, st := newSimService(t)
	_, ok := st.LastSync()
	require.False(t, ok)

	_, err := svc.CreateCoupon(gateway.CreateCouponParams{ID: "WELCOME", PercentOff: 10})
	require.NoError(t, err)

	_, ok = st.LastSync()
	assert.True(t, ok)
}

func Test_Search_ResultsNotCached(t *testing.T) {
	svc, backend, st := newSimService(t)
	_, err := backend.CreateCustomer(gateway.CreateCustomerParams{Email: "a@x.co"})
	require.NoError(t, err)

	page, err := svc.Search("customer", `email:"a@x.co"`, gateway.SearchParams{})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)

	assert.Equal(t, 0, st.Customers.Len())
	_, ok := st.LastSync()
	assert.True(t, ok)
}

func Test_TestConnection(t *testing.T) {
	svc, _, st := newSimService(t)
	assert.True(t, svc.TestConnection())
	// Probing does not write the balance singleton.
	_, ok := st.Balance()
	assert.False(t, ok)

	failing := NewService(failingBackend{}, store.New())
	assert.False(t, failing.TestConnection())
}

func Test_FinalizeInvoice_CachesOpenCopy(t *testing.T) {
	svc, backend, st := newSimService(t)
	cust, err := backend.CreateCustomer(gateway.CreateCustomerParams{})
	require.NoError(t, err)

	inv, err := svc.CreateInvoice(gateway.CreateInvoiceParams{Customer: cust.ID})
	require.NoError(t, err)
	cached, ok := st.Invoices.Get(inv.ID)
	require.True(t, ok)
	assert.Equal(t, entity.InvoiceStatusDraft, cached.Status)

	_, err = svc.FinalizeInvoice(inv.ID)
	require.NoError(t, err)
	cached, ok = st.Invoices.Get(inv.ID)
	require.True(t, ok)
	assert.Equal(t, entity.InvoiceStatusOpen, cached.Status)
}
