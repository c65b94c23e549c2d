package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbeaudouin05/stripe-mirror/api/entity"
)

func Test_Collection_UpsertOverwrites(t *testing.T) {
	s := New()
	s.Customers.Upsert(entity.Customer{ID: "cus_1", Email: "old@x.co"})
	s.Customers.Upsert(entity.Customer{ID: "cus_1", Email: "new@x.co"})

	assert.Equal(t, 1, s.Customers.Len())
	c, ok := s.Customers.Get("cus_1")
	require.True(t, ok)
	assert.Equal(t, "new@x.co", c.Email)
	// Whole-object overwrite: the old value contributes nothing.
	assert.Zero(t, c.Balance)
}

func Test_Collection_RemoveIsIdempotent(t *testing.T) {
	s := New()
	s.Subscriptions.Upsert(entity.Subscription{ID: "sub_1"})

	assert.True(t, s.Subscriptions.Remove("sub_1"))
	assert.False(t, s.Subscriptions.Remove("sub_1"))
	assert.False(t, s.Subscriptions.Remove("sub_never"))
	assert.Equal(t, 0, s.Subscriptions.Len())
}

func Test_Collection_ListSortedSnapshot(t *testing.T) {
	s := New()
	s.Products.Upsert(entity.Product{ID: "prod_b"})
	s.Products.Upsert(entity.Product{ID: "prod_a"})

	list := s.Products.List()
	require.Len(t, list, 2)
	assert.Equal(t, "prod_a", list[0].ID)
	assert.Equal(t, "prod_b", list[1].ID)

	// Mutating the store after List does not change the returned slice.
	s.Products.Upsert(entity.Product{ID: "prod_c"})
	assert.Len(t, list, 2)
}

func Test_Collection_Find(t *testing.T) {
	s := New()
	s.Invoices.Upsert(entity.Invoice{ID: "in_1", Customer: "cus_1", Status: entity.InvoiceStatusDraft})
	s.Invoices.Upsert(entity.Invoice{ID: "in_2", Customer: "cus_2", Status: entity.InvoiceStatusOpen})
	s.Invoices.Upsert(entity.Invoice{ID: "in_3", Customer: "cus_1", Status: entity.InvoiceStatusOpen})

	mine := s.Invoices.Find(func(i entity.Invoice) bool { return i.Customer == "cus_1" })
	require.Len(t, mine, 2)
	assert.Equal(t, "in_1", mine[0].ID)
	assert.Equal(t, "in_3", mine[1].ID)
}

func Test_Store_StatsCountsCollectionsOnly(t *testing.T) {
	s := New()
	s.SetAccount(entity.Account{ID: "acct_1"})
	s.SetBalance(entity.Balance{Object: "balance"})
	s.Customers.Upsert(entity.Customer{ID: "cus_1"})
	s.Prices.Upsert(entity.Price{ID: "price_1"})
	s.Prices.Upsert(entity.Price{ID: "price_2"})

	stats := s.Stats()
	assert.Len(t, stats, len(entity.CollectionKinds))
	assert.Equal(t, 1, stats[entity.KindCustomer])
	assert.Equal(t, 2, stats[entity.KindPrice])
	assert.Equal(t, 0, stats[entity.KindRefund])
	_, hasAccount := stats[entity.KindAccount]
	assert.False(t, hasAccount)
}

func Test_Store_ClearAllKeepsVersionAndSync(t *testing.T) {
	s := New()
	s.SetAPIVersion("2023-10-16")
	s.SetAccount(entity.Account{ID: "acct_1"})
	s.Coupons.Upsert(entity.Coupon{ID: "coupon_1"})
	s.Touch()
	before, ok := s.LastSync()
	require.True(t, ok)

	s.ClearAll()

	assert.Equal(t, 0, s.Coupons.Len())
	_, ok = s.Account()
	assert.False(t, ok)
	_, ok = s.Balance()
	assert.False(t, ok)
	assert.Equal(t, "2023-10-16", s.APIVersion())
	after, ok := s.LastSync()
	require.True(t, ok)
	assert.GreaterOrEqual(t, after, before)
}

func Test_Store_LastSyncUnsetUntilTouch(t *testing.T) {
	s := New()
	_, ok := s.LastSync()
	assert.False(t, ok)

	s.Touch()
	ts, ok := s.LastSync()
	require.True(t, ok)
	assert.NotZero(t, ts)
}

func Test_Store_ListKindDispatch(t *testing.T) {
	s := New()
	s.Refunds.Upsert(entity.Refund{ID: "re_1"})

	objs := s.ListKind(entity.KindRefund)
	require.Len(t, objs, 1)
	assert.Equal(t, "re_1", objs[0].EntityID())
	assert.Nil(t, s.ListKind(entity.KindBalance))
}

func Test_Store_Snapshot(t *testing.T) {
	s := New()
	s.SetBalance(entity.Balance{Object: "balance", Livemode: false})
	s.Disputes.Upsert(entity.Dispute{ID: "dp_1", Status: "needs_response"})

	snap := s.Snapshot()
	require.NotNil(t, snap.Balance)
	assert.Contains(t, snap.Disputes, "dp_1")
	assert.Nil(t, snap.Account)
	assert.Equal(t, DefaultAPIVersion, snap.APIVersion)
}
