package sim

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbeaudouin05/stripe-mirror/api/entity"
	"github.com/tbeaudouin05/stripe-mirror/api/gateway"
)

func fixedClock() func() time.Time {
	at := time.Unix(1700000000, 0)
	return func() time.Time { return at }
}

func Test_NewID_StripeShape(t *testing.T) {
	b := New(WithSeed(42))

	cust, err := b.CreateCustomer(gateway.CreateCustomerParams{Name: "Ada"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(cust.ID, "cus_"))
	assert.Len(t, cust.ID, len("cus_")+24)

	prod, err := b.CreateProduct(gateway.CreateProductParams{Name: "Widget"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(prod.ID, "prod_"))
}

func Test_CreateCustomer_Defaults(t *testing.T) {
	b := New(WithClock(fixedClock()))
	c, err := b.CreateCustomer(gateway.CreateCustomerParams{Email: "ada@x.co"})
	require.NoError(t, err)
	assert.Equal(t, "customer", c.Object)
	assert.EqualValues(t, 1700000000, c.Created)
	assert.Equal(t, "ada@x.co", c.Email)
}

func Test_CreateCoupon_HonorsExplicitID(t *testing.T) {
	b := New()
	c, err := b.CreateCoupon(gateway.CreateCouponParams{ID: "SPRING", PercentOff: 25})
	require.NoError(t, err)
	assert.Equal(t, "SPRING", c.ID)
	assert.Equal(t, entity.CouponDurationOnce, c.Duration)
	assert.True(t, c.Valid)
}

func Test_FinalizeInvoice_DraftToOpenOnly(t *testing.T) {
	b := New()
	cust, err := b.CreateCustomer(gateway.CreateCustomerParams{})
	require.NoError(t, err)
	inv, err := b.CreateInvoice(gateway.CreateInvoiceParams{Customer: cust.ID})
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusDraft, inv.Status)

	fin, err := b.FinalizeInvoice(inv.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusOpen, fin.Status)
	assert.NotEmpty(t, fin.Number)

	// A second finalize leaves the invoice as is.
	again, err := b.FinalizeInvoice(inv.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusOpen, again.Status)
	assert.Equal(t, fin.Number, again.Number)
}

func Test_CreateInvoice_SweepsPendingItemsAndDiscounts(t *testing.T) {
	b := New()
	cust, err := b.CreateCustomer(gateway.CreateCustomerParams{})
	require.NoError(t, err)
	_, err = b.CreateInvoiceItem(gateway.CreateInvoiceItemParams{Customer: cust.ID, Currency: "usd", Amount: 1000})
	require.NoError(t, err)
	_, err = b.CreateInvoiceItem(gateway.CreateInvoiceItemParams{Customer: cust.ID, Currency: "usd", Amount: 500})
	require.NoError(t, err)
	_, err = b.CreateCoupon(gateway.CreateCouponParams{ID: "QUARTER", PercentOff: 25, Duration: entity.CouponDurationOnce})
	require.NoError(t, err)

	inv, err := b.CreateInvoice(gateway.CreateInvoiceParams{Customer: cust.ID, Coupon: "QUARTER"})
	require.NoError(t, err)
	assert.EqualValues(t, 1500, inv.Subtotal)
	// 25% of 1500 = 375 off.
	assert.EqualValues(t, 1125, inv.Total)
	assert.EqualValues(t, 1125, inv.AmountDue)

	// The swept items now reference the invoice.
	swept := b.State().InvoiceItems.Find(func(it entity.InvoiceItem) bool { return it.Invoice == inv.ID })
	assert.Len(t, swept, 2)
}

func Test_CouponDiscount_Truncation(t *testing.T) {
	// 33.3% of 999 is 332.667; integer totals truncate toward zero.
	c := entity.Coupon{PercentOff: 33.3}
	assert.EqualValues(t, 332, couponDiscount(999, c))

	amountOff := entity.Coupon{AmountOff: 2000}
	assert.EqualValues(t, 1500, couponDiscount(1500, amountOff))
}

func Test_UpdateDispute_NotFound(t *testing.T) {
	b := New()
	_, err := b.UpdateDispute("dp_missing", gateway.UpdateDisputeParams{Submit: true})
	require.Error(t, err)
	assert.True(t, errors.Is(err, gateway.ErrNotFound))
}

func Test_SeedDispute_SubmitMovesToReview(t *testing.T) {
	b := New()
	d := b.SeedDispute("ch_1", 2500, "usd")
	assert.Equal(t, "needs_response", d.Status)

	updated, err := b.UpdateDispute(d.ID, gateway.UpdateDisputeParams{Submit: true})
	require.NoError(t, err)
	assert.Equal(t, "under_review", updated.Status)
}

func Test_ListCustomers_FilterAndPagination(t *testing.T) {
	b := New(WithSeed(7))
	for i := 0; i < 5; i++ {
		_, err := b.CreateCustomer(gateway.CreateCustomerParams{Email: "bulk@x.co"})
		require.NoError(t, err)
	}
	_, err := b.CreateCustomer(gateway.CreateCustomerParams{Email: "other@x.co"})
	require.NoError(t, err)

	page, err := b.ListCustomers(gateway.ListCustomersParams{
		ListParams: gateway.ListParams{Limit: 3},
		Email:      "bulk@x.co",
	})
	require.NoError(t, err)
	assert.Len(t, page.Data, 3)
	assert.True(t, page.HasMore)
	require.NotEmpty(t, page.NextCursor)

	rest, err := b.ListCustomers(gateway.ListCustomersParams{
		ListParams: gateway.ListParams{Limit: 3, StartingAfter: page.NextCursor},
		Email:      "bulk@x.co",
	})
	require.NoError(t, err)
	assert.Len(t, rest.Data, 2)
	assert.False(t, rest.HasMore)
}

func Test_CreatePrice_InlineProductData(t *testing.T) {
	b := New()
	amount := int64(990)
	price, err := b.CreatePrice(gateway.CreatePriceParams{
		Currency:    "eur",
		UnitAmount:  &amount,
		ProductData: &gateway.ProductData{Name: "Inline"},
		Recurring:   &gateway.RecurringPrice{Interval: "month"},
	})
	require.NoError(t, err)
	assert.Equal(t, "recurring", price.Type)
	assert.Equal(t, "990", price.UnitAmountDecimal)
	require.NotEmpty(t, price.Product)

	prod, err := b.RetrieveProduct(price.Product)
	require.NoError(t, err)
	assert.Equal(t, "Inline", prod.Name)
}

func Test_CancelSubscription_KeptRemotelyButExcludedFromDefaultList(t *testing.T) {
	b := New()
	cust, err := b.CreateCustomer(gateway.CreateCustomerParams{})
	require.NoError(t, err)
	sub, err := b.SeedSubscription(cust.ID, "")
	require.NoError(t, err)

	canceled, err := b.CancelSubscription(sub.ID, gateway.CancelSubscriptionParams{})
	require.NoError(t, err)
	assert.Equal(t, entity.SubscriptionStatusCanceled, canceled.Status)

	// Still retrievable, like the real service.
	got, err := b.RetrieveSubscription(sub.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.SubscriptionStatusCanceled, got.Status)

	// But the default list omits it.
	page, err := b.ListSubscriptions(gateway.ListSubscriptionsParams{})
	require.NoError(t, err)
	assert.Empty(t, page.Data)

	all, err := b.ListSubscriptions(gateway.ListSubscriptionsParams{Status: "all"})
	require.NoError(t, err)
	assert.Len(t, all.Data, 1)
}

func Test_CreateRefund_DefaultsToIntentAmount(t *testing.T) {
	b := New()
	pi := b.SeedPaymentIntent("cus_1", 4200, "usd")

	r, err := b.CreateRefund(gateway.CreateRefundParams{PaymentIntent: pi.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 4200, r.Amount)
	assert.Equal(t, "usd", r.Currency)
	assert.Equal(t, "succeeded", r.Status)
}

func Test_ListSubscriptions_FiltersByPrice(t *testing.T) {
	b := New()
	cust, err := b.CreateCustomer(gateway.CreateCustomerParams{})
	require.NoError(t, err)
	amount := int64(990)
	priceA, err := b.CreatePrice(gateway.CreatePriceParams{
		Currency:    "usd",
		UnitAmount:  &amount,
		ProductData: &gateway.ProductData{Name: "Plan A"},
		Recurring:   &gateway.RecurringPrice{Interval: "month"},
	})
	require.NoError(t, err)
	priceB, err := b.CreatePrice(gateway.CreatePriceParams{
		Currency:    "usd",
		UnitAmount:  &amount,
		ProductData: &gateway.ProductData{Name: "Plan B"},
		Recurring:   &gateway.RecurringPrice{Interval: "month"},
	})
	require.NoError(t, err)

	onA, err := b.SeedSubscription(cust.ID, priceA.ID)
	require.NoError(t, err)
	_, err = b.SeedSubscription(cust.ID, priceB.ID)
	require.NoError(t, err)

	page, err := b.ListSubscriptions(gateway.ListSubscriptionsParams{Price: priceA.ID})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, onA.ID, page.Data[0].ID)
}

func Test_Search_ReturnsEverythingOfKind(t *testing.T) {
	b := New()
	_, err := b.CreateCustomer(gateway.CreateCustomerParams{Email: "a@x.co"})
	require.NoError(t, err)
	_, err = b.CreateCustomer(gateway.CreateCustomerParams{Email: "b@x.co"})
	require.NoError(t, err)

	page, err := b.Search(entity.KindCustomer, `email:"a@x.co"`, gateway.SearchParams{})
	require.NoError(t, err)
	assert.Len(t, page.Data, 2)
	assert.EqualValues(t, 2, page.TotalCount)

	_, err = b.Search(entity.KindRefund, "anything", gateway.SearchParams{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, gateway.ErrUnsupportedKind))
}

func Test_GetAccount_SingletonIsStable(t *testing.T) {
	b := New()
	first, err := b.GetAccount()
	require.NoError(t, err)
	second, err := b.GetAccount()
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, strings.HasPrefix(first.ID, "acct_"))
}
