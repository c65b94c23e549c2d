package entity

// Kind identifies one of the closed set of cached Stripe resource kinds.
// The string values match the `object` discriminator Stripe puts on the
// wire, so a Kind can be compared directly against an entity's Object field.
type Kind string

const (
	KindAccount       Kind = "account"
	KindBalance       Kind = "balance"
	KindCoupon        Kind = "coupon"
	KindCustomer      Kind = "customer"
	KindDispute       Kind = "dispute"
	KindInvoice       Kind = "invoice"
	KindInvoiceItem   Kind = "invoiceitem"
	KindPaymentLink   Kind = "payment_link"
	KindPaymentIntent Kind = "payment_intent"
	KindPrice         Kind = "price"
	KindProduct       Kind = "product"
	KindRefund        Kind = "refund"
	KindSubscription  Kind = "subscription"
)

// CollectionKinds lists every kind stored as a keyed collection, in the
// fixed order used by sync and stats. Account and balance are singletons
// and deliberately absent.
var CollectionKinds = []Kind{
	KindCoupon,
	KindCustomer,
	KindDispute,
	KindInvoice,
	KindInvoiceItem,
	KindPaymentLink,
	KindPaymentIntent,
	KindPrice,
	KindProduct,
	KindRefund,
	KindSubscription,
}

var kinds = map[string]Kind{
	string(KindAccount):       KindAccount,
	string(KindBalance):       KindBalance,
	string(KindCoupon):        KindCoupon,
	string(KindCustomer):      KindCustomer,
	string(KindDispute):       KindDispute,
	string(KindInvoice):       KindInvoice,
	string(KindPaymentLink):   KindPaymentLink,
	string(KindPaymentIntent): KindPaymentIntent,
	string(KindInvoiceItem):   KindInvoiceItem,
	string(KindPrice):         KindPrice,
	string(KindProduct):       KindProduct,
	string(KindRefund):        KindRefund,
	string(KindSubscription):  KindSubscription,
}

// ParseKind resolves a resource-kind token against the closed set.
// It reports false for any token outside the enumeration; callers must
// reject such tokens before touching a backend.
func ParseKind(token string) (Kind, bool) {
	k, ok := kinds[token]
	return k, ok
}
