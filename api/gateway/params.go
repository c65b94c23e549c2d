package gateway

import "github.com/tbeaudouin05/stripe-mirror/api/entity"

// Parameter structs mirror the Stripe request shapes the gateway accepts.
// Zero values mean "not set"; pointers are used only where a caller must be
// able to send an explicit false/zero (tri-state fields).

// ListParams carries the pagination controls common to every list call.
type ListParams struct {
	Limit         int    `json:"limit,omitempty"`
	StartingAfter string `json:"starting_after,omitempty"`
	EndingBefore  string `json:"ending_before,omitempty"`
}

// CreatedRange filters by creation timestamp (epoch seconds).
type CreatedRange struct {
	GT  int64 `json:"gt,omitempty"`
	GTE int64 `json:"gte,omitempty"`
	LT  int64 `json:"lt,omitempty"`
	LTE int64 `json:"lte,omitempty"`
}

// Matches reports whether a creation timestamp falls inside the range.
func (r *CreatedRange) Matches(created int64) bool {
	if r == nil {
		return true
	}
	if r.GT != 0 && created <= r.GT {
		return false
	}
	if r.GTE != 0 && created < r.GTE {
		return false
	}
	if r.LT != 0 && created >= r.LT {
		return false
	}
	if r.LTE != 0 && created > r.LTE {
		return false
	}
	return true
}

type CreateCouponParams struct {
	Duration         string            `json:"duration"`
	ID               string            `json:"id,omitempty"`
	AmountOff        int64             `json:"amount_off,omitempty"`
	PercentOff       float64           `json:"percent_off,omitempty"`
	Currency         string            `json:"currency,omitempty"`
	DurationInMonths int               `json:"duration_in_months,omitempty"`
	MaxRedemptions   int               `json:"max_redemptions,omitempty"`
	Name             string            `json:"name,omitempty"`
	Metadata         map[string]string `json:"metadata,omitempty"`
}

type ListCouponsParams struct {
	ListParams
	Created *CreatedRange `json:"created,omitempty"`
}

type CreateCustomerParams struct {
	Email         string            `json:"email,omitempty"`
	Name          string            `json:"name,omitempty"`
	Description   string            `json:"description,omitempty"`
	Phone         string            `json:"phone,omitempty"`
	Address       *entity.Address   `json:"address,omitempty"`
	PaymentMethod string            `json:"payment_method,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

type ListCustomersParams struct {
	ListParams
	Email   string        `json:"email,omitempty"`
	Created *CreatedRange `json:"created,omitempty"`
}

type ListDisputesParams struct {
	ListParams
	Charge        string        `json:"charge,omitempty"`
	PaymentIntent string        `json:"payment_intent,omitempty"`
	Created       *CreatedRange `json:"created,omitempty"`
}

type UpdateDisputeParams struct {
	Evidence map[string]string `json:"evidence,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
	Submit   bool              `json:"submit,omitempty"`
}

type CreateInvoiceParams struct {
	Customer         string            `json:"customer"`
	AutoAdvance      *bool             `json:"auto_advance,omitempty"`
	CollectionMethod string            `json:"collection_method,omitempty"`
	Description      string            `json:"description,omitempty"`
	DueDate          int64             `json:"due_date,omitempty"`
	Currency         string            `json:"currency,omitempty"`
	DaysUntilDue     int               `json:"days_until_due,omitempty"`
	Coupon           string            `json:"coupon,omitempty"`
	Metadata         map[string]string `json:"metadata,omitempty"`
	Subscription     string            `json:"subscription,omitempty"`
}

type CreateInvoiceItemParams struct {
	Customer     string            `json:"customer"`
	Currency     string            `json:"currency"`
	Amount       int64             `json:"amount,omitempty"`
	Description  string            `json:"description,omitempty"`
	Invoice      string            `json:"invoice,omitempty"`
	Price        string            `json:"price,omitempty"`
	Quantity     int64             `json:"quantity,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
	Subscription string            `json:"subscription,omitempty"`
}

type ListInvoicesParams struct {
	ListParams
	Customer     string        `json:"customer,omitempty"`
	Subscription string        `json:"subscription,omitempty"`
	Status       string        `json:"status,omitempty"`
	Created      *CreatedRange `json:"created,omitempty"`
}

type PaymentLinkLineItem struct {
	Price    string `json:"price"`
	Quantity int64  `json:"quantity"`
}

type CreatePaymentLinkParams struct {
	LineItems                []PaymentLinkLineItem `json:"line_items"`
	AllowPromotionCodes      *bool                 `json:"allow_promotion_codes,omitempty"`
	BillingAddressCollection string                `json:"billing_address_collection,omitempty"`
	Currency                 string                `json:"currency,omitempty"`
	CustomerCreation         string                `json:"customer_creation,omitempty"`
	Metadata                 map[string]string     `json:"metadata,omitempty"`
}

type ListPaymentIntentsParams struct {
	ListParams
	Customer string        `json:"customer,omitempty"`
	Created  *CreatedRange `json:"created,omitempty"`
}

type RecurringPrice struct {
	Interval      string `json:"interval"`
	IntervalCount int64  `json:"interval_count,omitempty"`
	UsageType     string `json:"usage_type,omitempty"`
}

type ProductData struct {
	Name     string            `json:"name"`
	Active   *bool             `json:"active,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

type CreatePriceParams struct {
	Currency      string            `json:"currency"`
	Product       string            `json:"product,omitempty"`
	UnitAmount    *int64            `json:"unit_amount,omitempty"`
	Active        *bool             `json:"active,omitempty"`
	BillingScheme string            `json:"billing_scheme,omitempty"`
	LookupKey     string            `json:"lookup_key,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
	Nickname      string            `json:"nickname,omitempty"`
	ProductData   *ProductData      `json:"product_data,omitempty"`
	Recurring     *RecurringPrice   `json:"recurring,omitempty"`
}

type ListPricesParams struct {
	ListParams
	Product  string        `json:"product,omitempty"`
	Active   *bool         `json:"active,omitempty"`
	Currency string        `json:"currency,omitempty"`
	Type     string        `json:"type,omitempty"`
	Created  *CreatedRange `json:"created,omitempty"`
}

type DefaultPriceData struct {
	Currency   string          `json:"currency"`
	UnitAmount int64           `json:"unit_amount,omitempty"`
	Recurring  *RecurringPrice `json:"recurring,omitempty"`
}

type CreateProductParams struct {
	Name                string            `json:"name"`
	Active              *bool             `json:"active,omitempty"`
	Description         string            `json:"description,omitempty"`
	DefaultPriceData    *DefaultPriceData `json:"default_price_data,omitempty"`
	Images              []string          `json:"images,omitempty"`
	Metadata            map[string]string `json:"metadata,omitempty"`
	Shippable           *bool             `json:"shippable,omitempty"`
	StatementDescriptor string            `json:"statement_descriptor,omitempty"`
	UnitLabel           string            `json:"unit_label,omitempty"`
	URL                 string            `json:"url,omitempty"`
}

type ListProductsParams struct {
	ListParams
	Active    *bool         `json:"active,omitempty"`
	IDs       []string      `json:"ids,omitempty"`
	Shippable *bool         `json:"shippable,omitempty"`
	URL       string        `json:"url,omitempty"`
	Created   *CreatedRange `json:"created,omitempty"`
}

type CreateRefundParams struct {
	Charge        string            `json:"charge,omitempty"`
	PaymentIntent string            `json:"payment_intent,omitempty"`
	Amount        int64             `json:"amount,omitempty"`
	Reason        string            `json:"reason,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

type CancellationDetails struct {
	Comment  string `json:"comment,omitempty"`
	Feedback string `json:"feedback,omitempty"`
}

type CancelSubscriptionParams struct {
	InvoiceNow          bool                 `json:"invoice_now,omitempty"`
	Prorate             bool                 `json:"prorate,omitempty"`
	CancellationDetails *CancellationDetails `json:"cancellation_details,omitempty"`
}

type ListSubscriptionsParams struct {
	ListParams
	Customer string        `json:"customer,omitempty"`
	Price    string        `json:"price,omitempty"`
	Status   string        `json:"status,omitempty"`
	Created  *CreatedRange `json:"created,omitempty"`
}

type UpdateSubscriptionParams struct {
	CancelAtPeriodEnd    *bool             `json:"cancel_at_period_end,omitempty"`
	DefaultPaymentMethod string            `json:"default_payment_method,omitempty"`
	Metadata             map[string]string `json:"metadata,omitempty"`
	ProrationBehavior    string            `json:"proration_behavior,omitempty"`
	TrialEnd             int64             `json:"trial_end,omitempty"`
}

// SearchParams carries the pagination controls for search calls.
type SearchParams struct {
	Limit int    `json:"limit,omitempty"`
	Page  string `json:"page,omitempty"`
}
