// Package entity defines the locally-cached representations of Stripe
// resources. Field sets follow the Stripe wire shapes: amounts are integer
// minor-currency units, currencies are lowercase ISO codes, timestamps are
// epoch seconds. Every entity carries an Extra bag holding wire fields the
// struct does not model; the bag survives JSON round-trips (see json.go).
package entity

// Object is implemented by every entity variant.
type Object interface {
	// EntityKind returns the resource-kind token for the entity.
	EntityKind() Kind
	// EntityID returns the stable identifier, or "" for the balance
	// singleton which has none.
	EntityID() string
}

// Address is a postal address attached to customers.
type Address struct {
	Line1      string `json:"line1,omitempty"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"`
}

// Account is the Stripe account singleton.
type Account struct {
	ID               string            `json:"id"`
	Object           string            `json:"object"`
	BusinessType     string            `json:"business_type,omitempty"`
	ChargesEnabled   bool              `json:"charges_enabled"`
	Country          string            `json:"country"`
	Created          int64             `json:"created"`
	DefaultCurrency  string            `json:"default_currency"`
	DetailsSubmitted bool              `json:"details_submitted,omitempty"`
	Email            string            `json:"email,omitempty"`
	PayoutsEnabled   bool              `json:"payouts_enabled"`
	Type             string            `json:"type"`
	Metadata         map[string]string `json:"metadata,omitempty"`

	Extra map[string]any `json:"-"`
}

func (a Account) EntityKind() Kind { return KindAccount }
func (a Account) EntityID() string { return a.ID }

// BalanceAmount is one currency bucket of the account balance.
type BalanceAmount struct {
	Amount      int64            `json:"amount"`
	Currency    string           `json:"currency"`
	SourceTypes map[string]int64 `json:"source_types,omitempty"`
}

// Balance is the account balance singleton. It has no identifier.
type Balance struct {
	Object    string          `json:"object"`
	Available []BalanceAmount `json:"available"`
	Pending   []BalanceAmount `json:"pending"`
	Livemode  bool            `json:"livemode"`

	Extra map[string]any `json:"-"`
}

func (b Balance) EntityKind() Kind { return KindBalance }
func (b Balance) EntityID() string { return "" }

// Coupon durations.
const (
	CouponDurationForever   = "forever"
	CouponDurationOnce      = "once"
	CouponDurationRepeating = "repeating"
)

type Coupon struct {
	ID               string            `json:"id"`
	Object           string            `json:"object"`
	AmountOff        int64             `json:"amount_off,omitempty"`
	Created          int64             `json:"created"`
	Currency         string            `json:"currency,omitempty"`
	Duration         string            `json:"duration"`
	DurationInMonths int               `json:"duration_in_months,omitempty"`
	Livemode         bool              `json:"livemode"`
	MaxRedemptions   int               `json:"max_redemptions,omitempty"`
	Metadata         map[string]string `json:"metadata,omitempty"`
	Name             string            `json:"name,omitempty"`
	PercentOff       float64           `json:"percent_off,omitempty"`
	TimesRedeemed    int               `json:"times_redeemed"`
	Valid            bool              `json:"valid"`

	Extra map[string]any `json:"-"`
}

func (c Coupon) EntityKind() Kind { return KindCoupon }
func (c Coupon) EntityID() string { return c.ID }

type Customer struct {
	ID          string            `json:"id"`
	Object      string            `json:"object"`
	Address     *Address          `json:"address,omitempty"`
	Balance     int64             `json:"balance,omitempty"`
	Created     int64             `json:"created"`
	Currency    string            `json:"currency,omitempty"`
	Delinquent  bool              `json:"delinquent,omitempty"`
	Description string            `json:"description,omitempty"`
	Email       string            `json:"email,omitempty"`
	Livemode    bool              `json:"livemode"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	Name        string            `json:"name,omitempty"`
	Phone       string            `json:"phone,omitempty"`

	Extra map[string]any `json:"-"`
}

func (c Customer) EntityKind() Kind { return KindCustomer }
func (c Customer) EntityID() string { return c.ID }

type Dispute struct {
	ID                 string            `json:"id"`
	Object             string            `json:"object"`
	Amount             int64             `json:"amount"`
	Charge             string            `json:"charge"`
	Created            int64             `json:"created"`
	Currency           string            `json:"currency"`
	IsChargeRefundable bool              `json:"is_charge_refundable"`
	Livemode           bool              `json:"livemode"`
	Metadata           map[string]string `json:"metadata,omitempty"`
	PaymentIntent      string            `json:"payment_intent,omitempty"`
	Reason             string            `json:"reason"`
	Status             string            `json:"status"`

	Extra map[string]any `json:"-"`
}

func (d Dispute) EntityKind() Kind { return KindDispute }
func (d Dispute) EntityID() string { return d.ID }

// Invoice statuses. Finalization is the only store-level transition rule:
// draft -> open. Everything else is an ordinary field update.
const (
	InvoiceStatusDraft         = "draft"
	InvoiceStatusOpen          = "open"
	InvoiceStatusPaid          = "paid"
	InvoiceStatusUncollectible = "uncollectible"
	InvoiceStatusVoid          = "void"
)

type Invoice struct {
	ID               string            `json:"id"`
	Object           string            `json:"object"`
	AccountCountry   string            `json:"account_country,omitempty"`
	AccountName      string            `json:"account_name,omitempty"`
	AmountDue        int64             `json:"amount_due"`
	AmountPaid       int64             `json:"amount_paid"`
	AmountRemaining  int64             `json:"amount_remaining"`
	AttemptCount     int               `json:"attempt_count"`
	Attempted        bool              `json:"attempted"`
	AutoAdvance      bool              `json:"auto_advance,omitempty"`
	CollectionMethod string            `json:"collection_method"`
	Created          int64             `json:"created"`
	Currency         string            `json:"currency"`
	Customer         string            `json:"customer,omitempty"`
	Description      string            `json:"description,omitempty"`
	HostedInvoiceURL string            `json:"hosted_invoice_url,omitempty"`
	InvoicePDF       string            `json:"invoice_pdf,omitempty"`
	Livemode         bool              `json:"livemode"`
	Metadata         map[string]string `json:"metadata,omitempty"`
	Number           string            `json:"number,omitempty"`
	Paid             bool              `json:"paid"`
	Status           string            `json:"status,omitempty"`
	Subscription     string            `json:"subscription,omitempty"`
	Subtotal         int64             `json:"subtotal"`
	Total            int64             `json:"total"`

	Extra map[string]any `json:"-"`
}

func (i Invoice) EntityKind() Kind { return KindInvoice }
func (i Invoice) EntityID() string { return i.ID }

type InvoiceItem struct {
	ID           string            `json:"id"`
	Object       string            `json:"object"`
	Amount       int64             `json:"amount"`
	Currency     string            `json:"currency"`
	Customer     string            `json:"customer"`
	Date         int64             `json:"date"`
	Description  string            `json:"description,omitempty"`
	Invoice      string            `json:"invoice,omitempty"`
	Livemode     bool              `json:"livemode"`
	Metadata     map[string]string `json:"metadata,omitempty"`
	Proration    bool              `json:"proration"`
	Quantity     int64             `json:"quantity,omitempty"`
	Subscription string            `json:"subscription,omitempty"`

	Extra map[string]any `json:"-"`
}

func (i InvoiceItem) EntityKind() Kind { return KindInvoiceItem }
func (i InvoiceItem) EntityID() string { return i.ID }

type PaymentLink struct {
	ID                       string            `json:"id"`
	Object                   string            `json:"object"`
	Active                   bool              `json:"active"`
	AllowPromotionCodes      bool              `json:"allow_promotion_codes,omitempty"`
	BillingAddressCollection string            `json:"billing_address_collection,omitempty"`
	Currency                 string            `json:"currency,omitempty"`
	CustomerCreation         string            `json:"customer_creation,omitempty"`
	Livemode                 bool              `json:"livemode"`
	Metadata                 map[string]string `json:"metadata,omitempty"`
	URL                      string            `json:"url"`

	Extra map[string]any `json:"-"`
}

func (p PaymentLink) EntityKind() Kind { return KindPaymentLink }
func (p PaymentLink) EntityID() string { return p.ID }

type PaymentIntent struct {
	ID                 string            `json:"id"`
	Object             string            `json:"object"`
	Amount             int64             `json:"amount"`
	AmountReceived     int64             `json:"amount_received"`
	CaptureMethod      string            `json:"capture_method"`
	ClientSecret       string            `json:"client_secret,omitempty"`
	ConfirmationMethod string            `json:"confirmation_method"`
	Created            int64             `json:"created"`
	Currency           string            `json:"currency"`
	Customer           string            `json:"customer,omitempty"`
	Description        string            `json:"description,omitempty"`
	Invoice            string            `json:"invoice,omitempty"`
	Livemode           bool              `json:"livemode"`
	Metadata           map[string]string `json:"metadata,omitempty"`
	PaymentMethod      string            `json:"payment_method,omitempty"`
	Status             string            `json:"status"`

	Extra map[string]any `json:"-"`
}

func (p PaymentIntent) EntityKind() Kind { return KindPaymentIntent }
func (p PaymentIntent) EntityID() string { return p.ID }

type Price struct {
	ID                string            `json:"id"`
	Object            string            `json:"object"`
	Active            bool              `json:"active"`
	BillingScheme     string            `json:"billing_scheme"`
	Created           int64             `json:"created"`
	Currency          string            `json:"currency"`
	Livemode          bool              `json:"livemode"`
	LookupKey         string            `json:"lookup_key,omitempty"`
	Metadata          map[string]string `json:"metadata,omitempty"`
	Nickname          string            `json:"nickname,omitempty"`
	Product           string            `json:"product"`
	Recurring         map[string]any    `json:"recurring,omitempty"`
	Type              string            `json:"type"`
	UnitAmount        int64             `json:"unit_amount,omitempty"`
	UnitAmountDecimal string            `json:"unit_amount_decimal,omitempty"`

	Extra map[string]any `json:"-"`
}

func (p Price) EntityKind() Kind { return KindPrice }
func (p Price) EntityID() string { return p.ID }

type Product struct {
	ID                  string            `json:"id"`
	Object              string            `json:"object"`
	Active              bool              `json:"active"`
	Created             int64             `json:"created"`
	DefaultPrice        string            `json:"default_price,omitempty"`
	Description         string            `json:"description,omitempty"`
	Images              []string          `json:"images"`
	Livemode            bool              `json:"livemode"`
	Metadata            map[string]string `json:"metadata,omitempty"`
	Name                string            `json:"name"`
	Shippable           bool              `json:"shippable,omitempty"`
	StatementDescriptor string            `json:"statement_descriptor,omitempty"`
	Type                string            `json:"type"`
	UnitLabel           string            `json:"unit_label,omitempty"`
	Updated             int64             `json:"updated"`
	URL                 string            `json:"url,omitempty"`

	Extra map[string]any `json:"-"`
}

func (p Product) EntityKind() Kind { return KindProduct }
func (p Product) EntityID() string { return p.ID }

type Refund struct {
	ID            string            `json:"id"`
	Object        string            `json:"object"`
	Amount        int64             `json:"amount"`
	Charge        string            `json:"charge,omitempty"`
	Created       int64             `json:"created"`
	Currency      string            `json:"currency"`
	Metadata      map[string]string `json:"metadata,omitempty"`
	PaymentIntent string            `json:"payment_intent,omitempty"`
	Reason        string            `json:"reason,omitempty"`
	Status        string            `json:"status,omitempty"`

	Extra map[string]any `json:"-"`
}

func (r Refund) EntityKind() Kind { return KindRefund }
func (r Refund) EntityID() string { return r.ID }

// Subscription statuses. Only SubscriptionStatusCanceled triggers eviction
// from the cache; every other status is cached normally.
const (
	SubscriptionStatusTrialing          = "trialing"
	SubscriptionStatusActive            = "active"
	SubscriptionStatusPastDue           = "past_due"
	SubscriptionStatusUnpaid            = "unpaid"
	SubscriptionStatusCanceled          = "canceled"
	SubscriptionStatusIncomplete        = "incomplete"
	SubscriptionStatusIncompleteExpired = "incomplete_expired"
	SubscriptionStatusEnded             = "ended"
)

type Subscription struct {
	ID                 string            `json:"id"`
	Object             string            `json:"object"`
	CancelAtPeriodEnd  bool              `json:"cancel_at_period_end"`
	Created            int64             `json:"created"`
	Currency           string            `json:"currency"`
	CurrentPeriodEnd   int64             `json:"current_period_end"`
	CurrentPeriodStart int64             `json:"current_period_start"`
	Customer           string            `json:"customer"`
	Livemode           bool              `json:"livemode"`
	Metadata           map[string]string `json:"metadata,omitempty"`
	StartDate          int64             `json:"start_date"`
	Status             string            `json:"status"`

	Extra map[string]any `json:"-"`
}

func (s Subscription) EntityKind() Kind { return KindSubscription }
func (s Subscription) EntityID() string { return s.ID }
