package sim

import (
	"github.com/shopspring/decimal"

	"github.com/tbeaudouin05/stripe-mirror/api/entity"
)

// couponDiscount returns how much a coupon takes off an amount of minor
// currency units. Percent discounts are computed exactly and truncated
// toward zero so totals stay integral. The discount never exceeds the
// amount it applies to.
func couponDiscount(amount int64, c entity.Coupon) int64 {
	var d int64
	switch {
	case c.PercentOff > 0:
		pct := decimal.NewFromFloat(c.PercentOff)
		d = decimal.NewFromInt(amount).Mul(pct).Div(decimal.NewFromInt(100)).IntPart()
	case c.AmountOff > 0:
		d = c.AmountOff
	}
	if d > amount {
		d = amount
	}
	if d < 0 {
		d = 0
	}
	return d
}

// unitAmountDecimal renders a minor-unit amount in Stripe's decimal string
// form ("1000" for a 1000-cent price).
func unitAmountDecimal(unitAmount int64) string {
	return decimal.NewFromInt(unitAmount).String()
}
