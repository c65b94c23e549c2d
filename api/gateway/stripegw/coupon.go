package stripegw

import (
	stripe "github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/coupon"

	"github.com/tbeaudouin05/stripe-mirror/api/entity"
	"github.com/tbeaudouin05/stripe-mirror/api/gateway"
)

func (c client) CreateCoupon(p gateway.CreateCouponParams) (entity.Coupon, error) {
	if err := c.ready(); err != nil {
		return entity.Coupon{}, err
	}
	params := &stripe.CouponParams{
		Params:   stripe.Params{Metadata: p.Metadata},
		Duration: stripe.String(p.Duration),
	}
	if p.ID != "" {
		params.ID = stripe.String(p.ID)
	}
	if p.AmountOff != 0 {
		params.AmountOff = stripe.Int64(p.AmountOff)
		params.Currency = stripe.String(p.Currency)
	}
	if p.PercentOff != 0 {
		params.PercentOff = stripe.Float64(p.PercentOff)
	}
	if p.DurationInMonths != 0 {
		params.DurationInMonths = stripe.Int64(int64(p.DurationInMonths))
	}
	if p.MaxRedemptions != 0 {
		params.MaxRedemptions = stripe.Int64(int64(p.MaxRedemptions))
	}
	if p.Name != "" {
		params.Name = stripe.String(p.Name)
	}
	cp, err := coupon.New(params)
	if err != nil {
		return entity.Coupon{}, mapErr(err)
	}
	return decode(cp.LastResponse, fromCoupon(cp)), nil
}

func (c client) ListCoupons(p gateway.ListCouponsParams) (gateway.Page[entity.Coupon], error) {
	if err := c.ready(); err != nil {
		return gateway.Page[entity.Coupon]{}, err
	}
	params := &stripe.CouponListParams{
		ListParams:   listParams(p.ListParams),
		CreatedRange: rangeQuery(p.Created),
	}
	iter := coupon.List(params)
	page := collectPage(p.Limit, func() (entity.Coupon, bool) {
		if !iter.Next() {
			return entity.Coupon{}, false
		}
		return fromCoupon(iter.Coupon()), true
	})
	if err := iter.Err(); err != nil {
		return gateway.Page[entity.Coupon]{}, mapErr(err)
	}
	return page, nil
}

func (c client) RetrieveCoupon(id string) (entity.Coupon, error) {
	if err := c.ready(); err != nil {
		return entity.Coupon{}, err
	}
	cp, err := coupon.Get(id, nil)
	if err != nil {
		return entity.Coupon{}, mapErr(err)
	}
	return decode(cp.LastResponse, fromCoupon(cp)), nil
}
