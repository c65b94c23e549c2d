package sim

import (
	"github.com/tbeaudouin05/stripe-mirror/api/entity"
	"github.com/tbeaudouin05/stripe-mirror/api/gateway"
)

func (b *Backend) CreateCoupon(p gateway.CreateCouponParams) (entity.Coupon, error) {
	id := p.ID
	if id == "" {
		id = b.newID(entity.KindCoupon)
	}
	c := entity.Coupon{
		ID:               id,
		Object:           string(entity.KindCoupon),
		AmountOff:        p.AmountOff,
		Created:          b.timestamp(),
		Currency:         p.Currency,
		Duration:         p.Duration,
		DurationInMonths: p.DurationInMonths,
		MaxRedemptions:   p.MaxRedemptions,
		Metadata:         p.Metadata,
		Name:             p.Name,
		PercentOff:       p.PercentOff,
		Valid:            true,
	}
	if c.Duration == "" {
		c.Duration = entity.CouponDurationOnce
	}
	b.state.Coupons.Upsert(c)
	return c, nil
}

func (b *Backend) ListCoupons(p gateway.ListCouponsParams) (gateway.Page[entity.Coupon], error) {
	matches := b.state.Coupons.Find(func(c entity.Coupon) bool {
		return p.Created.Matches(c.Created)
	})
	return paginate(matches, p.ListParams), nil
}

func (b *Backend) RetrieveCoupon(id string) (entity.Coupon, error) {
	c, ok := b.state.Coupons.Get(id)
	if !ok {
		return entity.Coupon{}, notFoundErr(entity.KindCoupon, id)
	}
	return c, nil
}
