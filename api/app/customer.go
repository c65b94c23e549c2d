package app

import (
	"github.com/tbeaudouin05/stripe-mirror/api/entity"
	"github.com/tbeaudouin05/stripe-mirror/api/gateway"
)

func (s serviceImpl) CreateCoupon(p gateway.CreateCouponParams) (entity.Coupon, error) {
	return cacheOp(s, "create", func() (entity.Coupon, error) {
		return s.backend.CreateCoupon(p)
	}, s.store.Coupons)
}

func (s serviceImpl) ListCoupons(p gateway.ListCouponsParams) (gateway.Page[entity.Coupon], error) {
	return listOp(s, func() (gateway.Page[entity.Coupon], error) {
		return s.backend.ListCoupons(p)
	}, s.store.Coupons)
}

func (s serviceImpl) CreateCustomer(p gateway.CreateCustomerParams) (entity.Customer, error) {
	return cacheOp(s, "create", func() (entity.Customer, error) {
		return s.backend.CreateCustomer(p)
	}, s.store.Customers)
}

func (s serviceImpl) ListCustomers(p gateway.ListCustomersParams) (gateway.Page[entity.Customer], error) {
	return listOp(s, func() (gateway.Page[entity.Customer], error) {
		return s.backend.ListCustomers(p)
	}, s.store.Customers)
}
