package app

import (
	"github.com/tbeaudouin05/stripe-mirror/api/entity"
	"github.com/tbeaudouin05/stripe-mirror/api/gateway"
)

func (s serviceImpl) CreatePaymentLink(p gateway.CreatePaymentLinkParams) (entity.PaymentLink, error) {
	return cacheOp(s, "create", func() (entity.PaymentLink, error) {
		return s.backend.CreatePaymentLink(p)
	}, s.store.PaymentLinks)
}

func (s serviceImpl) ListPaymentIntents(p gateway.ListPaymentIntentsParams) (gateway.Page[entity.PaymentIntent], error) {
	return listOp(s, func() (gateway.Page[entity.PaymentIntent], error) {
		return s.backend.ListPaymentIntents(p)
	}, s.store.PaymentIntents)
}

func (s serviceImpl) CreateRefund(p gateway.CreateRefundParams) (entity.Refund, error) {
	return cacheOp(s, "create", func() (entity.Refund, error) {
		return s.backend.CreateRefund(p)
	}, s.store.Refunds)
}
