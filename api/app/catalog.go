package app

import (
	"github.com/tbeaudouin05/stripe-mirror/api/entity"
	"github.com/tbeaudouin05/stripe-mirror/api/gateway"
)

func (s serviceImpl) CreateProduct(p gateway.CreateProductParams) (entity.Product, error) {
	return cacheOp(s, "create", func() (entity.Product, error) {
		return s.backend.CreateProduct(p)
	}, s.store.Products)
}

func (s serviceImpl) ListProducts(p gateway.ListProductsParams) (gateway.Page[entity.Product], error) {
	return listOp(s, func() (gateway.Page[entity.Product], error) {
		return s.backend.ListProducts(p)
	}, s.store.Products)
}

func (s serviceImpl) CreatePrice(p gateway.CreatePriceParams) (entity.Price, error) {
	return cacheOp(s, "create", func() (entity.Price, error) {
		return s.backend.CreatePrice(p)
	}, s.store.Prices)
}

func (s serviceImpl) ListPrices(p gateway.ListPricesParams) (gateway.Page[entity.Price], error) {
	return listOp(s, func() (gateway.Page[entity.Price], error) {
		return s.backend.ListPrices(p)
	}, s.store.Prices)
}
