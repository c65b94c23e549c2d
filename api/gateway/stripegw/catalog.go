package stripegw

import (
	"fmt"

	stripe "github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/price"
	"github.com/stripe/stripe-go/v72/product"

	"github.com/tbeaudouin05/stripe-mirror/api/entity"
	"github.com/tbeaudouin05/stripe-mirror/api/gateway"
)

func (c client) CreateProduct(p gateway.CreateProductParams) (entity.Product, error) {
	if err := c.ready(); err != nil {
		return entity.Product{}, err
	}
	params := &stripe.ProductParams{
		Params: stripe.Params{Metadata: p.Metadata},
		Name:   stripe.String(p.Name),
	}
	if p.Active != nil {
		params.Active = stripe.Bool(*p.Active)
	}
	if p.Description != "" {
		params.Description = stripe.String(p.Description)
	}
	if len(p.Images) > 0 {
		params.Images = stripe.StringSlice(p.Images)
	}
	if p.Shippable != nil {
		params.Shippable = stripe.Bool(*p.Shippable)
	}
	if p.StatementDescriptor != "" {
		params.StatementDescriptor = stripe.String(p.StatementDescriptor)
	}
	if p.UnitLabel != "" {
		params.UnitLabel = stripe.String(p.UnitLabel)
	}
	if p.URL != "" {
		params.URL = stripe.String(p.URL)
	}
	if d := p.DefaultPriceData; d != nil {
		params.AddExtra("default_price_data[currency]", d.Currency)
		params.AddExtra("default_price_data[unit_amount]", fmt.Sprintf("%d", d.UnitAmount))
		if d.Recurring != nil {
			params.AddExtra("default_price_data[recurring][interval]", d.Recurring.Interval)
			if d.Recurring.IntervalCount != 0 {
				params.AddExtra("default_price_data[recurring][interval_count]", fmt.Sprintf("%d", d.Recurring.IntervalCount))
			}
		}
	}
	prod, err := product.New(params)
	if err != nil {
		return entity.Product{}, mapErr(err)
	}
	return decode(prod.LastResponse, fromProduct(prod)), nil
}

func (c client) ListProducts(p gateway.ListProductsParams) (gateway.Page[entity.Product], error) {
	if err := c.ready(); err != nil {
		return gateway.Page[entity.Product]{}, err
	}
	params := &stripe.ProductListParams{
		ListParams:   listParams(p.ListParams),
		CreatedRange: rangeQuery(p.Created),
	}
	if p.Active != nil {
		params.Active = stripe.Bool(*p.Active)
	}
	if len(p.IDs) > 0 {
		params.IDs = stripe.StringSlice(p.IDs)
	}
	if p.Shippable != nil {
		params.Shippable = stripe.Bool(*p.Shippable)
	}
	if p.URL != "" {
		params.URL = stripe.String(p.URL)
	}
	iter := product.List(params)
	page := collectPage(p.Limit, func() (entity.Product, bool) {
		if !iter.Next() {
			return entity.Product{}, false
		}
		return fromProduct(iter.Product()), true
	})
	if err := iter.Err(); err != nil {
		return gateway.Page[entity.Product]{}, mapErr(err)
	}
	return page, nil
}

func (c client) RetrieveProduct(id string) (entity.Product, error) {
	if err := c.ready(); err != nil {
		return entity.Product{}, err
	}
	prod, err := product.Get(id, nil)
	if err != nil {
		return entity.Product{}, mapErr(err)
	}
	return decode(prod.LastResponse, fromProduct(prod)), nil
}

func (c client) CreatePrice(p gateway.CreatePriceParams) (entity.Price, error) {
	if err := c.ready(); err != nil {
		return entity.Price{}, err
	}
	params := &stripe.PriceParams{
		Params:   stripe.Params{Metadata: p.Metadata},
		Currency: stripe.String(p.Currency),
	}
	if p.Product != "" {
		params.Product = stripe.String(p.Product)
	}
	if p.UnitAmount != nil {
		params.UnitAmount = stripe.Int64(*p.UnitAmount)
	}
	if p.Active != nil {
		params.Active = stripe.Bool(*p.Active)
	}
	if p.BillingScheme != "" {
		params.BillingScheme = stripe.String(p.BillingScheme)
	}
	if p.LookupKey != "" {
		params.LookupKey = stripe.String(p.LookupKey)
	}
	if p.Nickname != "" {
		params.Nickname = stripe.String(p.Nickname)
	}
	if d := p.ProductData; d != nil {
		params.ProductData = &stripe.PriceProductDataParams{
			Name: stripe.String(d.Name),
		}
		if d.Active != nil {
			params.ProductData.Active = stripe.Bool(*d.Active)
		}
	}
	if r := p.Recurring; r != nil {
		params.Recurring = &stripe.PriceRecurringParams{
			Interval: stripe.String(r.Interval),
		}
		if r.IntervalCount != 0 {
			params.Recurring.IntervalCount = stripe.Int64(r.IntervalCount)
		}
		if r.UsageType != "" {
			params.Recurring.UsageType = stripe.String(r.UsageType)
		}
	}
	pr, err := price.New(params)
	if err != nil {
		return entity.Price{}, mapErr(err)
	}
	return decode(pr.LastResponse, fromPrice(pr)), nil
}

func (c client) ListPrices(p gateway.ListPricesParams) (gateway.Page[entity.Price], error) {
	if err := c.ready(); err != nil {
		return gateway.Page[entity.Price]{}, err
	}
	params := &stripe.PriceListParams{
		ListParams:   listParams(p.ListParams),
		CreatedRange: rangeQuery(p.Created),
	}
	if p.Product != "" {
		params.Product = stripe.String(p.Product)
	}
	if p.Active != nil {
		params.Active = stripe.Bool(*p.Active)
	}
	if p.Currency != "" {
		params.Currency = stripe.String(p.Currency)
	}
	if p.Type != "" {
		params.Type = stripe.String(p.Type)
	}
	iter := price.List(params)
	page := collectPage(p.Limit, func() (entity.Price, bool) {
		if !iter.Next() {
			return entity.Price{}, false
		}
		return fromPrice(iter.Price()), true
	})
	if err := iter.Err(); err != nil {
		return gateway.Page[entity.Price]{}, mapErr(err)
	}
	return page, nil
}

func (c client) RetrievePrice(id string) (entity.Price, error) {
	if err := c.ready(); err != nil {
		return entity.Price{}, err
	}
	pr, err := price.Get(id, nil)
	if err != nil {
		return entity.Price{}, mapErr(err)
	}
	return decode(pr.LastResponse, fromPrice(pr)), nil
}
