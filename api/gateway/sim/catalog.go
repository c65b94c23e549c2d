package sim

import (
	"github.com/tbeaudouin05/stripe-mirror/api/entity"
	"github.com/tbeaudouin05/stripe-mirror/api/gateway"
)

func (b *Backend) CreateProduct(p gateway.CreateProductParams) (entity.Product, error) {
	now := b.timestamp()
	prod := entity.Product{
		ID:                  b.newID(entity.KindProduct),
		Object:              string(entity.KindProduct),
		Active:              true,
		Created:             now,
		Description:         p.Description,
		Images:              p.Images,
		Metadata:            p.Metadata,
		Name:                p.Name,
		StatementDescriptor: p.StatementDescriptor,
		Type:                "service",
		UnitLabel:           p.UnitLabel,
		Updated:             now,
		URL:                 p.URL,
	}
	if p.Active != nil {
		prod.Active = *p.Active
	}
	if p.Shippable != nil {
		prod.Shippable = *p.Shippable
	}
	if prod.Images == nil {
		prod.Images = []string{}
	}

	if p.DefaultPriceData != nil {
		price, err := b.CreatePrice(gateway.CreatePriceParams{
			Currency:   p.DefaultPriceData.Currency,
			Product:    prod.ID,
			UnitAmount: &p.DefaultPriceData.UnitAmount,
			Recurring:  p.DefaultPriceData.Recurring,
		})
		if err != nil {
			return entity.Product{}, err
		}
		prod.DefaultPrice = price.ID
	}

	b.state.Products.Upsert(prod)
	return prod, nil
}

func (b *Backend) ListProducts(p gateway.ListProductsParams) (gateway.Page[entity.Product], error) {
	matches := b.state.Products.Find(func(prod entity.Product) bool {
		if p.Active != nil && prod.Active != *p.Active {
			return false
		}
		if p.Shippable != nil && prod.Shippable != *p.Shippable {
			return false
		}
		if p.URL != "" && prod.URL != p.URL {
			return false
		}
		if len(p.IDs) > 0 {
			found := false
			for _, id := range p.IDs {
				if prod.ID == id {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
		return p.Created.Matches(prod.Created)
	})
	return paginate(matches, p.ListParams), nil
}

func (b *Backend) RetrieveProduct(id string) (entity.Product, error) {
	prod, ok := b.state.Products.Get(id)
	if !ok {
		return entity.Product{}, notFoundErr(entity.KindProduct, id)
	}
	return prod, nil
}

// CreatePrice attaches a price to an existing product, or creates the
// product inline when product_data is given.
func (b *Backend) CreatePrice(p gateway.CreatePriceParams) (entity.Price, error) {
	productID := p.Product
	if productID == "" && p.ProductData != nil {
		prod, err := b.CreateProduct(gateway.CreateProductParams{
			Name:     p.ProductData.Name,
			Active:   p.ProductData.Active,
			Metadata: p.ProductData.Metadata,
		})
		if err != nil {
			return entity.Price{}, err
		}
		productID = prod.ID
	}
	if _, ok := b.state.Products.Get(productID); !ok {
		return entity.Price{}, notFoundErr(entity.KindProduct, productID)
	}

	price := entity.Price{
		ID:            b.newID(entity.KindPrice),
		Object:        string(entity.KindPrice),
		Active:        true,
		BillingScheme: p.BillingScheme,
		Created:       b.timestamp(),
		Currency:      p.Currency,
		LookupKey:     p.LookupKey,
		Metadata:      p.Metadata,
		Nickname:      p.Nickname,
		Product:       productID,
		Type:          "one_time",
	}
	if price.BillingScheme == "" {
		price.BillingScheme = "per_unit"
	}
	if p.Active != nil {
		price.Active = *p.Active
	}
	if p.UnitAmount != nil {
		price.UnitAmount = *p.UnitAmount
		price.UnitAmountDecimal = unitAmountDecimal(*p.UnitAmount)
	}
	if p.Recurring != nil {
		price.Type = "recurring"
		price.Recurring = map[string]any{
			"interval":       p.Recurring.Interval,
			"interval_count": p.Recurring.IntervalCount,
			"usage_type":     p.Recurring.UsageType,
		}
		if p.Recurring.IntervalCount == 0 {
			price.Recurring["interval_count"] = int64(1)
		}
		if p.Recurring.UsageType == "" {
			price.Recurring["usage_type"] = "licensed"
		}
	}

	b.state.Prices.Upsert(price)
	return price, nil
}

func (b *Backend) ListPrices(p gateway.ListPricesParams) (gateway.Page[entity.Price], error) {
	matches := b.state.Prices.Find(func(price entity.Price) bool {
		if p.Product != "" && price.Product != p.Product {
			return false
		}
		if p.Active != nil && price.Active != *p.Active {
			return false
		}
		if p.Currency != "" && price.Currency != p.Currency {
			return false
		}
		if p.Type != "" && price.Type != p.Type {
			return false
		}
		return p.Created.Matches(price.Created)
	})
	return paginate(matches, p.ListParams), nil
}

func (b *Backend) RetrievePrice(id string) (entity.Price, error) {
	price, ok := b.state.Prices.Get(id)
	if !ok {
		return entity.Price{}, notFoundErr(entity.KindPrice, id)
	}
	return price, nil
}
