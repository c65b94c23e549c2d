package stripegw

import (
	stripe "github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/customer"

	"github.com/tbeaudouin05/stripe-mirror/api/entity"
	"github.com/tbeaudouin05/stripe-mirror/api/gateway"
)

func (c client) CreateCustomer(p gateway.CreateCustomerParams) (entity.Customer, error) {
	if err := c.ready(); err != nil {
		return entity.Customer{}, err
	}
	params := &stripe.CustomerParams{
		Params: stripe.Params{Metadata: p.Metadata},
	}
	if p.Email != "" {
		params.Email = stripe.String(p.Email)
	}
	if p.Name != "" {
		params.Name = stripe.String(p.Name)
	}
	if p.Description != "" {
		params.Description = stripe.String(p.Description)
	}
	if p.Phone != "" {
		params.Phone = stripe.String(p.Phone)
	}
	if p.PaymentMethod != "" {
		params.PaymentMethod = stripe.String(p.PaymentMethod)
	}
	if p.Address != nil {
		params.Address = &stripe.AddressParams{
			Line1:      stripe.String(p.Address.Line1),
			Line2:      stripe.String(p.Address.Line2),
			City:       stripe.String(p.Address.City),
			State:      stripe.String(p.Address.State),
			PostalCode: stripe.String(p.Address.PostalCode),
			Country:    stripe.String(p.Address.Country),
		}
	}
	cust, err := customer.New(params)
	if err != nil {
		return entity.Customer{}, mapErr(err)
	}
	return decode(cust.LastResponse, fromCustomer(cust)), nil
}

func (c client) ListCustomers(p gateway.ListCustomersParams) (gateway.Page[entity.Customer], error) {
	if err := c.ready(); err != nil {
		return gateway.Page[entity.Customer]{}, err
	}
	params := &stripe.CustomerListParams{
		ListParams:   listParams(p.ListParams),
		CreatedRange: rangeQuery(p.Created),
	}
	if p.Email != "" {
		params.Email = stripe.String(p.Email)
	}
	iter := customer.List(params)
	page := collectPage(p.Limit, func() (entity.Customer, bool) {
		if !iter.Next() {
			return entity.Customer{}, false
		}
		return fromCustomer(iter.Customer()), true
	})
	if err := iter.Err(); err != nil {
		return gateway.Page[entity.Customer]{}, mapErr(err)
	}
	return page, nil
}

func (c client) RetrieveCustomer(id string) (entity.Customer, error) {
	if err := c.ready(); err != nil {
		return entity.Customer{}, err
	}
	cust, err := customer.Get(id, nil)
	if err != nil {
		return entity.Customer{}, mapErr(err)
	}
	return decode(cust.LastResponse, fromCustomer(cust)), nil
}
