package sim

import (
	"github.com/tbeaudouin05/stripe-mirror/api/entity"
	"github.com/tbeaudouin05/stripe-mirror/api/gateway"
)

func (b *Backend) CreateCustomer(p gateway.CreateCustomerParams) (entity.Customer, error) {
	c := entity.Customer{
		ID:          b.newID(entity.KindCustomer),
		Object:      string(entity.KindCustomer),
		Address:     p.Address,
		Created:     b.timestamp(),
		Description: p.Description,
		Email:       p.Email,
		Metadata:    p.Metadata,
		Name:        p.Name,
		Phone:       p.Phone,
	}
	b.state.Customers.Upsert(c)
	return c, nil
}

func (b *Backend) ListCustomers(p gateway.ListCustomersParams) (gateway.Page[entity.Customer], error) {
	matches := b.state.Customers.Find(func(c entity.Customer) bool {
		if p.Email != "" && c.Email != p.Email {
			return false
		}
		return p.Created.Matches(c.Created)
	})
	return paginate(matches, p.ListParams), nil
}

func (b *Backend) RetrieveCustomer(id string) (entity.Customer, error) {
	c, ok := b.state.Customers.Get(id)
	if !ok {
		return entity.Customer{}, notFoundErr(entity.KindCustomer, id)
	}
	return c, nil
}
