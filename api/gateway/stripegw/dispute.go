package stripegw

import (
	"fmt"

	stripe "github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/dispute"

	"github.com/tbeaudouin05/stripe-mirror/api/entity"
	"github.com/tbeaudouin05/stripe-mirror/api/gateway"
)

func (c client) ListDisputes(p gateway.ListDisputesParams) (gateway.Page[entity.Dispute], error) {
	if err := c.ready(); err != nil {
		return gateway.Page[entity.Dispute]{}, err
	}
	params := &stripe.DisputeListParams{
		ListParams:   listParams(p.ListParams),
		CreatedRange: rangeQuery(p.Created),
	}
	if p.Charge != "" {
		params.Charge = stripe.String(p.Charge)
	}
	if p.PaymentIntent != "" {
		params.PaymentIntent = stripe.String(p.PaymentIntent)
	}
	iter := dispute.List(params)
	page := collectPage(p.Limit, func() (entity.Dispute, bool) {
		if !iter.Next() {
			return entity.Dispute{}, false
		}
		return fromDispute(iter.Dispute()), true
	})
	if err := iter.Err(); err != nil {
		return gateway.Page[entity.Dispute]{}, mapErr(err)
	}
	return page, nil
}

func (c client) UpdateDispute(id string, p gateway.UpdateDisputeParams) (entity.Dispute, error) {
	if err := c.ready(); err != nil {
		return entity.Dispute{}, err
	}
	params := &stripe.DisputeParams{
		Params: stripe.Params{Metadata: p.Metadata},
	}
	if p.Submit {
		params.Submit = stripe.Bool(true)
	}
	// Evidence arrives as free-form keys; the form encoding accepts them
	// directly without the typed evidence struct.
	for k, v := range p.Evidence {
		params.AddExtra(fmt.Sprintf("evidence[%s]", k), v)
	}
	d, err := dispute.Update(id, params)
	if err != nil {
		return entity.Dispute{}, mapErr(err)
	}
	return decode(d.LastResponse, fromDispute(d)), nil
}

func (c client) RetrieveDispute(id string) (entity.Dispute, error) {
	if err := c.ready(); err != nil {
		return entity.Dispute{}, err
	}
	d, err := dispute.Get(id, nil)
	if err != nil {
		return entity.Dispute{}, mapErr(err)
	}
	return decode(d.LastResponse, fromDispute(d)), nil
}
