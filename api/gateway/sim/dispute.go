package sim

import (
	"github.com/tbeaudouin05/stripe-mirror/api/entity"
	"github.com/tbeaudouin05/stripe-mirror/api/gateway"
)

// SeedDispute plants a dispute in the simulated remote state. Disputes are
// created by the card networks, not by API callers, so the simulation needs
// an out-of-band way to make them exist.
func (b *Backend) SeedDispute(charge string, amount int64, currency string) entity.Dispute {
	d := entity.Dispute{
		ID:                 b.newID(entity.KindDispute),
		Object:             string(entity.KindDispute),
		Amount:             amount,
		Charge:             charge,
		Created:            b.timestamp(),
		Currency:           currency,
		IsChargeRefundable: true,
		Reason:             "general",
		Status:             "needs_response",
	}
	b.state.Disputes.Upsert(d)
	return d
}

func (b *Backend) ListDisputes(p gateway.ListDisputesParams) (gateway.Page[entity.Dispute], error) {
	matches := b.state.Disputes.Find(func(d entity.Dispute) bool {
		if p.Charge != "" && d.Charge != p.Charge {
			return false
		}
		if p.PaymentIntent != "" && d.PaymentIntent != p.PaymentIntent {
			return false
		}
		return p.Created.Matches(d.Created)
	})
	return paginate(matches, p.ListParams), nil
}

func (b *Backend) UpdateDispute(id string, p gateway.UpdateDisputeParams) (entity.Dispute, error) {
	d, ok := b.state.Disputes.Get(id)
	if !ok {
		return entity.Dispute{}, notFoundErr(entity.KindDispute, id)
	}
	if p.Metadata != nil {
		d.Metadata = p.Metadata
	}
	if p.Submit {
		d.Status = "under_review"
	}
	b.state.Disputes.Upsert(d)
	return d, nil
}

func (b *Backend) RetrieveDispute(id string) (entity.Dispute, error) {
	d, ok := b.state.Disputes.Get(id)
	if !ok {
		return entity.Dispute{}, notFoundErr(entity.KindDispute, id)
	}
	return d, nil
}
