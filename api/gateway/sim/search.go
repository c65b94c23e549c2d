package sim

import (
	"fmt"

	"github.com/tbeaudouin05/stripe-mirror/api/entity"
	"github.com/tbeaudouin05/stripe-mirror/api/gateway"
)

// Search ignores the query language and returns everything of the kind.
// The simulation has no query parser; callers exercising search against it
// get the full collection and filter on their side.
func (b *Backend) Search(kind entity.Kind, query string, p gateway.SearchParams) (gateway.SearchPage, error) {
	var data []entity.Object
	switch kind {
	case entity.KindCustomer, entity.KindInvoice, entity.KindPaymentIntent,
		entity.KindPrice, entity.KindProduct, entity.KindSubscription:
		data = b.state.ListKind(kind)
	default:
		return gateway.SearchPage{}, fmt.Errorf("%w: search over %s", gateway.ErrUnsupportedKind, kind)
	}

	limit := p.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	total := int64(len(data))
	hasMore := len(data) > limit
	if hasMore {
		data = data[:limit]
	}
	return gateway.SearchPage{Data: data, HasMore: hasMore, TotalCount: total}, nil
}
