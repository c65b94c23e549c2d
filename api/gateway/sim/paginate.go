package sim

import (
	"fmt"

	"github.com/tbeaudouin05/stripe-mirror/api/entity"
	"github.com/tbeaudouin05/stripe-mirror/api/gateway"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// paginate applies Stripe-style cursor pagination to an id-sorted slice.
// starting_after pages forward, ending_before pages backward; both cursors
// are exclusive.
func paginate[E entity.Object](items []E, p gateway.ListParams) gateway.Page[E] {
	limit := p.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	start := 0
	if p.StartingAfter != "" {
		for i, it := range items {
			if it.EntityID() == p.StartingAfter {
				start = i + 1
				break
			}
		}
	}
	end := len(items)
	if p.EndingBefore != "" {
		for i, it := range items {
			if it.EntityID() == p.EndingBefore {
				end = i
				break
			}
		}
	}
	if start > end {
		start = end
	}

	window := items[start:end]
	hasMore := len(window) > limit
	if hasMore {
		if p.EndingBefore != "" {
			window = window[len(window)-limit:]
		} else {
			window = window[:limit]
		}
	}

	page := gateway.Page[E]{
		Data:    append([]E(nil), window...),
		HasMore: hasMore,
	}
	if hasMore && len(page.Data) > 0 {
		page.NextCursor = page.Data[len(page.Data)-1].EntityID()
	}
	return page
}

func notFoundErr(k entity.Kind, id string) error {
	return fmt.Errorf("%w: %s %q", gateway.ErrNotFound, k, id)
}
