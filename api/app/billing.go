package app

import (
	"github.com/tbeaudouin05/stripe-mirror/api/entity"
	"github.com/tbeaudouin05/stripe-mirror/api/gateway"
)

func (s serviceImpl) CreateInvoice(p gateway.CreateInvoiceParams) (entity.Invoice, error) {
	return cacheOp(s, "create", func() (entity.Invoice, error) {
		return s.backend.CreateInvoice(p)
	}, s.store.Invoices)
}

func (s serviceImpl) CreateInvoiceItem(p gateway.CreateInvoiceItemParams) (entity.InvoiceItem, error) {
	return cacheOp(s, "create", func() (entity.InvoiceItem, error) {
		return s.backend.CreateInvoiceItem(p)
	}, s.store.InvoiceItems)
}

// FinalizeInvoice moves a draft invoice to open on the backend and caches
// the finalized copy.
func (s serviceImpl) FinalizeInvoice(id string) (entity.Invoice, error) {
	return cacheOp(s, "finalize", func() (entity.Invoice, error) {
		return s.backend.FinalizeInvoice(id)
	}, s.store.Invoices)
}

func (s serviceImpl) ListInvoices(p gateway.ListInvoicesParams) (gateway.Page[entity.Invoice], error) {
	return listOp(s, func() (gateway.Page[entity.Invoice], error) {
		return s.backend.ListInvoices(p)
	}, s.store.Invoices)
}

func (s serviceImpl) ListDisputes(p gateway.ListDisputesParams) (gateway.Page[entity.Dispute], error) {
	return listOp(s, func() (gateway.Page[entity.Dispute], error) {
		return s.backend.ListDisputes(p)
	}, s.store.Disputes)
}

func (s serviceImpl) UpdateDispute(id string, p gateway.UpdateDisputeParams) (entity.Dispute, error) {
	return cacheOp(s, "update", func() (entity.Dispute, error) {
		return s.backend.UpdateDispute(id, p)
	}, s.store.Disputes)
}
