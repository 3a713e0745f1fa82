package request

import "strings"

// InvoiceRequest cuts an invoice from an approved estimate. TaxJurisdiction
// optionally overrides the estimate's jurisdiction when the billing address
// differs from the job site.
type InvoiceRequest struct {
	EstimateID      string `json:"estimate_id" binding:"required"`
	TaxJurisdiction string `json:"tax_jurisdiction"`
}

func (r InvoiceRequest) ResolveEstimateID() string {
	return strings.TrimSpace(r.EstimateID)
}
