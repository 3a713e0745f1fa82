package request

import "strings"

// EstimateRequest is the payload for pricing a job into an estimate. The
// job's stored line items supply the material revenue; ServiceAmount is the
// flat labor/service charge the estimator adds on top.
type EstimateRequest struct {
	JobID           string   `json:"job_id" binding:"required"`
	ServiceAmount   *float64 `json:"service_amount"`
	OverheadRatePct *float64 `json:"overhead_rate_pct"`
	TaxJurisdiction string   `json:"tax_jurisdiction"`
}

func (r EstimateRequest) ResolveJobID() string {
	return strings.TrimSpace(r.JobID)
}

// JobActionRequest addresses an estimate through its job for the
// approve/reject/cancel flows.
type JobActionRequest struct {
	JobID string `json:"job_id" binding:"required"`
}

func (r JobActionRequest) ResolveJobID() string {
	return strings.TrimSpace(r.JobID)
}
