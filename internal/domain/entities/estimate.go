package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// EstimateStatus represents the lifecycle of a customer estimate.
//
// Domain notes:
//   - The billing service is the source of truth for estimate state.
//   - Once an estimate leaves "pending" its figures are frozen: a change in
//     scope produces a new estimate, never an in-place edit.

type EstimateStatus string

const (
	EstimateStatusPending  EstimateStatus = "pending"
	EstimateStatusApproved EstimateStatus = "approved"
	EstimateStatusRejected EstimateStatus = "rejected"
	EstimateStatusCanceled EstimateStatus = "canceled"
)

// Estimate is the customer-facing estimate persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - Lookup by job uses the job_id-index GSI.
//
// Monetary representation:
//   - All amounts are exact decimals. Subtotal is the material revenue of the
//     job's line items plus the flat ServiceAmount; OverheadAmount and
//     TaxAmount are derived from it; GrandTotal is their sum.
//   - OverheadRatePct and the jurisdiction tax rate are whole-number
//     percentages (7.25 means 7.25%).
type Estimate struct {
	ID              string          `json:"id"`
	JobID           string          `json:"job_id"`
	ServiceAmount   decimal.Decimal `json:"service_amount"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	OverheadRatePct decimal.Decimal `json:"overhead_rate_pct"`
	OverheadAmount  decimal.Decimal `json:"overhead_amount"`
	TaxJurisdiction string          `json:"tax_jurisdiction,omitempty"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	GrandTotal      decimal.Decimal `json:"grand_total"`
	Status          EstimateStatus  `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Finalized reports whether the estimate's figures are frozen.
func (e Estimate) Finalized() bool {
	return e.Status != EstimateStatusPending
}
