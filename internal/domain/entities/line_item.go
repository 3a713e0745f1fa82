package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItemKind tags a billable line as labor or material.

type LineItemKind string

const (
	LineItemKindLabor    LineItemKind = "labor"
	LineItemKindMaterial LineItemKind = "material"
)

// LineItem is one billable unit of work or material on a job.
//
// The two kinds share one shape:
//   - labor: Quantity is hours, UnitCost is the burden rate, UnitPrice is
//     unused (labor carries no per-line revenue).
//   - material: Quantity × UnitCost is internal cost, Quantity × UnitPrice is
//     customer-facing revenue.
//
// Quantity, UnitCost and UnitPrice must all be non-negative. CostCode groups
// lines for reporting (e.g. "ELEC-01") and is matched exactly, case-sensitive.
//
// Storage model (DynamoDB):
//   - PK: id
//   - Lookup by job uses the job_id-index GSI.
type LineItem struct {
	ID          string          `json:"id"`
	JobID       string          `json:"job_id"`
	Kind        LineItemKind    `json:"kind"`
	CostCode    string          `json:"cost_code"`
	Description string          `json:"description,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	CreatedAt   time.Time       `json:"created_at"`
}
