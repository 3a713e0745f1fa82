package entities

import (
	"sort"

	"github.com/shopspring/decimal"
)

// CostCodeSummary is the per-cost-code accumulation of a job rollup.
// Revenue is always zero for labor summaries; Hours is only meaningful for
// labor summaries and stays zero for material.
type CostCodeSummary struct {
	CostCode string          `json:"cost_code"`
	Cost     decimal.Decimal `json:"cost"`
	Revenue  decimal.Decimal `json:"revenue"`
	Hours    decimal.Decimal `json:"hours"`
}

// Rollup is the derived profit/loss view of a set of line items. It is
// recomputed from source data on every request and never persisted.
//
// GrossProfit = TotalRevenue − (TotalLaborCost + TotalMaterialCost).
// MarginPct is GrossProfit / TotalRevenue × 100, defined as exactly zero when
// TotalRevenue is zero.
type Rollup struct {
	TotalLaborCost    decimal.Decimal `json:"total_labor_cost"`
	TotalMaterialCost decimal.Decimal `json:"total_material_cost"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	TotalHours        decimal.Decimal `json:"total_hours"`
	GrossProfit       decimal.Decimal `json:"gross_profit"`
	MarginPct         decimal.Decimal `json:"margin_pct"`

	Labor    map[string]CostCodeSummary `json:"labor"`
	Material map[string]CostCodeSummary `json:"material"`
}

// LaborSummaries returns the labor breakdown sorted by cost-code ascending,
// the canonical display order.
func (r Rollup) LaborSummaries() []CostCodeSummary {
	return sortedSummaries(r.Labor)
}

// MaterialSummaries returns the material breakdown sorted by cost-code
// ascending.
func (r Rollup) MaterialSummaries() []CostCodeSummary {
	return sortedSummaries(r.Material)
}

func sortedSummaries(m map[string]CostCodeSummary) []CostCodeSummary {
	out := make([]CostCodeSummary, 0, len(m))
	for _, s := range m {
		out = append(out, s)
	}
	sort.Slice(out, func(i, k int) bool { return out[i].CostCode < out[k].CostCode })
	return out
}

// EstimateTotal is the derived money breakdown of an estimate or invoice.
// Tax is computed on the pre-overhead subtotal only; overhead and tax do not
// compound each other.
type EstimateTotal struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	OverheadAmount decimal.Decimal `json:"overhead_amount"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	GrandTotal     decimal.Decimal `json:"grand_total"`
}
