package response

import "fieldbilling/internal/domain/entities"

type CostCodeSummaryResponse struct {
	CostCode string `json:"cost_code"`
	Cost     string `json:"cost"`
	Revenue  string `json:"revenue"`
	Hours    string `json:"hours,omitempty"`
}

// RollupResponse is the job profit/loss report. Labor and Material are
// sorted by cost-code ascending so report snapshots are stable.
type RollupResponse struct {
	TotalLaborCost    string                    `json:"total_labor_cost"`
	TotalMaterialCost string                    `json:"total_material_cost"`
	TotalRevenue      string                    `json:"total_revenue"`
	TotalHours        string                    `json:"total_hours"`
	GrossProfit       string                    `json:"gross_profit"`
	MarginPct         string                    `json:"margin_pct"`
	Labor             []CostCodeSummaryResponse `json:"labor"`
	Material          []CostCodeSummaryResponse `json:"material"`
}

func FromRollup(r entities.Rollup) RollupResponse {
	labor := make([]CostCodeSummaryResponse, 0, len(r.Labor))
	for _, s := range r.LaborSummaries() {
		labor = append(labor, CostCodeSummaryResponse{
			CostCode: s.CostCode,
			Cost:     money(s.Cost),
			Revenue:  money(s.Revenue),
			Hours:    rate(s.Hours),
		})
	}

	material := make([]CostCodeSummaryResponse, 0, len(r.Material))
	for _, s := range r.MaterialSummaries() {
		material = append(material, CostCodeSummaryResponse{
			CostCode: s.CostCode,
			Cost:     money(s.Cost),
			Revenue:  money(s.Revenue),
		})
	}

	return RollupResponse{
		TotalLaborCost:    money(r.TotalLaborCost),
		TotalMaterialCost: money(r.TotalMaterialCost),
		TotalRevenue:      money(r.TotalRevenue),
		TotalHours:        rate(r.TotalHours),
		GrossProfit:       money(r.GrossProfit),
		MarginPct:         rate(r.MarginPct),
		Labor:             labor,
		Material:          material,
	}
}
