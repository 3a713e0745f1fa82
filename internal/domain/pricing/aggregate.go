package pricing

import (
	"fieldbilling/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Aggregate folds an unordered collection of line items into a profit/loss
// rollup, grouping per cost-code into separate labor and material summaries.
//
// Items are processed in the order supplied, so the summation order (and with
// it any rounding outcome) is deterministic for a given input slice, while the
// grand totals themselves are order-independent. The first invalid item aborts
// the whole aggregation: a partial total would misstate financials.
func Aggregate(items []entities.LineItem) (entities.Rollup, error) {
	r := entities.Rollup{
		Labor:    make(map[string]entities.CostCodeSummary),
		Material: make(map[string]entities.CostCodeSummary),
	}

	for _, item := range items {
		cost, err := CostOf(item)
		if err != nil {
			return entities.Rollup{}, err
		}
		revenue, err := RevenueOf(item)
		if err != nil {
			return entities.Rollup{}, err
		}

		if item.Kind == entities.LineItemKindLabor {
			s := r.Labor[item.CostCode]
			s.CostCode = item.CostCode
			s.Cost = s.Cost.Add(cost)
			s.Hours = s.Hours.Add(item.Quantity)
			r.Labor[item.CostCode] = s

			r.TotalLaborCost = r.TotalLaborCost.Add(cost)
			r.TotalHours = r.TotalHours.Add(item.Quantity)
			continue
		}

		s := r.Material[item.CostCode]
		s.CostCode = item.CostCode
		s.Cost = s.Cost.Add(cost)
		s.Revenue = s.Revenue.Add(revenue)
		r.Material[item.CostCode] = s

		r.TotalMaterialCost = r.TotalMaterialCost.Add(cost)
		r.TotalRevenue = r.TotalRevenue.Add(revenue)
	}

	r.GrossProfit = r.TotalRevenue.Sub(r.TotalLaborCost.Add(r.TotalMaterialCost))
	if r.TotalRevenue.IsPositive() {
		r.MarginPct = r.GrossProfit.Div(r.TotalRevenue).Mul(decimal.NewFromInt(100))
	}
	return r, nil
}
