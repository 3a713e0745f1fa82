package request

import (
	"strings"

	"fieldbilling/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// LineItemRequest is the payload for recording a billable line against a job.
//
// Numeric fields are pointers so an explicit 0 survives binding; absent
// fields coalesce to 0 here, at the adapter boundary, so the pricing engine
// only ever sees concrete values.
type LineItemRequest struct {
	JobID       string   `json:"job_id" binding:"required"`
	Kind        string   `json:"kind" binding:"required"`
	CostCode    string   `json:"cost_code" binding:"required"`
	Description string   `json:"description"`
	Quantity    *float64 `json:"quantity"`
	UnitCost    *float64 `json:"unit_cost"`
	UnitPrice   *float64 `json:"unit_price"`
}

// Resolve maps the payload onto the domain shape. Value-range validation
// (non-negative amounts, known kind) stays with the use case; this only
// normalizes presence and whitespace.
func (r LineItemRequest) Resolve() entities.LineItem {
	return entities.LineItem{
		JobID:       strings.TrimSpace(r.JobID),
		Kind:        entities.LineItemKind(strings.ToLower(strings.TrimSpace(r.Kind))),
		CostCode:    strings.TrimSpace(r.CostCode),
		Description: strings.TrimSpace(r.Description),
		Quantity:    coalesce(r.Quantity),
		UnitCost:    coalesce(r.UnitCost),
		UnitPrice:   coalesce(r.UnitPrice),
	}
}

func coalesce(v *float64) decimal.Decimal {
	if v == nil {
		return decimal.Decimal{}
	}
	return decimal.NewFromFloat(*v)
}
