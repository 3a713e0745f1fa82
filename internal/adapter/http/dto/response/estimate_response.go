package response

import (
	"time"

	"fieldbilling/internal/domain/entities"
)

type EstimateResponse struct {
	ID              string    `json:"id"`
	JobID           string    `json:"job_id"`
	ServiceAmount   string    `json:"service_amount"`
	Subtotal        string    `json:"subtotal"`
	OverheadRatePct string    `json:"overhead_rate_pct"`
	OverheadAmount  string    `json:"overhead_amount"`
	TaxJurisdiction string    `json:"tax_jurisdiction,omitempty"`
	TaxAmount       string    `json:"tax_amount"`
	GrandTotal      string    `json:"grand_total"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	return EstimateResponse{
		ID:              e.ID,
		JobID:           e.JobID,
		ServiceAmount:   money(e.ServiceAmount),
		Subtotal:        money(e.Subtotal),
		OverheadRatePct: rate(e.OverheadRatePct),
		OverheadAmount:  money(e.OverheadAmount),
		TaxJurisdiction: e.TaxJurisdiction,
		TaxAmount:       money(e.TaxAmount),
		GrandTotal:      money(e.GrandTotal),
		Status:          string(e.Status),
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}
