package response

import (
	"time"

	"fieldbilling/internal/domain/entities"
)

type InvoiceResponse struct {
	ID              string     `json:"id"`
	JobID           string     `json:"job_id"`
	EstimateID      string     `json:"estimate_id"`
	Subtotal        string     `json:"subtotal"`
	OverheadAmount  string     `json:"overhead_amount"`
	TaxJurisdiction string     `json:"tax_jurisdiction,omitempty"`
	TaxAmount       string     `json:"tax_amount"`
	GrandTotal      string     `json:"grand_total"`
	Status          string     `json:"status"`
	IssuedAt        *time.Time `json:"issued_at,omitempty"`
	PaidAt          *time.Time `json:"paid_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:              inv.ID,
		JobID:           inv.JobID,
		EstimateID:      inv.EstimateID,
		Subtotal:        money(inv.Subtotal),
		OverheadAmount:  money(inv.OverheadAmount),
		TaxJurisdiction: inv.TaxJurisdiction,
		TaxAmount:       money(inv.TaxAmount),
		GrandTotal:      money(inv.GrandTotal),
		Status:          string(inv.Status),
		IssuedAt:        optionalTime(inv.IssuedAt),
		PaidAt:          optionalTime(inv.PaidAt),
		CreatedAt:       inv.CreatedAt,
		UpdatedAt:       inv.UpdatedAt,
	}
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
