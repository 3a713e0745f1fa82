package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the billing state of an invoice.

type InvoiceStatus string

const (
	InvoiceStatusDraft  InvoiceStatus = "draft"
	InvoiceStatusIssued InvoiceStatus = "issued"
	InvoiceStatusPaid   InvoiceStatus = "paid"
)

// Invoice is the payable document cut from an approved estimate.
//
// The money breakdown is copied from the estimate at creation time so the
// invoice stays stable even if the job's line items change afterwards.
//
// Storage model (DynamoDB):
//   - PK: id
//   - Lookup by job uses the job_id-index GSI.
type Invoice struct {
	ID              string          `json:"id"`
	JobID           string          `json:"job_id"`
	EstimateID      string          `json:"estimate_id"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	OverheadAmount  decimal.Decimal `json:"overhead_amount"`
	TaxJurisdiction string          `json:"tax_jurisdiction,omitempty"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	GrandTotal      decimal.Decimal `json:"grand_total"`
	Status          InvoiceStatus   `json:"status"`
	IssuedAt        time.Time       `json:"issued_at,omitzero"`
	PaidAt          time.Time       `json:"paid_at,omitzero"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
