package response

import (
	"time"

	"fieldbilling/internal/domain/entities"
)

type LineItemResponse struct {
	ID          string    `json:"id"`
	JobID       string    `json:"job_id"`
	Kind        string    `json:"kind"`
	CostCode    string    `json:"cost_code"`
	Description string    `json:"description,omitempty"`
	Quantity    string    `json:"quantity"`
	UnitCost    string    `json:"unit_cost"`
	UnitPrice   string    `json:"unit_price"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromLineItem(item entities.LineItem) LineItemResponse {
	return LineItemResponse{
		ID:          item.ID,
		JobID:       item.JobID,
		Kind:        string(item.Kind),
		CostCode:    item.CostCode,
		Description: item.Description,
		Quantity:    rate(item.Quantity),
		UnitCost:    money(item.UnitCost),
		UnitPrice:   money(item.UnitPrice),
		CreatedAt:   item.CreatedAt,
	}
}

func FromLineItems(items []entities.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, FromLineItem(item))
	}
	return out
}
