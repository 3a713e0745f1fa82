package request

import (
	"testing"

	"fieldbilling/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func f(v float64) *float64 {
	return &v
}

func TestLineItemRequest_Resolve(t *testing.T) {
	t.Run("full payload", func(t *testing.T) {
		r := LineItemRequest{
			JobID:     " job-1 ",
			Kind:      " Material ",
			CostCode:  " ELEC-01 ",
			Quantity:  f(10),
			UnitCost:  f(5),
			UnitPrice: f(12),
		}

		item := r.Resolve()
		if item.JobID != "job-1" || item.CostCode != "ELEC-01" {
			t.Fatalf("unexpected normalization: %+v", item)
		}
		if item.Kind != entities.LineItemKindMaterial {
			t.Fatalf("expected material kind, got %q", item.Kind)
		}
		if !item.Quantity.Equal(decimal.NewFromInt(10)) || !item.UnitPrice.Equal(decimal.NewFromInt(12)) {
			t.Fatalf("unexpected amounts: %+v", item)
		}
	})

	t.Run("absent numerics coalesce to zero", func(t *testing.T) {
		r := LineItemRequest{JobID: "job-1", Kind: "labor", CostCode: "LAB-01"}

		item := r.Resolve()
		if !item.Quantity.IsZero() || !item.UnitCost.IsZero() || !item.UnitPrice.IsZero() {
			t.Fatalf("expected zeroed amounts: %+v", item)
		}
	})

	t.Run("explicit zero survives", func(t *testing.T) {
		r := LineItemRequest{JobID: "job-1", Kind: "material", CostCode: "ELEC-01", Quantity: f(0), UnitCost: f(9.99)}

		item := r.Resolve()
		if !item.Quantity.IsZero() {
			t.Fatalf("expected zero quantity, got %s", item.Quantity)
		}
		if !item.UnitCost.Equal(decimal.RequireFromString("9.99")) {
			t.Fatalf("unexpected unit cost: %s", item.UnitCost)
		}
	})
}
