package response

import (
	"testing"
	"time"

	"fieldbilling/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestFromEstimate(t *testing.T) {
	now := time.Now().UTC()
	e := entities.Estimate{
		ID:              "est-1",
		JobID:           "job-1",
		ServiceAmount:   dec("880"),
		Subtotal:        dec("1000"),
		OverheadRatePct: dec("15"),
		OverheadAmount:  dec("150"),
		TaxJurisdiction: "CA",
		TaxAmount:       dec("72.5"),
		GrandTotal:      dec("1222.5"),
		Status:          entities.EstimateStatusApproved,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	res := FromEstimate(e)
	if res.ID != "est-1" || res.JobID != "job-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Subtotal != "1000.00" || res.OverheadAmount != "150.00" {
		t.Fatalf("unexpected money formatting: %+v", res)
	}
	if res.TaxAmount != "72.50" || res.GrandTotal != "1222.50" {
		t.Fatalf("unexpected tax formatting: %+v", res)
	}
	if res.OverheadRatePct != "15" {
		t.Fatalf("unexpected rate formatting: %q", res.OverheadRatePct)
	}
	if res.Status != "approved" {
		t.Fatalf("unexpected status: %q", res.Status)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestMoneyRoundsHalfAwayFromZero(t *testing.T) {
	if got := money(dec("1.005")); got != "1.01" {
		t.Fatalf("expected 1.01, got %s", got)
	}
	if got := money(dec("-1.005")); got != "-1.01" {
		t.Fatalf("expected -1.01, got %s", got)
	}
	if got := money(dec("2")); got != "2.00" {
		t.Fatalf("expected 2.00, got %s", got)
	}
}
