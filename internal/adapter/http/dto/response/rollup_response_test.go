package response

import (
	"testing"

	"fieldbilling/internal/domain/entities"
)

func TestFromRollup(t *testing.T) {
	r := entities.Rollup{
		TotalLaborCost:    dec("520"),
		TotalMaterialCost: dec("50"),
		TotalRevenue:      dec("120"),
		TotalHours:        dec("8"),
		GrossProfit:       dec("-450"),
		MarginPct:         dec("-375"),
		Labor: map[string]entities.CostCodeSummary{
			"LAB-01": {CostCode: "LAB-01", Cost: dec("520"), Hours: dec("8")},
		},
		Material: map[string]entities.CostCodeSummary{
			"PLMB-02": {CostCode: "PLMB-02", Cost: dec("10"), Revenue: dec("20")},
			"ELEC-01": {CostCode: "ELEC-01", Cost: dec("40"), Revenue: dec("100")},
		},
	}

	res := FromRollup(r)
	if res.GrossProfit != "-450.00" || res.MarginPct != "-375" {
		t.Fatalf("unexpected totals: %+v", res)
	}
	if res.TotalHours != "8" {
		t.Fatalf("unexpected hours: %q", res.TotalHours)
	}
	if len(res.Labor) != 1 || res.Labor[0].Hours != "8" {
		t.Fatalf("unexpected labor summaries: %+v", res.Labor)
	}
	if len(res.Material) != 2 || res.Material[0].CostCode != "ELEC-01" || res.Material[1].CostCode != "PLMB-02" {
		t.Fatalf("material summaries not sorted: %+v", res.Material)
	}
	if res.Material[0].Revenue != "100.00" {
		t.Fatalf("unexpected revenue formatting: %+v", res.Material[0])
	}
}
