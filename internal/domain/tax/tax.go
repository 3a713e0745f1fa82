// Package tax resolves U.S. state and territory sales-tax rates.
//
// The table is fixed at build time and never mutated; every rate is a
// whole-number percentage (7.25 means 7.25%).
package tax

import (
	"errors"
	"fmt"
	"iter"
	"sort"

	"github.com/shopspring/decimal"
)

// ErrUnknownJurisdiction is returned when a code has no entry in the table.
// A miss is an error, never a silent zero rate: treating an invalid code as
// tax-free would produce regulatory-incorrect invoices.
var ErrUnknownJurisdiction = errors.New("unknown tax jurisdiction")

// Jurisdiction is one taxing state or territory.
type Jurisdiction struct {
	Code string          `json:"code"`
	Name string          `json:"name"`
	Rate decimal.Decimal `json:"rate"`
}

// RateFor resolves the sales-tax percentage for a jurisdiction code.
// Matching is exact and case-sensitive; callers uppercase before lookup.
func RateFor(code string) (decimal.Decimal, error) {
	j, ok := byCode[code]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrUnknownJurisdiction, code)
	}
	return j.Rate, nil
}

// Lookup returns the full jurisdiction record for a code.
func Lookup(code string) (Jurisdiction, error) {
	j, ok := byCode[code]
	if !ok {
		return Jurisdiction{}, fmt.Errorf("%w: %q", ErrUnknownJurisdiction, code)
	}
	return j, nil
}

// All yields every jurisdiction sorted by display name ascending. The
// sequence is finite and restartable; iterating twice yields the same order,
// which keeps selection widgets and snapshots stable.
func All() iter.Seq[Jurisdiction] {
	return func(yield func(Jurisdiction) bool) {
		for _, j := range byName {
			if !yield(j) {
				return
			}
		}
	}
}

var (
	byCode map[string]Jurisdiction
	byName []Jurisdiction
)

func init() {
	byCode = make(map[string]Jurisdiction, len(table))
	byName = make([]Jurisdiction, 0, len(table))
	for _, e := range table {
		j := Jurisdiction{Code: e.code, Name: e.name, Rate: decimal.RequireFromString(e.rate)}
		byCode[j.Code] = j
		byName = append(byName, j)
	}
	sort.Slice(byName, func(i, k int) bool { return byName[i].Name < byName[k].Name })
}

// State base rates; local surtaxes are out of scope.
var table = []struct {
	code string
	name string
	rate string
}{
	{"AL", "Alabama", "4.00"},
	{"AK", "Alaska", "0.00"},
	{"AZ", "Arizona", "5.60"},
	{"AR", "Arkansas", "6.50"},
	{"CA", "California", "7.25"},
	{"CO", "Colorado", "2.90"},
	{"CT", "Connecticut", "6.35"},
	{"DE", "Delaware", "0.00"},
	{"DC", "District of Columbia", "6.00"},
	{"FL", "Florida", "6.00"},
	{"GA", "Georgia", "4.00"},
	{"HI", "Hawaii", "4.00"},
	{"ID", "Idaho", "6.00"},
	{"IL", "Illinois", "6.25"},
	{"IN", "Indiana", "7.00"},
	{"IA", "Iowa", "6.00"},
	{"KS", "Kansas", "6.50"},
	{"KY", "Kentucky", "6.00"},
	{"LA", "Louisiana", "4.45"},
	{"ME", "Maine", "5.50"},
	{"MD", "Maryland", "6.00"},
	{"MA", "Massachusetts", "6.25"},
	{"MI", "Michigan", "6.00"},
	{"MN", "Minnesota", "6.875"},
	{"MS", "Mississippi", "7.00"},
	{"MO", "Missouri", "4.225"},
	{"MT", "Montana", "0.00"},
	{"NE", "Nebraska", "5.50"},
	{"NV", "Nevada", "6.85"},
	{"NH", "New Hampshire", "0.00"},
	{"NJ", "New Jersey", "6.625"},
	{"NM", "New Mexico", "5.125"},
	{"NY", "New York", "4.00"},
	{"NC", "North Carolina", "4.75"},
	{"ND", "North Dakota", "5.00"},
	{"OH", "Ohio", "5.75"},
	{"OK", "Oklahoma", "4.50"},
	{"OR", "Oregon", "0.00"},
	{"PA", "Pennsylvania", "6.00"},
	{"RI", "Rhode Island", "7.00"},
	{"SC", "South Carolina", "6.00"},
	{"SD", "South Dakota", "4.50"},
	{"TN", "Tennessee", "7.00"},
	{"TX", "Texas", "6.25"},
	{"UT", "Utah", "6.10"},
	{"VT", "Vermont", "6.00"},
	{"VA", "Virginia", "5.30"},
	{"WA", "Washington", "6.50"},
	{"WV", "West Virginia", "6.00"},
	{"WI", "Wisconsin", "5.00"},
	{"WY", "Wyoming", "4.00"},
}
