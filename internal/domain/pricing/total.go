package pricing

import (
	"errors"
	"fmt"

	"fieldbilling/internal/domain/entities"
	"fieldbilling/internal/domain/tax"

	"github.com/shopspring/decimal"
)

// ErrInvalidEstimateInput is returned for a negative subtotal or an overhead
// rate outside [0, 1000]. The upper bound catches data-entry mistakes before
// they reach a customer-facing total.
var ErrInvalidEstimateInput = errors.New("invalid estimate input")

var (
	hundred        = decimal.NewFromInt(100)
	maxOverheadPct = decimal.NewFromInt(1000)
)

// ComputeTotal produces the final payable breakdown for an estimate or
// invoice. Overhead is subtotal × overheadRatePct/100. Tax applies the
// jurisdiction's rate to the pre-overhead subtotal only; an empty jurisdiction
// means no tax. An unknown jurisdiction propagates tax.ErrUnknownJurisdiction.
func ComputeTotal(subtotal, overheadRatePct decimal.Decimal, jurisdiction string) (entities.EstimateTotal, error) {
	if subtotal.IsNegative() {
		return entities.EstimateTotal{}, fmt.Errorf("%w: negative subtotal %s", ErrInvalidEstimateInput, subtotal)
	}
	if overheadRatePct.IsNegative() || overheadRatePct.GreaterThan(maxOverheadPct) {
		return entities.EstimateTotal{}, fmt.Errorf("%w: overhead rate %s%% out of range", ErrInvalidEstimateInput, overheadRatePct)
	}

	overhead := subtotal.Mul(overheadRatePct).Div(hundred)

	taxAmount := decimal.Decimal{}
	if jurisdiction != "" {
		rate, err := tax.RateFor(jurisdiction)
		if err != nil {
			return entities.EstimateTotal{}, err
		}
		taxAmount = subtotal.Mul(rate).Div(hundred)
	}

	return entities.EstimateTotal{
		Subtotal:       subtotal,
		OverheadAmount: overhead,
		TaxAmount:      taxAmount,
		GrandTotal:     subtotal.Add(overhead).Add(taxAmount),
	}, nil
}
