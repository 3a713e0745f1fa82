// Package pricing is the pure cost-rollup engine behind estimates, job
// profit/loss reports and invoices.
//
// Every function is a synchronous, side-effect-free computation over its
// arguments: no I/O, no shared state, safe to call concurrently. Amounts stay
// in exact decimals end to end; rounding to 2 places happens only at the HTTP
// response boundary.
package pricing

import (
	"errors"
	"fmt"

	"fieldbilling/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ErrInvalidLineItem is returned when a line item carries a negative
// quantity, unit cost or unit price.
var ErrInvalidLineItem = errors.New("invalid line item")

func validateLineItem(item entities.LineItem) error {
	switch {
	case item.Quantity.IsNegative():
		return fmt.Errorf("%w: negative quantity %s", ErrInvalidLineItem, item.Quantity)
	case item.UnitCost.IsNegative():
		return fmt.Errorf("%w: negative unit cost %s", ErrInvalidLineItem, item.UnitCost)
	case item.UnitPrice.IsNegative():
		return fmt.Errorf("%w: negative unit price %s", ErrInvalidLineItem, item.UnitPrice)
	}
	return nil
}

// CostOf computes the internal cost of one line: quantity × unit cost. For
// labor lines the unit cost is the burden rate and quantity is hours, so the
// same formula covers both kinds.
func CostOf(item entities.LineItem) (decimal.Decimal, error) {
	if err := validateLineItem(item); err != nil {
		return decimal.Decimal{}, err
	}
	return item.Quantity.Mul(item.UnitCost), nil
}

// RevenueOf computes the customer-facing revenue of one line. Labor lines
// contribute no per-line revenue; billed amounts for labor come from the
// estimate total, not from individual time entries.
func RevenueOf(item entities.LineItem) (decimal.Decimal, error) {
	if err := validateLineItem(item); err != nil {
		return decimal.Decimal{}, err
	}
	if item.Kind == entities.LineItemKindLabor {
		return decimal.Decimal{}, nil
	}
	return item.Quantity.Mul(item.UnitPrice), nil
}

// MarginOf computes revenue minus cost for one line.
func MarginOf(item entities.LineItem) (decimal.Decimal, error) {
	cost, err := CostOf(item)
	if err != nil {
		return decimal.Decimal{}, err
	}
	revenue, err := RevenueOf(item)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return revenue.Sub(cost), nil
}
