package usecase

import (
	"context"

	"fieldbilling/internal/domain/tax"
)

// ITaxUseCase exposes the jurisdiction table to the HTTP layer. The table is
// static, so these calls never touch storage; the interface exists for
// handler-level mocking symmetry with the other usecases.

type ITaxUseCase interface {
	ListJurisdictions(ctx context.Context) ([]tax.Jurisdiction, error)
	Resolve(ctx context.Context, code string) (tax.Jurisdiction, error)
}

type TaxUseCase struct{}

var _ ITaxUseCase = (*TaxUseCase)(nil)

func NewTaxUseCase() *TaxUseCase {
	return &TaxUseCase{}
}

// ListJurisdictions returns the table in display order (name ascending).
func (u *TaxUseCase) ListJurisdictions(_ context.Context) ([]tax.Jurisdiction, error) {
	var out []tax.Jurisdiction
	for j := range tax.All() {
		out = append(out, j)
	}
	return out, nil
}

func (u *TaxUseCase) Resolve(_ context.Context, code string) (tax.Jurisdiction, error) {
	return tax.Lookup(normalizeJurisdiction(code))
}
