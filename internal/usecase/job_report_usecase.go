package usecase

import (
	"context"
	"strings"

	"fieldbilling/internal/domain/entities"
	"fieldbilling/internal/domain/pricing"
	"fieldbilling/internal/usecase/interfaces"
)

// IJobReportUseCase produces the job profit/loss view.
//
// The rollup is recomputed from source data on every request — time entries
// and material lines can be written independently at any moment, so nothing
// here is cached.

type IJobReportUseCase interface {
	ProfitLoss(ctx context.Context, jobID string) (entities.Rollup, error)
}

type JobReportUseCase struct {
	lineItems interfaces.ILineItemRepository
}

var _ IJobReportUseCase = (*JobReportUseCase)(nil)

func NewJobReportUseCase(lineItems interfaces.ILineItemRepository) *JobReportUseCase {
	return &JobReportUseCase{lineItems: lineItems}
}

func (u *JobReportUseCase) ProfitLoss(ctx context.Context, jobID string) (entities.Rollup, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Rollup{}, ErrInvalidJobID
	}

	items, err := u.lineItems.ListByJobID(ctx, jobID)
	if err != nil {
		return entities.Rollup{}, err
	}
	return pricing.Aggregate(items)
}
