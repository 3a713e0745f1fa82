package interfaces

import (
	"context"

	"fieldbilling/internal/domain/entities"
)

// IEstimateRepository abstracts DynamoDB persistence for Estimate.
//
// The billing service must be able to:
//   - create an estimate when the estimating flow prices a job
//   - update estimate status by job ID (approve/reject/cancel)
//   - replace the money breakdown of a pending estimate after recalculation

type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	GetByJobID(ctx context.Context, jobID string) (entities.Estimate, error)
	UpdateStatusByJobID(ctx context.Context, jobID string, status entities.EstimateStatus) (entities.Estimate, error)
	UpdateTotalsByID(ctx context.Context, id string, e entities.Estimate) (entities.Estimate, error)
}
