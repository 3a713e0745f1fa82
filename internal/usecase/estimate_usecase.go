package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"fieldbilling/internal/domain/entities"
	"fieldbilling/internal/domain/pricing"
	"fieldbilling/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEstimateNotFound      = errors.New("estimate not found")
	ErrEstimateAlreadyExists = errors.New("estimate already exists")
	ErrEstimateFinalized     = errors.New("estimate is finalized")
	ErrInvalidJobID          = errors.New("invalid job_id")
	ErrInvalidEstimateID     = errors.New("invalid estimate id")
	ErrInvalidServiceAmount  = errors.New("invalid service amount")
)

// IEstimateUseCase exposes the estimate pricing flow.
//
// CreateEstimate prices the job's current line items through the rollup
// engine and freezes the result as a pending estimate. Recalculate reprices a
// still-pending estimate from fresh line data; a finalized estimate is
// immutable and can only be superseded by a new one.

type IEstimateUseCase interface {
	CreateEstimate(ctx context.Context, in CreateEstimateInput) (entities.Estimate, error)
	Recalculate(ctx context.Context, estimateID string) (entities.Estimate, error)
	ApproveByJobID(ctx context.Context, jobID string) (entities.Estimate, error)
	RejectByJobID(ctx context.Context, jobID string) (entities.Estimate, error)
	CancelByJobID(ctx context.Context, jobID string) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	GetByJobID(ctx context.Context, jobID string) (entities.Estimate, error)
}

// CreateEstimateInput carries the pricing parameters supplied by the
// estimating UI. TaxJurisdiction is optional; empty means no tax line.
type CreateEstimateInput struct {
	JobID           string
	ServiceAmount   decimal.Decimal
	OverheadRatePct decimal.Decimal
	TaxJurisdiction string
}

type EstimateUseCase struct {
	repo      interfaces.IEstimateRepository
	lineItems interfaces.ILineItemRepository
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository, lineItems interfaces.ILineItemRepository) *EstimateUseCase {
	return &EstimateUseCase{repo: repo, lineItems: lineItems}
}

func (u *EstimateUseCase) CreateEstimate(ctx context.Context, in CreateEstimateInput) (entities.Estimate, error) {
	jobID := strings.TrimSpace(in.JobID)
	if jobID == "" {
		return entities.Estimate{}, ErrInvalidJobID
	}
	if in.ServiceAmount.IsNegative() {
		return entities.Estimate{}, ErrInvalidServiceAmount
	}
	jurisdiction := normalizeJurisdiction(in.TaxJurisdiction)

	// Enforce: 1 live estimate per job.
	if existing, err := u.repo.GetByJobID(ctx, jobID); err != nil {
		return entities.Estimate{}, err
	} else if existing.ID != "" {
		return entities.Estimate{}, ErrEstimateAlreadyExists
	}

	total, err := u.price(ctx, jobID, in.ServiceAmount, in.OverheadRatePct, jurisdiction)
	if err != nil {
		return entities.Estimate{}, err
	}

	now := time.Now().UTC()
	e := entities.Estimate{
		ID:              uuid.NewString(),
		JobID:           jobID,
		ServiceAmount:   in.ServiceAmount,
		Subtotal:        total.Subtotal,
		OverheadRatePct: in.OverheadRatePct,
		OverheadAmount:  total.OverheadAmount,
		TaxJurisdiction: jurisdiction,
		TaxAmount:       total.TaxAmount,
		GrandTotal:      total.GrandTotal,
		Status:          entities.EstimateStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return u.repo.Create(ctx, e)
}

// Recalculate reprices a pending estimate from the job's current line items,
// keeping the original service amount, overhead rate and jurisdiction.
func (u *EstimateUseCase) Recalculate(ctx context.Context, estimateID string) (entities.Estimate, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, estimateID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	if e.Finalized() {
		return entities.Estimate{}, ErrEstimateFinalized
	}

	total, err := u.price(ctx, e.JobID, e.ServiceAmount, e.OverheadRatePct, e.TaxJurisdiction)
	if err != nil {
		return entities.Estimate{}, err
	}

	e.Subtotal = total.Subtotal
	e.OverheadAmount = total.OverheadAmount
	e.TaxAmount = total.TaxAmount
	e.GrandTotal = total.GrandTotal

	updated, err := u.repo.UpdateTotalsByID(ctx, e.ID, e)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return updated, nil
}

// price runs the rollup engine over the job's stored line items. The estimate
// subtotal is the material revenue plus the flat service amount; labor lines
// carry no per-line revenue and influence the estimate only through the
// service amount chosen by the estimator.
func (u *EstimateUseCase) price(ctx context.Context, jobID string, serviceAmount, overheadRatePct decimal.Decimal, jurisdiction string) (entities.EstimateTotal, error) {
	items, err := u.lineItems.ListByJobID(ctx, jobID)
	if err != nil {
		return entities.EstimateTotal{}, err
	}

	rollup, err := pricing.Aggregate(items)
	if err != nil {
		return entities.EstimateTotal{}, err
	}

	subtotal := rollup.TotalRevenue.Add(serviceAmount)
	return pricing.ComputeTotal(subtotal, overheadRatePct, jurisdiction)
}

func (u *EstimateUseCase) ApproveByJobID(ctx context.Context, jobID string) (entities.Estimate, error) {
	return u.updateStatusByJobID(ctx, jobID, entities.EstimateStatusApproved)
}

func (u *EstimateUseCase) RejectByJobID(ctx context.Context, jobID string) (entities.Estimate, error) {
	return u.updateStatusByJobID(ctx, jobID, entities.EstimateStatusRejected)
}

func (u *EstimateUseCase) CancelByJobID(ctx context.Context, jobID string) (entities.Estimate, error) {
	return u.updateStatusByJobID(ctx, jobID, entities.EstimateStatusCanceled)
}

func (u *EstimateUseCase) updateStatusByJobID(ctx context.Context, jobID string, status entities.EstimateStatus) (entities.Estimate, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Estimate{}, ErrInvalidJobID
	}

	existing, err := u.repo.GetByJobID(ctx, jobID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if existing.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	if existing.Finalized() {
		return entities.Estimate{}, ErrEstimateFinalized
	}

	updated, err := u.repo.UpdateStatusByJobID(ctx, jobID, status)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return updated, nil
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func (u *EstimateUseCase) GetByJobID(ctx context.Context, jobID string) (entities.Estimate, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Estimate{}, ErrInvalidJobID
	}

	e, err := u.repo.GetByJobID(ctx, jobID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

// normalizeJurisdiction uppercases a code at the adapter boundary; the tax
// table itself matches case-sensitively.
func normalizeJurisdiction(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
