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
)

var (
	ErrInvalidLineItemKind = errors.New("invalid line item kind")
	ErrInvalidCostCode     = errors.New("invalid cost code")
	ErrLineItemNotFound    = errors.New("line item not found")
)

// ILineItemUseCase records billable lines against a job.

type ILineItemUseCase interface {
	Add(ctx context.Context, item entities.LineItem) (entities.LineItem, error)
	GetByID(ctx context.Context, id string) (entities.LineItem, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.LineItem, error)
}

type LineItemUseCase struct {
	repo interfaces.ILineItemRepository
}

var _ ILineItemUseCase = (*LineItemUseCase)(nil)

func NewLineItemUseCase(repo interfaces.ILineItemRepository) *LineItemUseCase {
	return &LineItemUseCase{repo: repo}
}

// Add validates and persists one line. Value-range rules (non-negative
// quantity, cost and price) are enforced by running the line through the
// costing engine before it is stored, so no row that the rollup would later
// reject can ever be written.
func (u *LineItemUseCase) Add(ctx context.Context, item entities.LineItem) (entities.LineItem, error) {
	item.JobID = strings.TrimSpace(item.JobID)
	if item.JobID == "" {
		return entities.LineItem{}, ErrInvalidJobID
	}
	if item.Kind != entities.LineItemKindLabor && item.Kind != entities.LineItemKindMaterial {
		return entities.LineItem{}, ErrInvalidLineItemKind
	}
	item.CostCode = strings.TrimSpace(item.CostCode)
	if item.CostCode == "" {
		return entities.LineItem{}, ErrInvalidCostCode
	}
	if _, err := pricing.CostOf(item); err != nil {
		return entities.LineItem{}, err
	}

	item.ID = uuid.NewString()
	item.CreatedAt = time.Now().UTC()
	return u.repo.Create(ctx, item)
}

func (u *LineItemUseCase) GetByID(ctx context.Context, id string) (entities.LineItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.LineItem{}, ErrLineItemNotFound
	}

	item, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.LineItem{}, err
	}
	if item.ID == "" {
		return entities.LineItem{}, ErrLineItemNotFound
	}
	return item, nil
}

func (u *LineItemUseCase) ListByJobID(ctx context.Context, jobID string) ([]entities.LineItem, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, ErrInvalidJobID
	}
	return u.repo.ListByJobID(ctx, jobID)
}
