package interfaces

import (
	"context"

	"fieldbilling/internal/domain/entities"
)

// ILineItemRepository abstracts DynamoDB persistence for job line items.
//
// Line items are append-only: a correction after an estimate is finalized is
// a new line, never an in-place edit, so the interface carries no update.

type ILineItemRepository interface {
	Create(ctx context.Context, item entities.LineItem) (entities.LineItem, error)
	GetByID(ctx context.Context, id string) (entities.LineItem, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.LineItem, error)
}
