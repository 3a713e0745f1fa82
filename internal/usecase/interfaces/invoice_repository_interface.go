package interfaces

import (
	"context"

	"fieldbilling/internal/domain/entities"
)

// IInvoiceRepository abstracts DynamoDB persistence for invoices.

type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	GetByJobID(ctx context.Context, jobID string) (entities.Invoice, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.InvoiceStatus) (entities.Invoice, error)
}
