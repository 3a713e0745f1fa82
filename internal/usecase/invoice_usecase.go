package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"fieldbilling/internal/domain/entities"
	"fieldbilling/internal/domain/pricing"
	"fieldbilling/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvoiceNotFound      = errors.New("invoice not found")
	ErrInvoiceAlreadyExists = errors.New("invoice already exists")
	ErrInvalidInvoiceID     = errors.New("invalid invoice id")
	ErrEstimateNotApproved  = errors.New("estimate not approved")
	ErrInvoiceNotIssued     = errors.New("invoice not issued")
	ErrInvoiceAlreadyPaid   = errors.New("invoice already paid")
)

// IInvoiceUseCase cuts and advances invoices.
//
// An invoice can only be cut from an approved estimate; its money breakdown
// is recomputed through the estimate-total engine at creation time (with the
// invoice's own jurisdiction, which may differ from the estimate's when the
// job site moved) and then copied, so later line-item writes never move an
// issued invoice.

type IInvoiceUseCase interface {
	CreateFromEstimate(ctx context.Context, estimateID, taxJurisdiction string) (entities.Invoice, error)
	Issue(ctx context.Context, invoiceID string) (entities.Invoice, error)
	MarkPaid(ctx context.Context, invoiceID string) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	GetByJobID(ctx context.Context, jobID string) (entities.Invoice, error)
}

type InvoiceUseCase struct {
	repo         interfaces.IInvoiceRepository
	estimateRepo interfaces.IEstimateRepository
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(repo interfaces.IInvoiceRepository, estimateRepo interfaces.IEstimateRepository) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, estimateRepo: estimateRepo}
}

func (u *InvoiceUseCase) CreateFromEstimate(ctx context.Context, estimateID, taxJurisdiction string) (entities.Invoice, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return entities.Invoice{}, ErrInvalidEstimateID
	}

	log.Printf("[invoice][usecase] create start estimate_id=%s", estimateID)

	est, err := u.estimateRepo.GetByID(ctx, estimateID)
	if err != nil {
		log.Printf("[invoice][usecase] failed loading estimate estimate_id=%s err=%v", estimateID, err)
		return entities.Invoice{}, err
	}
	if est.ID == "" {
		log.Printf("[invoice][usecase] estimate not found estimate_id=%s", estimateID)
		return entities.Invoice{}, ErrEstimateNotFound
	}
	if est.Status != entities.EstimateStatusApproved {
		log.Printf("[invoice][usecase] estimate not approved estimate_id=%s status=%s", estimateID, est.Status)
		return entities.Invoice{}, ErrEstimateNotApproved
	}

	// Enforce: 1 invoice per job.
	if existing, err := u.repo.GetByJobID(ctx, est.JobID); err != nil {
		return entities.Invoice{}, err
	} else if existing.ID != "" {
		return entities.Invoice{}, ErrInvoiceAlreadyExists
	}

	jurisdiction := normalizeJurisdiction(taxJurisdiction)
	if jurisdiction == "" {
		jurisdiction = est.TaxJurisdiction
	}

	total, err := pricing.ComputeTotal(est.Subtotal, est.OverheadRatePct, jurisdiction)
	if err != nil {
		return entities.Invoice{}, err
	}

	now := time.Now().UTC()
	inv := entities.Invoice{
		ID:              uuid.NewString(),
		JobID:           est.JobID,
		EstimateID:      est.ID,
		Subtotal:        total.Subtotal,
		OverheadAmount:  total.OverheadAmount,
		TaxJurisdiction: jurisdiction,
		TaxAmount:       total.TaxAmount,
		GrandTotal:      total.GrandTotal,
		Status:          entities.InvoiceStatusDraft,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := u.repo.Create(ctx, inv)
	if err != nil {
		return entities.Invoice{}, err
	}
	log.Printf("[invoice][usecase] created invoice_id=%s job_id=%s grand_total=%s", created.ID, created.JobID, created.GrandTotal)
	return created, nil
}

func (u *InvoiceUseCase) Issue(ctx context.Context, invoiceID string) (entities.Invoice, error) {
	inv, err := u.get(ctx, invoiceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.Status != entities.InvoiceStatusDraft {
		if inv.Status == entities.InvoiceStatusPaid {
			return entities.Invoice{}, ErrInvoiceAlreadyPaid
		}
		return inv, nil
	}
	return u.updateStatus(ctx, inv.ID, entities.InvoiceStatusIssued)
}

func (u *InvoiceUseCase) MarkPaid(ctx context.Context, invoiceID string) (entities.Invoice, error) {
	inv, err := u.get(ctx, invoiceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	switch inv.Status {
	case entities.InvoiceStatusDraft:
		return entities.Invoice{}, ErrInvoiceNotIssued
	case entities.InvoiceStatusPaid:
		return entities.Invoice{}, ErrInvoiceAlreadyPaid
	}
	return u.updateStatus(ctx, inv.ID, entities.InvoiceStatusPaid)
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	return u.get(ctx, id)
}

func (u *InvoiceUseCase) GetByJobID(ctx context.Context, jobID string) (entities.Invoice, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Invoice{}, ErrInvalidJobID
	}

	inv, err := u.repo.GetByJobID(ctx, jobID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *InvoiceUseCase) get(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *InvoiceUseCase) updateStatus(ctx context.Context, id string, status entities.InvoiceStatus) (entities.Invoice, error) {
	updated, err := u.repo.UpdateStatusByID(ctx, id, status)
	if err != nil {
		return entities.Invoice{}, err
	}
	if updated.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	log.Printf("[invoice][usecase] status updated invoice_id=%s status=%s", updated.ID, updated.Status)
	return updated, nil
}
