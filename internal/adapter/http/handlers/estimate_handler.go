package handlers

import (
	"context"
	"errors"
	"net/http"

	request "fieldbilling/internal/adapter/http/dto/request"
	response "fieldbilling/internal/adapter/http/dto/response"
	"fieldbilling/internal/domain/entities"
	"fieldbilling/internal/domain/pricing"
	"fieldbilling/internal/domain/tax"
	"fieldbilling/internal/usecase"
	"fieldbilling/pkg"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
)

// EstimateHandler handles HTTP requests for the estimate pricing flow.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// CreateEstimate prices the job's current line items into a pending estimate.
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	jobID := payload.ResolveJobID()
	if jobID == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	in := usecase.CreateEstimateInput{
		JobID:           jobID,
		ServiceAmount:   resolveAmount(payload.ServiceAmount),
		OverheadRatePct: resolveAmount(payload.OverheadRatePct),
		TaxJurisdiction: payload.TaxJurisdiction,
	}

	estimate, err := h.usecase.CreateEstimate(c.Request.Context(), in)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimate(estimate))
}

// RecalculateEstimate reprices a pending estimate from the job's current
// line items.
func (h *EstimateHandler) RecalculateEstimate(c *gin.Context) {
	estimate, err := h.usecase.Recalculate(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func (h *EstimateHandler) ApproveEstimate(c *gin.Context) {
	h.patchEstimateStatusByRequest(c, h.usecase.ApproveByJobID)
}

func (h *EstimateHandler) RejectEstimate(c *gin.Context) {
	h.patchEstimateStatusByRequest(c, h.usecase.RejectByJobID)
}

func (h *EstimateHandler) CancelEstimate(c *gin.Context) {
	h.patchEstimateStatusByRequest(c, h.usecase.CancelByJobID)
}

func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	estimate, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func (h *EstimateHandler) GetEstimateByJob(c *gin.Context) {
	estimate, err := h.usecase.GetByJobID(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func (h *EstimateHandler) patchEstimateStatusByRequest(
	c *gin.Context,
	updater func(ctx context.Context, jobID string) (entities.Estimate, error),
) {
	var payload request.JobActionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	jobID := payload.ResolveJobID()
	if jobID == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	estimate, err := updater(c.Request.Context(), jobID)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func resolveAmount(v *float64) decimal.Decimal {
	if v == nil {
		return decimal.Decimal{}
	}
	return decimal.NewFromFloat(*v)
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID),
		errors.Is(err, usecase.ErrInvalidEstimateID),
		errors.Is(err, usecase.ErrInvalidServiceAmount),
		errors.Is(err, pricing.ErrInvalidLineItem),
		errors.Is(err, pricing.ErrInvalidEstimateInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, tax.ErrUnknownJurisdiction):
		return pkg.NewDomainErrorSimple("UNKNOWN_JURISDICTION", "Unknown tax jurisdiction", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateAlreadyExists):
		return pkg.NewDomainErrorSimple("ESTIMATE_ALREADY_EXISTS", "Estimate already exists for this job", http.StatusConflict)
	case errors.Is(err, usecase.ErrEstimateFinalized):
		return pkg.NewDomainErrorSimple("ESTIMATE_FINALIZED", "Estimate is finalized and cannot change", http.StatusConflict)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
