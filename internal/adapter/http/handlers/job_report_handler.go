package handlers

import (
	"errors"
	"net/http"

	response "fieldbilling/internal/adapter/http/dto/response"
	"fieldbilling/internal/domain/pricing"
	"fieldbilling/internal/usecase"
	"fieldbilling/pkg"

	"github.com/gin-gonic/gin"
)

type JobReportHandler struct {
	usecase usecase.IJobReportUseCase
}

func NewJobReportHandler(uc usecase.IJobReportUseCase) *JobReportHandler {
	return &JobReportHandler{usecase: uc}
}

// GetProfitLoss recomputes the job's cost and revenue rollup from its line
// items on every request.
func (h *JobReportHandler) GetProfitLoss(c *gin.Context) {
	rollup, err := h.usecase.ProfitLoss(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapJobReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRollup(rollup))
}

func mapJobReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID),
		errors.Is(err, pricing.ErrInvalidLineItem):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
