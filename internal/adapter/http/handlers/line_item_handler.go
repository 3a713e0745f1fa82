package handlers

import (
	"errors"
	"net/http"

	request "fieldbilling/internal/adapter/http/dto/request"
	response "fieldbilling/internal/adapter/http/dto/response"
	"fieldbilling/internal/domain/pricing"
	"fieldbilling/internal/usecase"
	"fieldbilling/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidLineItemPayload = pkg.NewDomainErrorSimple("INVALID_LINE_ITEM_INPUT", "Invalid line item payload", http.StatusBadRequest)

type LineItemHandler struct {
	usecase usecase.ILineItemUseCase
}

func NewLineItemHandler(uc usecase.ILineItemUseCase) *LineItemHandler {
	return &LineItemHandler{usecase: uc}
}

// AddLineItem records a labor or material cost against a job.
func (h *LineItemHandler) AddLineItem(c *gin.Context) {
	var payload request.LineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLineItemPayload.HTTPStatus, errInvalidLineItemPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.Add(c.Request.Context(), payload.Resolve())
	if err != nil {
		appErr := mapLineItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromLineItem(item))
}

func (h *LineItemHandler) GetLineItem(c *gin.Context) {
	item, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapLineItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLineItem(item))
}

func (h *LineItemHandler) ListLineItemsByJob(c *gin.Context) {
	items, err := h.usecase.ListByJobID(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapLineItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLineItems(items))
}

func mapLineItemError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID),
		errors.Is(err, usecase.ErrInvalidLineItemKind),
		errors.Is(err, usecase.ErrInvalidCostCode),
		errors.Is(err, pricing.ErrInvalidLineItem):
		return pkg.NewDomainErrorSimple("INVALID_LINE_ITEM", "Invalid line item", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLineItemNotFound):
		return pkg.NewDomainErrorSimple("LINE_ITEM_NOT_FOUND", "Line item not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
