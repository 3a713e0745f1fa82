package handlers

import (
	"errors"
	"net/http"

	response "fieldbilling/internal/adapter/http/dto/response"
	"fieldbilling/internal/domain/tax"
	"fieldbilling/internal/usecase"
	"fieldbilling/pkg"

	"github.com/gin-gonic/gin"
)

type TaxHandler struct {
	usecase usecase.ITaxUseCase
}

func NewTaxHandler(uc usecase.ITaxUseCase) *TaxHandler {
	return &TaxHandler{usecase: uc}
}

func (h *TaxHandler) ListJurisdictions(c *gin.Context) {
	jurisdictions, err := h.usecase.ListJurisdictions(c.Request.Context())
	if err != nil {
		appErr := mapTaxError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJurisdictions(jurisdictions))
}

func (h *TaxHandler) GetJurisdiction(c *gin.Context) {
	jurisdiction, err := h.usecase.Resolve(c.Request.Context(), c.Param("code"))
	if err != nil {
		appErr := mapTaxError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJurisdiction(jurisdiction))
}

func mapTaxError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, tax.ErrUnknownJurisdiction):
		return pkg.NewDomainErrorSimple("UNKNOWN_JURISDICTION", "Unknown tax jurisdiction", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
