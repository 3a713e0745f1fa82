package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fieldbilling/internal/adapter/http/handlers/mocks"
	"fieldbilling/internal/domain/entities"
	"fieldbilling/internal/domain/tax"
	"fieldbilling/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestEstimateHandler_CreateEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates", h.CreateEstimate)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing job id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates", h.CreateEstimate)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(`{"job_id":"   ","service_amount":500}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase returns mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates", h.CreateEstimate)

		uc.EXPECT().CreateEstimate(gomock.Any(), gomock.Any()).Return(entities.Estimate{}, usecase.ErrEstimateAlreadyExists)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(`{"job_id":"job-1","service_amount":500}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates", h.CreateEstimate)

		now := time.Now().UTC()
		uc.EXPECT().CreateEstimate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in usecase.CreateEstimateInput) (entities.Estimate, error) {
				if in.JobID != "job-1" {
					t.Fatalf("unexpected job id %q", in.JobID)
				}
				if !in.ServiceAmount.Equal(decimal.NewFromInt(500)) {
					t.Fatalf("unexpected service amount %s", in.ServiceAmount)
				}
				return entities.Estimate{
					ID:            "est-1",
					JobID:         "job-1",
					ServiceAmount: decimal.NewFromInt(500),
					Subtotal:      decimal.NewFromInt(500),
					GrandTotal:    decimal.NewFromInt(500),
					Status:        entities.EstimateStatusPending,
					CreatedAt:     now,
					UpdatedAt:     now,
				}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(`{"job_id":"job-1","service_amount":500}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "est-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if body["grand_total"] != "500.00" {
			t.Fatalf("unexpected grand total: %s", w.Body.String())
		}
	})
}

func TestEstimateHandler_PatchStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(path string, f gin.HandlerFunc) (*gin.Engine, string) {
		r := gin.New()
		r.PATCH(path, f)
		return r, path
	}

	t.Run("approve success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)
		r, path := build("/v1/estimates/approve", h.ApproveEstimate)

		uc.EXPECT().ApproveByJobID(gomock.Any(), "job-1").Return(entities.Estimate{ID: "est-1", JobID: "job-1", Status: entities.EstimateStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPatch, path, bytes.NewBufferString(`{"job_id":"job-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("reject invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)
		r, path := build("/v1/estimates/reject", h.RejectEstimate)

		req := httptest.NewRequest(http.MethodPatch, path, bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("cancel missing job id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)
		r, path := build("/v1/estimates/cancel", h.CancelEstimate)

		req := httptest.NewRequest(http.MethodPatch, path, bytes.NewBufferString(`{"job_id":"  "}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("approve finalized conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)
		r, path := build("/v1/estimates/approve", h.ApproveEstimate)

		uc.EXPECT().ApproveByJobID(gomock.Any(), "job-1").Return(entities.Estimate{}, usecase.ErrEstimateFinalized)

		req := httptest.NewRequest(http.MethodPatch, path, bytes.NewBufferString(`{"job_id":"job-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_Recalculate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates/:id/recalculate", h.RecalculateEstimate)

		uc.EXPECT().Recalculate(gomock.Any(), "est-404").Return(entities.Estimate{}, usecase.ErrEstimateNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/est-404/recalculate", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates/:id/recalculate", h.RecalculateEstimate)

		uc.EXPECT().Recalculate(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1", JobID: "job-1", Status: entities.EstimateStatusPending}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/est-1/recalculate", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMapEstimateError(t *testing.T) {
	if got := mapEstimateError(usecase.ErrInvalidJobID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapEstimateError(usecase.ErrInvalidEstimateID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapEstimateError(usecase.ErrInvalidServiceAmount); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapEstimateError(tax.ErrUnknownJurisdiction); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapEstimateError(usecase.ErrEstimateAlreadyExists); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapEstimateError(usecase.ErrEstimateFinalized); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapEstimateError(usecase.ErrEstimateNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapEstimateError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
