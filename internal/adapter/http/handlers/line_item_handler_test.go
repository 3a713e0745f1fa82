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
	"fieldbilling/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestLineItemHandler_AddLineItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILineItemUseCase(ctrl)
		h := NewLineItemHandler(uc)

		r := gin.New()
		r.POST("/v1/line-items", h.AddLineItem)

		req := httptest.NewRequest(http.MethodPost, "/v1/line-items", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid kind mapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILineItemUseCase(ctrl)
		h := NewLineItemHandler(uc)

		r := gin.New()
		r.POST("/v1/line-items", h.AddLineItem)

		uc.EXPECT().Add(gomock.Any(), gomock.Any()).Return(entities.LineItem{}, usecase.ErrInvalidLineItemKind)

		req := httptest.NewRequest(http.MethodPost, "/v1/line-items", bytes.NewBufferString(`{"job_id":"job-1","kind":"overtime","cost_code":"CARP-03","quantity":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILineItemUseCase(ctrl)
		h := NewLineItemHandler(uc)

		r := gin.New()
		r.POST("/v1/line-items", h.AddLineItem)

		now := time.Now().UTC()
		uc.EXPECT().Add(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, item entities.LineItem) (entities.LineItem, error) {
				if item.Kind != entities.LineItemKindLabor {
					t.Fatalf("unexpected kind %q", item.Kind)
				}
				if !item.Quantity.Equal(decimal.NewFromInt(8)) {
					t.Fatalf("unexpected quantity %s", item.Quantity)
				}
				item.ID = "li-1"
				item.CreatedAt = now
				return item, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/line-items", bytes.NewBufferString(`{"job_id":"job-1","kind":"Labor","cost_code":"CARP-03","quantity":8,"unit_cost":65}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "li-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if body["unit_cost"] != "65.00" {
			t.Fatalf("unexpected unit cost: %s", w.Body.String())
		}
	})
}

func TestLineItemHandler_ListByJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILineItemUseCase(ctrl)
		h := NewLineItemHandler(uc)

		r := gin.New()
		r.GET("/v1/jobs/:job_id/line-items", h.ListLineItemsByJob)

		uc.EXPECT().ListByJobID(gomock.Any(), "job-1").Return([]entities.LineItem{
			{ID: "li-1", JobID: "job-1", Kind: entities.LineItemKindLabor, CostCode: "CARP-03"},
			{ID: "li-2", JobID: "job-1", Kind: entities.LineItemKindMaterial, CostCode: "PLMB-02"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs/job-1/line-items", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 {
			t.Fatalf("expected 2 items, got %d", len(body))
		}
	})

	t.Run("repo failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILineItemUseCase(ctrl)
		h := NewLineItemHandler(uc)

		r := gin.New()
		r.GET("/v1/jobs/:job_id/line-items", h.ListLineItemsByJob)

		uc.EXPECT().ListByJobID(gomock.Any(), "job-1").Return(nil, errors.New("boom"))

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs/job-1/line-items", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestLineItemHandler_GetLineItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILineItemUseCase(ctrl)
		h := NewLineItemHandler(uc)

		r := gin.New()
		r.GET("/v1/line-items/:id", h.GetLineItem)

		uc.EXPECT().GetByID(gomock.Any(), "li-404").Return(entities.LineItem{}, usecase.ErrLineItemNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/line-items/li-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapLineItemError(t *testing.T) {
	if got := mapLineItemError(usecase.ErrInvalidLineItemKind); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapLineItemError(usecase.ErrInvalidCostCode); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapLineItemError(usecase.ErrLineItemNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapLineItemError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
