package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fieldbilling/internal/adapter/http/handlers/mocks"
	"fieldbilling/internal/domain/entities"
	"fieldbilling/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestJobReportHandler_GetProfitLoss(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobReportUseCase(ctrl)
		h := NewJobReportHandler(uc)

		r := gin.New()
		r.GET("/v1/jobs/:job_id/report", h.GetProfitLoss)

		rollup := entities.Rollup{
			TotalLaborCost:    decimal.NewFromInt(520),
			TotalMaterialCost: decimal.NewFromInt(50),
			TotalRevenue:      decimal.NewFromInt(120),
			TotalHours:        decimal.NewFromInt(8),
			GrossProfit:       decimal.NewFromInt(-450),
			Labor: map[string]entities.CostCodeSummary{
				"CARP-03": {CostCode: "CARP-03", Cost: decimal.NewFromInt(520), Hours: decimal.NewFromInt(8)},
			},
			Material: map[string]entities.CostCodeSummary{
				"PLMB-02": {CostCode: "PLMB-02", Cost: decimal.NewFromInt(50), Revenue: decimal.NewFromInt(120)},
			},
		}
		uc.EXPECT().ProfitLoss(gomock.Any(), "job-1").Return(rollup, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs/job-1/report", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["gross_profit"] != "-450.00" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("invalid job id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobReportUseCase(ctrl)
		h := NewJobReportHandler(uc)

		r := gin.New()
		r.GET("/v1/jobs/:job_id/report", h.GetProfitLoss)

		uc.EXPECT().ProfitLoss(gomock.Any(), "unknown").Return(entities.Rollup{}, usecase.ErrInvalidJobID)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs/unknown/report", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("repo failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobReportUseCase(ctrl)
		h := NewJobReportHandler(uc)

		r := gin.New()
		r.GET("/v1/jobs/:job_id/report", h.GetProfitLoss)

		uc.EXPECT().ProfitLoss(gomock.Any(), "job-1").Return(entities.Rollup{}, errors.New("boom"))

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs/job-1/report", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
