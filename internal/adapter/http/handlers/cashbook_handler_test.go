package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"atelie_crm/internal/adapter/http/handlers/mocks"
	"atelie_crm/internal/domain/aggregate"
	"atelie_crm/internal/domain/entities"
	"atelie_crm/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestCashbookHandler_GetSummary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown period is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		session := mocks.NewMockICRMSession(ctrl)
		h := NewCashbookHandler(session)

		session.EXPECT().CashSummary(aggregate.Period("fortnight"), gomock.Any()).
			Return(aggregate.CashSummary{}, usecase.ErrInvalidPeriod)

		r := gin.New()
		r.GET("/v1/cashbook/summary", h.GetSummary)

		req := httptest.NewRequest(http.MethodGet, "/v1/cashbook/summary?period=fortnight", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("week summary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		session := mocks.NewMockICRMSession(ctrl)
		h := NewCashbookHandler(session)

		session.EXPECT().CashSummary(aggregate.PeriodThisWeek, gomock.Any()).Return(aggregate.CashSummary{
			Inflow:  decimal.RequireFromString("100"),
			Outflow: decimal.RequireFromString("40"),
			Net:     decimal.RequireFromString("60"),
		}, nil)

		r := gin.New()
		r.GET("/v1/cashbook/summary", h.GetSummary)

		req := httptest.NewRequest(http.MethodGet, "/v1/cashbook/summary?period=this_week", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["net"] != "60.00" || body["period"] != "this_week" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}

func TestCashbookHandler_CreateMovement(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	session := mocks.NewMockICRMSession(ctrl)
	h := NewCashbookHandler(session)

	session.EXPECT().AddMovement(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, in usecase.NewMovement) (entities.CashMovement, error) {
			if in.Kind != entities.MovementKindOutflow || in.Category != "Compra Material" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return entities.CashMovement{ID: "m1", Kind: in.Kind, Amount: in.Amount, Category: in.Category, Description: in.Description}, nil
		},
	)

	r := gin.New()
	r.POST("/v1/cashbook/movements", h.CreateMovement)

	payload := `{"kind":"outflow","amount":"35.90","description":"Linha e agulhas","category":"Compra Material"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/cashbook/movements", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
}

func TestCashbookHandler_ListCategories(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h := NewCashbookHandler(mocks.NewMockICRMSession(ctrl))

	r := gin.New()
	r.GET("/v1/cashbook/categories", h.ListCategories)

	req := httptest.NewRequest(http.MethodGet, "/v1/cashbook/categories", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Categories []string `json:"categories"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(body.Categories) != len(entities.CashCategories) {
		t.Fatalf("expected %d categories, got %d", len(entities.CashCategories), len(body.Categories))
	}
}
