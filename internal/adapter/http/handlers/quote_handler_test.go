package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"assistec_quotes/internal/adapter/http/handlers/mocks"
	"assistec_quotes/internal/domain/entities"
	"assistec_quotes/internal/domain/pricing"
	"assistec_quotes/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

const createQuoteBody = `{
	"order_id": "order-1",
	"parts": [{"id": "part-1", "name": "Compressor", "unit_price": 850, "quantity": 1}],
	"labor": {"hours": 2, "hourly_rate": 1500, "category": "repair"},
	"service_fee": 500,
	"tax_rate": 20
}`

func sampleQuote(status entities.QuoteStatus) entities.RepairQuote {
	q := entities.RepairQuote{
		ID:      "quote-1",
		OrderID: "order-1",
		Status:  status,
		Breakdown: entities.QuoteBreakdown{
			Total:    decimal.NewFromInt(5220),
			Currency: "BRL",
		},
		UpdatedAt: time.Now().UTC(),
	}
	if status != entities.QuoteStatusDraft {
		q.QuoteNumber = "Q-20260310-QUOTE1"
		q.CreatedAt = time.Now().UTC()
		q.ExpiresAt = q.CreatedAt.Add(entities.QuoteValidity)
	}
	return q
}

func TestQuoteHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("blank order id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		body := `{"order_id": "   ", "labor": {"category": "repair"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("pricing validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		uc.EXPECT().CreateDraft(gomock.Any(), "order-1", gomock.Any()).Return(entities.RepairQuote{}, pricing.ErrNegativeTaxRate)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(createQuoteBody))
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
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		uc.EXPECT().CreateDraft(gomock.Any(), "order-1", gomock.AssignableToTypeOf(entities.BreakdownSpec{})).DoAndReturn(
			func(_ any, _ string, spec entities.BreakdownSpec) (entities.RepairQuote, error) {
				if len(spec.Parts) != 1 || !spec.Parts[0].UnitPrice.Equal(decimal.NewFromInt(850)) {
					t.Fatalf("unexpected parts: %+v", spec.Parts)
				}
				if spec.Labor.Category != entities.LaborCategoryRepair {
					t.Fatalf("unexpected labor: %+v", spec.Labor)
				}
				return sampleQuote(entities.QuoteStatusDraft), nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(createQuoteBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["quote_id"] != "quote-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_Lifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("send success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/send", h.SendQuote)

		uc.EXPECT().Send(gomock.Any(), "quote-1").Return(sampleQuote(entities.QuoteStatusSent), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/quote-1/send", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["quote_number"] != "Q-20260310-QUOTE1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("send already sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/send", h.SendQuote)

		uc.EXPECT().Send(gomock.Any(), "quote-1").Return(entities.RepairQuote{}, entities.ErrInvalidTransition)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/quote-1/send", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("approve success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/:id/approve", h.ApproveQuote)

		uc.EXPECT().Approve(gomock.Any(), "quote-1", entities.PaymentMethodCard, "client-7", "").Return(sampleQuote(entities.QuoteStatusApproved), nil)

		body := `{"payment_method": "card", "approved_by": "client-7"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/quote-1/approve", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("approve without payment method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/:id/approve", h.ApproveQuote)

		uc.EXPECT().Approve(gomock.Any(), "quote-1", entities.PaymentMethod(""), "", "").Return(entities.RepairQuote{}, entities.ErrPaymentMethodRequired)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/quote-1/approve", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("reject without confirmation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/:id/reject", h.RejectQuote)

		uc.EXPECT().Reject(gomock.Any(), "quote-1", false, "").Return(entities.RepairQuote{}, entities.ErrRejectNotConfirmed)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/quote-1/reject", bytes.NewBufferString(`{"confirm": false}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("reject success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/:id/reject", h.RejectQuote)

		uc.EXPECT().Reject(gomock.Any(), "quote-1", true, "too expensive").Return(sampleQuote(entities.QuoteStatusRejected), nil)

		body := `{"confirm": true, "client_notes": "too expensive"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/quote-1/reject", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("expire not due", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/:id/expire", h.ExpireQuote)

		uc.EXPECT().ExpireIfDue(gomock.Any(), "quote-1").Return(entities.RepairQuote{}, entities.ErrQuoteNotExpired)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/quote-1/expire", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("update breakdown frozen", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PUT("/v1/quotes/:id/breakdown", h.UpdateBreakdown)

		uc.EXPECT().ReplaceBreakdown(gomock.Any(), "quote-1", gomock.Any()).Return(entities.RepairQuote{}, entities.ErrQuoteFrozen)

		body := `{"labor": {"hours": 1, "hourly_rate": 1000, "category": "repair"}}`
		req := httptest.NewRequest(http.MethodPut, "/v1/quotes/quote-1/breakdown", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_Reads(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/:id", h.GetQuote)

		uc.EXPECT().GetByID(gomock.Any(), "quote-1").Return(entities.RepairQuote{}, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/quote-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes", h.ListQuotes)

		uc.EXPECT().ListByOrderID(gomock.Any(), "order-1").Return([]entities.RepairQuote{sampleQuote(entities.QuoteStatusSent)}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes?order_id=order-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["quote_id"] != "quote-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("document unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/:id/document", h.GetQuoteDocument)

		uc.EXPECT().Document(gomock.Any(), "quote-1").Return(entities.RepairQuote{}, usecase.ErrDocumentNotReady)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/quote-1/document", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("document success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/:id/document", h.GetQuoteDocument)

		q := sampleQuote(entities.QuoteStatusSent)
		q.ArtifactRef = "s3://quote-artifacts/quotes/order-1/quote-1.pdf"
		uc.EXPECT().Document(gomock.Any(), "quote-1").Return(q, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/quote-1/document", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["artifact_ref"] != q.ArtifactRef {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapQuoteError(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{pricing.ErrInvalidInput, http.StatusBadRequest},
		{pricing.ErrNegativePartPrice, http.StatusBadRequest},
		{entities.ErrPaymentMethodRequired, http.StatusBadRequest},
		{entities.ErrRejectNotConfirmed, http.StatusBadRequest},
		{entities.ErrQuoteNotExpired, http.StatusBadRequest},
		{usecase.ErrInvalidOrderID, http.StatusBadRequest},
		{usecase.ErrInvalidQuoteID, http.StatusBadRequest},
		{entities.ErrInvalidTransition, http.StatusConflict},
		{entities.ErrQuoteFrozen, http.StatusConflict},
		{usecase.ErrQuoteConflict, http.StatusConflict},
		{usecase.ErrQuoteNotSent, http.StatusConflict},
		{usecase.ErrQuoteNotFound, http.StatusNotFound},
		{usecase.ErrDocumentNotReady, http.StatusServiceUnavailable},
		{errors.New("x"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := mapQuoteError(tc.err); got.HTTPStatus != tc.status {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.status, got.HTTPStatus)
		}
	}
}
