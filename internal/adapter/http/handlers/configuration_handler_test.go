package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"carport_configurator/internal/adapter/http/handlers/mocks"
	"carport_configurator/internal/domain/entities"
	"carport_configurator/internal/usecase"
	"carport_configurator/internal/usecase/interfaces"
	"carport_configurator/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newConfigurationRouter(uc usecase.IConfigurationUseCase) *gin.Engine {
	h := NewConfigurationHandler(uc)
	r := gin.New()
	r.POST("/lines/:line/configurations/quote", h.Quote)
	r.POST("/lines/:line/configurations", h.Submit)
	r.GET("/lines/:line/configurations", h.List)
	r.GET("/lines/:line/configurations/:id", h.Get)
	r.DELETE("/lines/:line/configurations/:id", h.Delete)
	r.PATCH("/lines/:line/configurations/:id/status", h.UpdateStatus)
	return r
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v (%s)", err, w.Body.String())
	}
	return body
}

const submitBody = `{
	"structure_type_id": "addossato",
	"model_id": "classic",
	"surface_id": "gravel",
	"coverage_id": "polycarbonate",
	"color_id": "natural",
	"accessory_ids": ["gutter", " "],
	"dimensions": {"width": 500, "depth": 300, "height": 250},
	"customer_name": "Mario Rossi",
	"customer_email": "mario@example.com",
	"customer_phone": "+39 333 1234567",
	"customer_address": "Via Roma 1",
	"customer_city": "Milano",
	"customer_postal_code": "20100",
	"contact_preference": "email",
	"total_price": 1535.00
}`

func TestConfigurationHandler_Submit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("should return 404 for unknown product line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConfigurationUseCase(ctrl)
		r := newConfigurationRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/lines/bamboo/configurations", strings.NewReader(submitBody))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "UNKNOWN_PRODUCT_LINE" {
			t.Fatalf("unexpected code %q", body.Code)
		}
	})

	t.Run("should return 400 for malformed body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConfigurationUseCase(ctrl)
		r := newConfigurationRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/lines/wood/configurations", strings.NewReader("{"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("should create configuration and forward idempotency key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConfigurationUseCase(ctrl)
		r := newConfigurationRouter(uc)

		created := entities.Configuration{
			ID:          "3f1c7a52-8f0e-4c59-9a55-0a5f3f7b7c11",
			ProductLine: entities.ProductLineWood,
			TotalPrice:  153500,
			Status:      entities.StatusPending,
			CreatedAt:   time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC),
		}
		uc.EXPECT().
			Submit(gomock.Any(), entities.MustResolveNamespace(entities.ProductLineWood), gomock.Any()).
			DoAndReturn(func(_ any, _ entities.Namespace, req usecase.SubmissionRequest) (entities.Configuration, error) {
				if req.IdempotencyKey != "key-1" {
					t.Fatalf("unexpected idempotency key %q", req.IdempotencyKey)
				}
				if len(req.Selection.AccessoryIDs) != 1 || req.Selection.AccessoryIDs[0] != "gutter" {
					t.Fatalf("unexpected accessories %v", req.Selection.AccessoryIDs)
				}
				if req.Dimensions == nil || req.Dimensions.Width != 500 {
					t.Fatalf("dimensions not forwarded: %+v", req.Dimensions)
				}
				if req.ClientTotal == nil || *req.ClientTotal != 153500 {
					t.Fatalf("client total not forwarded: %v", req.ClientTotal)
				}
				return created, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/lines/WOOD/configurations", strings.NewReader(submitBody))
		req.Header.Set(HeaderIdempotencyKey, " key-1 ")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
		}
		var body struct {
			Reference string `json:"reference"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.Reference != created.ID {
			t.Fatalf("unexpected reference %q", body.Reference)
		}
	})

	t.Run("should accept a drifting client total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConfigurationUseCase(ctrl)
		r := newConfigurationRouter(uc)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ entities.Namespace, req usecase.SubmissionRequest) (entities.Configuration, error) {
				if req.ClientTotal == nil || *req.ClientTotal != 153500 {
					t.Fatalf("expected client total rounded to cents, got %v", req.ClientTotal)
				}
				return entities.Configuration{ID: "abc"}, nil
			})

		body := strings.Replace(submitBody, `"total_price": 1535.00`, `"total_price": 1535.0000000000002`, 1)
		req := httptest.NewRequest(http.MethodPost, "/lines/wood/configurations", strings.NewReader(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
		}
	})

	t.Run("should ignore an unreadable client total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConfigurationUseCase(ctrl)
		r := newConfigurationRouter(uc)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ entities.Namespace, req usecase.SubmissionRequest) (entities.Configuration, error) {
				if req.ClientTotal != nil {
					t.Fatalf("expected no client total, got %s", req.ClientTotal)
				}
				return entities.Configuration{ID: "abc"}, nil
			})

		body := strings.Replace(submitBody, `"total_price": 1535.00`, `"total_price": "n/a"`, 1)
		req := httptest.NewRequest(http.MethodPost, "/lines/wood/configurations", strings.NewReader(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
		}
	})

	t.Run("should return 422 with field details on validation failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConfigurationUseCase(ctrl)
		r := newConfigurationRouter(uc)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Configuration{}, &usecase.ValidationError{
			Violations: []entities.FieldViolation{
				{Field: "customer_email", Reason: "invalid format"},
				{Field: "dimensions.width", Reason: "out of range"},
			},
		})

		req := httptest.NewRequest(http.MethodPost, "/lines/iron/configurations", strings.NewReader(submitBody))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		body := decodeError(t, w)
		if len(body.Details) != 2 || body.Details[0].Field != "customer_email" {
			t.Fatalf("unexpected details %+v", body.Details)
		}
	})

	t.Run("should return 409 when a selection went away", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConfigurationUseCase(ctrl)
		r := newConfigurationRouter(uc)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Configuration{}, usecase.ErrSelectionUnavailable)

		req := httptest.NewRequest(http.MethodPost, "/lines/wood/configurations", strings.NewReader(submitBody))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("should return 503 when storage is down", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConfigurationUseCase(ctrl)
		r := newConfigurationRouter(uc)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.Configuration{}, errors.Join(interfaces.ErrStorageUnavailable, errors.New("timeout")))

		req := httptest.NewRequest(http.MethodPost, "/lines/wood/configurations", strings.NewReader(submitBody))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestConfigurationHandler_Quote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("should return preview with breakdown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConfigurationUseCase(ctrl)
		r := newConfigurationRouter(uc)

		uc.EXPECT().Quote(gomock.Any(), entities.MustResolveNamespace(entities.ProductLineIron), gomock.Any()).
			DoAndReturn(func(_ any, _ entities.Namespace, req usecase.SubmissionRequest) (usecase.QuoteResult, error) {
				if req.IdempotencyKey != "" {
					t.Fatalf("quote must not carry an idempotency key")
				}
				return usecase.QuoteResult{
					Complete:   false,
					Violations: []entities.FieldViolation{{Field: "color_id", Reason: "required"}},
					Breakdown:  entities.PriceBreakdown{Total: 120000},
				}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/lines/iron/configurations/quote", strings.NewReader(`{"model_id":"classic"}`))
		req.Header.Set(HeaderIdempotencyKey, "ignored")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Complete   bool    `json:"complete"`
			TotalPrice float64 `json:"total_price"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.Complete || body.TotalPrice != 1200 {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("should return 422 for a rejected step", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConfigurationUseCase(ctrl)
		r := newConfigurationRouter(uc)

		uc.EXPECT().Quote(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(usecase.QuoteResult{}, &usecase.SelectionError{Field: "model_id", Reason: "not available"})

		req := httptest.NewRequest(http.MethodPost, "/lines/wood/configurations/quote", strings.NewReader(`{}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		if body := decodeError(t, w); len(body.Details) != 1 || body.Details[0].Field != "model_id" {
			t.Fatalf("unexpected details %+v", body.Details)
		}
	})
}

func TestConfigurationHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("should parse filters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConfigurationUseCase(ctrl)
		r := newConfigurationRouter(uc)

		since := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
		want := entities.ConfigurationFilters{Status: entities.StatusPending, Since: since, Limit: 10}
		uc.EXPECT().List(gomock.Any(), gomock.Any(), want).Return([]entities.Configuration{{ID: "a"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/lines/wood/configurations?status=pending&since=2026-05-01T00:00:00Z&limit=10", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("should reject bad filters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConfigurationUseCase(ctrl)
		r := newConfigurationRouter(uc)

		for _, q := range []string{"status=lost", "since=yesterday", "limit=501", "limit=abc"} {
			req := httptest.NewRequest(http.MethodGet, "/lines/wood/configurations?"+q, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("%s: expected 400, got %d", q, w.Code)
			}
		}
	})
}

func TestConfigurationHandler_GetDeleteStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("should return 404 for missing configuration", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConfigurationUseCase(ctrl)
		r := newConfigurationRouter(uc)

		uc.EXPECT().GetByID(gomock.Any(), gomock.Any(), "nope").Return(entities.Configuration{}, usecase.ErrConfigurationNotFound)

		req := httptest.NewRequest(http.MethodGet, "/lines/wood/configurations/nope", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("should return 400 for malformed id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConfigurationUseCase(ctrl)
		r := newConfigurationRouter(uc)

		uc.EXPECT().Delete(gomock.Any(), gomock.Any(), "x").Return(usecase.ErrInvalidConfigurationID)

		req := httptest.NewRequest(http.MethodDelete, "/lines/wood/configurations/x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("should delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConfigurationUseCase(ctrl)
		r := newConfigurationRouter(uc)

		uc.EXPECT().Delete(gomock.Any(), gomock.Any(), "abc").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/lines/iron/configurations/abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("should update status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConfigurationUseCase(ctrl)
		r := newConfigurationRouter(uc)

		uc.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), "abc", entities.StatusConfirmed).
			Return(entities.Configuration{ID: "abc", Status: entities.StatusConfirmed}, nil)

		body, _ := json.Marshal(map[string]string{"status": "confirmed"})
		req := httptest.NewRequest(http.MethodPatch, "/lines/wood/configurations/abc/status", bytes.NewReader(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("should map status conflicts", func(t *testing.T) {
		cases := map[error]int{
			usecase.ErrInvalidStatusTransition: http.StatusConflict,
			usecase.ErrStatusChanged:           http.StatusConflict,
			entities.ErrUnknownStatus:          http.StatusBadRequest,
			errors.New("boom"):                 http.StatusInternalServerError,
		}
		for err, want := range cases {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIConfigurationUseCase(ctrl)
			r := newConfigurationRouter(uc)

			uc.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), "abc", gomock.Any()).Return(entities.Configuration{}, err)

			req := httptest.NewRequest(http.MethodPatch, "/lines/wood/configurations/abc/status", strings.NewReader(`{"status":"completed"}`))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != want {
				t.Fatalf("%v: expected %d, got %d", err, want, w.Code)
			}
			ctrl.Finish()
		}
	})

	t.Run("should reject missing status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConfigurationUseCase(ctrl)
		r := newConfigurationRouter(uc)

		req := httptest.NewRequest(http.MethodPatch, "/lines/wood/configurations/abc/status", strings.NewReader(`{}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
