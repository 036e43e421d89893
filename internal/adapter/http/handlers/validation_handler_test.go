package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"accuracy_wms/internal/adapter/http/handlers/mocks"
	"accuracy_wms/internal/domain/entities"
	"accuracy_wms/internal/usecase"
	"accuracy_wms/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestValidationHandler_ValidateItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *ValidationHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/carton-boxes/:id/validate-item", h.ValidateItem)
		return r
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIValidationUseCase(ctrl)
		r := newRouter(NewValidationHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/carton-boxes/c-1/validate-item", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing barcode", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIValidationUseCase(ctrl)
		r := newRouter(NewValidationHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/carton-boxes/c-1/validate-item", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase errors map to status codes", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
			code int
		}{
			{name: "carton not found", err: usecase.ErrCartonNotFound, code: http.StatusNotFound},
			{name: "already validated", err: usecase.ErrCartonAlreadyValidated, code: http.StatusConflict},
			{name: "item not found", err: usecase.ErrItemNotFound, code: http.StatusNotFound},
			{name: "no attribute match", err: usecase.ErrNoAttributeMatch, code: http.StatusUnprocessableEntity},
			{name: "item number mismatch", err: usecase.ErrItemNumberMismatch, code: http.StatusUnprocessableEntity},
			{name: "attribute mismatch", err: usecase.ErrAttributeMismatch, code: http.StatusUnprocessableEntity},
			{name: "quantity exceeded", err: usecase.ErrQuantityExceeded, code: http.StatusUnprocessableEntity},
			{name: "version conflict", err: interfaces.ErrCartonVersionConflict, code: http.StatusConflict},
			{name: "missing user header", err: usecase.ErrInvalidValidatedBy, code: http.StatusBadRequest},
			{name: "unexpected", err: errors.New("boom"), code: http.StatusInternalServerError},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				uc := mocks.NewMockIValidationUseCase(ctrl)
				r := newRouter(NewValidationHandler(uc))

				uc.EXPECT().ValidateCartonItem(gomock.Any(), "c-1", "LPN123", "user-1").Return(usecase.ValidateResult{}, tc.err)

				req := httptest.NewRequest(http.MethodPost, "/v1/carton-boxes/c-1/validate-item", bytes.NewBufferString(`{"barcode":"LPN123"}`))
				req.Header.Set("Content-Type", "application/json")
				req.Header.Set("X-User-ID", "user-1")
				w := httptest.NewRecorder()
				r.ServeHTTP(w, req)

				if w.Code != tc.code {
					t.Fatalf("expected %d, got %d (body: %s)", tc.code, w.Code, w.Body.String())
				}
			})
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIValidationUseCase(ctrl)
		r := newRouter(NewValidationHandler(uc))

		res := usecase.ValidateResult{
			CartonBox: entities.CartonBox{
				ID:               "c-1",
				Barcode:          "B-1",
				ValidationStatus: entities.ValidationStatusValidated,
				Status:           entities.CartonStatusSealed,
				ItemsQuantity:    1,
				Items:            []entities.Item{{ID: "i-1"}},
			},
			Item: entities.Item{ID: "i-1", Barcode: "LPN123"},
		}
		uc.EXPECT().ValidateCartonItem(gomock.Any(), "c-1", "LPN123&item_number=7", "user-1").Return(res, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/carton-boxes/c-1/validate-item", bytes.NewBufferString(`{"barcode":"LPN123&item_number=7"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			CartonBox struct {
				ID               string `json:"id"`
				ValidationStatus string `json:"validation_status"`
				ItemsValidated   int    `json:"items_validated"`
			} `json:"carton_box"`
			Item struct {
				ID string `json:"id"`
			} `json:"item"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.CartonBox.ID != "c-1" || body.CartonBox.ValidationStatus != "VALIDATED" || body.CartonBox.ItemsValidated != 1 {
			t.Fatalf("unexpected carton body: %s", w.Body.String())
		}
		if body.Item.ID != "i-1" {
			t.Fatalf("unexpected item body: %s", w.Body.String())
		}
	})
}
