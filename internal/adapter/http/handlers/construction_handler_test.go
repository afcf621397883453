package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"installer_crm/internal/adapter/http/handlers/mocks"
	"installer_crm/internal/domain/deriver"
	"installer_crm/internal/domain/entities"
	"installer_crm/internal/usecase"
	"installer_crm/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestConstructionHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)
	const body = `{"width":1500,"height":1500,"quantity":1,"type":"window","installation_location":"interior","weight":80}`

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConstructionUseCase(ctrl)
		h := NewConstructionHandler(uc)

		r := gin.New()
		r.POST("/v1/constructions", h.Create)

		w := doJSON(r, http.MethodPost, "/v1/constructions", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid geometry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConstructionUseCase(ctrl)
		h := NewConstructionHandler(uc)

		r := gin.New()
		r.POST("/v1/constructions", h.Create)

		uc.EXPECT().Create(gomock.Any(), "", gomock.Any()).Return(entities.Construction{}, deriver.ErrInvalidWidth)

		w := doJSON(r, http.MethodPost, "/v1/constructions", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var res pkg.HTTPError
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatal(err)
		}
		if res.Code != "INVALID_GEOMETRY" || res.Details == "" {
			t.Fatalf("unexpected error body: %+v", res)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConstructionUseCase(ctrl)
		h := NewConstructionHandler(uc)

		r := gin.New()
		r.POST("/v1/constructions", h.Create)

		uc.EXPECT().Create(gomock.Any(), "", gomock.AssignableToTypeOf(entities.Geometry{})).DoAndReturn(
			func(_ context.Context, _ string, g entities.Geometry) (entities.Construction, error) {
				if g.Width != 1500 || g.InstallationLocation != entities.LocationInterior {
					t.Fatalf("unexpected geometry: %+v", g)
				}
				return entities.Construction{Meta: entities.Meta{ID: "k-1"}, Number: 1, Geometry: g}, nil
			},
		)

		w := doJSON(r, http.MethodPost, "/v1/constructions", body)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var res map[string]interface{}
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res["id"] != "k-1" || res["number"].(float64) != 1 {
			t.Fatalf("unexpected response: %v", res)
		}
	})
}

func TestConstructionHandler_GetAndDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIConstructionUseCase(ctrl)
	h := NewConstructionHandler(uc)

	r := gin.New()
	r.GET("/v1/constructions/:id", h.Get)
	r.DELETE("/v1/constructions/:id", h.Delete)
	r.DELETE("/v1/constructions", h.DeleteAll)

	uc.EXPECT().Get(gomock.Any(), "missing").Return(entities.Construction{}, usecase.ErrConstructionNotFound)
	uc.EXPECT().Delete(gomock.Any(), "k-1").Return(nil)
	uc.EXPECT().DeleteAll(gomock.Any())

	if w := doJSON(r, http.MethodGet, "/v1/constructions/missing", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodDelete, "/v1/constructions/k-1", ""); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodDelete, "/v1/constructions", ""); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestConstructionHandler_SetRate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConstructionUseCase(ctrl)
		h := NewConstructionHandler(uc)

		r := gin.New()
		r.PUT("/v1/rates/:type", h.SetRate)

		uc.EXPECT().SetRate(gomock.Any(), "window", entities.RateEntry{Rate: 10, Unit: "volume"}).Return(entities.RateTable{}, nil, usecase.ErrInvalidRate)

		w := doJSON(r, http.MethodPut, "/v1/rates/window", `{"rate":10,"unit":"volume"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success returns recomputed constructions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConstructionUseCase(ctrl)
		h := NewConstructionHandler(uc)

		r := gin.New()
		r.PUT("/v1/rates/:type", h.SetRate)

		entry := entities.RateEntry{Rate: 40, Unit: entities.RateUnitLength}
		table := entities.DefaultRateTable().With("window", entry)
		uc.EXPECT().SetRate(gomock.Any(), "window", entry).Return(table, []entities.Construction{{Meta: entities.Meta{ID: "k-1"}}}, nil)

		w := doJSON(r, http.MethodPut, "/v1/rates/window", `{"rate":40,"unit":"length"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res struct {
			Rates struct {
				Entries map[string]struct {
					Rate float64 `json:"rate"`
					Unit string  `json:"unit"`
				} `json:"entries"`
			} `json:"rates"`
			Recomputed []struct {
				ID string `json:"id"`
			} `json:"recomputed"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatal(err)
		}
		if res.Rates.Entries["window"].Unit != "length" || len(res.Recomputed) != 1 {
			t.Fatalf("unexpected response: %s", w.Body.String())
		}
	})
}

func TestMapError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{deriver.ErrInvalidHeight, http.StatusBadRequest},
		{usecase.ErrInvalidClientName, http.StatusBadRequest},
		{fmt.Errorf("%w: k-9", usecase.ErrConstructionNotFound), http.StatusNotFound},
		{usecase.ErrOfferNotFound, http.StatusNotFound},
		{usecase.ErrEventNotFound, http.StatusNotFound},
		{fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := mapError(tt.err).HTTPStatus; got != tt.want {
			t.Errorf("mapError(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
