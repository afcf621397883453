package handlers

import (
	"net/http"
	"testing"

	"installer_crm/internal/adapter/http/handlers/mocks"
	"installer_crm/internal/domain/entities"
	"installer_crm/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestSettingsHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockISettingsUseCase(ctrl)
	h := NewSettingsHandler(uc)

	r := gin.New()
	r.GET("/v1/settings/company", h.Company)
	r.PUT("/v1/settings/company", h.SaveCompany)
	r.PUT("/v1/settings/transport", h.SaveTransport)

	uc.EXPECT().Company(gomock.Any()).Return(entities.CompanySettings{Name: "Fenster GmbH"})
	uc.EXPECT().SaveCompany(gomock.Any(), entities.CompanySettings{Name: "Fenster GmbH", DefaultMarginPct: 12}).
		Return(entities.CompanySettings{Name: "Fenster GmbH", DefaultMarginPct: 12}, nil)
	uc.EXPECT().SaveTransport(gomock.Any(), entities.TransportSettings{RatePerKm: -1}).
		Return(entities.TransportSettings{}, usecase.ErrInvalidSettings)

	if w := doJSON(r, http.MethodGet, "/v1/settings/company", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodPut, "/v1/settings/company", `{"tax_id":"DE1"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing name, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodPut, "/v1/settings/company", `{"name":"Fenster GmbH","default_margin_pct":12}`); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodPut, "/v1/settings/transport", `{"rate_per_km":-1}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
