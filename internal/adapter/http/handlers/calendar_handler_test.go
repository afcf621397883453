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

func TestCalendarHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICalendarUseCase(ctrl)
	h := NewCalendarHandler(uc)

	r := gin.New()
	r.GET("/v1/events", h.List)
	r.POST("/v1/events", h.Create)
	r.DELETE("/v1/events/:id", h.Delete)

	uc.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.CalendarEvent{}, usecase.ErrInvalidEvent)
	uc.EXPECT().List(gomock.Any()).Return(nil)
	uc.EXPECT().Delete(gomock.Any(), "e-1").Return(nil)

	if w := doJSON(r, http.MethodPost, "/v1/events", `{"title":"Install","start":"2026-06-01T09:00:00Z","end":"2026-06-01T08:00:00Z"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	w := doJSON(r, http.MethodGet, "/v1/events", "")
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Fatalf("expected empty list, got %d %s", w.Code, w.Body.String())
	}
	if w := doJSON(r, http.MethodDelete, "/v1/events/e-1", ""); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}
