package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"installer_crm/internal/identity"

	"github.com/gin-gonic/gin"
)

func newAuthRouter(v *TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(OptionalAuth(v, nil))
	r.GET("/whoami", func(c *gin.Context) {
		owner, ok := identity.Owner(c.Request.Context())
		if !ok {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, owner)
	})
	return r
}

func TestOptionalAuth(t *testing.T) {
	v := NewTokenVerifier("test-secret")
	token, err := v.Issue("owner-1", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expired, _ := v.Issue("owner-1", -time.Hour)
	foreign, _ := NewTokenVerifier("other-secret").Issue("owner-1", time.Hour)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"no token is anonymous", "", http.StatusOK, "anonymous"},
		{"valid token sets owner", "Bearer " + token, http.StatusOK, "owner-1"},
		{"lowercase scheme", "bearer " + token, http.StatusOK, "owner-1"},
		{"expired token", "Bearer " + expired, http.StatusUnauthorized, ""},
		{"wrong secret", "Bearer " + foreign, http.StatusUnauthorized, ""},
		{"garbage", "Bearer not-a-jwt", http.StatusUnauthorized, ""},
	}
	r := newAuthRouter(v)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d (%s)", tt.wantStatus, w.Code, w.Body.String())
			}
			if tt.wantBody != "" && w.Body.String() != tt.wantBody {
				t.Fatalf("expected body %q, got %q", tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestOptionalAuthWithoutSecret(t *testing.T) {
	r := newAuthRouter(NewTokenVerifier(""))
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer anything")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK || w.Body.String() != "anonymous" {
		t.Fatalf("expected anonymous pass-through, got %d %q", w.Code, w.Body.String())
	}
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger(nil), Recovery(nil))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
