package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"installer_crm/internal/adapter/http/middleware"
	"installer_crm/internal/config"
	"installer_crm/internal/infrastructure/cache"
	"installer_crm/internal/observability"
	"installer_crm/internal/platform/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

const testSecret = "test-secret"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Server: config.ServerConfig{AppEnv: "test", HTTPPort: 8080},
		Cache:  config.CacheConfig{Driver: config.CacheDriverMemory},
		JWT:    config.JWTConfig{Secret: testSecret},
	}
	reg := prometheus.NewRegistry()
	log := logger.NewNop()
	a := newApp(cache.NewMemoryCache(), nil, cfg.Remote.Tables, log, observability.NewMetrics(reg))
	return NewRouter(cfg, log, reg, a)
}

func do(r http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPingAndStatus(t *testing.T) {
	r := newTestRouter(t)

	if w := do(r, http.MethodGet, "/v1/ping", "", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var anon statusResponse
	w := do(r, http.MethodGet, "/v1/status", "", "")
	if err := json.Unmarshal(w.Body.Bytes(), &anon); err != nil {
		t.Fatalf("decode status: %v", err)
	}
	if anon.Remote || !anon.Anonymous {
		t.Fatalf("expected anonymous local-only status, got %+v", anon)
	}

	token, err := middleware.NewTokenVerifier(testSecret).Issue("owner-1", time.Minute)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	var owned statusResponse
	w = do(r, http.MethodGet, "/v1/status", "", token)
	if err := json.Unmarshal(w.Body.Bytes(), &owned); err != nil {
		t.Fatalf("decode status: %v", err)
	}
	if owned.Remote || owned.Anonymous || owned.OwnerID != "owner-1" {
		t.Fatalf("expected identified caller without remote, got %+v", owned)
	}

	if w := do(r, http.MethodGet, "/v1/status", "", "garbage"); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a bad token, got %d", w.Code)
	}
}

func TestRenamePropagatesThroughRoutes(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodPost, "/v1/clients", `{"name":"Acme"}`, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("create client: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var client struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &client); err != nil {
		t.Fatalf("decode client: %v", err)
	}

	w = do(r, http.MethodPost, "/v1/offers", `{"client_id":"Acme","title":"Windows"}`, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("create offer: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = do(r, http.MethodPut, "/v1/clients/"+client.ID, `{"name":"Acme Corp"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("rename client: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = do(r, http.MethodGet, "/v1/offers", "", "")
	if !strings.Contains(w.Body.String(), `"client_id":"Acme Corp"`) {
		t.Fatalf("expected offer to follow the rename, got %s", w.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestRouter(t)

	do(r, http.MethodPost, "/v1/clients", `{"name":"Acme"}`, "")

	w := do(r, http.MethodGet, "/metrics", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "installer_store_local_fallbacks_total") {
		t.Fatalf("expected fallback counter in metrics output")
	}
}

func TestOwnersDoNotShareRecords(t *testing.T) {
	r := newTestRouter(t)
	v := middleware.NewTokenVerifier(testSecret)
	alice, err := v.Issue("alice", time.Minute)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	bob, err := v.Issue("bob", time.Minute)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	w := do(r, http.MethodPost, "/v1/clients", `{"name":"Alice Secret Client"}`, alice)
	if w.Code != http.StatusCreated {
		t.Fatalf("create client: expected 201, got %d", w.Code)
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode client: %v", err)
	}

	for name, token := range map[string]string{"anonymous": "", "bob": bob} {
		if w := do(r, http.MethodGet, "/v1/clients", "", token); w.Body.String() != "[]" {
			t.Fatalf("%s sees alice's clients: %s", name, w.Body.String())
		}
		if w := do(r, http.MethodGet, "/v1/clients/"+created.ID, "", token); w.Code != http.StatusNotFound {
			t.Fatalf("%s can read alice's client: %d", name, w.Code)
		}
	}

	do(r, http.MethodPost, "/v1/constructions", `{"width":1000,"height":1000,"quantity":1,"type":"window","installation_location":"interior"}`, bob)
	if w := do(r, http.MethodDelete, "/v1/constructions", "", alice); w.Code != http.StatusNoContent {
		t.Fatalf("clear constructions: expected 204, got %d", w.Code)
	}
	if w := do(r, http.MethodGet, "/v1/constructions", "", bob); !strings.Contains(w.Body.String(), `"type":"window"`) {
		t.Fatalf("alice's clear removed bob's constructions: %s", w.Body.String())
	}
	if w := do(r, http.MethodGet, "/v1/clients", "", alice); !strings.Contains(w.Body.String(), "Alice Secret Client") {
		t.Fatalf("alice lost her client: %s", w.Body.String())
	}
}
