package routes

import (
	"fashion-hub/config"
	_ "fashion-hub/docs"
	"fashion-hub/middleware"
	"fashion-hub/repositories"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		SessionSecret: "test",
		SessionTTL:    time.Hour,
		SessionCookie: "fashionhub_session",
	}

	router := gin.New()
	SetupRoutes(router, Dependencies{
		Config:      cfg,
		SessionRepo: repositories.NewMemorySessionRepository(cfg.SessionTTL),
		Metrics:     middleware.NewMetrics(),
	})
	return router
}

func get(r *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestSetupRoutes(t *testing.T) {
	r := newTestRouter()

	if w := get(r, "/health"); w.Code != http.StatusOK {
		t.Fatalf("health: expected 200, got %d", w.Code)
	}

	w := get(r, "/")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Featured Products") {
		t.Fatalf("storefront: unexpected response %d", w.Code)
	}
	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != "fashionhub_session" {
		t.Fatalf("expected session cookie, got %+v", cookies)
	}

	if w := get(r, "/api/products"); w.Code != http.StatusOK {
		t.Fatalf("products: expected 200, got %d", w.Code)
	}
	if w := get(r, "/api/products"); len(w.Result().Cookies()) != 0 {
		t.Fatal("catalog endpoints should not start sessions")
	}

	if w := get(r, "/swagger/doc.json"); w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "/api/cart") {
		t.Fatalf("swagger: unexpected response %d", w.Code)
	}

	w = get(r, "/metrics")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "fashionhub_http_requests_total") {
		t.Fatalf("metrics: unexpected response %d", w.Code)
	}
}

func TestNewSessionRepositoryFallsBackToMemory(t *testing.T) {
	repo := NewSessionRepository(&config.Config{SessionTTL: time.Hour})
	if _, ok := repo.(*repositories.MemorySessionRepository); !ok {
		t.Fatalf("expected memory repository, got %T", repo)
	}
}
