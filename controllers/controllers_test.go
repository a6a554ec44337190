package controllers

import (
	"encoding/json"
	"fashion-hub/middleware"
	"fashion-hub/models"
	"fashion-hub/repositories"
	"fashion-hub/services"
	"fashion-hub/templates"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

type testClient struct {
	t       *testing.T
	router  *gin.Engine
	cookies []*http.Cookie
}

func newTestClient(t *testing.T) *testClient {
	t.Helper()
	gin.SetMode(gin.TestMode)

	productRepo := repositories.NewProductRepository()
	productSvc := services.NewProductService(productRepo)
	cartSvc := services.NewCartService(productRepo, repositories.NewMemorySessionRepository(time.Hour))

	tmpl, err := templates.Load()
	if err != nil {
		t.Fatalf("failed to load templates: %v", err)
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)

	productCtrl := &ProductController{ProductService: productSvc}
	r.GET("/api/products", productCtrl.GetAllProducts)
	r.GET("/api/products/:id", productCtrl.GetProductByID)
	r.GET("/api/categories", productCtrl.GetAllCategories)

	s := r.Group("/")
	s.Use(middleware.SessionMiddleware(middleware.SessionOptions{CookieName: "sid", Secret: "test", TTL: time.Hour}))

	cartCtrl := &CartController{CartService: cartSvc}
	s.GET("/api/cart", cartCtrl.GetCart)
	s.POST("/api/cart/items", cartCtrl.AddToCart)
	s.PATCH("/api/cart/items/:id", cartCtrl.UpdateQuantity)
	s.DELETE("/api/cart/items/:id", cartCtrl.RemoveFromCart)
	s.POST("/api/cart/open", cartCtrl.OpenCart)
	s.POST("/api/cart/close", cartCtrl.CloseCart)
	s.POST("/api/checkout", cartCtrl.Checkout)

	store := &StorefrontController{ProductService: productSvc, CartService: cartSvc}
	s.GET("/", store.Index)
	s.POST("/cart/open", store.OpenCart)
	s.POST("/cart/close", store.CloseCart)
	s.POST("/cart/items", store.AddToCart)
	s.POST("/cart/items/:id/quantity", store.UpdateQuantity)
	s.POST("/cart/items/:id/remove", store.RemoveFromCart)
	s.POST("/checkout", store.Checkout)

	return &testClient{t: t, router: r}
}

func (tc *testClient) do(method, target string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	tc.t.Helper()
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for _, c := range tc.cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	tc.router.ServeHTTP(w, req)

	if cookies := w.Result().Cookies(); len(cookies) > 0 {
		tc.cookies = cookies
	}
	return w
}

func (tc *testClient) json(method, target, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	return tc.do(method, target, r, "application/json")
}

func (tc *testClient) form(target string, values url.Values) *httptest.ResponseRecorder {
	return tc.do(http.MethodPost, target, strings.NewReader(values.Encode()), "application/x-www-form-urlencoded")
}

type cartEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    models.CartView `json:"data"`
}

func decodeCart(t *testing.T, w *httptest.ResponseRecorder) models.CartView {
	t.Helper()
	var env cartEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to decode %q: %v", w.Body.String(), err)
	}
	if !env.Success {
		t.Fatalf("expected success envelope, got %s", w.Body.String())
	}
	return env.Data
}
