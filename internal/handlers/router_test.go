package handlers

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"backend/internal/catalog"
	"backend/internal/middleware"
	"backend/internal/settings"
	"backend/internal/store"
)

const testJWTSecret = "test-secret"

type testEnv struct {
	router    *gin.Engine
	store     *store.Store
	uploadDir string
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	st := store.New(filepath.Join(dir, "data"))
	if err := st.Init(); err != nil {
		t.Fatalf("store Init returned error: %v", err)
	}

	products := catalog.NewService(st)
	siteSettings := settings.NewService(st)
	uploadDir := filepath.Join(dir, "uploads")

	r := gin.New()
	r.GET("/api/products", GetProducts(products))
	r.GET("/api/products/featured", GetFeaturedProducts(products, siteSettings))
	r.GET("/api/products/:slug", GetProduct(products))
	r.POST("/api/admin/login", AdminLogin(st, testJWTSecret, time.Hour))
	r.POST("/api/contact", Contact(siteSettings))
	r.GET("/api/settings", GetSettings(siteSettings))
	r.GET("/sitemap.xml", Sitemap(products, "http://localhost:5000"))

	admin := r.Group("/api")
	admin.Use(middleware.AdminAuth(testJWTSecret))
	{
		admin.POST("/products", CreateProduct(products))
		admin.PUT("/products/:id", UpdateProduct(products))
		admin.DELETE("/products/:id", DeleteProduct(products))
		admin.PUT("/settings", UpdateSettings(siteSettings))
		admin.POST("/upload", UploadImage(uploadDir, "http://localhost:5000"))
	}

	return testEnv{router: r, store: st, uploadDir: uploadDir}
}

func adminToken(t *testing.T) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  "admin",
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("could not sign test token: %v", err)
	}
	return signed
}

func (e testEnv) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}
