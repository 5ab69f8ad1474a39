package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"backend/internal/models"
)

func TestGetProductsReturnsSeededCatalog(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, httptest.NewRequest("GET", "/api/products", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var products []models.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &products); err != nil {
		t.Fatal(err)
	}
	if len(products) != 5 {
		t.Fatalf("expected 5 seeded products, got %d", len(products))
	}
	if products[0].Slug != "royal-palm" {
		t.Fatalf("store order not preserved, first product: %+v", products[0])
	}
}

func TestGetProductBySlug(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, httptest.NewRequest("GET", "/api/products/royal-palm", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var product models.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &product); err != nil {
		t.Fatal(err)
	}
	if product.ID != 1 || product.Name != "Royal Palm" {
		t.Fatalf("unexpected product: %+v", product)
	}
}

func TestGetProductByNumericIDFallback(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, httptest.NewRequest("GET", "/api/products/3", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var product models.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &product); err != nil {
		t.Fatal(err)
	}
	if product.ID != 3 {
		t.Fatalf("expected id=3, got %d", product.ID)
	}
}

func TestGetProductNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, httptest.NewRequest("GET", "/api/products/no-such-tree", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGetFeaturedProductsHonorsFeaturedCount(t *testing.T) {
	env := newTestEnv(t)

	// Seed has 3 featured products and featuredCount=3.
	rec := env.do(t, httptest.NewRequest("GET", "/api/products/featured", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var products []models.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &products); err != nil {
		t.Fatal(err)
	}
	if len(products) != 3 {
		t.Fatalf("expected 3 featured products, got %d", len(products))
	}
	for i, p := range products {
		if !p.Featured {
			t.Fatalf("product %d is filler although enough are flagged featured: %+v", i, p)
		}
	}
}

func TestGetFeaturedProductsFillsWithNonFeatured(t *testing.T) {
	env := newTestEnv(t)

	products := []models.Product{
		{ID: 1, Slug: "a", Name: "A", Featured: false},
		{ID: 2, Slug: "b", Name: "B", Featured: true},
		{ID: 3, Slug: "c", Name: "C", Featured: false},
	}
	if err := env.store.WriteProducts(products); err != nil {
		t.Fatal(err)
	}

	rec := env.do(t, httptest.NewRequest("GET", "/api/products/featured", nil))
	var got []models.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 products, got %d", len(got))
	}
	if got[0].ID != 2 || got[1].ID != 1 || got[2].ID != 3 {
		t.Fatalf("expected featured first then filler in store order, got %d %d %d",
			got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestContactSubmission(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest("POST", "/api/contact",
		strings.NewReader(`{"name":"Ana","email":"ana@example.com","phone":"123","message":"Hi"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := env.do(t, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Message   string `json:"message"`
		Submitted bool   `json:"submitted"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if !body.Submitted || body.Message == "" {
		t.Fatalf("unexpected contact response: %+v", body)
	}
}
