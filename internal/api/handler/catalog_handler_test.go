package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/fusionasiatica/storefront-api/internal/core/domain"
)

func TestCatalogHandler_List(t *testing.T) {
	stub := &stubCatalogService{products: []domain.Product{
		{ID: 2, Name: "Ramen Tonkotsu", Price: 8000, Image: "/img/ramen.webp", Category: "ramen", Stock: 15},
		{ID: 16, Name: "Onigiri", Price: 4500, Category: "snack", Stock: 30},
	}}
	h := NewCatalogHandler(stub, nil)

	c, rec := newAuthContext(http.MethodGet, "/v1/products", "")
	if err := h.List(c); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"Ramen Tonkotsu"`) || !strings.Contains(body, `"price":8000`) {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestCatalogHandler_Create(t *testing.T) {
	stub := &stubCatalogService{product: domain.Product{ID: 21, Name: "Mochi", Price: 3000, Image: "/img/mochi.webp", Category: "postre", Stock: 10}}
	h := NewCatalogHandler(stub, nil)

	c, rec := newAuthContext(http.MethodPost, "/v1/products",
		`{"name":"Mochi","price":3000,"image":"/img/mochi.webp","category":"postre","stock":10}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if stub.addedInput == nil || stub.addedInput.Name != "Mochi" {
		t.Fatalf("input not forwarded to the service")
	}
	if !strings.Contains(rec.Body.String(), `"id":21`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestCatalogHandler_Create_MissingName(t *testing.T) {
	h := NewCatalogHandler(&stubCatalogService{}, nil)

	c, _ := newAuthContext(http.MethodPost, "/v1/products",
		`{"price":3000,"image":"/img/mochi.webp","category":"postre"}`)
	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 HTTPError, got %v", err)
	}
}

func TestCatalogHandler_Create_NegativePrice(t *testing.T) {
	h := NewCatalogHandler(&stubCatalogService{}, nil)

	c, _ := newAuthContext(http.MethodPost, "/v1/products",
		`{"name":"Mochi","price":-1,"image":"/img/mochi.webp","category":"postre"}`)
	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 HTTPError, got %v", err)
	}
}

func TestCatalogHandler_Delete(t *testing.T) {
	stub := &stubCatalogService{}
	h := NewCatalogHandler(stub, nil)

	c, rec := newAuthContext(http.MethodDelete, "/v1/products/5", "")
	c.SetParamNames("id")
	c.SetParamValues("5")
	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if stub.removedID != 5 {
		t.Fatalf("expected remove of id 5, got %d", stub.removedID)
	}
}

func TestCatalogHandler_Delete_BadID(t *testing.T) {
	h := NewCatalogHandler(&stubCatalogService{}, nil)

	c, _ := newAuthContext(http.MethodDelete, "/v1/products/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")
	err := h.Delete(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestCatalogHandler_UpdateStock(t *testing.T) {
	stub := &stubCatalogService{}
	h := NewCatalogHandler(stub, nil)

	c, rec := newAuthContext(http.MethodPatch, "/v1/products/3/stock", `{"stock":-2}`)
	c.SetParamNames("id")
	c.SetParamValues("3")
	if err := h.UpdateStock(c); err != nil {
		t.Fatalf("UpdateStock returned error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if stub.stockID != 3 || stub.stockValue != -2 {
		t.Fatalf("stock update not forwarded: id=%d stock=%d", stub.stockID, stub.stockValue)
	}
}
