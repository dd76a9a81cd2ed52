package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"go-components-inventory/internal/model"
	"go-components-inventory/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type fakeCatalogService struct {
	products  []model.Product
	createErr error
	updateErr error
	deleteErr error

	gotSearch   string
	gotCategory string
}

func (f *fakeCatalogService) CreateProduct(req *model.Product, userID, userName string) error {
	return f.createErr
}

func (f *fakeCatalogService) UpdateProduct(id uuid.UUID, req *model.Product, userID, userName string) (*model.Product, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return req, nil
}

func (f *fakeCatalogService) DeleteProduct(id uuid.UUID, userID, userName string) error {
	return f.deleteErr
}

func (f *fakeCatalogService) GetProducts(search, category string) ([]model.Product, error) {
	f.gotSearch = search
	f.gotCategory = category
	return f.products, nil
}

func (f *fakeCatalogService) GetProduct(id uuid.UUID) (*model.Product, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			return &f.products[i], nil
		}
	}
	return nil, errors.New("not found")
}

func newProductApp(svc *fakeCatalogService) *fiber.App {
	app := fiber.New()
	h := NewProductHandler(svc)
	app.Get("/products", h.GetProducts)
	app.Get("/products/:id", h.GetProduct)
	app.Post("/products", h.CreateProduct)
	app.Put("/products/:id", h.UpdateProduct)
	app.Delete("/products/:id", h.DeleteProduct)
	return app
}

func TestGetProducts_PassesFilters(t *testing.T) {
	p := model.Product{Name: "Servo SV-100", Category: "Servo Motors", Quantity: 4}
	p.ID = uuid.New()
	svc := &fakeCatalogService{products: []model.Product{p}}
	app := newProductApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/products?search=servo&category=Servo+Motors", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
	if svc.gotSearch != "servo" || svc.gotCategory != "Servo Motors" {
		t.Errorf("filters not forwarded: search=%q category=%q", svc.gotSearch, svc.gotCategory)
	}

	body, _ := io.ReadAll(resp.Body)
	var products []model.Product
	if err := json.Unmarshal(body, &products); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Servo SV-100" {
		t.Errorf("unexpected payload: %+v", products)
	}
}

func TestCreateProduct(t *testing.T) {
	app := newProductApp(&fakeCatalogService{})

	body := `{"name":"Servo SV-100","brand":"Acme","model":"SV-100","category":"Servo Motors","quantity":4,"min_stock":2,"unit_cost":12500,"selling_price":19900}`
	req := httptest.NewRequest("POST", "/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != 201 {
		t.Errorf("expected 201, got %d", resp.StatusCode)
	}
}

func TestCreateProduct_ValidationError(t *testing.T) {
	app := newProductApp(&fakeCatalogService{createErr: errors.New("validation failed: field 'Product.Name' failed on tag 'required'")})

	req := httptest.NewRequest("POST", "/products", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Errorf("expected 400, got %d", resp.StatusCode)
	}
}

func TestUpdateProduct_NotFound(t *testing.T) {
	app := newProductApp(&fakeCatalogService{updateErr: service.ErrProductNotFound})

	req := httptest.NewRequest("PUT", "/products/"+uuid.NewString(), strings.NewReader(`{"name":"X","brand":"Y","model":"Z","category":"Other"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != 404 {
		t.Errorf("expected 404, got %d", resp.StatusCode)
	}
}

func TestDeleteProduct(t *testing.T) {
	app := newProductApp(&fakeCatalogService{})

	resp, err := app.Test(httptest.NewRequest("DELETE", "/products/"+uuid.NewString(), nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
}

func TestDeleteProduct_InvalidID(t *testing.T) {
	app := newProductApp(&fakeCatalogService{})

	resp, err := app.Test(httptest.NewRequest("DELETE", "/products/nope", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Errorf("expected 400, got %d", resp.StatusCode)
	}
}
