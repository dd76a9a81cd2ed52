package handler

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"go-components-inventory/internal/ledger"
	"go-components-inventory/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type fakeSaleService struct {
	recordErr error
	sales     []model.Sale
}

func (f *fakeSaleService) RecordSale(req *model.Sale, userID, userName string) error {
	return f.recordErr
}

func (f *fakeSaleService) GetAllSales() ([]model.Sale, error) {
	return f.sales, nil
}

func (f *fakeSaleService) GetSaleByID(id uuid.UUID) (*model.Sale, error) {
	for i := range f.sales {
		if f.sales[i].ID == id {
			return &f.sales[i], nil
		}
	}
	return nil, fiber.ErrNotFound
}

func newSaleApp(svc *fakeSaleService) *fiber.App {
	app := fiber.New()
	h := NewSaleHandler(svc)
	app.Get("/sales", h.GetSales)
	app.Get("/sales/:id", h.GetSale)
	app.Post("/sales", h.CreateSale)
	return app
}

const saleBody = `{
	"date": "2026-01-15T00:00:00Z",
	"customer": "Acme Manufacturing",
	"items": [{"product_id": "6ba7b810-9dad-11d1-80b4-00c04fd430c8", "quantity": 2, "unit_price": 1500}]
}`

func TestCreateSale_Success(t *testing.T) {
	app := newSaleApp(&fakeSaleService{})

	req := httptest.NewRequest("POST", "/sales", strings.NewReader(saleBody))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != 201 {
		t.Errorf("expected 201, got %d", resp.StatusCode)
	}
}

func TestCreateSale_InsufficientStockConflict(t *testing.T) {
	productID := uuid.New()
	app := newSaleApp(&fakeSaleService{
		recordErr: &ledger.InsufficientStockError{ProductID: productID, Available: 10, Requested: 11},
	})

	req := httptest.NewRequest("POST", "/sales", strings.NewReader(saleBody))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != 409 {
		t.Errorf("expected 409, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var payload map[string]string
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if !strings.Contains(payload["error"], "available 10, requested 11") {
		t.Errorf("error message missing stock detail: %q", payload["error"])
	}
}

func TestCreateSale_UnknownProductNotFound(t *testing.T) {
	app := newSaleApp(&fakeSaleService{
		recordErr: &ledger.UnknownProductError{ProductID: uuid.New()},
	})

	req := httptest.NewRequest("POST", "/sales", strings.NewReader(saleBody))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != 404 {
		t.Errorf("expected 404, got %d", resp.StatusCode)
	}
}

func TestCreateSale_InvalidJSON(t *testing.T) {
	app := newSaleApp(&fakeSaleService{})

	req := httptest.NewRequest("POST", "/sales", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Errorf("expected 400, got %d", resp.StatusCode)
	}
}

func TestGetSales(t *testing.T) {
	s := model.Sale{Customer: "Acme Manufacturing", Total: 3000}
	s.ID = uuid.New()
	app := newSaleApp(&fakeSaleService{sales: []model.Sale{s}})

	resp, err := app.Test(httptest.NewRequest("GET", "/sales", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var sales []model.Sale
	if err := json.Unmarshal(body, &sales); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(sales) != 1 || sales[0].Customer != "Acme Manufacturing" {
		t.Errorf("unexpected payload: %+v", sales)
	}
}

func TestGetSale_InvalidID(t *testing.T) {
	app := newSaleApp(&fakeSaleService{})

	resp, err := app.Test(httptest.NewRequest("GET", "/sales/not-a-uuid", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Errorf("expected 400, got %d", resp.StatusCode)
	}
}
