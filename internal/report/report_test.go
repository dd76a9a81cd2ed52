package report

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"go-components-inventory/internal/model"

	"github.com/google/uuid"
)

func product(name string, quantity, minStock int, unitCost int64, category string) model.Product {
	p := model.Product{
		Name:     name,
		Brand:    "Acme",
		ModelNo:  "M-1",
		Category: category,
		Quantity: quantity,
		MinStock: minStock,
		UnitCost: unitCost,
	}
	p.ID = uuid.New()
	return p
}

func sale(date time.Time, customer string, total int64) model.Sale {
	s := model.Sale{Date: date, Customer: customer, Total: total}
	s.ID = uuid.New()
	return s
}

func purchase(date time.Time, supplier string, total int64) model.Purchase {
	p := model.Purchase{Date: date, Supplier: supplier, Total: total}
	p.ID = uuid.New()
	return p
}

func TestTotalStock(t *testing.T) {
	products := []model.Product{
		product("A", 10, 5, 100, "Sensors"),
		product("B", 0, 2, 100, "PLCs"),
		product("C", 7, 1, 100, "Sensors"),
	}
	if got := TotalStock(products); got != 17 {
		t.Errorf("expected 17, got %d", got)
	}
	if got := TotalStock(nil); got != 0 {
		t.Errorf("expected 0 for empty catalog, got %d", got)
	}
}

func TestLowStockItems_BoundaryInclusive(t *testing.T) {
	atThreshold := product("At", 5, 5, 100, "Sensors")
	below := product("Below", 1, 5, 100, "Sensors")
	above := product("Above", 6, 5, 100, "Sensors")
	products := []model.Product{atThreshold, below, above}

	low := LowStockItems(products)
	if len(low) != 2 {
		t.Fatalf("expected 2 low stock items, got %d", len(low))
	}
	for _, p := range low {
		if p.Name == "Above" {
			t.Error("product above threshold reported as low stock")
		}
	}
}

func TestMonthlyTotals(t *testing.T) {
	jan := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, time.February, 2, 0, 0, 0, 0, time.UTC)
	janLastYear := time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC)

	sales := []model.Sale{
		sale(jan, "Acme Manufacturing", 1000),
		sale(feb, "Acme Manufacturing", 500),
		sale(janLastYear, "Acme Manufacturing", 9000),
	}
	if got := MonthlySalesTotal(sales, time.January, 2026); got != 1000 {
		t.Errorf("expected 1000, got %d", got)
	}
	if got := TotalSales(sales); got != 10500 {
		t.Errorf("expected 10500, got %d", got)
	}

	purchases := []model.Purchase{
		purchase(jan, "ABC Electronics", 700),
		purchase(feb, "ABC Electronics", 300),
	}
	if got := MonthlyPurchasesTotal(purchases, time.February, 2026); got != 300 {
		t.Errorf("expected 300, got %d", got)
	}
	if got := TotalPurchases(purchases); got != 1000 {
		t.Errorf("expected 1000, got %d", got)
	}
}

func TestFilters(t *testing.T) {
	jan := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	sales := []model.Sale{
		sale(jan, "Acme Manufacturing", 100),
		sale(mar, "Tech Solutions Inc.", 200),
	}

	got := FilterSales(sales, Filter{Customer: "Acme Manufacturing"})
	if len(got) != 1 || got[0].Customer != "Acme Manufacturing" {
		t.Errorf("customer filter failed: %+v", got)
	}

	got = FilterSales(sales, Filter{StartDate: time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)})
	if len(got) != 1 || !got[0].Date.Equal(mar) {
		t.Errorf("start date filter failed: %+v", got)
	}

	purchases := []model.Purchase{
		purchase(jan, "ABC Electronics", 100),
		purchase(mar, "TechSupply Co.", 200),
	}
	gotP := FilterPurchases(purchases, Filter{Supplier: "TechSupply Co.", EndDate: mar})
	if len(gotP) != 1 || gotP[0].Supplier != "TechSupply Co." {
		t.Errorf("supplier filter failed: %+v", gotP)
	}

	products := []model.Product{
		product("A", 1, 0, 100, "Sensors"),
		product("B", 1, 0, 100, "PLCs"),
	}
	gotPr := FilterProducts(products, Filter{Category: "PLCs"})
	if len(gotPr) != 1 || gotPr[0].Name != "B" {
		t.Errorf("category filter failed: %+v", gotPr)
	}
}

func TestQueriesAreIdempotent(t *testing.T) {
	products := []model.Product{
		product("A, with comma", 3, 5, 1250, "Sensors"),
		product("B", 8, 2, 99, "PLCs"),
	}

	first := InventoryRows(products)
	second := InventoryRows(products)
	if !reflect.DeepEqual(first, second) {
		t.Error("InventoryRows is not idempotent")
	}

	low1 := LowStockItems(products)
	low2 := LowStockItems(products)
	if !reflect.DeepEqual(low1, low2) {
		t.Error("LowStockItems is not idempotent")
	}
}

func TestEncodeCSV_QuotesEmbeddedSeparators(t *testing.T) {
	products := []model.Product{
		product("Servo, 2-axis", 3, 5, 1250, "Servo Motors"),
	}

	out, err := EncodeCSV(InventoryCSVHeader, InventoryRows(products))
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	text := string(out)
	if !strings.Contains(text, `"Servo, 2-axis"`) {
		t.Errorf("field with embedded comma not quoted:\n%s", text)
	}
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Name,Brand,Model,") {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if !strings.Contains(lines[1], "12.50") {
		t.Errorf("unit cost not formatted as decimal: %s", lines[1])
	}
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{1250, "12.50"},
		{100000, "1000.00"},
		{-75, "-0.75"},
	}
	for _, tc := range cases {
		if got := FormatAmount(tc.cents); got != tc.want {
			t.Errorf("FormatAmount(%d) = %q, want %q", tc.cents, got, tc.want)
		}
	}
}

func TestSalesAndPurchaseRows(t *testing.T) {
	jan := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	s := sale(jan, "Acme Manufacturing", 4500)
	s.Items = []model.SaleItem{{Quantity: 2, UnitPrice: 1500}, {Quantity: 1, UnitPrice: 1500}}

	rows := SalesRows([]model.Sale{s})
	want := []string{"2026-01-15", "Acme Manufacturing", "2", "45.00"}
	if !reflect.DeepEqual(rows[0], want) {
		t.Errorf("got %v, want %v", rows[0], want)
	}

	p := purchase(jan, "ABC Electronics", 700)
	p.Items = []model.PurchaseItem{{Quantity: 7, UnitCost: 100}}
	pRows := PurchaseRows([]model.Purchase{p})
	wantP := []string{"2026-01-15", "ABC Electronics", "1", "7.00"}
	if !reflect.DeepEqual(pRows[0], wantP) {
		t.Errorf("got %v, want %v", pRows[0], wantP)
	}
}
