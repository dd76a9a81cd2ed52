package report

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"go-components-inventory/internal/model"
)

// EncodeCSV renders a header row plus data rows. encoding/csv quotes fields
// containing separators or newlines, so free-text columns are safe.
func EncodeCSV(header []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// InventoryCSVHeader matches the column order of InventoryRows.
var InventoryCSVHeader = []string{
	"Name", "Brand", "Model", "Category",
	"Current Stock", "Min Stock", "Unit Cost", "Selling Price", "Stock Value",
}

// InventoryRows builds one export row per product.
func InventoryRows(products []model.Product) [][]string {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			p.Name,
			p.Brand,
			p.ModelNo,
			p.Category,
			fmt.Sprintf("%d", p.Quantity),
			fmt.Sprintf("%d", p.MinStock),
			FormatAmount(p.UnitCost),
			FormatAmount(p.SellingPrice),
			FormatAmount(p.StockValue()),
		})
	}
	return rows
}

// SalesCSVHeader matches the column order of SalesRows.
var SalesCSVHeader = []string{"Date", "Customer", "Items Count", "Total"}

// SalesRows builds one export row per sale invoice.
func SalesRows(sales []model.Sale) [][]string {
	rows := make([][]string, 0, len(sales))
	for _, s := range sales {
		rows = append(rows, []string{
			s.Date.Format("2006-01-02"),
			s.Customer,
			fmt.Sprintf("%d", len(s.Items)),
			FormatAmount(s.Total),
		})
	}
	return rows
}

// PurchasesCSVHeader matches the column order of PurchaseRows.
var PurchasesCSVHeader = []string{"Date", "Supplier", "Items Count", "Total"}

// PurchaseRows builds one export row per purchase invoice.
func PurchaseRows(purchases []model.Purchase) [][]string {
	rows := make([][]string, 0, len(purchases))
	for _, p := range purchases {
		rows = append(rows, []string{
			p.Date.Format("2006-01-02"),
			p.Supplier,
			fmt.Sprintf("%d", len(p.Items)),
			FormatAmount(p.Total),
		})
	}
	return rows
}

// FormatAmount renders minor currency units as a decimal string, e.g. 1250 -> "12.50".
func FormatAmount(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
