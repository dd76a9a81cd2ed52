// Package report derives dashboard metrics and export rows from the product,
// purchase and sale collections. Every function is a pure query: same input,
// same output, and the input is never mutated.
package report

import (
	"time"

	"go-components-inventory/internal/model"
)

// TotalStock sums on-hand quantity across the catalog.
func TotalStock(products []model.Product) int {
	total := 0
	for _, p := range products {
		total += p.Quantity
	}
	return total
}

// LowStockItems returns the products at or below their alert threshold.
func LowStockItems(products []model.Product) []model.Product {
	var low []model.Product
	for _, p := range products {
		if p.IsLowStock() {
			low = append(low, p)
		}
	}
	return low
}

// TotalSales sums stored invoice totals across all sales.
func TotalSales(sales []model.Sale) int64 {
	var total int64
	for _, s := range sales {
		total += s.Total
	}
	return total
}

// TotalPurchases sums stored invoice totals across all purchases.
func TotalPurchases(purchases []model.Purchase) int64 {
	var total int64
	for _, p := range purchases {
		total += p.Total
	}
	return total
}

// MonthlySalesTotal sums the stored totals of sales dated in the given month.
func MonthlySalesTotal(sales []model.Sale, month time.Month, year int) int64 {
	var total int64
	for _, s := range sales {
		if s.Date.Month() == month && s.Date.Year() == year {
			total += s.Total
		}
	}
	return total
}

// MonthlyPurchasesTotal sums the stored totals of purchases dated in the
// given month.
func MonthlyPurchasesTotal(purchases []model.Purchase, month time.Month, year int) int64 {
	var total int64
	for _, p := range purchases {
		if p.Date.Month() == month && p.Date.Year() == year {
			total += p.Total
		}
	}
	return total
}

// Filter narrows report output; zero values mean "no constraint".
type Filter struct {
	StartDate time.Time
	EndDate   time.Time
	Category  string
	Customer  string
	Supplier  string
}

func (f Filter) matchDate(d time.Time) bool {
	if !f.StartDate.IsZero() && d.Before(f.StartDate) {
		return false
	}
	if !f.EndDate.IsZero() && d.After(f.EndDate) {
		return false
	}
	return true
}

// FilterProducts keeps the products matching the filter's category.
func FilterProducts(products []model.Product, f Filter) []model.Product {
	var out []model.Product
	for _, p := range products {
		if f.Category == "" || p.Category == f.Category {
			out = append(out, p)
		}
	}
	return out
}

// FilterSales keeps the sales within the filter's date range and customer.
func FilterSales(sales []model.Sale, f Filter) []model.Sale {
	var out []model.Sale
	for _, s := range sales {
		if !f.matchDate(s.Date) {
			continue
		}
		if f.Customer != "" && s.Customer != f.Customer {
			continue
		}
		out = append(out, s)
	}
	return out
}

// FilterPurchases keeps the purchases within the filter's date range and
// supplier.
func FilterPurchases(purchases []model.Purchase, f Filter) []model.Purchase {
	var out []model.Purchase
	for _, p := range purchases {
		if !f.matchDate(p.Date) {
			continue
		}
		if f.Supplier != "" && p.Supplier != f.Supplier {
			continue
		}
		out = append(out, p)
	}
	return out
}
