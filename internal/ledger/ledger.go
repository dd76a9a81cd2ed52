// Package ledger applies purchase and sale transactions to a product
// snapshot. Both operations are pure: they take the current collection,
// return a new one (or reject the whole batch) and never touch storage.
// Persistence is the caller's job, after a successful result.
package ledger

import (
	"errors"
	"fmt"

	"go-components-inventory/internal/model"

	"github.com/google/uuid"
)

var ErrEmptyTransaction = errors.New("transaction must contain at least one line item")

// UnknownProductError rejects a line referencing a product that is not in
// the catalog (for example a deleted one).
type UnknownProductError struct {
	ProductID uuid.UUID
}

func (e *UnknownProductError) Error() string {
	return fmt.Sprintf("unknown product %s", e.ProductID)
}

// InsufficientStockError rejects a sale whose requested quantity, aggregated
// across all lines for the same product, exceeds the available stock.
type InsufficientStockError struct {
	ProductID uuid.UUID
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: available %d, requested %d",
		e.ProductID, e.Available, e.Requested)
}

// PurchaseLine is one intake line: quantity bought at a unit cost.
type PurchaseLine struct {
	ProductID uuid.UUID
	Quantity  int
	UnitCost  int64
}

// SaleLine is one outgoing line: quantity sold at a unit price.
type SaleLine struct {
	ProductID uuid.UUID
	Quantity  int
	UnitPrice int64
}

// ApplyPurchase adds each line's quantity to the matching product and
// overwrites its unit cost with the line's cost. When a product appears in
// more than one line, the last line's cost wins. A line referencing an
// unknown product rejects the whole batch; on rejection the input snapshot
// is returned to the caller unchanged.
func ApplyPurchase(products []model.Product, lines []PurchaseLine) ([]model.Product, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyTransaction
	}

	byID := indexByID(products)
	for _, line := range lines {
		if _, ok := byID[line.ProductID]; !ok {
			return nil, &UnknownProductError{ProductID: line.ProductID}
		}
	}

	updated := make([]model.Product, len(products))
	copy(updated, products)
	for _, line := range lines {
		i := byID[line.ProductID]
		updated[i].Quantity += line.Quantity
		updated[i].UnitCost = line.UnitCost
	}
	return updated, nil
}

// ApplySale validates every line against the snapshot before any mutation,
// aggregating requested quantities per product so that duplicate lines for
// the same product are checked against their cumulative total. Any shortfall
// or unknown product rejects the entire sale; the input is never mutated.
// Selling price is a line-level attribute and is not written back.
func ApplySale(products []model.Product, lines []SaleLine) ([]model.Product, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyTransaction
	}

	byID := indexByID(products)

	requested := make(map[uuid.UUID]int)
	for _, line := range lines {
		if _, ok := byID[line.ProductID]; !ok {
			return nil, &UnknownProductError{ProductID: line.ProductID}
		}
		requested[line.ProductID] += line.Quantity
	}

	// Validate all products before touching any of them: all-or-nothing.
	for _, line := range lines {
		id := line.ProductID
		available := products[byID[id]].Quantity
		if requested[id] > available {
			return nil, &InsufficientStockError{
				ProductID: id,
				Available: available,
				Requested: requested[id],
			}
		}
	}

	updated := make([]model.Product, len(products))
	copy(updated, products)
	for id, qty := range requested {
		updated[byID[id]].Quantity -= qty
	}
	return updated, nil
}

// PurchaseTotal is the invoice total computed at submission time. It is
// stored on the purchase record and never recalculated afterwards.
func PurchaseTotal(lines []PurchaseLine) int64 {
	var total int64
	for _, line := range lines {
		total += int64(line.Quantity) * line.UnitCost
	}
	return total
}

// SaleTotal is the invoice total computed at submission time.
func SaleTotal(lines []SaleLine) int64 {
	var total int64
	for _, line := range lines {
		total += int64(line.Quantity) * line.UnitPrice
	}
	return total
}

func indexByID(products []model.Product) map[uuid.UUID]int {
	byID := make(map[uuid.UUID]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}
	return byID
}
