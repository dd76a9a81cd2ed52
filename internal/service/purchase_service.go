package service

import (
	"fmt"

	"go-components-inventory/internal/ledger"
	"go-components-inventory/internal/model"
	"go-components-inventory/internal/repository"
	"go-components-inventory/internal/ws"
	"go-components-inventory/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PurchaseService interface {
	RecordPurchase(req *model.Purchase, userID, userName string) error
	GetAllPurchases() ([]model.Purchase, error)
	GetPurchaseByID(id uuid.UUID) (*model.Purchase, error)
}

type purchaseService struct {
	productRepo  repository.ProductRepository
	purchaseRepo repository.PurchaseRepository
	db           *gorm.DB
	wsHub        *ws.Hub
}

func NewPurchaseService(pRepo repository.ProductRepository, purRepo repository.PurchaseRepository, db *gorm.DB, hub *ws.Hub) PurchaseService {
	return &purchaseService{
		productRepo:  pRepo,
		purchaseRepo: purRepo,
		db:           db,
		wsHub:        hub,
	}
}

// RecordPurchase applies the intake to product stock and stores the invoice
// in one database transaction: either both land or neither does. The stored
// total is the snapshot computed here and is never recalculated.
func (s *purchaseService) RecordPurchase(req *model.Purchase, userID, userName string) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	lines := make([]ledger.PurchaseLine, len(req.Items))
	for i, item := range req.Items {
		lines[i] = ledger.PurchaseLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitCost:  item.UnitCost,
		}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		products, err := s.productRepo.FindByIDsForUpdate(tx, productIDs(lineProductIDs(lines)))
		if err != nil {
			return err
		}

		updated, err := ledger.ApplyPurchase(products, lines)
		if err != nil {
			return err
		}

		for _, p := range updated {
			if err := s.productRepo.UpdateQuantityAndCost(tx, p.ID, p.Quantity, p.UnitCost, userID); err != nil {
				return err
			}
		}

		req.Total = ledger.PurchaseTotal(lines)
		req.CreatedBy = userID
		req.UpdatedBy = userID
		return s.purchaseRepo.Create(tx, req)
	})
	if err != nil {
		return err
	}

	go func() {
		s.wsHub.BroadcastJSON(map[string]interface{}{
			"type":   "stock_update",
			"action": "purchase_recorded",
			"purchase": map[string]interface{}{
				"id":       req.ID,
				"supplier": req.Supplier,
				"items":    len(req.Items),
				"total":    req.Total,
			},
			"message": fmt.Sprintf("%s recorded a purchase from '%s' (%d items)", userName, req.Supplier, len(req.Items)),
		})
	}()

	return nil
}

func (s *purchaseService) GetAllPurchases() ([]model.Purchase, error) {
	return s.purchaseRepo.FindAll()
}

func (s *purchaseService) GetPurchaseByID(id uuid.UUID) (*model.Purchase, error) {
	return s.purchaseRepo.FindByID(id)
}

// lineProductIDs collects the product references of a purchase batch.
func lineProductIDs(lines []ledger.PurchaseLine) []uuid.UUID {
	ids := make([]uuid.UUID, len(lines))
	for i, line := range lines {
		ids[i] = line.ProductID
	}
	return ids
}

// productIDs de-duplicates while preserving order, so duplicate lines do not
// expand the row lock set.
func productIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
