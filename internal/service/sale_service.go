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

type SaleService interface {
	RecordSale(req *model.Sale, userID, userName string) error
	GetAllSales() ([]model.Sale, error)
	GetSaleByID(id uuid.UUID) (*model.Sale, error)
}

type saleService struct {
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
	db          *gorm.DB
	wsHub       *ws.Hub
}

func NewSaleService(pRepo repository.ProductRepository, sRepo repository.SaleRepository, db *gorm.DB, hub *ws.Hub) SaleService {
	return &saleService{
		productRepo: pRepo,
		saleRepo:    sRepo,
		db:          db,
		wsHub:       hub,
	}
}

// RecordSale validates the whole batch against locked stock rows before
// deducting anything; an oversell on any line rolls the transaction back
// with stock untouched. Ledger errors (insufficient stock, unknown product)
// pass through for the handler to map.
func (s *saleService) RecordSale(req *model.Sale, userID, userName string) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	lines := make([]ledger.SaleLine, len(req.Items))
	ids := make([]uuid.UUID, len(req.Items))
	for i, item := range req.Items {
		lines[i] = ledger.SaleLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
		ids[i] = item.ProductID
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		products, err := s.productRepo.FindByIDsForUpdate(tx, productIDs(ids))
		if err != nil {
			return err
		}

		updated, err := ledger.ApplySale(products, lines)
		if err != nil {
			return err
		}

		for _, p := range updated {
			if err := s.productRepo.UpdateQuantity(tx, p.ID, p.Quantity, userID); err != nil {
				return err
			}
		}

		req.Total = ledger.SaleTotal(lines)
		req.CreatedBy = userID
		req.UpdatedBy = userID
		return s.saleRepo.Create(tx, req)
	})
	if err != nil {
		return err
	}

	go func() {
		s.wsHub.BroadcastJSON(map[string]interface{}{
			"type":   "stock_update",
			"action": "sale_recorded",
			"sale": map[string]interface{}{
				"id":       req.ID,
				"customer": req.Customer,
				"items":    len(req.Items),
				"total":    req.Total,
			},
			"message": fmt.Sprintf("%s recorded a sale to '%s' (%d items)", userName, req.Customer, len(req.Items)),
		})
	}()

	return nil
}

func (s *saleService) GetAllSales() ([]model.Sale, error) {
	return s.saleRepo.FindAll()
}

func (s *saleService) GetSaleByID(id uuid.UUID) (*model.Sale, error) {
	return s.saleRepo.FindByID(id)
}
