package service

import (
	"errors"
	"fmt"

	"go-components-inventory/internal/model"
	"go-components-inventory/internal/repository"
	"go-components-inventory/internal/ws"
	"go-components-inventory/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("product not found")

type CatalogService interface {
	CreateProduct(req *model.Product, userID, userName string) error
	UpdateProduct(id uuid.UUID, req *model.Product, userID, userName string) (*model.Product, error)
	DeleteProduct(id uuid.UUID, userID, userName string) error
	GetProducts(search, category string) ([]model.Product, error)
	GetProduct(id uuid.UUID) (*model.Product, error)
}

type catalogService struct {
	productRepo repository.ProductRepository
	db          *gorm.DB
	wsHub       *ws.Hub
}

func NewCatalogService(pRepo repository.ProductRepository, db *gorm.DB, hub *ws.Hub) CatalogService {
	return &catalogService{
		productRepo: pRepo,
		db:          db,
		wsHub:       hub,
	}
}

func (s *catalogService) CreateProduct(req *model.Product, userID, userName string) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	req.CreatedBy = userID
	req.UpdatedBy = userID

	if err := s.productRepo.Create(req); err != nil {
		return err
	}

	go func() {
		s.wsHub.BroadcastJSON(map[string]interface{}{
			"type":   "stock_update",
			"action": "product_created",
			"product": map[string]interface{}{
				"id":       req.ID,
				"name":     req.Name,
				"quantity": req.Quantity,
			},
			"message": fmt.Sprintf("%s added product '%s' to the catalog", userName, req.Name),
		})
	}()

	return nil
}

// UpdateProduct edits the catalog fields. Quantity and unit cost are owned
// by the stock ledger and are preserved, whatever the request carries.
func (s *catalogService) UpdateProduct(id uuid.UUID, req *model.Product, userID, userName string) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	var updatedProduct *model.Product

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Product
		if err := tx.Set("gorm:query_option", "FOR UPDATE").First(&existing, "id = ?", id).Error; err != nil {
			return ErrProductNotFound
		}

		existing.Name = req.Name
		existing.Brand = req.Brand
		existing.ModelNo = req.ModelNo
		existing.Category = req.Category
		existing.MinStock = req.MinStock
		existing.SellingPrice = req.SellingPrice
		existing.Specs = req.Specs
		existing.UpdatedBy = userID

		if err := tx.Save(&existing).Error; err != nil {
			return err
		}

		updatedProduct = &existing
		return nil
	})

	if err != nil {
		return nil, err
	}

	go func() {
		s.wsHub.BroadcastJSON(map[string]interface{}{
			"type":   "stock_update",
			"action": "product_updated",
			"product": map[string]interface{}{
				"id":       updatedProduct.ID,
				"name":     updatedProduct.Name,
				"quantity": updatedProduct.Quantity,
			},
			"message": fmt.Sprintf("%s updated product '%s'", userName, updatedProduct.Name),
		})
	}()

	return updatedProduct, nil
}

// DeleteProduct removes the catalog entry. Historical purchase and sale
// items keep their product reference; readers render them as
// "Unknown Product".
func (s *catalogService) DeleteProduct(id uuid.UUID, userID, userName string) error {
	existing, err := s.productRepo.FindByID(id)
	if err != nil {
		return ErrProductNotFound
	}

	if err := s.productRepo.Delete(id, userID); err != nil {
		return err
	}

	go func() {
		s.wsHub.BroadcastJSON(map[string]interface{}{
			"type":   "stock_update",
			"action": "product_deleted",
			"product": map[string]interface{}{
				"id":   existing.ID,
				"name": existing.Name,
			},
			"message": fmt.Sprintf("%s deleted product '%s'", userName, existing.Name),
		})
	}()

	return nil
}

func (s *catalogService) GetProducts(search, category string) ([]model.Product, error) {
	return s.productRepo.FindAll(search, category)
}

func (s *catalogService) GetProduct(id uuid.UUID) (*model.Product, error) {
	return s.productRepo.FindByID(id)
}
