package repository

import (
	"go-components-inventory/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll(search, category string) ([]model.Product, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	FindByIDsForUpdate(tx *gorm.DB, ids []uuid.UUID) ([]model.Product, error)
	Update(product *model.Product) error
	Delete(id uuid.UUID, deletedBy string) error
	UpdateQuantity(tx *gorm.DB, id uuid.UUID, quantity int, updatedBy string) error
	UpdateQuantityAndCost(tx *gorm.DB, id uuid.UUID, quantity int, unitCost int64, updatedBy string) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

// FindAll supports the catalog view filters: free-text search over
// name/brand/model plus an exact category match.
func (r *productRepo) FindAll(search, category string) ([]model.Product, error) {
	var products []model.Product
	q := r.db.Order("created_at ASC")
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("name ILIKE ? OR brand ILIKE ? OR model_no ILIKE ?", like, like, like)
	}
	if category != "" {
		q = q.Where("category = ?", category)
	}
	err := q.Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "id = ?", id).Error
	return &product, err
}

// FindByIDsForUpdate locks the referenced rows so the ledger's validate-then-
// apply runs against a stable snapshot (read-modify-write with no intervening
// writer).
func (r *productRepo) FindByIDsForUpdate(tx *gorm.DB, ids []uuid.UUID) ([]model.Product, error) {
	var products []model.Product
	err := tx.Set("gorm:query_option", "FOR UPDATE").
		Where("id IN ?", ids).
		Order("created_at ASC").
		Find(&products).Error
	return products, err
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepo) Delete(id uuid.UUID, deletedBy string) error {
	if err := r.db.Model(&model.Product{}).Where("id = ?", id).
		Update("updated_by", deletedBy).Error; err != nil {
		return err
	}
	return r.db.Delete(&model.Product{}, "id = ?", id).Error
}

// UpdateQuantity runs inside the caller's transaction (sale deductions).
func (r *productRepo) UpdateQuantity(tx *gorm.DB, id uuid.UUID, quantity int, updatedBy string) error {
	return tx.Model(&model.Product{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"quantity":   quantity,
			"updated_by": updatedBy,
		}).Error
}

// UpdateQuantityAndCost runs inside the caller's transaction (purchase
// intake, which also overwrites the unit cost).
func (r *productRepo) UpdateQuantityAndCost(tx *gorm.DB, id uuid.UUID, quantity int, unitCost int64, updatedBy string) error {
	return tx.Model(&model.Product{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"quantity":   quantity,
			"unit_cost":  unitCost,
			"updated_by": updatedBy,
		}).Error
}
