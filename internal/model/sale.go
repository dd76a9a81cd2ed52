package model

import (
	"time"

	"github.com/google/uuid"
)

// Sale is a customer invoice, immutable once recorded. Total is the snapshot
// value computed at submission time.
type Sale struct {
	BaseModel
	Date     time.Time  `gorm:"type:date;not null;index" json:"date" validate:"required"`
	Customer string     `gorm:"type:varchar(255);not null" json:"customer" validate:"required"`
	Items    []SaleItem `gorm:"constraint:OnDelete:CASCADE" json:"items" validate:"min=1,dive"`
	Total    int64      `gorm:"not null" json:"total"` // Snapshot Σ quantity × price
}

// SaleItem is one product+quantity+price line within a sale. UnitPrice is a
// line-level attribute, independent of the catalog selling price.
type SaleItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SaleID    uuid.UUID `gorm:"type:uuid;not null;index" json:"sale_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null" json:"product_id" validate:"uuid_required"`
	Quantity  int       `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	UnitPrice int64     `gorm:"not null" json:"unit_price" validate:"gte=0"`
}
