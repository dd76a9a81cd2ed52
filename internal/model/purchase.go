package model

import (
	"time"

	"github.com/google/uuid"
)

// Purchase is an intake invoice. It is immutable once recorded: the stored
// Total is the value computed at submission time and is never recalculated
// from the line items afterwards.
type Purchase struct {
	BaseModel
	Date     time.Time      `gorm:"type:date;not null;index" json:"date" validate:"required"`
	Supplier string         `gorm:"type:varchar(255);not null" json:"supplier" validate:"required"`
	Items    []PurchaseItem `gorm:"constraint:OnDelete:CASCADE" json:"items" validate:"min=1,dive"`
	Total    int64          `gorm:"not null" json:"total"` // Snapshot Σ quantity × cost
}

// PurchaseItem is one product+quantity+cost line within a purchase.
// ProductID is a plain reference: deleting a product leaves historical lines
// dangling, rendered as "Unknown Product" by consumers.
type PurchaseItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PurchaseID uuid.UUID `gorm:"type:uuid;not null;index" json:"purchase_id"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null" json:"product_id" validate:"uuid_required"`
	Quantity   int       `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	UnitCost   int64     `gorm:"not null" json:"unit_cost" validate:"gte=0"`
}
