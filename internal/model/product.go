package model

// Catalog categories for industrial components
var Categories = []string{"Servo Motors", "PLCs", "Sensors", "Actuators", "Controllers", "Other"}

// Product is a catalog entry. Quantity is only ever changed by the stock
// ledger (purchases add, sales deduct); every other field is edited directly
// through the catalog endpoints. Quantity never goes negative.
type Product struct {
	BaseModel
	Name     string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Brand    string `gorm:"type:varchar(255)" json:"brand" validate:"required"`
	ModelNo  string `gorm:"type:varchar(255)" json:"model" validate:"required"`
	Category string `gorm:"type:varchar(50)" json:"category" validate:"required"`
	Quantity int    `gorm:"default:0" json:"quantity" validate:"gte=0"`
	MinStock int    `gorm:"default:0" json:"min_stock" validate:"gte=0"` // alert threshold

	// Amounts in minor currency units (cents)
	UnitCost     int64 `gorm:"default:0" json:"unit_cost" validate:"gte=0"`
	SellingPrice int64 `gorm:"default:0" json:"selling_price" validate:"gte=0"`

	Specs string `gorm:"type:text" json:"specs"`
}

// IsLowStock reports whether the product is at or below its alert threshold.
func (p *Product) IsLowStock() bool {
	return p.Quantity <= p.MinStock
}

// StockValue is the valuation of the on-hand quantity at cost.
func (p *Product) StockValue() int64 {
	return int64(p.Quantity) * p.UnitCost
}
