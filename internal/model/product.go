package model

import "github.com/google/uuid"

type Product struct {
	BaseModel
	Barcode       string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"barcode" validate:"required"`
	Name          string     `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	PurchasePrice int64      `gorm:"default:0" json:"purchase_price" validate:"gte=0"`
	SalePrice     int64      `gorm:"default:0" json:"sale_price" validate:"gte=0"`
	Stock         int        `gorm:"default:0" json:"stock"`
	MinStock      int        `gorm:"default:0" json:"min_stock" validate:"gte=0"`
	Category      string     `gorm:"type:varchar(100)" json:"category"`
	Unit          string     `gorm:"type:varchar(20)" json:"unit"`
	Description   string     `json:"description"`
	SupplierID    *uuid.UUID `gorm:"type:uuid;index" json:"supplier_id,omitempty"`
	Supplier      *Supplier  `gorm:"foreignKey:SupplierID" json:"supplier,omitempty" validate:"-"`
}

// IsLowStock reports whether the product sits at or below its minimum threshold.
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.MinStock
}
