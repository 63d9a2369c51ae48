package model

import (
	"time"

	"github.com/google/uuid"
)

type PurchaseStatus string

const (
	PurchasePaid   PurchaseStatus = "PAID"
	PurchaseUnpaid PurchaseStatus = "UNPAID"
)

// Purchase is a stock replenishment order from a supplier (pembelian).
type Purchase struct {
	BaseModel
	Number       string         `gorm:"type:varchar(30);uniqueIndex;not null" json:"number"`
	SupplierID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"supplier_id"`
	Supplier     *Supplier      `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	Date         time.Time      `gorm:"not null;index" json:"date"`
	Subtotal     int64          `gorm:"not null" json:"subtotal"`
	ShippingCost int64          `gorm:"default:0" json:"shipping_cost"`
	OtherCost    int64          `gorm:"default:0" json:"other_cost"`
	GrandTotal   int64          `gorm:"not null" json:"grand_total"` // subtotal + shipping + other
	Status       PurchaseStatus `gorm:"type:varchar(10);not null" json:"status"`
	Note         string         `json:"note"`
	Lines        []PurchaseLine `gorm:"foreignKey:PurchaseID" json:"lines,omitempty"`
}

type PurchaseLine struct {
	BaseModel
	PurchaseID uuid.UUID `gorm:"type:uuid;not null;index" json:"purchase_id"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Product    *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	UnitCost   int64     `gorm:"not null" json:"unit_cost"`
	Subtotal   int64     `gorm:"not null" json:"subtotal"`
}

// PurchaseItem is one requested line. ProductID may be nil (or unknown) for
// goods not yet in the catalog; ProductName is then used to auto-provision.
type PurchaseItem struct {
	ProductID   *uuid.UUID `json:"product_id"`
	ProductName string     `json:"product_name"`
	Quantity    int        `json:"quantity" validate:"required,gt=0"`
	UnitCost    int64      `json:"unit_cost" validate:"gte=0"`
}

type CreatePurchaseRequest struct {
	Items        []PurchaseItem `json:"items" validate:"required,min=1,dive"`
	SupplierID   uuid.UUID      `json:"supplier_id" validate:"uuid_required"`
	ShippingCost int64          `json:"shipping_cost" validate:"gte=0"`
	OtherCost    int64          `json:"other_cost" validate:"gte=0"`
	Status       PurchaseStatus `json:"status" validate:"required,oneof=PAID UNPAID"`
	Note         string         `json:"note"`
}
