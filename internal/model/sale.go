package model

import (
	"time"

	"github.com/google/uuid"
)

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "CASH"
	PaymentDebt PaymentMethod = "DEBT"
)

type SaleStatus string

const (
	SalePaid   SaleStatus = "PAID"
	SaleUnpaid SaleStatus = "UNPAID"
)

// Sale is a single point-of-sale checkout event. Immutable after creation.
type Sale struct {
	BaseModel
	Number        string        `gorm:"type:varchar(30);uniqueIndex;not null" json:"number"`
	CustomerID    *uuid.UUID    `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	Customer      *Customer     `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Date          time.Time     `gorm:"not null;index" json:"date"`
	Subtotal      int64         `gorm:"not null" json:"subtotal"`
	Discount      int64         `gorm:"default:0" json:"discount"`
	Tax           int64         `gorm:"default:0" json:"tax"`
	Total         int64         `gorm:"not null" json:"total"` // subtotal - discount + tax
	Paid          int64         `gorm:"default:0" json:"paid"`
	Change        int64         `gorm:"default:0" json:"change"`
	PaymentMethod PaymentMethod `gorm:"type:varchar(10);not null" json:"payment_method"`
	Status        SaleStatus    `gorm:"type:varchar(10);not null" json:"status"`
	Lines         []SaleLine    `gorm:"foreignKey:SaleID" json:"lines,omitempty"`
}

// SaleLine snapshots price and cost at the moment of sale.
type SaleLine struct {
	BaseModel
	SaleID    uuid.UUID `gorm:"type:uuid;not null;index" json:"sale_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	UnitPrice int64     `gorm:"not null" json:"unit_price"`
	CostPrice int64     `gorm:"default:0" json:"cost_price"` // hargaBeli saat transaksi, untuk HPP
	Subtotal  int64     `gorm:"not null" json:"subtotal"`
}

// CartItem is one requested line in a sale cart.
type CartItem struct {
	ProductID uuid.UUID `json:"product_id" validate:"uuid_required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}

// CreateSaleRequest is the checkout payload.
type CreateSaleRequest struct {
	Items         []CartItem    `json:"items" validate:"required,min=1,dive"`
	CustomerID    *uuid.UUID    `json:"customer_id"`
	Discount      int64         `json:"discount" validate:"gte=0"`
	Tax           int64         `json:"tax" validate:"gte=0"`
	PaymentMethod PaymentMethod `json:"payment_method" validate:"required,oneof=CASH DEBT"`
	Paid          int64         `json:"paid" validate:"gte=0"`
	DueDate       *time.Time    `json:"due_date"`
}
