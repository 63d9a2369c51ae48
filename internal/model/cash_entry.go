package model

import "time"

type CashDirection string

const (
	CashIn  CashDirection = "IN"
	CashOut CashDirection = "OUT"
)

// Kategori baku yang ditulis oleh orkestrasi. Entri manual bebas memakai
// kategori lain.
const (
	CashCategorySale          = "Sale"
	CashCategoryDebtPayment   = "Debt Payment"
	CashCategoryStockPurchase = "Stock Purchase"
)

// CashEntry is one inflow or outflow row in the cash ledger. Append-only.
type CashEntry struct {
	BaseModel
	Direction CashDirection `gorm:"type:varchar(10);not null" json:"direction" validate:"required,oneof=IN OUT"`
	Category  string        `gorm:"type:varchar(100);not null" json:"category" validate:"required"`
	Amount    int64         `gorm:"not null" json:"amount" validate:"required,gt=0"`
	Note      string        `json:"note"`
	Date      time.Time     `gorm:"not null;index" json:"date"`
}
