package model

import (
	"time"

	"github.com/google/uuid"
)

type DebtStatus string

const (
	DebtOpen    DebtStatus = "OPEN"
	DebtSettled DebtStatus = "SETTLED"
)

// Debt (hutang) is the receivable created by a credit sale.
// Invariant: Status == SETTLED iff Remaining <= 0.
type Debt struct {
	BaseModel
	CustomerID uuid.UUID     `gorm:"type:uuid;not null;index" json:"customer_id"`
	Customer   *Customer     `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	SaleID     uuid.UUID     `gorm:"type:uuid;not null;index" json:"sale_id"`
	Sale       *Sale         `gorm:"foreignKey:SaleID" json:"sale,omitempty"`
	Total      int64         `gorm:"not null" json:"total"`
	Remaining  int64         `gorm:"not null" json:"remaining"` // monoton turun
	DueDate    *time.Time    `json:"due_date,omitempty"`
	Status     DebtStatus    `gorm:"type:varchar(10);not null" json:"status"`
	Payments   []DebtPayment `gorm:"foreignKey:DebtID" json:"payments,omitempty"`
}

// DebtPayment is append-only; overpayments are recorded in full even though
// the debt's remaining balance clamps at zero.
type DebtPayment struct {
	BaseModel
	DebtID uuid.UUID `gorm:"type:uuid;not null;index" json:"debt_id"`
	Amount int64     `gorm:"not null" json:"amount"`
	Date   time.Time `gorm:"not null" json:"date"`
	Note   string    `json:"note"`
}

type PayDebtRequest struct {
	Amount int64  `json:"amount" validate:"required,gt=0"`
	Note   string `json:"note"`
}
