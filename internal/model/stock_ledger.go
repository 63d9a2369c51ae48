package model

import (
	"time"

	"github.com/google/uuid"
)

type StockDirection string

const (
	StockIn  StockDirection = "IN"
	StockOut StockDirection = "OUT"
)

// StockLedgerEntry adalah satu baris kartu stok. Append-only: tidak pernah
// diubah atau dihapus setelah ditulis. StockBefore/StockAfter adalah snapshot
// audit, bukan mekanisme kontrol konkurensi.
type StockLedgerEntry struct {
	BaseModel
	ProductID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"product_id"`
	Product     *Product       `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Date        time.Time      `gorm:"not null;index" json:"date"`
	Direction   StockDirection `gorm:"type:varchar(10);not null" json:"direction"`
	Reference   string         `gorm:"type:varchar(30);index" json:"reference"` // nota/faktur asal
	Quantity    int            `gorm:"not null" json:"quantity"`
	StockBefore int            `gorm:"not null" json:"stock_before"`
	StockAfter  int            `gorm:"not null" json:"stock_after"`
	Note        string         `json:"note"`
}

// Delta is the signed stock change this entry represents.
func (e *StockLedgerEntry) Delta() int {
	if e.Direction == StockOut {
		return -e.Quantity
	}
	return e.Quantity
}
