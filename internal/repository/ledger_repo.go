package repository

import (
	"time"

	"go-pos-kasir/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LedgerRepository interface {
	FindAll(productID *uuid.UUID) ([]model.StockLedgerEntry, error)
	FindByProductAsc(productID uuid.UUID) ([]model.StockLedgerEntry, error)
	GetStockMovement(startDate, endDate time.Time) ([]StockMovementData, error)
}

// StockMovementData untuk chart data
type StockMovementData struct {
	Date     string `json:"date"`
	Inbound  int    `json:"inbound"`
	Outbound int    `json:"outbound"`
}

type ledgerRepo struct {
	db *gorm.DB
}

func NewLedgerRepo(db *gorm.DB) LedgerRepository {
	return &ledgerRepo{db}
}

func (r *ledgerRepo) FindAll(productID *uuid.UUID) ([]model.StockLedgerEntry, error) {
	q := r.db.Preload("Product").Order("date DESC, created_at DESC")
	if productID != nil {
		q = q.Where("product_id = ?", *productID)
	}
	var entries []model.StockLedgerEntry
	err := q.Find(&entries).Error
	return entries, err
}

// FindByProductAsc returns the full chain for one product in entry order.
func (r *ledgerRepo) FindByProductAsc(productID uuid.UUID) ([]model.StockLedgerEntry, error) {
	var entries []model.StockLedgerEntry
	err := r.db.Where("product_id = ?", productID).
		Order("created_at ASC").Find(&entries).Error
	return entries, err
}

func (r *ledgerRepo) GetStockMovement(startDate, endDate time.Time) ([]StockMovementData, error) {
	var results []StockMovementData

	// Query untuk aggregate pergerakan stok per hari
	rows, err := r.db.Model(&model.StockLedgerEntry{}).
		Select(`
			DATE(date) as date,
			COALESCE(SUM(CASE WHEN direction = 'IN' THEN quantity ELSE 0 END), 0) as inbound,
			COALESCE(SUM(CASE WHEN direction = 'OUT' THEN quantity ELSE 0 END), 0) as outbound
		`).
		Where("date BETWEEN ? AND ?", startDate, endDate).
		Group("DATE(date)").
		Order("date ASC").
		Rows()

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var data StockMovementData
		if err := rows.Scan(&data.Date, &data.Inbound, &data.Outbound); err != nil {
			return nil, err
		}
		results = append(results, data)
	}

	return results, nil
}
