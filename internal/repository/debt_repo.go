package repository

import (
	"go-pos-kasir/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DebtRepository interface {
	FindAll() ([]model.Debt, error)
	FindByID(id uuid.UUID) (*model.Debt, error)
	TotalOutstanding() (int64, error)
}

type debtRepo struct {
	db *gorm.DB
}

func NewDebtRepo(db *gorm.DB) DebtRepository {
	return &debtRepo{db}
}

func (r *debtRepo) FindAll() ([]model.Debt, error) {
	var debts []model.Debt
	err := r.db.Preload("Customer").Preload("Sale").
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("date DESC")
		}).
		Order("created_at DESC").Find(&debts).Error
	return debts, err
}

func (r *debtRepo) FindByID(id uuid.UUID) (*model.Debt, error) {
	var debt model.Debt
	err := r.db.Preload("Customer").Preload("Sale").
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("date DESC")
		}).
		First(&debt, "id = ?", id).Error
	return &debt, err
}

func (r *debtRepo) TotalOutstanding() (int64, error) {
	var total int64
	err := r.db.Model(&model.Debt{}).
		Where("status = ?", model.DebtOpen).
		Select("COALESCE(SUM(remaining), 0)").
		Scan(&total).Error
	return total, err
}
