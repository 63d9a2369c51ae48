package repository

import (
	"time"

	"go-pos-kasir/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PurchaseRepository interface {
	FindAll() ([]model.Purchase, error)
	FindByID(id uuid.UUID) (*model.Purchase, error)
	FindBetween(start, end time.Time) ([]model.Purchase, error)
}

type purchaseRepo struct {
	db *gorm.DB
}

func NewPurchaseRepo(db *gorm.DB) PurchaseRepository {
	return &purchaseRepo{db}
}

func (r *purchaseRepo) FindAll() ([]model.Purchase, error) {
	var purchases []model.Purchase
	err := r.db.Preload("Lines").Preload("Lines.Product").Preload("Supplier").
		Order("date DESC").Find(&purchases).Error
	return purchases, err
}

func (r *purchaseRepo) FindByID(id uuid.UUID) (*model.Purchase, error) {
	var purchase model.Purchase
	err := r.db.Preload("Lines").Preload("Lines.Product").Preload("Supplier").
		First(&purchase, "id = ?", id).Error
	return &purchase, err
}

func (r *purchaseRepo) FindBetween(start, end time.Time) ([]model.Purchase, error) {
	var purchases []model.Purchase
	err := r.db.Where("date BETWEEN ? AND ?", start, end).
		Order("date DESC").Find(&purchases).Error
	return purchases, err
}
