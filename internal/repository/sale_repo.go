package repository

import (
	"time"

	"go-pos-kasir/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SaleRepository interface {
	FindAll() ([]model.Sale, error)
	FindByID(id uuid.UUID) (*model.Sale, error)
	FindBetween(start, end time.Time) ([]model.Sale, error)
}

type saleRepo struct {
	db *gorm.DB
}

func NewSaleRepo(db *gorm.DB) SaleRepository {
	return &saleRepo{db}
}

func (r *saleRepo) FindAll() ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.Preload("Lines").Preload("Lines.Product").Preload("Customer").
		Order("date DESC").Find(&sales).Error
	return sales, err
}

func (r *saleRepo) FindByID(id uuid.UUID) (*model.Sale, error) {
	var sale model.Sale
	err := r.db.Preload("Lines").Preload("Lines.Product").Preload("Customer").
		First(&sale, "id = ?", id).Error
	return &sale, err
}

func (r *saleRepo) FindBetween(start, end time.Time) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.Preload("Lines").Preload("Customer").
		Where("date BETWEEN ? AND ?", start, end).
		Order("date DESC").Find(&sales).Error
	return sales, err
}
