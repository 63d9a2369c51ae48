package repository

import (
	"time"

	"go-pos-kasir/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CashRepository interface {
	Create(entry *model.CashEntry) error
	FindAll() ([]model.CashEntry, error)
	FindBetween(start, end time.Time) ([]model.CashEntry, error)
	Delete(id uuid.UUID) error
}

type cashRepo struct {
	db *gorm.DB
}

func NewCashRepo(db *gorm.DB) CashRepository {
	return &cashRepo{db}
}

func (r *cashRepo) Create(entry *model.CashEntry) error {
	return r.db.Create(entry).Error
}

func (r *cashRepo) FindAll() ([]model.CashEntry, error) {
	var entries []model.CashEntry
	err := r.db.Order("date DESC").Find(&entries).Error
	return entries, err
}

func (r *cashRepo) FindBetween(start, end time.Time) ([]model.CashEntry, error) {
	var entries []model.CashEntry
	err := r.db.Where("date BETWEEN ? AND ?", start, end).
		Order("date DESC").Find(&entries).Error
	return entries, err
}

func (r *cashRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.CashEntry{}, "id = ?", id).Error
}
