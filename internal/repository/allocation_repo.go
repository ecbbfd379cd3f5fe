package repository

import (
	"go-warehouse-ws/internal/model"

	"gorm.io/gorm"
)

type AllocationRepository interface {
	Create(alloc *model.StockAllocation) error
	FindAll() ([]model.StockAllocation, error)
	FindByID(id int64) (*model.StockAllocation, error)
	Delete(id int64) error
}

type allocationRepo struct {
	db *gorm.DB
}

func NewAllocationRepo(db *gorm.DB) AllocationRepository {
	return &allocationRepo{db}
}

func (r *allocationRepo) Create(alloc *model.StockAllocation) error {
	return r.db.Create(alloc).Error
}

func (r *allocationRepo) FindAll() ([]model.StockAllocation, error) {
	var allocs []model.StockAllocation
	err := r.db.Order("id ASC").Find(&allocs).Error
	return allocs, err
}

func (r *allocationRepo) FindByID(id int64) (*model.StockAllocation, error) {
	var alloc model.StockAllocation
	if err := r.db.First(&alloc, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &alloc, nil
}

func (r *allocationRepo) Delete(id int64) error {
	return r.db.Delete(&model.StockAllocation{}, "id = ?", id).Error
}
