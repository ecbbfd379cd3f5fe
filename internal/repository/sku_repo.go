package repository

import (
	"go-warehouse-ws/internal/model"

	"gorm.io/gorm"
)

type SkuRepository interface {
	Create(sku *model.Sku) error
	FindAll() ([]model.Sku, error)
	FindByID(id int64) (*model.Sku, error)
	FindByCode(code string) (*model.Sku, error)
	Update(sku *model.Sku) error
	// Delete is idempotent; deleting an absent id is a no-op.
	Delete(id int64) error
}

type skuRepo struct {
	db *gorm.DB
}

func NewSkuRepo(db *gorm.DB) SkuRepository {
	return &skuRepo{db}
}

func (r *skuRepo) Create(sku *model.Sku) error {
	return r.db.Create(sku).Error
}

func (r *skuRepo) FindAll() ([]model.Sku, error) {
	var skus []model.Sku
	err := r.db.Order("id ASC").Find(&skus).Error
	return skus, err
}

func (r *skuRepo) FindByID(id int64) (*model.Sku, error) {
	var sku model.Sku
	if err := r.db.First(&sku, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &sku, nil
}

func (r *skuRepo) FindByCode(code string) (*model.Sku, error) {
	var sku model.Sku
	if err := r.db.First(&sku, "code = ?", code).Error; err != nil {
		return nil, translate(err)
	}
	return &sku, nil
}

func (r *skuRepo) Update(sku *model.Sku) error {
	res := r.db.Model(&model.Sku{}).Where("id = ?", sku.ID).Select("*").Updates(sku)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *skuRepo) Delete(id int64) error {
	return r.db.Delete(&model.Sku{}, "id = ?", id).Error
}
