package repository

import (
	"go-warehouse-ws/internal/model"

	"gorm.io/gorm"
)

type RackRepository interface {
	Create(rack *model.Rack) error
	FindAll() ([]model.Rack, error)
	FindByID(id int64) (*model.Rack, error)
	Update(rack *model.Rack) error
	// AddLoad atomically adds delta to the rack's current load and returns
	// the updated rack. The result is floored at zero.
	AddLoad(id int64, delta int) (*model.Rack, error)
}

type rackRepo struct {
	db *gorm.DB
}

func NewRackRepo(db *gorm.DB) RackRepository {
	return &rackRepo{db}
}

func (r *rackRepo) Create(rack *model.Rack) error {
	return r.db.Create(rack).Error
}

func (r *rackRepo) FindAll() ([]model.Rack, error) {
	var racks []model.Rack
	err := r.db.Order("id ASC").Find(&racks).Error
	return racks, err
}

func (r *rackRepo) FindByID(id int64) (*model.Rack, error) {
	var rack model.Rack
	if err := r.db.First(&rack, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &rack, nil
}

func (r *rackRepo) Update(rack *model.Rack) error {
	res := r.db.Model(&model.Rack{}).Where("id = ?", rack.ID).Select("*").Updates(rack)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *rackRepo) AddLoad(id int64, delta int) (*model.Rack, error) {
	var rack model.Rack
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Set("gorm:query_option", "FOR UPDATE").First(&rack, "id = ?", id).Error; err != nil {
			return translate(err)
		}
		rack.CurrentLoad += delta
		if rack.CurrentLoad < 0 {
			rack.CurrentLoad = 0
		}
		return tx.Model(&model.Rack{}).Where("id = ?", id).Update("current_load", rack.CurrentLoad).Error
	})
	if err != nil {
		return nil, err
	}
	return &rack, nil
}
