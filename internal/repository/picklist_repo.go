package repository

import (
	"go-warehouse-ws/internal/model"

	"gorm.io/gorm"
)

type PicklistRepository interface {
	// CreateWithItems inserts the picklist and its items as one unit of work.
	CreateWithItems(picklist *model.Picklist, items []model.PicklistItem) error
	FindAll() ([]model.Picklist, error)
	FindByID(id int64) (*model.Picklist, error)
	Update(picklist *model.Picklist) error
	FindItems(picklistID int64) ([]model.PicklistItem, error)
	FindItemByID(id int64) (*model.PicklistItem, error)
	UpdateItem(item *model.PicklistItem) error
}

type picklistRepo struct {
	db *gorm.DB
}

func NewPicklistRepo(db *gorm.DB) PicklistRepository {
	return &picklistRepo{db}
}

func (r *picklistRepo) CreateWithItems(picklist *model.Picklist, items []model.PicklistItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(picklist).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].PicklistID = picklist.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *picklistRepo) FindAll() ([]model.Picklist, error) {
	var picklists []model.Picklist
	err := r.db.Order("id ASC").Find(&picklists).Error
	return picklists, err
}

func (r *picklistRepo) FindByID(id int64) (*model.Picklist, error) {
	var picklist model.Picklist
	if err := r.db.First(&picklist, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &picklist, nil
}

func (r *picklistRepo) Update(picklist *model.Picklist) error {
	res := r.db.Model(&model.Picklist{}).Where("id = ?", picklist.ID).Select("*").Updates(picklist)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *picklistRepo) FindItems(picklistID int64) ([]model.PicklistItem, error) {
	var items []model.PicklistItem
	err := r.db.Where("picklist_id = ?", picklistID).Order("id ASC").Find(&items).Error
	return items, err
}

func (r *picklistRepo) FindItemByID(id int64) (*model.PicklistItem, error) {
	var item model.PicklistItem
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (r *picklistRepo) UpdateItem(item *model.PicklistItem) error {
	res := r.db.Model(&model.PicklistItem{}).Where("id = ?", item.ID).Select("*").Updates(item)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
