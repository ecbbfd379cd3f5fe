package repository

import (
	"go-warehouse-ws/internal/model"

	"gorm.io/gorm"
)

type OrderRepository interface {
	// CreateWithItems inserts the order and its items as one unit of work;
	// partial failure cannot leave an order without its items.
	CreateWithItems(order *model.Order, items []model.OrderItem) error
	FindAll() ([]model.Order, error)
	FindByID(id int64) (*model.Order, error)
	FindItems(orderID int64) ([]model.OrderItem, error)
	Update(order *model.Order) error
}

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) OrderRepository {
	return &orderRepo{db}
}

func (r *orderRepo) CreateWithItems(order *model.Order, items []model.OrderItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *orderRepo) FindAll() ([]model.Order, error) {
	var orders []model.Order
	err := r.db.Order("id ASC").Find(&orders).Error
	return orders, err
}

func (r *orderRepo) FindByID(id int64) (*model.Order, error) {
	var order model.Order
	if err := r.db.First(&order, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

func (r *orderRepo) FindItems(orderID int64) ([]model.OrderItem, error) {
	var items []model.OrderItem
	err := r.db.Where("order_id = ?", orderID).Order("id ASC").Find(&items).Error
	return items, err
}

func (r *orderRepo) Update(order *model.Order) error {
	res := r.db.Model(&model.Order{}).Where("id = ?", order.ID).Select("*").Updates(order)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
