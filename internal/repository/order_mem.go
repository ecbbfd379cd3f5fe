package repository

import (
	"sort"
	"sync"

	"go-warehouse-ws/internal/model"
)

type memOrderRepo struct {
	mu         sync.RWMutex
	nextID     int64
	nextItemID int64
	orders     map[int64]model.Order
	items      map[int64]model.OrderItem
}

func NewMemoryOrderRepo() OrderRepository {
	return &memOrderRepo{
		orders: make(map[int64]model.Order),
		items:  make(map[int64]model.OrderItem),
	}
}

// CreateWithItems holds the lock across the order and item inserts, which is
// the memory store's unit of work.
func (r *memOrderRepo) CreateWithItems(order *model.Order, items []model.OrderItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	order.ID = r.nextID
	r.orders[order.ID] = *order
	for i := range items {
		r.nextItemID++
		items[i].ID = r.nextItemID
		items[i].OrderID = order.ID
		r.items[items[i].ID] = items[i]
	}
	return nil
}

func (r *memOrderRepo) FindAll() ([]model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memOrderRepo) FindByID(id int64) (*model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &o, nil
}

func (r *memOrderRepo) FindItems(orderID int64) ([]model.OrderItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.OrderItem
	for _, it := range r.items {
		if it.OrderID == orderID {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memOrderRepo) Update(order *model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[order.ID]; !ok {
		return ErrNotFound
	}
	r.orders[order.ID] = *order
	return nil
}
