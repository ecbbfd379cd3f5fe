package repository

import (
	"sort"
	"sync"

	"go-warehouse-ws/internal/model"
)

type memSkuRepo struct {
	mu     sync.RWMutex
	nextID int64
	skus   map[int64]model.Sku
}

func NewMemorySkuRepo() SkuRepository {
	return &memSkuRepo{skus: make(map[int64]model.Sku)}
}

func (r *memSkuRepo) Create(sku *model.Sku) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	sku.ID = r.nextID
	r.skus[sku.ID] = *sku
	return nil
}

func (r *memSkuRepo) FindAll() ([]model.Sku, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Sku, 0, len(r.skus))
	for _, s := range r.skus {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memSkuRepo) FindByID(id int64) (*model.Sku, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.skus[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (r *memSkuRepo) FindByCode(code string) (*model.Sku, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.skus {
		if s.Code == code {
			return &s, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memSkuRepo) Update(sku *model.Sku) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.skus[sku.ID]; !ok {
		return ErrNotFound
	}
	r.skus[sku.ID] = *sku
	return nil
}

func (r *memSkuRepo) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.skus, id)
	return nil
}
