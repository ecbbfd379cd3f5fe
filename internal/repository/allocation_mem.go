package repository

import (
	"sort"
	"sync"

	"go-warehouse-ws/internal/model"
)

type memAllocationRepo struct {
	mu     sync.RWMutex
	nextID int64
	allocs map[int64]model.StockAllocation
}

func NewMemoryAllocationRepo() AllocationRepository {
	return &memAllocationRepo{allocs: make(map[int64]model.StockAllocation)}
}

func (r *memAllocationRepo) Create(alloc *model.StockAllocation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	alloc.ID = r.nextID
	r.allocs[alloc.ID] = *alloc
	return nil
}

func (r *memAllocationRepo) FindAll() ([]model.StockAllocation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.StockAllocation, 0, len(r.allocs))
	for _, a := range r.allocs {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memAllocationRepo) FindByID(id int64) (*model.StockAllocation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.allocs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &a, nil
}

func (r *memAllocationRepo) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.allocs, id)
	return nil
}
