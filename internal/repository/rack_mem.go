package repository

import (
	"sort"
	"sync"

	"go-warehouse-ws/internal/model"
)

type memRackRepo struct {
	mu     sync.RWMutex
	nextID int64
	racks  map[int64]model.Rack
}

func NewMemoryRackRepo() RackRepository {
	return &memRackRepo{racks: make(map[int64]model.Rack)}
}

func (r *memRackRepo) Create(rack *model.Rack) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	rack.ID = r.nextID
	r.racks[rack.ID] = *rack
	return nil
}

func (r *memRackRepo) FindAll() ([]model.Rack, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Rack, 0, len(r.racks))
	for _, rk := range r.racks {
		out = append(out, rk)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memRackRepo) FindByID(id int64) (*model.Rack, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rk, ok := r.racks[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &rk, nil
}

func (r *memRackRepo) Update(rack *model.Rack) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.racks[rack.ID]; !ok {
		return ErrNotFound
	}
	r.racks[rack.ID] = *rack
	return nil
}

// AddLoad performs the read-modify-write under one lock section, so
// concurrent allocations cannot race on the additive update.
func (r *memRackRepo) AddLoad(id int64, delta int) (*model.Rack, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rk, ok := r.racks[id]
	if !ok {
		return nil, ErrNotFound
	}
	rk.CurrentLoad += delta
	if rk.CurrentLoad < 0 {
		rk.CurrentLoad = 0
	}
	r.racks[id] = rk
	return &rk, nil
}
