package repository

import (
	"sort"
	"sync"

	"go-warehouse-ws/internal/model"
)

type memPicklistRepo struct {
	mu         sync.RWMutex
	nextID     int64
	nextItemID int64
	picklists  map[int64]model.Picklist
	items      map[int64]model.PicklistItem
}

func NewMemoryPicklistRepo() PicklistRepository {
	return &memPicklistRepo{
		picklists: make(map[int64]model.Picklist),
		items:     make(map[int64]model.PicklistItem),
	}
}

func (r *memPicklistRepo) CreateWithItems(picklist *model.Picklist, items []model.PicklistItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	picklist.ID = r.nextID
	r.picklists[picklist.ID] = *picklist
	for i := range items {
		r.nextItemID++
		items[i].ID = r.nextItemID
		items[i].PicklistID = picklist.ID
		r.items[items[i].ID] = items[i]
	}
	return nil
}

func (r *memPicklistRepo) FindAll() ([]model.Picklist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Picklist, 0, len(r.picklists))
	for _, p := range r.picklists {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memPicklistRepo) FindByID(id int64) (*model.Picklist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.picklists[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (r *memPicklistRepo) Update(picklist *model.Picklist) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.picklists[picklist.ID]; !ok {
		return ErrNotFound
	}
	r.picklists[picklist.ID] = *picklist
	return nil
}

func (r *memPicklistRepo) FindItems(picklistID int64) ([]model.PicklistItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.PicklistItem
	for _, it := range r.items {
		if it.PicklistID == picklistID {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memPicklistRepo) FindItemByID(id int64) (*model.PicklistItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	it, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &it, nil
}

func (r *memPicklistRepo) UpdateItem(item *model.PicklistItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ID]; !ok {
		return ErrNotFound
	}
	r.items[item.ID] = *item
	return nil
}
