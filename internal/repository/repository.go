package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned by every repository when the referenced id is
// absent. Handlers map it to a 404 envelope.
var ErrNotFound = errors.New("record not found")

// Repositories bundles one repository per entity type so wiring and seeding
// stay in one place. Both backends satisfy the same interfaces.
type Repositories struct {
	Users       UserRepository
	Skus        SkuRepository
	Racks       RackRepository
	Orders      OrderRepository
	Picklists   PicklistRepository
	Allocations AllocationRepository
	Connectors  ConnectorRepository
}

// NewMemoryRepositories builds the in-memory backend: mutex-guarded keyed
// maps with sequential per-type ids. This is the default store and the test
// store.
func NewMemoryRepositories() *Repositories {
	return &Repositories{
		Users:       NewMemoryUserRepo(),
		Skus:        NewMemorySkuRepo(),
		Racks:       NewMemoryRackRepo(),
		Orders:      NewMemoryOrderRepo(),
		Picklists:   NewMemoryPicklistRepo(),
		Allocations: NewMemoryAllocationRepo(),
		Connectors:  NewMemoryConnectorRepo(),
	}
}

// NewGormRepositories builds the PostgreSQL backend behind the same
// interfaces.
func NewGormRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:       NewUserRepo(db),
		Skus:        NewSkuRepo(db),
		Racks:       NewRackRepo(db),
		Orders:      NewOrderRepo(db),
		Picklists:   NewPicklistRepo(db),
		Allocations: NewAllocationRepo(db),
		Connectors:  NewConnectorRepo(db),
	}
}

// translate maps gorm's not-found error onto the repository sentinel.
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
