package repository

import (
	"sort"
	"sync"

	"go-warehouse-ws/internal/model"

	"gorm.io/gorm"
)

type ConnectorRepository interface {
	Create(connector *model.ApiConnector) error
	FindAll() ([]model.ApiConnector, error)
}

type connectorRepo struct {
	db *gorm.DB
}

func NewConnectorRepo(db *gorm.DB) ConnectorRepository {
	return &connectorRepo{db}
}

func (r *connectorRepo) Create(connector *model.ApiConnector) error {
	return r.db.Create(connector).Error
}

func (r *connectorRepo) FindAll() ([]model.ApiConnector, error) {
	var connectors []model.ApiConnector
	err := r.db.Order("id ASC").Find(&connectors).Error
	return connectors, err
}

type memConnectorRepo struct {
	mu         sync.RWMutex
	nextID     int64
	connectors map[int64]model.ApiConnector
}

func NewMemoryConnectorRepo() ConnectorRepository {
	return &memConnectorRepo{connectors: make(map[int64]model.ApiConnector)}
}

func (r *memConnectorRepo) Create(connector *model.ApiConnector) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	connector.ID = r.nextID
	r.connectors[connector.ID] = *connector
	return nil
}

func (r *memConnectorRepo) FindAll() ([]model.ApiConnector, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.ApiConnector, 0, len(r.connectors))
	for _, c := range r.connectors {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
