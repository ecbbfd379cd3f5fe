package service

import (
	"errors"

	"go-warehouse-ws/internal/model"
	"go-warehouse-ws/internal/repository"
	"go-warehouse-ws/internal/ws"
	"go-warehouse-ws/pkg/validator"
)

var ErrSkuCodeExists = errors.New("SKU code already exists")

// SkuUpdate is a partial update; nil fields are left untouched.
type SkuUpdate struct {
	Code       *string          `json:"code"`
	Name       *string          `json:"name"`
	Category   *string          `json:"category"`
	Quantity   *int             `json:"quantity"`
	Dimensions *string          `json:"dimensions"`
	Weight     *string          `json:"weight"`
	Status     *model.SkuStatus `json:"status"`
	Location   *string          `json:"location"`
}

type InventoryService interface {
	CreateSku(req *model.Sku) (*model.Sku, error)
	GetSkus() ([]model.Sku, error)
	GetSku(id int64) (*model.Sku, error)
	UpdateSku(id int64, updates *SkuUpdate) (*model.Sku, error)
	DeleteSku(id int64) error
	CreateRack(req *model.Rack) (*model.Rack, error)
	GetRacks() ([]model.Rack, error)
}

type inventoryService struct {
	skuRepo  repository.SkuRepository
	rackRepo repository.RackRepository
	wsHub    *ws.Hub
}

func NewInventoryService(skuRepo repository.SkuRepository, rackRepo repository.RackRepository, hub *ws.Hub) InventoryService {
	return &inventoryService{
		skuRepo:  skuRepo,
		rackRepo: rackRepo,
		wsHub:    hub,
	}
}

func (s *inventoryService) CreateSku(req *model.Sku) (*model.Sku, error) {
	if req.Status == "" {
		req.Status = model.SkuActive
	}
	if verr := validator.FirstError(req); verr != nil {
		return nil, verr
	}

	// Duplicate code check is a service concern, not a store one
	if existing, _ := s.skuRepo.FindByCode(req.Code); existing != nil {
		return nil, ErrSkuCodeExists
	}

	req.ID = 0
	if err := s.skuRepo.Create(req); err != nil {
		return nil, err
	}

	go s.wsHub.BroadcastJSON(map[string]interface{}{
		"type":     "sku_created",
		"skuId":    req.ID,
		"code":     req.Code,
		"quantity": req.Quantity,
	})

	return req, nil
}

func (s *inventoryService) GetSkus() ([]model.Sku, error) {
	return s.skuRepo.FindAll()
}

func (s *inventoryService) GetSku(id int64) (*model.Sku, error) {
	return s.skuRepo.FindByID(id)
}

func (s *inventoryService) UpdateSku(id int64, updates *SkuUpdate) (*model.Sku, error) {
	sku, err := s.skuRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if updates.Code != nil {
		sku.Code = *updates.Code
	}
	if updates.Name != nil {
		sku.Name = *updates.Name
	}
	if updates.Category != nil {
		sku.Category = *updates.Category
	}
	if updates.Quantity != nil {
		sku.Quantity = *updates.Quantity
	}
	if updates.Dimensions != nil {
		sku.Dimensions = *updates.Dimensions
	}
	if updates.Weight != nil {
		sku.Weight = *updates.Weight
	}
	if updates.Status != nil {
		sku.Status = *updates.Status
	}
	if updates.Location != nil {
		sku.Location = *updates.Location
	}

	if verr := validator.FirstError(sku); verr != nil {
		return nil, verr
	}

	if err := s.skuRepo.Update(sku); err != nil {
		return nil, err
	}

	go s.wsHub.BroadcastJSON(map[string]interface{}{
		"type":     "sku_updated",
		"skuId":    sku.ID,
		"code":     sku.Code,
		"quantity": sku.Quantity,
	})

	return sku, nil
}

// DeleteSku is idempotent: deleting an absent id is a no-op. Allocations
// referencing the SKU are left in place and resolve to placeholders.
func (s *inventoryService) DeleteSku(id int64) error {
	if err := s.skuRepo.Delete(id); err != nil {
		return err
	}

	go s.wsHub.BroadcastJSON(map[string]interface{}{
		"type":  "sku_deleted",
		"skuId": id,
	})

	return nil
}

func (s *inventoryService) CreateRack(req *model.Rack) (*model.Rack, error) {
	if req.Warehouse == "" {
		req.Warehouse = "Main"
	}
	if verr := validator.FirstError(req); verr != nil {
		return nil, verr
	}

	req.ID = 0
	req.CurrentLoad = 0
	if err := s.rackRepo.Create(req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *inventoryService) GetRacks() ([]model.Rack, error) {
	return s.rackRepo.FindAll()
}
