package service

import (
	"fmt"
	"log"
	"time"

	"go-warehouse-ws/internal/model"
	"go-warehouse-ws/internal/repository"
	"go-warehouse-ws/internal/ws"
	"go-warehouse-ws/pkg/validator"
)

// Placeholder strings for allocations whose SKU or rack no longer exists.
// Read paths tolerate dangling references instead of failing.
const (
	unknownSku  = "Unknown SKU"
	unknownRack = "Unknown Rack"
	notAvail    = "N/A"
)

type AllocationService interface {
	AllocateStock(req *model.StockAllocation) (*model.AllocateResult, error)
	ReleaseStock(allocationID int64) error
	GetStockAllocations() ([]model.AllocationView, error)
	GetStockAgeing(now time.Time) ([]model.AgeingRow, error)
}

type allocationService struct {
	allocRepo repository.AllocationRepository
	skuRepo   repository.SkuRepository
	rackRepo  repository.RackRepository
	wsHub     *ws.Hub
}

func NewAllocationService(allocRepo repository.AllocationRepository, skuRepo repository.SkuRepository, rackRepo repository.RackRepository, hub *ws.Hub) AllocationService {
	return &allocationService{
		allocRepo: allocRepo,
		skuRepo:   skuRepo,
		rackRepo:  rackRepo,
		wsHub:     hub,
	}
}

// AllocateStock creates an allocation stamped with the current time and adds
// its quantity to the rack's load. Missing SKU/rack references are rejected;
// exceeding the rack's capacity is flagged on the result, never rejected.
func (s *allocationService) AllocateStock(req *model.StockAllocation) (*model.AllocateResult, error) {
	if verr := validator.FirstError(req); verr != nil {
		return nil, verr
	}

	// Referential checks at the engine boundary
	if _, err := s.skuRepo.FindByID(req.SkuID); err != nil {
		return nil, fmt.Errorf("sku %d: %w", req.SkuID, err)
	}
	if _, err := s.rackRepo.FindByID(req.RackID); err != nil {
		return nil, fmt.Errorf("rack %d: %w", req.RackID, err)
	}

	req.ID = 0
	req.InboundDate = time.Now()
	if err := s.allocRepo.Create(req); err != nil {
		return nil, err
	}

	rack, err := s.rackRepo.AddLoad(req.RackID, req.Quantity)
	if err != nil {
		return nil, err
	}

	result := &model.AllocateResult{
		StockAllocation: *req,
		OverCapacity:    rack.OverCapacity(),
	}

	if result.OverCapacity {
		log.Printf("Warning: rack %d over capacity (%d/%d)", rack.ID, rack.CurrentLoad, rack.Capacity)
	}

	go s.wsHub.BroadcastJSON(map[string]interface{}{
		"type":         "stock_allocated",
		"allocationId": req.ID,
		"skuId":        req.SkuID,
		"rackId":       req.RackID,
		"quantity":     req.Quantity,
		"currentLoad":  rack.CurrentLoad,
		"overCapacity": result.OverCapacity,
	})

	return result, nil
}

// ReleaseStock removes an allocation and gives its quantity back to the
// rack. The rack load is floored at zero.
func (s *allocationService) ReleaseStock(allocationID int64) error {
	alloc, err := s.allocRepo.FindByID(allocationID)
	if err != nil {
		return err
	}

	if err := s.allocRepo.Delete(allocationID); err != nil {
		return err
	}

	// A rack deleted out from under the allocation is tolerated; there is
	// no load left to give back.
	if _, err := s.rackRepo.AddLoad(alloc.RackID, -alloc.Quantity); err != nil && err != repository.ErrNotFound {
		return err
	}

	go s.wsHub.BroadcastJSON(map[string]interface{}{
		"type":         "stock_released",
		"allocationId": allocationID,
		"rackId":       alloc.RackID,
		"quantity":     alloc.Quantity,
	})

	return nil
}

func (s *allocationService) GetStockAllocations() ([]model.AllocationView, error) {
	allocs, err := s.allocRepo.FindAll()
	if err != nil {
		return nil, err
	}

	views := make([]model.AllocationView, 0, len(allocs))
	for _, alloc := range allocs {
		view := model.AllocationView{
			StockAllocation: alloc,
			SkuName:         unknownSku,
			SkuCode:         notAvail,
			RackName:        unknownRack,
		}
		if sku, err := s.skuRepo.FindByID(alloc.SkuID); err == nil {
			view.SkuName = sku.Name
			view.SkuCode = sku.Code
		}
		if rack, err := s.rackRepo.FindByID(alloc.RackID); err == nil {
			view.RackName = rack.Name
		}
		views = append(views, view)
	}
	return views, nil
}

// GetStockAgeing derives the ageing/risk report for the given reference
// time. Nothing is stored; the report is recomputed from the allocations on
// every call.
func (s *allocationService) GetStockAgeing(now time.Time) ([]model.AgeingRow, error) {
	allocs, err := s.allocRepo.FindAll()
	if err != nil {
		return nil, err
	}

	rows := make([]model.AgeingRow, 0, len(allocs))
	for _, alloc := range allocs {
		age := alloc.AgeDays(now)
		row := model.AgeingRow{
			SkuCode:        notAvail,
			SkuName:        unknownSku,
			Category:       notAvail,
			Warehouse:      "Main",
			Zone:           notAvail,
			Rack:           notAvail,
			Bin:            notAvail,
			InboundDate:    alloc.InboundDate,
			Age:            age,
			AgeingBucket:   model.AgeingBucketFor(age),
			AvailableQty:   alloc.Quantity,
			ReservedQty:    alloc.ReservedQty,
			InventoryValue: alloc.Value,
			RiskLevel:      model.RiskLevelFor(age),
		}
		if sku, err := s.skuRepo.FindByID(alloc.SkuID); err == nil {
			row.SkuCode = sku.Code
			row.SkuName = sku.Name
			row.Category = sku.Category
		}
		if rack, err := s.rackRepo.FindByID(alloc.RackID); err == nil {
			row.Warehouse = rack.Warehouse
			row.Zone = rack.LocationCode
			row.Rack = rack.Name
		}
		rows = append(rows, row)
	}
	return rows, nil
}
