package service

import (
	"go-warehouse-ws/internal/model"
	"go-warehouse-ws/internal/repository"
)

// OrderStats counts orders per reportable status.
type OrderStats struct {
	Pending   int `json:"pending"`
	InProcess int `json:"inProcess"`
	Breached  int `json:"breached"`
}

// InventoryStats aggregates the SKU table.
type InventoryStats struct {
	TotalSkus     int `json:"totalSkus"`
	TotalQuantity int `json:"totalQuantity"`
}

type DashboardStats struct {
	Orders    OrderStats     `json:"orders"`
	Inventory InventoryStats `json:"inventory"`
}

type DashboardService interface {
	GetDashboardStats() (*DashboardStats, error)
}

type dashboardService struct {
	orderRepo repository.OrderRepository
	skuRepo   repository.SkuRepository
}

func NewDashboardService(orderRepo repository.OrderRepository, skuRepo repository.SkuRepository) DashboardService {
	return &dashboardService{orderRepo: orderRepo, skuRepo: skuRepo}
}

// GetDashboardStats is a pure computed read: a full scan on every call, no
// cached state.
func (s *dashboardService) GetDashboardStats() (*DashboardStats, error) {
	orders, err := s.orderRepo.FindAll()
	if err != nil {
		return nil, err
	}
	skus, err := s.skuRepo.FindAll()
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{}
	for _, o := range orders {
		switch o.Status {
		case model.OrderPending:
			stats.Orders.Pending++
		case model.OrderInProcess:
			stats.Orders.InProcess++
		case model.OrderBreached:
			stats.Orders.Breached++
		}
	}

	stats.Inventory.TotalSkus = len(skus)
	for _, sku := range skus {
		stats.Inventory.TotalQuantity += sku.Quantity
	}

	return stats, nil
}
