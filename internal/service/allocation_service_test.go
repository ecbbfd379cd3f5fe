package service

import (
	"errors"
	"testing"
	"time"

	"go-warehouse-ws/internal/model"
	"go-warehouse-ws/internal/repository"
)

func seedSkuAndRack(t *testing.T, repos *repository.Repositories, capacity int) (*model.Sku, *model.Rack) {
	t.Helper()
	sku := &model.Sku{Code: "SKU-100", Name: "Widget", Category: "Parts", Quantity: 500, Status: model.SkuActive}
	if err := repos.Skus.Create(sku); err != nil {
		t.Fatalf("create sku: %v", err)
	}
	rack := &model.Rack{Name: "Rack A", LocationCode: "Zone 1", Warehouse: "Main", Capacity: capacity}
	if err := repos.Racks.Create(rack); err != nil {
		t.Fatalf("create rack: %v", err)
	}
	return sku, rack
}

func TestAllocateStockAccumulatesRackLoad(t *testing.T) {
	repos := newTestRepos()
	svc := NewAllocationService(repos.Allocations, repos.Skus, repos.Racks, newTestHub())
	sku, rack := seedSkuAndRack(t, repos, 1000)

	for _, qty := range []int{100, 250} {
		result, err := svc.AllocateStock(&model.StockAllocation{SkuID: sku.ID, RackID: rack.ID, Quantity: qty})
		if err != nil {
			t.Fatalf("allocate %d: %v", qty, err)
		}
		if result.OverCapacity {
			t.Errorf("allocate %d: unexpected over-capacity flag", qty)
		}
	}

	got, err := repos.Racks.FindByID(rack.ID)
	if err != nil {
		t.Fatalf("find rack: %v", err)
	}
	if got.CurrentLoad != 350 {
		t.Errorf("CurrentLoad = %d, want 350", got.CurrentLoad)
	}
}

func TestAllocateStockOverCapacityFlaggedNotRejected(t *testing.T) {
	repos := newTestRepos()
	svc := NewAllocationService(repos.Allocations, repos.Skus, repos.Racks, newTestHub())
	sku, rack := seedSkuAndRack(t, repos, 100)

	result, err := svc.AllocateStock(&model.StockAllocation{SkuID: sku.ID, RackID: rack.ID, Quantity: 150})
	if err != nil {
		t.Fatalf("over-capacity allocation must succeed, got %v", err)
	}
	if !result.OverCapacity {
		t.Error("expected over-capacity flag")
	}

	got, _ := repos.Racks.FindByID(rack.ID)
	if got.CurrentLoad != 150 {
		t.Errorf("CurrentLoad = %d, want 150", got.CurrentLoad)
	}
}

func TestAllocateStockRejectsUnknownReferences(t *testing.T) {
	repos := newTestRepos()
	svc := NewAllocationService(repos.Allocations, repos.Skus, repos.Racks, newTestHub())
	sku, rack := seedSkuAndRack(t, repos, 100)

	if _, err := svc.AllocateStock(&model.StockAllocation{SkuID: 999, RackID: rack.ID, Quantity: 10}); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("unknown sku: err = %v, want ErrNotFound", err)
	}
	if _, err := svc.AllocateStock(&model.StockAllocation{SkuID: sku.ID, RackID: 999, Quantity: 10}); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("unknown rack: err = %v, want ErrNotFound", err)
	}
}

func TestReleaseStockReturnsRackLoad(t *testing.T) {
	repos := newTestRepos()
	svc := NewAllocationService(repos.Allocations, repos.Skus, repos.Racks, newTestHub())
	sku, rack := seedSkuAndRack(t, repos, 1000)

	result, err := svc.AllocateStock(&model.StockAllocation{SkuID: sku.ID, RackID: rack.ID, Quantity: 200})
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}

	if err := svc.ReleaseStock(result.ID); err != nil {
		t.Fatalf("release: %v", err)
	}

	got, _ := repos.Racks.FindByID(rack.ID)
	if got.CurrentLoad != 0 {
		t.Errorf("CurrentLoad = %d, want 0", got.CurrentLoad)
	}
	if _, err := repos.Allocations.FindByID(result.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("allocation still present after release: %v", err)
	}

	if err := svc.ReleaseStock(result.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("second release: err = %v, want ErrNotFound", err)
	}
}

func TestStockAllocationsResolvePlaceholders(t *testing.T) {
	repos := newTestRepos()
	svc := NewAllocationService(repos.Allocations, repos.Skus, repos.Racks, newTestHub())

	// Dangling references, written straight to the store
	if err := repos.Allocations.Create(&model.StockAllocation{SkuID: 42, RackID: 43, Quantity: 5, InboundDate: time.Now()}); err != nil {
		t.Fatalf("create allocation: %v", err)
	}

	views, err := svc.GetStockAllocations()
	if err != nil {
		t.Fatalf("get allocations: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("got %d views, want 1", len(views))
	}
	v := views[0]
	if v.SkuName != "Unknown SKU" || v.SkuCode != "N/A" || v.RackName != "Unknown Rack" {
		t.Errorf("placeholders = (%q, %q, %q)", v.SkuName, v.SkuCode, v.RackName)
	}
}

func TestStockAgeingBucketsAndRisk(t *testing.T) {
	repos := newTestRepos()
	svc := NewAllocationService(repos.Allocations, repos.Skus, repos.Racks, newTestHub())
	sku, rack := seedSkuAndRack(t, repos, 10000)

	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		ageDays int
		bucket  string
		risk    string
	}{
		{0, "0–30", "Low"},
		{30, "0–30", "Low"},
		{31, "31–60", "Low"},
		{60, "31–60", "Low"},
		{61, "61–90", "Medium"},
		{90, "61–90", "Medium"},
		{91, "90+", "High"},
		{400, "90+", "High"},
	}

	for _, tc := range cases {
		if err := repos.Allocations.Create(&model.StockAllocation{
			SkuID:       sku.ID,
			RackID:      rack.ID,
			Quantity:    10,
			Value:       1000,
			InboundDate: now.AddDate(0, 0, -tc.ageDays),
		}); err != nil {
			t.Fatalf("create allocation aged %d: %v", tc.ageDays, err)
		}
	}

	rows, err := svc.GetStockAgeing(now)
	if err != nil {
		t.Fatalf("get ageing: %v", err)
	}
	if len(rows) != len(cases) {
		t.Fatalf("got %d rows, want %d", len(rows), len(cases))
	}

	for i, tc := range cases {
		row := rows[i]
		if row.Age != tc.ageDays {
			t.Errorf("row %d: age = %d, want %d", i, row.Age, tc.ageDays)
		}
		if row.AgeingBucket != tc.bucket {
			t.Errorf("age %d: bucket = %q, want %q", tc.ageDays, row.AgeingBucket, tc.bucket)
		}
		if row.RiskLevel != tc.risk {
			t.Errorf("age %d: risk = %q, want %q", tc.ageDays, row.RiskLevel, tc.risk)
		}
		if row.SkuCode != sku.Code || row.Rack != rack.Name || row.Zone != rack.LocationCode {
			t.Errorf("age %d: resolved fields = (%q, %q, %q)", tc.ageDays, row.SkuCode, row.Rack, row.Zone)
		}
	}
}

func TestStockAgeingReportIsDerived(t *testing.T) {
	repos := newTestRepos()
	svc := NewAllocationService(repos.Allocations, repos.Skus, repos.Racks, newTestHub())
	sku, rack := seedSkuAndRack(t, repos, 10000)

	inbound := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	if err := repos.Allocations.Create(&model.StockAllocation{SkuID: sku.ID, RackID: rack.ID, Quantity: 10, InboundDate: inbound}); err != nil {
		t.Fatalf("create allocation: %v", err)
	}

	// Same allocation, observed later, ages without any write
	early, _ := svc.GetStockAgeing(inbound.AddDate(0, 0, 10))
	late, _ := svc.GetStockAgeing(inbound.AddDate(0, 0, 100))

	if early[0].Age != 10 || early[0].RiskLevel != "Low" {
		t.Errorf("early = (%d, %s)", early[0].Age, early[0].RiskLevel)
	}
	if late[0].Age != 100 || late[0].RiskLevel != "High" {
		t.Errorf("late = (%d, %s)", late[0].Age, late[0].RiskLevel)
	}
}
