package repository

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"go-warehouse-ws/internal/model"
)

func TestMemorySkuRoundTrip(t *testing.T) {
	repo := NewMemorySkuRepo()

	sku := &model.Sku{Code: "SKU-1", Name: "Widget", Category: "Parts", Quantity: 10}
	if err := repo.Create(sku); err != nil {
		t.Fatalf("create: %v", err)
	}
	if sku.ID == 0 {
		t.Fatal("id not assigned")
	}

	got, err := repo.FindByID(sku.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if *got != *sku {
		t.Errorf("round trip mismatch: %+v != %+v", got, sku)
	}

	// Returned value is a copy, mutating it must not touch the store
	got.Quantity = 999
	again, _ := repo.FindByID(sku.ID)
	if again.Quantity != 10 {
		t.Errorf("store aliased: quantity = %d", again.Quantity)
	}

	byCode, err := repo.FindByCode("SKU-1")
	if err != nil {
		t.Fatalf("find by code: %v", err)
	}
	if byCode.ID != sku.ID {
		t.Errorf("find by code id = %d", byCode.ID)
	}
	if _, err := repo.FindByCode("SKU-X"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown code: err = %v", err)
	}
}

func TestMemorySkuSequentialIDsAndOrder(t *testing.T) {
	repo := NewMemorySkuRepo()

	for i := 1; i <= 5; i++ {
		sku := &model.Sku{Code: fmt.Sprintf("SKU-%d", i), Name: "N", Category: "C"}
		if err := repo.Create(sku); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		if sku.ID != int64(i) {
			t.Errorf("id = %d, want %d", sku.ID, i)
		}
	}

	all, err := repo.FindAll()
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	for i, sku := range all {
		if sku.ID != int64(i+1) {
			t.Errorf("position %d: id = %d, insertion order lost", i, sku.ID)
		}
	}
}

func TestMemorySkuDeleteIdempotent(t *testing.T) {
	repo := NewMemorySkuRepo()

	sku := &model.Sku{Code: "SKU-1", Name: "Widget", Category: "Parts"}
	repo.Create(sku)

	if err := repo.Delete(sku.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := repo.Delete(sku.ID); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if err := repo.Delete(999); err != nil {
		t.Fatalf("delete absent: %v", err)
	}
}

func TestMemorySkuIDsNeverReused(t *testing.T) {
	repo := NewMemorySkuRepo()

	a := &model.Sku{Code: "A", Name: "A", Category: "C"}
	repo.Create(a)
	repo.Delete(a.ID)

	b := &model.Sku{Code: "B", Name: "B", Category: "C"}
	repo.Create(b)
	if b.ID <= a.ID {
		t.Errorf("id %d reused after delete of %d", b.ID, a.ID)
	}
}

func TestMemoryRackAddLoad(t *testing.T) {
	repo := NewMemoryRackRepo()

	rack := &model.Rack{Name: "R", LocationCode: "Z", Warehouse: "Main", Capacity: 100}
	repo.Create(rack)

	got, err := repo.AddLoad(rack.ID, 60)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if got.CurrentLoad != 60 {
		t.Errorf("load = %d, want 60", got.CurrentLoad)
	}

	// Floored at zero on over-release
	got, err = repo.AddLoad(rack.ID, -200)
	if err != nil {
		t.Fatalf("subtract: %v", err)
	}
	if got.CurrentLoad != 0 {
		t.Errorf("load = %d, want 0", got.CurrentLoad)
	}

	if _, err := repo.AddLoad(999, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown rack: err = %v", err)
	}
}

func TestMemoryRackAddLoadConcurrent(t *testing.T) {
	repo := NewMemoryRackRepo()

	rack := &model.Rack{Name: "R", LocationCode: "Z", Warehouse: "Main", Capacity: 100000}
	repo.Create(rack)

	const workers = 20
	const perWorker = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				repo.AddLoad(rack.ID, 1)
			}
		}()
	}
	wg.Wait()

	got, _ := repo.FindByID(rack.ID)
	if got.CurrentLoad != workers*perWorker {
		t.Errorf("load = %d, want %d (lost updates)", got.CurrentLoad, workers*perWorker)
	}
}

func TestMemoryOrderCreateWithItems(t *testing.T) {
	repo := NewMemoryOrderRepo()

	order := &model.Order{OrderID: "ORD-1", Customer: "C", Type: model.OrderManual, Status: model.OrderPending}
	items := []model.OrderItem{
		{SkuID: 1, Quantity: 2},
		{SkuID: 2, Quantity: 3},
	}
	if err := repo.CreateWithItems(order, items); err != nil {
		t.Fatalf("create: %v", err)
	}

	found, err := repo.FindItems(order.ID)
	if err != nil {
		t.Fatalf("find items: %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("got %d items, want 2", len(found))
	}
	for _, it := range found {
		if it.OrderID != order.ID || it.ID == 0 {
			t.Errorf("item not linked: %+v", it)
		}
	}

	// Items of other orders never leak
	other := &model.Order{OrderID: "ORD-2", Customer: "C", Type: model.OrderManual, Status: model.OrderPending}
	repo.CreateWithItems(other, []model.OrderItem{{SkuID: 9, Quantity: 1}})
	found, _ = repo.FindItems(order.ID)
	if len(found) != 2 {
		t.Errorf("items leaked across orders: %d", len(found))
	}
}

func TestMemoryUpdateUnknownID(t *testing.T) {
	orders := NewMemoryOrderRepo()
	if err := orders.Update(&model.Order{ID: 42}); !errors.Is(err, ErrNotFound) {
		t.Errorf("order update: err = %v", err)
	}

	racks := NewMemoryRackRepo()
	if err := racks.Update(&model.Rack{ID: 42}); !errors.Is(err, ErrNotFound) {
		t.Errorf("rack update: err = %v", err)
	}
}

func TestMemoryPicklistItems(t *testing.T) {
	repo := NewMemoryPicklistRepo()

	picklist := &model.Picklist{OrderIDs: []int64{1}, Priority: "High", Warehouse: "Main", Status: model.PicklistNotStarted}
	items := []model.PicklistItem{
		{SkuID: 1, RackID: 1, RequiredQty: 5, Status: model.PickPending, PickSequence: 1},
	}
	if err := repo.CreateWithItems(picklist, items); err != nil {
		t.Fatalf("create: %v", err)
	}

	found, err := repo.FindItems(picklist.ID)
	if err != nil {
		t.Fatalf("find items: %v", err)
	}
	if len(found) != 1 || found[0].PicklistID != picklist.ID {
		t.Fatalf("items = %+v", found)
	}

	item := found[0]
	item.PickedQty = 5
	item.Status = model.PickPicked
	if err := repo.UpdateItem(&item); err != nil {
		t.Fatalf("update item: %v", err)
	}

	got, err := repo.FindItemByID(item.ID)
	if err != nil {
		t.Fatalf("find item: %v", err)
	}
	if got.PickedQty != 5 || got.Status != model.PickPicked {
		t.Errorf("item = %+v", got)
	}
}
