package service

import (
	"errors"
	"testing"

	"go-warehouse-ws/internal/model"
	"go-warehouse-ws/internal/repository"
	"go-warehouse-ws/pkg/validator"
)

func newInventoryService(repos *repository.Repositories) InventoryService {
	return NewInventoryService(repos.Skus, repos.Racks, newTestHub())
}

func TestCreateSkuDefaultsAndDuplicateCode(t *testing.T) {
	repos := newTestRepos()
	svc := newInventoryService(repos)

	sku, err := svc.CreateSku(&model.Sku{Code: "SKU-300", Name: "Cable", Category: "Electronics", Quantity: 20})
	if err != nil {
		t.Fatalf("create sku: %v", err)
	}
	if sku.Status != model.SkuActive {
		t.Errorf("status = %q, want active", sku.Status)
	}

	if _, err := svc.CreateSku(&model.Sku{Code: "SKU-300", Name: "Other", Category: "Electronics"}); !errors.Is(err, ErrSkuCodeExists) {
		t.Errorf("duplicate code: err = %v, want ErrSkuCodeExists", err)
	}
}

func TestCreateSkuValidation(t *testing.T) {
	repos := newTestRepos()
	svc := newInventoryService(repos)

	var verr *validator.ValidationError
	if _, err := svc.CreateSku(&model.Sku{Name: "No Code", Category: "X"}); !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if verr.Field != "code" {
		t.Errorf("field = %q, want code", verr.Field)
	}
}

func TestUpdateSkuPartial(t *testing.T) {
	repos := newTestRepos()
	svc := newInventoryService(repos)

	sku, err := svc.CreateSku(&model.Sku{Code: "SKU-301", Name: "Cable", Category: "Electronics", Quantity: 20})
	if err != nil {
		t.Fatalf("create sku: %v", err)
	}

	qty := 35
	updated, err := svc.UpdateSku(sku.ID, &SkuUpdate{Quantity: &qty})
	if err != nil {
		t.Fatalf("update sku: %v", err)
	}
	if updated.Quantity != 35 {
		t.Errorf("quantity = %d, want 35", updated.Quantity)
	}
	if updated.Name != "Cable" || updated.Code != "SKU-301" {
		t.Errorf("untouched fields changed: %+v", updated)
	}

	if _, err := svc.UpdateSku(999, &SkuUpdate{Quantity: &qty}); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("unknown sku: err = %v, want ErrNotFound", err)
	}
}

func TestDeleteSkuIdempotent(t *testing.T) {
	repos := newTestRepos()
	svc := newInventoryService(repos)

	sku, err := svc.CreateSku(&model.Sku{Code: "SKU-302", Name: "Cable", Category: "Electronics"})
	if err != nil {
		t.Fatalf("create sku: %v", err)
	}

	if err := svc.DeleteSku(sku.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := svc.DeleteSku(sku.ID); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if _, err := svc.GetSku(sku.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("deleted sku still readable: %v", err)
	}
}

func TestCreateRackDefaults(t *testing.T) {
	repos := newTestRepos()
	svc := newInventoryService(repos)

	rack, err := svc.CreateRack(&model.Rack{Name: "Rack C", LocationCode: "Zone 3", Capacity: 500, CurrentLoad: 77})
	if err != nil {
		t.Fatalf("create rack: %v", err)
	}
	if rack.Warehouse != "Main" {
		t.Errorf("warehouse = %q, want Main", rack.Warehouse)
	}
	// Load is owned by the allocation engine, never accepted from input
	if rack.CurrentLoad != 0 {
		t.Errorf("CurrentLoad = %d, want 0", rack.CurrentLoad)
	}

	var verr *validator.ValidationError
	if _, err := svc.CreateRack(&model.Rack{Name: "Rack D", LocationCode: "Zone 4"}); !errors.As(err, &verr) {
		t.Errorf("zero capacity: err = %v, want ValidationError", err)
	}
}
