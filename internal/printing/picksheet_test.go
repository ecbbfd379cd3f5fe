package printing

import (
	"bytes"
	"testing"
	"time"

	"go-warehouse-ws/internal/model"
)

func TestGeneratePickSheet(t *testing.T) {
	picklist := &model.Picklist{
		ID:        7,
		OrderIDs:  []int64{1, 2},
		Priority:  "High",
		Warehouse: "Main",
		Status:    model.PicklistInProgress,
		CreatedAt: time.Date(2026, time.February, 3, 9, 30, 0, 0, time.UTC),
	}
	items := []model.PicklistItemView{
		{
			PicklistItem: model.PicklistItem{ID: 1, PicklistID: 7, SkuID: 1, RackID: 1, RequiredQty: 5, PickSequence: 1},
			SkuName:      "Wireless Mouse",
			SkuCode:      "SKU-001",
			Zone:         "Zone 1",
			Rack:         "Rack A",
		},
		{
			PicklistItem: model.PicklistItem{ID: 2, PicklistID: 7, SkuID: 2, RackID: 1, RequiredQty: 2, PickSequence: 2},
			SkuName:      "Mechanical Keyboard",
			SkuCode:      "SKU-002",
			Zone:         "Zone 1",
			Rack:         "Rack A",
		},
	}

	doc, err := GeneratePickSheet(picklist, items)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !bytes.HasPrefix(doc, []byte("%PDF")) {
		t.Errorf("output is not a PDF (starts with %q)", doc[:min(len(doc), 8)])
	}
}

func TestGeneratePickSheetEmpty(t *testing.T) {
	picklist := &model.Picklist{ID: 8, OrderIDs: []int64{3}, Priority: "Low", Warehouse: "Main", Status: model.PicklistNotStarted}

	doc, err := GeneratePickSheet(picklist, nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(doc) == 0 {
		t.Error("empty document")
	}
}
