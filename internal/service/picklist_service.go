package service

import (
	"errors"
	"sort"
	"time"

	"go-warehouse-ws/internal/model"
	"go-warehouse-ws/internal/repository"
	"go-warehouse-ws/internal/ws"
	"go-warehouse-ws/pkg/validator"
)

var ErrInvalidPicklistTransition = errors.New("illegal picklist status transition")

// PickItemUpdate is a partial update for a picklist item. Nil fields are
// left untouched; an empty ShortPickReason clears the reason and resets the
// item to Pending.
type PickItemUpdate struct {
	PickedQty       *int                   `json:"pickedQty"`
	Status          *model.PickItemStatus  `json:"status"`
	ShortPickReason *model.ShortPickReason `json:"shortPickReason"`
}

type PicklistService interface {
	CreatePicklist(picklist *model.Picklist, items []model.PicklistItem) (*model.Picklist, error)
	GetPicklists() ([]model.PicklistSummary, error)
	GetPicklist(id int64) (*model.Picklist, error)
	GetPicklistItems(id int64) ([]model.PicklistItemView, error)
	UpdatePicklistStatus(id int64, status model.PicklistStatus) (*model.Picklist, error)
	UpdatePicklistItem(id int64, updates *PickItemUpdate) (*model.PicklistItem, error)
}

type picklistService struct {
	picklistRepo repository.PicklistRepository
	skuRepo      repository.SkuRepository
	rackRepo     repository.RackRepository
	userRepo     repository.UserRepository
	wsHub        *ws.Hub
}

func NewPicklistService(picklistRepo repository.PicklistRepository, skuRepo repository.SkuRepository, rackRepo repository.RackRepository, userRepo repository.UserRepository, hub *ws.Hub) PicklistService {
	return &picklistService{
		picklistRepo: picklistRepo,
		skuRepo:      skuRepo,
		rackRepo:     rackRepo,
		userRepo:     userRepo,
		wsHub:        hub,
	}
}

func (s *picklistService) CreatePicklist(picklist *model.Picklist, items []model.PicklistItem) (*model.Picklist, error) {
	if picklist.Status == "" {
		picklist.Status = model.PicklistNotStarted
	}
	if verr := validator.FirstError(picklist); verr != nil {
		return nil, verr
	}
	for i := range items {
		if items[i].Status == "" {
			items[i].Status = model.PickPending
		}
		if verr := validator.FirstError(&items[i]); verr != nil {
			return nil, verr
		}
	}

	picklist.ID = 0
	picklist.CreatedAt = time.Now()
	if err := s.picklistRepo.CreateWithItems(picklist, items); err != nil {
		return nil, err
	}

	go s.wsHub.BroadcastJSON(map[string]interface{}{
		"type":       "picklist_created",
		"picklistId": picklist.ID,
		"priority":   picklist.Priority,
	})

	return picklist, nil
}

func (s *picklistService) GetPicklists() ([]model.PicklistSummary, error) {
	picklists, err := s.picklistRepo.FindAll()
	if err != nil {
		return nil, err
	}

	summaries := make([]model.PicklistSummary, 0, len(picklists))
	for _, p := range picklists {
		items, err := s.picklistRepo.FindItems(p.ID)
		if err != nil {
			return nil, err
		}

		summary := model.PicklistSummary{Picklist: p, SkuCount: len(items)}
		for _, it := range items {
			summary.TotalQty += it.RequiredQty
		}
		if p.AssignedPickerID != nil {
			if picker, err := s.userRepo.FindByID(*p.AssignedPickerID); err == nil {
				summary.PickerName = picker.Name
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *picklistService) GetPicklist(id int64) (*model.Picklist, error) {
	return s.picklistRepo.FindByID(id)
}

// GetPicklistItems resolves display fields per line and orders by pick
// sequence. Bin-level storage is not modeled; the bin renders as N/A.
func (s *picklistService) GetPicklistItems(id int64) ([]model.PicklistItemView, error) {
	if _, err := s.picklistRepo.FindByID(id); err != nil {
		return nil, err
	}
	items, err := s.picklistRepo.FindItems(id)
	if err != nil {
		return nil, err
	}

	views := make([]model.PicklistItemView, 0, len(items))
	for _, item := range items {
		view := model.PicklistItemView{
			PicklistItem: item,
			SkuName:      unknownSku,
			SkuCode:      notAvail,
			Zone:         "Unknown Zone",
			Rack:         unknownRack,
			Bin:          notAvail,
			Uom:          "PCS",
			Handling:     "Normal",
		}
		if sku, err := s.skuRepo.FindByID(item.SkuID); err == nil {
			view.SkuName = sku.Name
			view.SkuCode = sku.Code
		}
		if rack, err := s.rackRepo.FindByID(item.RackID); err == nil {
			view.Zone = rack.LocationCode
			view.Rack = rack.Name
		}
		views = append(views, view)
	}

	sort.Slice(views, func(i, j int) bool { return views[i].PickSequence < views[j].PickSequence })
	return views, nil
}

// UpdatePicklistStatus applies an explicit operator transition. There is no
// automatic rollup from item completion; a fully picked list stays in its
// current status until this is called.
func (s *picklistService) UpdatePicklistStatus(id int64, status model.PicklistStatus) (*model.Picklist, error) {
	if !status.Valid() {
		return nil, &validator.ValidationError{
			Message: "unknown picklist status '" + string(status) + "'",
			Field:   "status",
		}
	}

	picklist, err := s.picklistRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if !picklist.Status.CanTransitionTo(status) {
		return nil, ErrInvalidPicklistTransition
	}

	picklist.Status = status
	if err := s.picklistRepo.Update(picklist); err != nil {
		return nil, err
	}

	go s.wsHub.BroadcastJSON(map[string]interface{}{
		"type":       "picklist_status_changed",
		"picklistId": picklist.ID,
		"status":     picklist.Status,
	})

	return picklist, nil
}

func (s *picklistService) UpdatePicklistItem(id int64, updates *PickItemUpdate) (*model.PicklistItem, error) {
	item, err := s.picklistRepo.FindItemByID(id)
	if err != nil {
		return nil, err
	}

	if updates.PickedQty != nil {
		if *updates.PickedQty < 0 {
			return nil, &validator.ValidationError{Message: "pickedQty must not be negative", Field: "pickedQty"}
		}
		item.PickedQty = *updates.PickedQty
	}

	if updates.Status != nil {
		if !updates.Status.Valid() {
			return nil, &validator.ValidationError{
				Message: "unknown pick status '" + string(*updates.Status) + "'",
				Field:   "status",
			}
		}
		item.Status = *updates.Status
		if item.Status != model.PickShort {
			item.ShortPickReason = ""
		}
	}

	if updates.ShortPickReason != nil {
		if *updates.ShortPickReason == "" {
			// Clearing the reason returns the line to the pick queue, even
			// if quantity was fully picked.
			item.ShortPickReason = ""
			item.Status = model.PickPending
		} else {
			if !updates.ShortPickReason.Valid() {
				return nil, &validator.ValidationError{
					Message: "unknown short pick reason '" + string(*updates.ShortPickReason) + "'",
					Field:   "shortPickReason",
				}
			}
			if item.Status != model.PickShort {
				return nil, &validator.ValidationError{
					Message: "shortPickReason is only settable while status is Short",
					Field:   "shortPickReason",
				}
			}
			item.ShortPickReason = *updates.ShortPickReason
		}
	}

	if err := s.picklistRepo.UpdateItem(item); err != nil {
		return nil, err
	}

	go s.wsHub.BroadcastJSON(map[string]interface{}{
		"type":       "picklist_item_updated",
		"itemId":     item.ID,
		"picklistId": item.PicklistID,
		"status":     item.Status,
		"pickedQty":  item.PickedQty,
	})

	return item, nil
}
