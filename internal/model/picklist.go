package model

import (
	"time"

	"gorm.io/datatypes"
)

type PicklistStatus string

const (
	PicklistNotStarted PicklistStatus = "Not Started"
	PicklistInProgress PicklistStatus = "In Progress"
	PicklistPaused     PicklistStatus = "Paused"
	PicklistCompleted  PicklistStatus = "Completed"
)

// picklistTransitions: Not Started → In Progress → Paused|Completed, and a
// paused picklist can be resumed. Completion is always an explicit caller
// action, never derived from item state.
var picklistTransitions = map[PicklistStatus][]PicklistStatus{
	PicklistNotStarted: {PicklistInProgress},
	PicklistInProgress: {PicklistPaused, PicklistCompleted},
	PicklistPaused:     {PicklistInProgress},
	PicklistCompleted:  {},
}

func (s PicklistStatus) Valid() bool {
	_, ok := picklistTransitions[s]
	return ok
}

func (s PicklistStatus) CanTransitionTo(next PicklistStatus) bool {
	for _, t := range picklistTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

type PickItemStatus string

const (
	PickPending PickItemStatus = "Pending"
	PickPicked  PickItemStatus = "Picked"
	PickShort   PickItemStatus = "Short"
)

func (s PickItemStatus) Valid() bool {
	return s == PickPending || s == PickPicked || s == PickShort
}

type ShortPickReason string

const (
	ShortDamaged  ShortPickReason = "Damaged"
	ShortMissing  ShortPickReason = "Missing"
	ShortNotFound ShortPickReason = "Not Found"
)

func (r ShortPickReason) Valid() bool {
	return r == ShortDamaged || r == ShortMissing || r == ShortNotFound
}

// Picklist groups SKU/rack/quantity instructions for fulfilling one or
// more orders.
type Picklist struct {
	ID               int64                      `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderIDs         datatypes.JSONSlice[int64] `gorm:"type:jsonb" json:"orderIds" validate:"required,min=1"`
	Priority         string                     `gorm:"type:varchar(20);not null" json:"priority" validate:"required,oneof=High Medium Low"`
	Warehouse        string                     `gorm:"type:varchar(100);not null" json:"warehouse" validate:"required"`
	Status           PicklistStatus             `gorm:"type:varchar(20);not null;default:'Not Started'" json:"status" validate:"omitempty,oneof='Not Started' 'In Progress' Paused Completed"`
	AssignedPickerID *int64                     `json:"assignedPickerId"`
	CreatedAt        time.Time                  `json:"createdAt"`
}

// PicklistItem is one pick instruction line.
type PicklistItem struct {
	ID              int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	PicklistID      int64           `gorm:"not null;index" json:"picklistId"`
	SkuID           int64           `gorm:"not null" json:"skuId" validate:"required,gt=0"`
	RackID          int64           `gorm:"not null" json:"rackId" validate:"required,gt=0"`
	RequiredQty     int             `gorm:"not null" json:"requiredQty" validate:"required,gt=0"`
	PickedQty       int             `gorm:"not null;default:0" json:"pickedQty" validate:"gte=0"`
	Status          PickItemStatus  `gorm:"type:varchar(20);not null;default:'Pending'" json:"status" validate:"omitempty,oneof=Pending Picked Short"`
	PickSequence    int             `gorm:"not null" json:"pickSequence"`
	ShortPickReason ShortPickReason `gorm:"type:varchar(20)" json:"shortPickReason,omitempty"`
}

// PicklistSummary is a Picklist with list-view aggregates.
type PicklistSummary struct {
	Picklist
	PickerName string `json:"pickerName,omitempty"`
	SkuCount   int    `json:"skuCount"`
	TotalQty   int    `json:"totalQty"`
}

// PicklistItemView is a PicklistItem with resolved location/display fields.
type PicklistItemView struct {
	PicklistItem
	SkuName  string `json:"skuName"`
	SkuCode  string `json:"skuCode"`
	Zone     string `json:"zone"`
	Rack     string `json:"rack"`
	Bin      string `json:"bin"`
	Uom      string `json:"uom"`
	Handling string `json:"handling"`
}
