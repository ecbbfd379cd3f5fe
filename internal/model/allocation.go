package model

import "time"

// Ageing bucket labels, coarse age-range classification for risk reporting
const (
	Bucket0To30  = "0–30"
	Bucket31To60 = "31–60"
	Bucket61To90 = "61–90"
	Bucket90Plus = "90+"
)

// Risk levels derived from allocation age
const (
	RiskLow    = "Low"
	RiskMedium = "Medium"
	RiskHigh   = "High"
)

// StockAllocation assigns a quantity of a SKU to a rack, timestamped for
// ageing. Value is a monetary amount in minor units.
type StockAllocation struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	SkuID       int64     `gorm:"not null;index" json:"skuId" validate:"required,gt=0"`
	RackID      int64     `gorm:"not null;index" json:"rackId" validate:"required,gt=0"`
	Quantity    int       `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	ReservedQty int       `gorm:"not null;default:0" json:"reservedQty" validate:"gte=0"`
	Value       int64     `gorm:"not null;default:0" json:"value" validate:"gte=0"`
	InboundDate time.Time `json:"inboundDate"`
}

// AgeDays returns the whole days elapsed since the inbound date.
func (a *StockAllocation) AgeDays(now time.Time) int {
	return int(now.Sub(a.InboundDate) / (24 * time.Hour))
}

// AgeingBucketFor classifies an age in days. Thresholds are strict >
// comparisons evaluated in descending order.
func AgeingBucketFor(ageDays int) string {
	switch {
	case ageDays > 90:
		return Bucket90Plus
	case ageDays > 60:
		return Bucket61To90
	case ageDays > 30:
		return Bucket31To60
	default:
		return Bucket0To30
	}
}

// RiskLevelFor maps an age in days to a risk level, same descending
// threshold order as the buckets.
func RiskLevelFor(ageDays int) string {
	switch {
	case ageDays > 90:
		return RiskHigh
	case ageDays > 60:
		return RiskMedium
	default:
		return RiskLow
	}
}

// AllocationView is a StockAllocation with display fields resolved against
// the SKU and rack stores. Dangling references render as placeholders.
type AllocationView struct {
	StockAllocation
	SkuName  string `json:"skuName"`
	SkuCode  string `json:"skuCode"`
	RackName string `json:"rackName"`
}

// AllocateResult is the allocation engine's response for a new allocation.
type AllocateResult struct {
	StockAllocation
	OverCapacity bool `json:"overCapacity"`
}

// AgeingRow is one line of the stock ageing report.
type AgeingRow struct {
	SkuCode        string    `json:"skuCode"`
	SkuName        string    `json:"skuName"`
	Category       string    `json:"category"`
	Warehouse      string    `json:"warehouse"`
	Zone           string    `json:"zone"`
	Rack           string    `json:"rack"`
	Bin            string    `json:"bin"`
	InboundDate    time.Time `json:"inboundDate"`
	Age            int       `json:"age"`
	AgeingBucket   string    `json:"ageingBucket"`
	AvailableQty   int       `json:"availableQty"`
	ReservedQty    int       `json:"reservedQty"`
	InventoryValue int64     `json:"inventoryValue"`
	RiskLevel      string    `json:"riskLevel"`
}
