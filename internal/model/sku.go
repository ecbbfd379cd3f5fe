package model

type SkuStatus string

const (
	SkuActive   SkuStatus = "active"
	SkuInactive SkuStatus = "inactive"
)

// Sku is a distinct trackable product type. Quantity is the on-hand count;
// it is not decremented by order fulfillment.
type Sku struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Code       string    `gorm:"type:varchar(50);not null;index" json:"code" validate:"required"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Category   string    `gorm:"type:varchar(100);not null" json:"category" validate:"required"`
	Quantity   int       `gorm:"not null;default:0" json:"quantity" validate:"gte=0"`
	Dimensions string    `gorm:"type:varchar(100)" json:"dimensions"`
	Weight     string    `gorm:"type:varchar(50)" json:"weight"`
	Status     SkuStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status" validate:"omitempty,oneof=active inactive"`
	Location   string    `gorm:"type:varchar(100)" json:"location"`
}
