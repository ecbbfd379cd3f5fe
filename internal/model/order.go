package model

import "time"

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderInProcess  OrderStatus = "in-process"
	OrderBreached   OrderStatus = "breached"
	OrderCompleted  OrderStatus = "completed"
	OrderDispatched OrderStatus = "dispatched"
)

type OrderType string

const (
	OrderManual     OrderType = "Manual"
	OrderIntegrated OrderType = "Integrated"
)

// orderTransitions is the closed transition table for order statuses.
// pending → in-process → breached|completed → dispatched; a breached order
// can still be completed.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:    {OrderInProcess},
	OrderInProcess:  {OrderBreached, OrderCompleted},
	OrderBreached:   {OrderCompleted},
	OrderCompleted:  {OrderDispatched},
	OrderDispatched: {},
}

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

// CanTransitionTo reports whether next is a legal transition from s.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, t := range orderTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// Order tracks a customer order through the pick → pack → manifest →
// dispatch pipeline. The four milestone timestamps drive the order-detail
// timeline.
type Order struct {
	ID            int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID       string      `gorm:"type:varchar(50);not null;uniqueIndex" json:"orderId" validate:"required"`
	Customer      string      `gorm:"type:varchar(255);not null" json:"customer" validate:"required"`
	Type          OrderType   `gorm:"type:varchar(20);not null" json:"type" validate:"required,oneof=Manual Integrated"`
	Status        OrderStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status" validate:"omitempty,oneof=pending in-process breached completed dispatched"`
	TotalQuantity int         `gorm:"not null" json:"totalQuantity" validate:"gte=0"`
	CreatedAt     time.Time   `json:"createdAt"`
	PickedAt      *time.Time  `json:"pickedAt"`
	PackedAt      *time.Time  `json:"packedAt"`
	ManifestedAt  *time.Time  `json:"manifestedAt"`
	DispatchedAt  *time.Time  `json:"dispatchedAt"`
}

// OrderItem is one SKU line of an order. Created atomically with its order,
// never validated against SKU stock.
type OrderItem struct {
	ID       int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID  int64 `gorm:"not null;index" json:"orderId"`
	SkuID    int64 `gorm:"not null" json:"skuId" validate:"required,gt=0"`
	Quantity int   `gorm:"not null" json:"quantity" validate:"required,gt=0"`
}
