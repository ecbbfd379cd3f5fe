package model

// Rack is a physical storage location with finite unit capacity.
// CurrentLoad is mutated by the allocation engine only; it may exceed
// Capacity (over-capacity is flagged, not rejected).
type Rack struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string `gorm:"type:varchar(100);not null" json:"name" validate:"required"`
	LocationCode string `gorm:"type:varchar(50);not null" json:"locationCode" validate:"required"`
	Warehouse    string `gorm:"type:varchar(100);not null;default:'Main'" json:"warehouse"`
	Capacity     int    `gorm:"not null" json:"capacity" validate:"required,gt=0"`
	CurrentLoad  int    `gorm:"not null;default:0" json:"currentLoad"`
}

// OverCapacity reports whether the rack currently holds more than it should.
func (r *Rack) OverCapacity() bool {
	return r.CurrentLoad > r.Capacity
}
