package model

import "time"

type ConnectorStatus string

const (
	ConnectorActive ConnectorStatus = "active"
	ConnectorBroken ConnectorStatus = "broken"
)

// ApiConnector is the health record of an external order source (Shopify,
// Amazon, ...). Seeded at boot, read-only through the API.
type ApiConnector struct {
	ID       int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string          `gorm:"type:varchar(100);not null" json:"name"`
	Status   ConnectorStatus `gorm:"type:varchar(20);not null" json:"status"`
	LastSync *time.Time      `json:"lastSync"`
}
