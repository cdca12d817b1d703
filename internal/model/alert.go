package model

import "time"

// Alert definition types.
const (
	AlertTypeExpiration = "expiration"
	AlertTypeLowStock   = "low_stock"
)

// Alert is a per-item alert definition. Threshold holds days until
// expiration for "expiration" alerts or a stock floor for "low_stock"
// alerts; nil falls back to the dashboard defaults.
type Alert struct {
	ID          int       `json:"id"`
	EquipmentID int       `json:"equipmentId"`
	Type        string    `json:"type"`
	IsActive    bool      `json:"isActive"`
	Threshold   *int      `json:"threshold"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewAlert carries the caller supplied fields for alert creation.
type NewAlert struct {
	EquipmentID int    `json:"equipmentId"`
	Type        string `json:"type"`
	IsActive    *bool  `json:"isActive"`
	Threshold   *int   `json:"threshold"`
}
