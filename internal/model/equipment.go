package model

import "time"

// DefaultUnit is the stock unit applied when none is supplied (個 = piece).
const DefaultUnit = "個"

// Equipment is a tracked supply item. CurrentStock is never negative:
// every stock mutation goes through the store's adjust choke point which
// clamps at zero.
//
// Fields:
//  ID             – primary key identifier.
//  Name           – item name.
//  CategoryID     – references an existing Category (required).
//  CurrentStock   – on-hand quantity, always >= 0.
//  MinimumStock   – reorder threshold; stock at or below it is low-stock.
//  Unit           – stock unit label (個, 箱, セット, ...).
//  ExpirationDate – optional expiration timestamp.
//  BatchNumber    – optional lot number.
//  Notes          – optional free text.
//  IsActive       – soft active flag; items are never hard deleted.
//  CreatedAt      – creation timestamp.
//  UpdatedAt      – last modification timestamp.
type Equipment struct {
	ID             int        `json:"id"`
	Name           string     `json:"name"`
	CategoryID     int        `json:"categoryId"`
	CurrentStock   int        `json:"currentStock"`
	MinimumStock   int        `json:"minimumStock"`
	Unit           string     `json:"unit"`
	ExpirationDate *time.Time `json:"expirationDate"`
	BatchNumber    *string    `json:"batchNumber"`
	Notes          *string    `json:"notes"`
	IsActive       bool       `json:"isActive"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// IsLowStock reports whether the item sits at or below its reorder
// threshold. The boundary case (current == minimum) counts as low.
func (e Equipment) IsLowStock() bool {
	return e.CurrentStock <= e.MinimumStock
}

// NewEquipment carries the caller supplied fields for equipment creation.
// Optional fields are pointers so absence is distinguishable from zero
// values; the store applies defaults (stock 0, unit 個, active true).
// ExpirationDate is an ISO-8601 string normalized into a timestamp by the
// store.
type NewEquipment struct {
	Name           string  `json:"name"`
	CategoryID     int     `json:"categoryId"`
	CurrentStock   *int    `json:"currentStock"`
	MinimumStock   *int    `json:"minimumStock"`
	Unit           *string `json:"unit"`
	ExpirationDate *string `json:"expirationDate"`
	BatchNumber    *string `json:"batchNumber"`
	Notes          *string `json:"notes"`
	IsActive       *bool   `json:"isActive"`
}

// EquipmentPatch is a partial update applied field-by-field over an
// existing record. Nil fields are left untouched. A nil ExpirationDate
// keeps the stored expiration, mirroring create semantics.
type EquipmentPatch struct {
	Name           *string `json:"name"`
	CategoryID     *int    `json:"categoryId"`
	CurrentStock   *int    `json:"currentStock"`
	MinimumStock   *int    `json:"minimumStock"`
	Unit           *string `json:"unit"`
	ExpirationDate *string `json:"expirationDate"`
	BatchNumber    *string `json:"batchNumber"`
	Notes          *string `json:"notes"`
	IsActive       *bool   `json:"isActive"`
}

// EquipmentWithCategory joins an equipment record to its category for
// list and detail views.
type EquipmentWithCategory struct {
	Equipment
	Category Category `json:"category"`
}
