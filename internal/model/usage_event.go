package model

import "time"

// Usage event types. A "usage" event decreases the referenced equipment's
// stock, "restock" increases it, and "adjustment" is recorded in the audit
// trail without moving stock.
const (
	UsageTypeUsage      = "usage"
	UsageTypeRestock    = "restock"
	UsageTypeAdjustment = "adjustment"
)

// ValidUsageType reports whether t is one of the three event kinds.
func ValidUsageType(t string) bool {
	return t == UsageTypeUsage || t == UsageTypeRestock || t == UsageTypeAdjustment
}

// UsageEvent is an audit record of stock movement. Recording one is the
// only sanctioned way operational stock changes happen; direct field
// corrections stay distinguishable because they leave no event behind.
//
// Fields:
//  ID          – primary key identifier.
//  EquipmentID – references the affected equipment (required).
//  UserID      – references the acting user (required).
//  Quantity    – positive magnitude of the movement; for a clamped usage
//                the original quantity is kept, not the applied delta.
//  Type        – usage, restock or adjustment.
//  Reason      – optional reason (救急搬送, 定期補充, ...).
//  Notes       – optional free text.
//  Timestamp   – assigned by the server at creation, never client supplied.
type UsageEvent struct {
	ID          int       `json:"id"`
	EquipmentID int       `json:"equipmentId"`
	UserID      int       `json:"userId"`
	Quantity    int       `json:"quantity"`
	Type        string    `json:"type"`
	Reason      *string   `json:"reason"`
	Notes       *string   `json:"notes"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewUsageEvent carries the caller supplied fields for event creation.
// The timestamp is always assigned server side.
type NewUsageEvent struct {
	EquipmentID int     `json:"equipmentId"`
	UserID      int     `json:"userId"`
	Quantity    int     `json:"quantity"`
	Type        string  `json:"type"`
	Reason      *string `json:"reason"`
	Notes       *string `json:"notes"`
}

// UsageEventWithDetails joins an event to its equipment and acting user
// for history views.
type UsageEventWithDetails struct {
	UsageEvent
	Equipment Equipment `json:"equipment"`
	User      User      `json:"user"`
}
