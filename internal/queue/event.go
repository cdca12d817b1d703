// Package queue defines the message payloads exchanged over the broker
// and the background consumer that records them.
package queue

// StockMovementName is the queue every stock movement is published to.
const StockMovementName = "stock.movement"

// StockMovementEvent is published after a usage event is recorded. It
// carries enough context for downstream consumers (notification bots,
// analytics) to act without querying the API: the movement itself, the
// resulting stock level and whether the item is now below its reorder
// threshold.
type StockMovementEvent struct {
	EventID       int    `json:"event_id"`
	EquipmentID   int    `json:"equipment_id"`
	EquipmentName string `json:"equipment_name"`
	UserID        int    `json:"user_id"`
	Type          string `json:"type"`
	Quantity      int    `json:"quantity"`
	Unit          string `json:"unit"`
	ResultStock   int    `json:"result_stock"`
	MinimumStock  int    `json:"minimum_stock"`
	LowStock      bool   `json:"low_stock"`
	RecordedAt    string `json:"recorded_at"`
}
