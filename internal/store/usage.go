package store

import (
	"fmt"

	"github.com/emsinv/ems-inventory/internal/model"
)

// RecordUsageEvent persists an event and, depending on its type, moves
// the referenced equipment's stock: usage decrements, restock increments,
// adjustment records without moving. Both steps happen under one write
// lock so no reader can observe the event without the stock change (or
// the reverse). The event keeps the original quantity even when a usage
// larger than the remaining stock clamps the level at zero.
//
// Both references are verified up front so that read-side joins can
// treat an unresolvable reference as a bug rather than bad input.
func (s *Store) RecordUsageEvent(in model.NewUsageEvent) (model.UsageEvent, error) {
	if in.Quantity <= 0 {
		return model.UsageEvent{}, fmt.Errorf("quantity must be positive, got %d", in.Quantity)
	}
	if !model.ValidUsageType(in.Type) {
		return model.UsageEvent{}, fmt.Errorf("unknown usage type %q", in.Type)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.equipment[in.EquipmentID]; !ok {
		return model.UsageEvent{}, ErrEquipmentNotFound
	}
	if _, ok := s.users[in.UserID]; !ok {
		return model.UsageEvent{}, ErrUserNotFound
	}

	ev := model.UsageEvent{
		ID:          s.nextUsageID,
		EquipmentID: in.EquipmentID,
		UserID:      in.UserID,
		Quantity:    in.Quantity,
		Type:        in.Type,
		Reason:      in.Reason,
		Notes:       in.Notes,
		Timestamp:   now(),
	}
	s.nextUsageID++
	s.usage[ev.ID] = ev

	switch ev.Type {
	case model.UsageTypeUsage:
		if _, err := s.adjustStockLocked(ev.EquipmentID, -ev.Quantity); err != nil {
			return model.UsageEvent{}, err
		}
	case model.UsageTypeRestock:
		if _, err := s.adjustStockLocked(ev.EquipmentID, ev.Quantity); err != nil {
			return model.UsageEvent{}, err
		}
	}
	return ev, nil
}

// GetUsageEvent looks a usage event up by id.
func (s *Store) GetUsageEvent(id int) (model.UsageEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ev, ok := s.usage[id]
	if !ok {
		return model.UsageEvent{}, ErrUsageEventNotFound
	}
	return ev, nil
}
