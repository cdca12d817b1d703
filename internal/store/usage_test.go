package store

import (
	"errors"
	"testing"

	"github.com/emsinv/ems-inventory/internal/model"
)

func TestRecordUsageEventMovesStock(t *testing.T) {
	s := newTestStore(t)
	e, _ := s.CreateEquipment(model.NewEquipment{Name: "IV Set", CategoryID: 1, CurrentStock: intp(30)})

	ev, err := s.RecordUsageEvent(model.NewUsageEvent{
		EquipmentID: e.ID, UserID: 1, Quantity: 3, Type: model.UsageTypeUsage, Reason: strp("救急搬送"),
	})
	if err != nil {
		t.Fatalf("record usage: %v", err)
	}
	if ev.ID != 1 {
		t.Errorf("expected event id 1, got %d", ev.ID)
	}
	if ev.Timestamp.IsZero() {
		t.Error("expected server-assigned timestamp")
	}
	if got, _ := s.GetEquipmentRecord(e.ID); got.CurrentStock != 27 {
		t.Errorf("usage should decrement: expected 27, got %d", got.CurrentStock)
	}

	if _, err := s.RecordUsageEvent(model.NewUsageEvent{
		EquipmentID: e.ID, UserID: 1, Quantity: 10, Type: model.UsageTypeRestock,
	}); err != nil {
		t.Fatalf("record restock: %v", err)
	}
	if got, _ := s.GetEquipmentRecord(e.ID); got.CurrentStock != 37 {
		t.Errorf("restock should increment by exactly 10: got %d", got.CurrentStock)
	}

	if _, err := s.RecordUsageEvent(model.NewUsageEvent{
		EquipmentID: e.ID, UserID: 1, Quantity: 5, Type: model.UsageTypeAdjustment, Notes: strp("棚卸し"),
	}); err != nil {
		t.Fatalf("record adjustment: %v", err)
	}
	if got, _ := s.GetEquipmentRecord(e.ID); got.CurrentStock != 37 {
		t.Errorf("adjustment must not move stock: got %d", got.CurrentStock)
	}
}

func TestRecordUsageEventClampKeepsOriginalQuantity(t *testing.T) {
	s := newTestStore(t)
	e, _ := s.CreateEquipment(model.NewEquipment{Name: "Oxygen Mask", CategoryID: 1, CurrentStock: intp(25), MinimumStock: intp(10)})

	ev, err := s.RecordUsageEvent(model.NewUsageEvent{
		EquipmentID: e.ID, UserID: 1, Quantity: 30, Type: model.UsageTypeUsage,
	})
	if err != nil {
		t.Fatalf("record usage: %v", err)
	}
	if got, _ := s.GetEquipmentRecord(e.ID); got.CurrentStock != 0 {
		t.Errorf("expected stock clamped to 0, got %d", got.CurrentStock)
	}
	// The audit record keeps the requested quantity, not the applied delta.
	if ev.Quantity != 30 {
		t.Errorf("expected recorded quantity 30, got %d", ev.Quantity)
	}
}

func TestRecordUsageEventValidation(t *testing.T) {
	s := newTestStore(t)
	e, _ := s.CreateEquipment(model.NewEquipment{Name: "Pads", CategoryID: 1, CurrentStock: intp(5)})

	if _, err := s.RecordUsageEvent(model.NewUsageEvent{EquipmentID: e.ID, UserID: 1, Quantity: 0, Type: model.UsageTypeUsage}); err == nil {
		t.Error("expected error for zero quantity")
	}
	if _, err := s.RecordUsageEvent(model.NewUsageEvent{EquipmentID: e.ID, UserID: 1, Quantity: -2, Type: model.UsageTypeUsage}); err == nil {
		t.Error("expected error for negative quantity")
	}
	if _, err := s.RecordUsageEvent(model.NewUsageEvent{EquipmentID: e.ID, UserID: 1, Quantity: 1, Type: "transfer"}); err == nil {
		t.Error("expected error for unknown type")
	}
	if _, err := s.RecordUsageEvent(model.NewUsageEvent{EquipmentID: 999, UserID: 1, Quantity: 1, Type: model.UsageTypeUsage}); !errors.Is(err, ErrEquipmentNotFound) {
		t.Errorf("expected ErrEquipmentNotFound, got %v", err)
	}
	if _, err := s.RecordUsageEvent(model.NewUsageEvent{EquipmentID: e.ID, UserID: 999, Quantity: 1, Type: model.UsageTypeUsage}); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}

	// Nothing above may have moved stock or left a stray event behind.
	if got, _ := s.GetEquipmentRecord(e.ID); got.CurrentStock != 5 {
		t.Errorf("stock moved by rejected events: %d", got.CurrentStock)
	}
	if list, _ := s.ListUsageWithDetails(); len(list) != 0 {
		t.Errorf("rejected events were persisted: %d", len(list))
	}
}
