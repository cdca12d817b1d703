package store

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/emsinv/ems-inventory/internal/model"
)

// parseExpiration normalizes an optional ISO-8601 expiration string into
// a timestamp. Date-only values (2026-02-15) are accepted alongside full
// RFC 3339 timestamps.
func parseExpiration(raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	v := strings.TrimSpace(*raw)
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		t = t.UTC()
		return &t, nil
	}
	if t, err := time.Parse("2006-01-02", v); err == nil {
		t = t.UTC()
		return &t, nil
	}
	return nil, fmt.Errorf("invalid expiration date %q", v)
}

// CreateEquipment assigns a new id, applies defaults (stock 0, minimum 0,
// unit 個, active true), normalizes the expiration string and stamps both
// timestamps. The referenced category must exist.
func (s *Store) CreateEquipment(in model.NewEquipment) (model.Equipment, error) {
	exp, err := parseExpiration(in.ExpirationDate)
	if err != nil {
		return model.Equipment{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[in.CategoryID]; !ok {
		return model.Equipment{}, ErrCategoryNotFound
	}

	ts := now()
	e := model.Equipment{
		ID:             s.nextEquipmentID,
		Name:           strings.TrimSpace(in.Name),
		CategoryID:     in.CategoryID,
		Unit:           model.DefaultUnit,
		ExpirationDate: exp,
		BatchNumber:    in.BatchNumber,
		Notes:          in.Notes,
		IsActive:       true,
		CreatedAt:      ts,
		UpdatedAt:      ts,
	}
	if in.CurrentStock != nil {
		e.CurrentStock = *in.CurrentStock
	}
	if in.MinimumStock != nil {
		e.MinimumStock = *in.MinimumStock
	}
	if in.Unit != nil && strings.TrimSpace(*in.Unit) != "" {
		e.Unit = strings.TrimSpace(*in.Unit)
	}
	if in.IsActive != nil {
		e.IsActive = *in.IsActive
	}
	s.nextEquipmentID++
	s.equipment[e.ID] = e
	return e, nil
}

// UpdateEquipment merges the patch over the existing record field by
// field and re-stamps UpdatedAt. Stock corrections are permitted through
// this path but operational movement belongs to RecordUsageEvent.
func (s *Store) UpdateEquipment(id int, patch model.EquipmentPatch) (model.Equipment, error) {
	exp, err := parseExpiration(patch.ExpirationDate)
	if err != nil {
		return model.Equipment{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.equipment[id]
	if !ok {
		return model.Equipment{}, ErrEquipmentNotFound
	}
	if patch.CategoryID != nil {
		if _, ok := s.categories[*patch.CategoryID]; !ok {
			return model.Equipment{}, ErrCategoryNotFound
		}
		e.CategoryID = *patch.CategoryID
	}
	if patch.Name != nil {
		e.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.CurrentStock != nil {
		e.CurrentStock = *patch.CurrentStock
		if e.CurrentStock < 0 {
			e.CurrentStock = 0
		}
	}
	if patch.MinimumStock != nil {
		e.MinimumStock = *patch.MinimumStock
	}
	if patch.Unit != nil && strings.TrimSpace(*patch.Unit) != "" {
		e.Unit = strings.TrimSpace(*patch.Unit)
	}
	if exp != nil {
		e.ExpirationDate = exp
	}
	if patch.BatchNumber != nil {
		e.BatchNumber = patch.BatchNumber
	}
	if patch.Notes != nil {
		e.Notes = patch.Notes
	}
	if patch.IsActive != nil {
		e.IsActive = *patch.IsActive
	}
	e.UpdatedAt = now()
	s.equipment[id] = e
	return e, nil
}

// AdjustStock applies a signed delta to an item's stock, clamped at
// zero, and re-stamps UpdatedAt. Every stock change in the system passes
// through here.
func (s *Store) AdjustStock(id, delta int) (model.Equipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.adjustStockLocked(id, delta)
}

func (s *Store) adjustStockLocked(id, delta int) (model.Equipment, error) {
	e, ok := s.equipment[id]
	if !ok {
		return model.Equipment{}, ErrEquipmentNotFound
	}
	e.CurrentStock += delta
	if e.CurrentStock < 0 {
		e.CurrentStock = 0
	}
	e.UpdatedAt = now()
	s.equipment[id] = e
	return e, nil
}

// GetEquipmentRecord looks an equipment record up by id without joining
// its category. Most read paths want GetEquipmentWithCategory instead.
func (s *Store) GetEquipmentRecord(id int) (model.Equipment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.equipment[id]
	if !ok {
		return model.Equipment{}, ErrEquipmentNotFound
	}
	return e, nil
}

func (s *Store) listEquipmentLocked() []model.Equipment {
	out := make([]model.Equipment, 0, len(s.equipment))
	for _, e := range s.equipment {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
