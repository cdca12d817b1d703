package store

import (
	"fmt"
	"sort"

	"github.com/emsinv/ems-inventory/internal/model"
)

// CreateAlert adds an alert definition for an existing equipment item.
func (s *Store) CreateAlert(in model.NewAlert) (model.Alert, error) {
	if in.Type != model.AlertTypeExpiration && in.Type != model.AlertTypeLowStock {
		return model.Alert{}, fmt.Errorf("unknown alert type %q", in.Type)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.equipment[in.EquipmentID]; !ok {
		return model.Alert{}, ErrEquipmentNotFound
	}
	a := model.Alert{
		ID:          s.nextAlertID,
		EquipmentID: in.EquipmentID,
		Type:        in.Type,
		IsActive:    true,
		Threshold:   in.Threshold,
		CreatedAt:   now(),
	}
	if in.IsActive != nil {
		a.IsActive = *in.IsActive
	}
	s.nextAlertID++
	s.alerts[a.ID] = a
	return a, nil
}

// ListAlerts returns all alert definitions ordered by id.
func (s *Store) ListAlerts() []model.Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Alert, 0, len(s.alerts))
	for _, a := range s.alerts {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
