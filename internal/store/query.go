package store

import (
	"fmt"
	"sort"
	"time"

	"github.com/emsinv/ems-inventory/internal/model"
)

// The read side computes every view by scanning the current snapshot
// under the read lock; there are no incremental indices. Correctness
// over performance, given the expected scale of a single station's
// inventory.

// ListEquipmentWithCategory joins every equipment item to its category,
// ordered by id. A missing category is a data integrity fault: category
// references are verified on every write, so this can only mean a bug.
func (s *Store) ListEquipmentWithCategory() ([]model.EquipmentWithCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.joinEquipmentLocked(s.listEquipmentLocked())
}

// GetEquipmentWithCategory returns a single joined item.
func (s *Store) GetEquipmentWithCategory(id int) (model.EquipmentWithCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.equipment[id]
	if !ok {
		return model.EquipmentWithCategory{}, ErrEquipmentNotFound
	}
	joined, err := s.joinEquipmentLocked([]model.Equipment{e})
	if err != nil {
		return model.EquipmentWithCategory{}, err
	}
	return joined[0], nil
}

func (s *Store) joinEquipmentLocked(items []model.Equipment) ([]model.EquipmentWithCategory, error) {
	out := make([]model.EquipmentWithCategory, 0, len(items))
	for _, e := range items {
		c, ok := s.categories[e.CategoryID]
		if !ok {
			return nil, fmt.Errorf("%w: equipment %d references missing category %d", ErrDataIntegrity, e.ID, e.CategoryID)
		}
		out = append(out, model.EquipmentWithCategory{Equipment: e, Category: c})
	}
	return out, nil
}

// ListUsageWithDetails joins every usage event to its equipment and user,
// most recent first. Ties on the timestamp fall back to id descending so
// the order is a stable total order across repeated calls.
func (s *Store) ListUsageWithDetails() ([]model.UsageEventWithDetails, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.joinUsageLocked(nil)
}

// ListUsageByEquipment is ListUsageWithDetails restricted to one item's
// events before sorting.
func (s *Store) ListUsageByEquipment(equipmentID int) ([]model.UsageEventWithDetails, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.joinUsageLocked(&equipmentID)
}

// RecentUsage returns the latest events, capped at limit.
func (s *Store) RecentUsage(limit int) ([]model.UsageEventWithDetails, error) {
	list, err := s.ListUsageWithDetails()
	if err != nil {
		return nil, err
	}
	if limit >= 0 && len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

func (s *Store) joinUsageLocked(equipmentID *int) ([]model.UsageEventWithDetails, error) {
	out := make([]model.UsageEventWithDetails, 0, len(s.usage))
	for _, ev := range s.usage {
		if equipmentID != nil && ev.EquipmentID != *equipmentID {
			continue
		}
		e, ok := s.equipment[ev.EquipmentID]
		if !ok {
			return nil, fmt.Errorf("%w: usage event %d references missing equipment %d", ErrDataIntegrity, ev.ID, ev.EquipmentID)
		}
		u, ok := s.users[ev.UserID]
		if !ok {
			return nil, fmt.Errorf("%w: usage event %d references missing user %d", ErrDataIntegrity, ev.ID, ev.UserID)
		}
		out = append(out, model.UsageEventWithDetails{UsageEvent: ev, Equipment: e, User: u})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].Timestamp.After(out[j].Timestamp)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// ExpiringItems returns equipment whose expiration falls within the next
// withinDays days. There is no lower bound, so already expired items are
// included; items without an expiration never match.
func (s *Store) ExpiringItems(withinDays int) ([]model.EquipmentWithCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.joinEquipmentLocked(s.expiringLocked(withinDays, now()))
}

func (s *Store) expiringLocked(withinDays int, ts time.Time) []model.Equipment {
	threshold := ts.Add(time.Duration(withinDays) * 24 * time.Hour)
	var out []model.Equipment
	for _, e := range s.listEquipmentLocked() {
		if e.ExpirationDate != nil && !e.ExpirationDate.After(threshold) {
			out = append(out, e)
		}
	}
	return out
}

// LowStockItems returns equipment at or below its reorder threshold.
func (s *Store) LowStockItems() ([]model.EquipmentWithCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.joinEquipmentLocked(s.lowStockLocked())
}

func (s *Store) lowStockLocked() []model.Equipment {
	var out []model.Equipment
	for _, e := range s.listEquipmentLocked() {
		if e.IsLowStock() {
			out = append(out, e)
		}
	}
	return out
}

// CriticalItems returns the union of the seven-day expiring set and the
// low-stock set, de-duplicated by id and ordered by id.
func (s *Store) CriticalItems() ([]model.EquipmentWithCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	critical := make(map[int]bool)
	for _, e := range s.expiringLocked(defaultExpiringDays, now()) {
		critical[e.ID] = true
	}
	for _, e := range s.lowStockLocked() {
		critical[e.ID] = true
	}
	var items []model.Equipment
	for _, e := range s.listEquipmentLocked() {
		if critical[e.ID] {
			items = append(items, e)
		}
	}
	return s.joinEquipmentLocked(items)
}

// defaultExpiringDays is the dashboard's expiring-soon window.
const defaultExpiringDays = 7

// DashboardStats computes the headline counters in one snapshot.
func (s *Store) DashboardStats() model.DashboardStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return model.DashboardStats{
		TotalItems:      len(s.equipment),
		ExpiringSoon:    len(s.expiringLocked(defaultExpiringDays, now())),
		LowStock:        len(s.lowStockLocked()),
		TotalCategories: len(s.categories),
	}
}

// CategoryStats partitions each category's equipment into low-stock
// (warning), expiring within seven days (critical) and neither (normal).
// An item can appear in both warning and critical; normal counts items
// in neither state, so it never goes negative.
func (s *Store) CategoryStats() []model.CategoryStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ts := now()
	items := s.listEquipmentLocked()
	out := make([]model.CategoryStats, 0, len(s.categories))
	for _, c := range s.listCategoriesLocked() {
		st := model.CategoryStats{Category: c}
		for _, e := range items {
			if e.CategoryID != c.ID {
				continue
			}
			st.TotalItems++
			low := e.IsLowStock()
			expiring := e.ExpirationDate != nil && model.DaysUntilExpiration(*e.ExpirationDate, ts) <= defaultExpiringDays
			if low {
				st.WarningCount++
			}
			if expiring {
				st.CriticalCount++
			}
			if !low && !expiring {
				st.NormalCount++
			}
		}
		out = append(out, st)
	}
	return out
}
