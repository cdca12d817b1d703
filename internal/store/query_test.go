package store

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/emsinv/ems-inventory/internal/model"
)

// expiringIn returns an expiration string the store can parse, n days
// from now with an hour of slack so day arithmetic does not straddle a
// boundary mid-test.
func expiringIn(n int) *string {
	s := time.Now().UTC().Add(time.Duration(n)*24*time.Hour - time.Hour).Format(time.RFC3339)
	return &s
}

func TestLowStockItemsBoundary(t *testing.T) {
	s := newTestStore(t)

	below, _ := s.CreateEquipment(model.NewEquipment{Name: "Below", CategoryID: 1, CurrentStock: intp(5), MinimumStock: intp(20)})
	at, _ := s.CreateEquipment(model.NewEquipment{Name: "At", CategoryID: 1, CurrentStock: intp(10), MinimumStock: intp(10)})
	s.CreateEquipment(model.NewEquipment{Name: "Above", CategoryID: 1, CurrentStock: intp(11), MinimumStock: intp(10)})

	items, err := s.LowStockItems()
	if err != nil {
		t.Fatalf("low stock: %v", err)
	}
	ids := make([]int, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	if !reflect.DeepEqual(ids, []int{below.ID, at.ID}) {
		t.Errorf("expected exactly below+at threshold, got %v", ids)
	}
}

func TestExpiringItemsWindow(t *testing.T) {
	s := newTestStore(t)

	expired, _ := s.CreateEquipment(model.NewEquipment{Name: "Expired", CategoryID: 1, ExpirationDate: expiringIn(-2)})
	soon, _ := s.CreateEquipment(model.NewEquipment{Name: "Soon", CategoryID: 1, ExpirationDate: expiringIn(2)})
	s.CreateEquipment(model.NewEquipment{Name: "Later", CategoryID: 1, ExpirationDate: expiringIn(30)})
	s.CreateEquipment(model.NewEquipment{Name: "NoExpiry", CategoryID: 1})

	items, err := s.ExpiringItems(7)
	if err != nil {
		t.Fatalf("expiring: %v", err)
	}
	ids := make([]int, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	if !reflect.DeepEqual(ids, []int{expired.ID, soon.ID}) {
		t.Errorf("expected expired+soon, got %v", ids)
	}

	// A one-day window excludes the item expiring in two days.
	items, _ = s.ExpiringItems(1)
	if len(items) != 1 || items[0].ID != expired.ID {
		t.Errorf("1-day window should only contain the expired item, got %+v", items)
	}
}

func TestCriticalItemsDeduplicatesUnion(t *testing.T) {
	s := newTestStore(t)

	// Both low-stock and expiring: must appear exactly once.
	both, _ := s.CreateEquipment(model.NewEquipment{Name: "Both", CategoryID: 1, CurrentStock: intp(1), MinimumStock: intp(5), ExpirationDate: expiringIn(2)})
	low, _ := s.CreateEquipment(model.NewEquipment{Name: "Low", CategoryID: 1, CurrentStock: intp(0), MinimumStock: intp(5)})
	exp, _ := s.CreateEquipment(model.NewEquipment{Name: "Exp", CategoryID: 1, CurrentStock: intp(50), MinimumStock: intp(5), ExpirationDate: expiringIn(3)})
	s.CreateEquipment(model.NewEquipment{Name: "Fine", CategoryID: 1, CurrentStock: intp(50), MinimumStock: intp(5)})

	items, err := s.CriticalItems()
	if err != nil {
		t.Fatalf("critical: %v", err)
	}
	ids := make([]int, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	if !reflect.DeepEqual(ids, []int{both.ID, low.ID, exp.ID}) {
		t.Errorf("expected deduplicated union in id order, got %v", ids)
	}
}

func TestDashboardStats(t *testing.T) {
	s := newTestStore(t)
	s.CreateCategory(model.NewCategory{Name: "Trauma", Code: "trauma"})

	s.CreateEquipment(model.NewEquipment{Name: "Low", CategoryID: 1, CurrentStock: intp(1), MinimumStock: intp(5)})
	s.CreateEquipment(model.NewEquipment{Name: "Expiring", CategoryID: 2, CurrentStock: intp(50), ExpirationDate: expiringIn(2)})
	s.CreateEquipment(model.NewEquipment{Name: "Fine", CategoryID: 2, CurrentStock: intp(50), MinimumStock: intp(5)})

	got := s.DashboardStats()
	want := model.DashboardStats{TotalItems: 3, ExpiringSoon: 1, LowStock: 1, TotalCategories: 2}
	if got != want {
		t.Errorf("stats mismatch: got %+v want %+v", got, want)
	}
}

func TestCategoryStatsPartition(t *testing.T) {
	s := newTestStore(t)

	// One low-stock and one normal item in the same category.
	s.CreateEquipment(model.NewEquipment{Name: "Low", CategoryID: 1, CurrentStock: intp(2), MinimumStock: intp(5)})
	s.CreateEquipment(model.NewEquipment{Name: "Normal", CategoryID: 1, CurrentStock: intp(50), MinimumStock: intp(5)})

	stats := s.CategoryStats()
	if len(stats) != 1 {
		t.Fatalf("expected 1 category, got %d", len(stats))
	}
	st := stats[0]
	if st.TotalItems != 2 || st.WarningCount != 1 || st.NormalCount != 1 || st.CriticalCount != 0 {
		t.Errorf("unexpected partition: %+v", st)
	}
}

func TestCategoryStatsOverlapNeverNegative(t *testing.T) {
	s := newTestStore(t)

	// Simultaneously low-stock and expiring: counted in both warning and
	// critical, but normal stays at zero instead of going negative.
	s.CreateEquipment(model.NewEquipment{Name: "Both", CategoryID: 1, CurrentStock: intp(0), MinimumStock: intp(5), ExpirationDate: expiringIn(2)})

	st := s.CategoryStats()[0]
	if st.TotalItems != 1 || st.WarningCount != 1 || st.CriticalCount != 1 {
		t.Errorf("unexpected counts: %+v", st)
	}
	if st.NormalCount != 0 {
		t.Errorf("normal count must not go negative: %+v", st)
	}
}

func TestUsageHistoryOrderingStable(t *testing.T) {
	s := newTestStore(t)
	e, _ := s.CreateEquipment(model.NewEquipment{Name: "Pads", CategoryID: 1, CurrentStock: intp(100)})

	for i := 0; i < 5; i++ {
		if _, err := s.RecordUsageEvent(model.NewUsageEvent{
			EquipmentID: e.ID, UserID: 1, Quantity: 1, Type: model.UsageTypeUsage,
		}); err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
	}

	first, err := s.ListUsageWithDetails()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for i := 1; i < len(first); i++ {
		prev, cur := first[i-1], first[i]
		if cur.Timestamp.After(prev.Timestamp) {
			t.Fatalf("not sorted by timestamp descending at %d", i)
		}
		if cur.Timestamp.Equal(prev.Timestamp) && cur.ID > prev.ID {
			t.Fatalf("tie not broken by id descending at %d", i)
		}
	}

	// Same data, same order.
	second, _ := s.ListUsageWithDetails()
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated listing of unchanged data must be identical")
	}
}

func TestUsageHistoryFilterByEquipment(t *testing.T) {
	s := newTestStore(t)
	a, _ := s.CreateEquipment(model.NewEquipment{Name: "A", CategoryID: 1, CurrentStock: intp(10)})
	b, _ := s.CreateEquipment(model.NewEquipment{Name: "B", CategoryID: 1, CurrentStock: intp(10)})

	s.RecordUsageEvent(model.NewUsageEvent{EquipmentID: a.ID, UserID: 1, Quantity: 1, Type: model.UsageTypeUsage})
	s.RecordUsageEvent(model.NewUsageEvent{EquipmentID: b.ID, UserID: 1, Quantity: 1, Type: model.UsageTypeUsage})
	s.RecordUsageEvent(model.NewUsageEvent{EquipmentID: a.ID, UserID: 1, Quantity: 2, Type: model.UsageTypeRestock})

	list, err := s.ListUsageByEquipment(a.ID)
	if err != nil {
		t.Fatalf("filtered list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 events for equipment A, got %d", len(list))
	}
	for _, ev := range list {
		if ev.EquipmentID != a.ID {
			t.Errorf("foreign event in filtered list: %+v", ev.UsageEvent)
		}
	}
}

func TestRecentUsageLimit(t *testing.T) {
	s := newTestStore(t)
	e, _ := s.CreateEquipment(model.NewEquipment{Name: "Pads", CategoryID: 1, CurrentStock: intp(100)})
	for i := 0; i < 8; i++ {
		s.RecordUsageEvent(model.NewUsageEvent{EquipmentID: e.ID, UserID: 1, Quantity: 1, Type: model.UsageTypeUsage})
	}

	list, err := s.RecentUsage(5)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(list) != 5 {
		t.Errorf("expected 5 events, got %d", len(list))
	}
}

func TestJoinReportsIntegrityFault(t *testing.T) {
	s := newTestStore(t)
	e, _ := s.CreateEquipment(model.NewEquipment{Name: "Pads", CategoryID: 1})

	// Corrupt the store to simulate the bug the fault is meant to catch.
	s.mu.Lock()
	broken := s.equipment[e.ID]
	broken.CategoryID = 42
	s.equipment[e.ID] = broken
	s.mu.Unlock()

	_, err := s.ListEquipmentWithCategory()
	if !errors.Is(err, ErrDataIntegrity) {
		t.Fatalf("expected ErrDataIntegrity, got %v", err)
	}
}

func TestGetEquipmentWithCategory(t *testing.T) {
	s := newTestStore(t)
	e, _ := s.CreateEquipment(model.NewEquipment{Name: "Pads", CategoryID: 1})

	got, err := s.GetEquipmentWithCategory(e.ID)
	if err != nil {
		t.Fatalf("get joined: %v", err)
	}
	if got.Category.Code != "respiratory" {
		t.Errorf("unexpected joined category: %+v", got.Category)
	}
	if _, err := s.GetEquipmentWithCategory(999); !errors.Is(err, ErrEquipmentNotFound) {
		t.Errorf("expected ErrEquipmentNotFound, got %v", err)
	}
}

// Guard against lock ordering mistakes: aggregations run while mutations
// happen on other goroutines.
func TestConcurrentMutationAndQuery(t *testing.T) {
	s := newTestStore(t)
	e, _ := s.CreateEquipment(model.NewEquipment{Name: "Pads", CategoryID: 1, CurrentStock: intp(1000)})

	done := make(chan error, 2)
	go func() {
		for i := 0; i < 100; i++ {
			if _, err := s.RecordUsageEvent(model.NewUsageEvent{
				EquipmentID: e.ID, UserID: 1, Quantity: 1, Type: model.UsageTypeUsage,
			}); err != nil {
				done <- fmt.Errorf("record %d: %w", i, err)
				return
			}
		}
		done <- nil
	}()
	go func() {
		for i := 0; i < 100; i++ {
			if _, err := s.ListUsageWithDetails(); err != nil {
				done <- fmt.Errorf("list %d: %w", i, err)
				return
			}
			s.DashboardStats()
		}
		done <- nil
	}()
	for i := 0; i < 2; i++ {
		if err := <-done; err != nil {
			t.Fatal(err)
		}
	}

	if got, _ := s.GetEquipmentRecord(e.ID); got.CurrentStock != 900 {
		t.Errorf("expected 900 after 100 usages, got %d", got.CurrentStock)
	}
}
