package store

import (
	"sync"
	"time"

	"github.com/emsinv/ems-inventory/internal/model"
)

// Store keeps all entities in process memory. It is constructed
// explicitly and injected into the handlers so tests can run isolated
// instances; there is no package-level singleton.
//
// A single store-wide RWMutex guards every operation: mutations hold the
// write lock end to end, which makes RecordUsageEvent's two steps
// (persist event, adjust stock) atomic with respect to readers, and each
// query method holds the read lock for its whole scan so aggregations
// see one consistent snapshot.
type Store struct {
	mu sync.RWMutex

	users      map[int]model.User
	categories map[int]model.Category
	equipment  map[int]model.Equipment
	usage      map[int]model.UsageEvent
	alerts     map[int]model.Alert
	tokens     map[string]model.RefreshToken

	// Per-entity id counters. Ids start at 1 and are never reused.
	nextUserID      int
	nextCategoryID  int
	nextEquipmentID int
	nextUsageID     int
	nextAlertID     int
	nextTokenID     int
}

// New returns an empty store. Call Seed to load the fixture data set.
func New() *Store {
	return &Store{
		users:           make(map[int]model.User),
		categories:      make(map[int]model.Category),
		equipment:       make(map[int]model.Equipment),
		usage:           make(map[int]model.UsageEvent),
		alerts:          make(map[int]model.Alert),
		tokens:          make(map[string]model.RefreshToken),
		nextUserID:      1,
		nextCategoryID:  1,
		nextEquipmentID: 1,
		nextUsageID:     1,
		nextAlertID:     1,
		nextTokenID:     1,
	}
}

// now is the single time source for server-assigned timestamps.
func now() time.Time {
	return time.Now().UTC()
}
