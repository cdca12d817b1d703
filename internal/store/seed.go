package store

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/emsinv/ems-inventory/internal/model"
)

func strPtr(s string) *string { return &s }

// Seed loads the fixture data set: two users, the four standard
// categories and a handful of equipment items with recent usage history.
// Expiration dates are placed relative to startup so the alert views
// have something to show. Seeded usage events are historical records;
// they are inserted as-is and do not move stock again.
func (s *Store) Seed() error {
	adminHash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	userHash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ts := now()
	days := func(n int) *time.Time {
		t := ts.Add(time.Duration(n) * 24 * time.Hour)
		return &t
	}

	users := []model.User{
		{Username: "admin", PasswordHash: string(adminHash), FullName: "管理者", Role: model.RoleAdmin},
		{Username: "tanaka", PasswordHash: string(userHash), FullName: "田中 太郎", Role: model.RoleUser},
	}
	for _, u := range users {
		u.ID = s.nextUserID
		s.nextUserID++
		s.users[u.ID] = u
	}

	categories := []model.Category{
		{Name: "呼吸器系", Code: "respiratory", Description: strPtr("呼吸に関連する救急資器材"), IconName: "fas fa-lungs"},
		{Name: "循環器系", Code: "circulatory", Description: strPtr("循環器に関連する救急資器材"), IconName: "fas fa-heartbeat"},
		{Name: "外傷処置", Code: "trauma", Description: strPtr("外傷処置に関連する救急資器材"), IconName: "fas fa-band-aid"},
		{Name: "薬品・輸液", Code: "medication", Description: strPtr("薬品・輸液に関連する救急資器材"), IconName: "fas fa-pills"},
	}
	for _, c := range categories {
		c.ID = s.nextCategoryID
		s.nextCategoryID++
		s.categories[c.ID] = c
	}

	equipment := []model.Equipment{
		{Name: "生理食塩水 500ml", CategoryID: 4, CurrentStock: 12, MinimumStock: 20, Unit: "個", ExpirationDate: days(3), BatchNumber: strPtr("LOT123")},
		{Name: "使い捨て手袋 Lサイズ", CategoryID: 3, CurrentStock: 5, MinimumStock: 20, Unit: "箱"},
		{Name: "バッグバルブマスク", CategoryID: 1, CurrentStock: 2, MinimumStock: 5, Unit: "個"},
		{Name: "酸素マスク（成人用）", CategoryID: 1, CurrentStock: 25, MinimumStock: 10, Unit: "個"},
		{Name: "心電図電極パッド", CategoryID: 2, CurrentStock: 150, MinimumStock: 50, Unit: "セット", ExpirationDate: days(300), BatchNumber: strPtr("PAD456")},
		{Name: "輸液セット", CategoryID: 4, CurrentStock: 30, MinimumStock: 15, Unit: "セット", ExpirationDate: days(30), BatchNumber: strPtr("IV789")},
	}
	for _, e := range equipment {
		e.ID = s.nextEquipmentID
		e.IsActive = true
		e.CreatedAt = ts
		e.UpdatedAt = ts
		s.nextEquipmentID++
		s.equipment[e.ID] = e
	}

	usage := []model.UsageEvent{
		{EquipmentID: 4, UserID: 2, Quantity: 2, Type: model.UsageTypeUsage, Reason: strPtr("救急搬送"), Timestamp: ts.Add(-2 * time.Hour)},
		{EquipmentID: 5, UserID: 1, Quantity: 50, Type: model.UsageTypeRestock, Reason: strPtr("定期補充"), Timestamp: ts.Add(-3 * time.Hour)},
		{EquipmentID: 6, UserID: 2, Quantity: 3, Type: model.UsageTypeUsage, Reason: strPtr("救急搬送"), Timestamp: ts.Add(-5 * time.Hour)},
	}
	for _, ev := range usage {
		ev.ID = s.nextUsageID
		s.nextUsageID++
		s.usage[ev.ID] = ev
	}
	return nil
}
