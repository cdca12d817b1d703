package model

// DashboardStats is the headline counter row of the dashboard.
type DashboardStats struct {
	TotalItems      int `json:"totalItems"`
	ExpiringSoon    int `json:"expiringSoon"`
	LowStock        int `json:"lowStock"`
	TotalCategories int `json:"totalCategories"`
}

// CategoryStats partitions one category's equipment by alert state.
// WarningCount counts low-stock items and CriticalCount counts items
// expiring within a week. An item can be in both states at once;
// NormalCount counts items in neither, so it never goes negative even
// when the other two overlap.
type CategoryStats struct {
	Category      Category `json:"category"`
	TotalItems    int      `json:"totalItems"`
	NormalCount   int      `json:"normalCount"`
	WarningCount  int      `json:"warningCount"`
	CriticalCount int      `json:"criticalCount"`
}
