package handler

import (
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/emsinv/ems-inventory/internal/store"
)

// DashboardHandler serves the aggregate views backing the dashboard.
type DashboardHandler struct {
	Store *store.Store
}

func NewDashboardHandler(s *store.Store) *DashboardHandler {
	if s == nil {
		panic("nil store passed to NewDashboardHandler")
	}
	return &DashboardHandler{Store: s}
}

// Stats handles GET /api/dashboard/stats.
func (h *DashboardHandler) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.DashboardStats())
}

// CategoryStats handles GET /api/dashboard/category-stats.
func (h *DashboardHandler) CategoryStats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.CategoryStats())
}

// RecentUsage handles GET /api/dashboard/recent-usage?limit=N (default 5).
func (h *DashboardHandler) RecentUsage(c echo.Context) error {
	limit := 5
	if raw := c.QueryParam("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	list, err := h.Store.RecentUsage(limit)
	if err != nil {
		log.Printf("recent usage: %v", err)
		return errJSON(c, http.StatusInternalServerError, "最近の使用履歴の取得に失敗しました")
	}
	return c.JSON(http.StatusOK, list)
}

// CriticalItems handles GET /api/dashboard/critical-items.
func (h *DashboardHandler) CriticalItems(c echo.Context) error {
	items, err := h.Store.CriticalItems()
	if err != nil {
		log.Printf("critical items: %v", err)
		return errJSON(c, http.StatusInternalServerError, "注意が必要な資器材の取得に失敗しました")
	}
	return c.JSON(http.StatusOK, items)
}
