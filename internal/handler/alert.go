package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/emsinv/ems-inventory/internal/model"
	"github.com/emsinv/ems-inventory/internal/store"
)

// AlertHandler serves the alert list endpoints and the per-item alert
// definitions.
type AlertHandler struct {
	Store *store.Store
}

func NewAlertHandler(s *store.Store) *AlertHandler {
	if s == nil {
		panic("nil store passed to NewAlertHandler")
	}
	return &AlertHandler{Store: s}
}

// Expiring handles GET /api/alerts/expiring?days=N (default 7). Already
// expired items are always part of the answer.
func (h *AlertHandler) Expiring(c echo.Context) error {
	days := 7
	if raw := c.QueryParam("days"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			days = n
		}
	}
	items, err := h.Store.ExpiringItems(days)
	if err != nil {
		log.Printf("expiring items: %v", err)
		return errJSON(c, http.StatusInternalServerError, "期限切れ間近資器材の取得に失敗しました")
	}
	return c.JSON(http.StatusOK, items)
}

// LowStock handles GET /api/alerts/low-stock.
func (h *AlertHandler) LowStock(c echo.Context) error {
	items, err := h.Store.LowStockItems()
	if err != nil {
		log.Printf("low stock items: %v", err)
		return errJSON(c, http.StatusInternalServerError, "在庫不足資器材の取得に失敗しました")
	}
	return c.JSON(http.StatusOK, items)
}

// List handles GET /api/alert-settings, returning the alert definitions.
func (h *AlertHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.ListAlerts())
}

// Create handles POST /api/alert-settings (admin only).
func (h *AlertHandler) Create(c echo.Context) error {
	var in model.NewAlert
	if err := c.Bind(&in); err != nil {
		return errJSON(c, http.StatusBadRequest, "リクエストボディが不正です")
	}
	var details []ValidationDetail
	if in.EquipmentID < 1 {
		details = append(details, ValidationDetail{Field: "equipmentId", Message: "資器材IDは1以上で指定してください"})
	}
	if in.Type != model.AlertTypeExpiration && in.Type != model.AlertTypeLowStock {
		details = append(details, ValidationDetail{Field: "type", Message: "種別はexpirationまたはlow_stockです"})
	}
	if len(details) > 0 {
		return validationJSON(c, details)
	}
	a, err := h.Store.CreateAlert(in)
	if err != nil {
		if errors.Is(err, store.ErrEquipmentNotFound) {
			return validationJSON(c, []ValidationDetail{{Field: "equipmentId", Message: "存在しない資器材です"}})
		}
		log.Printf("create alert: %v", err)
		return errJSON(c, http.StatusInternalServerError, "アラートの作成に失敗しました")
	}
	return c.JSON(http.StatusCreated, a)
}
