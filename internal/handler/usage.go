package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/emsinv/ems-inventory/internal/model"
	"github.com/emsinv/ems-inventory/internal/service"
	"github.com/emsinv/ems-inventory/internal/store"
)

// UsageHandler serves the usage history endpoints.
type UsageHandler struct {
	Store     *store.Store
	Publisher service.StockPublisher
}

func NewUsageHandler(s *store.Store, pub service.StockPublisher) *UsageHandler {
	if s == nil {
		panic("nil store passed to NewUsageHandler")
	}
	return &UsageHandler{Store: s, Publisher: pub}
}

// List handles GET /api/usage-history with an optional equipmentId
// filter.
func (h *UsageHandler) List(c echo.Context) error {
	var (
		list []model.UsageEventWithDetails
		err  error
	)
	if raw := c.QueryParam("equipmentId"); raw != "" {
		id, convErr := strconv.Atoi(raw)
		if convErr != nil || id < 1 {
			return errJSON(c, http.StatusBadRequest, "無効な資器材IDです")
		}
		list, err = h.Store.ListUsageByEquipment(id)
	} else {
		list, err = h.Store.ListUsageWithDetails()
	}
	if err != nil {
		log.Printf("usage history list: %v", err)
		return errJSON(c, http.StatusInternalServerError, "使用履歴の取得に失敗しました")
	}
	return c.JSON(http.StatusOK, list)
}

// Create handles POST /api/usage-history: a direct event record with an
// explicit user reference in the body.
func (h *UsageHandler) Create(c echo.Context) error {
	var in model.NewUsageEvent
	if err := c.Bind(&in); err != nil {
		return errJSON(c, http.StatusBadRequest, "リクエストボディが不正です")
	}

	var details []ValidationDetail
	if in.EquipmentID < 1 {
		details = append(details, ValidationDetail{Field: "equipmentId", Message: "資器材IDは1以上で指定してください"})
	}
	if in.UserID < 1 {
		details = append(details, ValidationDetail{Field: "userId", Message: "ユーザーIDは1以上で指定してください"})
	}
	if in.Quantity < 1 {
		details = append(details, ValidationDetail{Field: "quantity", Message: "数量は1以上で指定してください"})
	}
	if !model.ValidUsageType(in.Type) {
		details = append(details, ValidationDetail{Field: "type", Message: "種別はusage・restock・adjustmentのいずれかです"})
	}
	if len(details) > 0 {
		return validationJSON(c, details)
	}

	ev, err := h.Store.RecordUsageEvent(in)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEquipmentNotFound):
			return validationJSON(c, []ValidationDetail{{Field: "equipmentId", Message: "存在しない資器材です"}})
		case errors.Is(err, store.ErrUserNotFound):
			return validationJSON(c, []ValidationDetail{{Field: "userId", Message: "存在しないユーザーです"}})
		default:
			log.Printf("record usage event: %v", err)
			return errJSON(c, http.StatusInternalServerError, "使用履歴の記録に失敗しました")
		}
	}

	if eq, loadErr := h.Store.GetEquipmentRecord(ev.EquipmentID); loadErr == nil {
		service.PublishAsync(h.Publisher, ev, eq)
	}
	return c.JSON(http.StatusCreated, ev)
}
