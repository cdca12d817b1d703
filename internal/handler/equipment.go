package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/emsinv/ems-inventory/internal/model"
	"github.com/emsinv/ems-inventory/internal/service"
	"github.com/emsinv/ems-inventory/internal/store"
)

// EquipmentHandler serves the equipment CRUD endpoints plus the stock
// mutation endpoint. Stock movements are attributed to the caller
// identity supplied by the JWT middleware and published to the message
// queue for downstream consumers.
type EquipmentHandler struct {
	Store     *store.Store
	Publisher service.StockPublisher
}

func NewEquipmentHandler(s *store.Store, pub service.StockPublisher) *EquipmentHandler {
	if s == nil {
		panic("nil store passed to NewEquipmentHandler")
	}
	return &EquipmentHandler{Store: s, Publisher: pub}
}

// List handles GET /api/equipment.
func (h *EquipmentHandler) List(c echo.Context) error {
	items, err := h.Store.ListEquipmentWithCategory()
	if err != nil {
		log.Printf("equipment list: %v", err)
		return errJSON(c, http.StatusInternalServerError, "資器材一覧の取得に失敗しました")
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /api/equipment/:id.
func (h *EquipmentHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "無効なIDです")
	}
	item, err := h.Store.GetEquipmentWithCategory(id)
	if err != nil {
		if errors.Is(err, store.ErrEquipmentNotFound) {
			return errJSON(c, http.StatusNotFound, "資器材が見つかりません")
		}
		log.Printf("equipment get %d: %v", id, err)
		return errJSON(c, http.StatusInternalServerError, "資器材の取得に失敗しました")
	}
	return c.JSON(http.StatusOK, item)
}

func validateNewEquipment(in model.NewEquipment) []ValidationDetail {
	var details []ValidationDetail
	if strings.TrimSpace(in.Name) == "" {
		details = append(details, ValidationDetail{Field: "name", Message: "名称は必須です"})
	}
	if in.CategoryID < 1 {
		details = append(details, ValidationDetail{Field: "categoryId", Message: "カテゴリIDは1以上で指定してください"})
	}
	if in.CurrentStock != nil && *in.CurrentStock < 0 {
		details = append(details, ValidationDetail{Field: "currentStock", Message: "在庫数は0以上で指定してください"})
	}
	if in.MinimumStock != nil && *in.MinimumStock < 0 {
		details = append(details, ValidationDetail{Field: "minimumStock", Message: "最低在庫数は0以上で指定してください"})
	}
	if in.Unit != nil && strings.TrimSpace(*in.Unit) == "" {
		details = append(details, ValidationDetail{Field: "unit", Message: "単位を指定してください"})
	}
	return details
}

// Create handles POST /api/equipment.
func (h *EquipmentHandler) Create(c echo.Context) error {
	var in model.NewEquipment
	if err := c.Bind(&in); err != nil {
		return errJSON(c, http.StatusBadRequest, "リクエストボディが不正です")
	}
	if details := validateNewEquipment(in); len(details) > 0 {
		return validationJSON(c, details)
	}
	item, err := h.Store.CreateEquipment(in)
	if err != nil {
		if errors.Is(err, store.ErrCategoryNotFound) {
			return validationJSON(c, []ValidationDetail{{Field: "categoryId", Message: "存在しないカテゴリです"}})
		}
		return validationJSON(c, []ValidationDetail{{Field: "expirationDate", Message: "有効期限の形式が不正です"}})
	}
	return c.JSON(http.StatusCreated, item)
}

func validateEquipmentPatch(p model.EquipmentPatch) []ValidationDetail {
	var details []ValidationDetail
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		details = append(details, ValidationDetail{Field: "name", Message: "名称は必須です"})
	}
	if p.CategoryID != nil && *p.CategoryID < 1 {
		details = append(details, ValidationDetail{Field: "categoryId", Message: "カテゴリIDは1以上で指定してください"})
	}
	if p.CurrentStock != nil && *p.CurrentStock < 0 {
		details = append(details, ValidationDetail{Field: "currentStock", Message: "在庫数は0以上で指定してください"})
	}
	if p.MinimumStock != nil && *p.MinimumStock < 0 {
		details = append(details, ValidationDetail{Field: "minimumStock", Message: "最低在庫数は0以上で指定してください"})
	}
	if p.Unit != nil && strings.TrimSpace(*p.Unit) == "" {
		details = append(details, ValidationDetail{Field: "unit", Message: "単位を指定してください"})
	}
	return details
}

// Update handles PUT /api/equipment/:id with a partial patch.
func (h *EquipmentHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "無効なIDです")
	}
	var patch model.EquipmentPatch
	if err := c.Bind(&patch); err != nil {
		return errJSON(c, http.StatusBadRequest, "リクエストボディが不正です")
	}
	if details := validateEquipmentPatch(patch); len(details) > 0 {
		return validationJSON(c, details)
	}
	item, err := h.Store.UpdateEquipment(id, patch)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEquipmentNotFound):
			return errJSON(c, http.StatusNotFound, "資器材が見つかりません")
		case errors.Is(err, store.ErrCategoryNotFound):
			return validationJSON(c, []ValidationDetail{{Field: "categoryId", Message: "存在しないカテゴリです"}})
		default:
			return validationJSON(c, []ValidationDetail{{Field: "expirationDate", Message: "有効期限の形式が不正です"}})
		}
	}
	return c.JSON(http.StatusOK, item)
}

// UpdateStock handles POST /api/equipment/:id/stock: it records a usage
// event attributed to the authenticated caller and returns the refreshed
// equipment record. Recording the event is what moves the stock; there
// is no separate stock write here.
func (h *EquipmentHandler) UpdateStock(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "無効なIDです")
	}
	uid, err := getUserID(c)
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, "認証が必要です")
	}
	var body struct {
		Quantity *int    `json:"quantity"`
		Type     string  `json:"type"`
		Reason   *string `json:"reason"`
		Notes    *string `json:"notes"`
	}
	if err := c.Bind(&body); err != nil {
		return errJSON(c, http.StatusBadRequest, "リクエストボディが不正です")
	}
	if body.Quantity == nil || body.Type == "" {
		return errJSON(c, http.StatusBadRequest, "数量と種別は必須です")
	}
	qty := *body.Quantity
	if qty < 0 {
		qty = -qty
	}
	if qty == 0 || !model.ValidUsageType(body.Type) {
		return errJSON(c, http.StatusBadRequest, "数量と種別は必須です")
	}

	ev, err := h.Store.RecordUsageEvent(model.NewUsageEvent{
		EquipmentID: id,
		UserID:      uid,
		Quantity:    qty,
		Type:        body.Type,
		Reason:      body.Reason,
		Notes:       body.Notes,
	})
	if err != nil {
		if errors.Is(err, store.ErrEquipmentNotFound) {
			return errJSON(c, http.StatusNotFound, "資器材が見つかりません")
		}
		log.Printf("record stock event for equipment %d: %v", id, err)
		return errJSON(c, http.StatusInternalServerError, "在庫数の更新に失敗しました")
	}

	item, err := h.Store.GetEquipmentWithCategory(id)
	if err != nil {
		log.Printf("reload equipment %d after stock event: %v", id, err)
		return errJSON(c, http.StatusInternalServerError, "在庫数の更新に失敗しました")
	}

	service.PublishAsync(h.Publisher, ev, item.Equipment)
	return c.JSON(http.StatusOK, item)
}
