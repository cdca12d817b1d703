package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/emsinv/ems-inventory/internal/model"
	"github.com/emsinv/ems-inventory/internal/store"
)

// CategoryHandler serves the category reference data endpoints.
type CategoryHandler struct {
	Store *store.Store
}

func NewCategoryHandler(s *store.Store) *CategoryHandler {
	if s == nil {
		panic("nil store passed to NewCategoryHandler")
	}
	return &CategoryHandler{Store: s}
}

// List handles GET /api/categories.
func (h *CategoryHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.ListCategories())
}

// Get handles GET /api/categories/:id.
func (h *CategoryHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "無効なIDです")
	}
	cat, err := h.Store.GetCategory(id)
	if err != nil {
		return errJSON(c, http.StatusNotFound, "カテゴリが見つかりません")
	}
	return c.JSON(http.StatusOK, cat)
}

// Create handles POST /api/categories (admin only).
func (h *CategoryHandler) Create(c echo.Context) error {
	var in model.NewCategory
	if err := c.Bind(&in); err != nil {
		return errJSON(c, http.StatusBadRequest, "リクエストボディが不正です")
	}
	var details []ValidationDetail
	if strings.TrimSpace(in.Name) == "" {
		details = append(details, ValidationDetail{Field: "name", Message: "名称は必須です"})
	}
	if strings.TrimSpace(in.Code) == "" {
		details = append(details, ValidationDetail{Field: "code", Message: "コードは必須です"})
	}
	if len(details) > 0 {
		return validationJSON(c, details)
	}
	cat, err := h.Store.CreateCategory(in)
	if err != nil {
		if errors.Is(err, store.ErrCategoryCodeExists) {
			return errJSON(c, http.StatusConflict, "このコードは既に使われています")
		}
		return errJSON(c, http.StatusInternalServerError, "カテゴリの作成に失敗しました")
	}
	return c.JSON(http.StatusCreated, cat)
}
