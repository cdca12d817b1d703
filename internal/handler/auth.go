package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/emsinv/ems-inventory/internal/config"
	"github.com/emsinv/ems-inventory/internal/model"
	"github.com/emsinv/ems-inventory/internal/store"
	"github.com/emsinv/ems-inventory/internal/utils"
)

// AuthHandler bundles dependencies for the auth endpoints. Session
// resolution lives entirely here; the inventory core only ever sees the
// resulting numeric user id.
type AuthHandler struct {
	Cfg   config.Config
	Store *store.Store
}

func NewAuthHandler(cfg config.Config, s *store.Store) *AuthHandler {
	if s == nil {
		panic("nil store passed to NewAuthHandler")
	}
	return &AuthHandler{Cfg: cfg, Store: s}
}

type registerReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Role     string `json:"role"` // user | admin
}
type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
type refreshReq struct {
	RefreshToken string `json:"refresh_token"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}
type authResp struct {
	User    model.User `json:"user"`
	Access  tokenPart  `json:"access"`
	Refresh tokenPart  `json:"refresh"`
}

// Register creates a user and returns tokens immediately.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "リクエストボディが不正です")
	}
	req.Username = strings.ToLower(strings.TrimSpace(req.Username))
	req.FullName = strings.TrimSpace(req.FullName)
	if req.Username == "" || req.Password == "" || req.FullName == "" {
		return errJSON(c, http.StatusBadRequest, "ユーザー名・パスワード・氏名は必須です")
	}

	hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "ユーザーの作成に失敗しました")
	}
	u, err := h.Store.CreateUser(req.Username, hash, req.FullName, strings.ToLower(req.Role))
	if err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			return errJSON(c, http.StatusConflict, "このユーザー名は既に使われています")
		}
		return errJSON(c, http.StatusInternalServerError, "ユーザーの作成に失敗しました")
	}
	return h.issueTokens(c, http.StatusCreated, u)
}

// Login verifies credentials and issues a fresh token pair.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "リクエストボディが不正です")
	}
	u, err := h.Store.GetUserByUsername(strings.ToLower(strings.TrimSpace(req.Username)))
	if err != nil || !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return errJSON(c, http.StatusUnauthorized, "ユーザー名またはパスワードが違います")
	}
	return h.issueTokens(c, http.StatusOK, u)
}

// Refresh rotates a refresh token: the presented token is revoked and a
// new token pair is returned.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil || req.RefreshToken == "" {
		return errJSON(c, http.StatusBadRequest, "refresh_tokenは必須です")
	}
	hash := utils.HashRefreshRaw(req.RefreshToken)
	t, err := h.Store.GetRefresh(hash)
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, "トークンが無効です")
	}
	u, err := h.Store.GetUser(t.UserID)
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, "トークンが無効です")
	}
	if err := h.Store.RevokeRefresh(hash); err != nil {
		return errJSON(c, http.StatusUnauthorized, "トークンが無効です")
	}
	return h.issueTokens(c, http.StatusOK, u)
}

// RefreshAccess issues a new access token without rotating the refresh
// token.
func (h *AuthHandler) RefreshAccess(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil || req.RefreshToken == "" {
		return errJSON(c, http.StatusBadRequest, "refresh_tokenは必須です")
	}
	t, err := h.Store.GetRefresh(utils.HashRefreshRaw(req.RefreshToken))
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, "トークンが無効です")
	}
	u, err := h.Store.GetUser(t.UserID)
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, "トークンが無効です")
	}
	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Role, h.Cfg.AccessTTLMin)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "トークンの発行に失敗しました")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"access": tokenPart{Token: access.Token, Expires: access.Exp},
	})
}

// Logout invalidates the presented refresh token. No JWT is required;
// possession of the refresh token is proof enough to end the session.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil || req.RefreshToken == "" {
		return errJSON(c, http.StatusBadRequest, "refresh_tokenは必須です")
	}
	if err := h.Store.RevokeRefresh(utils.HashRefreshRaw(req.RefreshToken)); err != nil {
		return errJSON(c, http.StatusUnauthorized, "トークンが無効です")
	}
	return c.NoContent(http.StatusNoContent)
}

// Me returns the authenticated user's record.
func (h *AuthHandler) Me(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return errJSON(c, http.StatusUnauthorized, "認証が必要です")
	}
	u, err := h.Store.GetUser(uid)
	if err != nil {
		return errJSON(c, http.StatusNotFound, "ユーザーが見つかりません")
	}
	return c.JSON(http.StatusOK, u)
}

func (h *AuthHandler) issueTokens(c echo.Context, status int, u model.User) error {
	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Role, h.Cfg.AccessTTLMin)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "トークンの発行に失敗しました")
	}
	refresh, err := utils.NewRefreshToken(h.Cfg.RefreshTTLDays)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "トークンの発行に失敗しました")
	}
	if err := h.Store.StoreRefresh(u.ID, utils.HashRefreshRaw(refresh.Raw), refresh.Exp); err != nil {
		return errJSON(c, http.StatusInternalServerError, "トークンの保存に失敗しました")
	}
	return c.JSON(status, authResp{
		User:    u,
		Access:  tokenPart{Token: access.Token, Expires: access.Exp},
		Refresh: tokenPart{Token: refresh.Raw, Expires: refresh.Exp},
	})
}
