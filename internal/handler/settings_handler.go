package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hygienicomfort/shop_api/internal/cache"
	"github.com/hygienicomfort/shop_api/internal/utils"
)

// SettingsHandler serves per-user display preferences (theme, display
// name) stored in Redis.
type SettingsHandler struct {
	prefs *cache.PreferenceCache
}

func NewSettingsHandler(prefs *cache.PreferenceCache) *SettingsHandler {
	return &SettingsHandler{prefs: prefs}
}

// GetPreferences handles GET /v1/settings/preferences.
func (h *SettingsHandler) GetPreferences(c *gin.Context) {
	userID := c.GetInt("user_id")
	ctx := c.Request.Context()

	theme, err := h.prefs.Get(ctx, userID, cache.PrefTheme)
	if err != nil {
		serviceError(c, err)
		return
	}
	displayName, err := h.prefs.Get(ctx, userID, cache.PrefDisplayName)
	if err != nil {
		serviceError(c, err)
		return
	}

	utils.Success(c, 200, "Preferences retrieved", gin.H{
		"theme":       theme,
		"displayName": displayName,
	})
}

// UpdatePreferences handles PUT /v1/settings/preferences. Empty values
// clear the preference.
func (h *SettingsHandler) UpdatePreferences(c *gin.Context) {
	var req struct {
		Theme       *string `json:"theme"`
		DisplayName *string `json:"displayName"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	userID := c.GetInt("user_id")

	if req.Theme != nil {
		if err := h.setOrRemove(c, userID, cache.PrefTheme, *req.Theme); err != nil {
			return
		}
	}
	if req.DisplayName != nil {
		if err := h.setOrRemove(c, userID, cache.PrefDisplayName, *req.DisplayName); err != nil {
			return
		}
	}

	utils.Success(c, 200, "Preferences updated", nil)
}

func (h *SettingsHandler) setOrRemove(c *gin.Context, userID int, name, value string) error {
	ctx := c.Request.Context()
	var err error
	if value == "" {
		err = h.prefs.Remove(ctx, userID, name)
	} else {
		err = h.prefs.Set(ctx, userID, name, value)
	}
	if err != nil {
		serviceError(c, err)
	}
	return err
}
