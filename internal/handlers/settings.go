package handlers

import (
	"net/http"

	"Assistant/internal/httperr"
	"Assistant/internal/settings"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	store *settings.Store
}

func NewSettingsHandler(store *settings.Store) *SettingsHandler {
	return &SettingsHandler{store: store}
}

// Get godoc
// @Summary      Read stored preferences
// @Tags         settings
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	prefs, err := h.store.Get(c.Request.Context())
	if err != nil {
		fail(c, httperr.Service("Failed to load preferences", err))
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// Update godoc
// @Summary      Merge-patch preferences
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body      map[string]any  true  "Fields to change"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  map[string]string
// @Router       /settings [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil {
		fail(c, httperr.Validation(err.Error()))
		return
	}
	prefs, err := h.store.Patch(c.Request.Context(), updates)
	if err != nil {
		fail(c, httperr.Service("Failed to update preferences", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Preferences updated", "preferences": prefs})
}
