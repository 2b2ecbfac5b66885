package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/autopress-api/internal/models"
	"github.com/autopress-api/internal/service"
)

// SettingsHandler handles the per-user settings endpoints
type SettingsHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(services *service.Services, log zerolog.Logger) *SettingsHandler {
	return &SettingsHandler{
		services: services,
		log:      log.With().Str("handler", "settings").Logger(),
	}
}

// Get handles GET /v1/settings
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.services.Settings.Get(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

// Update handles PUT /v1/settings
func (h *SettingsHandler) Update(c *gin.Context) {
	var req models.SettingsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	settings, err := h.services.Settings.Update(c.Request.Context(), currentUserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

// Reset handles POST /v1/settings/reset
func (h *SettingsHandler) Reset(c *gin.Context) {
	settings, err := h.services.Settings.Reset(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}
