package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/autopress-api/internal/models"
	"github.com/autopress-api/internal/service"
)

// ProviderHandler handles LLM provider configuration endpoints
type ProviderHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewProviderHandler creates a new ProviderHandler
func NewProviderHandler(services *service.Services, log zerolog.Logger) *ProviderHandler {
	return &ProviderHandler{
		services: services,
		log:      log.With().Str("handler", "provider").Logger(),
	}
}

// Create handles POST /v1/providers
func (h *ProviderHandler) Create(c *gin.Context) {
	var req models.ProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	provider, err := h.services.Provider.Create(c.Request.Context(), currentUserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, provider)
}

// List handles GET /v1/providers
func (h *ProviderHandler) List(c *gin.Context) {
	providers, err := h.services.Provider.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"providers": providers, "count": len(providers)})
}

// Get handles GET /v1/providers/:provider_id
func (h *ProviderHandler) Get(c *gin.Context) {
	provider, err := h.services.Provider.Get(c.Request.Context(), currentUserID(c), c.Param("provider_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, provider)
}

// Update handles PUT /v1/providers/:provider_id
func (h *ProviderHandler) Update(c *gin.Context) {
	var req models.ProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	provider, err := h.services.Provider.Update(c.Request.Context(), currentUserID(c), c.Param("provider_id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, provider)
}

// Delete handles DELETE /v1/providers/:provider_id
func (h *ProviderHandler) Delete(c *gin.Context) {
	if err := h.services.Provider.Delete(c.Request.Context(), currentUserID(c), c.Param("provider_id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
