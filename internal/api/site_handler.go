package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/autopress-api/internal/models"
	"github.com/autopress-api/internal/service"
)

// SiteHandler handles the WordPress site registry endpoints
type SiteHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewSiteHandler creates a new SiteHandler
func NewSiteHandler(services *service.Services, log zerolog.Logger) *SiteHandler {
	return &SiteHandler{
		services: services,
		log:      log.With().Str("handler", "site").Logger(),
	}
}

// Create handles POST /v1/sites
func (h *SiteHandler) Create(c *gin.Context) {
	var req models.SiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	site, err := h.services.Site.Add(c.Request.Context(), currentUserID(c), &req)
	if err != nil {
		h.log.Warn().Err(err).Str("url", req.URL).Msg("Site registration failed")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, site)
}

// List handles GET /v1/sites
func (h *SiteHandler) List(c *gin.Context) {
	sites, err := h.services.Site.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sites": sites, "count": len(sites)})
}

// Get handles GET /v1/sites/:site_id
func (h *SiteHandler) Get(c *gin.Context) {
	site, err := h.services.Site.Get(c.Request.Context(), currentUserID(c), c.Param("site_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, site)
}

// Update handles PUT /v1/sites/:site_id
func (h *SiteHandler) Update(c *gin.Context) {
	var req models.SiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	site, err := h.services.Site.Update(c.Request.Context(), currentUserID(c), c.Param("site_id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, site)
}

// Delete handles DELETE /v1/sites/:site_id
func (h *SiteHandler) Delete(c *gin.Context) {
	if err := h.services.Site.Delete(c.Request.Context(), currentUserID(c), c.Param("site_id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// Test handles POST /v1/sites/:site_id/test
func (h *SiteHandler) Test(c *gin.Context) {
	result, err := h.services.Site.Test(c.Request.Context(), currentUserID(c), c.Param("site_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// TestCredentials handles POST /v1/sites/test
func (h *SiteHandler) TestCredentials(c *gin.Context) {
	var req models.ConnectionTestRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url, username and password are required"})
		return
	}

	result := h.services.Site.TestCredentials(c.Request.Context(), &req)
	c.JSON(http.StatusOK, result)
}
