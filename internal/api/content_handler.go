package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/autopress-api/internal/models"
	"github.com/autopress-api/internal/service"
)

// ContentHandler handles generation and SEO analysis endpoints
type ContentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(services *service.Services, log zerolog.Logger) *ContentHandler {
	return &ContentHandler{
		services: services,
		log:      log.With().Str("handler", "content").Logger(),
	}
}

// Generate handles POST /v1/content/generate
func (h *ContentHandler) Generate(c *gin.Context) {
	var req models.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.services.Content.Generate(c.Request.Context(), currentUserID(c), &req)
	if err != nil {
		h.log.Warn().Err(err).Str("keyword", req.Keyword).Msg("Generation failed")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Analyze handles POST /v1/content/analyze
func (h *ContentHandler) Analyze(c *gin.Context) {
	var req struct {
		Keyword string `json:"keyword"`
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Keyword == "" || req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "keyword and content are required"})
		return
	}

	c.JSON(http.StatusOK, h.services.Content.Analyze(req.Keyword, req.Content))
}

// Keywords handles GET /v1/content/keywords
func (h *ContentHandler) Keywords(c *gin.Context) {
	keyword := c.Query("keyword")
	if keyword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "keyword query parameter is required"})
		return
	}

	c.JSON(http.StatusOK, h.services.Content.ResearchKeywords(keyword))
}
