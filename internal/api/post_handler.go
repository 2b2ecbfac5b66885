package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/autopress-api/internal/models"
	"github.com/autopress-api/internal/service"
	"github.com/autopress-api/internal/wordpress"
)

// PostHandler handles post record and publishing endpoints
type PostHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(services *service.Services, log zerolog.Logger) *PostHandler {
	return &PostHandler{
		services: services,
		log:      log.With().Str("handler", "post").Logger(),
	}
}

// asWordPressError extracts a classified publishing error when present
func asWordPressError(err error) (*wordpress.Error, bool) {
	var wpErr *wordpress.Error
	if errors.As(err, &wpErr) {
		return wpErr, true
	}
	return nil, false
}

// List handles GET /v1/posts
func (h *PostHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	posts, err := h.services.Post.List(c.Request.Context(), currentUserID(c), c.Query("status"), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts, "count": len(posts)})
}

// Statistics handles GET /v1/posts/statistics
func (h *PostHandler) Statistics(c *gin.Context) {
	stats, err := h.services.Post.Statistics(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Get handles GET /v1/posts/:post_id
func (h *PostHandler) Get(c *gin.Context) {
	post, err := h.services.Post.Get(c.Request.Context(), currentUserID(c), c.Param("post_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// Update handles PUT /v1/posts/:post_id
func (h *PostHandler) Update(c *gin.Context) {
	var req models.PostUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	post, err := h.services.Post.Update(c.Request.Context(), currentUserID(c), c.Param("post_id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// Delete handles DELETE /v1/posts/:post_id
func (h *PostHandler) Delete(c *gin.Context) {
	if err := h.services.Post.Delete(c.Request.Context(), currentUserID(c), c.Param("post_id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// Publish handles POST /v1/posts/:post_id/publish
func (h *PostHandler) Publish(c *gin.Context) {
	var req models.PublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.SiteID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "site_id is required"})
		return
	}

	result, err := h.services.Post.Publish(c.Request.Context(), currentUserID(c), c.Param("post_id"), &req)
	if err != nil {
		h.log.Warn().Err(err).Str("post_id", c.Param("post_id")).Msg("Publish failed")
		if wpErr, ok := asWordPressError(err); ok {
			c.JSON(http.StatusBadGateway, gin.H{"error": wpErr.Reason, "kind": string(wpErr.Kind)})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListRemote handles GET /v1/sites/:site_id/posts
func (h *PostHandler) ListRemote(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	posts, err := h.services.Post.RemotePosts(c.Request.Context(), currentUserID(c), c.Param("site_id"), c.Query("status"), limit)
	if err != nil {
		if wpErr, ok := asWordPressError(err); ok {
			c.JSON(http.StatusBadGateway, gin.H{"error": wpErr.Reason, "kind": string(wpErr.Kind)})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts, "count": len(posts)})
}

// UpdateRemote handles PUT /v1/sites/:site_id/posts/:remote_id
func (h *PostHandler) UpdateRemote(c *gin.Context) {
	remoteID, err := strconv.Atoi(c.Param("remote_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "remote post id must be numeric"})
		return
	}

	var req struct {
		Title   *string `json:"title,omitempty"`
		Content *string `json:"content,omitempty"`
		Status  *string `json:"status,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.services.Post.UpdateRemote(c.Request.Context(), currentUserID(c), c.Param("site_id"), remoteID, wordpress.UpdateFields{
		Title:   req.Title,
		Content: req.Content,
		Status:  req.Status,
	})
	if err != nil {
		if wpErr, ok := asWordPressError(err); ok {
			c.JSON(http.StatusBadGateway, gin.H{"error": wpErr.Reason, "kind": string(wpErr.Kind)})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeleteRemote handles DELETE /v1/sites/:site_id/posts/:remote_id
func (h *PostHandler) DeleteRemote(c *gin.Context) {
	remoteID, err := strconv.Atoi(c.Param("remote_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "remote post id must be numeric"})
		return
	}

	force := c.Query("force") == "true"
	if err := h.services.Post.DeleteRemote(c.Request.Context(), currentUserID(c), c.Param("site_id"), remoteID, force); err != nil {
		if wpErr, ok := asWordPressError(err); ok {
			c.JSON(http.StatusBadGateway, gin.H{"error": wpErr.Reason, "kind": string(wpErr.Kind)})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
