package handlers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	apierrors "github.com/teamspace-dev/teamspace-api/internal/errors"
	"github.com/teamspace-dev/teamspace-api/internal/services"
)

// LinkPreviewHandler serves page metadata for link previews.
type LinkPreviewHandler struct {
	previewService *services.LinkPreviewService
}

// NewLinkPreviewHandler creates a new LinkPreviewHandler.
func NewLinkPreviewHandler(previewService *services.LinkPreviewService) *LinkPreviewHandler {
	return &LinkPreviewHandler{
		previewService: previewService,
	}
}

// GetMetaTags fetches title and favicon for the given page URL.
func (h *LinkPreviewHandler) GetMetaTags(c *gin.Context) {
	rawURL := c.Query("url")
	if rawURL == "" {
		apierrors.BadRequest(c, "url query parameter is required")
		return
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		apierrors.BadRequest(c, "url must be an absolute http(s) URL")
		return
	}

	meta, err := h.previewService.FetchMetaTags(c.Request.Context(), rawURL)
	if err != nil {
		apierrors.BadRequest(c, "Failed to fetch page metadata")
		return
	}

	c.JSON(http.StatusOK, meta)
}
