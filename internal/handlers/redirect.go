package handlers

import (
	"errors"
	"net/http"

	"github.com/Mahi2103/UrlShortnerProject/internal/services"

	"github.com/gin-gonic/gin"
)

// RedirectToURL resolves a short code and sends the visitor on. This route
// is public; it records the click before redirecting.
func (h *Handler) RedirectToURL(c *gin.Context) {
	shortCode := c.Param("code")

	target, err := h.shortenerService.ResolveAndRecordClick(
		c.Request.Context(),
		shortCode,
		c.ClientIP(),
		c.Request.UserAgent(),
	)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrLinkNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Link not found"})
		case errors.Is(err, services.ErrLinkExpired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Link expired"})
		default:
			h.logger.Error("Failed to resolve short code", "code", shortCode, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.Redirect(http.StatusFound, target)
}
