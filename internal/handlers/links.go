package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Mahi2103/UrlShortnerProject/internal/models"
	"github.com/Mahi2103/UrlShortnerProject/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetAllLinks(c *gin.Context) {
	summaries, err := h.statsService.ListAllLinks()
	if err != nil {
		h.logger.Error("Failed to list links", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list links"})
		return
	}
	c.JSON(http.StatusOK, summaries)
}

func (h *Handler) GetLinkDetails(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	link, err := h.statsService.GetLinkDetails(id)
	if err != nil {
		if errors.Is(err, services.ErrLinkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Link not found"})
			return
		}
		h.logger.Error("Failed to fetch link", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch link"})
		return
	}

	h.statsService.EnrichLocation(link.AccessLogs)
	c.JSON(http.StatusOK, link)
}

func (h *Handler) GetAnalyticsSummary(c *gin.Context) {
	summary, err := h.statsService.GetAnalyticsSummary()
	if err != nil {
		h.logger.Error("Failed to compute summary", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *Handler) GetClicksOverTime(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	series, err := h.statsService.GetClicksOverTime(id)
	if err != nil {
		h.logger.Error("Failed to compute click series", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute click series"})
		return
	}
	c.JSON(http.StatusOK, series)
}

func (h *Handler) DeleteLink(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := h.shortenerService.DeleteLink(c.Request.Context(), id, currentUserID(c), c.ClientIP())
	if err != nil {
		if errors.Is(err, services.ErrLinkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Link not found or already deleted"})
			return
		}
		h.logger.Error("Failed to delete link", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete link"})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetQRCode renders the QR image for a short code locally, as an
// alternative to the external image reference stored on the link.
func (h *Handler) GetQRCode(c *gin.Context) {
	shortCode := c.Param("code")

	var link models.Link
	if err := h.db.Where("short_code = ?", shortCode).First(&link).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Link not found"})
		return
	}

	png, err := services.RenderQRCodePNG(h.baseURL(c)+"/"+link.ShortCode, 256)
	if err != nil {
		h.logger.Error("Failed to render QR code", "code", shortCode, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render QR code"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
