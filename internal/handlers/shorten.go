package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/Mahi2103/UrlShortnerProject/internal/services"

	"github.com/gin-gonic/gin"
)

type ShortenRequest struct {
	OriginalURL    string     `json:"originalUrl" binding:"required"`
	CustomAlias    string     `json:"customAlias,omitempty"`
	Password       string     `json:"password,omitempty"`
	ExpirationDate *time.Time `json:"expirationDate,omitempty"`
}

type ShortenResponse struct {
	ShortURL       string     `json:"shortUrl"`
	QRCodeURL      string     `json:"qrCodeUrl"`
	CreatedAt      time.Time  `json:"createdAt"`
	ExpirationDate *time.Time `json:"expirationDate,omitempty"`
}

// ShortenURL handles the API request to shorten a URL.
func (h *Handler) ShortenURL(c *gin.Context) {
	var req ShortenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !isAbsoluteURL(req.OriginalURL) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid URL"})
		return
	}

	dto := services.ShortenDTO{
		UserID:         currentUserID(c),
		OriginalURL:    req.OriginalURL,
		CustomAlias:    req.CustomAlias,
		Password:       req.Password,
		ExpirationDate: req.ExpirationDate,
		BaseURL:        h.baseURL(c),
		IPAddress:      c.ClientIP(),
	}

	result, err := h.shortenerService.CreateShortLink(dto)
	if err != nil {
		if errors.Is(err, services.ErrCodeTaken) {
			c.JSON(http.StatusConflict, gin.H{"message": "Short code already used."})
			return
		}
		h.logger.Error("Failed to create short link", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create short link"})
		return
	}

	c.JSON(http.StatusOK, ShortenResponse{
		ShortURL:       result.ShortURL,
		QRCodeURL:      result.QRCodeURL,
		CreatedAt:      result.CreatedAt,
		ExpirationDate: result.ExpirationDate,
	})
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.IsAbs() && u.Host != ""
}

// baseURL is the origin short URLs are built on: the configured external
// origin when present, the request's own scheme and host otherwise.
func (h *Handler) baseURL(c *gin.Context) string {
	if h.cfg.BaseURL != "" {
		return h.cfg.BaseURL
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}
