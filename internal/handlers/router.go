package handlers

import (
	"github.com/Mahi2103/UrlShortnerProject/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) SetupRouter(rateLimiter *services.IPRateLimiter) *gin.Engine {
	r := gin.Default()

	if rateLimiter != nil {
		r.Use(h.RateLimitMiddleware(rateLimiter))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	// Public user routes
	user := r.Group("/api/User")
	{
		user.POST("/register", h.RegisterUser)
		user.POST("/login", h.LoginUser)
	}

	// Public QR render
	r.GET("/api/shorturl/qr/:code", h.GetQRCode)

	// Protected link routes
	api := r.Group("/api/shorturl")
	api.Use(h.AuthRequired())
	{
		api.POST("/shorten", h.ShortenURL)
		api.GET("/all", h.GetAllLinks)
		api.GET("/details/:id", h.GetLinkDetails)
		api.GET("/summary", h.GetAnalyticsSummary)
		api.GET("/clicks/:id", h.GetClicksOverTime)
		api.DELETE("/:id", h.DeleteLink)
	}

	// Public redirects
	r.GET("/r/:code", h.RedirectToURL)
	r.GET("/:code", h.RedirectToURL)

	return r
}
