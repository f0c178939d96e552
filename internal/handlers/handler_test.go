package handlers

import (
	"log/slog"
	"os"

	"github.com/Mahi2103/UrlShortnerProject/internal/auth"
	"github.com/Mahi2103/UrlShortnerProject/internal/config"
	"github.com/Mahi2103/UrlShortnerProject/internal/models"
	"github.com/Mahi2103/UrlShortnerProject/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupTestHandler() (*Handler, *gorm.DB) {
	db, _ := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	db.AutoMigrate(&models.User{}, &models.Link{}, &models.Click{}, &models.AuditLog{})

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	cfg := config.Config{
		JWTSecret:         "test-secret-12345678901234567890123456789012",
		JWTIssuer:         "urlshortner",
		JWTAudience:       "urlshortner-client",
		JWTExpiresMinutes: 30,
	}

	tokens := auth.NewTokenIssuer(cfg)
	audit := services.NewAuditService(db, logger)
	geo := services.NewGeoIPService(cfg, logger)
	users := services.NewUserService(db, audit)
	shortener := services.NewShortenerService(db, nil, logger, audit, geo)
	stats := services.NewStatsService(db, logger, nil)

	h := NewHandler(cfg, logger, db, nil, tokens, users, shortener, stats, audit)
	return h, db
}

func setupTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return h.SetupRouter(nil)
}

// authToken registers a user directly and returns a valid bearer token.
func authToken(h *Handler, db *gorm.DB) string {
	user := models.User{UserName: "tester", Email: "tester@example.com", PasswordHash: "x"}
	db.Where(models.User{Email: user.Email}).FirstOrCreate(&user)
	token, _ := h.tokenIssuer.IssueToken(&user)
	return "Bearer " + token
}
