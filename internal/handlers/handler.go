package handlers

import (
	"log/slog"

	"github.com/Mahi2103/UrlShortnerProject/internal/auth"
	"github.com/Mahi2103/UrlShortnerProject/internal/config"
	"github.com/Mahi2103/UrlShortnerProject/internal/services"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Handler struct {
	cfg              config.Config
	logger           *slog.Logger
	db               *gorm.DB
	rdb              *redis.Client
	tokenIssuer      *auth.TokenIssuer
	userService      *services.UserService
	shortenerService *services.ShortenerService
	statsService     *services.StatsService
	auditService     *services.AuditService
}

func NewHandler(
	cfg config.Config,
	logger *slog.Logger,
	db *gorm.DB,
	rdb *redis.Client,
	tokenIssuer *auth.TokenIssuer,
	userService *services.UserService,
	shortenerService *services.ShortenerService,
	statsService *services.StatsService,
	auditService *services.AuditService,
) *Handler {
	return &Handler{
		cfg:              cfg,
		logger:           logger,
		db:               db,
		rdb:              rdb,
		tokenIssuer:      tokenIssuer,
		userService:      userService,
		shortenerService: shortenerService,
		statsService:     statsService,
		auditService:     auditService,
	}
}
