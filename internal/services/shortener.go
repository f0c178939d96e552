package services

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/Mahi2103/UrlShortnerProject/internal/models"
	"github.com/Mahi2103/UrlShortnerProject/pkg/utils"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const linkCacheTTL = 10 * time.Minute

type ShortenDTO struct {
	UserID         *uint
	OriginalURL    string
	CustomAlias    string
	Password       string
	ExpirationDate *time.Time
	BaseURL        string // external origin, e.g. "https://sho.rt"
	IPAddress      string // for the audit log
}

type ShortenResult struct {
	ShortURL       string
	QRCodeURL      string
	CreatedAt      time.Time
	ExpirationDate *time.Time
	Link           *models.Link
}

type ShortenerService struct {
	db            *gorm.DB
	rdb           *redis.Client
	logger        *slog.Logger
	auditService  *AuditService
	geoIPService  *GeoIPService
	codeGenerator func(int) string
}

func NewShortenerService(db *gorm.DB, rdb *redis.Client, logger *slog.Logger, auditService *AuditService, geoIPService *GeoIPService) *ShortenerService {
	return &ShortenerService{
		db:            db,
		rdb:           rdb,
		logger:        logger,
		auditService:  auditService,
		geoIPService:  geoIPService,
		codeGenerator: utils.GenerateShortCode,
	}
}

// CreateShortLink persists a new mapping. A custom alias is used verbatim and
// must be free; generated codes retry until an unused one is found. The
// unique index on short_code closes the check-then-insert race: a concurrent
// duplicate surfaces as ErrCodeTaken from the insert itself.
func (s *ShortenerService) CreateShortLink(dto ShortenDTO) (*ShortenResult, error) {
	var shortCode string
	if dto.CustomAlias != "" {
		var existing models.Link
		err := s.db.Where("short_code = ?", dto.CustomAlias).First(&existing).Error
		if err == nil {
			return nil, ErrCodeTaken
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		shortCode = dto.CustomAlias
	} else {
		for {
			shortCode = s.codeGenerator(utils.ShortCodeLength)
			var existing models.Link
			err := s.db.Where("short_code = ?", shortCode).First(&existing).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				break
			}
			if err != nil {
				return nil, err
			}
		}
	}

	var passwordHash string
	if dto.Password != "" {
		hash, err := utils.HashPassword(dto.Password)
		if err != nil {
			return nil, err
		}
		passwordHash = hash
	}

	// Absent, zero-value or non-future expiry means the link never expires.
	expiresAt := dto.ExpirationDate
	if expiresAt != nil && (expiresAt.IsZero() || !expiresAt.After(time.Now())) {
		expiresAt = nil
	}

	shortURL := strings.TrimSuffix(dto.BaseURL, "/") + "/" + shortCode

	newLink := models.Link{
		UserID:              dto.UserID,
		OriginalURL:         dto.OriginalURL,
		ShortCode:           shortCode,
		CreatedAt:           time.Now().UTC(),
		ExpiresAt:           expiresAt,
		IsPasswordProtected: passwordHash != "",
		PasswordHash:        passwordHash,
		QRCodeURL:           BuildQRCodeURL(shortURL),
	}

	if err := s.db.Create(&newLink).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCodeTaken
		}
		return nil, err
	}

	s.auditService.LogAction(dto.UserID, "CREATE_LINK", newLink.ShortCode, map[string]interface{}{
		"original_url": dto.OriginalURL,
	}, dto.IPAddress)

	return &ShortenResult{
		ShortURL:       shortURL,
		QRCodeURL:      newLink.QRCodeURL,
		CreatedAt:      newLink.CreatedAt,
		ExpirationDate: newLink.ExpiresAt,
		Link:           &newLink,
	}, nil
}

// ResolveAndRecordClick looks a link up by short code and, when it is alive,
// records the click and returns the destination URL. The counter increment
// and the access-log insert run in one transaction so the counter always
// equals the log length.
func (s *ShortenerService) ResolveAndRecordClick(ctx context.Context, shortCode, ipAddress, userAgent string) (string, error) {
	link, err := s.findByCode(ctx, shortCode)
	if err != nil {
		return "", err
	}

	if link.Expired(time.Now()) {
		return "", ErrLinkExpired
	}

	click := models.Click{
		LinkID:    link.ID,
		Timestamp: time.Now().UTC(),
		IPAddress: ipAddress,
		Browser:   ClassifyBrowser(userAgent),
		Device:    ClassifyDevice(userAgent),
		OS:        ParseOS(userAgent),
		Location:  s.geoIPService.Country(ipAddress),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&click).Error; err != nil {
			return err
		}
		return tx.Model(&models.Link{}).Where("id = ?", link.ID).
			UpdateColumn("clicks", gorm.Expr("clicks + 1")).Error
	})
	if err != nil {
		return "", err
	}

	return link.OriginalURL, nil
}

// DeleteLink removes a link and its access logs.
func (s *ShortenerService) DeleteLink(ctx context.Context, id uint, userID *uint, ipAddress string) error {
	var link models.Link
	if err := s.db.First(&link, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLinkNotFound
		}
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("link_id = ?", id).Delete(&models.Click{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Link{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrLinkNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	if s.rdb != nil {
		// A stale cache entry would keep resolving a deleted link until the
		// TTL runs out, so a failed invalidation is worth surfacing.
		if err := s.rdb.Del(ctx, cacheKey(link.ShortCode)).Err(); err != nil {
			s.logger.Error("Failed to invalidate link cache", "code", link.ShortCode, "error", err)
		}
	}

	s.auditService.LogAction(userID, "DELETE_LINK", link.ShortCode, nil, ipAddress)
	return nil
}

func (s *ShortenerService) findByCode(ctx context.Context, shortCode string) (*models.Link, error) {
	var link models.Link

	if s.rdb != nil {
		val, err := s.rdb.Get(ctx, cacheKey(shortCode)).Result()
		if err == nil {
			if err := json.Unmarshal([]byte(val), &link); err == nil {
				return &link, nil
			}
		}
	}

	if err := s.db.Where("short_code = ?", shortCode).First(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, err
	}

	if s.rdb != nil {
		// The cached copy only serves the URL and expiry fields on the
		// redirect path; the click counter is never read from cache.
		if data, err := json.Marshal(link); err == nil {
			s.rdb.Set(ctx, cacheKey(shortCode), data, linkCacheTTL)
		}
	}

	return &link, nil
}

func cacheKey(shortCode string) string {
	return "link:" + shortCode
}
