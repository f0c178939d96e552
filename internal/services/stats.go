package services

import (
	"errors"
	"log/slog"
	"sort"
	"time"

	"github.com/Mahi2103/UrlShortnerProject/internal/models"

	"gorm.io/gorm"
)

// LinkSummary is the list projection: no access logs, no password fields.
type LinkSummary struct {
	ID          uint       `json:"id"`
	OriginalURL string     `json:"originalUrl"`
	ShortCode   string     `json:"shortCode"`
	Clicks      int        `json:"clicks"`
	CreatedAt   time.Time  `json:"createdAt"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
	QRCodeURL   string     `json:"qrCodeUrl"`
}

type AnalyticsSummary struct {
	TotalLinks   int64 `json:"totalLinks"`
	TotalClicks  int64 `json:"totalClicks"`
	ActiveLinks  int64 `json:"activeLinks"`
	ExpiredLinks int64 `json:"expiredLinks"`
}

type DailyClicks struct {
	Date   string `json:"date"` // UTC calendar day, YYYY-MM-DD
	Clicks int    `json:"clicks"`
}

type StatsService struct {
	db       *gorm.DB
	logger   *slog.Logger
	location *LocationService
}

func NewStatsService(db *gorm.DB, logger *slog.Logger, location *LocationService) *StatsService {
	return &StatsService{db: db, logger: logger, location: location}
}

// ListAllLinks returns every link, most recently created first.
func (s *StatsService) ListAllLinks() ([]LinkSummary, error) {
	var links []models.Link
	if err := s.db.Order("created_at desc").Find(&links).Error; err != nil {
		return nil, err
	}

	summaries := make([]LinkSummary, 0, len(links))
	for _, l := range links {
		summaries = append(summaries, LinkSummary{
			ID:          l.ID,
			OriginalURL: l.OriginalURL,
			ShortCode:   l.ShortCode,
			Clicks:      l.Clicks,
			CreatedAt:   l.CreatedAt,
			ExpiresAt:   l.ExpiresAt,
			QRCodeURL:   l.QRCodeURL,
		})
	}
	return summaries, nil
}

// GetLinkDetails returns one link with its ordered access logs.
func (s *StatsService) GetLinkDetails(id uint) (*models.Link, error) {
	var link models.Link
	err := s.db.Preload("AccessLogs", func(db *gorm.DB) *gorm.DB {
		return db.Order("timestamp asc")
	}).First(&link, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, err
	}
	return &link, nil
}

// EnrichLocation fills in a display location for log entries still tagged
// Unknown, via the external IP lookup. Failures leave "Unknown" in place.
func (s *StatsService) EnrichLocation(logs []models.Click) {
	if s.location == nil {
		return
	}
	for i := range logs {
		if logs[i].Location == "" || logs[i].Location == "Unknown" {
			logs[i].Location = s.location.Lookup(logs[i].IPAddress)
		}
	}
}

// GetAnalyticsSummary computes totals across all links. Read-only.
func (s *StatsService) GetAnalyticsSummary() (*AnalyticsSummary, error) {
	now := time.Now().UTC()
	summary := &AnalyticsSummary{}

	if err := s.db.Model(&models.Link{}).Count(&summary.TotalLinks).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Link{}).
		Select("COALESCE(SUM(clicks), 0)").Scan(&summary.TotalClicks).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Link{}).
		Where("expires_at IS NULL OR expires_at > ?", now).
		Count(&summary.ActiveLinks).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Link{}).
		Where("expires_at IS NOT NULL AND expires_at <= ?", now).
		Count(&summary.ExpiredLinks).Error; err != nil {
		return nil, err
	}

	return summary, nil
}

// GetClicksOverTime groups one link's access logs by UTC calendar day,
// ascending. An unknown link yields an empty slice, not an error.
func (s *StatsService) GetClicksOverTime(linkID uint) ([]DailyClicks, error) {
	var link models.Link
	if err := s.db.First(&link, linkID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []DailyClicks{}, nil
		}
		return nil, err
	}

	var clicks []models.Click
	if err := s.db.Where("link_id = ?", linkID).Order("timestamp asc").Find(&clicks).Error; err != nil {
		return nil, err
	}

	byDay := make(map[string]int)
	for _, c := range clicks {
		byDay[c.Timestamp.UTC().Format("2006-01-02")]++
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	result := make([]DailyClicks, 0, len(days))
	for _, day := range days {
		result = append(result, DailyClicks{Date: day, Clicks: byDay[day]})
	}
	return result, nil
}
