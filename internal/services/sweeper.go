package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/Mahi2103/UrlShortnerProject/internal/models"

	"gorm.io/gorm"
)

// ExpirySweeper deletes links whose expiry timestamp has passed, the way a
// document store's TTL index would. Access logs go with their link.
type ExpirySweeper struct {
	db       *gorm.DB
	logger   *slog.Logger
	interval time.Duration
}

func NewExpirySweeper(db *gorm.DB, logger *slog.Logger, interval time.Duration) *ExpirySweeper {
	return &ExpirySweeper{db: db, logger: logger, interval: interval}
}

func (s *ExpirySweeper) Start(ctx context.Context) {
	s.logger.Info("Expiry sweeper starting", "interval", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n, err := s.SweepOnce(); err != nil {
				s.logger.Error("Expiry sweep failed", "error", err)
			} else if n > 0 {
				s.logger.Info("Expiry sweep removed links", "count", n)
			}
		case <-ctx.Done():
			s.logger.Info("Expiry sweeper stopping")
			return
		}
	}
}

// SweepOnce removes all currently expired links and returns how many.
func (s *ExpirySweeper) SweepOnce() (int64, error) {
	var removed int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var ids []uint
		if err := tx.Model(&models.Link{}).
			Where("expires_at IS NOT NULL AND expires_at <= ?", time.Now().UTC()).
			Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}

		if err := tx.Where("link_id IN ?", ids).Delete(&models.Click{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Link{}, ids)
		if res.Error != nil {
			return res.Error
		}
		removed = res.RowsAffected
		return nil
	})
	return removed, err
}
