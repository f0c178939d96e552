package services

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/Mahi2103/UrlShortnerProject/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestSweepOnce(t *testing.T) {
	db := setupTestDB()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	sweeper := NewExpirySweeper(db, logger, time.Minute)

	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	expired := models.Link{OriginalURL: "https://a.com", ShortCode: "old123", ExpiresAt: &past}
	alive := models.Link{OriginalURL: "https://b.com", ShortCode: "new123", ExpiresAt: &future}
	forever := models.Link{OriginalURL: "https://c.com", ShortCode: "for123"}
	db.Create(&expired)
	db.Create(&alive)
	db.Create(&forever)
	db.Create(&models.Click{LinkID: expired.ID, Timestamp: past})

	removed, err := sweeper.SweepOnce()
	assert.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	var remaining []models.Link
	db.Find(&remaining)
	assert.Len(t, remaining, 2)
	for _, l := range remaining {
		assert.NotEqual(t, "old123", l.ShortCode)
	}

	var orphanClicks int64
	db.Model(&models.Click{}).Where("link_id = ?", expired.ID).Count(&orphanClicks)
	assert.Zero(t, orphanClicks)

	t.Run("Nothing to sweep", func(t *testing.T) {
		removed, err := sweeper.SweepOnce()
		assert.NoError(t, err)
		assert.Zero(t, removed)
	})
}

func TestSweeperStart_StopsOnCancel(t *testing.T) {
	db := setupTestDB()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	sweeper := NewExpirySweeper(db, logger, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sweeper.Start(ctx)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}
