package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Mahi2103/UrlShortnerProject/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestRedirectToURL(t *testing.T) {
	h, db := setupTestHandler()
	r := setupTestRouter(h)

	t.Run("404 Not Found", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/NONEXIST", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Successful redirect records click", func(t *testing.T) {
		link := models.Link{ShortCode: "GOOGLE", OriginalURL: "https://google.com"}
		db.Create(&link)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/GOOGLE", nil)
		req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0) Chrome/120.0.0.0 Safari/537.36")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "https://google.com", w.Header().Get("Location"))

		var reloaded models.Link
		db.First(&reloaded, link.ID)
		assert.Equal(t, 1, reloaded.Clicks)

		var click models.Click
		assert.NoError(t, db.Where("link_id = ?", link.ID).First(&click).Error)
		assert.Equal(t, "Chrome", click.Browser)
		assert.Equal(t, "Windows", click.Device)
	})

	t.Run("Prefixed redirect route", func(t *testing.T) {
		link := models.Link{ShortCode: "PREFIX", OriginalURL: "https://example.org"}
		db.Create(&link)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/r/PREFIX", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "https://example.org", w.Header().Get("Location"))
	})

	t.Run("Expired link", func(t *testing.T) {
		past := time.Now().Add(-24 * time.Hour)
		link := models.Link{ShortCode: "EXPIRED", OriginalURL: "https://google.com", ExpiresAt: &past}
		db.Create(&link)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/EXPIRED", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Link expired")

		var reloaded models.Link
		db.First(&reloaded, link.ID)
		assert.Equal(t, 0, reloaded.Clicks)
	})

	t.Run("No auth required", func(t *testing.T) {
		link := models.Link{ShortCode: "PUBLIC", OriginalURL: "https://public.example"}
		db.Create(&link)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/PUBLIC", nil)
		// deliberately no Authorization header
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
	})
}
