package models

import (
	"time"
)

type Link struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	UserID              *uint      `gorm:"index" json:"user_id,omitempty"` // Nullable for anonymous
	OriginalURL         string     `gorm:"not null;type:text" json:"original_url"`
	ShortCode           string     `gorm:"unique;not null;size:64;index" json:"short_code"`
	CreatedAt           time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	ExpiresAt           *time.Time `gorm:"index" json:"expires_at,omitempty"` // nil = never expires
	Clicks              int        `gorm:"default:0" json:"clicks"`
	IsPasswordProtected bool       `gorm:"default:false" json:"is_password_protected"`
	PasswordHash        string     `gorm:"size:255" json:"-"`
	QRCodeURL           string     `gorm:"type:text" json:"qr_code_url"`

	AccessLogs []Click `gorm:"foreignKey:LinkID;constraint:OnDelete:CASCADE" json:"access_logs,omitempty"`
}

func (Link) TableName() string {
	return "links"
}

// Expired reports whether the link carries a real expiry timestamp that has
// already passed. A nil or zero-value timestamp never expires a link.
func (l *Link) Expired(now time.Time) bool {
	return l.ExpiresAt != nil && !l.ExpiresAt.IsZero() && l.ExpiresAt.Before(now)
}
