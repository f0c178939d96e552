package models

import (
	"time"
)

// Click is one recorded redirect. Rows are append-only and owned by their
// parent link.
type Click struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	LinkID    uint      `gorm:"not null;index" json:"link_id"`
	Timestamp time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"timestamp"`
	IPAddress string    `gorm:"size:45" json:"ip_address,omitempty"`
	Browser   string    `gorm:"size:50" json:"browser"`
	Device    string    `gorm:"size:50" json:"device"`
	OS        string    `gorm:"size:100" json:"os,omitempty"`
	Location  string    `gorm:"size:255;default:'Unknown'" json:"location"`
}
