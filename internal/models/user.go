package models

import (
	"time"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserName     string    `gorm:"not null;size:80" json:"user_name"`
	Email        string    `gorm:"unique;not null;size:120" json:"email"`
	PasswordHash string    `gorm:"not null;size:255" json:"-"`
	CreatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	Links        []Link    `gorm:"foreignKey:UserID" json:"links,omitempty"`
}
