package db

import "time"

// RedirectRule maps a retired path to its replacement.
type RedirectRule struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	OldPath      string    `gorm:"size:255;uniqueIndex;not null" json:"old_path"`
	NewPath      string    `gorm:"size:255;not null" json:"new_path"`
	RedirectType int       `gorm:"not null" json:"redirect_type"`
	IsActive     bool      `gorm:"index" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
