package db

import "time"

// TeamMember is a person shown on the team and about pages.
type TeamMember struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;uniqueIndex;not null"`
	Position    string `gorm:"size:100"`
	Bio         string `gorm:"type:text"`
	PhotoURL    string `gorm:"size:512"`
	Email       string `gorm:"size:254"`
	Phone       string `gorm:"size:20"`
	LinkedInURL string `gorm:"column:linkedin_url;size:512"`
	SortOrder   int    `gorm:"index"`
	IsActive    bool   `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
