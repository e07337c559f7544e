package db

import "time"

// GlobalSEOSettings holds the per-site SEO and business defaults.
type GlobalSEOSettings struct {
	ID                     uint   `gorm:"primaryKey"`
	SiteID                 uint   `gorm:"uniqueIndex;not null"`
	SiteName               string `gorm:"size:100"`
	DefaultMetaDescription string `gorm:"size:160"`
	DefaultOGImageURL      string `gorm:"size:512"`
	GoogleAnalyticsID      string `gorm:"size:20"`
	GoogleTagManagerID     string `gorm:"size:20"`
	FacebookPixelID        string `gorm:"size:20"`
	GoogleSiteVerification string `gorm:"size:100"`
	BingSiteVerification   string `gorm:"size:100"`
	CompanyName            string `gorm:"size:100"`
	CompanyDescription     string `gorm:"type:text"`
	CompanyLogoURL         string `gorm:"size:512"`
	CompanyPhone           string `gorm:"size:20"`
	CompanyEmail           string `gorm:"size:254"`
	CompanyAddress         string `gorm:"type:text"`
	FacebookURL            string `gorm:"size:512"`
	TwitterURL             string `gorm:"size:512"`
	InstagramURL           string `gorm:"size:512"`
	LinkedInURL            string `gorm:"column:linkedin_url;size:512"`
	YouTubeURL             string `gorm:"column:youtube_url;size:512"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// TableName keeps the table name singular like the settings object it models.
func (GlobalSEOSettings) TableName() string {
	return "global_seo_settings"
}
