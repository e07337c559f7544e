package service

import (
	"fmt"
	"strings"

	"github.com/sweetbliss/internal/db"
	"github.com/sweetbliss/internal/seo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SEOSettingsInput carries the editable global SEO values. Every field is
// written as given; empty strings clear the stored value.
type SEOSettingsInput struct {
	SiteName               string
	DefaultMetaDescription string
	DefaultOGImageURL      string
	GoogleAnalyticsID      string
	GoogleTagManagerID     string
	FacebookPixelID        string
	GoogleSiteVerification string
	BingSiteVerification   string
	CompanyName            string
	CompanyDescription     string
	CompanyLogoURL         string
	CompanyPhone           string
	CompanyEmail           string
	CompanyAddress         string
	FacebookURL            string
	TwitterURL             string
	InstagramURL           string
	LinkedInURL            string
	YouTubeURL             string
}

// SEOSettingsService stores the per-site global SEO settings.
type SEOSettingsService struct {
	db *gorm.DB
}

// NewSEOSettingsService returns a new SEOSettingsService instance.
func NewSEOSettingsService(gdb *gorm.DB) *SEOSettingsService {
	return &SEOSettingsService{db: gdb}
}

// ForSite returns the settings row of a site, creating it with brand defaults
// on first access.
func (s *SEOSettingsService) ForSite(siteID uint) (*db.GlobalSEOSettings, error) {
	defaults := db.GlobalSEOSettings{
		SiteID:                 siteID,
		SiteName:               seo.BrandSiteName,
		DefaultMetaDescription: seo.BrandDescription,
	}
	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "site_id"}},
		DoNothing: true,
	}).Create(&defaults).Error; err != nil {
		return nil, fmt.Errorf("create seo settings for site %d: %w", siteID, err)
	}

	var settings db.GlobalSEOSettings
	if err := s.db.Where("site_id = ?", siteID).First(&settings).Error; err != nil {
		return nil, fmt.Errorf("load seo settings for site %d: %w", siteID, err)
	}
	return &settings, nil
}

// Save persists a settings row as is.
func (s *SEOSettingsService) Save(settings *db.GlobalSEOSettings) error {
	if settings == nil {
		return fmt.Errorf("seo settings are required")
	}
	return s.db.Save(settings).Error
}

// Update overwrites the settings of a site with trimmed input values.
func (s *SEOSettingsService) Update(siteID uint, input SEOSettingsInput) (*db.GlobalSEOSettings, error) {
	settings, err := s.ForSite(siteID)
	if err != nil {
		return nil, err
	}

	settings.SiteName = strings.TrimSpace(input.SiteName)
	settings.DefaultMetaDescription = truncateRunes(strings.TrimSpace(input.DefaultMetaDescription), seo.DescriptionLimit)
	settings.DefaultOGImageURL = strings.TrimSpace(input.DefaultOGImageURL)
	settings.GoogleAnalyticsID = strings.TrimSpace(input.GoogleAnalyticsID)
	settings.GoogleTagManagerID = strings.TrimSpace(input.GoogleTagManagerID)
	settings.FacebookPixelID = strings.TrimSpace(input.FacebookPixelID)
	settings.GoogleSiteVerification = strings.TrimSpace(input.GoogleSiteVerification)
	settings.BingSiteVerification = strings.TrimSpace(input.BingSiteVerification)
	settings.CompanyName = strings.TrimSpace(input.CompanyName)
	settings.CompanyDescription = strings.TrimSpace(input.CompanyDescription)
	settings.CompanyLogoURL = strings.TrimSpace(input.CompanyLogoURL)
	settings.CompanyPhone = strings.TrimSpace(input.CompanyPhone)
	settings.CompanyEmail = strings.TrimSpace(input.CompanyEmail)
	settings.CompanyAddress = strings.TrimSpace(input.CompanyAddress)
	settings.FacebookURL = strings.TrimSpace(input.FacebookURL)
	settings.TwitterURL = strings.TrimSpace(input.TwitterURL)
	settings.InstagramURL = strings.TrimSpace(input.InstagramURL)
	settings.LinkedInURL = strings.TrimSpace(input.LinkedInURL)
	settings.YouTubeURL = strings.TrimSpace(input.YouTubeURL)

	if err := s.db.Save(settings).Error; err != nil {
		return nil, fmt.Errorf("update seo settings: %w", err)
	}
	return settings, nil
}

// Defaults turns stored settings into the last links of the page metadata
// fallback chains.
func Defaults(settings *db.GlobalSEOSettings) seo.Defaults {
	if settings == nil {
		return seo.BrandDefaults()
	}
	return seo.Defaults{SiteName: settings.SiteName, Description: settings.DefaultMetaDescription}
}

func truncateRunes(value string, limit int) string {
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	return string(runes[:limit])
}
