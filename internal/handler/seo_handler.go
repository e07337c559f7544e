package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sweetbliss/internal/db"
	"github.com/sweetbliss/internal/service"
	"go.uber.org/zap"
)

type seoSettingsRequest struct {
	SiteName               string `json:"site_name"`
	DefaultMetaDescription string `json:"default_meta_description"`
	DefaultOGImageURL      string `json:"default_og_image_url"`
	GoogleAnalyticsID      string `json:"google_analytics_id"`
	GoogleTagManagerID     string `json:"google_tag_manager_id"`
	FacebookPixelID        string `json:"facebook_pixel_id"`
	GoogleSiteVerification string `json:"google_site_verification"`
	BingSiteVerification   string `json:"bing_site_verification"`
	CompanyName            string `json:"company_name"`
	CompanyDescription     string `json:"company_description"`
	CompanyLogoURL         string `json:"company_logo_url"`
	CompanyPhone           string `json:"company_phone"`
	CompanyEmail           string `json:"company_email"`
	CompanyAddress         string `json:"company_address"`
	FacebookURL            string `json:"facebook_url"`
	TwitterURL             string `json:"twitter_url"`
	InstagramURL           string `json:"instagram_url"`
	LinkedInURL            string `json:"linkedin_url"`
	YouTubeURL             string `json:"youtube_url"`
}

func seoSettingsJSON(s *db.GlobalSEOSettings) gin.H {
	return gin.H{
		"site_id":                  s.SiteID,
		"site_name":                s.SiteName,
		"default_meta_description": s.DefaultMetaDescription,
		"default_og_image_url":     s.DefaultOGImageURL,
		"google_analytics_id":      s.GoogleAnalyticsID,
		"google_tag_manager_id":    s.GoogleTagManagerID,
		"facebook_pixel_id":        s.FacebookPixelID,
		"google_site_verification": s.GoogleSiteVerification,
		"bing_site_verification":   s.BingSiteVerification,
		"company_name":             s.CompanyName,
		"company_description":      s.CompanyDescription,
		"company_logo_url":         s.CompanyLogoURL,
		"company_phone":            s.CompanyPhone,
		"company_email":            s.CompanyEmail,
		"company_address":          s.CompanyAddress,
		"facebook_url":             s.FacebookURL,
		"twitter_url":              s.TwitterURL,
		"instagram_url":            s.InstagramURL,
		"linkedin_url":             s.LinkedInURL,
		"youtube_url":              s.YouTubeURL,
		"updated_at":               s.UpdatedAt,
	}
}

func (a *API) settingsForRequest(c *gin.Context) (*db.GlobalSEOSettings, bool) {
	site, err := a.siteFor(c)
	if err != nil {
		if errors.Is(err, service.ErrSiteNotFound) {
			respondError(c, http.StatusNotFound, "Site is not configured")
			return nil, false
		}
		respondError(c, http.StatusInternalServerError, "Failed to resolve site")
		return nil, false
	}
	settings, err := a.seo.ForSite(site.ID)
	if err != nil {
		a.log.Error("load seo settings failed", zap.Uint("site_id", site.ID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to load SEO settings")
		return nil, false
	}
	return settings, true
}

// GetSEOSettings returns the global SEO settings of the requesting site.
func (a *API) GetSEOSettings(c *gin.Context) {
	settings, ok := a.settingsForRequest(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": seoSettingsJSON(settings)})
}

// UpdateSEOSettings overwrites the global SEO settings of the requesting site.
func (a *API) UpdateSEOSettings(c *gin.Context) {
	var req seoSettingsRequest
	if !bindJSON(c, &req, "Invalid SEO settings payload") {
		return
	}
	current, ok := a.settingsForRequest(c)
	if !ok {
		return
	}

	settings, err := a.seo.Update(current.SiteID, service.SEOSettingsInput{
		SiteName:               req.SiteName,
		DefaultMetaDescription: req.DefaultMetaDescription,
		DefaultOGImageURL:      req.DefaultOGImageURL,
		GoogleAnalyticsID:      req.GoogleAnalyticsID,
		GoogleTagManagerID:     req.GoogleTagManagerID,
		FacebookPixelID:        req.FacebookPixelID,
		GoogleSiteVerification: req.GoogleSiteVerification,
		BingSiteVerification:   req.BingSiteVerification,
		CompanyName:            req.CompanyName,
		CompanyDescription:     req.CompanyDescription,
		CompanyLogoURL:         req.CompanyLogoURL,
		CompanyPhone:           req.CompanyPhone,
		CompanyEmail:           req.CompanyEmail,
		CompanyAddress:         req.CompanyAddress,
		FacebookURL:            req.FacebookURL,
		TwitterURL:             req.TwitterURL,
		InstagramURL:           req.InstagramURL,
		LinkedInURL:            req.LinkedInURL,
		YouTubeURL:             req.YouTubeURL,
	})
	if err != nil {
		a.log.Error("update seo settings failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to save SEO settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "SEO settings saved", "settings": seoSettingsJSON(settings)})
}
