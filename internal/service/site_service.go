package service

import (
	"errors"
	"net"
	"strings"

	"github.com/sweetbliss/internal/db"
	"gorm.io/gorm"
)

var ErrSiteNotFound = errors.New("site not found")

// SiteService resolves which page tree a request is served from.
type SiteService struct {
	db *gorm.DB
}

// NewSiteService returns a new SiteService instance.
func NewSiteService(gdb *gorm.DB) *SiteService {
	return &SiteService{db: gdb}
}

// Default returns the site flagged as default.
func (s *SiteService) Default() (*db.Site, error) {
	var site db.Site
	if err := s.db.Where("is_default_site = ?", true).First(&site).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSiteNotFound
		}
		return nil, err
	}
	return &site, nil
}

// GetOrCreateDefault returns the default site, creating it from defaults when
// none exists. The boolean reports whether a row was created.
func (s *SiteService) GetOrCreateDefault(defaults db.Site) (*db.Site, bool, error) {
	site, err := s.Default()
	if err == nil {
		return site, false, nil
	}
	if !errors.Is(err, ErrSiteNotFound) {
		return nil, false, err
	}

	created := defaults
	created.ID = 0
	created.IsDefaultSite = true
	created.Hostname = strings.ToLower(strings.TrimSpace(created.Hostname))
	if created.Hostname == "" {
		created.Hostname = "localhost"
	}
	if created.Port == 0 {
		created.Port = 80
	}
	if err := s.db.Create(&created).Error; err != nil {
		return nil, false, err
	}
	return &created, true, nil
}

// Repoint moves a site onto a new root page and renames it.
func (s *SiteService) Repoint(siteID, rootPageID uint, siteName string) error {
	result := s.db.Model(&db.Site{}).Where("id = ?", siteID).Updates(map[string]any{
		"root_page_id": rootPageID,
		"site_name":    strings.TrimSpace(siteName),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSiteNotFound
	}
	return nil
}

// ForHost matches a request host against configured hostnames and falls back
// to the default site.
func (s *SiteService) ForHost(host string) (*db.Site, error) {
	hostname := strings.ToLower(strings.TrimSpace(host))
	if h, _, err := net.SplitHostPort(hostname); err == nil {
		hostname = h
	}
	if hostname != "" {
		var site db.Site
		err := s.db.Where("hostname = ?", hostname).Order("is_default_site desc").Order("id asc").First(&site).Error
		if err == nil {
			return &site, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	return s.Default()
}

// List returns every configured site.
func (s *SiteService) List() ([]db.Site, error) {
	var sites []db.Site
	if err := s.db.Order("id asc").Find(&sites).Error; err != nil {
		return nil, err
	}
	return sites, nil
}
