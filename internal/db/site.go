package db

import "time"

// Site binds a hostname to the page that serves as its root. At most one
// site may be flagged as the default.
type Site struct {
	ID            uint   `gorm:"primaryKey"`
	Hostname      string `gorm:"size:255;not null;uniqueIndex:idx_sites_host_port"`
	Port          int    `gorm:"not null;uniqueIndex:idx_sites_host_port"`
	SiteName      string `gorm:"size:255"`
	RootPageID    uint   `gorm:"index"`
	IsDefaultSite bool   `gorm:"uniqueIndex:idx_sites_default,where:is_default_site = true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
