package db

import (
	"time"

	"gorm.io/datatypes"
)

// ProductCategory groups products, e.g. "Snacks & Crisps".
type ProductCategory struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;uniqueIndex;not null"`
	Description string `gorm:"type:text"`
	Icon        string `gorm:"size:50"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Partner is a manufacturer or principal the company distributes for.
type Partner struct {
	ID              uint   `gorm:"primaryKey"`
	Name            string `gorm:"size:200;uniqueIndex;not null"`
	Description     string `gorm:"type:text"`
	CountryOfOrigin string `gorm:"size:100"`
	WebsiteURL      string `gorm:"size:512"`
	LogoURL         string `gorm:"size:512"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Brand is a consumer brand, optionally owned by a partner.
type Brand struct {
	ID              uint   `gorm:"primaryKey"`
	Name            string `gorm:"size:100;uniqueIndex;not null"`
	Description     string `gorm:"type:text"`
	CountryOfOrigin string `gorm:"size:100"`
	WebsiteURL      string `gorm:"size:512"`
	LogoURL         string `gorm:"size:512"`
	PartnerID       *uint  `gorm:"index"`
	Partner         *Partner
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Product is a catalogue item. Specifications is free-form JSON such as
// {"weight": "165g"}.
type Product struct {
	ID             uint   `gorm:"primaryKey"`
	Name           string `gorm:"size:200;index;not null"`
	Slug           string `gorm:"size:255;uniqueIndex;not null"`
	Description    string `gorm:"type:text"`
	CategoryID     uint   `gorm:"index;not null"`
	Category       ProductCategory
	BrandID        uint `gorm:"index;not null"`
	Brand          Brand
	ImageURL       string `gorm:"size:512"`
	Specifications datatypes.JSONMap
	IsFeatured     bool `gorm:"index"`
	IsActive       bool `gorm:"index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
