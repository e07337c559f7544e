package bootstrap

import (
	"github.com/sweetbliss/internal/db"
	"github.com/sweetbliss/internal/service"
	"gorm.io/gorm"
)

// PageTree is the part of the page tree the procedure drives.
type PageTree interface {
	Roots() ([]db.Page, error)
	AtDepth(depth int) ([]db.Page, error)
	FirstOfType(pageType string) (*db.Page, error)
	FindBySlug(pageType, slug string) (*db.Page, error)
	DeletePage(id uint) error
	AddChild(parentID uint, page *db.Page) error
	AppendChildManually(parentID uint, page *db.Page) error
	SaveRevision(pageID uint) (*db.PageRevision, error)
	Publish(pageID, revisionID uint) (*db.Page, error)
}

// Sites reconciles the default site.
type Sites interface {
	Default() (*db.Site, error)
	GetOrCreateDefault(defaults db.Site) (*db.Site, bool, error)
	Repoint(siteID, rootPageID uint, siteName string) error
}

// Catalogue seeds categories, partners, brands and products.
type Catalogue interface {
	EnsureCategory(category db.ProductCategory) (*db.ProductCategory, bool, error)
	EnsurePartner(partner db.Partner) (*db.Partner, bool, error)
	EnsureBrand(brand db.Brand) (*db.Brand, bool, error)
	EnsureProduct(product db.Product) (*db.Product, bool, error)
	FindPartnerByName(name string) (*db.Partner, error)
	FindBrandByName(name string) (*db.Brand, error)
	FindCategoryByName(name string) (*db.ProductCategory, error)
}

// Team seeds team members.
type Team interface {
	EnsureMember(member db.TeamMember) (*db.TeamMember, bool, error)
}

// SEOSettings reads and writes the per-site SEO settings.
type SEOSettings interface {
	ForSite(siteID uint) (*db.GlobalSEOSettings, error)
	Save(settings *db.GlobalSEOSettings) error
}

// Store bundles everything the procedure writes to.
type Store struct {
	Pages     PageTree
	Sites     Sites
	Catalogue Catalogue
	Team      Team
	SEO       SEOSettings
}

// NewStore wires the gorm-backed services.
func NewStore(gdb *gorm.DB) Store {
	return Store{
		Pages:     service.NewPageService(gdb),
		Sites:     service.NewSiteService(gdb),
		Catalogue: service.NewCatalogueService(gdb, 0),
		Team:      service.NewTeamService(gdb),
		SEO:       service.NewSEOSettingsService(gdb),
	}
}
