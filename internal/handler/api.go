package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sweetbliss/internal/db"
	"github.com/sweetbliss/internal/service"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Options configures the handler set.
type Options struct {
	UploadDir   string
	UploadURL   string
	SearchLimit int
	PageSize    int
	Logger      *zap.Logger
}

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db        *gorm.DB
	pages     *service.PageService
	sites     *service.SiteService
	seo       *service.SEOSettingsService
	catalogue *service.CatalogueService
	team      *service.TeamService
	contacts  *service.ContactService
	redirects *service.RedirectService
	log       *zap.Logger
	uploadDir string
	uploadURL string
	pageSize  int
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, opts Options) *API {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = service.DefaultPageSize
	}

	return &API{
		db:        gdb,
		pages:     service.NewPageService(gdb),
		sites:     service.NewSiteService(gdb),
		seo:       service.NewSEOSettingsService(gdb),
		catalogue: service.NewCatalogueService(gdb, opts.SearchLimit),
		team:      service.NewTeamService(gdb),
		contacts:  service.NewContactService(gdb),
		redirects: service.NewRedirectService(gdb),
		log:       logger,
		uploadDir: opts.UploadDir,
		uploadURL: opts.UploadURL,
		pageSize:  pageSize,
	}
}

// DB exposes the underlying gorm instance.
func (a *API) DB() *gorm.DB {
	return a.db
}

// siteFor resolves the site serving the request host.
func (a *API) siteFor(c *gin.Context) (*db.Site, error) {
	return a.sites.ForHost(c.Request.Host)
}
