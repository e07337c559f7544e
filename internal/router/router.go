package router

import (
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/sweetbliss/internal/handler"
	"go.uber.org/zap"
)

const sessionName = "sweetbliss_session"

// Options configures the engine.
type Options struct {
	SessionSecret string
	UploadDir     string
	UploadURLPath string
	Logger        *zap.Logger
}

// SetupRouter builds the Gin engine with every public and admin route.
func SetupRouter(api *handler.API, opts Options) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(RequestLogger(logger), Recovery(logger))

	store := cookie.NewStore([]byte(opts.SessionSecret))
	store.Options(sessions.Options{Path: "/", MaxAge: 7 * 24 * 60 * 60, HttpOnly: true})
	r.Use(sessions.Sessions(sessionName, store))

	if opts.UploadDir != "" {
		uploadPath := "/" + strings.Trim(opts.UploadURLPath, "/")
		if uploadPath == "/" {
			uploadPath = "/uploads"
		}
		r.Static(uploadPath, opts.UploadDir)
	}

	r.GET("/healthz", api.HealthCheck)

	public := r.Group("/api")
	{
		public.GET("/pages/*path", api.ShowPage)
		public.GET("/products", api.ListProducts)
		public.GET("/products/:slug", api.GetProduct)
		public.GET("/search", api.SearchProducts)
		public.GET("/brands", api.ListBrands)
		public.GET("/categories", api.ListCategories)
		public.GET("/partners", api.ListPartners)
		public.GET("/team", api.ListTeam)
		public.GET("/seo", api.GetSEOSettings)
		public.POST("/contact", api.SubmitContact)
	}

	admin := r.Group("/admin/api")
	{
		admin.POST("/login", api.Login)
		admin.POST("/logout", api.Logout)

		auth := admin.Group("")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("/pages", api.AdminListPages)
			auth.GET("/pages/:id", api.AdminGetPage)
			auth.PUT("/pages/:id", api.AdminUpdatePage)
			auth.GET("/pages/:id/revisions", api.AdminPageRevisions)
			auth.POST("/pages/:id/publish", api.AdminPublishPage)
			auth.POST("/pages/:id/unpublish", api.AdminUnpublishPage)

			auth.GET("/seo", api.GetSEOSettings)
			auth.PUT("/seo", api.UpdateSEOSettings)

			auth.GET("/contact-submissions", api.ListContactSubmissions)

			auth.GET("/redirects", api.ListRedirects)
			auth.POST("/redirects", api.CreateRedirect)
			auth.DELETE("/redirects/:id", api.DeleteRedirect)

			auth.POST("/uploads", api.UploadImage)
		}
	}

	r.NoRoute(api.NotFound)
	return r
}
