package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/sweetbliss/internal/bootstrap"
	"github.com/sweetbliss/internal/db"
	"github.com/sweetbliss/internal/service"
	"github.com/sweetbliss/internal/testutil"
	"gorm.io/gorm"
)

func newTestAPI(t *testing.T) (*API, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	gdb := testutil.NewDB(t)
	api := NewAPI(gdb, Options{UploadDir: t.TempDir(), UploadURL: "/static/uploads"})
	return api, gdb
}

// seedSite runs the full launch bootstrap against gdb.
func seedSite(t *testing.T, gdb *gorm.DB) {
	t.Helper()
	pages := service.NewPageService(gdb)
	root, _, err := pages.EnsureInitialized()
	require.NoError(t, err)
	children, err := pages.Children(root.ID)
	require.NoError(t, err)
	require.NotEmpty(t, children)
	_, _, err = service.NewSiteService(gdb).GetOrCreateDefault(db.Site{Hostname: "localhost", Port: 80, RootPageID: children[0].ID})
	require.NoError(t, err)

	report := bootstrap.New(bootstrap.NewStore(gdb), bootstrap.DefaultSeed(), nil).Run()
	require.NoError(t, report.Err())
}

func newTestEngine(api *API) *gin.Engine {
	r := gin.New()
	r.GET("/healthz", api.HealthCheck)
	r.GET("/api/pages/*path", api.ShowPage)
	r.GET("/api/products", api.ListProducts)
	r.GET("/api/products/:slug", api.GetProduct)
	r.GET("/api/search", api.SearchProducts)
	r.GET("/api/brands", api.ListBrands)
	r.GET("/api/categories", api.ListCategories)
	r.GET("/api/partners", api.ListPartners)
	r.GET("/api/team", api.ListTeam)
	r.GET("/api/seo", api.GetSEOSettings)
	r.POST("/api/contact", api.SubmitContact)

	admin := r.Group("/admin/api")
	admin.GET("/pages", api.AdminListPages)
	admin.GET("/pages/:id", api.AdminGetPage)
	admin.PUT("/pages/:id", api.AdminUpdatePage)
	admin.GET("/pages/:id/revisions", api.AdminPageRevisions)
	admin.POST("/pages/:id/publish", api.AdminPublishPage)
	admin.POST("/pages/:id/unpublish", api.AdminUnpublishPage)
	admin.PUT("/seo", api.UpdateSEOSettings)
	admin.GET("/contact-submissions", api.ListContactSubmissions)
	admin.GET("/redirects", api.ListRedirects)
	admin.POST("/redirects", api.CreateRedirect)
	admin.DELETE("/redirects/:id", api.DeleteRedirect)
	admin.POST("/uploads", api.UploadImage)

	r.NoRoute(api.NotFound)
	return r
}

func doJSON(t *testing.T, r http.Handler, method, target string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}
