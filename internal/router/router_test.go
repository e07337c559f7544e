package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sweetbliss/internal/db"
	"github.com/sweetbliss/internal/handler"
	"github.com/sweetbliss/internal/testutil"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB, string, *observer.ObservedLogs) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb := testutil.NewDB(t)
	uploadDir := t.TempDir()
	logger, logs := testutil.NewObservedLogger()

	api := handler.NewAPI(gdb, handler.Options{UploadDir: uploadDir, UploadURL: "/static/uploads", Logger: logger})
	r := SetupRouter(api, Options{
		SessionSecret: "test-secret",
		UploadDir:     uploadDir,
		UploadURLPath: "/static/uploads",
		Logger:        logger,
	})
	return r, gdb, uploadDir, logs
}

func TestSetupRouterServesUploads(t *testing.T) {
	r, _, uploadDir, _ := newTestRouter(t)

	fileContent := []byte("hello uploads")
	require.NoError(t, os.WriteFile(filepath.Join(uploadDir, "example.txt"), fileContent, 0o644))

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/static/uploads/example.txt", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, string(fileContent), rr.Body.String())
}

func TestAdminRoutesRequireSession(t *testing.T) {
	r, _, _, _ := newTestRouter(t)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/admin/api/pages", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/admin/api/contact-submissions", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func login(t *testing.T, r http.Handler, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(map[string]string{"username": username, "password": password})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/admin/api/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestLoginGrantsAdminAccess(t *testing.T) {
	r, gdb, _, _ := newTestRouter(t)
	created, err := db.EnsureUser(gdb, "admin", "s3cret")
	require.NoError(t, err)
	require.True(t, created)

	rr := login(t, r, "admin", "wrong")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = login(t, r, "admin", "s3cret")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	cookies := rr.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/admin/api/pages", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRequestLoggerAndRecovery(t *testing.T) {
	r, _, _, logs := newTestRouter(t)
	r.GET("/boom", func(*gin.Context) { panic("boom") })

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	assert.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
	requests := logs.FilterMessage("request").All()
	require.Len(t, requests, 2)
	assert.Equal(t, "/healthz", requests[0].ContextMap()["path"])
	assert.EqualValues(t, http.StatusInternalServerError, requests[1].ContextMap()["status"])
}
