package handler

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sweetbliss/internal/content"
	"github.com/sweetbliss/internal/db"
	"github.com/sweetbliss/internal/seo"
	"github.com/sweetbliss/internal/service"
)

func TestShowPageServesHomepage(t *testing.T) {
	api, gdb := newTestAPI(t)
	seedSite(t, gdb)
	r := newTestEngine(api)

	w := doJSON(t, r, http.MethodGet, "/api/pages/", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeBody(t, w)

	page := body["page"].(map[string]any)
	assert.Equal(t, content.TypeHome, page["type"])
	assert.Equal(t, "/", page["url"])
	assert.Equal(t, "Sweet Bliss", page["fields"].(map[string]any)["hero_title"])

	meta := body["meta"].(map[string]any)
	assert.Equal(t, "Sweet Bliss - Premium FMCG Distribution | Global Brands Pakistan", meta["title"])
	assert.Equal(t, "index, follow", meta["robots"])
	assert.Equal(t, seo.SchemaWebsite, meta["schema_type"])

	extra := body["context"].(map[string]any)
	assert.Len(t, extra["featured_products"], 6)
	assert.Len(t, extra["team_members"], 3)

	menu := body["menu"].([]any)
	require.Len(t, menu, 7)
	assert.Equal(t, "/about/", menu[0].(map[string]any)["url"])
}

func TestShowPageOrdersSections(t *testing.T) {
	api, gdb := newTestAPI(t)
	seedSite(t, gdb)
	r := newTestEngine(api)

	w := doJSON(t, r, http.MethodGet, "/api/pages/about/", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeBody(t, w)

	sections := body["page"].(map[string]any)["sections"].([]any)
	keys := make([]string, 0, len(sections))
	for _, s := range sections {
		keys = append(keys, s.(map[string]any)["key"].(string))
	}
	assert.Equal(t, []string{"introduction", "mission", "vision", "values"}, keys)

	extra := body["context"].(map[string]any)
	assert.Len(t, extra["team_members"], 3)
	assert.Len(t, extra["brands"], 6)
}

func TestShowPageHidesUnpublishedPages(t *testing.T) {
	api, gdb := newTestAPI(t)
	seedSite(t, gdb)
	r := newTestEngine(api)

	pages := service.NewPageService(gdb)
	home, err := pages.FirstOfType(content.TypeHome)
	require.NoError(t, err)
	draft := db.PageFromDefinition(content.Definition{
		Type:  content.TypePlaceholder,
		Title: "Careers",
		Slug:  "careers",
		SEO:   seo.DefaultFields(),
	})
	require.NoError(t, pages.AddChild(home.ID, draft))

	w := doJSON(t, r, http.MethodGet, "/api/pages/careers", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/pages/no-such-page", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductsPageFiltersByCategory(t *testing.T) {
	api, gdb := newTestAPI(t)
	seedSite(t, gdb)
	r := newTestEngine(api)

	w := doJSON(t, r, http.MethodGet, "/api/pages/products/?category=Beverages%20%26%20Drinks", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	extra := decodeBody(t, w)["context"].(map[string]any)
	assert.Equal(t, "Beverages & Drinks", extra["selected_category"])
	products := extra["products"].([]any)
	require.Len(t, products, 2)
	for _, p := range products {
		assert.Equal(t, "Beverages & Drinks", p.(map[string]any)["category"])
	}
	assert.Len(t, extra["categories"], 5)
}

func TestAdminDraftIsServedOnlyAfterPublish(t *testing.T) {
	api, gdb := newTestAPI(t)
	seedSite(t, gdb)
	r := newTestEngine(api)

	about, err := service.NewPageService(gdb).FindBySlug(content.TypeAbout, "about")
	require.NoError(t, err)
	target := "/admin/api/pages/" + strconv.Itoa(int(about.ID))

	w := doJSON(t, r, http.MethodPut, target, map[string]any{
		"title": "About Us",
		"sections": []map[string]string{
			{"key": "mission", "content": "We **deliver** joy.", "format": "markdown"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	live := decodeBody(t, doJSON(t, r, http.MethodGet, "/api/pages/about/", nil))
	assert.Equal(t, "About Sweet Bliss", live["page"].(map[string]any)["title"])

	w = doJSON(t, r, http.MethodPost, target+"/publish", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	live = decodeBody(t, doJSON(t, r, http.MethodGet, "/api/pages/about/", nil))
	page := live["page"].(map[string]any)
	assert.Equal(t, "About Us", page["title"])
	sections := page["sections"].([]any)
	assert.Contains(t, sections[1].(map[string]any)["html"], "<strong>deliver</strong>")

	revisions := decodeBody(t, doJSON(t, r, http.MethodGet, target+"/revisions", nil))["revisions"].([]any)
	require.Len(t, revisions, 2)
	assert.Equal(t, true, revisions[0].(map[string]any)["live"])
}

func TestAdminUpdatePageRejectsUnknownSection(t *testing.T) {
	api, gdb := newTestAPI(t)
	seedSite(t, gdb)
	r := newTestEngine(api)

	team, err := service.NewPageService(gdb).FindBySlug(content.TypeTeam, "team")
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPut, "/admin/api/pages/"+strconv.Itoa(int(team.ID)), map[string]any{
		"sections": []map[string]string{{"key": "mission", "content": "x"}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, "/admin/api/pages/99999", map[string]any{"title": "Nope"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminPublishRejectsForeignRevision(t *testing.T) {
	api, gdb := newTestAPI(t)
	seedSite(t, gdb)
	r := newTestEngine(api)

	pages := service.NewPageService(gdb)
	about, err := pages.FindBySlug(content.TypeAbout, "about")
	require.NoError(t, err)
	team, err := pages.FindBySlug(content.TypeTeam, "team")
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPost, "/admin/api/pages/"+strconv.Itoa(int(about.ID))+"/publish",
		map[string]uint{"revision_id": *team.LatestRevisionID})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminUnpublishTakesPageOffline(t *testing.T) {
	api, gdb := newTestAPI(t)
	seedSite(t, gdb)
	r := newTestEngine(api)

	contact, err := service.NewPageService(gdb).FindBySlug(content.TypeContact, "contact")
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPost, "/admin/api/pages/"+strconv.Itoa(int(contact.ID))+"/unpublish", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/pages/contact/", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	list := decodeBody(t, doJSON(t, r, http.MethodGet, "/admin/api/pages", nil))
	assert.Len(t, list["pages"], 9)
}
