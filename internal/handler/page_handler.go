package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sweetbliss/internal/content"
	"github.com/sweetbliss/internal/db"
	"github.com/sweetbliss/internal/seo"
	"github.com/sweetbliss/internal/service"
	"go.uber.org/zap"
)

const (
	homeFeaturedLimit = 6
	homeTeamLimit     = 3
	aboutBrandLimit   = 9
)

// ShowPage serves a live page of the requesting site as JSON.
func (a *API) ShowPage(c *gin.Context) {
	site, err := a.siteFor(c)
	if err != nil {
		if errors.Is(err, service.ErrSiteNotFound) {
			respondError(c, http.StatusNotFound, "Site is not configured")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to resolve site")
		return
	}

	root, err := a.pages.Get(site.RootPageID)
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			respondError(c, http.StatusNotFound, "Page not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to load page")
		return
	}

	page, err := a.pages.ResolveLive(root, c.Param("path"))
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			respondError(c, http.StatusNotFound, "Page not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to load page")
		return
	}

	settings, err := a.seo.ForSite(site.ID)
	if err != nil {
		a.log.Warn("seo settings unavailable, using brand defaults", zap.Uint("site_id", site.ID), zap.Error(err))
		settings = nil
	}

	menuPages, err := a.pages.LiveMenuChildren(root.ID)
	if err != nil {
		a.log.Warn("menu unavailable", zap.Error(err))
	}
	menu := make([]gin.H, 0, len(menuPages))
	for _, m := range menuPages {
		menu = append(menu, gin.H{"title": m.Title, "url": relativeURL(root, &m)})
	}

	extra, err := a.pageContext(c, page)
	if err != nil {
		a.log.Error("page context failed", zap.String("page_type", page.PageType), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to load page")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":    publicPageJSON(root, page),
		"meta":    seo.Build(page.SEO, page.SEOCore(), service.Defaults(settings)),
		"menu":    menu,
		"context": extra,
	})
}

func publicPageJSON(root, page *db.Page) gin.H {
	body := page.Body.Data()
	schema, _ := content.SchemaFor(page.PageType)

	sections := make([]gin.H, 0, len(body.Sections))
	for _, sec := range schema.Ordered(body) {
		sections = append(sections, gin.H{
			"key":   sec.Key,
			"title": sec.Title,
			"html":  service.SanitizeRichText(sec.HTML),
		})
	}
	fields := body.Fields
	if fields == nil {
		fields = map[string]string{}
	}

	return gin.H{
		"id":        page.ID,
		"title":     page.Title,
		"type":      page.PageType,
		"slug":      page.Slug,
		"url":       relativeURL(root, page),
		"fields":    fields,
		"sections":  sections,
		"published": page.LastPublishedAt,
	}
}

// relativeURL maps a page's tree URL onto the path it is served at below the
// site root.
func relativeURL(root, page *db.Page) string {
	return "/" + strings.TrimPrefix(page.URLPath, root.URLPath)
}

// pageContext loads the catalogue data a page type renders alongside its body.
func (a *API) pageContext(c *gin.Context, page *db.Page) (gin.H, error) {
	switch page.PageType {
	case content.TypeHome:
		featured, err := a.catalogue.Featured(homeFeaturedLimit)
		if err != nil {
			return nil, err
		}
		team, err := a.team.ListActive(homeTeamLimit)
		if err != nil {
			return nil, err
		}
		return gin.H{"featured_products": productsJSON(featured), "team_members": teamJSON(team)}, nil

	case content.TypeAbout:
		team, err := a.team.ListActive(0)
		if err != nil {
			return nil, err
		}
		brands, err := a.catalogue.ListBrands(aboutBrandLimit)
		if err != nil {
			return nil, err
		}
		return gin.H{"team_members": teamJSON(team), "brands": brandsJSON(brands)}, nil

	case content.TypeProducts:
		categories, err := a.catalogue.ListCategories()
		if err != nil {
			return nil, err
		}
		selected := strings.TrimSpace(c.Query("category"))
		products, err := a.catalogue.ListProducts(service.ProductFilter{
			Category: selected,
			Page:     parsePositiveInt(c.DefaultQuery("page", "1"), 1),
			PerPage:  a.pageSize,
		})
		if err != nil {
			return nil, err
		}
		brands, err := a.catalogue.ListBrands(0)
		if err != nil {
			return nil, err
		}
		return gin.H{
			"categories":        categoriesJSON(categories),
			"selected_category": selected,
			"products":          productsJSON(products.Products),
			"total_pages":       products.TotalPages,
			"brands":            brandsJSON(brands),
		}, nil

	case content.TypeTeam:
		team, err := a.team.ListActive(0)
		if err != nil {
			return nil, err
		}
		return gin.H{"team_members": teamJSON(team)}, nil

	case content.TypePortfolio:
		categories, err := a.catalogue.ListCategories()
		if err != nil {
			return nil, err
		}
		brands, err := a.catalogue.ListBrands(0)
		if err != nil {
			return nil, err
		}
		return gin.H{"categories": categoriesJSON(categories), "brands": brandsJSON(brands)}, nil
	}
	return gin.H{}, nil
}

type sectionRequest struct {
	Key     string `json:"key" binding:"required"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Format  string `json:"format"`
}

type pageUpdateRequest struct {
	Title       *string           `json:"title"`
	ShowInMenus *bool             `json:"show_in_menus"`
	SEO         *seo.Fields       `json:"seo"`
	Fields      map[string]string `json:"fields"`
	Sections    []sectionRequest  `json:"sections"`
}

type publishRequest struct {
	RevisionID uint `json:"revision_id"`
}

func adminPageJSON(p *db.Page) gin.H {
	return gin.H{
		"id":                      p.ID,
		"parent_id":               p.ParentID,
		"title":                   p.Title,
		"slug":                    p.Slug,
		"page_type":               p.PageType,
		"path":                    p.Path,
		"depth":                   p.Depth,
		"num_child":               p.NumChild,
		"url_path":                p.URLPath,
		"show_in_menus":           p.ShowInMenus,
		"live":                    p.Live,
		"has_unpublished_changes": p.HasUnpublishedChanges,
		"latest_revision_id":      p.LatestRevisionID,
		"live_revision_id":        p.LiveRevisionID,
		"last_published_at":       p.LastPublishedAt,
		"updated_at":              p.UpdatedAt,
	}
}

// AdminListPages returns the whole page tree in depth-first order.
func (a *API) AdminListPages(c *gin.Context) {
	pages, err := a.pages.Tree()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load pages")
		return
	}
	response := make([]gin.H, 0, len(pages))
	for i := range pages {
		response = append(response, adminPageJSON(&pages[i]))
	}
	c.JSON(http.StatusOK, gin.H{"pages": response})
}

// AdminGetPage returns one page with its editable content.
func (a *API) AdminGetPage(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid page ID")
		return
	}
	page, err := a.pages.Get(id)
	if err != nil {
		a.respondPageError(c, err)
		return
	}

	item := adminPageJSON(page)
	item["seo"] = page.SEO
	item["body"] = page.Body.Data()
	if schema, ok := content.SchemaFor(page.PageType); ok {
		item["schema"] = gin.H{"fields": schema.Fields, "sections": schema.Sections}
	}
	c.JSON(http.StatusOK, gin.H{"page": item})
}

// AdminUpdatePage records a draft edit as a new revision.
func (a *API) AdminUpdatePage(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid page ID")
		return
	}

	var req pageUpdateRequest
	if !bindJSON(c, &req, "Invalid page payload") {
		return
	}

	input := service.PageDraftInput{
		Title:       req.Title,
		ShowInMenus: req.ShowInMenus,
		SEO:         req.SEO,
		Fields:      req.Fields,
	}
	for _, sec := range req.Sections {
		input.Sections = append(input.Sections, service.SectionInput{
			Key:     sec.Key,
			Title:   sec.Title,
			Content: sec.Content,
			Format:  sec.Format,
		})
	}

	page, revision, err := a.pages.UpdateDraft(id, input)
	if err != nil {
		a.respondPageError(c, err)
		return
	}

	a.log.Info("page draft saved", zap.Uint("page_id", page.ID), zap.Uint("revision_id", revision.ID))
	c.JSON(http.StatusOK, gin.H{
		"message":     "Draft saved",
		"page":        adminPageJSON(page),
		"revision_id": revision.ID,
	})
}

// AdminPageRevisions lists a page's revisions newest first.
func (a *API) AdminPageRevisions(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid page ID")
		return
	}
	page, err := a.pages.Get(id)
	if err != nil {
		a.respondPageError(c, err)
		return
	}
	revisions, err := a.pages.Revisions(id)
	if err != nil {
		a.respondPageError(c, err)
		return
	}

	response := make([]gin.H, 0, len(revisions))
	for _, rev := range revisions {
		response = append(response, gin.H{
			"id":         rev.ID,
			"title":      rev.Snapshot.Data().Title,
			"created_at": rev.CreatedAt,
			"live":       page.LiveRevisionID != nil && *page.LiveRevisionID == rev.ID,
		})
	}
	c.JSON(http.StatusOK, gin.H{"revisions": response})
}

// AdminPublishPage publishes the given revision, or the latest one when the
// body names none.
func (a *API) AdminPublishPage(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid page ID")
		return
	}

	var req publishRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req, "Invalid publish payload") {
		return
	}

	var page *db.Page
	if req.RevisionID == 0 {
		page, err = a.pages.PublishLatest(id)
	} else {
		page, err = a.pages.Publish(id, req.RevisionID)
	}
	if err != nil {
		a.respondPageError(c, err)
		return
	}

	a.log.Info("page published", zap.Uint("page_id", page.ID), zap.Uintp("revision_id", page.LiveRevisionID))
	c.JSON(http.StatusOK, gin.H{"message": "Page published", "page": adminPageJSON(page)})
}

// AdminUnpublishPage takes a page offline.
func (a *API) AdminUnpublishPage(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid page ID")
		return
	}
	page, err := a.pages.Unpublish(id)
	if err != nil {
		a.respondPageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Page unpublished", "page": adminPageJSON(page)})
}

func (a *API) respondPageError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPageNotFound), errors.Is(err, service.ErrRevisionNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrRevisionMismatch),
		errors.Is(err, service.ErrNoRevision),
		errors.Is(err, service.ErrRootPageImmutable),
		errors.Is(err, service.ErrTitleRequired),
		errors.Is(err, service.ErrMapEmbedURL),
		errors.Is(err, service.ErrInvalidSchemaType),
		errors.Is(err, service.ErrUnknownFormat),
		errors.Is(err, content.ErrUnknownField),
		errors.Is(err, content.ErrUnknownSection):
		respondError(c, http.StatusBadRequest, err.Error())
	default:
		a.log.Error("page operation failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Page operation failed")
	}
}
