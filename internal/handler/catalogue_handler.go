package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sweetbliss/internal/db"
	"github.com/sweetbliss/internal/service"
	"go.uber.org/zap"
)

func productJSON(p db.Product) gin.H {
	return gin.H{
		"id":             p.ID,
		"name":           p.Name,
		"slug":           p.Slug,
		"description":    p.Description,
		"image_url":      p.ImageURL,
		"specifications": p.Specifications,
		"is_featured":    p.IsFeatured,
		"brand":          p.Brand.Name,
		"category":       p.Category.Name,
		"created_at":     p.CreatedAt,
	}
}

func productsJSON(products []db.Product) []gin.H {
	out := make([]gin.H, 0, len(products))
	for _, p := range products {
		out = append(out, productJSON(p))
	}
	return out
}

func brandJSON(b db.Brand) gin.H {
	item := gin.H{
		"id":                b.ID,
		"name":              b.Name,
		"description":       b.Description,
		"country_of_origin": b.CountryOfOrigin,
		"website_url":       b.WebsiteURL,
		"logo_url":          b.LogoURL,
	}
	if b.Partner != nil {
		item["partner"] = b.Partner.Name
	}
	return item
}

func brandsJSON(brands []db.Brand) []gin.H {
	out := make([]gin.H, 0, len(brands))
	for _, b := range brands {
		out = append(out, brandJSON(b))
	}
	return out
}

func categoriesJSON(categories []db.ProductCategory) []gin.H {
	out := make([]gin.H, 0, len(categories))
	for _, c := range categories {
		out = append(out, gin.H{
			"id":          c.ID,
			"name":        c.Name,
			"description": c.Description,
			"icon":        c.Icon,
		})
	}
	return out
}

func teamJSON(members []db.TeamMember) []gin.H {
	out := make([]gin.H, 0, len(members))
	for _, m := range members {
		out = append(out, gin.H{
			"id":           m.ID,
			"name":         m.Name,
			"position":     m.Position,
			"bio":          m.Bio,
			"photo_url":    m.PhotoURL,
			"email":        m.Email,
			"phone":        m.Phone,
			"linkedin_url": m.LinkedInURL,
		})
	}
	return out
}

// ListProducts pages through active products with optional filters.
func (a *API) ListProducts(c *gin.Context) {
	result, err := a.catalogue.ListProducts(service.ProductFilter{
		Search:       c.Query("q"),
		Category:     c.Query("category"),
		Brand:        c.Query("brand"),
		FeaturedOnly: parseBoolQuery(c.Query("featured")),
		Page:         parsePositiveInt(c.DefaultQuery("page", "1"), 1),
		PerPage:      a.pageSize,
	})
	if err != nil {
		a.log.Error("list products failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to load products")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products":    productsJSON(result.Products),
		"total":       result.Total,
		"page":        result.Page,
		"per_page":    result.PerPage,
		"total_pages": result.TotalPages,
	})
}

// SearchProducts answers the capped catalogue search.
func (a *API) SearchProducts(c *gin.Context) {
	query := service.SearchQuery{
		Text:     c.Query("q"),
		Category: c.Query("category"),
		Brand:    c.Query("brand"),
	}
	products, err := a.catalogue.Search(query)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Search failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":    strings.TrimSpace(query.Text),
		"category": strings.TrimSpace(query.Category),
		"brand":    strings.TrimSpace(query.Brand),
		"products": productsJSON(products),
	})
}

// GetProduct returns one active product by slug.
func (a *API) GetProduct(c *gin.Context) {
	product, err := a.catalogue.GetProductBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, http.StatusNotFound, "Product not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to load product")
		return
	}

	item := productJSON(*product)
	item["brand"] = brandJSON(product.Brand)
	c.JSON(http.StatusOK, gin.H{"product": item})
}

// ListBrands returns every brand.
func (a *API) ListBrands(c *gin.Context) {
	brands, err := a.catalogue.ListBrands(0)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load brands")
		return
	}
	c.JSON(http.StatusOK, gin.H{"brands": brandsJSON(brands)})
}

// ListCategories returns every product category.
func (a *API) ListCategories(c *gin.Context) {
	categories, err := a.catalogue.ListCategories()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load categories")
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categoriesJSON(categories)})
}

// ListPartners returns every partner.
func (a *API) ListPartners(c *gin.Context) {
	partners, err := a.catalogue.ListPartners()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load partners")
		return
	}

	response := make([]gin.H, 0, len(partners))
	for _, p := range partners {
		response = append(response, gin.H{
			"id":                p.ID,
			"name":              p.Name,
			"description":       p.Description,
			"country_of_origin": p.CountryOfOrigin,
			"website_url":       p.WebsiteURL,
			"logo_url":          p.LogoURL,
		})
	}
	c.JSON(http.StatusOK, gin.H{"partners": response})
}

// ListTeam returns the active team members.
func (a *API) ListTeam(c *gin.Context) {
	members, err := a.team.ListActive(0)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load team")
		return
	}
	c.JSON(http.StatusOK, gin.H{"team": teamJSON(members)})
}
