package service

import (
	"errors"
	"math"
	"strings"

	"github.com/sweetbliss/internal/content"
	"github.com/sweetbliss/internal/db"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrBrandNotFound    = errors.New("brand not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrPartnerNotFound  = errors.New("partner not found")
	ErrNameRequired     = errors.New("name is required")
)

const (
	DefaultSearchLimit = 20
	DefaultPageSize    = 12
)

// SearchQuery narrows the public product search. Text matches any of name,
// description or brand name; Category and Brand must match exactly.
type SearchQuery struct {
	Text     string
	Category string
	Brand    string
}

// ProductFilter drives the paginated product listing.
type ProductFilter struct {
	Search       string
	Category     string
	Brand        string
	FeaturedOnly bool
	Page         int
	PerPage      int
}

// ProductListResult is one page of products.
type ProductListResult struct {
	Products   []db.Product
	Total      int64
	Page       int
	PerPage    int
	TotalPages int
}

// CatalogueService manages categories, partners, brands and products.
type CatalogueService struct {
	db          *gorm.DB
	searchLimit int
}

// NewCatalogueService returns a new CatalogueService. A non-positive limit
// falls back to DefaultSearchLimit.
func NewCatalogueService(gdb *gorm.DB, searchLimit int) *CatalogueService {
	if searchLimit <= 0 {
		searchLimit = DefaultSearchLimit
	}
	return &CatalogueService{db: gdb, searchLimit: searchLimit}
}

func (s *CatalogueService) activeProducts() *gorm.DB {
	return s.db.Model(&db.Product{}).
		Joins("JOIN brands ON brands.id = products.brand_id").
		Joins("JOIN product_categories ON product_categories.id = products.category_id").
		Where("products.is_active = ?", true)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// containsPattern builds a LIKE pattern matching text literally anywhere.
func containsPattern(text string) string {
	return "%" + likeEscaper.Replace(text) + "%"
}

// likeAny ORs a case-insensitive LIKE over the columns.
func likeAny(columns ...string) string {
	parts := make([]string, len(columns))
	for i, col := range columns {
		parts[i] = "LOWER(" + col + `) LIKE ? ESCAPE '\'`
	}
	return strings.Join(parts, " OR ")
}

// Search returns up to the configured number of active products, newest first.
func (s *CatalogueService) Search(q SearchQuery) ([]db.Product, error) {
	query := s.activeProducts()

	if text := strings.ToLower(strings.TrimSpace(q.Text)); text != "" {
		like := containsPattern(text)
		query = query.Where(
			likeAny("products.name", "products.description", "brands.name"),
			like, like, like,
		)
	}
	query = exactNameFilters(query, q.Category, q.Brand)

	var products []db.Product
	if err := query.
		Preload("Brand").
		Preload("Category").
		Order("products.created_at desc").
		Order("products.id desc").
		Limit(s.searchLimit).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListProducts pages through active products. Its free-text search also
// matches category names.
func (s *CatalogueService) ListProducts(f ProductFilter) (*ProductListResult, error) {
	page := f.Page
	if page < 1 {
		page = 1
	}
	perPage := f.PerPage
	if perPage <= 0 {
		perPage = DefaultPageSize
	}
	if perPage > 100 {
		perPage = 100
	}

	query := s.activeProducts()
	if text := strings.ToLower(strings.TrimSpace(f.Search)); text != "" {
		like := containsPattern(text)
		query = query.Where(
			likeAny("products.name", "products.description", "brands.name", "product_categories.name"),
			like, like, like, like,
		)
	}
	query = exactNameFilters(query, f.Category, f.Brand)
	if f.FeaturedOnly {
		query = query.Where("products.is_featured = ?", true)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var products []db.Product
	if err := query.
		Preload("Brand").
		Preload("Category").
		Order("products.created_at desc").
		Order("products.id desc").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&products).Error; err != nil {
		return nil, err
	}

	return &ProductListResult{
		Products:   products,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: int(math.Ceil(float64(total) / float64(perPage))),
	}, nil
}

// Featured returns active featured products, newest first.
func (s *CatalogueService) Featured(limit int) ([]db.Product, error) {
	query := s.activeProducts().
		Where("products.is_featured = ?", true).
		Preload("Brand").
		Preload("Category").
		Order("products.created_at desc").
		Order("products.id desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var products []db.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// GetProductBySlug loads one active product.
func (s *CatalogueService) GetProductBySlug(slug string) (*db.Product, error) {
	var product db.Product
	if err := s.activeProducts().
		Preload("Brand").
		Preload("Brand.Partner").
		Preload("Category").
		Where("products.slug = ?", strings.ToLower(strings.TrimSpace(slug))).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// ListCategories returns every category by name.
func (s *CatalogueService) ListCategories() ([]db.ProductCategory, error) {
	var categories []db.ProductCategory
	if err := s.db.Order("name asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// ListBrands returns brands by name with their partner. A positive limit caps
// the result.
func (s *CatalogueService) ListBrands(limit int) ([]db.Brand, error) {
	query := s.db.Preload("Partner").Order("name asc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var brands []db.Brand
	if err := query.Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

// ListPartners returns every partner by name.
func (s *CatalogueService) ListPartners() ([]db.Partner, error) {
	var partners []db.Partner
	if err := s.db.Order("name asc").Find(&partners).Error; err != nil {
		return nil, err
	}
	return partners, nil
}

// FindCategoryByName matches a category name case-insensitively.
func (s *CatalogueService) FindCategoryByName(name string) (*db.ProductCategory, error) {
	var category db.ProductCategory
	if err := findByName(s.db, &category, name); err != nil {
		return nil, notFoundAs(err, ErrCategoryNotFound)
	}
	return &category, nil
}

// FindBrandByName matches a brand name case-insensitively.
func (s *CatalogueService) FindBrandByName(name string) (*db.Brand, error) {
	var brand db.Brand
	if err := findByName(s.db, &brand, name); err != nil {
		return nil, notFoundAs(err, ErrBrandNotFound)
	}
	return &brand, nil
}

// FindPartnerByName matches a partner name case-insensitively.
func (s *CatalogueService) FindPartnerByName(name string) (*db.Partner, error) {
	var partner db.Partner
	if err := findByName(s.db, &partner, name); err != nil {
		return nil, notFoundAs(err, ErrPartnerNotFound)
	}
	return &partner, nil
}

// EnsureCategory creates the category unless one with the same name exists.
func (s *CatalogueService) EnsureCategory(category db.ProductCategory) (*db.ProductCategory, bool, error) {
	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" {
		return nil, false, ErrNameRequired
	}
	return ensureRecord(s.db, category, "name", category.Name)
}

// EnsurePartner creates the partner unless one with the same name exists.
func (s *CatalogueService) EnsurePartner(partner db.Partner) (*db.Partner, bool, error) {
	partner.Name = strings.TrimSpace(partner.Name)
	if partner.Name == "" {
		return nil, false, ErrNameRequired
	}
	return ensureRecord(s.db, partner, "name", partner.Name)
}

// EnsureBrand creates the brand unless one with the same name exists.
func (s *CatalogueService) EnsureBrand(brand db.Brand) (*db.Brand, bool, error) {
	brand.Name = strings.TrimSpace(brand.Name)
	if brand.Name == "" {
		return nil, false, ErrNameRequired
	}
	brand.Partner = nil
	return ensureRecord(s.db, brand, "name", brand.Name)
}

// EnsureProduct creates the product unless one with the same slug exists.
func (s *CatalogueService) EnsureProduct(product db.Product) (*db.Product, bool, error) {
	product.Name = strings.TrimSpace(product.Name)
	if product.Name == "" {
		return nil, false, ErrNameRequired
	}
	slug, err := content.NormalizeSlug(product.Slug)
	if err != nil {
		return nil, false, err
	}
	product.Slug = slug
	if product.BrandID == 0 {
		return nil, false, ErrBrandNotFound
	}
	if product.CategoryID == 0 {
		return nil, false, ErrCategoryNotFound
	}
	return ensureRecord(s.db, product, "slug", product.Slug)
}

func exactNameFilters(query *gorm.DB, category, brand string) *gorm.DB {
	if c := strings.TrimSpace(category); c != "" {
		query = query.Where("LOWER(product_categories.name) = LOWER(?)", c)
	}
	if b := strings.TrimSpace(brand); b != "" {
		query = query.Where("LOWER(brands.name) = LOWER(?)", b)
	}
	return query
}

func findByName(gdb *gorm.DB, dest any, name string) error {
	return gdb.Where("LOWER(name) = LOWER(?)", strings.TrimSpace(name)).First(dest).Error
}

func notFoundAs(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
