package db

import (
	"strings"
	"time"

	"github.com/sweetbliss/internal/content"
	"github.com/sweetbliss/internal/seo"
	"gorm.io/datatypes"
)

// Page is one node of the content tree. Path is a chain of fixed-width steps,
// so ordering by path walks the tree depth first.
type Page struct {
	ID                    uint    `gorm:"primaryKey"`
	ParentID              *uint   `gorm:"uniqueIndex:idx_pages_parent_slug"`
	Path                  string  `gorm:"size:255;uniqueIndex;not null"`
	Depth                 int     `gorm:"index;not null"`
	NumChild              int     `gorm:"not null;default:0"`
	Slug                  string  `gorm:"size:255;uniqueIndex:idx_pages_parent_slug;not null"`
	URLPath               string  `gorm:"size:1024;index"`
	Title                 string  `gorm:"size:255;not null"`
	PageType              string  `gorm:"size:50;index;not null"`
	ShowInMenus           bool
	Live                  bool `gorm:"index"`
	HasUnpublishedChanges bool
	LatestRevisionID      *uint
	LiveRevisionID        *uint
	FirstPublishedAt      *time.Time
	LastPublishedAt       *time.Time
	SEO                   seo.Fields `gorm:"embedded"`
	Body                  datatypes.JSONType[content.Body]
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// PageSnapshot is the editable content captured by a revision.
type PageSnapshot struct {
	Title       string       `json:"title"`
	ShowInMenus bool         `json:"show_in_menus"`
	SEO         seo.Fields   `json:"seo"`
	Body        content.Body `json:"body"`
}

// PageFromDefinition builds an unsaved, unpublished page.
func PageFromDefinition(def content.Definition) *Page {
	return &Page{
		Slug:        strings.ToLower(strings.TrimSpace(def.Slug)),
		Title:       def.Title,
		PageType:    def.Type,
		ShowInMenus: def.ShowInMenus,
		SEO:         def.SEO,
		Body:        datatypes.NewJSONType(def.Body),
	}
}

// Snapshot captures the page's current editable content.
func (p *Page) Snapshot() PageSnapshot {
	return PageSnapshot{
		Title:       p.Title,
		ShowInMenus: p.ShowInMenus,
		SEO:         p.SEO,
		Body:        p.Body.Data(),
	}
}

// ApplySnapshot copies revision content onto the page row.
func (p *Page) ApplySnapshot(s PageSnapshot) {
	p.Title = s.Title
	p.ShowInMenus = s.ShowInMenus
	p.SEO = s.SEO
	p.Body = datatypes.NewJSONType(s.Body)
}

// SEOCore exposes the general fields the SEO fallback chain reads.
func (p *Page) SEOCore() seo.Core {
	return seo.Core{Title: p.Title, BodyHTML: p.Body.Data().HTML()}
}

// IsRoot reports whether the page sits at the top of the tree.
func (p *Page) IsRoot() bool {
	return p.Depth == 1
}
