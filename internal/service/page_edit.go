package service

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/sweetbliss/internal/content"
	"github.com/sweetbliss/internal/db"
	"github.com/sweetbliss/internal/seo"
	"gorm.io/gorm"
)

var (
	ErrInvalidSchemaType = errors.New("unsupported schema type")
	ErrTitleRequired     = errors.New("page title is required")
	ErrMapEmbedURL       = errors.New("map embed url must be a google maps embed link")
)

// SectionInput is one edited rich-text section.
type SectionInput struct {
	Key     string
	Title   string
	Content string
	Format  string
}

// PageDraftInput carries the editable parts of a page. Nil pointers and nil
// maps leave the current value untouched.
type PageDraftInput struct {
	Title       *string
	ShowInMenus *bool
	SEO         *seo.Fields
	Fields      map[string]string
	Sections    []SectionInput
}

// UpdateDraft records an edit as a new revision. Pages that are not live also
// get the edit applied to their row; live pages keep serving the published
// content until the revision is published.
func (s *PageService) UpdateDraft(pageID uint, input PageDraftInput) (*db.Page, *db.PageRevision, error) {
	var (
		page     db.Page
		revision *db.PageRevision
	)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&page, pageID).Error; err != nil {
			return pageLookupError(err)
		}
		if page.PageType == content.TypeRoot {
			return ErrRootPageImmutable
		}

		snapshot, err := applyDraft(page.PageType, page.Snapshot(), input)
		if err != nil {
			return err
		}

		if !page.Live {
			page.ApplySnapshot(snapshot)
			if err := tx.Save(&page).Error; err != nil {
				return err
			}
		}

		rev, err := appendRevision(tx, &page, snapshot)
		if err != nil {
			return err
		}
		revision = rev
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &page, revision, nil
}

func applyDraft(pageType string, snapshot db.PageSnapshot, input PageDraftInput) (db.PageSnapshot, error) {
	schema, ok := content.SchemaFor(pageType)
	if !ok {
		return snapshot, fmt.Errorf("%w: %s", content.ErrUnknownPageType, pageType)
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return snapshot, ErrTitleRequired
		}
		snapshot.Title = title
	}
	if input.ShowInMenus != nil {
		snapshot.ShowInMenus = *input.ShowInMenus
	}
	if input.SEO != nil {
		fields := *input.SEO
		if fields.SchemaType == "" {
			fields.SchemaType = seo.SchemaWebPage
		}
		if !seo.ValidSchemaType(fields.SchemaType) {
			return snapshot, fmt.Errorf("%w: %s", ErrInvalidSchemaType, fields.SchemaType)
		}
		snapshot.SEO = fields
	}

	body := content.Body{
		Fields:   maps.Clone(snapshot.Body.Fields),
		Sections: slices.Clone(snapshot.Body.Sections),
	}
	for key, value := range input.Fields {
		body.SetField(key, strings.TrimSpace(value))
	}
	for _, sec := range input.Sections {
		rendered, err := RenderRichText(sec.Format, sec.Content)
		if err != nil {
			return snapshot, err
		}
		body.SetSection(content.Section{Key: sec.Key, Title: strings.TrimSpace(sec.Title), HTML: rendered})
	}
	if err := schema.Validate(body); err != nil {
		return snapshot, err
	}
	if embed := body.Field("map_embed_url"); embed != "" && !IsMapEmbedURL(embed) {
		return snapshot, ErrMapEmbedURL
	}
	snapshot.Body = body
	return snapshot, nil
}
