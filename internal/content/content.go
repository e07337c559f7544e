package content

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/sweetbliss/internal/seo"
)

// Page types known to the tree. TypeRoot is the invisible tree root and
// TypePlaceholder is the generic page a fresh store starts with.
const (
	TypeRoot         = "root"
	TypePlaceholder  = "page"
	TypeHome         = "home"
	TypeAbout        = "about"
	TypeProducts     = "products"
	TypeTeam         = "team"
	TypeContact      = "contact"
	TypeServices     = "services"
	TypePortfolio    = "portfolio"
	TypePartnerships = "partnerships"
)

var (
	ErrUnknownPageType = errors.New("unknown page type")
	ErrUnknownField    = errors.New("field is not part of the page type")
	ErrUnknownSection  = errors.New("section is not part of the page type")
	ErrInvalidSlug     = errors.New("slug must be lowercase letters, digits and single hyphens")
)

// Section is one rich-text block of a page body. HTML is stored sanitized.
type Section struct {
	Key   string `json:"key"`
	Title string `json:"title,omitempty"`
	HTML  string `json:"html"`
}

// Body holds the type-specific content of a page.
type Body struct {
	Fields   map[string]string `json:"fields,omitempty"`
	Sections []Section         `json:"sections,omitempty"`
}

// Field returns the plain field value, or "" when unset.
func (b Body) Field(key string) string {
	return b.Fields[key]
}

// Section returns the section stored under key.
func (b Body) Section(key string) (Section, bool) {
	for _, s := range b.Sections {
		if s.Key == key {
			return s, true
		}
	}
	return Section{}, false
}

// SetField stores a plain field value.
func (b *Body) SetField(key, value string) {
	if b.Fields == nil {
		b.Fields = make(map[string]string)
	}
	b.Fields[key] = value
}

// SetSection replaces the section with the same key or appends it.
func (b *Body) SetSection(section Section) {
	for i := range b.Sections {
		if b.Sections[i].Key == section.Key {
			b.Sections[i] = section
			return
		}
	}
	b.Sections = append(b.Sections, section)
}

// HTML concatenates every section, used as the source of description excerpts.
func (b Body) HTML() string {
	parts := make([]string, 0, len(b.Sections))
	for _, s := range b.Sections {
		if strings.TrimSpace(s.HTML) != "" {
			parts = append(parts, s.HTML)
		}
	}
	return strings.Join(parts, "\n")
}

// Schema lists the fields and sections a page type accepts, in display order.
type Schema struct {
	Type     string
	Label    string
	Fields   []string
	Sections []string
}

var schemas = map[string]Schema{
	TypeRoot:        {Type: TypeRoot, Label: "Root"},
	TypePlaceholder: {Type: TypePlaceholder, Label: "Page", Sections: []string{"body"}},
	TypeHome: {
		Type:   TypeHome,
		Label:  "Home page",
		Fields: []string{"hero_title", "hero_subtitle", "hero_description", "hero_image_url"},
	},
	TypeAbout: {
		Type:     TypeAbout,
		Label:    "About page",
		Fields:   []string{"mission_title", "vision_title", "values_title"},
		Sections: []string{"introduction", "mission", "vision", "values"},
	},
	TypeProducts: {Type: TypeProducts, Label: "Products page", Sections: []string{"introduction"}},
	TypeTeam:     {Type: TypeTeam, Label: "Team page", Sections: []string{"introduction"}},
	TypeContact: {
		Type:     TypeContact,
		Label:    "Contact page",
		Fields:   []string{"phone", "email", "address", "map_embed_url"},
		Sections: []string{"introduction", "business_hours"},
	},
	TypeServices: {
		Type:     TypeServices,
		Label:    "Services page",
		Sections: []string{"introduction", "importing_services", "distribution_services", "partnership_services"},
	},
	TypePortfolio: {
		Type:     TypePortfolio,
		Label:    "Portfolio page",
		Sections: []string{"introduction", "quality_commitment"},
	},
	TypePartnerships: {
		Type:     TypePartnerships,
		Label:    "Partnerships page",
		Sections: []string{"introduction", "why_partner", "partnership_benefits", "how_to_partner"},
	},
}

// SchemaFor returns the schema registered for a page type.
func SchemaFor(pageType string) (Schema, bool) {
	s, ok := schemas[pageType]
	return s, ok
}

// IsPageType reports whether pageType is registered.
func IsPageType(pageType string) bool {
	_, ok := schemas[pageType]
	return ok
}

// Validate rejects fields and sections the page type does not declare.
func (s Schema) Validate(b Body) error {
	for key := range b.Fields {
		if !contains(s.Fields, key) {
			return fmt.Errorf("%w: %s.%s", ErrUnknownField, s.Type, key)
		}
	}
	for _, sec := range b.Sections {
		if !contains(s.Sections, sec.Key) {
			return fmt.Errorf("%w: %s.%s", ErrUnknownSection, s.Type, sec.Key)
		}
	}
	return nil
}

// Ordered returns the body sections in schema order, skipping unknown keys.
func (s Schema) Ordered(b Body) []Section {
	out := make([]Section, 0, len(b.Sections))
	for _, key := range s.Sections {
		if sec, ok := b.Section(key); ok {
			out = append(out, sec)
		}
	}
	return out
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// NormalizeSlug lowercases and trims a slug and checks its shape.
func NormalizeSlug(slug string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(slug))
	if !slugPattern.MatchString(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
	}
	return s, nil
}

// Definition describes a page to be created: its type, identity, SEO block
// and body.
type Definition struct {
	Type        string
	Title       string
	Slug        string
	ShowInMenus bool
	SEO         seo.Fields
	Body        Body
}

// Validate checks the definition against its page type schema.
func (d Definition) Validate() error {
	schema, ok := SchemaFor(d.Type)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPageType, d.Type)
	}
	if strings.TrimSpace(d.Title) == "" {
		return errors.New("page title is required")
	}
	if _, err := NormalizeSlug(d.Slug); err != nil {
		return err
	}
	return schema.Validate(d.Body)
}
