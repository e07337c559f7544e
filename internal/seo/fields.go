package seo

// Fields is the SEO block every content page carries. It is embedded into the
// page row and copied verbatim into revision snapshots.
type Fields struct {
	SEOTitle           string `gorm:"size:255" json:"seo_title,omitempty"`
	SearchDescription  string `gorm:"type:text" json:"search_description,omitempty"`
	MetaDescription    string `gorm:"size:160" json:"meta_description,omitempty"`
	MetaKeywords       string `gorm:"size:255" json:"meta_keywords,omitempty"`
	OGTitle            string `gorm:"size:60" json:"og_title,omitempty"`
	OGDescription      string `gorm:"size:160" json:"og_description,omitempty"`
	OGImageURL         string `gorm:"size:512" json:"og_image_url,omitempty"`
	TwitterTitle       string `gorm:"size:70" json:"twitter_title,omitempty"`
	TwitterDescription string `gorm:"size:200" json:"twitter_description,omitempty"`
	TwitterImageURL    string `gorm:"size:512" json:"twitter_image_url,omitempty"`
	SchemaType         string `gorm:"size:50" json:"schema_type,omitempty"`
	RobotsIndex        bool   `json:"robots_index"`
	RobotsFollow       bool   `json:"robots_follow"`
	CanonicalURL       string `gorm:"size:512" json:"canonical_url,omitempty"`
	GoogleAnalyticsID  string `gorm:"size:20" json:"google_analytics_id,omitempty"`
	FacebookPixelID    string `gorm:"size:20" json:"facebook_pixel_id,omitempty"`
}

// Schema.org types a page may declare.
const (
	SchemaWebPage      = "WebPage"
	SchemaArticle      = "Article"
	SchemaProduct      = "Product"
	SchemaOrganization = "Organization"
	SchemaLocalBiz     = "LocalBusiness"
	SchemaWebsite      = "Website"
	SchemaAboutPage    = "AboutPage"
	SchemaContactPage  = "ContactPage"
)

var schemaTypes = map[string]struct{}{
	SchemaWebPage:      {},
	SchemaArticle:      {},
	SchemaProduct:      {},
	SchemaOrganization: {},
	SchemaLocalBiz:     {},
	SchemaWebsite:      {},
	SchemaAboutPage:    {},
	SchemaContactPage:  {},
}

// ValidSchemaType reports whether t is one of the supported schema.org types.
func ValidSchemaType(t string) bool {
	_, ok := schemaTypes[t]
	return ok
}

// DefaultFields returns the block a freshly created page starts with.
func DefaultFields() Fields {
	return Fields{
		SchemaType:   SchemaWebPage,
		RobotsIndex:  true,
		RobotsFollow: true,
	}
}
