package seo

import (
	"regexp"
	"strings"
	"unicode/utf8"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

const (
	BrandSiteName    = "Sweet Bliss"
	BrandDescription = "Sweet Bliss - Premium FMCG Distribution | Bringing Global Brands to Pakistan"

	// DescriptionLimit caps the body excerpt used as a description fallback.
	DescriptionLimit = 160
)

// Core carries the general page fields the SEO chain falls back to.
type Core struct {
	Title    string
	BodyHTML string
}

// Defaults are the last links of every fallback chain.
type Defaults struct {
	SiteName    string
	Description string
}

// BrandDefaults returns the hard-coded brand fallbacks.
func BrandDefaults() Defaults {
	return Defaults{SiteName: BrandSiteName, Description: BrandDescription}
}

// Meta is the fully resolved head metadata for one page.
type Meta struct {
	Title              string `json:"title"`
	Description        string `json:"description"`
	Keywords           string `json:"keywords,omitempty"`
	OGTitle            string `json:"og_title"`
	OGDescription      string `json:"og_description"`
	OGImageURL         string `json:"og_image_url,omitempty"`
	TwitterTitle       string `json:"twitter_title"`
	TwitterDescription string `json:"twitter_description"`
	TwitterImageURL    string `json:"twitter_image_url,omitempty"`
	Robots             string `json:"robots"`
	CanonicalURL       string `json:"canonical_url,omitempty"`
	SchemaType         string `json:"schema_type"`
	GoogleAnalyticsID  string `json:"google_analytics_id,omitempty"`
	FacebookPixelID    string `json:"facebook_pixel_id,omitempty"`
}

// EffectiveTitle resolves seo_title, then the page title, then the brand name.
func EffectiveTitle(f Fields, c Core) string {
	return title(f, c, BrandDefaults())
}

// EffectiveDescription resolves meta_description, then search_description,
// then a body excerpt, then the brand description.
func EffectiveDescription(f Fields, c Core) string {
	return description(f, c, BrandDefaults())
}

// OGTitle falls back to the effective title.
func OGTitle(f Fields, c Core) string {
	return firstNonEmpty(f.OGTitle, EffectiveTitle(f, c))
}

// OGDescription falls back to the effective description.
func OGDescription(f Fields, c Core) string {
	return firstNonEmpty(f.OGDescription, EffectiveDescription(f, c))
}

// TwitterTitle falls back to the effective title.
func TwitterTitle(f Fields, c Core) string {
	return firstNonEmpty(f.TwitterTitle, EffectiveTitle(f, c))
}

// TwitterDescription falls back to the effective description.
func TwitterDescription(f Fields, c Core) string {
	return firstNonEmpty(f.TwitterDescription, EffectiveDescription(f, c))
}

// RobotsTag renders the robots directive from the two page flags.
func RobotsTag(f Fields) string {
	index := "noindex"
	if f.RobotsIndex {
		index = "index"
	}
	follow := "nofollow"
	if f.RobotsFollow {
		follow = "follow"
	}
	return index + ", " + follow
}

// Build resolves every metadata value for a page. Empty Defaults fall back to
// the brand defaults.
func Build(f Fields, c Core, d Defaults) Meta {
	d.SiteName = firstNonEmpty(d.SiteName, BrandSiteName)
	d.Description = firstNonEmpty(d.Description, BrandDescription)

	t := title(f, c, d)
	desc := description(f, c, d)
	ogTitle := firstNonEmpty(f.OGTitle, t)
	ogDesc := firstNonEmpty(f.OGDescription, desc)

	return Meta{
		Title:              t,
		Description:        desc,
		Keywords:           strings.TrimSpace(f.MetaKeywords),
		OGTitle:            ogTitle,
		OGDescription:      ogDesc,
		OGImageURL:         f.OGImageURL,
		TwitterTitle:       firstNonEmpty(f.TwitterTitle, t),
		TwitterDescription: firstNonEmpty(f.TwitterDescription, desc),
		TwitterImageURL:    firstNonEmpty(f.TwitterImageURL, f.OGImageURL),
		Robots:             RobotsTag(f),
		CanonicalURL:       f.CanonicalURL,
		SchemaType:         firstNonEmpty(f.SchemaType, SchemaWebPage),
		GoogleAnalyticsID:  f.GoogleAnalyticsID,
		FacebookPixelID:    f.FacebookPixelID,
	}
}

func title(f Fields, c Core, d Defaults) string {
	return firstNonEmpty(f.SEOTitle, c.Title, d.SiteName)
}

func description(f Fields, c Core, d Defaults) string {
	return firstNonEmpty(f.MetaDescription, f.SearchDescription, Excerpt(c.BodyHTML, DescriptionLimit), d.Description)
}

// Excerpt flattens rich text to plain words and cuts it to limit runes,
// appending "..." when anything was cut.
func Excerpt(html string, limit int) string {
	if strings.TrimSpace(html) == "" {
		return ""
	}
	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		markdown = html
	}
	plain := stripMarkdown(markdown)
	if plain == "" || limit <= 0 {
		return plain
	}
	if utf8.RuneCountInString(plain) <= limit {
		return plain
	}
	runes := []rune(plain)
	return strings.TrimSpace(string(runes[:limit])) + "..."
}

var markdownLink = regexp.MustCompile(`!?\[([^\]]*)\]\([^)]*\)`)

var markdownReplacer = strings.NewReplacer(
	"#", " ",
	"*", " ",
	"`", " ",
	"_", " ",
	">", " ",
	"[", " ",
	"]", " ",
	"(", " ",
	")", " ",
	"\\", "",
)

func stripMarkdown(markdown string) string {
	plain := markdownLink.ReplaceAllString(markdown, "$1")
	return strings.Join(strings.Fields(markdownReplacer.Replace(plain)), " ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
