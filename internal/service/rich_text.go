package service

import (
	"bytes"
	"errors"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Accepted source formats for rich-text sections.
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
)

var ErrUnknownFormat = errors.New("unknown rich text format")

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	richTextPolicy = buildRichTextPolicy()

	mapEmbedSrcPattern = regexp.MustCompile(`^https://(?:www\.)?google\.com/maps/embed\?`)
)

// buildRichTextPolicy extends the UGC policy with map iframes so the contact
// page can embed its location.
func buildRichTextPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowElements("iframe")
	policy.AllowAttrs("src").Matching(mapEmbedSrcPattern).OnElements("iframe")
	policy.AllowAttrs("title", "width", "height", "allowfullscreen", "frameborder", "loading", "referrerpolicy").OnElements("iframe")
	return policy
}

// RenderRichText turns editor input into sanitized HTML.
func RenderRichText(format, source string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatHTML:
		return SanitizeRichText(source), nil
	case FormatMarkdown:
		var buf bytes.Buffer
		if err := markdownEngine.Convert([]byte(source), &buf); err != nil {
			return "", err
		}
		return string(richTextPolicy.SanitizeBytes(buf.Bytes())), nil
	default:
		return "", ErrUnknownFormat
	}
}

// SanitizeRichText strips anything the rich-text policy does not allow.
func SanitizeRichText(source string) string {
	return richTextPolicy.Sanitize(source)
}

// IsMapEmbedURL reports whether raw is an embeddable map URL.
func IsMapEmbedURL(raw string) bool {
	return mapEmbedSrcPattern.MatchString(strings.TrimSpace(raw))
}
