package seo

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveTitleFallbackChain(t *testing.T) {
	f := DefaultFields()
	assert.Equal(t, BrandSiteName, EffectiveTitle(f, Core{}))
	assert.Equal(t, "About Sweet Bliss", EffectiveTitle(f, Core{Title: "About Sweet Bliss"}))

	f.SEOTitle = "About Us | Sweet Bliss"
	assert.Equal(t, "About Us | Sweet Bliss", EffectiveTitle(f, Core{Title: "About Sweet Bliss"}))
}

func TestEffectiveDescriptionFallbackChain(t *testing.T) {
	f := DefaultFields()
	assert.Equal(t, BrandDescription, EffectiveDescription(f, Core{}))

	core := Core{BodyHTML: "<p>We import <strong>premium</strong> snacks.</p>"}
	assert.Equal(t, "We import premium snacks.", EffectiveDescription(f, core))

	f.SearchDescription = "Search blurb"
	assert.Equal(t, "Search blurb", EffectiveDescription(f, core))

	f.MetaDescription = "Meta blurb"
	assert.Equal(t, "Meta blurb", EffectiveDescription(f, core))
}

func TestExcerptTruncatesLongBodies(t *testing.T) {
	body := "<p>" + strings.Repeat("sweet ", 60) + "</p>"
	excerpt := Excerpt(body, DescriptionLimit)

	require.True(t, strings.HasSuffix(excerpt, "..."), "expected ellipsis, got %q", excerpt)
	assert.LessOrEqual(t, utf8.RuneCountInString(strings.TrimSuffix(excerpt, "...")), DescriptionLimit)
}

func TestExcerptDropsLinkTargets(t *testing.T) {
	excerpt := Excerpt(`<p>Read <a href="/contact/">our contact page</a> today</p>`, DescriptionLimit)
	assert.Equal(t, "Read our contact page today", excerpt)
}

func TestSocialFallbacks(t *testing.T) {
	f := DefaultFields()
	core := Core{Title: "Products"}

	assert.Equal(t, "Products", OGTitle(f, core))
	assert.Equal(t, "Products", TwitterTitle(f, core))

	f.SEOTitle = "SEO Products"
	f.OGTitle = "OG Products"
	f.MetaDescription = "meta desc"
	f.OGDescription = "og desc"
	assert.Equal(t, "OG Products", OGTitle(f, core))
	assert.Equal(t, "SEO Products", TwitterTitle(f, core))
	assert.Equal(t, "meta desc", TwitterDescription(f, core))

	meta := Build(f, core, Defaults{})
	assert.Equal(t, "OG Products", meta.OGTitle)
	assert.Equal(t, "og desc", meta.OGDescription)
	assert.Equal(t, "SEO Products", meta.TwitterTitle)
	assert.Equal(t, "meta desc", meta.TwitterDescription)

	f.TwitterTitle = "Tweet Products"
	f.TwitterDescription = "tweet desc"
	assert.Equal(t, "Tweet Products", TwitterTitle(f, core))
	assert.Equal(t, "tweet desc", TwitterDescription(f, core))
}

func TestRobotsTag(t *testing.T) {
	cases := []struct {
		index, follow bool
		want          string
	}{
		{true, true, "index, follow"},
		{true, false, "index, nofollow"},
		{false, true, "noindex, follow"},
		{false, false, "noindex, nofollow"},
	}
	for _, tc := range cases {
		got := RobotsTag(Fields{RobotsIndex: tc.index, RobotsFollow: tc.follow})
		assert.Equal(t, tc.want, got)
	}
}

func TestBuildUsesSiteDefaults(t *testing.T) {
	meta := Build(Fields{}, Core{}, Defaults{SiteName: "Bliss Traders", Description: "Imported goods"})

	assert.Equal(t, "Bliss Traders", meta.Title)
	assert.Equal(t, "Imported goods", meta.Description)
	assert.Equal(t, SchemaWebPage, meta.SchemaType)
	assert.Equal(t, "noindex, nofollow", meta.Robots)

	meta = Build(Fields{OGImageURL: "/static/uploads/og.png"}, Core{}, Defaults{})
	assert.Equal(t, BrandSiteName, meta.Title)
	assert.Equal(t, "/static/uploads/og.png", meta.TwitterImageURL)
}

func TestValidSchemaType(t *testing.T) {
	assert.True(t, ValidSchemaType(SchemaContactPage))
	assert.False(t, ValidSchemaType("Recipe"))
}
