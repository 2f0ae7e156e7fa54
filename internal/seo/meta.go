package seo

import (
	"net/url"

	"github.com/WelcomeWebWorks/Boiler-Plate/internal/cms"
	"github.com/WelcomeWebWorks/Boiler-Plate/internal/config"
)

// Social preview images are rendered at the standard Open Graph size.
const (
	ogImageWidth  = 1200
	ogImageHeight = 630
)

// Robots carries the indexing directives. Index and follow are driven by a
// single noIndex flag, never controlled independently.
type Robots struct {
	Index  bool `json:"index"`
	Follow bool `json:"follow"`
}

// OGImage describes the social preview image of a page.
type OGImage struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Alt    string `json:"alt,omitempty"`
}

// OpenGraph is the Open Graph block of a page's metadata.
type OpenGraph struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	URL         string  `json:"url"`
	SiteName    string  `json:"siteName"`
	Type        string  `json:"type"`
	Image       OGImage `json:"image"`
}

// Twitter is the Twitter card block of a page's metadata.
type Twitter struct {
	Card        string `json:"card"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// Meta is the full synthesized metadata bundle for one page. It is derived per
// request and never persisted.
type Meta struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Keywords    []string  `json:"keywords"`
	Canonical   string    `json:"canonical"`
	Robots      Robots    `json:"robots"`
	OpenGraph   OpenGraph `json:"openGraph"`
	Twitter     Twitter   `json:"twitter"`
}

// Synthesizer produces page metadata from page defaults plus optional
// per-document overrides. It is deterministic and never fails; absent inputs
// degrade to defaults.
type Synthesizer struct {
	site   config.Site
	assets *cms.AssetResolver
}

// NewSynthesizer wires a synthesizer to the site identity and asset resolver.
func NewSynthesizer(site config.Site, assets *cms.AssetResolver) *Synthesizer {
	return &Synthesizer{site: site, assets: assets}
}

// PageMeta assembles the metadata bundle for one page.
//
// Override fields take precedence field by field: a present title supersedes
// the default title without touching the description, and vice versa. A nil
// keywords slice falls back to the site's default keyword set.
func (s *Synthesizer) PageMeta(defaultTitle, defaultDescription, path string, keywords []string, override *cms.SeoOverride) Meta {
	title := defaultTitle
	description := defaultDescription
	noIndex := false
	canonical := s.site.URL(path)
	pageURL := s.site.URL(path)

	if override != nil {
		if override.Title != "" {
			title = override.Title
		}
		if override.Description != "" {
			description = override.Description
		}
		if override.CanonicalURL != "" {
			canonical = override.CanonicalURL
		}
		noIndex = override.NoIndex
	}

	ogImage := s.site.URL("/api/og") +
		"?title=" + url.QueryEscape(title) +
		"&description=" + url.QueryEscape(description)
	if override != nil && !override.OGImage.Empty() {
		if resolved := s.assets.URLFor(override.OGImage, cms.WithSize(ogImageWidth, ogImageHeight)); resolved != "" {
			ogImage = resolved
		}
	}

	if keywords == nil {
		keywords = s.site.Keywords
	}

	// Social blocks carry the site-suffixed title; the bare title is kept for
	// the document title.
	socialTitle := title + " | " + s.site.Name

	return Meta{
		Title:       title,
		Description: description,
		Keywords:    keywords,
		Canonical:   canonical,
		Robots:      Robots{Index: !noIndex, Follow: !noIndex},
		OpenGraph: OpenGraph{
			Title:       socialTitle,
			Description: description,
			URL:         pageURL,
			SiteName:    s.site.Name,
			Type:        "website",
			Image: OGImage{
				URL:    ogImage,
				Width:  ogImageWidth,
				Height: ogImageHeight,
				Alt:    title,
			},
		},
		Twitter: Twitter{
			Card:        "summary_large_image",
			Title:       socialTitle,
			Description: description,
			Image:       ogImage,
		},
	}
}
