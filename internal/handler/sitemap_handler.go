package handler

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/WelcomeWebWorks/Boiler-Plate/internal/cms"
	"github.com/gin-gonic/gin"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float64 `xml:"priority,omitempty"`
}

// Sitemap aggregates static routes plus all non-noIndex service, post and
// legal slugs.
func (a *API) Sitemap(c *gin.Context) {
	content, err := a.content.SitemapEntries(c.Request.Context())
	if err != nil {
		respondUpstreamError(c, "resolve sitemap", err)
		return
	}

	now := time.Now().UTC().Format(time.RFC3339)
	urls := []sitemapURL{
		{Loc: a.site.BaseURL, LastMod: now, ChangeFreq: "daily", Priority: 1.0},
		{Loc: a.site.URL("/services"), LastMod: now, ChangeFreq: "weekly", Priority: 0.9},
		{Loc: a.site.URL("/contact"), LastMod: now, ChangeFreq: "monthly", Priority: 0.8},
		{Loc: a.site.URL("/blog"), LastMod: now, ChangeFreq: "daily", Priority: 0.8},
	}
	urls = append(urls, a.sitemapEntries(content.Services, "/services/", "weekly", 0.8)...)
	urls = append(urls, a.sitemapEntries(content.Posts, "/blog/", "weekly", 0.7)...)
	urls = append(urls, a.sitemapEntries(content.LegalPages, "/legal/", "yearly", 0.5)...)

	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	c.Header("Content-Type", "application/xml; charset=utf-8")
	c.Status(http.StatusOK)
	c.Writer.WriteString(xml.Header)
	if err := xml.NewEncoder(c.Writer).Encode(sitemap); err != nil {
		c.Error(err)
	}
}

func (a *API) sitemapEntries(entries []cms.SlugEntry, prefix, changeFreq string, priority float64) []sitemapURL {
	urls := make([]sitemapURL, 0, len(entries))
	for _, entry := range entries {
		if entry.Slug == "" {
			continue
		}
		urls = append(urls, sitemapURL{
			Loc:        a.site.URL(prefix + entry.Slug),
			LastMod:    entry.UpdatedAt,
			ChangeFreq: changeFreq,
			Priority:   priority,
		})
	}
	return urls
}

// robotsDisallow lists the path prefixes kept out of crawler reach.
var robotsDisallow = []string{"/api/", "/studio/", "/_next/", "/private/", "/admin/"}

// Robots serves the crawl policy: allow-all except the disallow list.
func (a *API) Robots(c *gin.Context) {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	for _, path := range robotsDisallow {
		fmt.Fprintf(&b, "Disallow: %s\n", path)
	}
	fmt.Fprintf(&b, "\nSitemap: %s\n", a.site.URL("/sitemap.xml"))
	fmt.Fprintf(&b, "Host: %s\n", a.site.BaseURL)

	c.String(http.StatusOK, b.String())
}
