package handler

import (
	"bytes"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func respondUpstreamError(c *gin.Context, what string, err error) {
	log.Printf("%s: %v", what, err)
	respondError(c, http.StatusInternalServerError, "content is temporarily unavailable")
}

// renderMarkdown converts a markdown content field into sanitized HTML for
// page payloads. On a render failure the raw text is returned escaped by the
// sanitizer rather than failing the page.
func renderMarkdown(source string) string {
	if source == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(source), &buf); err != nil {
		return string(sanitizer.SanitizeBytes([]byte(source)))
	}
	return string(sanitizer.SanitizeBytes(buf.Bytes()))
}
