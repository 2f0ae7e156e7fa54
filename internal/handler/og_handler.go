package handler

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	ogWidth  = 1200
	ogHeight = 630

	ogTitleLimit       = 100
	ogDescriptionLimit = 200
)

// RenderOGImage renders the on-demand social preview card. Title and
// description arrive as query parameters and fall back to the site identity.
func (a *API) RenderOGImage(c *gin.Context) {
	title := c.Query("title")
	if title == "" {
		title = a.site.Name
	}
	description := c.Query("description")
	if description == "" {
		description = a.site.Description
	}

	img := renderOGCard(a.site.Name, truncateRunes(title, ogTitleLimit), truncateRunes(description, ogDescriptionLimit))

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		log.Printf("og image encode failed: %v", err)
		respondError(c, http.StatusInternalServerError, "failed to render image")
		return
	}
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

var (
	ogGradientTop    = color.RGBA{R: 0x0F, G: 0x17, B: 0x2A, A: 0xFF}
	ogGradientBottom = color.RGBA{R: 0x1E, G: 0x29, B: 0x3B, A: 0xFF}
	ogBrandColor     = color.RGBA{R: 0x3B, G: 0x82, B: 0xF6, A: 0xFF}
	ogTitleColor     = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	ogBodyColor      = color.RGBA{R: 0x94, G: 0xA3, B: 0xB8, A: 0xFF}
)

// blendColor linearly interpolates two colors, t in [0,1].
func blendColor(a, b color.RGBA, t float64) color.RGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: 0xFF}
}

// renderOGCard draws the fixed 1200×630 layout: gradient background, brand
// line, wrapped title and wrapped description.
func renderOGCard(brand, title, description string) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, ogWidth, ogHeight))

	for y := 0; y < ogHeight; y++ {
		row := blendColor(ogGradientTop, ogGradientBottom, float64(y)/float64(ogHeight-1))
		for x := 0; x < ogWidth; x++ {
			dst.SetRGBA(x, y, row)
		}
	}

	y := 150
	drawCenteredLine(dst, brand, ogBrandColor, 4, y)
	y += 90

	for _, line := range wrapText(title, 34) {
		drawCenteredLine(dst, line, ogTitleColor, 6, y)
		y += 100
	}
	y += 20

	for _, line := range wrapText(description, 70) {
		drawCenteredLine(dst, line, ogBodyColor, 2, y)
		y += 40
	}

	return dst
}

// drawCenteredLine rasterizes text with the bitmap face and scales it up onto
// the card, horizontally centered at the given baseline.
func drawCenteredLine(dst *image.RGBA, text string, col color.Color, scale, centerY int) {
	if text == "" {
		return
	}
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()
	if width == 0 {
		return
	}

	src := image.NewRGBA(image.Rect(0, 0, width, face.Height))
	drawer := &font.Drawer{
		Dst:  src,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	drawer.DrawString(text)

	scaledW := width * scale
	scaledH := face.Height * scale
	x0 := (ogWidth - scaledW) / 2
	y0 := centerY - scaledH/2
	target := image.Rect(x0, y0, x0+scaledW, y0+scaledH)

	draw.CatmullRom.Scale(dst, target, src, src.Bounds(), draw.Over, nil)
}

// wrapText splits text into lines no longer than max characters, breaking on
// spaces. A single overlong word becomes its own line.
func wrapText(text string, max int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) <= max {
			current += " " + word
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}
