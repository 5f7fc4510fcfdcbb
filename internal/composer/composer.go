// Package composer renders a content idea into a branded SVG still.
//
// Every coordinate is expressed as a fraction of the target canvas, so one
// template serves all aspect ratios in the size table.
package composer

import (
	"encoding/base64"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"designarena/internal/domain"
	"designarena/internal/palette"
)

const (
	// SVGMediaType prefixes every payload the composer emits.
	SVGMediaType = "image/svg+xml"

	defaultWidth  = 1080
	defaultHeight = 1080

	fontStack    = "Inter, ui-sans-serif, system-ui"
	keywordSep   = " • "
	keywordLimit = 3
)

type size struct{ w, h int }

var sizes = map[string]size{
	"1280x720":  {1280, 720},
	"1080x1080": {1080, 1080},
	"1080x1920": {1080, 1920},
	"1500x500":  {1500, 500},
	"2000x3000": {2000, 3000},
	"1200x630":  {1200, 630},
}

// Dimensions resolves an aspect ratio key. Unknown keys yield the square
// default and known=false.
func Dimensions(aspect string) (w, h int, known bool) {
	if s, ok := sizes[strings.TrimSpace(aspect)]; ok {
		return s.w, s.h, true
	}
	return defaultWidth, defaultHeight, false
}

var whitespace = regexp.MustCompile(`\s+`)

// Slug lowercases name and collapses whitespace runs to underscores.
func Slug(name string) string {
	return strings.ToLower(whitespace.ReplaceAllString(name, "_"))
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// EscapeXML escapes the five reserved markup characters.
func EscapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

// Compose renders idea into a single visual asset.
func Compose(idea domain.Idea) []domain.VisualAsset {
	w, h, _ := Dimensions(idea.AspectRatio)
	svg := RenderSVG(idea, w, h)
	return []domain.VisualAsset{{
		ID:         fmt.Sprintf("asset_%s_%dx%d", idea.DesignType, w, h),
		Filename:   fmt.Sprintf("%s_%dx%d.svg", Slug(idea.ProjectName), w, h),
		DesignType: idea.DesignType,
		Width:      w,
		Height:     h,
		DataURL:    DataURL(SVGMediaType, []byte(svg)),
	}}
}

// ComposePlan renders every idea of plan in order.
func ComposePlan(plan domain.Plan) []domain.VisualAsset {
	assets := make([]domain.VisualAsset, 0, len(plan.DailyIdeas))
	for _, idea := range plan.DailyIdeas {
		assets = append(assets, Compose(idea)...)
	}
	return assets
}

// DataURL wraps data as a base64 data URL of the given media type.
func DataURL(mediaType string, data []byte) string {
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// RenderSVG returns the SVG document for idea on a w×h canvas.
func RenderSVG(idea domain.Idea, w, h int) string {
	p := palette.Ensure(idea.Colors)
	bgA, bgB, accent := p[0], p[1], p[2]
	textColor := palette.ContrastColor(bgA)
	accentRGB := palette.ToRGBString(accent)

	fw, fh := float64(w), float64(h)
	short := float64(min(w, h))

	keywords := idea.Keywords
	if len(keywords) > keywordLimit {
		keywords = keywords[:keywordLimit]
	}
	sub := strings.Join(keywords, keywordSep)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n", w, h, w, h)
	b.WriteString("  <defs>\n")
	b.WriteString(`    <linearGradient id="g1" x1="0" y1="0" x2="1" y2="1">` + "\n")
	fmt.Fprintf(&b, `      <stop offset="0%%" stop-color="%s" />`+"\n", bgA)
	fmt.Fprintf(&b, `      <stop offset="100%%" stop-color="%s" />`+"\n", bgB)
	b.WriteString("    </linearGradient>\n")
	b.WriteString(`    <linearGradient id="g2" x1="1" y1="0" x2="0" y2="1">` + "\n")
	fmt.Fprintf(&b, `      <stop offset="0%%" stop-color="rgba(%s,0.0)" />`+"\n", accentRGB)
	fmt.Fprintf(&b, `      <stop offset="100%%" stop-color="rgba(%s,0.25)" />`+"\n", accentRGB)
	b.WriteString("    </linearGradient>\n")
	b.WriteString("  </defs>\n")
	b.WriteString(`  <rect width="100%" height="100%" fill="url(#g1)" />` + "\n")

	b.WriteString(`  <g opacity="0.9">` + "\n")
	fmt.Fprintf(&b, `    <circle cx="%s" cy="%s" r="%s" fill="url(#g2)" />`+"\n",
		num(fw*0.85), num(fh*0.2), num(short*0.15))
	fmt.Fprintf(&b, `    <rect x="%s" y="%s" rx="%s" width="%s" height="%s" fill="url(#g2)" />`+"\n",
		num(fw*0.05), num(fh*0.65), num(short*0.02), num(fw*0.5), num(fh*0.25))
	b.WriteString("  </g>\n")

	b.WriteString("  <g>\n")
	fmt.Fprintf(&b, `    <text x="%s" y="%s" font-family="%s" font-size="%s" font-weight="800" fill="%s">%s</text>`+"\n",
		num(fw*0.08), num(fh*0.35), fontStack, num(short*0.10), textColor, EscapeXML(idea.ProjectName))
	fmt.Fprintf(&b, `    <text x="%s" y="%s" font-family="%s" font-size="%s" font-weight="500" fill="%s" opacity="0.9">%s</text>`+"\n",
		num(fw*0.08), num(fh*0.42), fontStack, num(short*0.035), textColor, EscapeXML(sub))
	b.WriteString("    <g>\n")
	fmt.Fprintf(&b, `      <rect x="%s" y="%s" rx="%s" width="%s" height="%s" fill="%s" />`+"\n",
		num(fw*0.08), num(fh*0.5), num(short*0.01), num(fw*0.84), num(short*0.08), accent)
	fmt.Fprintf(&b, `      <text x="%s" y="%s" font-family="%s" font-size="%s" font-weight="700" fill="%s">%s</text>`+"\n",
		num(fw*0.10), num(fh*0.555), fontStack, num(short*0.035), palette.ContrastColor(accent), EscapeXML(idea.Style))
	b.WriteString("    </g>\n")
	b.WriteString("  </g>\n")
	b.WriteString("</svg>")
	return b.String()
}

// num formats layout coordinates with at most two decimals.
func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
