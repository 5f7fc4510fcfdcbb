// Package publisher bundles a plan and its generated assets into a zip
// archive with a human readable manifest and a content calendar.
package publisher

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"path"
	"regexp"
	"strings"

	"designarena/internal/domain"
	"designarena/internal/locale"
	"designarena/pkg/zip"
)

const (
	DefaultFolder   = "project"
	maxFolderLength = 48
	maxCalendarTags = 8

	fallbackMediaType = "image/svg+xml"
)

// Options tunes the generated package.
type Options struct {
	// Locale selects the manifest language; see package locale.
	Locale string
}

// CalendarEntry is one day of content_calendar.json.
type CalendarEntry struct {
	Day       int      `json:"day"`
	PostTitle string   `json:"post_title"`
	Platform  string   `json:"platform"`
	Tags      []string `json:"tags"`
	ColorHint string   `json:"color_hint,omitempty"`
	Style     string   `json:"style"`
}

// PackageBase64 is Package with the archive encoded for JSON transport.
func PackageBase64(plan *domain.Plan, visuals []domain.VisualAsset, motion *domain.MotionAsset, opts Options) (string, error) {
	data, err := Package(plan, visuals, motion, opts)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// Package builds the zip archive. Malformed visual payloads are written as
// empty files rather than failing the whole package.
func Package(plan *domain.Plan, visuals []domain.VisualAsset, motion *domain.MotionAsset, opts Options) ([]byte, error) {
	if plan == nil {
		return nil, domain.ErrEmptyPlan
	}
	root := FolderName(plan.Summary)
	tree := newTree()

	tree.put(root+"/README.txt", []byte(Manifest(plan, opts.Locale)))

	for _, a := range visuals {
		mediaType, data := DecodeDataURL(a.DataURL)
		name := path.Base(strings.ReplaceAll(a.Filename, "\\", "/"))
		if name == "" || name == "." || name == "/" {
			name = fmt.Sprintf("asset_%dx%d.%s", a.Width, a.Height, Extension(mediaType))
		}
		tree.put(root+"/visuals/"+name, data)
	}

	if motion != nil {
		doc, err := json.MarshalIndent(motion.Animation, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("publisher: encode motion: %w", err)
		}
		name := path.Base(strings.ReplaceAll(motion.Filename, "\\", "/"))
		if name == "" || name == "." || name == "/" {
			name = "motion.lottie.json"
		}
		tree.put(root+"/motion/"+name, doc)
	}

	calendar, err := json.MarshalIndent(Calendar(plan), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("publisher: encode calendar: %w", err)
	}
	tree.put(root+"/content_calendar.json", calendar)

	return zip.Archive(tree.entries())
}

var nonWord = regexp.MustCompile(`[^\w\-]+`)

// FolderName derives the archive root folder from a plan summary.
func FolderName(summary string) string {
	name := nonWord.ReplaceAllString(summary, "_")
	if len(name) > maxFolderLength {
		name = name[:maxFolderLength]
	}
	if name == "" {
		return DefaultFolder
	}
	return name
}

var dataURL = regexp.MustCompile(`^data:(.*?);base64,(.*)$`)

// DecodeDataURL splits a base64 data URL into its media type and body. Any
// parse or decode failure degrades to an empty SVG body.
func DecodeDataURL(url string) (string, []byte) {
	m := dataURL.FindStringSubmatch(url)
	if m == nil {
		return fallbackMediaType, nil
	}
	data, err := base64.StdEncoding.DecodeString(m[2])
	if err != nil {
		return m[1], nil
	}
	return m[1], data
}

// Extension maps a media type onto a file extension.
func Extension(mediaType string) string {
	switch {
	case strings.Contains(mediaType, "svg"):
		return "svg"
	case strings.Contains(mediaType, "png"):
		return "png"
	default:
		return "jpg"
	}
}

// Platform names where a design type is usually published.
func Platform(t domain.DesignType) string {
	switch t {
	case domain.DesignTypeStory:
		return "Instagram Stories"
	case domain.DesignTypeThumbnail:
		return "YouTube"
	default:
		return "Generic"
	}
}

// Calendar schedules one idea per day in plan order.
func Calendar(plan *domain.Plan) []CalendarEntry {
	out := make([]CalendarEntry, 0, len(plan.DailyIdeas))
	for i, idea := range plan.DailyIdeas {
		tags := idea.Keywords
		if len(tags) > maxCalendarTags {
			tags = tags[:maxCalendarTags]
		}
		if tags == nil {
			tags = []string{}
		}
		var hint string
		if len(idea.Colors) > 0 {
			hint = idea.Colors[0]
		}
		out = append(out, CalendarEntry{
			Day:       i + 1,
			PostTitle: idea.ProjectName,
			Platform:  Platform(idea.DesignType),
			Tags:      tags,
			ColorHint: hint,
			Style:     idea.Style,
		})
	}
	return out
}

type labels struct {
	header, summary, palette, typography, layouts, ideas string
}

var manifestLabels = map[string]labels{
	locale.English: {
		header:     "Design Arena - Automated Package",
		summary:    "Summary",
		palette:    "Palette",
		typography: "Typography",
		layouts:    "Layouts",
		ideas:      "Daily ideas",
	},
	locale.Indonesian: {
		header:     "Design Arena - Paket Otomatis",
		summary:    "Ringkasan",
		palette:    "Palet",
		typography: "Tipografi",
		layouts:    "Tata letak",
		ideas:      "Ide harian",
	},
}

// Manifest renders README.txt.
func Manifest(plan *domain.Plan, loc string) string {
	l, ok := manifestLabels[locale.Match(loc)]
	if !ok {
		l = manifestLabels[locale.Default]
	}
	lines := []string{
		l.header,
		"",
		fmt.Sprintf("%s: %s", l.summary, plan.Summary),
		"",
		fmt.Sprintf("%s: %s", l.palette, strings.Join(plan.Moodboard.Colors, ", ")),
		fmt.Sprintf("%s: %s", l.typography, strings.Join(plan.Moodboard.Typography, ", ")),
		fmt.Sprintf("%s: %s", l.layouts, strings.Join(plan.Moodboard.LayoutStyles, ", ")),
		"",
		fmt.Sprintf("%s (%d):", l.ideas, len(plan.DailyIdeas)),
	}
	for i, idea := range plan.DailyIdeas {
		lines = append(lines, fmt.Sprintf(" %d. %s [%s] %s | %s", i+1, idea.ProjectName, idea.DesignType, idea.AspectRatio, idea.Style))
	}
	return strings.Join(lines, "\n")
}

// tree keeps insertion order while letting a later write to the same path
// replace the earlier one.
type tree struct {
	order []string
	files map[string][]byte
}

func newTree() *tree {
	return &tree{files: make(map[string][]byte)}
}

func (t *tree) put(name string, data []byte) {
	if _, ok := t.files[name]; !ok {
		t.order = append(t.order, name)
	}
	t.files[name] = data
}

func (t *tree) entries() []zip.Entry {
	out := make([]zip.Entry, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, zip.Entry{Path: name, Data: t.files[name]})
	}
	return out
}
