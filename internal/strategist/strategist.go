// Package strategist turns a brief into a plan of one content idea per
// design type. Selections come from static libraries using an injected
// random source, so a fixed seed reproduces the same plan.
package strategist

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"designarena/internal/domain"
)

var styleLibrary = []string{
	"Bold minimalism",
	"Neon cyberpunk",
	"Editorial elegance",
	"Retro-futuristic",
	"Playful Memphis",
	"High-contrast typography",
}

var layoutStyles = []string{
	"Center headline + badge",
	"Top-left headline + diagonal band",
	"Rule-of-thirds focal point",
	"Split layout (image/text)",
	"Grid-based modular blocks",
}

var typographyStacks = []string{
	"Inter / system",
	"Poppins / system",
	"Montserrat / system",
	"Bebas Neue / system",
	"DM Sans / system",
	"Oswald / system",
}

var extraKeywords = []string{"modern", "clean", "bold", "gradient", "dynamic", "organic"}

type format struct {
	kind domain.DesignType
	size string
}

// formats fixes idea order and target sizes.
var formats = []format{
	{domain.DesignTypeThumbnail, "1280x720"},
	{domain.DesignTypeSocialPost, "1080x1080"},
	{domain.DesignTypeStory, "1080x1920"},
	{domain.DesignTypeBanner, "1500x500"},
	{domain.DesignTypePoster, "2000x3000"},
	{domain.DesignTypeCover, "1200x630"},
}

// NewSource returns a deterministic random source for seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generate builds a plan for brief, drawing every random choice from rng.
func Generate(brief domain.Brief, rng *rand.Rand) domain.Plan {
	colors := NormalizeColors(brief.Colors)

	ideas := make([]domain.Idea, 0, len(formats))
	for _, f := range formats {
		keywords := []string{brief.Niche, brief.Theme, brief.Goal}
		keywords = append(keywords, pick(rng, extraKeywords, 3)...)
		ideas = append(ideas, domain.Idea{
			ProjectName: capitalize(brief.Niche) + " " + capitalize(string(f.kind)),
			DesignType:  f.kind,
			Theme:       brief.Theme,
			Colors:      colors,
			Style:       pick(rng, styleLibrary, 1)[0],
			Keywords:    keywords,
			AspectRatio: f.size,
		})
	}

	return domain.Plan{
		Summary: fmt.Sprintf("Automated design plan for %s targeting \"%s\" with %s aesthetics.", brief.Niche, brief.Goal, brief.Theme),
		Moodboard: domain.Moodboard{
			PaletteName:  brief.Theme + " Core",
			Colors:       colors,
			Typography:   pick(rng, typographyStacks, 2),
			LayoutStyles: pick(rng, layoutStyles, 3),
		},
		DailyIdeas: ideas,
	}
}

// NormalizeColors prefixes '#' where it is missing. Validity is checked at
// the request boundary; the palette engine handles anything that slips by.
func NormalizeColors(colors []string) []string {
	out := make([]string, 0, len(colors))
	for _, c := range colors {
		c = strings.TrimSpace(c)
		if !strings.HasPrefix(c, "#") {
			c = "#" + c
		}
		out = append(out, c)
	}
	return out
}

var upper = cases.Upper(language.Und)

// capitalize upper-cases the first rune of s and keeps the rest as written.
func capitalize(s string) string {
	_, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return upper.String(s[:size]) + s[size:]
}

// pick draws n distinct items from items without replacement.
func pick(rng *rand.Rand, items []string, n int) []string {
	pool := append([]string(nil), items...)
	out := make([]string, 0, n)
	for len(out) < n && len(pool) > 0 {
		i := rng.IntN(len(pool))
		out = append(out, pool[i])
		pool = append(pool[:i], pool[i+1:]...)
	}
	return out
}
