package domain

// DesignType enumerates the content formats a plan produces one idea for.
type DesignType string

const (
	DesignTypeThumbnail  DesignType = "thumbnail"
	DesignTypeSocialPost DesignType = "instagram_post"
	DesignTypeBanner     DesignType = "banner"
	DesignTypePoster     DesignType = "poster"
	DesignTypeStory      DesignType = "story"
	DesignTypeCover      DesignType = "cover"
)

// Valid reports whether t is one of the known design types.
func (t DesignType) Valid() bool {
	switch t {
	case DesignTypeThumbnail, DesignTypeSocialPost, DesignTypeBanner,
		DesignTypePoster, DesignTypeStory, DesignTypeCover:
		return true
	}
	return false
}

// Brief holds the user preferences a plan is generated from.
type Brief struct {
	Niche  string   `json:"niche" yaml:"niche" validate:"required,min=2"`
	Theme  string   `json:"theme" yaml:"theme" validate:"required,min=2"`
	Colors []string `json:"colors" yaml:"colors" validate:"required,min=1,dive,hexlike"`
	Goal   string   `json:"goal" yaml:"goal" validate:"required,min=2"`
}

// Idea is one planned piece of content.
type Idea struct {
	ProjectName string     `json:"project_name" validate:"required"`
	DesignType  DesignType `json:"design_type" validate:"required,oneof=thumbnail instagram_post banner poster story cover"`
	Theme       string     `json:"theme"`
	Colors      []string   `json:"colors"`
	Style       string     `json:"style"`
	Keywords    []string   `json:"keywords"`
	AspectRatio string     `json:"aspect_ratio"`
}

// Moodboard groups the shared creative direction of a plan.
type Moodboard struct {
	PaletteName  string   `json:"palette_name"`
	Colors       []string `json:"colors"`
	Typography   []string `json:"typography"`
	LayoutStyles []string `json:"layout_styles"`
}

// Plan is the strategist output consumed by the composer, the motion
// synthesizer and the publisher. Ideas carry validate tags but are only
// checked where a handler asks for it (see validation.Ideas).
type Plan struct {
	Summary    string    `json:"summary"`
	Moodboard  Moodboard `json:"moodboard"`
	DailyIdeas []Idea    `json:"daily_ideas"`
}
