package motion

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"designarena/internal/domain"
	"designarena/internal/lottie"
)

func idea() domain.Idea {
	return domain.Idea{
		ProjectName: "Tech Talks Thumbnail",
		DesignType:  domain.DesignTypeThumbnail,
		Colors:      []string{"#0ea5e9", "#7c3aed", "#22d3ee"},
		AspectRatio: "1280x720",
	}
}

func TestSynthesizeShape(t *testing.T) {
	m := Synthesize(idea())

	assert.Equal(t, "motion_tech_talks_thumbnail", m.ID)
	assert.Equal(t, "tech_talks_thumbnail.lottie.json", m.Filename)

	a := m.Animation
	require.NoError(t, a.Validate())
	assert.Equal(t, lottie.Version, a.Version)
	assert.Equal(t, float64(30), a.FrameRate)
	assert.Equal(t, float64(0), a.InPoint)
	assert.Equal(t, float64(120), a.OutPoint)
	assert.Equal(t, 1080, a.Width)
	assert.Equal(t, 1080, a.Height)
	assert.Equal(t, "Tech Talks Thumbnail Motion", a.Name)

	require.Len(t, a.Layers, 3)
	assert.Equal(t, lottie.LayerShape, a.Layers[0].Type)
	assert.Equal(t, lottie.LayerShape, a.Layers[1].Type)
	assert.Equal(t, lottie.LayerText, a.Layers[2].Type)

	sweep := a.Layers[1].Transform.Position
	require.True(t, sweep.Animated())
	require.Len(t, sweep.Keyframes, 2)
	assert.Equal(t, float64(0), sweep.Keyframes[0].Time)
	assert.Equal(t, float64(120), sweep.Keyframes[1].Time)
	assert.Less(t, sweep.Keyframes[0].Start[0], float64(0))
	assert.Greater(t, sweep.Keyframes[1].Start[0], float64(1080))

	title := a.Layers[2].Text.Document.Keyframes[0].Style
	assert.Equal(t, "Tech Talks Thumbnail", title.Text)
	assert.Equal(t, FontFamily, title.Font)
	assert.Equal(t, []float64{1, 1, 1}, title.FillColor)
}

func TestSynthesizeUsesUnitColors(t *testing.T) {
	m := Synthesize(idea())
	bgFill := m.Animation.Layers[0].Shapes[1]
	require.Equal(t, lottie.ShapeFill, bgFill.Type)
	for _, ch := range bgFill.Color.Value {
		assert.GreaterOrEqual(t, ch, float64(0))
		assert.LessOrEqual(t, ch, float64(1))
	}
	assert.InDelta(t, 14.0/255, bgFill.Color.Value[0], 1e-9)
	assert.Equal(t, float64(1), bgFill.Color.Value[3])
}

func TestSynthesizeIsDeterministic(t *testing.T) {
	a, err := json.Marshal(Synthesize(idea()))
	require.NoError(t, err)
	b, err := json.Marshal(Synthesize(idea()))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSynthesizeWireFormat(t *testing.T) {
	b, err := json.Marshal(Synthesize(idea()).Animation)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(b, &doc))
	assert.Equal(t, "5.10.0", doc["v"])
	assert.Equal(t, []any{}, doc["assets"])

	layers := doc["layers"].([]any)
	sweep := layers[1].(map[string]any)
	ks := sweep["ks"].(map[string]any)
	assert.Equal(t, map[string]any{"a": float64(0), "k": float64(-20)}, ks["r"])
	pos := ks["p"].(map[string]any)
	assert.Equal(t, float64(1), pos["a"])

	var round lottie.Animation
	require.NoError(t, json.Unmarshal(b, &round))
	assert.Equal(t, Synthesize(idea()).Animation, round)
}

func TestSelectIdea(t *testing.T) {
	plan := domain.Plan{DailyIdeas: []domain.Idea{idea(), {ProjectName: "Other"}}}

	got, err := SelectIdea(plan, 1)
	require.NoError(t, err)
	assert.Equal(t, "Other", got.ProjectName)

	_, err = SelectIdea(plan, 2)
	assert.True(t, errors.Is(err, domain.ErrIdeaOutOfRange))

	_, err = SelectIdea(domain.Plan{}, 0)
	assert.True(t, errors.Is(err, domain.ErrEmptyPlan))
}
