// Package motion synthesizes a short looping Lottie animation for an idea:
// a solid backdrop, a diagonal accent sweep and a static title.
package motion

import (
	"fmt"

	"designarena/internal/composer"
	"designarena/internal/domain"
	"designarena/internal/lottie"
	"designarena/internal/palette"
)

const (
	FrameRate = 30
	Frames    = 120
	Canvas    = 1080

	// FontFamily is a generic family so players never need an embedded font.
	FontFamily = "sans-serif"

	titleSize       = 72
	titleLineHeight = 86
	sweepWidth      = 800
	sweepHeight     = 260
	sweepRadius     = 30
	sweepRotation   = -20
	sweepOpacity    = 90
)

// Synthesize builds the animation for idea. The output depends only on the
// idea, so equal ideas produce byte-identical documents.
func Synthesize(idea domain.Idea) domain.MotionAsset {
	p := palette.Ensure(idea.Colors)
	bg, accent := p[0], p[2]
	name := composer.Slug(idea.ProjectName)

	anim := lottie.Animation{
		Version:   lottie.Version,
		FrameRate: FrameRate,
		InPoint:   0,
		OutPoint:  Frames,
		Width:     Canvas,
		Height:    Canvas,
		Name:      idea.ProjectName + " Motion",
		Assets:    []lottie.AssetRef{},
		Layers: []lottie.Layer{
			backgroundLayer(bg),
			sweepLayer(accent),
			titleLayer(idea.ProjectName, palette.ContrastColor(bg)),
		},
	}

	return domain.MotionAsset{
		ID:        "motion_" + name,
		Filename:  name + ".lottie.json",
		Animation: anim,
	}
}

// SelectIdea returns the idea a plan-level motion request animates.
func SelectIdea(plan domain.Plan, index int) (domain.Idea, error) {
	if len(plan.DailyIdeas) == 0 {
		return domain.Idea{}, domain.ErrEmptyPlan
	}
	if index < 0 || index >= len(plan.DailyIdeas) {
		return domain.Idea{}, fmt.Errorf("%w: %d of %d", domain.ErrIdeaOutOfRange, index, len(plan.DailyIdeas))
	}
	return plan.DailyIdeas[index], nil
}

func backgroundLayer(color string) lottie.Layer {
	l := baseLayer(1, lottie.LayerShape, "Background", staticTransform(100, 0, Canvas/2, Canvas/2))
	l.Shapes = []lottie.Shape{
		rect(Canvas, Canvas, 0),
		fill(color),
	}
	return l
}

func sweepLayer(color string) lottie.Layer {
	ks := staticTransform(sweepOpacity, sweepRotation, 0, 0)
	ks.Position = lottie.Vector{Keyframes: []lottie.Keyframe{
		{Time: 0, Start: []float64{-300, 800, 0}},
		{Time: Frames, Start: []float64{Canvas + 300, 200, 0}},
	}}
	l := baseLayer(2, lottie.LayerShape, "Sweep", ks)
	l.Shapes = []lottie.Shape{
		rect(sweepWidth, sweepHeight, sweepRadius),
		fill(color),
	}
	return l
}

func titleLayer(text, color string) lottie.Layer {
	c := palette.Unit(color)
	l := baseLayer(3, lottie.LayerText, "Title", staticTransform(100, 0, Canvas/2, 420))
	l.Text = &lottie.TextData{
		Document: lottie.TextDocument{Keyframes: []lottie.TextKeyframe{{
			Style: lottie.TextStyle{
				Size:       titleSize,
				Font:       FontFamily,
				Text:       text,
				LineHeight: titleLineHeight,
				FillColor:  c[:],
			},
			Time: 0,
		}}},
		More: lottie.Static(0),
	}
	return l
}

func baseLayer(index int, ty lottie.LayerType, name string, ks lottie.Transform) lottie.Layer {
	return lottie.Layer{
		Index:     index,
		Type:      ty,
		Name:      name,
		Stretch:   1,
		Transform: ks,
		InPoint:   0,
		OutPoint:  Frames,
	}
}

func staticTransform(opacity, rotation, x, y float64) lottie.Transform {
	return lottie.Transform{
		Opacity:  lottie.Static(opacity),
		Rotation: lottie.Static(rotation),
		Position: lottie.StaticVector(x, y, 0),
		Anchor:   lottie.StaticVector(0, 0, 0),
		Scale:    lottie.StaticVector(100, 100, 100),
	}
}

func rect(w, h, radius float64) lottie.Shape {
	size := lottie.StaticVector(w, h)
	pos := lottie.StaticVector(0, 0)
	r := lottie.Static(radius)
	return lottie.Shape{Type: lottie.ShapeRect, Direction: 1, Size: &size, Position: &pos, Roundness: &r}
}

func fill(color string) lottie.Shape {
	c := palette.Unit(color)
	v := lottie.StaticVector(c[0], c[1], c[2], 1)
	o := lottie.Static(100)
	return lottie.Shape{Type: lottie.ShapeFill, Color: &v, Opacity: &o}
}
