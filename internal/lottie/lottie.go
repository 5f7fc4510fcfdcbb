// Package lottie models the subset of the Lottie (Bodymovin) JSON format the
// motion synthesizer emits. Properties marshal in the format's native
// {"a": 0|1, "k": ...} shape so players can consume the documents directly.
package lottie

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Version is the Bodymovin schema version written into every document.
const Version = "5.10.0"

// LayerType is the numeric "ty" tag of a layer.
type LayerType int

const (
	LayerSolid LayerType = 1
	LayerShape LayerType = 4
	LayerText  LayerType = 5
)

// ShapeType is the string "ty" tag of a shape item.
type ShapeType string

const (
	ShapeRect ShapeType = "rc"
	ShapeFill ShapeType = "fl"
)

// Animation is the document root.
type Animation struct {
	Version   string     `json:"v"`
	FrameRate float64    `json:"fr"`
	InPoint   float64    `json:"ip"`
	OutPoint  float64    `json:"op"`
	Width     int        `json:"w"`
	Height    int        `json:"h"`
	Name      string     `json:"nm"`
	ThreeD    int        `json:"ddd"`
	Assets    []AssetRef `json:"assets"`
	Layers    []Layer    `json:"layers"`
}

// AssetRef is a precomp or image reference. None are emitted today, but the
// field must be present as an empty list.
type AssetRef struct {
	ID string `json:"id"`
}

// Layer is one entry of Animation.Layers. Which payload fields are set
// depends on Type.
type Layer struct {
	ThreeD    int       `json:"ddd"`
	Index     int       `json:"ind"`
	Type      LayerType `json:"ty"`
	Name      string    `json:"nm"`
	Stretch   float64   `json:"sr"`
	Transform Transform `json:"ks"`

	// LayerSolid
	SolidColor  string `json:"sc,omitempty"`
	SolidWidth  int    `json:"sw,omitempty"`
	SolidHeight int    `json:"sh,omitempty"`

	// LayerShape
	Shapes []Shape `json:"shapes,omitempty"`

	// LayerText
	Text *TextData `json:"t,omitempty"`

	InPoint   float64 `json:"ip"`
	OutPoint  float64 `json:"op"`
	StartTime float64 `json:"st"`
	BlendMode int     `json:"bm"`
}

// Transform is the "ks" block of a layer.
type Transform struct {
	Opacity  Scalar `json:"o"`
	Rotation Scalar `json:"r"`
	Position Vector `json:"p"`
	Anchor   Vector `json:"a"`
	Scale    Vector `json:"s"`
}

// Shape is a shape item of a shape layer. Rectangles use Direction, Size,
// Position and Roundness; fills use Color and Opacity.
type Shape struct {
	Type      ShapeType `json:"ty"`
	Direction int       `json:"d,omitempty"`
	Size      *Vector   `json:"s,omitempty"`
	Position  *Vector   `json:"p,omitempty"`
	Roundness *Scalar   `json:"r,omitempty"`
	Color     *Vector   `json:"c,omitempty"`
	Opacity   *Scalar   `json:"o,omitempty"`
}

// TextData is the "t" payload of a text layer.
type TextData struct {
	Document TextDocument `json:"d"`
	Path     struct{}     `json:"p"`
	More     Scalar       `json:"m"`
}

// TextDocument holds the keyframed text documents.
type TextDocument struct {
	Keyframes []TextKeyframe `json:"k"`
}

// TextKeyframe sets Style from frame Time onwards.
type TextKeyframe struct {
	Style TextStyle `json:"s"`
	Time  float64   `json:"t"`
}

// TextStyle describes the rendered text.
type TextStyle struct {
	Size       float64   `json:"s"`
	Font       string    `json:"f"`
	Text       string    `json:"t"`
	Justify    int       `json:"j"`
	Tracking   float64   `json:"tr"`
	LineHeight float64   `json:"lh"`
	Baseline   float64   `json:"ls"`
	FillColor  []float64 `json:"fc"`
}

// Keyframe holds the start value of a property at frame Time.
type Keyframe struct {
	Time  float64   `json:"t"`
	Start []float64 `json:"s"`
}

type property struct {
	Animated int             `json:"a"`
	K        json.RawMessage `json:"k"`
}

// Scalar is a one-dimensional property, either static or keyframed.
type Scalar struct {
	Value     float64
	Keyframes []Keyframe
}

// Static returns a non-animated scalar.
func Static(v float64) Scalar { return Scalar{Value: v} }

// Animated reports whether the property carries keyframes.
func (s Scalar) Animated() bool { return len(s.Keyframes) > 0 }

func (s Scalar) MarshalJSON() ([]byte, error) {
	if s.Animated() {
		return marshalProperty(1, s.Keyframes)
	}
	return marshalProperty(0, s.Value)
}

func (s *Scalar) UnmarshalJSON(data []byte) error {
	var p property
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*s = Scalar{}
	if p.Animated == 1 {
		return json.Unmarshal(p.K, &s.Keyframes)
	}
	if len(p.K) == 0 {
		return nil
	}
	return json.Unmarshal(p.K, &s.Value)
}

// Vector is a multi-dimensional property, either static or keyframed.
type Vector struct {
	Value     []float64
	Keyframes []Keyframe
}

// StaticVector returns a non-animated vector.
func StaticVector(v ...float64) Vector { return Vector{Value: v} }

// Animated reports whether the property carries keyframes.
func (v Vector) Animated() bool { return len(v.Keyframes) > 0 }

func (v Vector) MarshalJSON() ([]byte, error) {
	if v.Animated() {
		return marshalProperty(1, v.Keyframes)
	}
	value := v.Value
	if value == nil {
		value = []float64{}
	}
	return marshalProperty(0, value)
}

func (v *Vector) UnmarshalJSON(data []byte) error {
	var p property
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*v = Vector{}
	if p.Animated == 1 {
		return json.Unmarshal(p.K, &v.Keyframes)
	}
	if len(p.K) == 0 {
		return nil
	}
	return json.Unmarshal(p.K, &v.Value)
}

func marshalProperty(animated int, k any) ([]byte, error) {
	raw, err := json.Marshal(k)
	if err != nil {
		return nil, err
	}
	return json.Marshal(property{Animated: animated, K: raw})
}

// Validate checks the structural invariants players rely on.
func (a Animation) Validate() error {
	var errs []error
	if a.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("frame rate must be positive, got %v", a.FrameRate))
	}
	if a.InPoint < 0 {
		errs = append(errs, fmt.Errorf("in point must be non-negative, got %v", a.InPoint))
	}
	if a.OutPoint < a.InPoint {
		errs = append(errs, fmt.Errorf("out point %v before in point %v", a.OutPoint, a.InPoint))
	}
	if a.Width <= 0 || a.Height <= 0 {
		errs = append(errs, fmt.Errorf("canvas must be positive, got %dx%d", a.Width, a.Height))
	}
	if len(a.Layers) == 0 {
		errs = append(errs, errors.New("at least one layer is required"))
	}
	for i, l := range a.Layers {
		switch l.Type {
		case LayerSolid:
			if l.SolidColor == "" {
				errs = append(errs, fmt.Errorf("layer %d: solid layer without color", i))
			}
		case LayerShape:
			if len(l.Shapes) == 0 {
				errs = append(errs, fmt.Errorf("layer %d: shape layer without shapes", i))
			}
		case LayerText:
			if l.Text == nil || len(l.Text.Document.Keyframes) == 0 {
				errs = append(errs, fmt.Errorf("layer %d: text layer without document", i))
			}
		default:
			errs = append(errs, fmt.Errorf("layer %d: unsupported type %d", i, l.Type))
		}
	}
	return errors.Join(errs...)
}
