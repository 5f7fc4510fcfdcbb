// Package palette normalizes user supplied hex colors and derives the
// readable foregrounds the composer and motion synthesizer draw with.
package palette

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// Neutral replaces any color string that cannot be parsed.
	Neutral = "#808080"

	Black = "#000000"
	White = "#ffffff"

	// MinSlots is the number of colors downstream consumers index into:
	// background, secondary background and accent.
	MinSlots = 3

	contrastThreshold = 0.6
	darkenStep        = 0.25
	lightenStep       = 0.35
)

// Normalize returns hex as a lowercase "#rrggbb" string. The leading '#' is
// optional and 3-digit shorthand is expanded.
func Normalize(hex string) (string, bool) {
	c := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(c) == 3 {
		c = string([]byte{c[0], c[0], c[1], c[1], c[2], c[2]})
	}
	if len(c) != 6 {
		return "", false
	}
	if _, err := strconv.ParseUint(c, 16, 32); err != nil {
		return "", false
	}
	return "#" + strings.ToLower(c), true
}

// Ensure turns colors into a palette with at least MinSlots entries.
// Unparseable entries are dropped; missing slots are filled with darker and
// lighter variants of the first color, so the result is deterministic.
func Ensure(colors []string) []string {
	out := make([]string, 0, max(len(colors), MinSlots))
	for _, c := range colors {
		if n, ok := Normalize(c); ok {
			out = append(out, n)
		}
	}
	if len(out) == 0 {
		out = append(out, Neutral)
	}
	base := out[0]
	for i := 0; len(out) < MinSlots; i++ {
		step := float64(i/2 + 1)
		if i%2 == 0 {
			out = append(out, Darken(base, darkenStep*step))
		} else {
			out = append(out, Lighten(base, lightenStep*step))
		}
	}
	return out
}

// RGB returns the channels of hex, falling back to Neutral.
func RGB(hex string) (r, g, b uint8) {
	n, ok := Normalize(hex)
	if !ok {
		n = Neutral
	}
	v, _ := strconv.ParseUint(n[1:], 16, 32)
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}

// Unit returns the channels of hex scaled to [0,1].
func Unit(hex string) [3]float64 {
	r, g, b := RGB(hex)
	return [3]float64{float64(r) / 255, float64(g) / 255, float64(b) / 255}
}

// Luminance is the perceptually weighted brightness of hex in [0,1].
func Luminance(hex string) float64 {
	r, g, b := RGB(hex)
	return (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 255
}

// ContrastColor picks black or white text for a background of hex.
func ContrastColor(hex string) string {
	if Luminance(hex) > contrastThreshold {
		return Black
	}
	return White
}

// ToRGBString formats hex as "r,g,b" for use inside rgba().
func ToRGBString(hex string) string {
	r, g, b := RGB(hex)
	return fmt.Sprintf("%d,%d,%d", r, g, b)
}

// Lighten mixes hex toward white by amount in [0,1].
func Lighten(hex string, amount float64) string {
	return mix(hex, 255, amount)
}

// Darken mixes hex toward black by amount in [0,1].
func Darken(hex string, amount float64) string {
	return mix(hex, 0, amount)
}

func mix(hex string, target float64, amount float64) string {
	amount = min(max(amount, 0), 1)
	r, g, b := RGB(hex)
	ch := func(v uint8) uint8 {
		f := float64(v) + (target-float64(v))*amount
		return uint8(f + 0.5)
	}
	return fmt.Sprintf("#%02x%02x%02x", ch(r), ch(g), ch(b))
}
