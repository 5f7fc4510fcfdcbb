package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{in: "#0EA5E9", want: "#0ea5e9", ok: true},
		{in: "7c3aed", want: "#7c3aed", ok: true},
		{in: "#fff", want: "#ffffff", ok: true},
		{in: " abc ", want: "#aabbcc", ok: true},
		{in: "#12345", ok: false},
		{in: "zzzzzz", ok: false},
		{in: "", ok: false},
	}
	for _, tc := range tests {
		got, ok := Normalize(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestEnsureKeepsValidColorsInOrder(t *testing.T) {
	got := Ensure([]string{"#0ea5e9", "xyz", "7c3aed", "#22d3ee"})
	assert.Equal(t, []string{"#0ea5e9", "#7c3aed", "#22d3ee"}, got)
}

func TestEnsureFillsMissingSlots(t *testing.T) {
	got := Ensure([]string{"#336699"})
	require.Len(t, got, MinSlots)
	assert.Equal(t, "#336699", got[0])
	assert.Equal(t, Darken("#336699", darkenStep), got[1])
	assert.Equal(t, Lighten("#336699", lightenStep), got[2])

	assert.Equal(t, got, Ensure([]string{"336699"}), "derivation must be deterministic")
}

func TestEnsureFallsBackToNeutral(t *testing.T) {
	got := Ensure([]string{"not-a-color"})
	require.Len(t, got, MinSlots)
	assert.Equal(t, Neutral, got[0])

	got = Ensure(nil)
	require.Len(t, got, MinSlots)
	assert.Equal(t, Neutral, got[0])

	for _, c := range []string{"#1234", "12345"} {
		got = Ensure([]string{c})
		assert.Equal(t, Neutral, got[0], c)
	}
}

func TestContrastColor(t *testing.T) {
	assert.Equal(t, Black, ContrastColor("#ffffff"))
	assert.Equal(t, White, ContrastColor("#000000"))
	assert.Equal(t, White, ContrastColor("#7c3aed"))
	assert.Equal(t, Black, ContrastColor("#22d3ee"))
	assert.Equal(t, White, ContrastColor("garbage"))

	for _, c := range []string{"#0ea5e9", "#fde68a", "#111"} {
		first := ContrastColor(c)
		assert.Contains(t, []string{Black, White}, first)
		assert.Equal(t, first, ContrastColor(c))
	}
}

func TestToRGBString(t *testing.T) {
	assert.Equal(t, "14,165,233", ToRGBString("#0ea5e9"))
	assert.Equal(t, "255,255,255", ToRGBString("fff"))
	assert.Equal(t, "128,128,128", ToRGBString("nope"))
}

func TestUnit(t *testing.T) {
	assert.Equal(t, [3]float64{1, 1, 1}, Unit("#ffffff"))
	assert.Equal(t, [3]float64{0, 0, 0}, Unit("#000"))
}

func TestLightenDarkenBounds(t *testing.T) {
	assert.Equal(t, "#ffffff", Lighten("#123456", 1))
	assert.Equal(t, "#000000", Darken("#123456", 2))
	assert.Equal(t, "#123456", Lighten("#123456", 0))
}
