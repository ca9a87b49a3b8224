package main

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/fogleman/gg"
)

var rainbowColors = []string{
	"#FF0000", "#FF4500", "#FF8C00", "#FFD700", "#FFFF00",
	"#ADFF2F", "#00FF00", "#00CED1", "#00BFFF", "#1E90FF",
	"#6A5ACD", "#8A2BE2", "#FF00FF", "#FF1493",
}

var snowColors = []string{"#FFFFFF", "#E8E8E8", "#D0D0D0", "#C8D8E8", "#B0C4DE"}

var confettiColors = []string{
	"#FF0000", "#FF8C00", "#FFD700", "#00FF00", "#00BFFF",
	"#8A2BE2", "#FF1493", "#FF4500", "#1E90FF", "#ADFF2F",
}

// drawPalette is the colour selector; slot 0 cycles the rainbow.
var drawPalette = []string{
	rainbowColor,
	"#FF0000", "#FF8C00", "#FFD700", "#00FF00", "#00CED1",
	"#1E90FF", "#8A2BE2", "#FF1493", "#FFFFFF",
}

type palettePreset struct {
	Name   string
	Colors []string
}

// particlePresets lists the particle colour sets; an empty list means the
// effect's own palette.
var particlePresets = []palettePreset{
	{Name: "standard"},
	{Name: "fire", Colors: []string{"#FF0000", "#FF4500", "#FF8C00", "#FFD700", "#FFFF00"}},
	{Name: "ocean", Colors: []string{"#001F54", "#0A7E8C", "#00BFFF", "#1E90FF", "#00CED1", "#40E0D0"}},
	{Name: "forest", Colors: []string{"#006400", "#228B22", "#32CD32", "#ADFF2F", "#00FF00", "#7CFC00"}},
	{Name: "neon", Colors: []string{"#FF00FF", "#00FFFF", "#00FF00", "#FFFF00", "#FF0080"}},
	{Name: "pastel", Colors: []string{"#FFB3BA", "#BAFFC9", "#BAE1FF", "#FFFFBA", "#E8BAFF"}},
	{Name: "ice", Colors: []string{"#E0F7FA", "#B2EBF2", "#80DEEA", "#4DD0E1", "#00BCD4"}},
	{Name: "blood", Colors: []string{"#8B0000", "#B22222", "#DC143C", "#FF0000", "#FF4444"}},
}

func presetByName(name string) (palettePreset, bool) {
	for _, p := range particlePresets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return palettePreset{}, false
}

// parseHex parses #RGB, #RRGGBB and #RRGGBBAA. Invalid input yields opaque white.
func parseHex(s string) color.NRGBA {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{255, 255, 255, 255}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{255, 255, 255, 255}
	}
	if len(s) == 6 {
		return color.NRGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}
	}
	return color.NRGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}
}

func isHexColor(s string) bool {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 3 && len(s) != 6 {
		return false
	}
	_, err := strconv.ParseUint(s, 16, 32)
	return err == nil
}

// withAlpha scales the colour's alpha by a (0..1).
func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	a = clampFloat(a, 0, 1)
	c.A = uint8(float64(c.A)*a + 0.5)
	return c
}

// newRainbowGradient spans every rainbow colour from (x1,y1) to (x2,y2).
func newRainbowGradient(x1, y1, x2, y2, alpha float64) gg.Gradient {
	if x1 == x2 && y1 == y2 {
		// gg cannot orient a zero-length gradient.
		x2++
	}
	g := gg.NewLinearGradient(x1, y1, x2, y2)
	last := float64(len(rainbowColors) - 1)
	for i, hex := range rainbowColors {
		g.AddColorStop(float64(i)/last, withAlpha(parseHex(hex), alpha))
	}
	return g
}

// ColorCycle walks a palette in order. The index is exported so tests and
// callers can seed and inspect the progression.
type ColorCycle struct {
	Index int
}

// Next returns the colour at the cursor and advances it.
func (c *ColorCycle) Next(palette []string) string {
	col := c.Peek(palette)
	c.Index++
	return col
}

// Peek returns the colour at the cursor without advancing.
func (c *ColorCycle) Peek(palette []string) string {
	if len(palette) == 0 {
		return "#FFFFFF"
	}
	return palette[c.Index%len(palette)]
}
