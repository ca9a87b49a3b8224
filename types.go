package main

type point struct {
	X, Y float64
}

// Settings is the live configuration pushed by the UI. Engines read it when
// an operation executes, never latch it.
type Settings struct {
	Tool       Tool
	Color      string // rainbowColor or "#RRGGBB"
	BrushSize  float64
	Opacity    int // 0..100
	Fill       bool
	FontSize   float64
	StampGlyph string
	StampSize  float64

	ParticleEffect    ParticleEffect
	ParticleIntensity int // 0..100
	ParticlesEnabled  bool
	CustomPalette     []string
}

func defaultSettings() *Settings {
	return &Settings{
		Tool:              ToolBrush,
		Color:             rainbowColor,
		BrushSize:         defaultBrushSize,
		Opacity:           100,
		FontSize:          defaultFontSize,
		StampGlyph:        stampGlyphs[0],
		StampSize:         defaultStampSize,
		ParticleEffect:    EffectStars,
		ParticleIntensity: 50,
		ParticlesEnabled:  true,
	}
}

func (s *Settings) isRainbow() bool {
	return s.Color == rainbowColor
}

func (s *Settings) alpha() float64 {
	return clampFloat(float64(s.Opacity)/100, 0, 1)
}

// simContext snapshots the particle-relevant settings for one tick or spawn.
func (s *Settings) simContext() SimContext {
	return SimContext{
		Enabled:      s.ParticlesEnabled,
		Intensity:    s.ParticleIntensity,
		Effect:       s.ParticleEffect,
		CustomColors: s.CustomPalette,
	}
}

// SimContext is what the particle loop reads on every spawn decision.
type SimContext struct {
	Enabled      bool
	Intensity    int
	Effect       ParticleEffect
	CustomColors []string
}

var stampGlyphs = []string{
	"⭐", "❤", "⚡", "☀", "☺",
	"❄", "♫", "♣", "♠", "♥",
	"♦", "✪", "✈", "☂", "☾",
}
