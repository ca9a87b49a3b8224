package main

type Tool int

const (
	ToolBrush Tool = iota
	ToolEraser
	ToolLine
	ToolRect
	ToolCircle
	ToolTriangle
	ToolText
	ToolStamp
)

var toolNames = map[Tool]string{
	ToolBrush:    "brush",
	ToolEraser:   "eraser",
	ToolLine:     "line",
	ToolRect:     "rect",
	ToolCircle:   "circle",
	ToolTriangle: "triangle",
	ToolText:     "text",
	ToolStamp:    "stamp",
}

func (t Tool) String() string {
	if name, ok := toolNames[t]; ok {
		return name
	}
	return "unknown"
}

// isShape reports whether the tool previews on the overlay before committing.
func (t Tool) isShape() bool {
	return t == ToolLine || t == ToolRect || t == ToolCircle || t == ToolTriangle
}

func (t Tool) isStroke() bool {
	return t == ToolBrush || t == ToolEraser
}

func parseTool(name string) (Tool, bool) {
	for tool, n := range toolNames {
		if n == name {
			return tool, true
		}
	}
	return ToolBrush, false
}

// State is the drawing state machine's current mode.
type State int

const (
	StateIdle State = iota
	StateStroking
	StateShaping
	StateTexting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateStroking:
		return "STROKE"
	case StateShaping:
		return "SHAPE"
	case StateTexting:
		return "TEXT"
	default:
		return "UNKNOWN"
	}
}

type ParticleEffect int

const (
	EffectStars ParticleEffect = iota
	EffectSnow
	EffectFirework
	EffectConfetti
)

var effectNames = []string{"stars", "snow", "firework", "confetti"}

func (e ParticleEffect) String() string {
	if int(e) >= 0 && int(e) < len(effectNames) {
		return effectNames[e]
	}
	return "unknown"
}

func parseEffect(name string) (ParticleEffect, bool) {
	for i, n := range effectNames {
		if n == name {
			return ParticleEffect(i), true
		}
	}
	return EffectStars, false
}

type Shape int

const (
	ShapeStar Shape = iota
	ShapeFlake
	ShapeSpark
	ShapeRect
)

const (
	maxHistory = 50

	// Pixels per terminal cell. Half-block rendering shows two rows per cell.
	cellWidth  = 8
	cellHeight = 16

	rainbowColor = "rainbow"

	defaultBrushSize = 4.0
	minBrushSize     = 1.0
	maxBrushSize     = 64.0
	defaultFontSize  = 24.0
	minFontSize      = 12.0
	maxFontSize      = 72.0
	defaultStampSize = 40.0
	minStampSize     = 16.0
	maxStampSize     = 120.0

	// Lowest opacity a tool paints with, in percent.
	minOpacity = 5

	// Glow radii: committed primitives glow wider than previews.
	glowCommitted = 8.0
	glowPreview   = 4.0
	glowText      = 8.0
	glowStamp     = 10.0

	// Shape fill tint alpha (0x66).
	fillTintAlpha = 0x66

	watermarkSize    = 500
	watermarkOpacity = 0.08
)
