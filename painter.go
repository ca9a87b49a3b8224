package main

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

const haloPasses = 3

// Painter renders draw primitives. Hue is the shared rainbow cursor: every
// committed primitive drawn in rainbow mode advances it once.
type Painter struct {
	Hue   ColorCycle
	faces *faceCache
}

func newPainter() *Painter {
	return &Painter{faces: newFaceCache()}
}

// haloPreserve strokes the current path in widening translucent passes to
// fake a blurred glow. The path is kept for the caller's own fill/stroke.
func haloPreserve(dc *gg.Context, glow color.NRGBA, radius, baseWidth float64) {
	if radius <= 0 || glow.A == 0 {
		return
	}
	dc.SetLineCapRound()
	dc.SetLineJoinRound()
	dc.SetColor(withAlpha(glow, 0.15))
	for i := haloPasses; i >= 1; i-- {
		dc.SetLineWidth(baseWidth + 2*radius*float64(i)/haloPasses)
		dc.StrokePreserve()
	}
}

// textHalo draws the string at a ring of offsets around its anchor.
func textHalo(dc *gg.Context, s string, at point, ax, ay float64, glow color.NRGBA, radius float64) {
	dc.SetColor(withAlpha(glow, 0.12))
	r := radius / 2
	for k := 0; k < 8; k++ {
		a := float64(k) * math.Pi / 4
		dc.DrawStringAnchored(s, at.X+math.Cos(a)*r, at.Y+math.Sin(a)*r, ax, ay)
	}
}

// BrushLine commits one stroke segment.
func (p *Painter) BrushLine(dc *gg.Context, from, to point, s *Settings) {
	hex := s.Color
	if s.isRainbow() {
		hex = p.Hue.Next(rainbowColors)
	}
	col := withAlpha(parseHex(hex), s.alpha())

	if from == to {
		dc.DrawCircle(from.X, from.Y, s.BrushSize/2)
		haloPreserve(dc, col, glowCommitted, 0)
		dc.SetColor(col)
		dc.Fill()
		return
	}
	dc.DrawLine(from.X, from.Y, to.X, to.Y)
	haloPreserve(dc, col, glowCommitted, s.BrushSize)
	dc.SetLineWidth(s.BrushSize)
	dc.SetColor(col)
	dc.Stroke()
}

// Shape renders a line/rect/circle/triangle over the drag box. Previews
// glow less and do not advance the hue.
func (p *Painter) Shape(dc *gg.Context, tool Tool, start, end point, s *Settings, preview bool) {
	alpha := s.alpha()

	var stroke, fill gg.Pattern
	var glow color.NRGBA
	if s.isRainbow() {
		grad := newRainbowGradient(start.X, start.Y, end.X, end.Y, alpha)
		stroke, fill = grad, grad
		glow = withAlpha(parseHex(p.Hue.Peek(rainbowColors)), alpha)
	} else {
		solid := parseHex(s.Color)
		tint := solid
		tint.A = fillTintAlpha
		stroke = gg.NewSolidPattern(withAlpha(solid, alpha))
		fill = gg.NewSolidPattern(withAlpha(tint, alpha))
		glow = withAlpha(solid, alpha)
	}

	radius := glowCommitted
	if preview {
		radius = glowPreview
	}

	closed := traceShape(dc, tool, start, end)
	haloPreserve(dc, glow, radius, s.BrushSize)
	if s.Fill && closed {
		dc.SetFillStyle(fill)
		dc.FillPreserve()
	}
	dc.SetLineWidth(s.BrushSize)
	dc.SetStrokeStyle(stroke)
	dc.Stroke()

	if !preview && s.isRainbow() {
		p.Hue.Index++
	}
}

// Text renders a committed string with its top-left at the anchor.
func (p *Painter) Text(dc *gg.Context, at point, text string, s *Settings) {
	face, err := p.faces.face(s.FontSize)
	if err != nil {
		return
	}
	dc.SetFontFace(face)
	alpha := s.alpha()

	if !s.isRainbow() {
		solid := parseHex(s.Color)
		textHalo(dc, text, at, 0, 1, withAlpha(solid, alpha), glowText)
		dc.SetColor(withAlpha(solid, alpha))
		dc.DrawStringAnchored(text, at.X, at.Y, 0, 1)
		return
	}

	glow := withAlpha(parseHex(p.Hue.Next(rainbowColors)), alpha)
	textHalo(dc, text, at, 0, 1, glow, glowText)

	// Glyphs only take a solid colour, so the gradient is filled through
	// a mask of the rendered text.
	w, _ := dc.MeasureString(text)
	mask := gg.NewContext(dc.Width(), dc.Height())
	mask.SetFontFace(face)
	mask.SetColor(color.White)
	mask.DrawStringAnchored(text, at.X, at.Y, 0, 1)
	if err := dc.SetMask(mask.AsMask()); err != nil {
		dc.SetColor(glow)
		dc.DrawStringAnchored(text, at.X, at.Y, 0, 1)
		return
	}
	dc.SetFillStyle(newRainbowGradient(at.X, at.Y, at.X+w, at.Y, alpha))
	dc.DrawRectangle(0, 0, float64(dc.Width()), float64(dc.Height()))
	dc.Fill()
	dc.ResetClip()
}

// Stamp renders the selected glyph centred on the point. Glyphs the face
// lacks are replaced by a star of the same size.
func (p *Painter) Stamp(dc *gg.Context, at point, s *Settings) {
	hex := s.Color
	if s.isRainbow() {
		hex = p.Hue.Next(rainbowColors)
	}
	alpha := s.alpha()
	col := withAlpha(parseHex(hex), alpha)

	face, err := p.faces.face(s.StampSize)
	if err == nil && canRender(face, s.StampGlyph) {
		dc.SetFontFace(face)
		textHalo(dc, s.StampGlyph, at, 0.5, 0.5, col, glowStamp)
		dc.SetColor(col)
		dc.DrawStringAnchored(s.StampGlyph, at.X, at.Y, 0.5, 0.5)
		return
	}

	r := s.StampSize / 2
	tracePolygon(dc, starPoints(at.X, at.Y, 5, r, r*0.4))
	haloPreserve(dc, col, glowStamp, 0)
	dc.SetColor(col)
	dc.Fill()
}
