package main

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("236"))
	modeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("213")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	markStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
)

// rgb is a straight (non-premultiplied) colour in 0..1.
type rgb struct {
	R, G, B float64
}

func (c rgb) hex() string {
	return fmt.Sprintf("#%02X%02X%02X", to8(c.R), to8(c.G), to8(c.B))
}

func to8(v float64) uint8 {
	return uint8(clampFloat(v, 0, 1)*255 + 0.5)
}

// sampleBlock summarises a pixel block as the coverage-weighted colour and
// the peak alpha, so thin strokes stay visible once shrunk to a half cell.
func sampleBlock(im *image.RGBA, r image.Rectangle) (rgb, float64) {
	if im == nil {
		return rgb{}, 0
	}
	r = r.Intersect(im.Bounds())
	var sr, sg, sb, sa float64
	var peak uint8
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := im.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			a := im.Pix[i+3]
			if a != 0 {
				sr += float64(im.Pix[i])
				sg += float64(im.Pix[i+1])
				sb += float64(im.Pix[i+2])
				sa += float64(a)
				peak = max(peak, a)
			}
			i += 4
		}
	}
	if sa == 0 {
		return rgb{}, 0
	}
	return rgb{sr / sa, sg / sa, sb / sa}, float64(peak) / 255
}

// compositeBlock stacks the layers bottom to top over black.
func compositeBlock(layers []*image.RGBA, r image.Rectangle) rgb {
	var out rgb
	for _, im := range layers {
		c, a := sampleBlock(im, r)
		if a == 0 {
			continue
		}
		out.R = out.R*(1-a) + c.R*a
		out.G = out.G*(1-a) + c.G*a
		out.B = out.B*(1-a) + c.B*a
	}
	return out
}

// cellRenderer turns colour pairs into styled half-block cells.
type cellRenderer struct {
	cache map[[2]string]string
}

func newCellRenderer() *cellRenderer {
	return &cellRenderer{cache: make(map[[2]string]string)}
}

func (cr *cellRenderer) cell(top, bottom rgb) string {
	key := [2]string{top.hex(), bottom.hex()}
	if s, ok := cr.cache[key]; ok {
		return s
	}
	if len(cr.cache) > 8192 {
		cr.cache = make(map[[2]string]string)
	}
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(key[0])).
		Background(lipgloss.Color(key[1])).
		Render("▀")
	cr.cache[key] = s
	return s
}

// renderLayers draws cols×rows cells from layers sharing one pixel space.
func (cr *cellRenderer) renderLayers(layers []*image.RGBA, cols, rows int) []string {
	lines := make([]string, rows)
	half := cellHeight / 2
	var b strings.Builder
	for row := 0; row < rows; row++ {
		b.Reset()
		y := row * cellHeight
		for col := 0; col < cols; col++ {
			x := col * cellWidth
			top := compositeBlock(layers, image.Rect(x, y, x+cellWidth, y+half))
			bottom := compositeBlock(layers, image.Rect(x, y+half, x+cellWidth, y+cellHeight))
			b.WriteString(cr.cell(top, bottom))
		}
		lines[row] = b.String()
	}
	return lines
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}
	if m.width < 1 || m.height < 1 {
		return ""
	}

	rows := m.canvasRows()
	var layers []*image.RGBA
	if c := m.engine.Canvas(); c.Ready() {
		layers = append(layers, c.Image(), c.PreviewImage())
	}
	if pc := m.particles.Canvas(); pc != nil {
		layers = append(layers, pc.Image().(*image.RGBA))
	}
	lines := m.cells.renderLayers(layers, m.width, rows)
	if m.paletteVisible && rows > 0 {
		lines[rows-1] = m.paletteLine()
	}

	var result strings.Builder
	for _, line := range lines {
		result.WriteString(line)
		result.WriteString("\n")
	}
	result.WriteString(m.statusLine())
	return result.String()
}

func (m model) modeString() string {
	s := m.settings
	if s.Tool == ToolText && m.engine.Machine().State() == StateTexting {
		return "TEXT*"
	}
	return strings.ToUpper(s.Tool.String())
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func (m model) statusLine() string {
	s := m.settings
	h := m.engine.History()

	color := s.Color
	if s.isRainbow() {
		color = "rainbow"
	}
	parts := []string{
		fmt.Sprintf("%s %.0fpx %d%% fill:%s", color, s.BrushSize, s.Opacity, onOff(s.Fill)),
		fmt.Sprintf("%s %d %s", s.ParticleEffect, s.ParticleIntensity, onOff(s.ParticlesEnabled)),
		fmt.Sprintf("undo:%s redo:%s", onOff(h.CanUndo()), onOff(h.CanRedo())),
	}
	if at, text, ok := m.engine.Machine().PendingText(); ok {
		parts = append(parts, fmt.Sprintf("text@%.0f,%.0f: %s▌", at.X, at.Y, text))
	}

	switch m.confirmAction {
	case ConfirmClear:
		return modeStyle.Render(" CONFIRM ") + statusStyle.Render(" Clear the drawing? (y/n) ")
	case ConfirmQuit:
		return modeStyle.Render(" CONFIRM ") + statusStyle.Render(" Quit Glimmer? (y/n) ")
	}
	if m.penDown {
		parts = append(parts, fmt.Sprintf("pen down (%d,%d)", m.cursorX, m.cursorY))
	}

	line := modeStyle.Render(" "+m.modeString()+" ") + statusStyle.Render(" "+strings.Join(parts, " │ ")+" ")
	switch {
	case m.errorMessage != "":
		line += " " + errStyle.Render(m.errorMessage)
	case m.successMessage != "":
		line += " " + okStyle.Render(m.successMessage)
	default:
		line += " " + dimStyle.Render("? for help | q to quit")
	}
	return line
}

func (m model) paletteLine() string {
	s := m.settings
	var b strings.Builder
	for i, hex := range drawPalette {
		label := fmt.Sprintf("%d", i)
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color("16"))
		if hex == rainbowColor {
			swatch = swatch.Background(lipgloss.Color(rainbowColors[m.engine.painter.Hue.Index%len(rainbowColors)]))
		} else {
			swatch = swatch.Background(lipgloss.Color(hex))
		}
		if hex == s.Color {
			label = "[" + label + "]"
		} else {
			label = " " + label + " "
		}
		b.WriteString(swatch.Render(label))
	}
	b.WriteString(dimStyle.Render("  b e l r o v t s  "))
	b.WriteString(markStyle.Render("stamp " + s.StampGlyph))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  preset %s", particlePresets[m.presetIndex].Name)))
	return b.String()
}
