package main

import (
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"slices"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	config := loadConfig()

	logPath := config.LogFile
	if env := os.Getenv("GLIMMER_LOG"); env != "" {
		logPath = env
	}
	if logPath != "" {
		f, err := tea.LogToFile(logPath, "glimmer")
		if err != nil {
			fmt.Fprintln(os.Stderr, "could not open log file:", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	p := tea.NewProgram(
		initialModel(config),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

type ConfirmAction int

const (
	ConfirmNone ConfirmAction = iota
	ConfirmClear
	ConfirmQuit
)

type model struct {
	width  int
	height int

	config    *Config
	settings  *Settings
	engine    *Engine
	particles *ParticleSystem
	anim      *animator
	cells     *cellRenderer
	watermark image.Image
	clock     func() time.Time

	pressed        bool
	penDown        bool
	cursorX        int
	cursorY        int
	paletteVisible bool
	presetIndex    int
	help           bool
	helpScroll     int
	confirmAction  ConfirmAction
	errorMessage   string
	successMessage string
}

func initialModel(config *Config) model {
	if config == nil {
		config = defaultConfig()
	}
	settings := config.settings()

	watermark, err := loadWatermark(config.Watermark)
	if err != nil {
		log.Printf("watermark: %v", err)
	}

	presetIndex := 0
	for i, p := range particlePresets {
		if len(p.Colors) > 0 && slices.Equal(p.Colors, settings.CustomPalette) {
			presetIndex = i
		}
	}

	return model{
		config:         config,
		settings:       settings,
		engine:         newEngine(settings),
		particles:      newParticleSystem(nil),
		anim:           &animator{},
		cells:          newCellRenderer(),
		watermark:      watermark,
		paletteVisible: true,
		presetIndex:    presetIndex,
	}
}

func (m model) Init() tea.Cmd {
	return m.anim.start()
}

// quit stops the frame loop and drops the particles so nothing is left
// scheduled once the program exits.
func (m model) quit() (tea.Model, tea.Cmd) {
	m.anim.stop()
	m.particles.Clear()
	return m, tea.Quit
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		pw, ph := m.width*cellWidth, m.canvasRows()*cellHeight
		m.engine.Resize(pw, ph)
		m.particles.Resize(pw, ph)
		m.ensureCursorInBounds()
		return m, nil

	case frameMsg:
		if !m.anim.accept(msg) {
			return m, nil
		}
		m.particles.Tick()
		return m, m.anim.next()

	case tea.MouseMsg:
		if m.help || m.confirmAction != ConfirmNone {
			return m, nil
		}
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		if m.help {
			return m.updateHelp(msg)
		}
		if m.confirmAction != ConfirmNone {
			return m.updateConfirm(msg)
		}
		if m.engine.Machine().State() == StateTexting {
			return m.updateTexting(msg)
		}
		return m.updateIdle(msg)
	}
	return m, nil
}

func (m model) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "?":
		m.help = false
		m.helpScroll = 0
	case "j", "down":
		if m.helpScroll < len(helpLines)-1 {
			m.helpScroll++
		}
	case "k", "up":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	case "ctrl+c":
		return m.quit()
	}
	return m, nil
}

func (m model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.confirmAction
	m.confirmAction = ConfirmNone
	switch msg.String() {
	case "y", "Y":
		switch action {
		case ConfirmClear:
			m.engine.Clear()
			m.successMessage = "Canvas cleared"
		case ConfirmQuit:
			return m.quit()
		}
	case "ctrl+c":
		return m.quit()
	}
	return m, nil
}

// updateTexting routes keys into the pending text while a text session is
// open. Shortcuts stay disabled until it commits or is discarded.
func (m model) updateTexting(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m.quit()
	case tea.KeyEnter:
		m.engine.Handle(keyPress(KeyEnter))
	case tea.KeyEsc:
		m.engine.Handle(keyPress(KeyEscape))
	case tea.KeyBackspace:
		m.engine.Handle(keyPress(KeyBackspace))
	case tea.KeySpace:
		m.engine.Handle(runePress(' '))
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.engine.Handle(runePress(r))
		}
	}
	return m, nil
}

func (m model) updateIdle(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.settings
	key := msg.String()

	switch key {
	case "ctrl+c":
		return m.quit()
	case "q":
		m.confirmAction = ConfirmQuit
		return m, nil
	case "?":
		m.help = true
		m.helpScroll = 0
		return m, nil
	case "esc":
		m.errorMessage = ""
		m.successMessage = ""
		return m, nil

	case "ctrl+z", "u":
		if !m.engine.Undo() {
			m.successMessage = "Nothing to undo"
		} else {
			m.successMessage = ""
		}
		return m, nil
	case "ctrl+y", "U":
		if !m.engine.Redo() {
			m.successMessage = "Nothing to redo"
		} else {
			m.successMessage = ""
		}
		return m, nil
	case "tab":
		m.paletteVisible = !m.paletteVisible
		return m, nil

	case "left", "right", "up", "down", "shift+left", "shift+right", "shift+up", "shift+down":
		m.handleCursorMove(key, m.getMoveSpeed(key))
		return m, nil
	case " ":
		m.togglePen()
		return m, nil

	case "b", "e", "l", "r", "o", "v", "t", "s":
		tools := map[string]Tool{
			"b": ToolBrush, "e": ToolEraser, "l": ToolLine, "r": ToolRect,
			"o": ToolCircle, "v": ToolTriangle, "t": ToolText, "s": ToolStamp,
		}
		m.engine.SetTool(tools[key])
		return m, nil

	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		s.Color = drawPalette[int(key[0]-'0')]
		return m, nil

	case "+", "=":
		s.BrushSize = clampFloat(s.BrushSize+1, minBrushSize, maxBrushSize)
		return m, nil
	case "-", "_":
		s.BrushSize = clampFloat(s.BrushSize-1, minBrushSize, maxBrushSize)
		return m, nil
	case ">", ".":
		s.Opacity = clampInt(s.Opacity+10, minOpacity, 100)
		return m, nil
	case "<", ",":
		s.Opacity = clampInt(s.Opacity-10, minOpacity, 100)
		return m, nil
	case "}":
		s.FontSize = clampFloat(s.FontSize+2, minFontSize, maxFontSize)
		return m, nil
	case "{":
		s.FontSize = clampFloat(s.FontSize-2, minFontSize, maxFontSize)
		return m, nil
	case ")":
		s.StampSize = clampFloat(s.StampSize+4, minStampSize, maxStampSize)
		return m, nil
	case "(":
		s.StampSize = clampFloat(s.StampSize-4, minStampSize, maxStampSize)
		return m, nil
	case "f":
		s.Fill = !s.Fill
		return m, nil
	case "g":
		s.StampGlyph = stampGlyphs[nextIndex(indexOf(stampGlyphs, s.StampGlyph), len(stampGlyphs))]
		return m, nil

	case "p":
		s.ParticlesEnabled = !s.ParticlesEnabled
		return m, nil
	case "P":
		if m.anim.running {
			m.anim.stop()
			m.successMessage = "Animation paused"
			return m, nil
		}
		m.successMessage = ""
		return m, m.anim.start()
	case "]":
		s.ParticleIntensity = clampInt(s.ParticleIntensity+10, 0, 100)
		return m, nil
	case "[":
		s.ParticleIntensity = clampInt(s.ParticleIntensity-10, 0, 100)
		return m, nil
	case "x":
		s.ParticleEffect = ParticleEffect(nextIndex(int(s.ParticleEffect), len(effectNames)))
		return m, nil
	case "k":
		m.presetIndex = nextIndex(m.presetIndex, len(particlePresets))
		s.CustomPalette = particlePresets[m.presetIndex].Colors
		return m, nil

	case "C":
		m.confirmAction = ConfirmClear
		return m, nil
	case "S":
		return m.export(true), nil
	case "E":
		return m.export(false), nil
	}
	return m, nil
}

// export flattens the drawing to PNG and puts the path on the clipboard.
func (m model) export(withBackground bool) model {
	var mark image.Image
	if withBackground {
		mark = m.watermark
	}
	path, err := exportPNG(m.engine.Canvas(), m.config, withBackground, mark)
	if err != nil {
		log.Printf("export: %v", err)
		m.errorMessage = err.Error()
		m.successMessage = ""
		return m
	}
	m.errorMessage = ""
	m.successMessage = "Saved " + path
	if err := copyToClipboard(path); err != nil {
		log.Printf("export: %v", err)
	} else {
		m.successMessage += " (path copied)"
	}
	return m
}

var helpLines = []string{
	"Glimmer Help",
	"============",
	"",
	"Drawing:",
	"--------",
	"  mouse drag       Draw with the current tool",
	"  arrows           Move the keyboard cursor (shift = faster)",
	"  space            Press/release the pen at the cursor",
	"",
	"Tools:",
	"------",
	"  b  brush    e  eraser    l  line     r  rectangle",
	"  o  circle   v  triangle  t  text     s  stamp",
	"",
	"Text Tool:",
	"----------",
	"  click            Start text at the pointer",
	"  Enter            Commit text",
	"  Esc              Discard text",
	"",
	"Style:",
	"------",
	"  0-9              Pick colour (0 = rainbow)",
	"  +/-              Brush size",
	"  </>              Opacity (5-100%)",
	"  {/}              Text size (12-72)",
	"  (/)              Stamp size (16-120)",
	"  f                Toggle shape fill",
	"  g                Next stamp glyph",
	"",
	"Particles:",
	"----------",
	"  p                Toggle particles",
	"  P                Pause/resume animation",
	"  [/]              Intensity",
	"  x                Next effect (stars, snow, firework, confetti)",
	"  k                Next colour preset",
	"",
	"General:",
	"--------",
	"  u/Ctrl+Z         Undo",
	"  U/Ctrl+Y         Redo",
	"  C                Clear canvas",
	"  S                Export PNG with background",
	"  E                Export transparent PNG",
	"  Tab              Toggle palette bar",
	"  ?                Toggle this help screen",
	"  q/Ctrl+C         Quit",
}

func (m model) helpView() string {
	visibleHeight := max(m.height-1, 1)

	startLine := min(m.helpScroll, max(len(helpLines)-visibleHeight, 0))
	endLine := min(startLine+visibleHeight, len(helpLines))

	result := strings.Join(helpLines[startLine:endLine], "\n")
	statusLine := fmt.Sprintf("Help (%d-%d of %d lines) | j/k to scroll, Esc to close",
		startLine+1, endLine, len(helpLines))
	return result + "\n" + statusLine
}
