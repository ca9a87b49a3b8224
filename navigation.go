package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// cellToPixel maps a terminal cell to the pixel at its centre.
func cellToPixel(col, row int) point {
	return point{
		X: float64(col*cellWidth + cellWidth/2),
		Y: float64(row*cellHeight + cellHeight/2),
	}
}

func (m *model) canvasRows() int {
	return max(m.height-1, 0)
}

func (m *model) inCanvas(col, row int) bool {
	return col >= 0 && col < m.width && row >= 0 && row < m.canvasRows()
}

func (m *model) now() time.Time {
	if m.clock != nil {
		return m.clock()
	}
	return time.Now()
}

// handleMouse turns terminal mouse reports into pointer events for the
// drawing engine and spawn requests for the particle layer.
func (m *model) handleMouse(msg tea.MouseMsg) {
	p := cellToPixel(msg.X, msg.Y)
	inside := m.inCanvas(msg.X, msg.Y)
	ctx := m.settings.simContext()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !inside || m.pressed {
			return
		}
		m.pressed = true
		m.cursorX, m.cursorY = msg.X, msg.Y
		m.engine.Handle(pointerDown(p.X, p.Y))

	case tea.MouseActionMotion:
		if inside {
			m.particles.PointerMove(ctx, p.X, p.Y, m.now())
		}
		if m.pressed {
			m.engine.Handle(pointerMove(p.X, p.Y))
		}

	case tea.MouseActionRelease:
		if m.pressed {
			ev := pointerUp(p.X, p.Y)
			ev.Detached = !inside
			m.engine.Handle(ev)
			m.pressed = false
		}
		if inside {
			m.particles.Click(ctx, p.X, p.Y)
		}
	}
}

// handleCursorMove steps the keyboard pointer. While the pen is down the
// move is forwarded like a mouse drag.
func (m *model) handleCursorMove(key string, speed int) {
	switch key {
	case "left", "shift+left":
		m.cursorX -= speed
	case "right", "shift+right":
		m.cursorX += speed
	case "up", "shift+up":
		m.cursorY -= speed
	case "down", "shift+down":
		m.cursorY += speed
	}
	m.ensureCursorInBounds()

	p := cellToPixel(m.cursorX, m.cursorY)
	m.particles.PointerMove(m.settings.simContext(), p.X, p.Y, m.now())
	if m.penDown {
		m.engine.Handle(pointerMove(p.X, p.Y))
	}
}

// togglePen presses or releases the keyboard pointer at the cursor. A press
// that completes on its own (stamp, text) leaves the pen up and counts as a
// click.
func (m *model) togglePen() {
	p := cellToPixel(m.cursorX, m.cursorY)
	if !m.penDown {
		m.engine.Handle(pointerDown(p.X, p.Y))
		switch m.engine.Machine().State() {
		case StateStroking, StateShaping:
			m.penDown = true
		default:
			m.particles.Click(m.settings.simContext(), p.X, p.Y)
		}
		return
	}
	m.penDown = false
	m.engine.Handle(pointerUp(p.X, p.Y))
	m.particles.Click(m.settings.simContext(), p.X, p.Y)
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "shift+left", "shift+right", "shift+up", "shift+down":
		return 4
	default:
		return 1
	}
}

func (m *model) ensureCursorInBounds() {
	m.cursorX = clampInt(m.cursorX, 0, max(m.width-1, 0))
	m.cursorY = clampInt(m.cursorY, 0, max(m.canvasRows()-1, 0))
}
