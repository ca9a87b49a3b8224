package main

import "strings"

type EventKind int

const (
	EventPointerDown EventKind = iota
	EventPointerMove
	EventPointerUp
	EventKey
)

type Key int

const (
	KeyRune Key = iota
	KeyEnter
	KeyEscape
	KeyBackspace
)

// Event is one input delivered to the drawing state machine.
type Event struct {
	Kind EventKind
	Pos  point
	// Detached marks a pointer-up delivered without usable coordinates,
	// e.g. a release outside the surface.
	Detached bool
	Key      Key
	Rune     rune
}

func pointerDown(x, y float64) Event { return Event{Kind: EventPointerDown, Pos: point{x, y}} }
func pointerMove(x, y float64) Event { return Event{Kind: EventPointerMove, Pos: point{x, y}} }
func pointerUp(x, y float64) Event   { return Event{Kind: EventPointerUp, Pos: point{x, y}} }
func keyPress(k Key) Event           { return Event{Kind: EventKey, Key: k} }
func runePress(r rune) Event         { return Event{Kind: EventKey, Key: KeyRune, Rune: r} }

type OpKind int

const (
	OpStrokeSegment OpKind = iota
	OpEraseSegment
	OpPreviewShape
	OpClearPreview
	OpCommitShape
	OpCommitText
	OpPlaceStamp
	OpSnapshot
)

func (k OpKind) String() string {
	switch k {
	case OpStrokeSegment:
		return "stroke"
	case OpEraseSegment:
		return "erase"
	case OpPreviewShape:
		return "preview"
	case OpClearPreview:
		return "clear-preview"
	case OpCommitShape:
		return "shape"
	case OpCommitText:
		return "text"
	case OpPlaceStamp:
		return "stamp"
	case OpSnapshot:
		return "snapshot"
	default:
		return "unknown"
	}
}

// Op is a side effect requested by a transition. The machine never touches
// the raster itself; the engine executes ops in order.
type Op struct {
	Kind     OpKind
	Tool     Tool
	From, To point
	Text     string
}

// Machine maps pointer and key input to drawing ops.
type Machine struct {
	state  State
	tool   Tool
	anchor point
	last   point

	textAnchor point
	textBuf    []rune
}

func newMachine() *Machine {
	return &Machine{}
}

func (m *Machine) State() State {
	return m.state
}

// PendingText returns the open text session, if any.
func (m *Machine) PendingText() (point, string, bool) {
	if m.state != StateTexting {
		return point{}, "", false
	}
	return m.textAnchor, string(m.textBuf), true
}

// Apply runs one transition. The tool is read from the settings at the
// moment of the event; an in-flight gesture keeps the tool it started with.
func (m *Machine) Apply(ev Event, tool Tool) []Op {
	switch ev.Kind {
	case EventPointerDown:
		return m.down(ev.Pos, tool)
	case EventPointerMove:
		return m.move(ev.Pos)
	case EventPointerUp:
		return m.up(ev)
	case EventKey:
		return m.key(ev)
	}
	return nil
}

func (m *Machine) down(p point, tool Tool) []Op {
	switch m.state {
	case StateStroking, StateShaping:
		// A second press without a release; ignore until the gesture ends.
		return nil
	}

	var ops []Op
	if m.state == StateTexting {
		ops = append(ops, m.commitText()...)
		if tool != ToolText {
			m.state = StateIdle
		}
	}

	switch {
	case tool == ToolText:
		m.state = StateTexting
		m.textAnchor = p
		m.textBuf = m.textBuf[:0]
	case tool == ToolStamp:
		ops = append(ops, Op{Kind: OpPlaceStamp, Tool: tool, To: p}, Op{Kind: OpSnapshot})
	case tool.isStroke():
		m.state = StateStroking
		m.tool = tool
		m.anchor, m.last = p, p
	case tool.isShape():
		m.state = StateShaping
		m.tool = tool
		m.anchor, m.last = p, p
	}
	return ops
}

func (m *Machine) move(p point) []Op {
	switch m.state {
	case StateStroking:
		from := m.last
		m.last = p
		kind := OpStrokeSegment
		if m.tool == ToolEraser {
			kind = OpEraseSegment
		}
		return []Op{{Kind: kind, Tool: m.tool, From: from, To: p}}
	case StateShaping:
		m.last = p
		return []Op{
			{Kind: OpClearPreview},
			{Kind: OpPreviewShape, Tool: m.tool, From: m.anchor, To: p},
		}
	}
	return nil
}

func (m *Machine) up(ev Event) []Op {
	end := m.last
	if !ev.Detached {
		end = ev.Pos
	}
	switch m.state {
	case StateStroking:
		m.reset()
		return []Op{{Kind: OpSnapshot}}
	case StateShaping:
		ops := []Op{
			{Kind: OpClearPreview},
			{Kind: OpCommitShape, Tool: m.tool, From: m.anchor, To: end},
			{Kind: OpSnapshot},
		}
		m.reset()
		return ops
	}
	return nil
}

func (m *Machine) key(ev Event) []Op {
	if m.state != StateTexting {
		return nil
	}
	switch ev.Key {
	case KeyRune:
		if ev.Rune >= ' ' {
			m.textBuf = append(m.textBuf, ev.Rune)
		}
	case KeyBackspace:
		if len(m.textBuf) > 0 {
			m.textBuf = m.textBuf[:len(m.textBuf)-1]
		}
	case KeyEnter:
		ops := m.commitText()
		m.reset()
		return ops
	case KeyEscape:
		m.reset()
	}
	return nil
}

// Flush closes any open text session, committing non-blank text.
func (m *Machine) Flush() []Op {
	if m.state != StateTexting {
		return nil
	}
	ops := m.commitText()
	m.reset()
	return ops
}

func (m *Machine) commitText() []Op {
	text := string(m.textBuf)
	m.textBuf = m.textBuf[:0]
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return []Op{
		{Kind: OpCommitText, Tool: ToolText, To: m.textAnchor, Text: text},
		{Kind: OpSnapshot},
	}
}

func (m *Machine) reset() {
	m.state = StateIdle
	m.textBuf = m.textBuf[:0]
}
