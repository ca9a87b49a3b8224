package main

import "log"

// Engine is the drawing core: the canvas layers, the snapshot history and
// the tool state machine, fed by the live settings.
type Engine struct {
	canvas   *Canvas
	history  *History
	machine  *Machine
	painter  *Painter
	settings *Settings
}

func newEngine(settings *Settings) *Engine {
	if settings == nil {
		settings = defaultSettings()
	}
	canvas := NewCanvas()
	return &Engine{
		canvas:   canvas,
		history:  newHistory(canvas, maxHistory),
		machine:  newMachine(),
		painter:  newPainter(),
		settings: settings,
	}
}

func (e *Engine) Canvas() *Canvas {
	return e.canvas
}

func (e *Engine) History() *History {
	return e.history
}

func (e *Engine) Machine() *Machine {
	return e.machine
}

// Resize adapts the layers to a new viewport. The first resize creates the
// surface and seeds the history with the blank canvas.
func (e *Engine) Resize(width, height int) {
	first := !e.canvas.Ready()
	e.canvas.Resize(width, height)
	if first && e.canvas.Ready() {
		e.history.Reset()
	}
}

// Handle runs one input event through the state machine and executes the
// resulting ops. The ops are returned for inspection.
func (e *Engine) Handle(ev Event) []Op {
	ops := e.machine.Apply(ev, e.settings.Tool)
	e.Execute(ops)
	return ops
}

// SetTool switches tools, committing any pending text first.
func (e *Engine) SetTool(tool Tool) {
	e.Execute(e.machine.Flush())
	e.settings.Tool = tool
}

// Execute performs ops against the layers in order. Without a surface the
// ops are dropped.
func (e *Engine) Execute(ops []Op) {
	if len(ops) == 0 {
		return
	}
	if !e.canvas.Ready() {
		log.Printf("drawing surface not ready, dropping %d ops", len(ops))
		return
	}
	s := e.settings
	for _, op := range ops {
		switch op.Kind {
		case OpStrokeSegment:
			e.painter.BrushLine(e.canvas.Drawing(), op.From, op.To, s)
		case OpEraseSegment:
			e.canvas.eraseSegment(op.From, op.To, s.BrushSize*2)
		case OpClearPreview:
			e.canvas.ClearPreview()
		case OpPreviewShape:
			e.painter.Shape(e.canvas.Preview(), op.Tool, op.From, op.To, s, true)
		case OpCommitShape:
			e.painter.Shape(e.canvas.Drawing(), op.Tool, op.From, op.To, s, false)
		case OpCommitText:
			e.painter.Text(e.canvas.Drawing(), op.To, op.Text, s)
		case OpPlaceStamp:
			e.painter.Stamp(e.canvas.Drawing(), op.To, s)
		case OpSnapshot:
			e.history.Snapshot()
		}
	}
}

func (e *Engine) Undo() bool {
	if !e.canvas.Ready() {
		return false
	}
	return e.history.Undo()
}

func (e *Engine) Redo() bool {
	if !e.canvas.Ready() {
		return false
	}
	return e.history.Redo()
}

// Clear wipes the drawing layer as one edit.
func (e *Engine) Clear() {
	if !e.canvas.Ready() {
		return
	}
	e.canvas.Clear()
	e.history.Snapshot()
}
