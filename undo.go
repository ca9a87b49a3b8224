package main

// History is a bounded stack of full-surface snapshots with a cursor on the
// current one. Entries after the cursor are the redo history.
type History struct {
	target  Raster
	entries []Snapshot
	cursor  int
	limit   int
}

func newHistory(target Raster, limit int) *History {
	if limit < 1 {
		limit = maxHistory
	}
	return &History{target: target, limit: limit}
}

// Snapshot captures the target and pushes it: redo entries are dropped, the
// capture is appended and, past the limit, the oldest entry is evicted.
// The cursor always ends on the capture just pushed.
func (h *History) Snapshot() {
	snap, ok := h.target.Capture()
	if !ok {
		return
	}
	if len(h.entries) > 0 {
		h.entries = h.entries[:h.cursor+1]
	}
	h.entries = append(h.entries, snap)
	if len(h.entries) > h.limit {
		drop := len(h.entries) - h.limit
		clear(h.entries[:drop])
		h.entries = h.entries[drop:]
	}
	h.cursor = len(h.entries) - 1
}

func (h *History) Undo() bool {
	if !h.CanUndo() {
		return false
	}
	h.cursor--
	h.target.Restore(h.entries[h.cursor])
	return true
}

func (h *History) Redo() bool {
	if !h.CanRedo() {
		return false
	}
	h.cursor++
	h.target.Restore(h.entries[h.cursor])
	return true
}

func (h *History) CanUndo() bool {
	return h.cursor > 0
}

func (h *History) CanRedo() bool {
	return len(h.entries) > 0 && h.cursor < len(h.entries)-1
}

func (h *History) Len() int {
	return len(h.entries)
}

func (h *History) Cursor() int {
	return h.cursor
}

// Reset forgets every entry and seeds the stack with the current surface.
func (h *History) Reset() {
	clear(h.entries)
	h.entries = h.entries[:0]
	h.cursor = 0
	h.Snapshot()
}
