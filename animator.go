package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const frameInterval = time.Second / 60

// frameMsg is one frame callback. loop identifies the run that scheduled it.
type frameMsg struct {
	loop int
	at   time.Time
}

// animator schedules frame callbacks through the program's message loop.
// Only one frame is ever in flight; stopping bumps the loop id so that
// frame is dropped on arrival and nothing is rescheduled.
type animator struct {
	loop    int
	running bool
}

func (a *animator) start() tea.Cmd {
	if a.running {
		return nil
	}
	a.loop++
	a.running = true
	return a.next()
}

func (a *animator) stop() {
	if !a.running {
		return
	}
	a.running = false
	a.loop++
}

func (a *animator) next() tea.Cmd {
	loop := a.loop
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg{loop: loop, at: t}
	})
}

// accept reports whether msg belongs to the current run.
func (a *animator) accept(msg frameMsg) bool {
	return a.running && msg.loop == a.loop
}
