package main

import "testing"

func TestAnimatorStopDropsPendingFrame(t *testing.T) {
	a := &animator{}
	cmd := a.start()
	if cmd == nil {
		t.Fatal("start returned no command")
	}
	if a.start() != nil {
		t.Error("second start should not schedule another frame")
	}

	msg, ok := cmd().(frameMsg)
	if !ok {
		t.Fatal("command did not produce a frame")
	}
	if !a.accept(msg) {
		t.Fatal("current frame rejected")
	}

	a.stop()
	if a.accept(msg) {
		t.Error("frame accepted after stop")
	}

	a.start()
	if a.accept(msg) {
		t.Error("frame from an earlier run accepted after restart")
	}
	if !a.accept(frameMsg{loop: a.loop}) {
		t.Error("frame from the new run rejected")
	}
}
