package app

import "testing"

func TestRunStateRestartDropsPendingStep(t *testing.T) {
	s := runState{paused: true}
	s.tickOnce = true
	s.restart()
	if s.shouldStep(func() bool { return true }) {
		t.Fatal("single step requested before a reset must not run afterwards")
	}
	if !s.paused {
		t.Fatal("restart must pause")
	}
}

func TestRunStateSingleStepWhilePaused(t *testing.T) {
	s := runState{paused: true}
	s.tickOnce = true
	called := false
	if !s.shouldStep(func() bool { called = true; return false }) {
		t.Fatal("single step should run while paused")
	}
	if called {
		t.Fatal("pacer consulted for a single step")
	}
	if s.shouldStep(func() bool { return true }) {
		t.Fatal("single step must only run once")
	}
}

func TestRunStateToggle(t *testing.T) {
	s := runState{paused: true}
	s.toggle(false)
	if s.paused {
		t.Fatal("toggle should start a paused run")
	}
	if !s.shouldStep(func() bool { return true }) || s.shouldStep(func() bool { return false }) {
		t.Fatal("running state should follow the pacer")
	}
	s.toggle(true)
	if !s.paused {
		t.Fatal("finished run must stay paused")
	}
}
