package app

// runState tracks whether the GUI is animating and whether a single step
// was requested.
type runState struct {
	paused   bool
	tickOnce bool
}

// toggle starts or pauses the run. A finished run stays paused.
func (s *runState) toggle(done bool) {
	if done {
		s.paused = true
		return
	}
	s.paused = !s.paused
}

// restart pauses and forgets any pending single step, so nothing scheduled
// for the old run lands on the new one.
func (s *runState) restart() {
	s.paused = true
	s.tickOnce = false
}

// shouldStep reports whether to advance this frame. due is only consulted
// while running so the pacer keeps its rhythm across pauses.
func (s *runState) shouldStep(due func() bool) bool {
	if s.tickOnce {
		s.tickOnce = false
		return true
	}
	return !s.paused && due()
}
