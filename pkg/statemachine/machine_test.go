package statemachine

import "testing"

// recordingHooks is a minimal Hooks implementation: every Execute returns
// a canned result unless overridden for a specific state via results.
type recordingHooks struct {
	results map[State]Result
	entries []State
	exits   []State
}

func newRecordingHooks() *recordingHooks {
	return &recordingHooks{results: make(map[State]Result)}
}

func (h *recordingHooks) Entry(s State) { h.entries = append(h.entries, s) }
func (h *recordingHooks) Exit(s State)  { h.exits = append(h.exits, s) }
func (h *recordingHooks) Execute(s State) Result {
	if r, ok := h.results[s]; ok {
		return r
	}
	return Done
}

func pulses(field string) CommandPulses {
	p := CommandPulses{}
	switch field {
	case "Start":
		p.Start = true
	case "Stop":
		p.Stop = true
	case "Hold":
		p.Hold = true
	case "Unhold":
		p.Unhold = true
	case "Pause":
		p.Pause = true
	case "Resume":
		p.Resume = true
	case "Abort":
		p.Abort = true
	case "Restart":
		p.Restart = true
	case "Complete":
		p.Complete = true
	case "Reset":
		p.Reset = true
	}
	return p
}

func tickWith(t *testing.T, m *Machine, cmd string) TickResult {
	t.Helper()
	return m.Tick(pulses(cmd), ModePulses{})
}

func tickIdle(t *testing.T, m *Machine) TickResult {
	t.Helper()
	return m.Tick(CommandPulses{}, ModePulses{})
}

func TestHappyPath(t *testing.T) {
	m := New(newRecordingHooks())

	r := tickWith(t, m, "Start")
	if r.State != Starting {
		t.Fatalf("after Start: got %v want Starting", r.State)
	}
	r = tickIdle(t, m)
	if r.State != Execute {
		t.Fatalf("auto-advance: got %v want Execute", r.State)
	}
	r = tickIdle(t, m)
	if r.State != Completing {
		t.Fatalf("auto-advance: got %v want Completing", r.State)
	}
	r = tickIdle(t, m)
	if r.State != Completed {
		t.Fatalf("auto-advance: got %v want Completed", r.State)
	}

	r = tickWith(t, m, "Reset")
	if r.State != Resetting {
		t.Fatalf("after Reset: got %v want Resetting", r.State)
	}
	r = tickIdle(t, m)
	if r.State != Idle {
		t.Fatalf("auto-advance: got %v want Idle", r.State)
	}
}

func TestAbortFromEveryNonTerminalState(t *testing.T) {
	all := []State{Idle, Starting, Execute, Completing, Completed, Pausing, Paused,
		Resuming, Holding, Held, Unholding, Stopping, Stopped}

	for _, s := range all {
		m := New(newRecordingHooks())
		m.state = s
		m.enabled = computeEnabled(s, m.pauseCapable)

		r := tickWith(t, m, "Abort")
		if r.State != Aborting {
			t.Fatalf("from %v: after Abort got %v want Aborting", s, r.State)
		}
		r = tickIdle(t, m)
		if r.State != Aborted {
			t.Fatalf("from %v: auto-advance got %v want Aborted", s, r.State)
		}
		r = tickWith(t, m, "Reset")
		if r.State != Resetting {
			t.Fatalf("from %v: after Reset got %v want Resetting", s, r.State)
		}
	}
}

func TestStopFromEveryNonAbortingState(t *testing.T) {
	all := []State{Idle, Starting, Execute, Completing, Completed, Pausing, Paused,
		Resuming, Holding, Held, Unholding}

	for _, s := range all {
		m := New(newRecordingHooks())
		m.state = s
		m.enabled = computeEnabled(s, m.pauseCapable)

		r := tickWith(t, m, "Stop")
		if r.State != Stopping {
			t.Fatalf("from %v: after Stop got %v want Stopping", s, r.State)
		}
		r = tickIdle(t, m)
		if r.State != Stopped {
			t.Fatalf("from %v: auto-advance got %v want Stopped", s, r.State)
		}
		r = tickWith(t, m, "Reset")
		if r.State != Resetting {
			t.Fatalf("from %v: after Reset got %v want Resetting", s, r.State)
		}
	}
}

func TestHoldUnhold(t *testing.T) {
	m := New(newRecordingHooks())
	tickWith(t, m, "Start")
	tickIdle(t, m) // -> Execute

	r := tickWith(t, m, "Hold")
	if r.State != Holding {
		t.Fatalf("after Hold: got %v want Holding", r.State)
	}
	r = tickIdle(t, m)
	if r.State != Held {
		t.Fatalf("auto-advance: got %v want Held", r.State)
	}
	r = tickWith(t, m, "Unhold")
	if r.State != Unholding {
		t.Fatalf("after Unhold: got %v want Unholding", r.State)
	}
	r = tickIdle(t, m)
	if r.State != Execute {
		t.Fatalf("auto-advance: got %v want Execute", r.State)
	}
}

func TestPauseResumeRequiresOptIn(t *testing.T) {
	h := newRecordingHooks()
	h.results[Execute] = Busy // still working, so Execute does not auto-advance
	m := New(h)
	tickWith(t, m, "Start")
	tickIdle(t, m) // -> Execute

	r := tickWith(t, m, "Pause")
	if r.State != Execute {
		t.Fatalf("Pause without opt-in should be dropped, got %v", r.State)
	}

	m.SetPauseCapable(true)
	r = tickWith(t, m, "Pause")
	if r.State != Pausing {
		t.Fatalf("after Pause: got %v want Pausing", r.State)
	}
	r = tickIdle(t, m)
	if r.State != Paused {
		t.Fatalf("auto-advance: got %v want Paused", r.State)
	}
	r = tickWith(t, m, "Resume")
	if r.State != Resuming {
		t.Fatalf("after Resume: got %v want Resuming", r.State)
	}
	r = tickIdle(t, m)
	if r.State != Execute {
		t.Fatalf("auto-advance: got %v want Execute", r.State)
	}
}

func TestModeSweep(t *testing.T) {
	m := New(newRecordingHooks())
	seq := []struct {
		pulse ModePulses
		want  Mode
	}{
		{ModePulses{Offline: true}, Offline},
		{ModePulses{Operator: true}, Operator},
		{ModePulses{AutomaticInternal: true}, AutomaticInternal},
		{ModePulses{AutomaticExternal: true}, AutomaticExternal},
		{ModePulses{Offline: true}, Offline},
	}
	for i, step := range seq {
		r := m.Tick(CommandPulses{}, step.pulse)
		if r.Mode != step.want {
			t.Fatalf("step %d: got mode %v want %v", i, r.Mode, step.want)
		}
	}
}

func TestDisabledCommandDoesNotChangeState(t *testing.T) {
	m := New(newRecordingHooks())
	// In Idle, only Start/Abort are enabled; Hold must be dropped.
	r := tickWith(t, m, "Hold")
	if r.State != Idle {
		t.Fatalf("disabled Hold from Idle should be a no-op, got %v", r.State)
	}
}

func TestCommandPulsesAlwaysClearedByCaller(t *testing.T) {
	// The state machine itself does not own pulse storage (that lives in
	// skilldata.SkillCommand); this test only documents that a fresh
	// CommandPulses has every field false, the invariant the skill layer
	// depends on after clearing.
	var p CommandPulses
	if p.Any() {
		t.Fatalf("zero-value CommandPulses must report Any() == false")
	}
}

func TestExecuteErrorGoesToHoldingOrStopping(t *testing.T) {
	h := newRecordingHooks()
	h.results[Execute] = Error
	m := New(h)
	tickWith(t, m, "Start")
	tickIdle(t, m) // -> Execute

	r := tickIdle(t, m)
	if !r.Faulted || r.State != Holding {
		t.Fatalf("execute error from Execute state: got state=%v faulted=%v, want Holding/true", r.State, r.Faulted)
	}
}

func TestRestartFromHeldReturnsToStarting(t *testing.T) {
	m := New(newRecordingHooks())
	tickWith(t, m, "Start")
	tickIdle(t, m) // -> Execute
	tickWith(t, m, "Hold")
	tickIdle(t, m) // -> Held

	r := tickWith(t, m, "Restart")
	if r.State != Resetting {
		t.Fatalf("after Restart: got %v want Resetting", r.State)
	}
	r = tickIdle(t, m)
	if r.State != Starting {
		t.Fatalf("auto-advance after Restart: got %v want Starting", r.State)
	}
}
