package statemachine

// TickResult reports what happened during one Tick, so the caller (the
// skill layer, which owns the error/message fields) can react.
type TickResult struct {
	Transitioned   bool
	State          State
	ActiveCommand  Command
	Mode           Mode
	ExecResult     Result
	Enabled        Enabled
	Faulted        bool // Execute returned Error this tick
	RestartPending bool
}

// Machine is the sixteen-state skill lifecycle. It holds no business data
// of its own (no error flags, no parameters) — those live in the skill
// and skill-data layers; the Machine is purely the transition/arbitration
// engine described in the component design.
type Machine struct {
	hooks Hooks

	state         State
	mode          Mode
	activeCommand Command
	enabled       Enabled

	pauseCapable bool

	pendingRestart bool
}

// New creates a Machine starting in Idle/Offline, bound to the given
// Hooks implementation (normally a *skill.BaseSkill).
func New(hooks Hooks) *Machine {
	m := &Machine{
		hooks: hooks,
		state: Idle,
		mode:  Offline,
	}
	m.enabled = computeEnabled(m.state, m.pauseCapable)
	return m
}

// SetPauseCapable opts a skill into Pause/Resume support. Pause/resume
// stays disabled until this is called; the change takes effect from the
// next Tick and recomputes the current state's Enabled mask at once.
func (m *Machine) SetPauseCapable(v bool) {
	m.pauseCapable = v
	m.enabled = computeEnabled(m.state, m.pauseCapable)
}

// State returns the current lifecycle state.
func (m *Machine) State() State { return m.state }

// Mode returns the current operating mode.
func (m *Machine) Mode() Mode { return m.mode }

// ActiveCommand returns the most recently accepted state-level command.
func (m *Machine) ActiveCommand() Command { return m.activeCommand }

// Enabled returns which commands the current state accepts.
func (m *Machine) Enabled() Enabled { return m.enabled }

// ForceFault drives the machine directly to Holding or Stopping, per the
// error-hold-states rule, bypassing normal arbitration. Used by the
// runtime worker's exception discipline when a skill's hooks panic.
func (m *Machine) ForceFault() {
	target := Stopping
	if errorGoesToHolding(m.state) {
		target = Holding
	}
	m.transitionTo(target, NoCommand)
}

// Tick performs one synchronous pass: command arbitration, mode
// arbitration, state transition, state-execute, and (on Done) the
// auto-advance transition. Only one state transition happens per Tick —
// either the command-driven one or the auto-advance one, never both.
func (m *Machine) Tick(cmds CommandPulses, modes ModePulses) TickResult {
	cmd := arbitrate(cmds)
	accepted := cmd != NoCommand && acceptCommand(m.state, cmd, m.pauseCapable)

	m.mode = arbitrateMode(modes, m.mode)

	transitioned := false
	if accepted {
		if cmd == CmdRestart {
			m.pendingRestart = true
		}
		if next, ok := commandTransition(m.state, cmd); ok {
			m.transitionTo(next, cmd)
			transitioned = true
		}
	}

	execResult := m.hooks.Execute(m.state)
	faulted := false

	if !transitioned {
		switch execResult {
		case Done:
			if next, ok := autoAdvance[m.state]; ok {
				m.transitionTo(next, m.activeCommand)
				transitioned = true
			} else if m.state == Resetting {
				restart := m.pendingRestart
				m.pendingRestart = false
				m.transitionTo(resettingTarget(restart), m.activeCommand)
				transitioned = true
			}
		case Error:
			faulted = true
			target := Stopping
			if errorGoesToHolding(m.state) {
				target = Holding
			}
			m.transitionTo(target, m.activeCommand)
			transitioned = true
		}
	}

	return TickResult{
		Transitioned:   transitioned,
		State:          m.state,
		ActiveCommand:  m.activeCommand,
		Mode:           m.mode,
		ExecResult:     execResult,
		Enabled:        m.enabled,
		Faulted:        faulted,
		RestartPending: m.pendingRestart,
	}
}

func (m *Machine) transitionTo(next State, cmd Command) {
	m.hooks.Exit(m.state)
	m.state = next
	m.activeCommand = cmd
	m.hooks.Entry(m.state)
	m.enabled = computeEnabled(m.state, m.pauseCapable)
}
