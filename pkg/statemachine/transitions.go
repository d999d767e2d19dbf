package statemachine

// arbitrationOrder is highest-to-lowest priority; first match wins.
var arbitrationOrder = []struct {
	cmd Command
	get func(CommandPulses) bool
}{
	{CmdAbort, func(p CommandPulses) bool { return p.Abort }},
	{CmdStop, func(p CommandPulses) bool { return p.Stop }},
	{CmdHold, func(p CommandPulses) bool { return p.Hold }},
	{CmdPause, func(p CommandPulses) bool { return p.Pause }},
	{CmdReset, func(p CommandPulses) bool { return p.Reset }},
	{CmdStart, func(p CommandPulses) bool { return p.Start }},
	{CmdComplete, func(p CommandPulses) bool { return p.Complete }},
	{CmdUnhold, func(p CommandPulses) bool { return p.Unhold }},
	{CmdResume, func(p CommandPulses) bool { return p.Resume }},
	{CmdRestart, func(p CommandPulses) bool { return p.Restart }},
}

// arbitrate picks the single highest-priority command pulse, or NoCommand.
func arbitrate(p CommandPulses) Command {
	for _, c := range arbitrationOrder {
		if c.get(p) {
			return c.cmd
		}
	}
	return NoCommand
}

// arbitrateMode applies "later set in the same tick supersedes" among
// pulses set simultaneously: Offline, Operator, Auto_Internal, Auto_External.
func arbitrateMode(p ModePulses, current Mode) Mode {
	next := current
	changed := false
	if p.Offline {
		next, changed = Offline, true
	}
	if p.Operator {
		next, changed = Operator, true
	}
	if p.AutomaticInternal {
		next, changed = AutomaticInternal, true
	}
	if p.AutomaticExternal {
		next, changed = AutomaticExternal, true
	}
	if !changed {
		return current
	}
	return next
}

// abortEnabled is every state that still accepts Abort.
func abortEnabled(s State) bool {
	switch s {
	case Aborted, Aborting, Undefined, NotUsed:
		return false
	default:
		return true
	}
}

// stopEnabled is every state that still accepts Stop.
func stopEnabled(s State) bool {
	switch s {
	case Aborted, Aborting, Stopped, Stopping, Undefined, NotUsed:
		return false
	default:
		return true
	}
}

// holdEnabled is every state that still accepts Hold.
func holdEnabled(s State) bool {
	switch s {
	case Unholding, Held, Holding, Aborted, Aborting, Stopped, Stopping, Undefined, NotUsed:
		return false
	default:
		return true
	}
}

// errorGoesToHolding reports the states from which an Execute Error
// transitions to Holding rather than Stopping.
func errorGoesToHolding(s State) bool {
	switch s {
	case Starting, Execute, Unholding, Pausing, Paused, Resuming:
		return true
	default:
		return false
	}
}

// autoAdvance is the table of Done-triggered transitions driven purely by
// the current state's own Execute hook, independent of any command.
var autoAdvance = map[State]State{
	Starting:   Execute,
	Execute:    Completing,
	Completing: Completed,
	Holding:    Held,
	Unholding:  Execute,
	Pausing:    Paused,
	Resuming:   Execute,
	Stopping:   Stopped,
	Aborting:   Aborted,
}

// resettingTarget returns where Resetting advances to on Done: Idle,
// unless a Restart was accepted on the way into Resetting (see Open
// Question in the design notes — Restart is "Reset then auto-Start").
func resettingTarget(pendingRestart bool) State {
	if pendingRestart {
		return Starting
	}
	return Idle
}

// acceptCommand reports whether cmd is accepted from state s, given
// pause/resume capability flags. This covers the states not governed by
// an explicit per-state override below.
func acceptCommand(s State, cmd Command, pauseCapable bool) bool {
	switch cmd {
	case CmdAbort:
		return abortEnabled(s)
	case CmdStop:
		return stopEnabled(s)
	case CmdHold:
		return holdEnabled(s)
	}

	switch s {
	case Idle:
		// Explicit per-state override: only Start and Abort enabled.
		return cmd == CmdStart
	case Execute:
		switch cmd {
		case CmdComplete:
			return true
		case CmdPause:
			return pauseCapable
		default:
			return false
		}
	case Completed:
		return cmd == CmdReset || cmd == CmdRestart
	case Held:
		return cmd == CmdUnhold || cmd == CmdReset || cmd == CmdRestart
	case Paused:
		return cmd == CmdResume
	case Stopped:
		return cmd == CmdReset
	case Aborted:
		return cmd == CmdReset
	default:
		return false
	}
}

// narrowsStopHold is Idle plus the terminal rest states: the command-enabled
// recomputation rules restrict these to Idle's "only Start, Abort" and the
// rest states' "only the exit command(s) plus Abort", narrower than what
// stopEnabled/holdEnabled's broad tables (shared with the accept path, which
// stays permissive) would otherwise advertise.
func narrowsStopHold(s State) bool {
	switch s {
	case Idle, Completed, Stopped, Aborted, Held, Paused:
		return true
	default:
		return false
	}
}

// computeEnabled derives CommandEnabled for the given state from the same
// rules acceptCommand uses, so the two can never drift apart, then applies
// the Idle/terminal-rest-state narrowing to Stop and Hold.
func computeEnabled(s State, pauseCapable bool) Enabled {
	e := Enabled{
		Reset:    acceptCommand(s, CmdReset, pauseCapable),
		Start:    acceptCommand(s, CmdStart, pauseCapable),
		Stop:     acceptCommand(s, CmdStop, pauseCapable),
		Hold:     acceptCommand(s, CmdHold, pauseCapable),
		Unhold:   acceptCommand(s, CmdUnhold, pauseCapable),
		Pause:    acceptCommand(s, CmdPause, pauseCapable),
		Resume:   acceptCommand(s, CmdResume, pauseCapable),
		Abort:    acceptCommand(s, CmdAbort, pauseCapable),
		Restart:  acceptCommand(s, CmdRestart, pauseCapable),
		Complete: acceptCommand(s, CmdComplete, pauseCapable),
	}
	if narrowsStopHold(s) {
		e.Stop = false
		e.Hold = false
	}
	return e
}

// commandTransition returns the state a just-accepted command drives us
// to, from the current state. ok is false if this (state, command) pair
// has no direct command-driven transition (it may still be a no-op, e.g.
// Mode commands, or rejected earlier by acceptCommand).
func commandTransition(s State, cmd Command) (State, bool) {
	switch cmd {
	case CmdAbort:
		if abortEnabled(s) {
			return Aborting, true
		}
	case CmdStop:
		if stopEnabled(s) {
			return Stopping, true
		}
	case CmdHold:
		if holdEnabled(s) {
			return Holding, true
		}
	}

	switch s {
	case Idle:
		if cmd == CmdStart {
			return Starting, true
		}
	case Execute:
		if cmd == CmdPause || cmd == CmdComplete {
			return fromExecute(cmd), true
		}
	case Completed:
		if cmd == CmdReset || cmd == CmdRestart {
			return Resetting, true
		}
	case Held:
		if cmd == CmdUnhold {
			return Unholding, true
		}
		if cmd == CmdReset || cmd == CmdRestart {
			return Resetting, true
		}
	case Paused:
		if cmd == CmdResume {
			return Resuming, true
		}
	case Stopped:
		if cmd == CmdReset {
			return Resetting, true
		}
	case Aborted:
		if cmd == CmdReset {
			return Resetting, true
		}
	}
	return s, false
}

func fromExecute(cmd Command) State {
	if cmd == CmdPause {
		return Pausing
	}
	return Completing
}
