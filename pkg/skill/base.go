package skill

import (
	"github.com/cognitive-production/skillbasedcontrol-server/pkg/skilldata"
	"github.com/cognitive-production/skillbasedcontrol-server/pkg/statemachine"
)

// BaseSkill binds a statemachine.Machine to a skilldata.Handle. It
// implements statemachine.Hooks itself, but every call is forwarded to
// self — normally the concrete skill type that embeds *BaseSkill — so
// overridden methods on the concrete type take effect.
//
// Constructor defaults: every state command and mode command is
// accepted by the underlying machine's own rules; pause/resume stays
// disabled until SetPauseCapable(true) is called.
type BaseSkill struct {
	self Behavior

	Name    string
	Handle  *skilldata.Handle
	machine *statemachine.Machine
}

// NewBaseSkill constructs a BaseSkill bound to self (the concrete skill,
// which must embed *BaseSkill) and to a fresh Handle built from def.
func NewBaseSkill(self Behavior, def skilldata.SkillDataDefault) *BaseSkill {
	b := &BaseSkill{
		self:   self,
		Name:   def.Name,
		Handle: skilldata.NewHandle(def),
	}
	b.machine = statemachine.New(b)
	b.Handle.State.ApplyTick(statemachine.TickResult{
		State:   b.machine.State(),
		Mode:    b.machine.Mode(),
		Enabled: b.machine.Enabled(),
	})
	return b
}

// SetPauseCapable opts the skill into Pause/Resume support.
func (b *BaseSkill) SetPauseCapable(v bool) {
	b.machine.SetPauseCapable(v)
}

// State returns the current lifecycle state.
func (b *BaseSkill) State() statemachine.State { return b.machine.State() }

// SkillName returns the skill's unique name, for runtime registration.
func (b *BaseSkill) SkillName() string { return b.Name }

// SkillHandle exposes the bound data handle, for transport read/write
// hooks to project state on and pull commands off.
func (b *BaseSkill) SkillHandle() *skilldata.Handle { return b.Handle }

// ForceFault drives the underlying machine to Holding or Stopping, for
// the runtime worker's exception discipline.
func (b *BaseSkill) ForceFault() { b.machine.ForceFault() }

// RequestStop sets the edge-triggered Stop pulse, for the runtime
// worker's shutdown sequence to drive the skill toward Stopped/Aborted.
func (b *BaseSkill) RequestStop() { b.Handle.Pending.State.Stop = true }

// Entry implements statemachine.Hooks by forwarding to self.
func (b *BaseSkill) Entry(s statemachine.State) { b.self.OnEntry(s, b.Handle) }

// Exit implements statemachine.Hooks by forwarding to self.
func (b *BaseSkill) Exit(s statemachine.State) { b.self.OnExit(s, b.Handle) }

// Execute implements statemachine.Hooks by dispatching to the matching
// named hook on self.
func (b *BaseSkill) Execute(s statemachine.State) statemachine.Result {
	switch s {
	case statemachine.Idle:
		return b.self.IdleExecute(b.Handle)
	case statemachine.Starting:
		return b.self.StartingExecute(b.Handle)
	case statemachine.Execute:
		return b.self.ExecuteExecute(b.Handle)
	case statemachine.Completing:
		return b.self.CompletingExecute(b.Handle)
	case statemachine.Completed:
		return b.self.CompletedExecute(b.Handle)
	case statemachine.Pausing:
		return b.self.PausingExecute(b.Handle)
	case statemachine.Paused:
		return b.self.PausedExecute(b.Handle)
	case statemachine.Resuming:
		return b.self.ResumingExecute(b.Handle)
	case statemachine.Holding:
		return b.self.HoldingExecute(b.Handle)
	case statemachine.Held:
		return b.self.HeldExecute(b.Handle)
	case statemachine.Unholding:
		return b.self.UnholdingExecute(b.Handle)
	case statemachine.Stopping:
		return b.self.StoppingExecute(b.Handle)
	case statemachine.Stopped:
		return b.self.StoppedExecute(b.Handle)
	case statemachine.Aborting:
		return b.self.AbortingExecute(b.Handle)
	case statemachine.Aborted:
		return b.self.AbortedExecute(b.Handle)
	case statemachine.Resetting:
		return b.self.ResettingExecute(b.Handle)
	default:
		return statemachine.Done
	}
}

// RunCycle is the one entry point the runtime worker calls per tick: it
// builds the pulse types the state machine expects from the pending
// command object, ticks the machine, reflects the result back into the
// handle's state, classifies a fault, and — per the component design —
// clears every edge-triggered pulse here rather than inside the state
// machine package, keeping that package free of any skilldata dependency.
func (b *BaseSkill) RunCycle() statemachine.TickResult {
	pulses := b.Handle.Pending.State.ToPulses()
	modes := b.Handle.Pending.Mode.ToPulses()

	result := b.machine.Tick(pulses, modes)
	b.Handle.State.ApplyTick(result)

	if result.Faulted {
		b.Handle.State.Error = true
		if b.Handle.State.ErrorMessage == "" {
			b.Handle.State.ErrorMessage = "skill execute returned Error"
		}
	}

	b.Handle.Pending.Clear()
	return result
}
