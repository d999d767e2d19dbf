// Package skill binds the state machine to a concrete skill's business
// logic. BaseSkill implements statemachine.Hooks and dispatches every
// call through a stored Behavior reference so that a concrete skill,
// which embeds *BaseSkill, can override individual state hooks simply by
// declaring a method of the same name — ordinary Go method promotion
// supplies the rest. This is the idiomatic stand-in for the
// virtual-dispatch-per-state hooks the reference design calls for.
package skill

import (
	"github.com/cognitive-production/skillbasedcontrol-server/pkg/skilldata"
	"github.com/cognitive-production/skillbasedcontrol-server/pkg/statemachine"
)

// Behavior is the full set of per-state Execute hooks plus the two
// general Entry/Exit hooks. BaseSkill provides a default implementation
// of every method; a concrete skill overrides only the ones it cares
// about.
type Behavior interface {
	IdleExecute(h *skilldata.Handle) statemachine.Result
	StartingExecute(h *skilldata.Handle) statemachine.Result
	ExecuteExecute(h *skilldata.Handle) statemachine.Result
	CompletingExecute(h *skilldata.Handle) statemachine.Result
	CompletedExecute(h *skilldata.Handle) statemachine.Result
	PausingExecute(h *skilldata.Handle) statemachine.Result
	PausedExecute(h *skilldata.Handle) statemachine.Result
	ResumingExecute(h *skilldata.Handle) statemachine.Result
	HoldingExecute(h *skilldata.Handle) statemachine.Result
	HeldExecute(h *skilldata.Handle) statemachine.Result
	UnholdingExecute(h *skilldata.Handle) statemachine.Result
	StoppingExecute(h *skilldata.Handle) statemachine.Result
	StoppedExecute(h *skilldata.Handle) statemachine.Result
	AbortingExecute(h *skilldata.Handle) statemachine.Result
	AbortedExecute(h *skilldata.Handle) statemachine.Result
	ResettingExecute(h *skilldata.Handle) statemachine.Result

	OnEntry(s statemachine.State, h *skilldata.Handle)
	OnExit(s statemachine.State, h *skilldata.Handle)
}

// Default Execute hooks: every state but Unholding/Resetting simply
// reports Done immediately. A concrete skill overrides whichever state
// it actually performs work in (almost always ExecuteExecute).

func (b *BaseSkill) IdleExecute(h *skilldata.Handle) statemachine.Result      { return statemachine.Done }
func (b *BaseSkill) StartingExecute(h *skilldata.Handle) statemachine.Result  { return statemachine.Done }
func (b *BaseSkill) ExecuteExecute(h *skilldata.Handle) statemachine.Result   { return statemachine.Done }
func (b *BaseSkill) CompletingExecute(h *skilldata.Handle) statemachine.Result {
	return statemachine.Done
}
func (b *BaseSkill) CompletedExecute(h *skilldata.Handle) statemachine.Result {
	return statemachine.Done
}
func (b *BaseSkill) PausingExecute(h *skilldata.Handle) statemachine.Result { return statemachine.Done }
func (b *BaseSkill) PausedExecute(h *skilldata.Handle) statemachine.Result  { return statemachine.Done }
func (b *BaseSkill) ResumingExecute(h *skilldata.Handle) statemachine.Result {
	return statemachine.Done
}
func (b *BaseSkill) HoldingExecute(h *skilldata.Handle) statemachine.Result { return statemachine.Done }
func (b *BaseSkill) HeldExecute(h *skilldata.Handle) statemachine.Result    { return statemachine.Done }
func (b *BaseSkill) StoppingExecute(h *skilldata.Handle) statemachine.Result {
	return statemachine.Done
}
func (b *BaseSkill) StoppedExecute(h *skilldata.Handle) statemachine.Result {
	return statemachine.Done
}
func (b *BaseSkill) AbortingExecute(h *skilldata.Handle) statemachine.Result {
	return statemachine.Done
}
func (b *BaseSkill) AbortedExecute(h *skilldata.Handle) statemachine.Result {
	return statemachine.Done
}

// UnholdingExecute clears the error triple before reporting Done, so a
// Held skill always leaves its fault behind on the way back to Execute.
func (b *BaseSkill) UnholdingExecute(h *skilldata.Handle) statemachine.Result {
	clearError(h)
	return statemachine.Done
}

// ResettingExecute clears the error triple before reporting Done.
func (b *BaseSkill) ResettingExecute(h *skilldata.Handle) statemachine.Result {
	clearError(h)
	return statemachine.Done
}

func clearError(h *skilldata.Handle) {
	h.State.Error = false
	h.State.ErrorID = 0
	h.State.ErrorMessage = ""
}

// OnEntry and OnExit default to no-ops.
func (b *BaseSkill) OnEntry(s statemachine.State, h *skilldata.Handle) {}
func (b *BaseSkill) OnExit(s statemachine.State, h *skilldata.Handle)  {}
