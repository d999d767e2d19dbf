package skill

import (
	"github.com/cognitive-production/skillbasedcontrol-server/pkg/skilldata"
	"github.com/cognitive-production/skillbasedcontrol-server/pkg/statemachine"
)

// ExternalExecuteSkill is a reusable skill shape whose Execute state
// stays Busy until the supervisor raises the level-triggered
// StateComplete handshake, at which point it clears the handshake and
// reports Done. Useful for skills whose actual work happens outside the
// server (e.g. a motion controller completing a move).
type ExternalExecuteSkill struct {
	*BaseSkill
}

// NewExternalExecuteSkill constructs an ExternalExecuteSkill. self must
// be the outermost concrete skill type.
func NewExternalExecuteSkill(self Behavior, def skilldata.SkillDataDefault) *ExternalExecuteSkill {
	e := &ExternalExecuteSkill{}
	e.BaseSkill = NewBaseSkill(self, def)
	return e
}

// ExecuteExecute reports Busy until StateComplete is observed true.
func (e *ExternalExecuteSkill) ExecuteExecute(h *skilldata.Handle) statemachine.Result {
	if h.Pending.StateComplete {
		h.Pending.StateComplete = false
		return statemachine.Done
	}
	return statemachine.Busy
}
