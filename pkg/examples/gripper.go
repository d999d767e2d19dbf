package examples

import (
	"time"

	"github.com/cognitive-production/skillbasedcontrol-server/pkg/skill"
	"github.com/cognitive-production/skillbasedcontrol-server/pkg/skilldata"
	"github.com/cognitive-production/skillbasedcontrol-server/pkg/statemachine"
)

// GripperSkill models a two-jaw gripper: it closes (or opens) to a
// target position with a given force, taking a fixed settle time to
// simulate the physical actuator.
type GripperSkill struct {
	*skill.DelayedSkill
}

// NewGripperSkill constructs a GripperSkill with the given settle time.
func NewGripperSkill(name string, settle time.Duration) *GripperSkill {
	def := skilldata.NewSkillDataDefault(name, "gripper", "grips or releases at a target force", []skilldata.Parameter{
		{Name: "Grip", Value: "false"},
		{Name: "Position", Value: "0", Unit: "mm"},
		{Name: "Force", Value: "0", Unit: "N"},
	})
	g := &GripperSkill{}
	g.DelayedSkill = skill.NewDelayedSkill(g, def, settle)
	return g
}

// ExecuteExecute checks that Grip is present and that Force, if present,
// parses as a number, before falling through to the embedded
// DelayedSkill's settle-time sleep. Position is not checked.
func (g *GripperSkill) ExecuteExecute(h *skilldata.Handle) statemachine.Result {
	if _, ok := h.Command.Get("Grip"); !ok {
		h.State.Error = true
		h.State.ErrorMessage = "missing Grip parameter"
		return statemachine.Error
	}
	if force, ok := h.Command.Get("Force"); ok {
		if _, err := force.Float64(); err != nil {
			h.State.Error = true
			h.State.ErrorMessage = "Force: " + err.Error()
			return statemachine.Error
		}
	}
	return g.DelayedSkill.ExecuteExecute(h)
}
