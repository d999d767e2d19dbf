package skill

import (
	"time"

	"github.com/cognitive-production/skillbasedcontrol-server/pkg/skilldata"
	"github.com/cognitive-production/skillbasedcontrol-server/pkg/statemachine"
)

// DelayedSkill is a reusable skill shape whose Execute state simply
// sleeps for a fixed duration and then reports Done. This blocks the
// owning worker's goroutine for the duration — an accepted suspension
// point inside a user-defined Execute state per the concurrency model;
// the rest of the skill server is unaffected.
type DelayedSkill struct {
	*BaseSkill
	DelayTime time.Duration
}

// NewDelayedSkill constructs a DelayedSkill. self must be the outermost
// concrete skill type (which embeds *DelayedSkill, directly or further
// down an embedding chain) so that overridden hooks dispatch correctly.
func NewDelayedSkill(self Behavior, def skilldata.SkillDataDefault, delay time.Duration) *DelayedSkill {
	d := &DelayedSkill{DelayTime: delay}
	d.BaseSkill = NewBaseSkill(self, def)
	return d
}

// ExecuteExecute sleeps DelayTime then reports Done.
func (d *DelayedSkill) ExecuteExecute(h *skilldata.Handle) statemachine.Result {
	time.Sleep(d.DelayTime)
	return statemachine.Done
}
