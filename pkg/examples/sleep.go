package examples

import (
	"strconv"
	"time"

	"github.com/cognitive-production/skillbasedcontrol-server/pkg/skill"
	"github.com/cognitive-production/skillbasedcontrol-server/pkg/skilldata"
)

// SleepSkill is the plainest possible DelayedSkill: one parameter
// documenting the configured delay, no Execute override of its own.
type SleepSkill struct {
	*skill.DelayedSkill
}

// NewSleepSkill constructs a SleepSkill that sleeps for delay on every
// invocation.
func NewSleepSkill(name string, delay time.Duration) *SleepSkill {
	def := skilldata.NewSkillDataDefault(name, "sleep", "waits a fixed duration", []skilldata.Parameter{
		{Name: "DelaySeconds", Value: strconv.FormatFloat(delay.Seconds(), 'f', -1, 64), Unit: "s"},
	})
	s := &SleepSkill{}
	s.DelayedSkill = skill.NewDelayedSkill(s, def, delay)
	return s
}
