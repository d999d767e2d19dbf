package skilldata

import (
	"github.com/cognitive-production/skillbasedcontrol-server/pkg/statemachine"
	"github.com/cognitive-production/skillbasedcontrol-server/pkg/wire"
)

// StateCommands holds the ten edge-triggered state command pulses. After
// every tick the core clears all ten (see SkillCommand.Clear).
type StateCommands struct {
	Reset    bool
	Start    bool
	Stop     bool
	Hold     bool
	Unhold   bool
	Pause    bool
	Resume   bool
	Abort    bool
	Restart  bool
	Complete bool
}

// ToPulses adapts StateCommands to the state machine's pulse type.
func (c StateCommands) ToPulses() statemachine.CommandPulses {
	return statemachine.CommandPulses(c)
}

// ModeCommands holds the four edge-triggered mode command pulses. Also
// auto-cleared after every tick.
type ModeCommands struct {
	Offline           bool
	Operator          bool
	AutomaticInternal bool
	AutomaticExternal bool
}

// ToPulses adapts ModeCommands to the state machine's pulse type.
func (c ModeCommands) ToPulses() statemachine.ModePulses {
	return statemachine.ModePulses(c)
}

// SkillCommand is the full command object a supervisor writes into:
// the ten state pulses, the four mode pulses, and the level-triggered
// StateComplete handshake.
type SkillCommand struct {
	State         StateCommands
	Mode          ModeCommands
	StateComplete bool
}

// Clear zeroes every edge-triggered pulse. StateComplete is untouched —
// it is a level signal consumed by the skill's own Execute implementation.
func (c *SkillCommand) Clear() {
	c.State = StateCommands{}
	c.Mode = ModeCommands{}
}

// CopyFrom populates c from its wire counterpart.
func (c *SkillCommand) CopyFrom(w wire.SkillCommandRecord) {
	c.State = StateCommands(w.State)
	c.Mode = ModeCommands(w.Mode)
	c.StateComplete = w.StateComplete
}

// CopyTo writes c into its wire counterpart.
func (c SkillCommand) CopyTo() wire.SkillCommandRecord {
	return wire.SkillCommandRecord{
		State:         wire.StateCommands(c.State),
		Mode:          wire.ModeCommands(c.Mode),
		StateComplete: c.StateComplete,
	}
}

// CommandEnabled mirrors StateCommands, declaring which commands the
// current state accepts. Recomputed by the state machine on every
// transition.
type CommandEnabled struct {
	Reset    bool
	Start    bool
	Stop     bool
	Hold     bool
	Unhold   bool
	Pause    bool
	Resume   bool
	Abort    bool
	Restart  bool
	Complete bool
}

// FromEnabled adapts the state machine's Enabled type.
func FromEnabled(e statemachine.Enabled) CommandEnabled {
	return CommandEnabled(e)
}

// CopyTo writes e into its wire counterpart.
func (e CommandEnabled) CopyTo() wire.CommandEnabled {
	return wire.CommandEnabled(e)
}
