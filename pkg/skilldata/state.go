package skilldata

import (
	"github.com/cognitive-production/skillbasedcontrol-server/pkg/statemachine"
	"github.com/cognitive-production/skillbasedcontrol-server/pkg/wire"
)

// SkillState is the live, read-only-to-the-supervisor view of a skill:
// its active mode/state/command (each as both a numeric enum and its
// string name, which always agree by construction since the string is
// derived from the enum, never stored independently), the error triple,
// and the current command-enablement mask.
type SkillState struct {
	ActiveMode    statemachine.Mode
	ActiveState   statemachine.State
	ActiveCommand statemachine.Command

	Error        bool
	ErrorID      uint32
	ErrorMessage string

	CommandEnabled CommandEnabled
}

// ApplyTick updates state from a state-machine TickResult. This is the
// only path that mutates ActiveMode/ActiveState/ActiveCommand/CommandEnabled.
func (s *SkillState) ApplyTick(r statemachine.TickResult) {
	s.ActiveMode = r.Mode
	s.ActiveState = r.State
	s.ActiveCommand = r.ActiveCommand
	s.CommandEnabled = FromEnabled(r.Enabled)
}

// CopyFrom populates s from its wire counterpart. Only the error triple
// is accepted from the wire side; active mode/state/command are always
// derived from the state machine, never imported.
func (s *SkillState) CopyFrom(w wire.SkillStateRecord) {
	s.Error = w.Error
	s.ErrorID = w.ErrorID
	s.ErrorMessage = w.ErrorMessage
}

// CopyTo writes s into its wire counterpart.
func (s SkillState) CopyTo() wire.SkillStateRecord {
	return wire.SkillStateRecord{
		ActiveMode:       int(s.ActiveMode),
		ActiveModeStr:    s.ActiveMode.String(),
		ActiveState:      int(s.ActiveState),
		ActiveStateStr:   s.ActiveState.String(),
		ActiveCommand:    int(s.ActiveCommand),
		ActiveCommandStr: s.ActiveCommand.String(),
		Error:            s.Error,
		ErrorID:          s.ErrorID,
		ErrorMessage:     s.ErrorMessage,
		CommandEnabled:   s.CommandEnabled.CopyTo(),
	}
}
