package skilldata

// Handle is the full per-instance record set: the immutable default
// descriptor, the supervisor-supplied command parameters, the live
// state, and the pending command object. One Handle per skill instance,
// exclusively owned by that skill's runtime worker — constructed with
// the skill, mutated only by the owning worker (plus the transport's
// read-in path, which writes Command fields before the tick), destroyed
// when the skill is destroyed.
type Handle struct {
	Default SkillDataDefault
	Command SkillDataCommand
	State   SkillState
	Pending SkillCommand
}

// NewHandle builds a Handle for a skill whose default descriptor is def.
// Command starts as a copy of def's parameters.
func NewHandle(def SkillDataDefault) *Handle {
	params := append([]Parameter(nil), def.Parameters...)
	return &Handle{
		Default: def,
		Command: SkillDataCommand{Name: def.Name, Type: def.Type, Description: def.Description, Parameters: params},
		State:   SkillState{},
	}
}
