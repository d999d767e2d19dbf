package skilldata

import "github.com/cognitive-production/skillbasedcontrol-server/pkg/wire"

// SkillDataDefault is the immutable-after-init descriptor for a skill
// class: one instance per skill, shared by every invocation.
type SkillDataDefault struct {
	Name        string
	Type        string
	Description string
	Parameters  []Parameter
}

// ParameterCount returns len(Parameters); the invariant
// ParameterCount == len(Parameters) always holds by construction since
// there is no separate stored counter to drift out of sync.
func (d SkillDataDefault) ParameterCount() int {
	return len(d.Parameters)
}

// NewSkillDataDefault builds a descriptor, recomputing the parameter
// count from the supplied parameter list (used by the JSON
// skill-definition loader per the external-interfaces contract).
func NewSkillDataDefault(name, typ, description string, params []Parameter) SkillDataDefault {
	return SkillDataDefault{Name: name, Type: typ, Description: description, Parameters: params}
}

// CopyFrom populates d from its wire counterpart.
func (d *SkillDataDefault) CopyFrom(w wire.SkillDataDefaultRecord) {
	d.Name = w.Name
	d.Type = w.Type
	d.Description = w.Description
	d.Parameters = parametersFromWire(w.Parameters)
}

// CopyTo writes d into its wire counterpart, recomputing ParameterCount.
func (d SkillDataDefault) CopyTo() wire.SkillDataDefaultRecord {
	return wire.SkillDataDefaultRecord{
		Name:           d.Name,
		Type:           d.Type,
		Description:    d.Description,
		ParameterCount: d.ParameterCount(),
		Parameters:     parametersToWire(d.Parameters),
	}
}

// SkillDataCommand holds the mutable parameters supplied by the
// supervisor for the current invocation. Same shape as SkillDataDefault;
// populated by the supervisor, consumed by the skill's Execute states.
type SkillDataCommand struct {
	Name        string
	Type        string
	Description string
	Parameters  []Parameter
}

// ParameterCount returns len(Parameters).
func (c SkillDataCommand) ParameterCount() int {
	return len(c.Parameters)
}

// Get returns the named parameter and whether it was found.
func (c SkillDataCommand) Get(name string) (Parameter, bool) {
	for _, p := range c.Parameters {
		if p.Name == name {
			return p, true
		}
	}
	return Parameter{}, false
}

// CopyFrom populates c from its wire counterpart.
func (c *SkillDataCommand) CopyFrom(w wire.SkillDataCommandRecord) {
	c.Name = w.Name
	c.Type = w.Type
	c.Description = w.Description
	c.Parameters = parametersFromWire(w.Parameters)
}

// CopyTo writes c into its wire counterpart, recomputing ParameterCount.
func (c SkillDataCommand) CopyTo() wire.SkillDataCommandRecord {
	return wire.SkillDataCommandRecord{
		Name:           c.Name,
		Type:           c.Type,
		Description:    c.Description,
		ParameterCount: c.ParameterCount(),
		Parameters:     parametersToWire(c.Parameters),
	}
}
