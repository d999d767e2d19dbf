package skill

import "github.com/cognitive-production/skillbasedcontrol-server/pkg/skilldata"

// Generic is a BaseSkill with no Execute overrides of its own — what a
// JSON skill-definition resolves to when no user code has been wired in
// for it, exercising the default Behavior implementations end to end.
type Generic struct {
	*BaseSkill
}

// NewGeneric constructs a Generic skill from a loaded descriptor.
func NewGeneric(def skilldata.SkillDataDefault) *Generic {
	g := &Generic{}
	g.BaseSkill = NewBaseSkill(g, def)
	return g
}
