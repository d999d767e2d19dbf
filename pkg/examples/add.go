// Package examples ships worked skill implementations — user code in the
// sense of the component design, not part of the core, but exercising
// the base skill, parameter coercion, and JSON skill-definition paths
// end to end.
package examples

import (
	"fmt"

	"github.com/cognitive-production/skillbasedcontrol-server/pkg/skill"
	"github.com/cognitive-production/skillbasedcontrol-server/pkg/skilldata"
	"github.com/cognitive-production/skillbasedcontrol-server/pkg/statemachine"
)

// AddSkill sums two operands supplied as command parameters and writes
// the result back as a third parameter, demonstrating the parameter
// coercion error path the error-handling design requires.
type AddSkill struct {
	*skill.BaseSkill
}

// NewAddSkill constructs an AddSkill instance.
func NewAddSkill(name string) *AddSkill {
	def := skilldata.NewSkillDataDefault(name, "arithmetic", "adds two operands", []skilldata.Parameter{
		{Name: "Operant1", Value: "0"},
		{Name: "Operant2", Value: "0"},
		{Name: "Result", Value: "0"},
	})
	a := &AddSkill{}
	a.BaseSkill = skill.NewBaseSkill(a, def)
	return a
}

// ExecuteExecute parses Operant1 and Operant2, writes their sum to
// Result, and completes. A parse failure is a parameter-coercion fault:
// the skill sets its own error triple and reports Error.
func (a *AddSkill) ExecuteExecute(h *skilldata.Handle) statemachine.Result {
	op1, ok1 := h.Command.Get("Operant1")
	op2, ok2 := h.Command.Get("Operant2")
	if !ok1 || !ok2 {
		return a.fault(h, "missing Operant1/Operant2 parameter")
	}

	v1, err := op1.Float64()
	if err != nil {
		return a.fault(h, fmt.Sprintf("Operant1: %v", err))
	}
	v2, err := op2.Float64()
	if err != nil {
		return a.fault(h, fmt.Sprintf("Operant2: %v", err))
	}

	for i := range h.Command.Parameters {
		if h.Command.Parameters[i].Name == "Result" {
			h.Command.Parameters[i].SetFloat64(v1 + v2)
		}
	}
	return statemachine.Done
}

func (a *AddSkill) fault(h *skilldata.Handle, msg string) statemachine.Result {
	h.State.Error = true
	h.State.ErrorMessage = msg
	return statemachine.Error
}
