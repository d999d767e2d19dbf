package examples

import (
	"testing"
	"time"

	"github.com/cognitive-production/skillbasedcontrol-server/pkg/statemachine"
)

func TestAddSkillEndToEnd(t *testing.T) {
	a := NewAddSkill("Add1")
	for i := range a.Handle.Command.Parameters {
		switch a.Handle.Command.Parameters[i].Name {
		case "Operant1":
			a.Handle.Command.Parameters[i].Value = "2.5"
		case "Operant2":
			a.Handle.Command.Parameters[i].Value = "3.5"
		}
	}

	a.Handle.Pending.State.Start = true
	a.RunCycle() // Idle -> Starting
	a.RunCycle() // Starting -> Execute
	a.RunCycle() // Execute -> Completing (runs ExecuteExecute)
	a.RunCycle() // Completing -> Completed

	if a.State() != statemachine.Completed {
		t.Fatalf("got state %v, want Completed", a.State())
	}
	if a.Handle.State.Error {
		t.Fatalf("unexpected error: %s", a.Handle.State.ErrorMessage)
	}
	result, ok := a.Handle.Command.Get("Result")
	if !ok || result.Value != "6.0" {
		t.Fatalf("Result = %q, want \"6.0\"", result.Value)
	}
}

func TestAddSkillParameterCoercionFault(t *testing.T) {
	a := NewAddSkill("Add2")
	for i := range a.Handle.Command.Parameters {
		if a.Handle.Command.Parameters[i].Name == "Operant1" {
			a.Handle.Command.Parameters[i].Value = "not-a-number"
		}
	}

	a.Handle.Pending.State.Start = true
	a.RunCycle() // -> Starting
	a.RunCycle() // -> Execute
	a.RunCycle() // ExecuteExecute returns Error -> Holding

	if a.State() != statemachine.Holding {
		t.Fatalf("got state %v, want Holding", a.State())
	}
	if !a.Handle.State.Error {
		t.Fatalf("expected error to be set after bad parameter")
	}
}

func TestSleepSkillCompletesAfterDelay(t *testing.T) {
	s := NewSleepSkill("Sleep1", 2*time.Millisecond)
	s.Handle.Pending.State.Start = true
	s.RunCycle()
	s.RunCycle()

	start := time.Now()
	s.RunCycle() // Execute -> Completing (sleeps first)
	if time.Since(start) < 2*time.Millisecond {
		t.Fatalf("SleepSkill did not wait for its configured delay")
	}

	s.RunCycle() // Completing -> Completed
	if s.State() != statemachine.Completed {
		t.Fatalf("got state %v, want Completed", s.State())
	}
}
