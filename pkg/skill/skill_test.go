package skill

import (
	"testing"
	"time"

	"github.com/cognitive-production/skillbasedcontrol-server/pkg/skilldata"
	"github.com/cognitive-production/skillbasedcontrol-server/pkg/statemachine"
)

func testDef(name string) skilldata.SkillDataDefault {
	return skilldata.NewSkillDataDefault(name, "test", "", nil)
}

func TestBaseSkillRunCycleClearsPulses(t *testing.T) {
	s := &struct{ *BaseSkill }{}
	s.BaseSkill = NewBaseSkill(s, testDef("noop"))

	s.Handle.Pending.State.Start = true
	s.RunCycle()

	if s.Handle.Pending.State.Start {
		t.Fatalf("RunCycle must clear the Start pulse")
	}
	if s.State() != statemachine.Starting {
		t.Fatalf("got state %v, want Starting", s.State())
	}
}

func TestDelayedSkillSleepsThenCompletes(t *testing.T) {
	s := &struct{ *DelayedSkill }{}
	s.DelayedSkill = NewDelayedSkill(s, testDef("sleep"), 5*time.Millisecond)

	s.Handle.Pending.State.Start = true
	s.RunCycle() // Idle -> Starting

	s.RunCycle() // Starting -> Execute
	if s.State() != statemachine.Execute {
		t.Fatalf("got state %v, want Execute", s.State())
	}

	start := time.Now()
	s.RunCycle() // Execute -> Completing (sleeps first)
	if time.Since(start) < 5*time.Millisecond {
		t.Fatalf("DelayedSkill did not sleep for DelayTime")
	}
	if s.State() != statemachine.Completing {
		t.Fatalf("got state %v, want Completing", s.State())
	}
}

func TestExternalExecuteSkillWaitsForStateComplete(t *testing.T) {
	s := &struct{ *ExternalExecuteSkill }{}
	s.ExternalExecuteSkill = NewExternalExecuteSkill(s, testDef("ext"))

	s.Handle.Pending.State.Start = true
	s.RunCycle() // -> Starting
	s.RunCycle() // -> Execute

	s.RunCycle() // stays Busy
	if s.State() != statemachine.Execute {
		t.Fatalf("without StateComplete, got state %v, want Execute", s.State())
	}

	s.Handle.Pending.StateComplete = true
	s.RunCycle() // Execute -> Completing
	if s.State() != statemachine.Completing {
		t.Fatalf("got state %v, want Completing", s.State())
	}
	if s.Handle.Pending.StateComplete {
		t.Fatalf("StateComplete must be cleared by the skill on consumption")
	}
}

func TestUnholdingAndResettingClearError(t *testing.T) {
	s := &struct{ *BaseSkill }{}
	s.BaseSkill = NewBaseSkill(s, testDef("faulty"))

	s.Handle.Pending.State.Start = true
	s.RunCycle() // -> Starting
	s.RunCycle() // -> Execute

	s.Handle.State.Error = true
	s.Handle.State.ErrorID = 42
	s.Handle.State.ErrorMessage = "boom"
	s.Handle.Pending.State.Hold = true
	s.RunCycle() // Execute -> Holding

	s.RunCycle() // Holding -> Held
	if s.State() != statemachine.Held {
		t.Fatalf("got state %v, want Held", s.State())
	}

	s.Handle.Pending.State.Unhold = true
	s.RunCycle() // Held -> Unholding
	s.RunCycle() // Unholding -> Execute, clearing the error triple

	if s.Handle.State.Error || s.Handle.State.ErrorID != 0 || s.Handle.State.ErrorMessage != "" {
		t.Fatalf("error triple not cleared after Unholding: %+v", s.Handle.State)
	}

	s.Handle.State.Error = true
	s.Handle.State.ErrorID = 7
	s.Handle.State.ErrorMessage = "boom again"
	s.Handle.Pending.State.Hold = true
	s.RunCycle() // Execute -> Holding
	s.RunCycle() // Holding -> Held

	s.Handle.Pending.State.Reset = true
	s.RunCycle() // Held -> Resetting, clearing the error triple
	s.RunCycle() // Resetting -> Idle
	if s.State() != statemachine.Idle {
		t.Fatalf("got state %v, want Idle", s.State())
	}
	if s.Handle.State.Error || s.Handle.State.ErrorID != 0 || s.Handle.State.ErrorMessage != "" {
		t.Fatalf("error triple not cleared after Resetting: %+v", s.Handle.State)
	}
}
