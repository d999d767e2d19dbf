// Copyright 2026 Cognitive Production. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package memtransport

import (
	"testing"

	"github.com/cognitive-production/skillbasedcontrol-server/pkg/examples"
	"github.com/cognitive-production/skillbasedcontrol-server/pkg/statemachine"
	"github.com/cognitive-production/skillbasedcontrol-server/pkg/wire"
)

func TestReadHookDeliversCommandIntoSkill(t *testing.T) {
	tp := New()
	sk := examples.NewAddSkill("adder")

	tp.SetCommand("adder", wire.SkillCommandRecord{State: wire.StateCommands{Start: true}})
	tp.SetDataCommand("adder", wire.SkillDataCommandRecord{
		Parameters: []wire.Parameter{{Name: "Operant1", Value: "2"}, {Name: "Operant2", Value: "3"}},
	})

	read := tp.ReadHook()
	read(sk)

	if !sk.Handle.Pending.State.Start {
		t.Fatal("expected Start pulse delivered to Pending")
	}
	op1, ok := sk.Handle.Command.Get("Operant1")
	if !ok || op1.Value != "2" {
		t.Fatalf("expected Operant1=2, got %+v ok=%v", op1, ok)
	}
}

func TestWriteHookPublishesStateAndClearsCommand(t *testing.T) {
	tp := New()
	sk := examples.NewAddSkill("adder")

	tp.SetCommand("adder", wire.SkillCommandRecord{State: wire.StateCommands{Start: true}})
	tp.SetDataCommand("adder", wire.SkillDataCommandRecord{
		Parameters: []wire.Parameter{{Name: "Operant1", Value: "2"}, {Name: "Operant2", Value: "3"}},
	})

	read := tp.ReadHook()
	write := tp.WriteHook()

	read(sk)
	sk.RunCycle() // Idle -> Starting
	write(sk)

	state := tp.State("adder")
	if state.ActiveStateStr != statemachine.Starting.String() {
		t.Errorf("expected Starting published, got %s", state.ActiveStateStr)
	}

	published := tp.DataDefault("adder")
	if published.Name != "adder" {
		t.Errorf("expected published default name 'adder', got %q", published.Name)
	}

	// The Start pulse should have been cleared in the republished Command
	// record, since no fresh supervisor write arrived mid-cycle.
	if tp.bind("adder").command.State.Start {
		t.Error("expected Start pulse cleared after write-out")
	}
}

func TestWriteHookBacksOffOnFreshSupervisorWrite(t *testing.T) {
	tp := New()
	sk := examples.NewAddSkill("adder")

	tp.SetCommand("adder", wire.SkillCommandRecord{State: wire.StateCommands{Start: true}})
	read := tp.ReadHook()
	write := tp.WriteHook()

	read(sk)
	sk.RunCycle()

	// Supervisor writes something new mid-cycle, after read-in captured
	// its marker but before write-out runs.
	tp.SetCommand("adder", wire.SkillCommandRecord{State: wire.StateCommands{Abort: true}})

	write(sk)

	got := tp.bind("adder")
	if !got.command.State.Abort {
		t.Error("write-out must not clobber a fresh supervisor write")
	}
}
