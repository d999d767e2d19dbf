// Copyright 2026 Cognitive Production. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package memtransport is an in-memory, loopback transport implementing
// the transport projection contract: it backs unit tests and a local
// CLI run mode, and also stands in for a simulation environment by
// exposing a writable state_complete and a readable active_state scalar
// node per skill, alongside the four standard records.
package memtransport

import (
	"sync"

	"github.com/cognitive-production/skillbasedcontrol-server/pkg/runtime"
	"github.com/cognitive-production/skillbasedcontrol-server/pkg/skilldata"
	"github.com/cognitive-production/skillbasedcontrol-server/pkg/transport"
	"github.com/cognitive-production/skillbasedcontrol-server/pkg/wire"
)

// binding is everything the loopback transport holds for one skill: the
// four wire records and the command change marker.
type binding struct {
	mu sync.Mutex

	command       wire.SkillCommandRecord
	commandMarker transport.ChangeMarker[wire.SkillCommandRecord]

	state       wire.SkillStateRecord
	def         wire.SkillDataDefaultRecord
	dataCommand wire.SkillDataCommandRecord
}

// Transport is a process-local field-bus simulator keyed by skill name.
// There is no package-level registry of anything: every binding lives in
// this instance's map, per the component design's "no package-level
// mutable registry" redesign.
type Transport struct {
	mu       sync.RWMutex
	bindings map[string]*binding
}

// New creates an empty loopback transport.
func New() *Transport {
	return &Transport{bindings: make(map[string]*binding)}
}

func (t *Transport) bind(name string) *binding {
	t.mu.RLock()
	b, ok := t.bindings[name]
	t.mu.RUnlock()
	if ok {
		return b
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if b, ok := t.bindings[name]; ok {
		return b
	}
	b = &binding{}
	t.bindings[name] = b
	return b
}

// SetCommand simulates a supervisor write of the Command record (the ten
// state pulses, four mode pulses, and StateComplete handshake) for the
// named skill.
func (t *Transport) SetCommand(name string, cmd wire.SkillCommandRecord) {
	b := t.bind(name)
	b.mu.Lock()
	defer b.mu.Unlock()
	b.command = cmd
}

// SetStateComplete simulates the simulation-environment's writable
// state_complete scalar node, leaving the rest of the Command record
// untouched.
func (t *Transport) SetStateComplete(name string, v bool) {
	b := t.bind(name)
	b.mu.Lock()
	defer b.mu.Unlock()
	b.command.StateComplete = v
}

// State returns the current State record for name, including
// active_state — the simulation environment's readable scalar node is
// just its ActiveStateStr/ActiveState fields.
func (t *Transport) State(name string) wire.SkillStateRecord {
	b := t.bind(name)
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// DataDefault returns the current DataDefault record for name.
func (t *Transport) DataDefault(name string) wire.SkillDataDefaultRecord {
	b := t.bind(name)
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.def
}

// DataCommand returns the current DataCommand record for name.
func (t *Transport) DataCommand(name string) wire.SkillDataCommandRecord {
	b := t.bind(name)
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dataCommand
}

// SetDataCommand simulates a supervisor write of the DataCommand
// (invocation parameters) record.
func (t *Transport) SetDataCommand(name string, rec wire.SkillDataCommandRecord) {
	b := t.bind(name)
	b.mu.Lock()
	defer b.mu.Unlock()
	b.dataCommand = rec
}

// ReadHook returns a runtime.ReadHook bound to this transport: it pulls
// the live Command and DataCommand records into the skill's pending
// command and command-parameters, capturing the command change marker
// so the subsequent write-out can detect a fresh supervisor write.
func (t *Transport) ReadHook() runtime.ReadHook {
	return func(s runtime.Skill) {
		hs, ok := s.(transport.HandleSkill)
		if !ok {
			return
		}
		b := t.bind(hs.SkillName())
		b.mu.Lock()
		defer b.mu.Unlock()

		b.commandMarker.Capture(b.command)

		h := hs.SkillHandle()
		h.Pending.CopyFrom(b.command)
		h.Command.CopyFrom(b.dataCommand)
	}
}

// WriteHook returns a runtime.WriteHook bound to this transport: it
// always pushes State and DataDefault (both read-only to the
// supervisor, so there is nothing to protect), and pushes the
// pulse-cleared Command record only if the live wire value still
// matches what ReadHook captured — otherwise the supervisor has already
// written something new since read-in, and the write-out backs off
// rather than clobber it.
func (t *Transport) WriteHook() runtime.WriteHook {
	return func(s runtime.Skill) {
		hs, ok := s.(transport.HandleSkill)
		if !ok {
			return
		}
		b := t.bind(hs.SkillName())
		b.mu.Lock()
		defer b.mu.Unlock()

		h := hs.SkillHandle()
		b.state = h.State.CopyTo()
		b.def = h.Default.CopyTo()

		if b.commandMarker.Unchanged(b.command) {
			b.command = clearedCommand(h.Pending)
		}
	}
}

// clearedCommand projects a skilldata.SkillCommand whose edge-triggered
// pulses have already been consumed and cleared by RunCycle back onto
// the wire, preserving StateComplete (a level signal the write-out never
// clears on its own).
func clearedCommand(c skilldata.SkillCommand) wire.SkillCommandRecord {
	return c.CopyTo()
}
