// Copyright 2026 Cognitive Production. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package tcptransport

import (
	"net"
	"sync"

	"github.com/cognitive-production/skillbasedcontrol-server/pkg/observability"
	"github.com/cognitive-production/skillbasedcontrol-server/pkg/runtime"
	"github.com/cognitive-production/skillbasedcontrol-server/pkg/transport"
	"github.com/cognitive-production/skillbasedcontrol-server/pkg/wire"
	"github.com/google/uuid"
)

// binding holds the inbound (supervisor-written) records for one skill,
// plus the change marker guarding the Command write-out — the same
// discipline memtransport uses, now fed from the network instead of a
// direct in-process call.
type binding struct {
	mu sync.Mutex

	command       wire.SkillCommandRecord
	commandMarker transport.ChangeMarker[wire.SkillCommandRecord]
	dataCommand   wire.SkillDataCommandRecord
}

// Transport is a length-prefixed TCP field-bus server: it accepts
// connections from supervisors, applies their Command/DataCommand
// writes to per-skill bindings, and broadcasts State/DataDefault (and
// change-marker-gated Command) to every connected peer on write-out.
// All per-skill bindings and per-connection framers live in this
// instance's maps (no package-level registry), per the component
// design's "instance field, not a global dict" re-architecture.
type Transport struct {
	codec Codec
	log   observability.Logger

	mu       sync.RWMutex
	bindings map[string]*binding
	conns    map[net.Conn]*Framer

	listener net.Listener
}

// New creates a Transport using the named encoding ("json" or "gob").
func New(encoding string, log observability.Logger) (*Transport, error) {
	codec, err := NewCodec(encoding)
	if err != nil {
		return nil, err
	}
	return &Transport{
		codec:    codec,
		log:      log,
		bindings: make(map[string]*binding),
		conns:    make(map[net.Conn]*Framer),
	}, nil
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

// Listen starts accepting supervisor connections on addr (host:port).
// Call Close to stop.
func (t *Transport) Listen(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	t.listener = ln

	go t.acceptLoop(ln)
	return nil
}

func (t *Transport) acceptLoop(ln net.Listener) {
	for {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		sessionID := uuid.NewString()
		if t.log != nil {
			t.log.Info("supervisor connected",
				observability.String("session", sessionID),
				observability.String("remote", conn.RemoteAddr().String()))
		}
		framer := t.addConn(conn)
		go t.receiveLoop(conn, framer)
	}
}

func (t *Transport) addConn(conn net.Conn) *Framer {
	framer := NewFramer(conn)
	t.mu.Lock()
	t.conns[conn] = framer
	t.mu.Unlock()
	return framer
}

func (t *Transport) removeConn(conn net.Conn) {
	t.mu.Lock()
	delete(t.conns, conn)
	t.mu.Unlock()
	conn.Close()
}

// receiveLoop decodes inbound envelopes from one supervisor connection
// and applies Command/DataCommand writes to the matching binding.
// A write for a skill this server hasn't registered yet is not
// rejected: it is stored in a freshly created binding, which that skill
// reads from once it is registered. framer is the
// same instance addConn stored for broadcast, not a second one layered
// over the same conn.
func (t *Transport) receiveLoop(conn net.Conn, framer *Framer) {
	defer t.removeConn(conn)

	for {
		raw, err := framer.Receive()
		if err != nil {
			if t.log != nil {
				t.log.Warn("tcp transport connection closed", observability.Err(err))
			}
			return
		}

		env, err := decodeEnvelope(t.codec, raw)
		if err != nil {
			if t.log != nil {
				t.log.Warn("tcp transport decode failed", observability.Err(err))
			}
			continue
		}

		t.applyInbound(env)
	}
}

func (t *Transport) applyInbound(env Envelope) {
	b := t.bind(env.Skill)
	b.mu.Lock()
	defer b.mu.Unlock()

	switch env.Kind {
	case KindCommand:
		var rec wire.SkillCommandRecord
		if err := t.codec.Decode(env.Payload, &rec); err == nil {
			b.command = rec
		}
	case KindDataCommand:
		var rec wire.SkillDataCommandRecord
		if err := t.codec.Decode(env.Payload, &rec); err == nil {
			b.dataCommand = rec
		}
	}
}

// broadcast sends one envelope to every currently connected peer.
func (t *Transport) broadcast(skill string, kind RecordKind, record any) {
	payload, err := encodeEnvelope(t.codec, skill, kind, record)
	if err != nil {
		if t.log != nil {
			t.log.Warn("tcp transport encode failed", observability.Err(err))
		}
		return
	}

	t.mu.RLock()
	framers := make([]*Framer, 0, len(t.conns))
	for _, f := range t.conns {
		framers = append(framers, f)
	}
	t.mu.RUnlock()

	for _, f := range framers {
		if err := f.Send(payload); err != nil && t.log != nil {
			t.log.Warn("tcp transport send failed", observability.Err(err))
		}
	}
}

// ReadHook returns a runtime.ReadHook bound to this transport: it
// copies the binding's current Command/DataCommand into the skill's
// pending command, capturing the change marker.
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
// broadcasts State and DataDefault unconditionally, and broadcasts the
// pulse-cleared Command only if no fresh supervisor write landed since
// ReadHook's capture.
func (t *Transport) WriteHook() runtime.WriteHook {
	return func(s runtime.Skill) {
		hs, ok := s.(transport.HandleSkill)
		if !ok {
			return
		}
		name := hs.SkillName()
		h := hs.SkillHandle()

		t.broadcast(name, KindState, h.State.CopyTo())
		t.broadcast(name, KindDataDefault, h.Default.CopyTo())

		b := t.bind(name)
		b.mu.Lock()
		cleared := h.Pending.CopyTo()
		push := b.commandMarker.Unchanged(b.command)
		if push {
			b.command = cleared
		}
		b.mu.Unlock()

		if push {
			t.broadcast(name, KindCommand, cleared)
		}
	}
}

// Close stops accepting new connections and closes every live one.
func (t *Transport) Close() error {
	if t.listener != nil {
		t.listener.Close()
	}
	t.mu.Lock()
	conns := make([]net.Conn, 0, len(t.conns))
	for c := range t.conns {
		conns = append(conns, c)
	}
	t.mu.Unlock()
	for _, c := range conns {
		c.Close()
	}
	return nil
}
