// Copyright 2026 Cognitive Production. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package tcptransport

import (
	"bytes"
	"net"
	"testing"
	"time"

	"github.com/cognitive-production/skillbasedcontrol-server/pkg/wire"
)

func TestFramerRoundTrip(t *testing.T) {
	server, client := net.Pipe()
	defer server.Close()
	defer client.Close()

	sf := NewFramer(server)
	cf := NewFramer(client)

	msg := []byte("hello skill server")
	go func() {
		if err := sf.Send(msg); err != nil {
			t.Errorf("send failed: %v", err)
		}
	}()

	got, err := cf.Receive()
	if err != nil {
		t.Fatalf("receive failed: %v", err)
	}
	if !bytes.Equal(got, msg) {
		t.Errorf("expected %q, got %q", msg, got)
	}
}

func TestJSONCodecEnvelopeRoundTrip(t *testing.T) {
	codec, err := NewCodec("json")
	if err != nil {
		t.Fatal(err)
	}

	rec := wire.SkillCommandRecord{State: wire.StateCommands{Start: true}}
	raw, err := encodeEnvelope(codec, "adder", KindCommand, rec)
	if err != nil {
		t.Fatal(err)
	}

	env, err := decodeEnvelope(codec, raw)
	if err != nil {
		t.Fatal(err)
	}
	if env.Skill != "adder" || env.Kind != KindCommand {
		t.Fatalf("unexpected envelope: %+v", env)
	}

	var got wire.SkillCommandRecord
	if err := codec.Decode(env.Payload, &got); err != nil {
		t.Fatal(err)
	}
	if !got.State.Start {
		t.Error("expected Start pulse to survive the round trip")
	}
}

func TestGobCodecEnvelopeRoundTrip(t *testing.T) {
	codec, err := NewCodec("gob")
	if err != nil {
		t.Fatal(err)
	}

	rec := wire.SkillStateRecord{ActiveStateStr: "Execute"}
	raw, err := encodeEnvelope(codec, "adder", KindState, rec)
	if err != nil {
		t.Fatal(err)
	}

	env, err := decodeEnvelope(codec, raw)
	if err != nil {
		t.Fatal(err)
	}

	var got wire.SkillStateRecord
	if err := codec.Decode(env.Payload, &got); err != nil {
		t.Fatal(err)
	}
	if got.ActiveStateStr != "Execute" {
		t.Errorf("expected Execute, got %q", got.ActiveStateStr)
	}
}

func TestTransportDeliversSupervisorWriteToBinding(t *testing.T) {
	tp, err := New("json", nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := tp.Listen("127.0.0.1:0"); err != nil {
		t.Fatal(err)
	}
	defer tp.Close()

	addr := tp.listener.Addr().String()
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	framer := NewFramer(conn)
	codec, _ := NewCodec("json")
	raw, err := encodeEnvelope(codec, "adder", KindCommand, wire.SkillCommandRecord{State: wire.StateCommands{Abort: true}})
	if err != nil {
		t.Fatal(err)
	}
	if err := framer.Send(raw); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		b := tp.bind("adder")
		b.mu.Lock()
		got := b.command.State.Abort
		b.mu.Unlock()
		if got {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("supervisor write never reached the binding")
}
