// Copyright 2026 Cognitive Production. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package tcptransport

// RecordKind identifies which of the four per-skill wire records an
// Envelope carries.
type RecordKind string

const (
	KindCommand     RecordKind = "command"
	KindState       RecordKind = "state"
	KindDataDefault RecordKind = "data_default"
	KindDataCommand RecordKind = "data_command"
)

// Envelope wraps one wire record addressed to or from a named skill,
// mirroring the teacher corpus's {ID, Data} wrapper (TCPMessageFmt):
// Payload is itself already encoded by the chosen Codec, so both the
// JSON and gob codecs can carry it without either one needing to know
// the other's representation.
type Envelope struct {
	Skill   string
	Kind    RecordKind
	Payload []byte
}

func encodeEnvelope(codec Codec, skill string, kind RecordKind, record any) ([]byte, error) {
	payload, err := codec.Encode(record)
	if err != nil {
		return nil, err
	}
	return codec.Encode(Envelope{Skill: skill, Kind: kind, Payload: payload})
}

func decodeEnvelope(codec Codec, raw []byte) (Envelope, error) {
	var env Envelope
	err := codec.Decode(raw, &env)
	return env, err
}
