// Copyright 2026 Cognitive Production. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package observability

import (
	"time"

	"github.com/google/uuid"
)

// Span times one named unit of work (a skill cycle, a read/write hook)
// and emits its duration through a Logger on End. There is no trace
// propagation here — the skill server has no distributed call graph to
// propagate a context across, just a handful of local phases per cycle.
// Each Span carries its own id so concurrent skills' overlapping spans
// can be told apart in the log stream.
type Span struct {
	id    string
	name  string
	start time.Time
	log   Logger
}

// StartSpan begins timing name, logging through log (may be nil to
// disable).
func StartSpan(log Logger, name string) *Span {
	return &Span{id: uuid.NewString(), name: name, start: time.Now(), log: log}
}

// End logs the elapsed duration at Debug level.
func (s *Span) End() {
	if s.log == nil {
		return
	}
	s.log.Debug("span",
		String("id", s.id),
		String("name", s.name),
		Duration("elapsed", time.Since(s.start)))
}
