// Copyright 2026 Cognitive Production. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package transport defines the abstract projection contract every
// field-bus binding implements: four wire records per skill
// (Command RW, State R, DataDefault R, DataCommand RW) plus the
// change-marker discipline that keeps a write-out from clobbering a
// supervisor write that landed mid-cycle.
package transport

// ChangeMarker remembers the value of a comparable wire record as last
// read from the supervisor. A write-out consults Unchanged before
// pushing a locally-derived value back onto the wire: if the live value
// no longer matches what was captured at read-in, the supervisor has
// already written something new since, and the write-out must back off
// rather than overwrite it.
type ChangeMarker[T comparable] struct {
	snapshot T
	has      bool
}

// Capture records v as the marker's new snapshot.
func (m *ChangeMarker[T]) Capture(v T) {
	m.snapshot = v
	m.has = true
}

// Unchanged reports whether v is identical to the last captured
// snapshot. An un-captured marker reports false, so a write-out never
// proceeds before at least one read-in has happened.
func (m *ChangeMarker[T]) Unchanged(v T) bool {
	return m.has && v == m.snapshot
}
