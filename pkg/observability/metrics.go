// Copyright 2026 Cognitive Production. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package observability

import (
	"sync"
	"sync/atomic"
	"time"
)

// Metrics is a lightweight, allocation-free metrics collector built on
// atomic counters rather than a client library: the skill server has no
// HTTP surface of its own to expose a /metrics endpoint from, so a
// Prometheus client would sit unused (see the design ledger for why this
// is the one place the ambient stack stays on sync/atomic).
type Metrics struct {
	executions  atomic.Int64
	errors      atomic.Int64
	overruns    atomic.Int64
	execNanosum atomic.Int64

	mu      sync.RWMutex
	perSkill map[string]*SkillMetrics
}

// SkillMetrics accumulates counters for one named skill.
type SkillMetrics struct {
	Executions atomic.Int64
	Errors     atomic.Int64
}

// NewMetrics creates a new metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{perSkill: make(map[string]*SkillMetrics)}
}

func (m *Metrics) skill(name string) *SkillMetrics {
	m.mu.RLock()
	s, ok := m.perSkill[name]
	m.mu.RUnlock()
	if ok {
		return s
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.perSkill[name]; ok {
		return s
	}
	s = &SkillMetrics{}
	m.perSkill[name] = s
	return s
}

// RecordSkillExecution records one run_cycle, its duration, and whether
// it faulted.
func (m *Metrics) RecordSkillExecution(skillName string, d time.Duration, faulted bool) {
	m.executions.Add(1)
	m.execNanosum.Add(d.Nanoseconds())
	s := m.skill(skillName)
	s.Executions.Add(1)
	if faulted {
		m.errors.Add(1)
		s.Errors.Add(1)
	}
}

// RecordCycleOverrun records a worker or server cycle that overran its
// target period (the cycle timer's own warn-log condition).
func (m *Metrics) RecordCycleOverrun() {
	m.overruns.Add(1)
}

// Snapshot is a point-in-time read of the aggregate counters.
type Snapshot struct {
	Executions   int64
	Errors       int64
	Overruns     int64
	MeanExecTime time.Duration
}

// Snapshot returns the current aggregate counters.
func (m *Metrics) Snapshot() Snapshot {
	n := m.executions.Load()
	var mean time.Duration
	if n > 0 {
		mean = time.Duration(m.execNanosum.Load() / n)
	}
	return Snapshot{
		Executions:   n,
		Errors:       m.errors.Load(),
		Overruns:     m.overruns.Load(),
		MeanExecTime: mean,
	}
}

// SkillSnapshot returns the counters for one named skill.
func (m *Metrics) SkillSnapshot(name string) (executions, errors int64) {
	s := m.skill(name)
	return s.Executions.Load(), s.Errors.Load()
}
