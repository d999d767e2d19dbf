// Copyright 2026 Cognitive Production. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package runtime

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/cognitive-production/skillbasedcontrol-server/pkg/observability"
	"github.com/cognitive-production/skillbasedcontrol-server/pkg/statemachine"
)

// Skill is the surface a runtime Worker needs from a concrete skill.
// *skill.BaseSkill (and anything embedding it) satisfies this.
type Skill interface {
	SkillName() string
	RunCycle() statemachine.TickResult
	State() statemachine.State
	ForceFault()
	RequestStop()
}

// ReadHook mutates a skill's pending command in place, pulling fresh
// command/mode pulses in from the transport before a cycle runs.
type ReadHook func(s Skill)

// WriteHook pushes a skill's state, default, and (change-marker gated)
// command record out to the transport after a cycle runs.
type WriteHook func(s Skill)

// stoppedOrAborted reports whether s has reached one of the two states
// a shutdown sequence is allowed to settle in.
func stoppedOrAborted(s statemachine.State) bool {
	return s == statemachine.Stopped || s == statemachine.Aborted
}

// maxShutdownIterations bounds the re-tick loop during shutdown so a
// wedged skill (one whose Execute hook never lets Stop complete)
// cannot hang the worker forever.
const maxShutdownIterations = 1000

// Worker runs one skill on its own cycle: read-in, tick, write-out,
// cycle-timer sleep, repeated until stopped.
type Worker struct {
	skill Skill
	timer *CycleTimer
	log   observability.Logger
	mx    *observability.Metrics

	read  ReadHook
	write WriteHook

	running atomic.Bool
	done    chan struct{}
}

// NewWorker creates a worker for skill, cycling at period with the
// given hooks (either may be nil to skip that step — used in tests
// and for skills with no external projection).
func NewWorker(s Skill, period time.Duration, useCorrection bool, log observability.Logger, mx *observability.Metrics, read ReadHook, write WriteHook) *Worker {
	return &Worker{
		skill: s,
		timer: NewCycleTimer(period, useCorrection, log, mx),
		log:   log,
		mx:    mx,
		read:  read,
		write: write,
		done:  make(chan struct{}),
	}
}

// Run executes the worker loop until Stop is called. Intended to run in
// its own goroutine; blocks until shutdown settles or the iteration cap
// is hit.
func (w *Worker) Run() {
	w.running.Store(true)
	defer close(w.done)

	for w.running.Load() {
		w.cycle()
	}

	w.shutdownSequence()
}

func (w *Worker) cycle() {
	w.timer.StartCycle()
	defer w.timer.EndCycle()

	if w.read != nil {
		w.read(w.skill)
	}

	w.tickWithRecovery()

	if w.write != nil {
		w.write(w.skill)
	}
}

// tickWithRecovery runs one RunCycle, applying the exception discipline
// from the component design: a panicking Execute hook is caught, logged,
// and force-transitions the skill to Holding or Stopping rather than
// taking the worker down.
func (w *Worker) tickWithRecovery() {
	defer func() {
		if r := recover(); r != nil {
			if w.log != nil {
				w.log.Error("skill execute panicked",
					observability.String("skill", w.skill.SkillName()),
					observability.Err(fmt.Errorf("%v", r)))
			}
			w.skill.ForceFault()
		}
	}()

	start := time.Now()
	result := w.skill.RunCycle()
	if w.mx != nil {
		w.mx.RecordSkillExecution(w.skill.SkillName(), time.Since(start), result.Faulted)
	}
}

// Stop requests the worker to exit its main loop; it then drives the
// skill toward Stopped/Aborted before returning control to the caller
// via the channel Done reports on.
func (w *Worker) Stop() {
	w.running.Store(false)
}

// Done returns a channel closed once the worker's shutdown sequence has
// completed.
func (w *Worker) Done() <-chan struct{} {
	return w.done
}

// shutdownSequence sets the Stop command and re-ticks until the skill
// settles in Stopped or Aborted, capped to avoid hanging forever on a
// wedged skill.
func (w *Worker) shutdownSequence() {
	if stoppedOrAborted(w.skill.State()) {
		return
	}

	for i := 0; i < maxShutdownIterations; i++ {
		w.skill.RequestStop()
		w.tickWithRecovery()
		if stoppedOrAborted(w.skill.State()) {
			return
		}
	}

	if w.log != nil {
		w.log.Warn("worker shutdown cap reached without settling",
			observability.String("skill", w.skill.SkillName()))
	}
}
