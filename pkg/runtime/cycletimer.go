// Copyright 2026 Cognitive Production. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package runtime drives skills on a fixed cycle and owns the server
// that supervises their workers.
package runtime

import (
	"time"

	"github.com/cognitive-production/skillbasedcontrol-server/pkg/observability"
)

// CycleTimer paces repeated work to a target period T, self-correcting
// for scheduling drift across cycles.
//
// start_cycle/end_cycle: end_cycle sleeps for max(0, T-elapsed-c) where
// c is the drift carried over from the previous cycle, then updates c
// to the overrun of the sleep itself. If a cycle overruns T, no sleep
// happens and c grows by exactly the overrun, so the next cycle alone
// absorbs it instead of compounding across many cycles.
type CycleTimer struct {
	period     time.Duration
	correction time.Duration
	useCorrect bool
	log        observability.Logger
	metrics    *observability.Metrics

	start time.Time
}

// NewCycleTimer creates a timer targeting period. log and metrics may
// be nil to disable the warn-log and overrun counter.
func NewCycleTimer(period time.Duration, useCorrection bool, log observability.Logger, metrics *observability.Metrics) *CycleTimer {
	return &CycleTimer{
		period:     period,
		useCorrect: useCorrection,
		log:        log,
		metrics:    metrics,
	}
}

// StartCycle records the monotonic start of a new cycle.
func (c *CycleTimer) StartCycle() {
	c.start = time.Now()
}

// EndCycle sleeps out the remainder of the period (adjusted for any
// carried drift correction), then recomputes the correction for next
// time. It returns the elapsed wall time before the sleep, for callers
// that want to log or record it themselves.
func (c *CycleTimer) EndCycle() time.Duration {
	elapsed := time.Since(c.start)

	if elapsed >= time.Duration(1.1*float64(c.period)) {
		if c.log != nil {
			c.log.Warn("cycle overrun",
				observability.Duration("elapsed", elapsed),
				observability.Duration("period", c.period))
		}
		if c.metrics != nil {
			c.metrics.RecordCycleOverrun()
		}
	}

	remaining := c.period - elapsed - c.correction
	if remaining > 0 {
		time.Sleep(remaining)
	}

	if c.useCorrect {
		totalElapsed := time.Since(c.start)
		drift := totalElapsed - c.period
		if drift < 0 {
			drift = 0
		}
		c.correction = drift
	} else {
		c.correction = 0
	}

	return elapsed
}
