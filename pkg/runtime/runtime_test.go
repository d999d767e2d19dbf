// Copyright 2026 Cognitive Production. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package runtime

import (
	"testing"
	"time"

	"github.com/cognitive-production/skillbasedcontrol-server/pkg/config"
	"github.com/cognitive-production/skillbasedcontrol-server/pkg/examples"
	"github.com/cognitive-production/skillbasedcontrol-server/pkg/observability"
	"github.com/cognitive-production/skillbasedcontrol-server/pkg/statemachine"
)

func TestCycleTimerConvergesToPeriod(t *testing.T) {
	period := 10 * time.Millisecond
	timer := NewCycleTimer(period, true, nil, nil)

	start := time.Now()
	const cycles = 5
	for i := 0; i < cycles; i++ {
		timer.StartCycle()
		timer.EndCycle()
	}
	elapsed := time.Since(start)

	want := time.Duration(cycles) * period
	if elapsed < want-5*time.Millisecond || elapsed > want+30*time.Millisecond {
		t.Errorf("expected ~%v total, got %v", want, elapsed)
	}
}

func TestCycleTimerOverrunDoesNotCompound(t *testing.T) {
	period := 5 * time.Millisecond
	timer := NewCycleTimer(period, true, nil, nil)

	timer.StartCycle()
	time.Sleep(2 * period) // overrun by one full period
	timer.EndCycle()

	start := time.Now()
	timer.StartCycle()
	timer.EndCycle()
	elapsed := time.Since(start)

	// Only this cycle's own overrun carries forward, so the immediately
	// following cycle should not itself be stretched by two periods.
	if elapsed > 3*period {
		t.Errorf("drift compounded into the next cycle: %v", elapsed)
	}
}

func newAddWorker(name string) (*examples.AddSkill, *Worker) {
	sk := examples.NewAddSkill(name)
	w := NewWorker(sk, time.Millisecond, false, observability.NopLogger(), nil, nil, nil)
	return sk, w
}

func TestWorkerRunAndStopSettlesToStopped(t *testing.T) {
	sk, w := newAddWorker("adder")

	go w.Run()
	// Let it idle for a couple of cycles.
	time.Sleep(5 * time.Millisecond)
	w.Stop()

	select {
	case <-w.Done():
	case <-time.After(time.Second):
		t.Fatal("worker did not settle in time")
	}

	if got := sk.State(); got != statemachine.Stopped && got != statemachine.Aborted {
		t.Errorf("expected Stopped or Aborted after shutdown, got %v", got)
	}
}

func TestServerRejectsDuplicateSkillName(t *testing.T) {
	cfg := config.DefaultConfig()
	srv := NewServer(cfg, observability.NopLogger(), observability.NewMetrics(), Hooks{})

	if err := srv.Register(examples.NewAddSkill("dup")); err != nil {
		t.Fatalf("first register should succeed: %v", err)
	}
	err := srv.Register(examples.NewAddSkill("dup"))
	if err == nil {
		t.Fatal("expected duplicate name error")
	}
}

func TestServerStartStopJoinsAllWorkers(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Skill.CycleTime = time.Millisecond
	cfg.Skill.ServerCycleTime = 2 * time.Millisecond
	srv := NewServer(cfg, observability.NopLogger(), observability.NewMetrics(), Hooks{})

	if err := srv.Register(examples.NewAddSkill("a")); err != nil {
		t.Fatal(err)
	}
	if err := srv.Register(examples.NewAddSkill("b")); err != nil {
		t.Fatal(err)
	}

	srv.Start()
	time.Sleep(10 * time.Millisecond)
	srv.Stop(time.Second)

	names := srv.SkillNames()
	if len(names) != 2 {
		t.Errorf("expected 2 registered skills, got %d", len(names))
	}
}
