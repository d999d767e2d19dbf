// Copyright 2026 Cognitive Production. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package runtime

import (
	"sync"
	"time"

	"github.com/cognitive-production/skillbasedcontrol-server/pkg/config"
	"github.com/cognitive-production/skillbasedcontrol-server/pkg/ctlerrors"
	"github.com/cognitive-production/skillbasedcontrol-server/pkg/observability"
)

// Hooks are the pair of virtual transport-facing methods a Server
// exposes to every worker it owns. The zero value's hooks are no-ops,
// matching the component design's "default no-ops; a transport
// subclass overrides" rule — callers pass a real implementation in as
// NewServer's hooks argument.
type Hooks struct {
	Read  ReadHook
	Write WriteHook
}

// Server owns N runtime Workers keyed by unique skill name. Duplicate
// names are rejected at registration as a ctlerrors.DuplicateSkill
// fatal error. It runs its own coarser cycle for housekeeping (metrics
// snapshot logging today; a transport's connection-health checks are a
// natural future addition) and, on Stop, signals every worker to exit
// and joins them.
type Server struct {
	cfg     *config.Config
	log     observability.Logger
	metrics *observability.Metrics
	hooks   Hooks

	mu      sync.Mutex
	workers map[string]*Worker
	names   []string // registration order, for deterministic Start/Stop

	stopCh chan struct{}
	wg     sync.WaitGroup
}

// NewServer creates a Server configured from cfg, logging through log
// (may be observability.NopLogger() in tests) and recording through mx
// (may be nil to disable metrics).
func NewServer(cfg *config.Config, log observability.Logger, mx *observability.Metrics, hooks Hooks) *Server {
	return &Server{
		cfg:     cfg,
		log:     log,
		metrics: mx,
		hooks:   hooks,
		workers: make(map[string]*Worker),
		stopCh:  make(chan struct{}),
	}
}

// Register adds a skill under its own name, building a Worker for it at
// the server's configured skill cycle time. Returns a *ctlerrors.Error
// of kind DuplicateSkillName if the name is already registered.
func (s *Server) Register(sk Skill) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := sk.SkillName()
	if _, exists := s.workers[name]; exists {
		return ctlerrors.DuplicateSkill(name)
	}

	w := NewWorker(sk, s.cfg.Skill.CycleTime, s.cfg.Skill.UseCorrection, s.log, s.metrics, s.hooks.Read, s.hooks.Write)
	s.workers[name] = w
	s.names = append(s.names, name)
	return nil
}

// Start launches every registered worker on its own goroutine, then the
// server's own coarser housekeeping cycle, also on its own goroutine.
// Start returns immediately; call Stop (and it will block until every
// worker has settled) to shut down.
func (s *Server) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, name := range s.names {
		w := s.workers[name]
		s.wg.Add(1)
		go func(w *Worker) {
			defer s.wg.Done()
			w.Run()
		}(w)
	}

	s.wg.Add(1)
	go s.houseKeep()
}

// houseKeep runs the server's own coarser cycle: today this is a
// metrics snapshot log line; a transport implementation's connection
// health check is the natural next tenant of this loop.
func (s *Server) houseKeep() {
	defer s.wg.Done()

	timer := NewCycleTimer(s.cfg.Skill.ServerCycleTime, s.cfg.Skill.UseCorrection, s.log, s.metrics)
	for {
		select {
		case <-s.stopCh:
			return
		default:
		}

		timer.StartCycle()
		s.logSnapshot()
		timer.EndCycle()
	}
}

func (s *Server) logSnapshot() {
	if s.log == nil || s.metrics == nil {
		return
	}
	snap := s.metrics.Snapshot()
	s.log.Debug("server cycle",
		observability.Int("executions", int(snap.Executions)),
		observability.Int("errors", int(snap.Errors)),
		observability.Int("overruns", int(snap.Overruns)))
}

// Stop signals every worker and the housekeeping loop to exit, then
// blocks until all of them have settled (or GracefulTimeout elapses).
func (s *Server) Stop(gracefulTimeout time.Duration) {
	s.mu.Lock()
	workers := make([]*Worker, 0, len(s.workers))
	for _, name := range s.names {
		workers = append(workers, s.workers[name])
	}
	s.mu.Unlock()

	close(s.stopCh)
	for _, w := range workers {
		w.Stop()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(gracefulTimeout):
		if s.log != nil {
			s.log.Warn("graceful shutdown timed out, some workers may not have settled")
		}
	}
}

// SkillNames returns the names of all registered skills, in
// registration order.
func (s *Server) SkillNames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}
