// Copyright 2026 Cognitive Production. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/cognitive-production/skillbasedcontrol-server/pkg/config"
	"github.com/cognitive-production/skillbasedcontrol-server/pkg/lifecycle"
	"github.com/cognitive-production/skillbasedcontrol-server/pkg/observability"
	"github.com/cognitive-production/skillbasedcontrol-server/pkg/runtime"
	"github.com/cognitive-production/skillbasedcontrol-server/pkg/skill"
	"github.com/cognitive-production/skillbasedcontrol-server/pkg/transport/memtransport"
	"github.com/cognitive-production/skillbasedcontrol-server/pkg/transport/tcptransport"
	"github.com/spf13/cobra"
)

const gracefulTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the skill server until stopped",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := observability.NewLogger(cfg.Global.LogLevel)
	metrics := observability.NewMetrics()

	hooks, closeTransport, err := buildTransport(cfg, log)
	if err != nil {
		return err
	}
	defer closeTransport()

	srv := runtime.NewServer(cfg, log, metrics, hooks)

	defs, errs := skill.NewLoader(skill.WithSkillDirs(cfg.Skill.DefinitionDirs...)).Discover()
	for _, e := range errs {
		log.Warn("skipping invalid skill definition", observability.Err(e))
	}
	for name, def := range defs {
		if err := srv.Register(skill.NewGeneric(def)); err != nil {
			return fmt.Errorf("registering skill %q: %w", name, err)
		}
	}
	if len(srv.SkillNames()) == 0 {
		log.Warn("no skill definitions discovered", observability.String("dirs", strings.Join(cfg.Skill.DefinitionDirs, ",")))
	}

	log.Info("starting skill server",
		observability.String("transport", cfg.Transport.Kind),
		observability.Int("skills", len(srv.SkillNames())))

	srv.Start()
	awaitShutdown(log)
	srv.Stop(gracefulTimeout)
	log.Info("skill server stopped")
	return nil
}

// buildTransport selects memtransport or tcptransport per
// cfg.Transport.Kind and wraps it as runtime.Hooks, along with a close
// func to release any transport-owned resources (listeners, conns).
func buildTransport(cfg *config.Config, log observability.Logger) (runtime.Hooks, func(), error) {
	switch cfg.Transport.Kind {
	case "tcp":
		tp, err := tcptransport.New(cfg.Transport.Encoding, log)
		if err != nil {
			return runtime.Hooks{}, func() {}, fmt.Errorf("building tcp transport: %w", err)
		}
		addr := fmt.Sprintf("%s:%d", cfg.Transport.Hostname, cfg.Transport.Port)
		if err := tp.Listen(addr); err != nil {
			return runtime.Hooks{}, func() {}, fmt.Errorf("listening on %s: %w", addr, err)
		}
		hooks := runtime.Hooks{Read: tp.ReadHook(), Write: tp.WriteHook()}
		return hooks, func() { tp.Close() }, nil
	default:
		tp := memtransport.New()
		hooks := runtime.Hooks{Read: tp.ReadHook(), Write: tp.WriteHook()}
		return hooks, func() {}, nil
	}
}

func awaitShutdown(log observability.Logger) {
	ctx, cancel := lifecycle.WithSignal(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	stdinCh := make(chan struct{})
	go watchStdin(stdinCh)

	select {
	case <-ctx.Done():
		log.Info("received signal, shutting down")
	case <-stdinCh:
		log.Info("shutdown requested from stdin")
	}
}

// watchStdin closes done when the operator types "q" or "quit" on
// stdin, the same interactive shutdown path the teacher's runner
// offered alongside signals.
func watchStdin(done chan<- struct{}) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "q" || line == "quit" {
			close(done)
			return
		}
	}
}
