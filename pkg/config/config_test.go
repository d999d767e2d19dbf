// Copyright 2026 Cognitive Production. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate, got: %v", err)
	}
	if cfg.Transport.Kind != "memory" {
		t.Errorf("expected default transport kind memory, got %q", cfg.Transport.Kind)
	}
	if cfg.Skill.CycleTime != 500*time.Millisecond {
		t.Errorf("expected default cycle time 500ms, got %v", cfg.Skill.CycleTime)
	}
}

func TestValidateRejectsBadTransport(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Transport.Kind = "carrier-pigeon"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for unknown transport kind")
	}
}

func TestValidateRejectsBadTCPPort(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Transport.Kind = "tcp"
	cfg.Transport.Port = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for zero tcp port")
	}
}

func TestValidateRejectsNonPositiveCycleTime(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Skill.CycleTime = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for zero cycle time")
	}
}

func TestLoaderProjectConfigOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	yamlContent := "skill:\n  cycletime: 250ms\ntransport:\n  kind: tcp\n  port: 4841\n  encoding: json\n"
	if err := os.WriteFile(filepath.Join(dir, ProjectConfigFile), []byte(yamlContent), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewLoader().WithProjectRoot(dir).SkipGlobal().Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Skill.CycleTime != 250*time.Millisecond {
		t.Errorf("expected cycletime 250ms, got %v", cfg.Skill.CycleTime)
	}
	if cfg.Transport.Kind != "tcp" || cfg.Transport.Port != 4841 {
		t.Errorf("expected tcp:4841, got %s:%d", cfg.Transport.Kind, cfg.Transport.Port)
	}
}

func TestLoaderEnvOverridesProjectConfig(t *testing.T) {
	dir := t.TempDir()
	yamlContent := "transport:\n  kind: tcp\n  port: 4841\n  encoding: json\n"
	if err := os.WriteFile(filepath.Join(dir, ProjectConfigFile), []byte(yamlContent), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("SKILLBC_TRANSPORT__PORT", "9999")

	cfg, err := NewLoader().WithProjectRoot(dir).SkipGlobal().Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Transport.Port != 9999 {
		t.Errorf("expected env override to win, port=%d", cfg.Transport.Port)
	}
}

func TestLoaderMissingFilesFallBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := NewLoader().WithProjectRoot(dir).SkipGlobal().Load()
	if err != nil {
		t.Fatalf("Load should not fail when no config files exist: %v", err)
	}
	if cfg.Transport.Kind != "memory" {
		t.Errorf("expected fallback to default transport kind, got %q", cfg.Transport.Kind)
	}
}
