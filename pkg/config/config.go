// Copyright 2026 Cognitive Production. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package config provides layered configuration management for the
// skill server.
//
// Configuration Loading Order (later overrides earlier):
//  1. Defaults (hardcoded)
//  2. Global Config: $HOME/.skillbasedcontrol/config.yaml
//  3. Project Config: ./skillbasedcontrol.yaml (or --config)
//  4. Environment Variables: SKILLBC_*
package config

import (
	"fmt"
	"time"
)

// Config is the complete server configuration.
type Config struct {
	Skill     SkillRuntimeConfig `yaml:"skill"`
	Transport TransportConfig    `yaml:"transport"`
	Global    GlobalConfig       `yaml:"global"`
}

// SkillRuntimeConfig controls the cycle timing every worker and the
// server itself run at.
type SkillRuntimeConfig struct {
	CycleTime        time.Duration `yaml:"cycletime"`
	ServerCycleTime  time.Duration `yaml:"server_cycletime"`
	UseCorrection    bool          `yaml:"use_cycletime_correction"`
	DefinitionDirs   []string      `yaml:"definition_dirs"`
}

// TransportConfig configures the field-bus binding.
type TransportConfig struct {
	Kind           string `yaml:"kind"` // "memory" or "tcp"
	Hostname       string `yaml:"hostname"`
	Port           int    `yaml:"port"`
	NamespaceIndex int    `yaml:"namespace_index"`
	Encoding       string `yaml:"encoding"` // "json" or "gob", tcp only
}

// GlobalConfig contains global server settings.
type GlobalConfig struct {
	LogLevel string `yaml:"log_level"` // debug, info, warn, error
}

// Validate rejects a configuration that cannot be used to start a
// server, per the configuration-error disposition (fatal at
// construction).
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config is nil")
	}
	if c.Skill.CycleTime <= 0 {
		return fmt.Errorf("skill.cycletime must be positive")
	}
	if c.Skill.ServerCycleTime <= 0 {
		return fmt.Errorf("skill.server_cycletime must be positive")
	}
	switch c.Transport.Kind {
	case "memory", "tcp":
	default:
		return fmt.Errorf("transport.kind must be \"memory\" or \"tcp\", got %q", c.Transport.Kind)
	}
	if c.Transport.Kind == "tcp" {
		if c.Transport.Port <= 0 || c.Transport.Port > 65535 {
			return fmt.Errorf("transport.port out of range: %d", c.Transport.Port)
		}
		switch c.Transport.Encoding {
		case "json", "gob":
		default:
			return fmt.Errorf("transport.encoding must be \"json\" or \"gob\", got %q", c.Transport.Encoding)
		}
	}
	return nil
}
