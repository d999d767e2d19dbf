// Copyright 2026 Cognitive Production. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package config

import (
	"os"
	"path/filepath"
	"time"
)

// DefaultConfig returns the default configuration, used when no config
// file is present and no environment override applies.
func DefaultConfig() *Config {
	return &Config{
		Skill:     DefaultSkillRuntimeConfig(),
		Transport: DefaultTransportConfig(),
		Global:    DefaultGlobalConfig(),
	}
}

// DefaultSkillRuntimeConfig returns the default cycle timing.
func DefaultSkillRuntimeConfig() SkillRuntimeConfig {
	return SkillRuntimeConfig{
		CycleTime:      500 * time.Millisecond,
		ServerCycleTime: time.Second,
		UseCorrection:  true,
		DefinitionDirs: []string{"./skills"},
	}
}

// DefaultTransportConfig returns the default transport binding: an
// in-memory loopback, so a server started with no configuration at all
// comes up usable for local exercising without opening a socket.
func DefaultTransportConfig() TransportConfig {
	return TransportConfig{
		Kind:           "memory",
		Hostname:       "0.0.0.0",
		Port:           4840,
		NamespaceIndex: 2,
		Encoding:       "json",
	}
}

// DefaultGlobalConfig returns default global configuration.
func DefaultGlobalConfig() GlobalConfig {
	return GlobalConfig{
		LogLevel: "info",
	}
}

// GetDefaultConfigPath returns the default global config file path.
func GetDefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, GlobalConfigDir, GlobalConfigFile)
}
