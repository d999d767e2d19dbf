// Copyright 2026 Cognitive Production. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// EnvPrefix is the prefix for all environment variable overrides.
	EnvPrefix = "SKILLBC"
	// ProjectConfigFile is the project-level config file name.
	ProjectConfigFile = "skillbasedcontrol.yaml"
	// GlobalConfigDir is the global config directory name, under $HOME.
	GlobalConfigDir = ".skillbasedcontrol"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
)

// Loader loads configuration from files and environment, applying the
// precedence chain documented in the config package comment.
type Loader struct {
	projectRoot string
	configPath  string
	skipGlobal  bool
}

// NewLoader creates a new config loader.
func NewLoader() *Loader {
	return &Loader{}
}

// WithProjectRoot sets the project root directory searched for
// skillbasedcontrol.yaml.
func (l *Loader) WithProjectRoot(root string) *Loader {
	l.projectRoot = root
	return l
}

// WithConfigPath pins the project config to an explicit path (e.g. from
// a --config flag), bypassing project-root search.
func (l *Loader) WithConfigPath(path string) *Loader {
	l.configPath = path
	return l
}

// SkipGlobal skips loading the global config file.
func (l *Loader) SkipGlobal() *Loader {
	l.skipGlobal = true
	return l
}

// Load loads configuration with full precedence order:
// 1. Defaults
// 2. Global Config ($HOME/.skillbasedcontrol/config.yaml)
// 3. Project Config (./skillbasedcontrol.yaml, or --config path)
// 4. Environment Variables (SKILLBC_*)
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()

	if !l.skipGlobal {
		if globalCfg, err := l.loadGlobalConfig(); err == nil {
			mergeConfig(cfg, globalCfg)
		}
	}

	if projectCfg, err := l.loadProjectConfig(); err == nil {
		mergeConfig(cfg, projectCfg)
	}

	if err := l.applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, &ConfigError{Err: err}
	}

	return cfg, nil
}

// LoadFromPath loads configuration from a specific YAML file, layered
// on top of the defaults (a file need only set the fields it wants to
// override).
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	return cfg, nil
}

func (l *Loader) loadGlobalConfig() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(filepath.Join(homeDir, GlobalConfigDir, GlobalConfigFile))
}

func (l *Loader) loadProjectConfig() (*Config, error) {
	if l.configPath != "" {
		return LoadFromPath(l.configPath)
	}
	root := l.projectRoot
	if root == "" {
		root = "."
	}
	return LoadFromPath(filepath.Join(root, ProjectConfigFile))
}

// applyEnvOverrides applies environment variable overrides of the form
// SKILLBC_SECTION__KEY=value.
func (l *Loader) applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("SKILLBC_SKILL__CYCLETIME"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return &ConfigError{Field: "skill.cycletime", Err: err}
		}
		cfg.Skill.CycleTime = d
	}
	if v := os.Getenv("SKILLBC_SKILL__SERVER_CYCLETIME"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return &ConfigError{Field: "skill.server_cycletime", Err: err}
		}
		cfg.Skill.ServerCycleTime = d
	}
	if v := os.Getenv("SKILLBC_SKILL__USE_CYCLETIME_CORRECTION"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return &ConfigError{Field: "skill.use_cycletime_correction", Err: err}
		}
		cfg.Skill.UseCorrection = b
	}
	if v := os.Getenv("SKILLBC_SKILL__DEFINITION_DIRS"); v != "" {
		cfg.Skill.DefinitionDirs = strings.Split(v, string(os.PathListSeparator))
	}

	if v := os.Getenv("SKILLBC_TRANSPORT__KIND"); v != "" {
		cfg.Transport.Kind = v
	}
	if v := os.Getenv("SKILLBC_TRANSPORT__HOSTNAME"); v != "" {
		cfg.Transport.Hostname = v
	}
	if v := os.Getenv("SKILLBC_TRANSPORT__PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return &ConfigError{Field: "transport.port", Err: err}
		}
		cfg.Transport.Port = p
	}
	if v := os.Getenv("SKILLBC_TRANSPORT__NAMESPACE_INDEX"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return &ConfigError{Field: "transport.namespace_index", Err: err}
		}
		cfg.Transport.NamespaceIndex = n
	}
	if v := os.Getenv("SKILLBC_TRANSPORT__ENCODING"); v != "" {
		cfg.Transport.Encoding = v
	}

	if v := os.Getenv("SKILLBC_GLOBAL__LOG_LEVEL"); v != "" {
		cfg.Global.LogLevel = v
	}

	return nil
}

// mergeConfig merges src into dst (src overrides dst field-by-field,
// leaving zero-valued fields in src untouched in dst).
func mergeConfig(dst, src *Config) {
	if src.Skill.CycleTime > 0 {
		dst.Skill.CycleTime = src.Skill.CycleTime
	}
	if src.Skill.ServerCycleTime > 0 {
		dst.Skill.ServerCycleTime = src.Skill.ServerCycleTime
	}
	if len(src.Skill.DefinitionDirs) > 0 {
		dst.Skill.DefinitionDirs = src.Skill.DefinitionDirs
	}
	dst.Skill.UseCorrection = src.Skill.UseCorrection

	if src.Transport.Kind != "" {
		dst.Transport.Kind = src.Transport.Kind
	}
	if src.Transport.Hostname != "" {
		dst.Transport.Hostname = src.Transport.Hostname
	}
	if src.Transport.Port != 0 {
		dst.Transport.Port = src.Transport.Port
	}
	if src.Transport.NamespaceIndex != 0 {
		dst.Transport.NamespaceIndex = src.Transport.NamespaceIndex
	}
	if src.Transport.Encoding != "" {
		dst.Transport.Encoding = src.Transport.Encoding
	}

	if src.Global.LogLevel != "" {
		dst.Global.LogLevel = src.Global.LogLevel
	}
}

// ConfigError represents a configuration load or validation error.
type ConfigError struct {
	Path  string
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Path != "" {
		return "config error in " + e.Path + ": " + e.Err.Error()
	}
	if e.Field != "" {
		return "config error for " + e.Field + ": " + e.Err.Error()
	}
	return "config error: " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// DetectProjectRoot finds the project root by walking up from the
// working directory looking for skillbasedcontrol.yaml.
func DetectProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, ProjectConfigFile)); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ".", nil
		}
		dir = parent
	}
}

// FindConfigPaths returns all config file paths that currently exist,
// in precedence order.
func FindConfigPaths() []string {
	var paths []string

	if homeDir, err := os.UserHomeDir(); err == nil {
		globalPath := filepath.Join(homeDir, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(globalPath); err == nil {
			paths = append(paths, globalPath)
		}
	}

	if root, err := DetectProjectRoot(); err == nil {
		projectPath := filepath.Join(root, ProjectConfigFile)
		if _, err := os.Stat(projectPath); err == nil {
			paths = append(paths, projectPath)
		}
	}

	return paths
}

// GetEnvConfig returns all environment variables that start with the
// SKILLBC_ prefix.
func GetEnvConfig() map[string]string {
	result := make(map[string]string)
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, EnvPrefix+"_") {
			if kv := strings.SplitN(env, "=", 2); len(kv) == 2 {
				result[kv[0]] = kv[1]
			}
		}
	}
	return result
}
