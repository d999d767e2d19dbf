// Copyright 2026 Cognitive Production. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package main

import (
	"github.com/cognitive-production/skillbasedcontrol-server/pkg/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skillbasedcontrol-server",
	Short: "Skill-based control server",
	Long: `skillbasedcontrol-server

Runs PackML/ISA-88 state-machine skills on a fixed cycle and projects
their command/state/data-default/data-command records onto a
configurable field-bus transport.`,
	Version: version.Info(),
}

var configPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"path to a project config file (overrides ./skillbasedcontrol.yaml search)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(skillCmd)
	rootCmd.AddCommand(versionCmd)
}
