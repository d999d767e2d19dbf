// Copyright 2026 Cognitive Production. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package main

import (
	"fmt"
	"sort"

	"github.com/cognitive-production/skillbasedcontrol-server/pkg/config"
	"github.com/cognitive-production/skillbasedcontrol-server/pkg/skill"
	"github.com/cognitive-production/skillbasedcontrol-server/pkg/skilldata"
	"github.com/spf13/cobra"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Inspect skill definitions",
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every discoverable skill definition",
	RunE: func(cmd *cobra.Command, args []string) error {
		defs, names, err := discoverSkills()
		if err != nil {
			return err
		}
		for _, name := range names {
			d := defs[name]
			fmt.Fprintf(cmd.OutOrStdout(), "%-24s %-16s %s\n", d.Name, d.Type, d.Description)
		}
		return nil
	},
}

var skillDescribeCmd = &cobra.Command{
	Use:   "describe [name]",
	Short: "Show the parameters of one skill definition",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		defs, _, err := discoverSkills()
		if err != nil {
			return err
		}
		d, ok := defs[args[0]]
		if !ok {
			return fmt.Errorf("no skill definition named %q", args[0])
		}
		fmt.Fprintf(cmd.OutOrStdout(), "name:        %s\n", d.Name)
		fmt.Fprintf(cmd.OutOrStdout(), "type:        %s\n", d.Type)
		fmt.Fprintf(cmd.OutOrStdout(), "description: %s\n", d.Description)
		fmt.Fprintf(cmd.OutOrStdout(), "parameters:\n")
		for _, p := range d.Parameters {
			fmt.Fprintf(cmd.OutOrStdout(), "  - %-16s %-10s %s\n", p.Name, p.Value, p.Unit)
		}
		return nil
	},
}

func init() {
	skillCmd.AddCommand(skillListCmd)
	skillCmd.AddCommand(skillDescribeCmd)
}

func discoverSkills() (map[string]skilldata.SkillDataDefault, []string, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	loader := skill.NewLoader(skill.WithSkillDirs(cfg.Skill.DefinitionDirs...), skill.WithSkipInvalid(false))
	defs, errs := loader.Discover()
	if len(errs) > 0 {
		return nil, nil, fmt.Errorf("loading skill definitions: %v", errs[0])
	}

	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return defs, names, nil
}

func loadConfig() (*config.Config, error) {
	loader := config.NewLoader()
	if configPath != "" {
		loader = loader.WithConfigPath(configPath)
	}
	return loader.Load()
}
