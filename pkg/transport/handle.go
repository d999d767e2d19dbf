// Copyright 2026 Cognitive Production. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package transport

import (
	"github.com/cognitive-production/skillbasedcontrol-server/pkg/runtime"
	"github.com/cognitive-production/skillbasedcontrol-server/pkg/skilldata"
)

// HandleSkill is the surface a transport's read/write hooks need beyond
// runtime.Skill: direct access to the bound data handle. *skill.BaseSkill
// (and anything embedding it) satisfies this via its SkillHandle method.
type HandleSkill interface {
	runtime.Skill
	SkillHandle() *skilldata.Handle
}
