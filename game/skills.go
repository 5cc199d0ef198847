// Copyright © 2025 Gust contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: game/skills.go
// Summary: Experience-driven skill curve.

package game

import "math"

const (
	MinSkill = 0.25
	MaxSkill = 10.0
)

// Skill grows quickly with early experience and tapers off toward MaxSkill.
// Talent scales how fast the curve approaches the maximum.
type Skill struct {
	talent float32
	xp     float32
	skill  float32
}

// NewSkill creates a skill with the given talent and starting experience.
func NewSkill(talent, initialXP float32) Skill {
	return Skill{
		talent: talent,
		xp:     initialXP,
		skill:  skillFor(talent, initialXP),
	}
}

// GainXP adds experience. The skill value is only recomputed for non-zero gains.
func (s *Skill) GainXP(gained float32) {
	s.xp += gained
	if gained != 0 {
		s.skill = skillFor(s.talent, s.xp)
	}
}

// Get returns the current skill level.
func (s Skill) Get() float32 { return s.skill }

// Talent returns the skill's talent factor.
func (s Skill) Talent() float32 { return s.talent }

// XP returns the accumulated experience.
func (s Skill) XP() float32 { return s.xp }

// skillFor is bounded to [MinSkill, MaxSkill). A zero talent or zero
// experience pins the skill at MinSkill.
func skillFor(talent, totalXP float32) float32 {
	return MinSkill + (MaxSkill-MinSkill)*float32(math.Exp(-1/float64(talent*totalXP)))
}

// Skillset groups the skills every person has.
type Skillset struct {
	Traveling     Skill
	WindListening Skill
	Trading       Skill
}

// DefaultSkillset gives average talent and no experience.
func DefaultSkillset() Skillset {
	return Skillset{
		Traveling:     NewSkill(1, 0),
		WindListening: NewSkill(1, 0),
		Trading:       NewSkill(1, 0),
	}
}

// Named returns the skills keyed by their persistent names.
func (s *Skillset) Named() map[string]*Skill {
	return map[string]*Skill{
		"traveling":      &s.Traveling,
		"wind_listening": &s.WindListening,
		"trading":        &s.Trading,
	}
}
