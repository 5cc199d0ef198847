// Copyright © 2025 Gust contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package game

// Person is anyone living on the globe.
type Person struct {
	Name     string
	Position Position
	Money    int64
	Health   float32
	Fatigue  float32
	Skills   Skillset
	Task     Task
}

// Player is the person controlled from the terminal.
type Player struct {
	Person
}

// NewPlayer creates a rested, healthy player at pos.
func NewPlayer(name string, pos Position) *Player {
	return &Player{Person: Person{
		Name:     name,
		Position: pos,
		Money:    100,
		Health:   1,
		Fatigue:  0,
		Skills:   DefaultSkillset(),
		Task:     Idle(),
	}}
}
