// Copyright © 2025 Gust contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: game/snapshot.go
// Summary: Conversion between live game state and save snapshots.

package game

import "github.com/framegrace/gust/store"

// Snapshot captures the game for the save store. The camera is owned by the
// UI and filled in by the caller.
func (g *Game) Snapshot() store.Snapshot {
	p := g.Player
	snap := store.Snapshot{
		TimeInSeconds: g.TimeInSeconds,
		PlayerName:    p.Name,
		Money:         p.Money,
		Health:        p.Health,
		Fatigue:       p.Fatigue,
		Lat:           p.Position.Lat,
		Lon:           p.Position.Lon,
		Skills:        make(map[string]store.SkillRecord),
	}
	for name, s := range p.Skills.Named() {
		snap.Skills[name] = store.SkillRecord{Talent: s.Talent(), XP: s.XP()}
	}
	return snap
}

// Restore overwrites the game clock and player from a snapshot. Unknown skill
// names are ignored and missing ones keep their current values.
func (g *Game) Restore(snap store.Snapshot) {
	g.TimeInSeconds = snap.TimeInSeconds
	p := g.Player
	p.Name = snap.PlayerName
	p.Money = snap.Money
	p.Health = snap.Health
	p.Fatigue = snap.Fatigue
	p.Position = NewPosition(snap.Lat, snap.Lon)
	p.Task = Idle()
	for name, s := range p.Skills.Named() {
		if rec, ok := snap.Skills[name]; ok {
			*s = NewSkill(rec.Talent, rec.XP)
		}
	}
}
