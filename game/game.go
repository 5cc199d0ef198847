// Copyright © 2025 Gust contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: game/game.go
// Summary: Top-level game state and the actions the menu can perform.
// Usage: Owned by the tui shell; panels read it while drawing.

package game

import (
	"errors"
	"fmt"

	"github.com/framegrace/gust/globe"
)

// ErrUnknownAction is returned by Perform and ParseAction for unknown actions.
var ErrUnknownAction = errors.New("unknown action")

const maxMessages = 100

// Action is something the player can choose from the menu.
type Action int

const (
	ActionMove Action = iota
	ActionListen
	ActionRest
)

// Actions lists the menu actions in display order.
var Actions = []Action{ActionMove, ActionListen, ActionRest}

func (a Action) String() string {
	switch a {
	case ActionMove:
		return "Move"
	case ActionListen:
		return "Listen"
	case ActionRest:
		return "Rest"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// ParseAction maps a menu label back to its action.
func ParseAction(name string) (Action, error) {
	for _, a := range Actions {
		if a.String() == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}

// Game is the whole simulated world.
type Game struct {
	TimeInSeconds uint64
	Player        *Player
	Globe         *globe.Globe
	Messages      []string
}

// New creates a game at time zero around the given globe.
func New(g *globe.Globe) *Game {
	return &Game{
		Player: NewPlayer("Wanderer", NewPosition(0, 0)),
		Globe:  g,
	}
}

// AdvanceState moves the clock forward.
func (g *Game) AdvanceState(seconds uint64) {
	g.TimeInSeconds += seconds
}

// Perform runs a menu action against the game.
func (g *Game) Perform(a Action) error {
	p := g.Player
	switch a {
	case ActionRest:
		g.AdvanceState(3600)
		p.Fatigue = max(0, p.Fatigue-0.25)
		g.Log("You rest for an hour.")
	case ActionListen:
		g.AdvanceState(600)
		p.Skills.WindListening.GainXP(1)
		p.Fatigue = min(1, p.Fatigue+0.05)
		g.Log(fmt.Sprintf("You listen to the wind (skill %.2f).", p.Skills.WindListening.Get()))
	case ActionMove:
		dest := NewPosition(p.Position.Lat, p.Position.Lon+0.1)
		p.Task = TravelingTo(dest)
		g.Log(fmt.Sprintf("You set out toward %s.", dest))
	default:
		return fmt.Errorf("%w: %v", ErrUnknownAction, a)
	}
	return nil
}

// Log appends a message, dropping the oldest beyond the history limit.
func (g *Game) Log(msg string) {
	g.Messages = append(g.Messages, msg)
	if over := len(g.Messages) - maxMessages; over > 0 {
		g.Messages = append(g.Messages[:0], g.Messages[over:]...)
	}
}

// LastMessage returns the most recent message or "".
func (g *Game) LastMessage() string {
	if len(g.Messages) == 0 {
		return ""
	}
	return g.Messages[len(g.Messages)-1]
}

// Clock formats the game time as days and hh:mm.
func (g *Game) Clock() string {
	t := g.TimeInSeconds
	return fmt.Sprintf("Day %d, %02d:%02d", t/86400+1, t%86400/3600, t%3600/60)
}
