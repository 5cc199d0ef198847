// Copyright © 2025 Gust contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: game/position.go
// Summary: Geographic positions and the tasks that refer to them.

package game

import (
	"errors"
	"fmt"
	"math"
)

// ErrMovementUnsupported is returned by Position.Move until travel kinematics exist.
var ErrMovementUnsupported = errors.New("movement is not supported yet")

// Meters is a distance along the globe surface.
type Meters = float64

// Position is a latitude/longitude pair in radians.
type Position struct {
	Lat, Lon float64
}

// NewPosition builds a position from latitude phi and longitude lambda, in radians.
func NewPosition(phi, lambda float64) Position {
	return Position{Lat: phi, Lon: lambda}
}

// Move travels distance toward destination.
func (p *Position) Move(distance Meters, destination Position) error {
	return ErrMovementUnsupported
}

func (p Position) String() string {
	return fmt.Sprintf("%.3f°, %.3f°", p.Lat*180/math.Pi, p.Lon*180/math.Pi)
}

// TaskKind enumerates what a person is busy with.
type TaskKind int

const (
	TaskIdle TaskKind = iota
	TaskTraveling
)

// Task is a person's current activity.
type Task struct {
	Kind        TaskKind
	Destination Position // only for TaskTraveling
}

// Idle returns the idle task.
func Idle() Task { return Task{Kind: TaskIdle} }

// TravelingTo returns a travel task toward dest.
func TravelingTo(dest Position) Task {
	return Task{Kind: TaskTraveling, Destination: dest}
}

func (t Task) String() string {
	switch t.Kind {
	case TaskTraveling:
		return "Traveling to " + t.Destination.String()
	default:
		return "Idle"
	}
}
