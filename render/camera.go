// Copyright © 2025 Gust contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/camera.go
// Summary: Orbit camera around the world origin with per-frame view and projection.

package render

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidCameraOptions is returned by CameraOptions.Validate.
var ErrInvalidCameraOptions = errors.New("invalid camera options")

// MinCameraDistance is the closest the camera may sit to the origin. Closer
// positions are replaced by the default position at construction time.
const MinCameraDistance = 1e-3

// CellAspect is how much taller a terminal cell is than it is wide.
const CellAspect = 2.0

var (
	worldUp  = mgl32.Vec3{0, 1, 0}
	altUp    = mgl32.Vec3{0, 0, 1}
	worldOrg = mgl32.Vec3{0, 0, 0}
)

// CameraOptions holds the fixed projection parameters.
type CameraOptions struct {
	FOV         float32 // vertical field of view, degrees
	Distance    float32 // reference camera-to-origin distance, used as the near plane
	Far         float32
	StepDegrees float32 // rotation per unit of direction
}

// DefaultCameraOptions returns the parameters used when no config is present.
func DefaultCameraOptions() CameraOptions {
	return CameraOptions{
		FOV:         75,
		Distance:    2,
		Far:         10,
		StepDegrees: 5,
	}
}

// Camera orbits the origin. The view and projection matrices are derived from
// the position on every Update and never mutated on their own.
type Camera struct {
	opts       CameraOptions
	position   mgl32.Vec3
	view       mgl32.Mat4
	projection mgl32.Mat4
}

// Validate checks that the options describe a usable perspective: FOV in
// (0, 180), Distance of at least MinCameraDistance and Far beyond Distance.
func (o CameraOptions) Validate() error {
	if !(o.FOV > 0 && o.FOV < 180) {
		return fmt.Errorf("%w: fov %v outside (0, 180)", ErrInvalidCameraOptions, o.FOV)
	}
	if !(o.Distance >= MinCameraDistance) {
		return fmt.Errorf("%w: distance %v below %v", ErrInvalidCameraOptions, o.Distance, MinCameraDistance)
	}
	if !(o.Far > o.Distance) {
		return fmt.Errorf("%w: far plane %v not beyond distance %v", ErrInvalidCameraOptions, o.Far, o.Distance)
	}
	return nil
}

// NewCamera places a camera at position. A position within MinCameraDistance
// of the origin has no defined view direction and is replaced by
// (0, 0, -opts.Distance). A Distance below MinCameraDistance is replaced by
// the default one first, so the replacement never lands on the origin.
func NewCamera(position mgl32.Vec3, opts CameraOptions) *Camera {
	if !(opts.Distance >= MinCameraDistance) {
		opts.Distance = DefaultCameraOptions().Distance
	}
	if position.Len() < MinCameraDistance {
		position = mgl32.Vec3{0, 0, -opts.Distance}
	}
	c := &Camera{
		opts:       opts,
		position:   position,
		view:       mgl32.Ident4(),
		projection: mgl32.Ident4(),
	}
	return c
}

// Position returns the camera position in world space.
func (c *Camera) Position() mgl32.Vec3 { return c.position }

// View returns the view matrix computed by the last Update.
func (c *Camera) View() mgl32.Mat4 { return c.view }

// Projection returns the projection matrix computed by the last Update.
func (c *Camera) Projection() mgl32.Mat4 { return c.projection }

// Options returns the camera's fixed parameters.
func (c *Camera) Options() CameraOptions { return c.opts }

// Rotate turns the camera about the world vertical axis by the configured
// step scaled by direction. The distance to the origin is preserved.
func (c *Camera) Rotate(direction float32) {
	if direction == 0 {
		return
	}
	angle := mgl32.DegToRad(c.opts.StepDegrees * direction)
	c.position = mgl32.Rotate3DY(angle).Mul3x1(c.position)
}

// Update recomputes the view and projection matrices for a target panel.
func (c *Camera) Update(dims PanelDims) {
	up := worldUp
	if dir := c.position.Normalize(); mgl32.Abs(dir.Dot(worldUp)) > 0.999 {
		up = altUp
	}
	c.view = mgl32.LookAtV(c.position, worldOrg, up)

	aspect := float32(1)
	if dims.H > 0 {
		aspect = float32(dims.W) / float32(dims.H) / CellAspect
	}
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.opts.FOV), aspect, c.opts.Distance, c.opts.Far)
}
