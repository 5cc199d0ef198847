// Copyright © 2025 Gust contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/types.go
// Summary: Shared types for the globe rasterizer: targets, sinks and meshes.
// Usage: Consumed by the tui globe panel and produced by the globe package.

package render

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrMalformedMesh is returned by ValidateMesh for meshes the rasterizer cannot draw.
var ErrMalformedMesh = errors.New("malformed mesh")

// PanelDims is the cell rectangle a draw call may paint into.
type PanelDims struct {
	X, Y int
	W, H int
}

// Degenerate reports whether the rectangle is too small to render into.
func (d PanelDims) Degenerate() bool {
	return d.W < 2 || d.H < 2
}

// Contains reports whether the cell (x, y) lies inside the rectangle.
func (d PanelDims) Contains(x, y int) bool {
	return x >= d.X && x < d.X+d.W && y >= d.Y && y < d.Y+d.H
}

// Inset shrinks the rectangle by n cells on every side.
func (d PanelDims) Inset(n int) PanelDims {
	out := PanelDims{X: d.X + n, Y: d.Y + n, W: d.W - 2*n, H: d.H - 2*n}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}

// Color is a 24-bit cell background color.
type Color struct {
	R, G, B uint8
}

// ScreenVertex is a vertex after the full world-to-screen transform.
// X and Y are cell coordinates and may lie outside the target panel.
type ScreenVertex struct {
	X, Y  float32
	Depth float32 // smaller is nearer
}

// Sink receives the rasterizer output.
type Sink interface {
	// Paint sets the background of cell (x, y) to c and writes a blank glyph.
	Paint(x, y int, c Color) error
	// Flush presents everything painted since the last flush.
	Flush() error
}

// Mesh supplies the geometry to rasterize. Triangles are consecutive index
// triples wound clockwise as seen from outside the mesh.
type Mesh interface {
	Vertices() []mgl32.Vec3
	Indices() []uint32
}

// ValidateMesh checks the index stream against the vertex count. Draw does not
// re-check indices, so meshes should be validated once when they are loaded.
func ValidateMesh(m Mesh) error {
	vertices := m.Vertices()
	indices := m.Indices()
	if len(indices)%3 != 0 {
		return fmt.Errorf("%w: %d indices is not a multiple of 3", ErrMalformedMesh, len(indices))
	}
	for i, idx := range indices {
		if int(idx) >= len(vertices) {
			return fmt.Errorf("%w: index %d at position %d out of range (%d vertices)",
				ErrMalformedMesh, idx, i, len(vertices))
		}
	}
	return nil
}
