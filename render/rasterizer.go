// Copyright © 2025 Gust contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/rasterizer.go
// Summary: Flat-depth triangle rasterizer painting terminal cells.
// Usage: One Rasterizer per globe panel; Draw is called once per frame.

package render

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// FrameState is the rasterizer's position in the frame lifecycle.
type FrameState int

const (
	// FrameIdle means no Draw is in progress.
	FrameIdle FrameState = iota
	// FrameRendering means a Draw is painting cells.
	FrameRendering
)

// String returns the lower-case state name.
func (s FrameState) String() string {
	switch s {
	case FrameIdle:
		return "idle"
	case FrameRendering:
		return "rendering"
	}
	return fmt.Sprintf("FrameState(%d)", int(s))
}

// ColorFunc derives a paint color from a world-space vertex position.
type ColorFunc func(mgl32.Vec3) Color

// Rasterizer turns mesh triangles into cell paints. It owns its depth buffer
// and is not safe for concurrent use.
type Rasterizer struct {
	depth DepthBuffer
	color ColorFunc
	state FrameState
}

// NewRasterizer creates a rasterizer that colors triangles with color.
func NewRasterizer(color ColorFunc) *Rasterizer {
	return &Rasterizer{color: color}
}

// State reports whether a frame is in flight.
func (r *Rasterizer) State() FrameState {
	return r.state
}

// Draw renders one frame of mesh as seen by cam into dims and flushes sink.
// Panels narrower or shorter than two cells are skipped without error. The
// first sink error aborts the frame; cells painted before it stay painted.
func (r *Rasterizer) Draw(dims PanelDims, cam *Camera, mesh Mesh, sink Sink) error {
	if dims.Degenerate() {
		return nil
	}

	r.state = FrameRendering
	defer func() { r.state = FrameIdle }()

	cam.Update(dims)
	r.depth.Resize(dims.W, dims.H)
	r.depth.Clear()

	view := cam.View()
	proj := cam.Projection()
	vertices := mesh.Vertices()
	indices := mesh.Indices()

	for i := 0; i+2 < len(indices); i += 3 {
		var sv [3]ScreenVertex
		visible := true
		for k := 0; k < 3; k++ {
			p := vertices[indices[i+k]]
			var ok bool
			sv[k], ok = CameraToScreen(proj, WorldToCamera(view, p), dims)
			if !ok {
				visible = false
				break
			}
		}
		if !visible {
			continue
		}
		if err := r.fillTriangle(sv, r.color(vertices[indices[i]]), dims, sink); err != nil {
			return fmt.Errorf("paint triangle %d: %w", i/3, err)
		}
	}

	if err := sink.Flush(); err != nil {
		return fmt.Errorf("flush frame: %w", err)
	}
	return nil
}

// fillTriangle paints every cell inside sv that passes the depth test. The
// triangle depth is the mean of its vertex depths.
func (r *Rasterizer) fillTriangle(sv [3]ScreenVertex, c Color, dims PanelDims, sink Sink) error {
	depth := (sv[0].Depth + sv[1].Depth + sv[2].Depth) / 3

	minX, minY, maxX, maxY := boundingBox(sv, dims)
	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			if !Inside(float32(x)+0.5, float32(y)+0.5, sv[0], sv[1], sv[2]) {
				continue
			}
			if !r.depth.TestAndSet(x-dims.X, y-dims.Y, depth) {
				continue
			}
			if err := sink.Paint(x, y, c); err != nil {
				return err
			}
		}
	}
	return nil
}
