// Copyright © 2025 Gust contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tui/globe_panel.go
// Summary: Panel that rasterizes the globe mesh inside its border.

package tui

import (
	"github.com/framegrace/gust/game"
	"github.com/framegrace/gust/globe"
	"github.com/framegrace/gust/render"
)

// GlobePanel owns the camera, rasterizer and mesh for the world view.
type GlobePanel struct {
	camera *render.Camera
	raster *render.Rasterizer
	mesh   render.Mesh
}

// NewGlobePanel validates mesh and prepares a rasterizer coloring it with
// globe.VertexColor.
func NewGlobePanel(mesh render.Mesh, camera *render.Camera) (*GlobePanel, error) {
	if err := render.ValidateMesh(mesh); err != nil {
		return nil, err
	}
	return &GlobePanel{
		camera: camera,
		raster: render.NewRasterizer(globe.VertexColor),
		mesh:   mesh,
	}, nil
}

// Camera returns the panel camera.
func (p *GlobePanel) Camera() *render.Camera { return p.camera }

// Rotate orbits the camera by one step per unit of direction.
func (p *GlobePanel) Rotate(direction float32) {
	p.camera.Rotate(direction)
}

// Draw draws the border and renders the globe into the inner rectangle.
func (p *GlobePanel) Draw(ctx *RenderContext, rect render.PanelDims, g *game.Game) error {
	DrawPanel(ctx, rect)
	return p.raster.Draw(rect.Inset(1), p.camera, p.mesh, ctx)
}
