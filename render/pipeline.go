// Copyright © 2025 Gust contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/pipeline.go
// Summary: World to camera to screen coordinate transforms.

package render

import "github.com/go-gl/mathgl/mgl32"

// WorldToCamera applies the view matrix to a world-space position.
func WorldToCamera(view mgl32.Mat4, p mgl32.Vec3) mgl32.Vec4 {
	return view.Mul4x1(p.Vec4(1))
}

// CameraToScreen projects a camera-space position and maps normalized device
// coordinates onto the panel. NDC y grows upward while panel rows grow
// downward, so y is flipped. The NDC z component becomes the depth.
//
// ok is false when the point sits on or behind the camera plane and the
// perspective divide is undefined.
func CameraToScreen(proj mgl32.Mat4, p mgl32.Vec4, dims PanelDims) (sv ScreenVertex, ok bool) {
	clip := proj.Mul4x1(p)
	w := clip.W()
	if w <= 0 {
		return ScreenVertex{}, false
	}
	ndc := clip.Vec3().Mul(1 / w)

	sv.X = float32(dims.X) + (ndc.X()+1)*0.5*float32(dims.W)
	sv.Y = float32(dims.Y) + (1-ndc.Y())*0.5*float32(dims.H)
	sv.Depth = ndc.Z()
	return sv, true
}
