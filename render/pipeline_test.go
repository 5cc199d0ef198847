// Copyright © 2025 Gust contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func project(t *testing.T, cam *Camera, dims PanelDims, p mgl32.Vec3) ScreenVertex {
	t.Helper()
	sv, ok := CameraToScreen(cam.Projection(), WorldToCamera(cam.View(), p), dims)
	require.True(t, ok, "projecting %v", p)
	return sv
}

func TestOriginProjectsToPanelCenter(t *testing.T) {
	dims := PanelDims{X: 10, Y: 5, W: 40, H: 20}
	cam := NewCamera(mgl32.Vec3{0, 0, -2}, DefaultCameraOptions())
	cam.Update(dims)

	sv := project(t, cam, dims, mgl32.Vec3{})
	assert.InDelta(t, 30, sv.X, 1e-4)
	assert.InDelta(t, 15, sv.Y, 1e-4)
}

func TestScreenYGrowsDownward(t *testing.T) {
	dims := PanelDims{W: 40, H: 20}
	cam := NewCamera(mgl32.Vec3{0, 0, -2}, DefaultCameraOptions())
	cam.Update(dims)

	center := project(t, cam, dims, mgl32.Vec3{})
	top := project(t, cam, dims, mgl32.Vec3{0, 0.5, 0})
	assert.Less(t, top.Y, center.Y)
	assert.InDelta(t, center.X, top.X, 1e-4)
}

func TestScreenXFollowsCameraRight(t *testing.T) {
	dims := PanelDims{W: 40, H: 20}
	cam := NewCamera(mgl32.Vec3{0, 0, -2}, DefaultCameraOptions())
	cam.Update(dims)

	// Looking down +Z with +Y up puts world -X on the right.
	right := project(t, cam, dims, mgl32.Vec3{-0.5, 0, 0})
	assert.Greater(t, right.X, float32(20))
}

func TestNearerPointsHaveSmallerDepth(t *testing.T) {
	dims := PanelDims{W: 40, H: 20}
	cam := NewCamera(mgl32.Vec3{0, 0, -2}, DefaultCameraOptions())
	cam.Update(dims)

	near := project(t, cam, dims, mgl32.Vec3{0, 0, -1})
	mid := project(t, cam, dims, mgl32.Vec3{0, 0, 0})
	far := project(t, cam, dims, mgl32.Vec3{0, 0, 1})
	assert.Less(t, near.Depth, mid.Depth)
	assert.Less(t, mid.Depth, far.Depth)
}

func TestPointsOutsidePanelAreNotClipped(t *testing.T) {
	dims := PanelDims{W: 10, H: 10}
	cam := NewCamera(mgl32.Vec3{0, 0, -2}, DefaultCameraOptions())
	cam.Update(dims)

	sv := project(t, cam, dims, mgl32.Vec3{0, 5, 0})
	assert.Less(t, sv.Y, float32(0))
}

func TestBehindCameraIsRejected(t *testing.T) {
	dims := PanelDims{W: 40, H: 20}
	cam := NewCamera(mgl32.Vec3{0, 0, -2}, DefaultCameraOptions())
	cam.Update(dims)

	_, ok := CameraToScreen(cam.Projection(), WorldToCamera(cam.View(), mgl32.Vec3{0, 0, -3}), dims)
	assert.False(t, ok)
}
