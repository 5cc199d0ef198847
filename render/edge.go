// Copyright © 2025 Gust contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/edge.go
// Summary: Edge functions, point membership and triangle bounding boxes.

package render

// EdgeFunction returns the signed area spanned by (p - a) and (b - a).
func EdgeFunction(px, py float32, a, b ScreenVertex) float32 {
	return (px-a.X)*(b.Y-a.Y) - (py-a.Y)*(b.X-a.X)
}

// Inside reports whether (px, py) belongs to the clockwise triangle a, b, c.
//
// A point whose signed area is exactly zero for any edge counts as inside,
// even when it lies outside one of the other two half-planes. Otherwise all
// three signed areas must be strictly negative.
func Inside(px, py float32, a, b, c ScreenVertex) bool {
	e0 := EdgeFunction(px, py, a, b)
	e1 := EdgeFunction(px, py, b, c)
	e2 := EdgeFunction(px, py, c, a)
	if e0 == 0 || e1 == 0 || e2 == 0 {
		return true
	}
	return e0 < 0 && e1 < 0 && e2 < 0
}

// boundingBox returns the half-open cell range [minX, maxX) x [minY, maxY)
// covering the triangle, clamped to dims. Vertex coordinates are truncated
// and the max side grows by one cell. An empty box has max <= min.
func boundingBox(sv [3]ScreenVertex, dims PanelDims) (minX, minY, maxX, maxY int) {
	loX, hiX := sv[0].X, sv[0].X
	loY, hiY := sv[0].Y, sv[0].Y
	for _, v := range sv[1:] {
		loX = min(loX, v.X)
		hiX = max(hiX, v.X)
		loY = min(loY, v.Y)
		hiY = max(hiY, v.Y)
	}

	minX = max(truncate(loX), dims.X)
	minY = max(truncate(loY), dims.Y)
	maxX = min(truncate(hiX)+1, dims.X+dims.W)
	maxY = min(truncate(hiY)+1, dims.Y+dims.H)
	return minX, minY, maxX, maxY
}

// truncate converts to int, saturating far off-screen coordinates.
func truncate(v float32) int {
	const limit = 1 << 30
	switch {
	case v != v:
		return 0
	case v > limit:
		return limit
	case v < -limit:
		return -limit
	}
	return int(v)
}
