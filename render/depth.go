// Copyright © 2025 Gust contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/depth.go
// Summary: Reusable per-cell depth buffer.

package render

import "math"

// DepthBuffer stores the nearest depth seen per cell, row-major.
type DepthBuffer struct {
	width, height int
	data          []float32
}

// Resize sets the buffer extent. Existing storage is reused when it is large
// enough; contents are undefined until the next Clear.
func (d *DepthBuffer) Resize(width, height int) {
	n := width * height
	if n < 0 {
		n = 0
	}
	if cap(d.data) >= n {
		d.data = d.data[:n]
	} else {
		d.data = make([]float32, n)
	}
	d.width, d.height = width, height
}

// Size returns the current extent.
func (d *DepthBuffer) Size() (int, int) {
	return d.width, d.height
}

// Clear resets every cell to +Inf.
func (d *DepthBuffer) Clear() {
	n := len(d.data)
	if n == 0 {
		return
	}
	d.data[0] = float32(math.Inf(1))
	for i := 1; i < n; i *= 2 {
		copy(d.data[i:], d.data[:i])
	}
}

// At returns the depth stored at (x, y), relative to the buffer origin.
func (d *DepthBuffer) At(x, y int) float32 {
	return d.data[y*d.width+x]
}

// TestAndSet stores depth at (x, y) if it is strictly nearer than the current
// value and reports whether it did.
func (d *DepthBuffer) TestAndSet(x, y int, depth float32) bool {
	i := y*d.width + x
	if depth < d.data[i] {
		d.data[i] = depth
		return true
	}
	return false
}
