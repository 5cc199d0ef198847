// Copyright © 2025 Gust contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Clockwise on screen: right along the top, then down-left.
var (
	triA = ScreenVertex{X: 0, Y: 0}
	triB = ScreenVertex{X: 10, Y: 0}
	triC = ScreenVertex{X: 0, Y: 10}
)

func TestInside(t *testing.T) {
	tests := []struct {
		name   string
		px, py float32
		want   bool
	}{
		{"interior", 2, 2, true},
		{"near hypotenuse", 4.9, 4.9, true},
		{"past hypotenuse", 8, 8, false},
		{"left of AC", -1, 5, false},
		{"above AB", 5, -1, false},
		{"on AB", 5, 0, true},
		{"on BC", 5, 5, true},
		{"on CA", 0, 5, true},
		{"vertex", 0, 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Inside(tc.px, tc.py, triA, triB, triC))
		})
	}
}

func TestInsideZeroEdgeShortCircuits(t *testing.T) {
	// On the line through A and B but beyond B, so outside the half-plane of
	// B->C. A zero signed area on one edge still counts as inside.
	assert.Zero(t, EdgeFunction(20, 0, triA, triB))
	assert.Positive(t, EdgeFunction(20, 0, triB, triC))
	assert.True(t, Inside(20, 0, triA, triB, triC))
}

func TestInsideRejectsCounterClockwise(t *testing.T) {
	assert.False(t, Inside(2, 2, triA, triC, triB))
}

func TestEdgeFunctionSign(t *testing.T) {
	assert.Negative(t, EdgeFunction(2, 2, triA, triB))
	assert.Positive(t, EdgeFunction(2, -2, triA, triB))
}

func TestBoundingBox(t *testing.T) {
	sv := [3]ScreenVertex{{X: -3.5, Y: 1.2}, {X: 5.2, Y: 3.9}, {X: 1, Y: 2}}
	minX, minY, maxX, maxY := boundingBox(sv, PanelDims{W: 10, H: 10})
	assert.Equal(t, []int{0, 1, 6, 4}, []int{minX, minY, maxX, maxY})
}

func TestBoundingBoxClampsToPanel(t *testing.T) {
	sv := [3]ScreenVertex{{X: -100, Y: -100}, {X: 300, Y: 2}, {X: 3, Y: 400}}
	dims := PanelDims{X: 5, Y: 6, W: 10, H: 4}
	minX, minY, maxX, maxY := boundingBox(sv, dims)
	assert.Equal(t, []int{5, 6, 15, 10}, []int{minX, minY, maxX, maxY})
}

func TestBoundingBoxOffPanelIsEmpty(t *testing.T) {
	sv := [3]ScreenVertex{{X: 50, Y: 50}, {X: 60, Y: 50}, {X: 50, Y: 60}}
	minX, _, maxX, _ := boundingBox(sv, PanelDims{W: 10, H: 10})
	assert.LessOrEqual(t, maxX, minX)
}
