// Copyright © 2025 Gust contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: globe/globe.go
// Summary: Geodesic icosphere mesh for the world globe.
// Usage: Built once at startup and handed to the globe panel's rasterizer.

package globe

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/framegrace/gust/render"
)

// MaxSubdivisions bounds the mesh size; 64 already yields over 80k triangles.
const MaxSubdivisions = 64

// ErrInvalidSubdivisions is returned by New for out-of-range subdivision counts.
var ErrInvalidSubdivisions = errors.New("invalid subdivision count")

// Cell is the per-vertex world data.
type Cell struct {
	Elevation float32
}

// Globe is a unit icosphere. Triangles are wound clockwise as seen from
// outside the sphere.
type Globe struct {
	subdivisions int
	vertices     []mgl32.Vec3
	indices      []uint32
	cells        []Cell
}

// New builds a globe whose icosahedron edges are each split into
// subdivisions+1 segments, giving 10(n+1)²+2 vertices and 20(n+1)² triangles.
func New(subdivisions int) (*Globe, error) {
	if subdivisions < 0 || subdivisions > MaxSubdivisions {
		return nil, fmt.Errorf("%w: %d (want 0..%d)", ErrInvalidSubdivisions, subdivisions, MaxSubdivisions)
	}

	b := newBuilder(subdivisions + 1)
	for _, f := range icosahedronFaces {
		b.face(f[0], f[1], f[2])
	}
	b.orient()

	g := &Globe{
		subdivisions: subdivisions,
		vertices:     b.vertices,
		indices:      b.indices,
		cells:        make([]Cell, len(b.vertices)),
	}
	if err := render.ValidateMesh(g); err != nil {
		return nil, fmt.Errorf("build globe: %w", err)
	}
	return g, nil
}

// Subdivisions returns the value the globe was built with.
func (g *Globe) Subdivisions() int { return g.subdivisions }

// Vertices returns the vertex positions. Callers must not modify them.
func (g *Globe) Vertices() []mgl32.Vec3 { return g.vertices }

// Indices returns the triangle index triples.
func (g *Globe) Indices() []uint32 { return g.indices }

// TriangleCount returns the number of triangles.
func (g *Globe) TriangleCount() int { return len(g.indices) / 3 }

// Cell returns the data attached to vertex i.
func (g *Globe) Cell(i int) Cell { return g.cells[i] }

// VertexColor maps a position to a color, one axis per channel. Negative
// components clamp to zero.
func VertexColor(p mgl32.Vec3) render.Color {
	c := colorful.Color{R: float64(p.X()), G: float64(p.Y()), B: float64(p.Z())}.Clamped()
	r, g, b := c.RGB255()
	return render.Color{R: r, G: g, B: b}
}

var icosahedronFaces = [20][3]uint32{
	{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
	{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
	{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
	{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
}

func icosahedronVertices() [12][3]float64 {
	t := (1 + math.Sqrt(5)) / 2
	return [12][3]float64{
		{-1, t, 0}, {1, t, 0}, {-1, -t, 0}, {1, -t, 0},
		{0, -1, t}, {0, 1, t}, {0, -1, -t}, {0, 1, -t},
		{t, 0, -1}, {t, 0, 1}, {-t, 0, -1}, {-t, 0, 1},
	}
}

// edgeKey names a point on an icosahedron edge: step steps from lo toward hi.
type edgeKey struct {
	lo, hi uint32
	step   int
}

type builder struct {
	freq     int
	corners  [12][3]float64
	vertices []mgl32.Vec3
	indices  []uint32
	edges    map[edgeKey]uint32
}

func newBuilder(freq int) *builder {
	b := &builder{
		freq:  freq,
		edges: make(map[edgeKey]uint32),
	}
	for i, c := range icosahedronVertices() {
		b.corners[i] = normalize(c)
		b.vertices = append(b.vertices, toVec3(b.corners[i]))
	}
	return b
}

// face splits one icosahedron face into freq² triangles.
func (b *builder) face(ia, ib, ic uint32) {
	f := b.freq
	grid := make([][]uint32, f+1)
	for i := 0; i <= f; i++ {
		grid[i] = make([]uint32, f+1-i)
		for j := 0; j <= f-i; j++ {
			grid[i][j] = b.point(ia, ib, ic, f-i-j, i, j)
		}
	}
	for i := 0; i < f; i++ {
		for j := 0; j < f-i; j++ {
			b.indices = append(b.indices, grid[i][j], grid[i+1][j], grid[i][j+1])
			if i+j < f-1 {
				b.indices = append(b.indices, grid[i+1][j], grid[i+1][j+1], grid[i][j+1])
			}
		}
	}
}

// point returns the vertex index for barycentric weights (wa, wb, wc) summing
// to freq. Corner and edge points are shared between faces.
func (b *builder) point(ia, ib, ic uint32, wa, wb, wc int) uint32 {
	switch {
	case wb == 0 && wc == 0:
		return ia
	case wa == 0 && wc == 0:
		return ib
	case wa == 0 && wb == 0:
		return ic
	case wc == 0:
		return b.edgePoint(ia, ib, wb)
	case wb == 0:
		return b.edgePoint(ia, ic, wc)
	case wa == 0:
		return b.edgePoint(ib, ic, wc)
	}

	var p [3]float64
	for k := 0; k < 3; k++ {
		p[k] = float64(wa)*b.corners[ia][k] + float64(wb)*b.corners[ib][k] + float64(wc)*b.corners[ic][k]
	}
	return b.add(normalize(p))
}

// edgePoint returns the point towardSteps steps from u toward v, computed
// from the lower-indexed corner so both neighbouring faces agree.
func (b *builder) edgePoint(u, v uint32, towardSteps int) uint32 {
	key := edgeKey{lo: u, hi: v, step: towardSteps}
	if u > v {
		key = edgeKey{lo: v, hi: u, step: b.freq - towardSteps}
	}
	if idx, ok := b.edges[key]; ok {
		return idx
	}

	t := float64(key.step) / float64(b.freq)
	lo, hi := b.corners[key.lo], b.corners[key.hi]
	var p [3]float64
	for k := 0; k < 3; k++ {
		p[k] = lo[k] + (hi[k]-lo[k])*t
	}
	idx := b.add(normalize(p))
	b.edges[key] = idx
	return idx
}

func (b *builder) add(p [3]float64) uint32 {
	b.vertices = append(b.vertices, toVec3(p))
	return uint32(len(b.vertices) - 1)
}

// orient rewinds every triangle clockwise as seen from outside, i.e. with
// its right-hand normal pointing toward the center.
func (b *builder) orient() {
	for i := 0; i+2 < len(b.indices); i += 3 {
		a, bb, c := b.vertices[b.indices[i]], b.vertices[b.indices[i+1]], b.vertices[b.indices[i+2]]
		n := bb.Sub(a).Cross(c.Sub(a))
		if n.Dot(a.Add(bb).Add(c)) > 0 {
			b.indices[i+1], b.indices[i+2] = b.indices[i+2], b.indices[i+1]
		}
	}
}

func normalize(p [3]float64) [3]float64 {
	l := math.Sqrt(p[0]*p[0] + p[1]*p[1] + p[2]*p[2])
	return [3]float64{p[0] / l, p[1] / l, p[2] / l}
}

func toVec3(p [3]float64) mgl32.Vec3 {
	return mgl32.Vec3{float32(p[0]), float32(p[1]), float32(p[2])}
}
