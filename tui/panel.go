// Copyright © 2025 Gust contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tui/panel.go
// Summary: Panel border drawing, the drawable container and the screen layout.

package tui

import (
	"fmt"

	"github.com/framegrace/gust/game"
	"github.com/framegrace/gust/render"
)

const borderRune = '█'

// Drawable is a panel that renders itself into a rectangle.
type Drawable interface {
	Draw(ctx *RenderContext, rect render.PanelDims, g *game.Game) error
}

type slot struct {
	rect     render.PanelDims
	drawable Drawable
}

// Container draws its panels in the order they were added.
type Container struct {
	slots []slot
}

// Add appends d and returns its slot index.
func (c *Container) Add(d Drawable) int {
	c.slots = append(c.slots, slot{drawable: d})
	return len(c.slots) - 1
}

// SetRect moves slot i to rect.
func (c *Container) SetRect(i int, rect render.PanelDims) {
	c.slots[i].rect = rect
}

// Rect returns the rectangle of slot i.
func (c *Container) Rect(i int) render.PanelDims {
	return c.slots[i].rect
}

// Len returns the number of slots.
func (c *Container) Len() int { return len(c.slots) }

// Draw renders every panel and stops at the first error.
func (c *Container) Draw(ctx *RenderContext, g *game.Game) error {
	for i, s := range c.slots {
		if err := s.drawable.Draw(ctx, s.rect, g); err != nil {
			return fmt.Errorf("panel %d: %w", i, err)
		}
	}
	return nil
}

// DrawPanel draws a solid border around rect and fills the inside with the
// background. Rectangles narrower or shorter than two cells are left alone.
func DrawPanel(ctx *RenderContext, rect render.PanelDims) {
	if rect.Degenerate() {
		return
	}
	style := ctx.Style()
	screen := ctx.Screen()
	bottom := rect.Y + rect.H - 1
	right := rect.X + rect.W - 1
	for y := rect.Y; y <= bottom; y++ {
		for x := rect.X; x <= right; x++ {
			ch := ' '
			if y == rect.Y || y == bottom || x == rect.X || x == right {
				ch = borderRune
			}
			screen.SetContent(x, y, ch, nil, style)
		}
	}
}

// Fractions are the proportions the screen is split by.
type Fractions struct {
	GlobeWidth   float64
	StatusHeight float64
	StatusWidth  float64
}

// DefaultFractions returns the stock split.
func DefaultFractions() Fractions {
	return Fractions{GlobeWidth: 0.64, StatusHeight: 0.5, StatusWidth: 0.82}
}

// Fraction returns f of n cells, rounded down.
func Fraction(n int, f float64) int {
	if n <= 0 || f <= 0 {
		return 0
	}
	return int(float64(n) * f)
}

// Layout is the rectangle assignment for one screen size.
type Layout struct {
	Main   render.PanelDims
	Globe  render.PanelDims
	Status render.PanelDims
	Menu   render.PanelDims
}

// ComputeLayout splits a w by h screen. The globe takes the left column at
// full height. The status panel sits top right and the menu bottom right.
// Neighbouring panels share one border column or row.
func ComputeLayout(w, h int, f Fractions) Layout {
	globeW := Fraction(w, f.GlobeWidth)
	statusX := Fraction(w, f.StatusWidth)
	statusH := Fraction(h, f.StatusHeight)
	return Layout{
		Main:  render.PanelDims{X: 0, Y: 0, W: w, H: h},
		Globe: render.PanelDims{X: 0, Y: 0, W: globeW, H: h},
		Status: render.PanelDims{
			X: statusX - 1,
			Y: 0,
			W: w - statusX + 1,
			H: statusH + 1,
		},
		Menu: render.PanelDims{
			X: globeW - 1,
			Y: statusH,
			W: w - globeW + 1,
			H: h - statusH,
		},
	}
}
