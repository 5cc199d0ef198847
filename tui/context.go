// Copyright © 2025 Gust contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tui/context.go
// Summary: Render context carrying the screen and current colors between panels.

package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/gust/render"
)

// RenderContext is handed to every panel during a frame. It owns the
// foreground and background that text is printed with, so a panel painting
// colored cells never leaks its colors into the next one.
type RenderContext struct {
	screen tcell.Screen
	fg, bg tcell.Color
}

// NewRenderContext wraps screen using the theme's border and background colors.
func NewRenderContext(screen tcell.Screen, theme Theme) *RenderContext {
	ctx := &RenderContext{screen: screen}
	ctx.SetColors(theme.Border, theme.Background)
	return ctx
}

// Screen returns the wrapped screen.
func (c *RenderContext) Screen() tcell.Screen { return c.screen }

// Size returns the screen size in cells.
func (c *RenderContext) Size() (int, int) { return c.screen.Size() }

// SetColors changes the colors used by Print and DrawPanel.
func (c *RenderContext) SetColors(fg, bg colorful.Color) {
	c.fg = toTcell(fg)
	c.bg = toTcell(bg)
}

// Colors returns the current foreground and background.
func (c *RenderContext) Colors() (fg, bg tcell.Color) { return c.fg, c.bg }

// Style returns the plain text style for the current colors.
func (c *RenderContext) Style() tcell.Style {
	return tcell.StyleDefault.Foreground(c.fg).Background(c.bg)
}

// Print writes s at (x, y) in the current style and returns the number of
// cells it advanced.
func (c *RenderContext) Print(x, y int, s string) int {
	return c.PrintStyled(x, y, s, c.Style())
}

// PrintStyled writes s at (x, y) with an explicit style.
func (c *RenderContext) PrintStyled(x, y int, s string, style tcell.Style) int {
	start := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		c.screen.SetContent(x, y, r, nil, style)
		x += w
	}
	return x - start
}

// PrintClipped is Print limited to maxWidth cells. Longer text is cut with an
// ellipsis.
func (c *RenderContext) PrintClipped(x, y, maxWidth int, s string, style tcell.Style) int {
	if maxWidth <= 0 {
		return 0
	}
	if runewidth.StringWidth(s) > maxWidth {
		s = runewidth.Truncate(s, maxWidth, "…")
	}
	return c.PrintStyled(x, y, s, style)
}

// Paint sets the background of (x, y) to col and clears its glyph. It does not
// touch the context colors.
func (c *RenderContext) Paint(x, y int, col render.Color) error {
	bg := tcell.NewRGBColor(int32(col.R), int32(col.G), int32(col.B))
	c.screen.SetContent(x, y, ' ', nil, c.Style().Background(bg))
	return nil
}

// Flush presents the frame.
func (c *RenderContext) Flush() error {
	c.screen.Show()
	return nil
}

// Clear fills the whole screen with the current background.
func (c *RenderContext) Clear() {
	c.screen.SetStyle(c.Style())
	c.screen.Clear()
}

func toTcell(col colorful.Color) tcell.Color {
	r, g, b := col.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
