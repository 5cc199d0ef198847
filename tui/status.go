// Copyright © 2025 Gust contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tui/status.go
// Summary: Player status panel.

package tui

import (
	"fmt"

	"github.com/framegrace/gust/game"
	"github.com/framegrace/gust/render"
)

// StatusPanel shows the player and the game clock.
type StatusPanel struct{}

// NewStatusPanel creates a status panel.
func NewStatusPanel() *StatusPanel { return &StatusPanel{} }

// Lines returns the text rows in display order.
func (p *StatusPanel) Lines(g *game.Game) []string {
	pl := g.Player
	lines := []string{
		pl.Name,
		pl.Position.String(),
		pl.Task.String(),
		fmt.Sprintf("Money: %d", pl.Money),
		g.Clock(),
	}
	if msg := g.LastMessage(); msg != "" {
		lines = append(lines, msg)
	}
	return lines
}

// Draw prints one line every other row, starting two rows below the top
// border. Rows that would reach the bottom border are dropped.
func (p *StatusPanel) Draw(ctx *RenderContext, rect render.PanelDims, g *game.Game) error {
	DrawPanel(ctx, rect)
	if rect.Degenerate() {
		return nil
	}
	style := ctx.Style()
	y := rect.Y + 2
	for _, line := range p.Lines(g) {
		if y >= rect.Y+rect.H-1 {
			break
		}
		ctx.PrintClipped(rect.X+2, y, rect.W-4, line, style)
		y += 2
	}
	return nil
}
