// Copyright © 2025 Gust contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tui/menu.go
// Summary: Action menu panel with wrap-around selection.

package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/gust/game"
	"github.com/framegrace/gust/render"
)

// MenuPanel lists the player actions. The selected one is underlined.
type MenuPanel struct {
	options  []game.Action
	selected int
}

// NewMenuPanel creates a menu over options with the first one selected.
func NewMenuPanel(options []game.Action) *MenuPanel {
	out := make([]game.Action, len(options))
	copy(out, options)
	return &MenuPanel{options: out}
}

// Selected returns the highlighted action.
func (m *MenuPanel) Selected() game.Action {
	return m.options[m.selected]
}

// SelectedIndex returns the index of the highlighted action.
func (m *MenuPanel) SelectedIndex() int { return m.selected }

// Up moves the selection up, wrapping to the last option.
func (m *MenuPanel) Up() {
	if len(m.options) == 0 {
		return
	}
	if m.selected == 0 {
		m.selected = len(m.options) - 1
		return
	}
	m.selected--
}

// Down moves the selection down, wrapping to the first option.
func (m *MenuPanel) Down() {
	if len(m.options) == 0 {
		return
	}
	if m.selected == len(m.options)-1 {
		m.selected = 0
		return
	}
	m.selected++
}

// HandleKey reacts to Up, Down and Enter. It reports whether the key was used.
func (m *MenuPanel) HandleKey(ev *tcell.EventKey, g *game.Game) (bool, error) {
	switch ev.Key() {
	case tcell.KeyUp:
		m.Up()
	case tcell.KeyDown:
		m.Down()
	case tcell.KeyEnter:
		if len(m.options) == 0 {
			return true, nil
		}
		return true, g.Perform(m.Selected())
	default:
		return false, nil
	}
	return true, nil
}

// Draw spreads the options evenly over the inner height. Nothing but the
// border is drawn when they do not fit.
func (m *MenuPanel) Draw(ctx *RenderContext, rect render.PanelDims, g *game.Game) error {
	DrawPanel(ctx, rect)
	count := len(m.options)
	if rect.H < 2 || count == 0 {
		return nil
	}
	space := rect.H - 2
	if space < count {
		return nil
	}

	step := space / count
	used := count + (count-1)*(step-1)
	y := rect.Y + 1 + (space-used)/2

	plain := ctx.Style()
	underlined := plain.Underline(true)
	for i, opt := range m.options {
		style := plain
		if i == m.selected {
			style = underlined
		}
		ctx.PrintClipped(rect.X+2, y, rect.W-4, opt.String(), style)
		y += step
	}
	return nil
}
