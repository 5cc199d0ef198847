// Copyright © 2025 Gust contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tui/shell.go
// Summary: Top-level terminal shell that owns the screen, panels and event loop.

package tui

import (
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/gust/game"
	"github.com/framegrace/gust/render"
)

// Shell lays out the panels, draws frames and dispatches input. The screen
// must already be initialised; the caller owns Fini.
type Shell struct {
	screen tcell.Screen
	ctx    *RenderContext
	game   *game.Game
	opts   Options

	container   *Container
	globePanel  *GlobePanel
	menuPanel   *MenuPanel
	statusPanel *StatusPanel
	globeSlot   int
	statusSlot  int
	menuSlot    int

	err error
}

// NewShell builds the shell around screen for g. camera is the globe camera,
// usually restored from a save.
func NewShell(screen tcell.Screen, g *game.Game, camera *render.Camera, opts Options) (*Shell, error) {
	if g.Globe == nil {
		return nil, fmt.Errorf("shell: game has no globe")
	}
	globePanel, err := NewGlobePanel(g.Globe, camera)
	if err != nil {
		return nil, fmt.Errorf("shell: %w", err)
	}
	s := &Shell{
		screen:      screen,
		ctx:         NewRenderContext(screen, opts.Theme),
		game:        g,
		opts:        opts,
		container:   &Container{},
		globePanel:  globePanel,
		menuPanel:   NewMenuPanel(game.Actions),
		statusPanel: NewStatusPanel(),
	}
	// The globe goes last: its rasterizer flush presents the finished frame.
	s.statusSlot = s.container.Add(s.statusPanel)
	s.menuSlot = s.container.Add(s.menuPanel)
	s.globeSlot = s.container.Add(s.globePanel)
	s.relayout()
	return s, nil
}

// Camera returns the globe camera.
func (s *Shell) Camera() *render.Camera { return s.globePanel.Camera() }

// Menu returns the action menu.
func (s *Shell) Menu() *MenuPanel { return s.menuPanel }

// Layout returns the rectangles of the current frame.
func (s *Shell) Layout() Layout {
	w, h := s.screen.Size()
	return ComputeLayout(w, h, s.opts.Fractions)
}

// Err returns the error that stopped the shell, if any.
func (s *Shell) Err() error { return s.err }

func (s *Shell) relayout() Layout {
	l := s.Layout()
	s.container.SetRect(s.globeSlot, l.Globe)
	s.container.SetRect(s.statusSlot, l.Status)
	s.container.SetRect(s.menuSlot, l.Menu)
	return l
}

// Draw renders a full frame and presents it once.
func (s *Shell) Draw() error {
	l := s.relayout()
	s.ctx.Clear()
	DrawPanel(s.ctx, l.Main)
	if err := s.container.Draw(s.ctx, s.game); err != nil {
		return err
	}
	if l.Globe.Inset(1).Degenerate() {
		// The rasterizer skipped the frame, flush included.
		return s.ctx.Flush()
	}
	return nil
}

// HandleEvent processes one event and redraws when it changed anything. It
// returns true when the shell should stop, either on a quit key or after a
// draw error, which is then available from Err.
func (s *Shell) HandleEvent(ev tcell.Event) bool {
	switch tev := ev.(type) {
	case *tcell.EventResize:
		s.screen.Sync()
	case *tcell.EventKey:
		if s.handleKey(tev) {
			return true
		}
	default:
		return false
	}
	if err := s.Draw(); err != nil {
		log.Printf("Shell: Draw failed: %v", err)
		s.err = err
		return true
	}
	return false
}

func (s *Shell) handleKey(ev *tcell.EventKey) (quit bool) {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}
	if ev.Key() == tcell.KeyRune {
		switch ev.Rune() {
		case s.opts.Keys.Quit:
			return true
		case s.opts.Keys.RotateLeft:
			s.globePanel.Rotate(-1)
			return false
		case s.opts.Keys.RotateRight:
			s.globePanel.Rotate(1)
			return false
		}
	}
	if _, err := s.menuPanel.HandleKey(ev, s.game); err != nil {
		log.Printf("Shell: Action failed: %v", err)
		s.game.Log(err.Error())
	}
	return false
}

// Run draws the first frame and then handles events one at a time until a
// quit key, a draw error or the screen shutting down.
func (s *Shell) Run() error {
	if err := s.Draw(); err != nil {
		s.err = err
		return err
	}
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return s.err
		}
		if s.HandleEvent(ev) {
			return s.err
		}
	}
}
