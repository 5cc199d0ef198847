// Copyright © 2025 Gust contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tui/shell_test.go
// Summary: Exercises the menu, status panel and shell event handling on a simulated screen.

package tui

import (
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/framegrace/gust/game"
	"github.com/framegrace/gust/globe"
	"github.com/framegrace/gust/render"
)

func newTestGame(t *testing.T) *game.Game {
	t.Helper()
	g, err := globe.New(2)
	if err != nil {
		t.Fatalf("globe.New: %v", err)
	}
	return game.New(g)
}

func newTestShell(t *testing.T, w, h int) (*Shell, tcell.SimulationScreen, *game.Game) {
	t.Helper()
	screen := newTestScreen(t, w, h)
	g := newTestGame(t)
	opts := DefaultOptions()
	cam := render.NewCamera(mgl32.Vec3{0, 0, -opts.Camera.Distance}, opts.Camera)
	shell, err := NewShell(screen, g, cam, opts)
	if err != nil {
		t.Fatalf("NewShell: %v", err)
	}
	return shell, screen, g
}

func keyRune(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func TestMenuWrapsAround(t *testing.T) {
	m := NewMenuPanel(game.Actions)
	if m.Selected() != game.ActionMove {
		t.Fatalf("expected Move selected first, got %v", m.Selected())
	}
	m.Up()
	if m.Selected() != game.ActionRest {
		t.Fatalf("expected Up to wrap to Rest, got %v", m.Selected())
	}
	m.Down()
	if m.Selected() != game.ActionMove {
		t.Fatalf("expected Down to wrap to Move, got %v", m.Selected())
	}
	m.Down()
	m.Down()
	if m.SelectedIndex() != 2 {
		t.Fatalf("expected index 2, got %d", m.SelectedIndex())
	}
}

func TestMenuDrawSpacesOptionsEvenly(t *testing.T) {
	screen := newTestScreen(t, 20, 8)
	ctx := NewRenderContext(screen, DefaultOptions().Theme)
	m := NewMenuPanel(game.Actions)
	m.Down()

	if err := m.Draw(ctx, render.PanelDims{X: 0, Y: 0, W: 20, H: 8}, nil); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	want := map[int]string{1: "█ Move", 3: "█ Listen", 5: "█ Rest"}
	for y, text := range want {
		if got := readScreenLine(screen, 0, y, 10); got != text {
			t.Fatalf("row %d: expected %q, got %q", y, text, got)
		}
	}
	_, _, style, _ := screen.GetContent(2, 3)
	if _, _, attrs := style.Decompose(); attrs&tcell.AttrUnderline == 0 {
		t.Fatalf("expected selected option underlined")
	}
	_, _, style, _ = screen.GetContent(2, 1)
	if _, _, attrs := style.Decompose(); attrs&tcell.AttrUnderline != 0 {
		t.Fatalf("expected unselected option plain")
	}
}

func TestMenuDrawSkipsOptionsWhenTooShort(t *testing.T) {
	screen := newTestScreen(t, 20, 8)
	ctx := NewRenderContext(screen, DefaultOptions().Theme)
	m := NewMenuPanel(game.Actions)

	if err := m.Draw(ctx, render.PanelDims{X: 0, Y: 0, W: 20, H: 4}, nil); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	for y := 1; y < 3; y++ {
		if got := readScreenLine(screen, 0, y, 20); got != "█                  █" {
			t.Fatalf("row %d: expected empty panel row, got %q", y, got)
		}
	}
}

func TestMenuEnterPerformsSelectedAction(t *testing.T) {
	g := newTestGame(t)
	m := NewMenuPanel(game.Actions)
	m.Up()

	handled, err := m.HandleKey(key(tcell.KeyEnter), g)
	if err != nil || !handled {
		t.Fatalf("expected Enter handled, got %v %v", handled, err)
	}
	if g.TimeInSeconds != 3600 {
		t.Fatalf("expected Rest to advance one hour, got %d", g.TimeInSeconds)
	}
	if handled, _ := m.HandleKey(keyRune('z'), g); handled {
		t.Fatalf("expected unrelated key to be ignored")
	}
}

func TestStatusPanelLines(t *testing.T) {
	g := newTestGame(t)
	p := NewStatusPanel()

	lines := p.Lines(g)
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines without messages, got %v", lines)
	}
	if lines[0] != "Wanderer" || lines[3] != "Money: 100" || lines[4] != "Day 1, 00:00" {
		t.Fatalf("unexpected status lines %v", lines)
	}
	g.Log("hello")
	if lines := p.Lines(g); len(lines) != 6 || lines[5] != "hello" {
		t.Fatalf("expected last message appended, got %v", lines)
	}
}

func TestShellDrawComposesPanels(t *testing.T) {
	shell, screen, _ := newTestShell(t, 100, 40)
	if err := shell.Draw(); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	l := shell.Layout()

	if ch, _, _, _ := screen.GetContent(0, 0); ch != borderRune {
		t.Fatalf("expected border at origin, got %q", ch)
	}
	if got := readScreenLine(screen, l.Status.X+2, 2, 10); got != "Wanderer" {
		t.Fatalf("expected player name in status panel, got %q", got)
	}
	if got := readScreenLine(screen, l.Status.X+2, 8, 12); got != "Money: 100" {
		t.Fatalf("expected money in status panel, got %q", got)
	}
	if got := readScreenLine(screen, l.Menu.X+2, 23, 10); got != "Move" {
		t.Fatalf("expected first menu option, got %q", got)
	}

	_, themeBg := shell.ctx.Colors()
	cx := l.Globe.X + l.Globe.W/2
	cy := l.Globe.Y + l.Globe.H/2
	if got := cellBackground(screen, cx, cy); got == themeBg {
		t.Fatalf("expected globe painted at panel center")
	}
	if got := cellBackground(screen, 2, 2); got != themeBg {
		t.Fatalf("expected background in globe panel corner")
	}
}

func TestShellRotateKeys(t *testing.T) {
	shell, _, _ := newTestShell(t, 60, 20)
	start := shell.Camera().Position()

	if quit := shell.HandleEvent(keyRune('6')); quit {
		t.Fatalf("rotate key should not quit")
	}
	moved := shell.Camera().Position()
	if moved.ApproxEqual(start) {
		t.Fatalf("expected camera to move")
	}
	shell.HandleEvent(keyRune('4'))
	if back := shell.Camera().Position(); !back.ApproxEqualThreshold(start, 1e-5) {
		t.Fatalf("expected opposite rotation to return, got %v want %v", back, start)
	}
}

func TestShellMenuKeys(t *testing.T) {
	shell, _, g := newTestShell(t, 60, 20)

	shell.HandleEvent(key(tcell.KeyUp))
	if shell.Menu().Selected() != game.ActionRest {
		t.Fatalf("expected Up to select Rest")
	}
	shell.HandleEvent(key(tcell.KeyEnter))
	if g.TimeInSeconds != 3600 {
		t.Fatalf("expected Rest performed, time %d", g.TimeInSeconds)
	}
}

func TestShellQuitKeys(t *testing.T) {
	shell, _, _ := newTestShell(t, 60, 20)
	if !shell.HandleEvent(keyRune('q')) {
		t.Fatalf("expected q to quit")
	}
	if !shell.HandleEvent(key(tcell.KeyCtrlC)) {
		t.Fatalf("expected Ctrl-C to quit")
	}
	if shell.Err() != nil {
		t.Fatalf("quit should not set an error: %v", shell.Err())
	}
}

func TestShellResizeRelayouts(t *testing.T) {
	shell, screen, _ := newTestShell(t, 100, 40)
	screen.SetSize(50, 20)
	if quit := shell.HandleEvent(tcell.NewEventResize(50, 20)); quit {
		t.Fatalf("resize should not quit")
	}
	if got := shell.Layout().Main; got.W != 50 || got.H != 20 {
		t.Fatalf("expected layout to follow screen, got %+v", got)
	}
}

func TestShellRunStopsOnQuit(t *testing.T) {
	shell, screen, _ := newTestShell(t, 60, 20)

	errCh := make(chan error, 1)
	go func() { errCh <- shell.Run() }()

	if err := screen.PostEvent(keyRune('6')); err != nil {
		t.Fatalf("PostEvent: %v", err)
	}
	if err := screen.PostEvent(keyRune('q')); err != nil {
		t.Fatalf("PostEvent: %v", err)
	}

	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not exit after quit key")
	}
}

type stubMesh struct{}

func (stubMesh) Vertices() []mgl32.Vec3 { return nil }
func (stubMesh) Indices() []uint32      { return []uint32{0, 1, 2} }

func TestNewGlobePanelRejectsMalformedMesh(t *testing.T) {
	cam := render.NewCamera(mgl32.Vec3{0, 0, -2}, render.DefaultCameraOptions())
	if _, err := NewGlobePanel(stubMesh{}, cam); !errors.Is(err, render.ErrMalformedMesh) {
		t.Fatalf("expected ErrMalformedMesh, got %v", err)
	}
}

// presentScreen records the status and menu rows at every Show.
type presentScreen struct {
	tcell.SimulationScreen
	layout Layout
	shown  [][2]string
}

func (p *presentScreen) Show() {
	p.shown = append(p.shown, [2]string{
		readScreenLine(p, p.layout.Status.X+2, p.layout.Status.Y+2, 10),
		readScreenLine(p, p.layout.Menu.X+2, 23, 10),
	})
	p.SimulationScreen.Show()
}

func newPresentShell(t *testing.T, w, h int) (*Shell, *presentScreen) {
	t.Helper()
	screen := &presentScreen{
		SimulationScreen: newTestScreen(t, w, h),
		layout:           ComputeLayout(w, h, DefaultFractions()),
	}
	opts := DefaultOptions()
	cam := render.NewCamera(mgl32.Vec3{0, 0, -opts.Camera.Distance}, opts.Camera)
	shell, err := NewShell(screen, newTestGame(t), cam, opts)
	if err != nil {
		t.Fatalf("NewShell: %v", err)
	}
	return shell, screen
}

func TestShellDrawPresentsCompleteFrameOnce(t *testing.T) {
	shell, screen := newPresentShell(t, 100, 40)
	if err := shell.Draw(); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if len(screen.shown) != 1 {
		t.Fatalf("expected one Show per frame, got %d", len(screen.shown))
	}
	if got := screen.shown[0]; got[0] != "Wanderer" || got[1] != "Move" {
		t.Fatalf("expected side panels in the presented frame, got status=%q menu=%q", got[0], got[1])
	}

	if quit := shell.HandleEvent(keyRune('6')); quit {
		t.Fatalf("rotate key should not quit")
	}
	if len(screen.shown) != 2 {
		t.Fatalf("expected one Show for the redraw, got %d total", len(screen.shown))
	}
}

func TestShellDrawFlushesWhenGlobeIsTooSmall(t *testing.T) {
	shell, screen := newPresentShell(t, 3, 10)
	if err := shell.Draw(); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if !shell.Layout().Globe.Inset(1).Degenerate() {
		t.Fatalf("expected a degenerate globe panel at 3x10")
	}
	if len(screen.shown) != 1 {
		t.Fatalf("expected the shell to present the frame itself, got %d shows", len(screen.shown))
	}
}
