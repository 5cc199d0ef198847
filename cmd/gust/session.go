// Copyright © 2025 Gust contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/gust/session.go
// Summary: Save slot wiring between the game, the globe camera and the store.

package main

import (
	"context"
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/framegrace/gust/game"
	"github.com/framegrace/gust/render"
	"github.com/framegrace/gust/store"
	"github.com/framegrace/gust/tui"
)

type saveSlot struct {
	store *store.Store
}

func openSaveSlot(path string) (*saveSlot, error) {
	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open save %s: %w", path, err)
	}
	return &saveSlot{store: st}, nil
}

func newCamera(opts tui.Options) *render.Camera {
	return render.NewCamera(mgl32.Vec3{0, 0, -opts.Camera.Distance}, opts.Camera)
}

// Restore loads the saved game into g and returns the camera to use. An empty
// database leaves g alone and yields the default camera.
func (s *saveSlot) Restore(ctx context.Context, g *game.Game, opts tui.Options) (*render.Camera, error) {
	snap, ok, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load save: %w", err)
	}
	if !ok {
		log.Printf("Gust: No save in %s, starting fresh", s.store.Path())
		return newCamera(opts), nil
	}
	g.Restore(snap)
	log.Printf("Gust: Restored save from %s", snap.SavedAt.Format("2006-01-02 15:04:05"))
	return render.NewCamera(mgl32.Vec3(snap.Camera), opts.Camera), nil
}

// Save writes g and the camera position.
func (s *saveSlot) Save(ctx context.Context, g *game.Game, camera *render.Camera) error {
	snap := g.Snapshot()
	snap.Camera = [3]float32(camera.Position())
	if err := s.store.Save(ctx, snap); err != nil {
		return fmt.Errorf("save game: %w", err)
	}
	return nil
}

func (s *saveSlot) Close() error {
	return s.store.Close()
}
