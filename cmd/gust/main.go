// Copyright © 2025 Gust contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/gust/main.go
// Summary: Gust command: loads config and save, then runs the terminal shell.
// Usage: Run `gust` in a terminal; `gust -new` ignores the previous save.

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/framegrace/gust/config"
	"github.com/framegrace/gust/game"
	"github.com/framegrace/gust/globe"
	"github.com/framegrace/gust/render"
	"github.com/framegrace/gust/tui"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("gust", flag.ContinueOnError)
	logPath := fs.String("log", "", "Log file (default: <config dir>/gust/gust.log)")
	savePath := fs.String("save", "", "Save database (default: store.path from gust.json)")
	newGame := fs.Bool("new", false, "Start a new game, ignoring the saved one")
	subdivisions := fs.Int("subdivisions", -1, "Globe subdivisions (default: globe.subdivisions from gust.json)")
	noSave := fs.Bool("no-save", false, "Do not read or write the save database")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal")
	}

	logFile, err := setupLogging(*logPath)
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	defer logFile.Close()
	log.Println("Gust: Starting")

	cfg := config.System()
	if err := config.Err(); err != nil {
		log.Printf("Gust: Using default config: %v", err)
	}
	opts := tui.OptionsFromConfig(cfg)

	n := *subdivisions
	if n < 0 {
		n = cfg.GetInt("globe", "subdivisions", 8)
	}
	world, err := globe.New(n)
	if err != nil {
		return fmt.Errorf("build globe: %w", err)
	}
	log.Printf("Gust: Globe with %d subdivisions, %d triangles", n, world.TriangleCount())
	g := game.New(world)

	ctx := context.Background()
	var slot *saveSlot
	if !*noSave && cfg.GetBool("store", "autosave", true) {
		path := *savePath
		if path == "" {
			path, err = config.DataPath(cfg.GetString("store", "path", "save.db"))
			if err != nil {
				return fmt.Errorf("resolve save path: %w", err)
			}
		}
		slot, err = openSaveSlot(path)
		if err != nil {
			return err
		}
		defer slot.Close()
	}

	camera := newCamera(opts)
	if slot != nil && !*newGame {
		if camera, err = slot.Restore(ctx, g, opts); err != nil {
			return err
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	if err := runShell(ctx, screen, g, camera, opts, slot); err != nil {
		return err
	}
	log.Println("Gust: Stopped")
	return nil
}

// runShell owns the screen from Init to Fini and saves once the shell stops.
func runShell(ctx context.Context, screen tcell.Screen, g *game.Game, camera *render.Camera, opts tui.Options, slot *saveSlot) error {
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()

	shell, err := tui.NewShell(screen, g, camera, opts)
	if err != nil {
		return err
	}
	runErr := shell.Run()

	if slot != nil {
		if err := slot.Save(ctx, g, shell.Camera()); err != nil {
			log.Printf("Gust: Save failed: %v", err)
			if runErr == nil {
				return err
			}
		}
	}
	return runErr
}

func setupLogging(path string) (*os.File, error) {
	if path == "" {
		var err error
		path, err = config.DataPath("gust.log")
		if err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
	if err != nil {
		return nil, err
	}
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return file, nil
}
