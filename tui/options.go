// Copyright © 2025 Gust contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tui/options.go
// Summary: Shell options and their config bindings.

package tui

import (
	"log"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/framegrace/gust/config"
	"github.com/framegrace/gust/render"
)

// Theme holds the two colors every panel is drawn with.
type Theme struct {
	Background colorful.Color
	Border     colorful.Color
}

// KeyMap binds the rune keys the shell reacts to.
type KeyMap struct {
	RotateLeft  rune
	RotateRight rune
	Quit        rune
}

// Options configures a Shell.
type Options struct {
	Camera    render.CameraOptions
	Fractions Fractions
	Theme     Theme
	Keys      KeyMap
}

var (
	defaultBackground = colorful.Color{R: 10.0 / 255, G: 40.0 / 255, B: 50.0 / 255}
	defaultBorder     = colorful.Color{R: 120.0 / 255, G: 170.0 / 255, B: 200.0 / 255}
)

// DefaultOptions returns the options used without a config file.
func DefaultOptions() Options {
	return Options{
		Camera:    render.DefaultCameraOptions(),
		Fractions: DefaultFractions(),
		Theme:     Theme{Background: defaultBackground, Border: defaultBorder},
		Keys:      KeyMap{RotateLeft: '4', RotateRight: '6', Quit: 'q'},
	}
}

// OptionsFromConfig reads the camera, layout, theme and keys sections. A
// camera section that fails render.CameraOptions.Validate is replaced by the
// default camera as a whole.
func OptionsFromConfig(cfg config.Config) Options {
	def := DefaultOptions()
	camera := render.CameraOptions{
		FOV:         cfg.GetFloat32("camera", "fov_degrees", def.Camera.FOV),
		Distance:    cfg.GetFloat32("camera", "distance", def.Camera.Distance),
		Far:         cfg.GetFloat32("camera", "far_plane", def.Camera.Far),
		StepDegrees: cfg.GetFloat32("camera", "rotate_step_degrees", def.Camera.StepDegrees),
	}
	if err := camera.Validate(); err != nil {
		log.Printf("Config: Ignoring camera section: %v", err)
		camera = def.Camera
	}
	return Options{
		Camera: camera,
		Fractions: Fractions{
			GlobeWidth:   cfg.GetFloat("layout", "globe_width_fraction", def.Fractions.GlobeWidth),
			StatusHeight: cfg.GetFloat("layout", "status_height_fraction", def.Fractions.StatusHeight),
			StatusWidth:  cfg.GetFloat("layout", "status_width_fraction", def.Fractions.StatusWidth),
		},
		Theme: Theme{
			Background: cfg.GetColor("theme", "background", def.Theme.Background),
			Border:     cfg.GetColor("theme", "border", def.Theme.Border),
		},
		Keys: KeyMap{
			RotateLeft:  cfg.GetRune("keys", "rotate_left", def.Keys.RotateLeft),
			RotateRight: cfg.GetRune("keys", "rotate_right", def.Keys.RotateRight),
			Quit:        cfg.GetRune("keys", "quit", def.Keys.Quit),
		},
	}
}
