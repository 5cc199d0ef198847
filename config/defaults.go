// Copyright © 2025 Gust contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Built-in defaults layered under gust.json.

package config

func applySystemDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults("camera", Section{
		"fov_degrees":         75.0,
		"distance":            2.0,
		"far_plane":           10.0,
		"rotate_step_degrees": 5.0,
	})
	cfg.RegisterDefaults("globe", Section{
		"subdivisions": 8,
	})
	cfg.RegisterDefaults("layout", Section{
		"globe_width_fraction":   0.64,
		"status_height_fraction": 0.5,
		"status_width_fraction":  0.82,
	})
	cfg.RegisterDefaults("theme", Section{
		"background": "#0a2832",
		"border":     "#78aac8",
	})
	cfg.RegisterDefaults("keys", Section{
		"rotate_left":  "4",
		"rotate_right": "6",
		"quit":         "q",
	})
	cfg.RegisterDefaults("store", Section{
		"path":     "save.db",
		"autosave": true,
	})
}
