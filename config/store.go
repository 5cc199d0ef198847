// Copyright © 2025 Gust contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/store.go
// Summary: Loads gust.json, seeding it from embedded defaults on first run.

package config

import "log"

func loadSystemLocked() error {
	path, err := systemConfigPath()
	if err != nil {
		log.Printf("Config: Failed to resolve config path: %v", err)
		system = seedConfig()
		return err
	}

	cfg, exists, readErr := readConfig(path)
	if readErr != nil {
		log.Printf("Config: Failed to read %s: %v", path, readErr)
		system = seedConfig()
		return readErr
	}

	if !exists || len(cfg) == 0 {
		cfg = seedConfig()
		if err := writeConfig(path, cfg); err != nil {
			log.Printf("Config: Failed to write default config: %v", err)
			system = cfg
			return err
		}
		system = cfg
		return nil
	}

	applySystemDefaults(cfg)
	system = cfg
	log.Printf("Config: Loaded config from %s", path)
	return nil
}

// seedConfig returns the embedded defaults, or the built-in ones if the
// embedded file is unusable.
func seedConfig() Config {
	cfg := defaultSystemConfig()
	if cfg == nil {
		cfg = make(Config)
	}
	applySystemDefaults(cfg)
	return cfg
}
