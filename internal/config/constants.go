package config

import "time"

const (
	// Configuration file paths
	ConfigPathBalance = "configs/balance.yaml"

	// Default simulation cadences
	DefaultTickInterval     = 250 * time.Millisecond
	DefaultAutosaveInterval = 30 * time.Second
)
