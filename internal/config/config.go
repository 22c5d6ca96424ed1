// Package config binds environment variables for trellis-skills using
// Viper. There is no configuration file; the environment and flags are
// the only inputs, and flags are merged at the command layer.
package config

import (
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides
// (e.g. TRELLIS_SKILLS_GLOBAL=1).
const EnvPrefix = "TRELLIS_SKILLS"

// Keys understood by the installer.
const (
	// KeyGlobal selects the user-global destination (bool).
	KeyGlobal = "global"

	// KeySource overrides the payload directory (string).
	KeySource = "source"

	// KeyDebug raises log verbosity (0, 1, or 2).
	KeyDebug = "debug"
)

// Init initializes Viper with defaults and environment binding.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	viper.SetDefault(KeyGlobal, false)
	viper.SetDefault(KeySource, "")
	viper.SetDefault(KeyDebug, 0)
}

// Global reports whether the user-global destination is selected.
func Global() bool {
	return viper.GetBool(KeyGlobal)
}

// Source returns the payload directory override, or "" for the default
// lookup order.
func Source() string {
	return viper.GetString(KeySource)
}

// Debug returns the verbosity level from the environment.
func Debug() int {
	return viper.GetInt(KeyDebug)
}
