// Package config provides YAML-based configuration for the invaders
// binary. Only ambient settings live here: board dimensions and the
// tick interval are fixed gameplay constants in the invaders package.
package config

// Config is the top-level configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Debug  DebugConfig  `yaml:"debug"`
}

// ServerConfig configures the SSH server started by `invaders serve`.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key_path"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// DebugConfig configures the optional gameplay debug log. The log is a
// diagnostic side channel only; enabling it has no effect on gameplay.
type DebugConfig struct {
	LogPath    string `yaml:"log_path"` // empty disables the debug log
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}
