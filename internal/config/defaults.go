package config

// Default returns the built-in configuration used when no config file
// is found.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Address:            ":23234",
			IdleTimeoutMinutes: 30,
		},
		Debug: DebugConfig{
			LogPath:    "", // disabled
			MaxSizeMB:  5,
			MaxBackups: 2,
		},
	}
}
