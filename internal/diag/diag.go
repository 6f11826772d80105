// Package diag provides the optional gameplay debug log: an append-only
// side channel independent of the rendered display. Whether it is
// enabled has no effect on simulation behavior or timing.
package diag

import (
	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

// Open returns a file-backed logger for the given debug settings, or
// nil when the debug log is disabled. The file is size-rotated so a
// long-running server cannot fill the disk.
func Open(cfg config.DebugConfig) *log.Logger {
	if cfg.LogPath == "" {
		return nil
	}

	w := &lumberjack.Logger{
		Filename:   cfg.LogPath,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "invaders",
		Level:           log.DebugLevel,
	})
}
