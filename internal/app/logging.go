package app

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/dshills/notefold/internal/config"
)

// setupLogging builds the root logger from the logging settings. The
// terminal belongs to the renderer, so without a configured log file
// everything is discarded. The returned closer is nil when no file was
// opened.
func setupLogging(cfg config.LoggingSettings, override string) (zerolog.Logger, io.Closer, error) {
	levelName := cfg.Level
	if override != "" {
		levelName = override
	}
	level, err := zerolog.ParseLevel(levelName)
	if err != nil {
		return zerolog.Nop(), nil, err
	}

	if cfg.File == "" {
		return zerolog.Nop(), nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return zerolog.Nop(), nil, err
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, err
	}

	log := zerolog.New(f).Level(level).With().Timestamp().Logger()
	return log, f, nil
}
