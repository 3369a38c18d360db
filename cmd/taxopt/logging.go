package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// zerologAdapter implements calculation.Logger on top of zerolog
type zerologAdapter struct {
	log zerolog.Logger
}

func (z zerologAdapter) Debugf(format string, args ...any) { z.log.Debug().Msgf(format, args...) }
func (z zerologAdapter) Infof(format string, args ...any)  { z.log.Info().Msgf(format, args...) }
func (z zerologAdapter) Warnf(format string, args ...any)  { z.log.Warn().Msgf(format, args...) }
func (z zerologAdapter) Errorf(format string, args ...any) { z.log.Error().Msgf(format, args...) }

func newLogger(level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		return zerolog.Nop(), fmt.Errorf("invalid log level: %q", level)
	}

	var logger zerolog.Logger
	switch format {
	case "console":
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	case "json":
		logger = zerolog.New(os.Stderr)
	default:
		return zerolog.Nop(), fmt.Errorf("invalid log format: %q", format)
	}

	return logger.Level(lvl).With().Timestamp().Logger(), nil
}
