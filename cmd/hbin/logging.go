package main

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// newLogger returns a console logger for the given -v count:
// 0 warn, 1 info, 2 debug, 3 or more trace with caller information.
func newLogger(w io.Writer, verbosity int) zerolog.Logger {
	level := zerolog.TraceLevel
	switch verbosity {
	case 0:
		level = zerolog.WarnLevel
	case 1:
		level = zerolog.InfoLevel
	case 2:
		level = zerolog.DebugLevel
	}

	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
	}
	logger := zerolog.New(console).Level(level).With().Timestamp().Logger()
	if verbosity >= 3 {
		logger = logger.With().Caller().Logger()
	}

	return logger
}
