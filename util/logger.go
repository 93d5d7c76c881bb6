// Package util provides low-level helpers shared by all other packages.
package util

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// LogLevel controls output verbosity.
type LogLevel int

const (
	LogQuiet   LogLevel = 0
	LogNormal  LogLevel = 1
	LogVerbose LogLevel = 2
	LogDebug   LogLevel = 3
)

// Logger writes levelled messages to stderr through a zerolog console
// writer.  Errors are always printed; everything else depends on the
// verbosity.
type Logger struct {
	level      LogLevel
	output     io.Writer
	timestamps bool // if true, prepend HH:MM:SS.mmm timestamps
	zl         zerolog.Logger
}

// NewLogger returns a Logger that prints messages at or below the given
// verbosity (0 = quiet, 1 = normal, 2 = verbose, 3 = debug).
func NewLogger(verbosity int) *Logger {
	if verbosity < 0 {
		verbosity = 0
	}
	l := &Logger{
		level:      LogLevel(verbosity),
		output:     os.Stderr,
		timestamps: verbosity >= int(LogDebug), // auto-enable timestamps in debug mode
	}
	l.rebuild()
	return l
}

// SetTimestamps enables or disables timestamp prefixes.
func (l *Logger) SetTimestamps(on bool) {
	l.timestamps = on
	l.rebuild()
}

// SetOutput overrides the output writer (default: os.Stderr).
func (l *Logger) SetOutput(w io.Writer) {
	l.output = w
	l.rebuild()
}

// Level returns the current log level.
func (l *Logger) Level() LogLevel { return l.level }

// Info prints when verbosity ≥ 1.  Rendered as INF.
func (l *Logger) Info(format string, args ...interface{}) {
	if l.level >= LogNormal {
		l.zl.Info().Msg(fmt.Sprintf(format, args...))
	}
}

// Warn prints when verbosity ≥ 1.  Rendered as WRN.
func (l *Logger) Warn(format string, args ...interface{}) {
	if l.level >= LogNormal {
		l.zl.Warn().Msg(fmt.Sprintf(format, args...))
	}
}

// Verbose prints when verbosity ≥ 2.  Rendered as DBG.
func (l *Logger) Verbose(format string, args ...interface{}) {
	if l.level >= LogVerbose {
		l.zl.Debug().Msg(fmt.Sprintf(format, args...))
	}
}

// Debug prints when verbosity ≥ 3.  Rendered as DBG with a debug marker
// so it can be told apart from Verbose output.
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.level >= LogDebug {
		l.zl.Debug().Bool("debug", true).Msg(fmt.Sprintf(format, args...))
	}
}

// Error always prints regardless of verbosity.  Rendered as ERR.
func (l *Logger) Error(format string, args ...interface{}) {
	l.zl.Error().Msg(fmt.Sprintf(format, args...))
}

func (l *Logger) rebuild() {
	cw := zerolog.ConsoleWriter{
		Out:        zerolog.SyncWriter(l.output),
		NoColor:    true,
		TimeFormat: "15:04:05.000",
	}
	if !l.timestamps {
		cw.PartsExclude = []string{zerolog.TimestampFieldName}
	}

	zl := zerolog.New(cw).Level(zerolog.DebugLevel)
	if l.timestamps {
		zl = zl.With().Timestamp().Logger()
	}
	l.zl = zl
}
