// Package obslog wires zerolog into the rest of the module: a single
// constructor for the console logger cmd/dynmsgtool uses, plus a thin
// adapter that lets package frame's minimal Logger interface be backed by
// a real *zerolog.Logger without frame importing zerolog itself.
package obslog

import (
	"os"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// New builds a console logger tagged with app. Color is enabled only when
// stdout is a terminal; colorable wraps the writer so ANSI codes render
// correctly on Windows consoles too.
func New(app string) zerolog.Logger {
	out := colorable.NewColorableStdout()
	noColor := !isatty.IsTerminal(os.Stdout.Fd())
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}
	return zerolog.New(output).With().Timestamp().Str("app", app).Logger()
}

// FrameLogger adapts a zerolog.Logger to frame.Logger's Warnf method.
type FrameLogger struct {
	logger zerolog.Logger
}

// NewFrameLogger wraps logger for use as a frame.Logger.
func NewFrameLogger(logger zerolog.Logger) FrameLogger {
	return FrameLogger{logger: logger}
}

// Warnf implements frame.Logger.
func (f FrameLogger) Warnf(format string, args ...any) {
	f.logger.Warn().Msgf(format, args...)
}
