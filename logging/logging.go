// Package logging defines the diagnostic capability csvtable emits through.
//
// The table layer never writes to a process-wide logger; it reports through
// an injected Logger so library users control the destination and tests can
// capture output. Zerolog adapts a zerolog.Logger; Nop discards everything
// and is the default.
package logging

import "github.com/rs/zerolog"

// Logger is the diagnostic sink consumed by the table layer.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Nop returns a Logger that discards all messages.
func Nop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}

// Zerolog wraps a zerolog.Logger as a Logger. Messages map level for level;
// formatting is deferred to zerolog's Msgf.
func Zerolog(logger zerolog.Logger) Logger {
	return zerologLogger{logger: logger}
}

type zerologLogger struct {
	logger zerolog.Logger
}

func (l zerologLogger) Infof(format string, args ...any) {
	l.logger.Info().Msgf(format, args...)
}

func (l zerologLogger) Warnf(format string, args ...any) {
	l.logger.Warn().Msgf(format, args...)
}

func (l zerologLogger) Errorf(format string, args ...any) {
	l.logger.Error().Msgf(format, args...)
}
