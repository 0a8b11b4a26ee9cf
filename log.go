package rx

import (
	"os"

	"github.com/rs/zerolog"
)

// Package logger. Quiet in normal operation: the engine writes only when an
// error reaches an Observer that has no Error handler, and at debug level
// for the Debug operator.
var logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// SetLogger replaces the package logger. Call it before subscribing; it is
// not synchronized with active subscriptions.
func SetLogger(l zerolog.Logger) {
	logger = l
}
