// Package obs provides the structured logging used by the circuit
// package: one zerolog.Logger per component, configured the way
// explorer/indexer/pkg/logger configures loggers for its own components.
package obs

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu      sync.Mutex
	loggers = make(map[string]*zerolog.Logger)
)

// Component returns the shared logger for the given component name,
// creating it on first use. Safe for concurrent use.
func Component(name string) *zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if l, ok := loggers[name]; ok {
		return l
	}
	l := zerolog.New(os.Stderr).With().
		Timestamp().
		Str("component", name).
		Logger().
		Level(zerolog.InfoLevel)
	loggers[name] = &l
	return &l
}

// SetLevel adjusts the minimum level logged by every component logger.
// Intended for tests that want to silence or surface debug output.
func SetLevel(level zerolog.Level) {
	mu.Lock()
	defer mu.Unlock()
	for _, l := range loggers {
		*l = l.Level(level)
	}
	zerolog.SetGlobalLevel(level)
}
