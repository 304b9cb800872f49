// Package obs wraps the zap logger with the handful of named child loggers
// this repository's components use. It replaces GoKitt's ad-hoc fmt.Println
// calls with structured logging, following the pattern codenerd's
// internal/logging package establishes for a fsnotify-driven watcher.
package obs

import (
	"sync"

	"go.uber.org/zap"
)

var (
	once sync.Once
	base *zap.Logger
)

// Init configures the process-wide logger. Safe to call more than once;
// only the first call takes effect. Pass debug=true for development
// console output, false for production JSON logging.
func Init(debug bool) {
	once.Do(func() {
		var err error
		if debug {
			base, err = zap.NewDevelopment()
		} else {
			base, err = zap.NewProduction()
		}
		if err != nil {
			base = zap.NewNop()
		}
	})
}

// ensure lazily initializes the logger in production mode if Init was
// never called, so packages that log before cmd/cityd runs still work.
func ensure() *zap.Logger {
	if base == nil {
		Init(false)
	}
	return base
}

// Named returns a child logger tagged with the given component name.
func Named(name string) *zap.Logger {
	return ensure().Named(name)
}

// Sync flushes any buffered log entries. Call before process exit.
func Sync() {
	if base != nil {
		_ = base.Sync()
	}
}
