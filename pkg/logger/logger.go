// Package logger provides a zap-based application logger.
package logger

import "go.uber.org/zap"

// Log is the global zap logger used across the project.
var Log = zap.NewNop()

// Init configures the global logger in production mode.
func Init() {
	var err error
	Log, err = zap.NewProduction()
	if err != nil {
		panic(err)
	}
}

// InitConsole configures the global logger for interactive CLI use. Without
// verbose only warnings and errors reach the terminal.
func InitConsole(verbose bool) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	var err error
	Log, err = cfg.Build()
	if err != nil {
		panic(err)
	}
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = Log.Sync()
}
