// Package logging builds the zap logger shared by all commands.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Options selects log verbosity and the optional log file.
type Options struct {
	// Verbose lowers the level to Debug.
	Verbose bool
	// FilePath, when set, tees JSON log lines into a rotated file.
	FilePath string
}

// New builds a logger with a console core on stderr, keeping stdout free
// for prompts and tables. A configured file path adds a JSON core behind
// log rotation.
func New(opts Options) *zap.Logger {
	level := zapcore.InfoLevel
	if opts.Verbose {
		level = zapcore.DebugLevel
	}

	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stderr),
		level,
	)

	core := consoleCore
	if opts.FilePath != "" {
		fileSink := zapcore.AddSync(&lumberjack.Logger{
			Filename:   opts.FilePath,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		})
		fileCore := zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			fileSink,
			level,
		)
		core = zapcore.NewTee(consoleCore, fileCore)
	}

	return zap.New(core)
}
