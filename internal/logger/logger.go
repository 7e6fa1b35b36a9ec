// Package logger provides the global structured logger.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the global logger instance.
var Log *zap.Logger

// Init builds the global logger. Development environments get the
// human-readable console encoder; everything else logs JSON.
func Init(appEnv string) error {
	var config zap.Config
	if appEnv == "development" || appEnv == "test" {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config = zap.NewProductionConfig()
		config.OutputPaths = []string{"stdout"}
		config.ErrorOutputPaths = []string{"stderr"}
	}

	var err error
	Log, err = config.Build()
	return err
}

// Get returns the global logger, initializing a default one if necessary.
func Get() *zap.Logger {
	if Log == nil {
		_ = Init("production")
	}
	return Log
}

// Sync flushes any buffered log entries.
func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}
