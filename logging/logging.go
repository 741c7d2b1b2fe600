// Package logging builds the process logger and hands it to the library
// packages.
package logging

import (
	"fmt"

	"go.uber.org/zap"

	"glsb/app"
	"glsb/config"
	"glsb/gpu"
	"glsb/renderer"
)

// New builds a logger from cfg. Development loggers print human readable
// console output; production loggers print JSON.
func New(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level

	l, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return l, nil
}

// Install makes l the logger of every library package, each under its own
// name.
func Install(l *zap.Logger) {
	gpu.SetLogger(l.Named("gpu"))
	renderer.SetLogger(l.Named("renderer"))
	app.SetLogger(l.Named("app"))
}
