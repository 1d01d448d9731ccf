package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var level = zap.NewAtomicLevel()

// Init replaces the global zap logger. Development and test environments get the
// human-readable console encoder.
func Init(environment, lvl string) error {
	var conf zap.Config
	switch environment {
	case "development", "test":
		conf = zap.NewDevelopmentConfig()
	default:
		conf = zap.NewProductionConfig()
	}

	if err := SetLevel(lvl); err != nil {
		return err
	}
	conf.Level = level

	l, err := conf.Build()
	if err != nil {
		return fmt.Errorf("conf.Build -> %w", err)
	}
	zap.ReplaceGlobals(l)

	return nil
}

// SetLevel changes the level of the logger built by Init. An empty string means info.
func SetLevel(lvl string) error {
	if lvl == "" {
		lvl = "info"
	}

	parsed, err := zapcore.ParseLevel(lvl)
	if err != nil {
		return fmt.Errorf("zapcore.ParseLevel -> %w", err)
	}
	level.SetLevel(parsed)

	return nil
}
