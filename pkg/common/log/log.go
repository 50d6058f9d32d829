/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package log implements a module based, leveled string logger for fmt-style messages.
//
// Every package creates its own logger with New("solid-vc/<area>"). Levels are set per module with
// SetLevel; the empty module name sets the default for all modules that have no level of their own.
package log

import (
	"sync"

	"github.com/solid/vc-go/pkg/common/log/internal/metadata"
)

const (
	loggerNotInitializedMsg = "Default logger initialized (call log.Initialize() to use a custom logger)"
	loggerModule            = "solid-vc/common"
)

// Log is a module scoped Logger. The underlying logger is resolved lazily on first use, so
// Initialize must be called before the first line is logged for a custom provider to take effect.
type Log struct {
	instance Logger
	module   string
	once     sync.Once
}

// New returns a Log for the given module.
func New(module string) *Log {
	return &Log{module: module}
}

// Fatalf logs a critical message and may terminate the process depending on the provider.
func (l *Log) Fatalf(msg string, args ...interface{}) {
	l.logger().Fatalf(msg, args...)
}

// Panicf logs a critical message and may panic depending on the provider.
func (l *Log) Panicf(msg string, args ...interface{}) {
	l.logger().Panicf(msg, args...)
}

// Debugf logs at DEBUG level.
func (l *Log) Debugf(msg string, args ...interface{}) {
	l.logger().Debugf(msg, args...)
}

// Infof logs at INFO level.
func (l *Log) Infof(msg string, args ...interface{}) {
	l.logger().Infof(msg, args...)
}

// Warnf logs at WARNING level.
func (l *Log) Warnf(msg string, args ...interface{}) {
	l.logger().Warnf(msg, args...)
}

// Errorf logs at ERROR level.
func (l *Log) Errorf(msg string, args ...interface{}) {
	l.logger().Errorf(msg, args...)
}

func (l *Log) logger() Logger {
	l.once.Do(func() {
		l.instance = loggerProvider().GetLogger(l.module)
	})

	return l.instance
}

// SetLevel sets the logging level of a module. An empty module sets the default level.
// If never set, the level is INFO.
func SetLevel(module string, level Level) {
	metadata.SetLevel(module, int(level))
}

// GetLevel returns the logging level of a module.
func GetLevel(module string) Level {
	return Level(metadata.GetLevel(module))
}

// IsEnabledFor reports whether messages of the given level are logged for the module.
func IsEnabledFor(module string, level Level) bool {
	return metadata.IsEnabledFor(module, int(level))
}

// ParseLevel returns the level named by s, case insensitively.
func ParseLevel(s string) (Level, error) {
	l, err := metadata.ParseLevel(s)

	return Level(l), err
}

// ShowCallerInfo enables caller info in log lines of the default logger for a module and level.
func ShowCallerInfo(module string, level Level) {
	metadata.SetCallerInfo(module, int(level), true)
}

// HideCallerInfo disables caller info in log lines of the default logger for a module and level.
func HideCallerInfo(module string, level Level) {
	metadata.SetCallerInfo(module, int(level), false)
}

// IsCallerInfoEnabled reports whether caller info is shown for a module and level.
// Custom providers may ignore this setting.
func IsCallerInfoEnabled(module string, level Level) bool {
	return metadata.IsCallerInfoEnabled(module, int(level))
}
