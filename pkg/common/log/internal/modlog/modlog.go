/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package modlog provides the module level filtering wrapper and the default logger implementation.
package modlog

import (
	"github.com/solid/vc-go/pkg/common/log/internal/metadata"
)

// Logger is the method set of log.Logger, repeated here to avoid an import cycle.
type Logger interface {
	Panicf(msg string, args ...interface{})
	Fatalf(msg string, args ...interface{})
	Errorf(msg string, args ...interface{})
	Warnf(msg string, args ...interface{})
	Infof(msg string, args ...interface{})
	Debugf(msg string, args ...interface{})
}

// NewModLog wraps logger so that messages below the module level are dropped.
func NewModLog(logger Logger, module string) *ModLog {
	return &ModLog{logger: logger, module: module}
}

// ModLog filters messages by the level configured for its module. Fatalf and Panicf are never filtered.
type ModLog struct {
	logger Logger
	module string
}

// Fatalf calls the underlying Fatalf.
func (m *ModLog) Fatalf(format string, args ...interface{}) {
	m.logger.Fatalf(format, args...)
}

// Panicf calls the underlying Panicf.
func (m *ModLog) Panicf(format string, args ...interface{}) {
	m.logger.Panicf(format, args...)
}

// Debugf logs if DEBUG is enabled for the module.
func (m *ModLog) Debugf(format string, args ...interface{}) {
	if metadata.IsEnabledFor(m.module, metadata.Debug) {
		m.logger.Debugf(format, args...)
	}
}

// Infof logs if INFO is enabled for the module.
func (m *ModLog) Infof(format string, args ...interface{}) {
	if metadata.IsEnabledFor(m.module, metadata.Info) {
		m.logger.Infof(format, args...)
	}
}

// Warnf logs if WARNING is enabled for the module.
func (m *ModLog) Warnf(format string, args ...interface{}) {
	if metadata.IsEnabledFor(m.module, metadata.Warning) {
		m.logger.Warnf(format, args...)
	}
}

// Errorf logs if ERROR is enabled for the module.
func (m *ModLog) Errorf(format string, args ...interface{}) {
	if metadata.IsEnabledFor(m.module, metadata.Error) {
		m.logger.Errorf(format, args...)
	}
}

// Unwrap returns the wrapped logger.
func (m *ModLog) Unwrap() Logger {
	return m.logger
}
