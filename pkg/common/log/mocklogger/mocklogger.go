/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package mocklogger provides a recording logger for tests.
package mocklogger

import (
	"fmt"
	"sync"

	"github.com/solid/vc-go/pkg/common/log"
)

// MockLogger records formatted messages per level.
type MockLogger struct {
	mu       sync.Mutex
	Messages map[log.Level][]string
}

// Fatalf records a CRITICAL message.
func (m *MockLogger) Fatalf(msg string, args ...interface{}) {
	m.record(log.CRITICAL, msg, args...)
}

// Panicf records a CRITICAL message.
func (m *MockLogger) Panicf(msg string, args ...interface{}) {
	m.record(log.CRITICAL, msg, args...)
}

// Errorf records an ERROR message.
func (m *MockLogger) Errorf(msg string, args ...interface{}) {
	m.record(log.ERROR, msg, args...)
}

// Warnf records a WARNING message.
func (m *MockLogger) Warnf(msg string, args ...interface{}) {
	m.record(log.WARNING, msg, args...)
}

// Infof records an INFO message.
func (m *MockLogger) Infof(msg string, args ...interface{}) {
	m.record(log.INFO, msg, args...)
}

// Debugf records a DEBUG message.
func (m *MockLogger) Debugf(msg string, args ...interface{}) {
	m.record(log.DEBUG, msg, args...)
}

// Logged returns the messages recorded at level.
func (m *MockLogger) Logged(level log.Level) []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]string(nil), m.Messages[level]...)
}

func (m *MockLogger) record(level log.Level, msg string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Messages == nil {
		m.Messages = map[log.Level][]string{}
	}

	m.Messages[level] = append(m.Messages[level], fmt.Sprintf(msg, args...))
}

// Provider hands out the same MockLogger for every module.
type Provider struct {
	MockLogger *MockLogger
}

// GetLogger returns the provider's MockLogger.
func (p *Provider) GetLogger(string) log.Logger {
	return p.MockLogger
}
