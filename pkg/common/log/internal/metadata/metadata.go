/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package metadata keeps the per-module logging settings shared by the log package and its
// default logger. Levels are plain ints here to avoid an import cycle; their order must match log.Level.
package metadata

import (
	"errors"
	"strings"
	"sync"
)

// Level values, mirroring log.Level.
const (
	Critical = iota
	Error
	Warning
	Info
	Debug
)

const defaultModuleName = ""

//nolint:gochecknoglobals
var (
	levelNames = []string{"CRITICAL", "ERROR", "WARNING", "INFO", "DEBUG"}

	mu         sync.RWMutex
	levels     = map[string]int{}
	callerInfo = map[callerInfoKey]bool{}
)

type callerInfoKey struct {
	module string
	level  int
}

// SetLevel sets the level of a module.
func SetLevel(module string, level int) {
	mu.Lock()
	defer mu.Unlock()

	levels[module] = level
}

// GetLevel returns the level of a module, falling back to the default module and then to Info.
func GetLevel(module string) int {
	mu.RLock()
	defer mu.RUnlock()

	if level, ok := levels[module]; ok {
		return level
	}

	if level, ok := levels[defaultModuleName]; ok {
		return level
	}

	return Info
}

// IsEnabledFor reports whether level is enabled for module.
func IsEnabledFor(module string, level int) bool {
	return level <= GetLevel(module)
}

// SetCallerInfo shows or hides caller info for a module and level.
func SetCallerInfo(module string, level int, show bool) {
	mu.Lock()
	defer mu.Unlock()

	callerInfo[callerInfoKey{module, level}] = show
}

// IsCallerInfoEnabled reports whether caller info is shown; it is shown unless hidden explicitly.
func IsCallerInfoEnabled(module string, level int) bool {
	mu.RLock()
	defer mu.RUnlock()

	if show, ok := callerInfo[callerInfoKey{module, level}]; ok {
		return show
	}

	if show, ok := callerInfo[callerInfoKey{defaultModuleName, level}]; ok {
		return show
	}

	return true
}

// ParseLevel returns the level named by s, case insensitively.
func ParseLevel(s string) (int, error) {
	for i, name := range levelNames {
		if strings.EqualFold(name, s) {
			return i, nil
		}
	}

	return Error, errors.New("logger: invalid log level")
}

// ParseString returns the name of a level.
func ParseString(level int) string {
	if level < 0 || level >= len(levelNames) {
		return "UNKNOWN"
	}

	return levelNames[level]
}
