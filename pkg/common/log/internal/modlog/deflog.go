/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package modlog

import (
	"fmt"
	"io"
	builtinlog "log"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/solid/vc-go/pkg/common/log/internal/metadata"
)

const (
	logLevelFormatter   = "UTC %s-> %s "
	logPrefixFormatter  = " [%s] "
	callerInfoFormatter = "- %s "
)

// NewDefLog returns the default logger of a module, writing to stdout.
func NewDefLog(module string) *DefLog {
	logger := builtinlog.New(os.Stdout, fmt.Sprintf(logPrefixFormatter, module),
		builtinlog.Ldate|builtinlog.Ltime|builtinlog.LUTC)

	return &DefLog{logger: logger, module: module}
}

// DefLog is the default logger, built on the standard library logger.
// Line format: [<module>] <UTC time> - <caller> -> <LEVEL> <message>.
type DefLog struct {
	logger *builtinlog.Logger
	module string
}

// Fatalf logs at CRITICAL and exits the process.
func (l *DefLog) Fatalf(format string, args ...interface{}) {
	l.logf(metadata.Critical, format, args...)
	os.Exit(1)
}

// Panicf logs at CRITICAL and panics with the formatted message.
func (l *DefLog) Panicf(format string, args ...interface{}) {
	l.logf(metadata.Critical, format, args...)
	panic(fmt.Sprintf(format, args...))
}

// Debugf logs at DEBUG.
func (l *DefLog) Debugf(format string, args ...interface{}) {
	l.logf(metadata.Debug, format, args...)
}

// Infof logs at INFO.
func (l *DefLog) Infof(format string, args ...interface{}) {
	l.logf(metadata.Info, format, args...)
}

// Warnf logs at WARNING.
func (l *DefLog) Warnf(format string, args ...interface{}) {
	l.logf(metadata.Warning, format, args...)
}

// Errorf logs at ERROR.
func (l *DefLog) Errorf(format string, args ...interface{}) {
	l.logf(metadata.Error, format, args...)
}

// SetOutput redirects the logger output.
func (l *DefLog) SetOutput(output io.Writer) {
	l.logger.SetOutput(output)
}

func (l *DefLog) logf(level int, format string, args ...interface{}) {
	const callDepth = 2

	prefix := fmt.Sprintf(logLevelFormatter, l.callerInfo(level), metadata.ParseString(level))

	if err := l.logger.Output(callDepth, prefix+fmt.Sprintf(format, args...)); err != nil {
		fmt.Printf("error from logger.Output %v\n", err) //nolint:forbidigo
	}
}

// callerInfo walks the stack past the logging wrappers to name the function that logged.
func (l *DefLog) callerInfo(level int) string {
	if !metadata.IsCallerInfoEnabled(l.module, level) {
		return ""
	}

	const (
		maxCallers = 8
		skip       = 4
		notFound   = "n/a"
	)

	pcs := make([]uintptr, maxCallers)

	n := runtime.Callers(skip, pcs)
	if n == 0 {
		return fmt.Sprintf(callerInfoFormatter, notFound)
	}

	frames := runtime.CallersFrames(pcs[:n])

	for {
		f, more := frames.Next()

		_, fnName := filepath.Split(f.Function)
		if fnName == "" {
			fnName = notFound
		}

		if !isLoggerFrame(fnName) || !more {
			return fmt.Sprintf(callerInfoFormatter, fnName)
		}
	}
}

func isLoggerFrame(fnName string) bool {
	for _, prefix := range []string{"modlog.(*DefLog)", "modlog.(*ModLog)", "log.(*Log)"} {
		if strings.HasPrefix(fnName, prefix) {
			return true
		}
	}

	return false
}
