/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package modlog

import (
	"bytes"
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solid/vc-go/pkg/common/log/internal/metadata"
)

const (
	msgFormat = "brown %s jumps over the lazy %s"
	msgArg1   = "fox"
	msgArg2   = "dog"
)

func TestDefLog(t *testing.T) {
	const module = "modlog-default"

	var buf bytes.Buffer

	defLog := NewDefLog(module)
	defLog.SetOutput(&buf)

	logger := NewModLog(defLog, module)

	for _, enabled := range []int{metadata.Error, metadata.Warning, metadata.Info, metadata.Debug} {
		metadata.SetLevel(module, enabled)

		for _, current := range []int{metadata.Error, metadata.Warning, metadata.Info, metadata.Debug} {
			logAt(logger, current)

			if current > enabled {
				require.Empty(t, buf.String())

				continue
			}

			expected := fmt.Sprintf(`\[%s\] .* UTC - modlog\.logAt -> %s brown fox jumps over the lazy dog`,
				module, metadata.ParseString(current))
			require.Regexp(t, regexp.MustCompile(expected), buf.String())
			buf.Reset()
		}
	}
}

func TestDefLogWithoutCallerInfo(t *testing.T) {
	const module = "modlog-no-caller"

	var buf bytes.Buffer

	defLog := NewDefLog(module)
	defLog.SetOutput(&buf)

	metadata.SetCallerInfo(module, metadata.Info, false)

	NewModLog(defLog, module).Infof(msgFormat, msgArg1, msgArg2)
	require.Regexp(t, `\[modlog-no-caller\] .* UTC -> INFO brown fox jumps over the lazy dog`, buf.String())
}

func TestDefLogPanic(t *testing.T) {
	var buf bytes.Buffer

	defLog := NewDefLog("modlog-panic")
	defLog.SetOutput(&buf)

	require.PanicsWithValue(t, "brown fox jumps over the lazy dog", func() {
		NewModLog(defLog, "modlog-panic").Panicf(msgFormat, msgArg1, msgArg2)
	})
	require.Contains(t, buf.String(), "CRITICAL brown fox")
}

func TestModLogUnwrap(t *testing.T) {
	defLog := NewDefLog("modlog-unwrap")
	require.Equal(t, defLog, NewModLog(defLog, "modlog-unwrap").Unwrap())
}

func logAt(logger Logger, level int) {
	switch level {
	case metadata.Error:
		logger.Errorf(msgFormat, msgArg1, msgArg2)
	case metadata.Warning:
		logger.Warnf(msgFormat, msgArg1, msgArg2)
	case metadata.Info:
		logger.Infof(msgFormat, msgArg1, msgArg2)
	case metadata.Debug:
		logger.Debugf(msgFormat, msgArg1, msgArg2)
	}
}
