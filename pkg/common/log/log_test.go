/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package log

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) Panicf(msg string, _ ...interface{}) { r.lines = append(r.lines, "PANIC "+msg) }
func (r *recordingLogger) Fatalf(msg string, _ ...interface{}) { r.lines = append(r.lines, "FATAL "+msg) }
func (r *recordingLogger) Errorf(msg string, _ ...interface{}) { r.lines = append(r.lines, "ERROR "+msg) }
func (r *recordingLogger) Warnf(msg string, _ ...interface{})  { r.lines = append(r.lines, "WARN "+msg) }
func (r *recordingLogger) Infof(msg string, _ ...interface{})  { r.lines = append(r.lines, "INFO "+msg) }
func (r *recordingLogger) Debugf(msg string, _ ...interface{}) { r.lines = append(r.lines, "DEBUG "+msg) }

type recordingProvider struct {
	logger *recordingLogger
}

func (p *recordingProvider) GetLogger(string) Logger {
	return p.logger
}

func TestCustomLogger(t *testing.T) {
	defer func() { loggerProviderOnce = sync.Once{} }()

	const module = "log-custom"

	rec := &recordingLogger{}
	Initialize(&recordingProvider{logger: rec})

	SetLevel(module, WARNING)

	logger := New(module)
	logger.Debugf("dropped")
	logger.Infof("dropped")
	logger.Warnf("kept warning")
	logger.Errorf("kept error")

	require.Equal(t, []string{"WARN kept warning", "ERROR kept error"}, rec.lines)
}

func TestAllLevels(t *testing.T) {
	modules := map[Level]string{
		CRITICAL: "log-critical",
		ERROR:    "log-error",
		WARNING:  "log-warning",
		INFO:     "log-info",
		DEBUG:    "log-debug",
	}

	for level, module := range modules {
		SetLevel(module, level)
		require.Equal(t, level, GetLevel(module))

		for l := CRITICAL; l <= DEBUG; l++ {
			require.Equal(t, l <= level, IsEnabledFor(module, l), "module %s level %d", module, l)
		}
	}
}

func TestCallerInfos(t *testing.T) {
	const module = "log-caller-info"

	ShowCallerInfo(module, DEBUG)
	HideCallerInfo(module, INFO)

	require.True(t, IsCallerInfoEnabled(module, DEBUG))
	require.False(t, IsCallerInfoEnabled(module, INFO))
	require.True(t, IsCallerInfoEnabled(module, ERROR))
}

func TestParseLevel(t *testing.T) {
	for expected, names := range map[Level][]string{
		CRITICAL: {"critical", "CRITICAL"},
		ERROR:    {"error", "ErroR"},
		WARNING:  {"warning", "WARNING"},
		INFO:     {"info", "iNFo"},
		DEBUG:    {"debug", "DebUg"},
	} {
		for _, name := range names {
			level, err := ParseLevel(name)
			require.NoError(t, err)
			require.Equal(t, expected, level)
		}
	}

	for _, name := range []string{"", "D", "DE BUG", "."} {
		_, err := ParseLevel(name)
		require.Error(t, err)
	}
}
