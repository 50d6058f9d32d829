/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package log

import (
	"sync"

	"github.com/solid/vc-go/pkg/common/log/internal/modlog"
)

// loggerProviderInstance is the logger factory singleton, access it only via loggerProvider().
//
//nolint:gochecknoglobals
var (
	loggerProviderInstance LoggerProvider
	loggerProviderOnce     sync.Once
)

// Initialize installs a custom logging provider. It only has an effect when called before anything
// is logged.
func Initialize(l LoggerProvider) {
	loggerProviderOnce.Do(func() {
		loggerProviderInstance = &modlogProvider{custom: l}
		loggerProviderInstance.GetLogger(loggerModule).Debugf("Logger provider initialized")
	})
}

func loggerProvider() LoggerProvider {
	loggerProviderOnce.Do(func() {
		loggerProviderInstance = &modlogProvider{}
		loggerProviderInstance.GetLogger(loggerModule).Debugf(loggerNotInitializedMsg)
	})

	return loggerProviderInstance
}

// modlogProvider wraps loggers of a custom provider, or the default logger, with module level filtering.
type modlogProvider struct {
	custom LoggerProvider
}

func (p *modlogProvider) GetLogger(module string) Logger {
	if p.custom != nil {
		return modlog.NewModLog(p.custom.GetLogger(module), module)
	}

	return modlog.NewModLog(modlog.NewDefLog(module), module)
}
