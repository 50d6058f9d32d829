/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solid/vc-go/pkg/common/log"
	"github.com/solid/vc-go/pkg/common/log/mocklogger"
)

func TestLogFormats(t *testing.T) {
	logger := &mocklogger.MockLogger{}

	LogError(logger, "verifiable", "ValidateCredential", "boom", CreateKeyValueString("id", "urn:1"))
	LogDebug(logger, "verifiable", "ValidateCredential", "success")
	LogInfo(logger, "vcconfig", "GetConfiguration", "request decode")

	require.Equal(t, []string{"command=[verifiable] action=[ValidateCredential] [id=[urn:1]] errMsg=[boom]"},
		logger.Logged(log.ERROR))
	require.Equal(t, []string{"command=[verifiable] action=[ValidateCredential] [] msg=[success]"},
		logger.Logged(log.DEBUG))
	require.Equal(t, []string{"command=[vcconfig] action=[GetConfiguration] [] msg=[request decode]"},
		logger.Logged(log.INFO))
}
