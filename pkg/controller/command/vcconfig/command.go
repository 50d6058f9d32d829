/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package vcconfig

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/solid/vc-go/pkg/client/vcconfig"
	"github.com/solid/vc-go/pkg/common/log"
	"github.com/solid/vc-go/pkg/controller/command"
	"github.com/solid/vc-go/pkg/controller/internal/cmdutil"
	"github.com/solid/vc-go/pkg/internal/logutil"
)

var logger = log.New("solid-vc/command/vcconfig")

// Error codes.
const (
	// InvalidRequestErrorCode is typically a code for invalid requests.
	InvalidRequestErrorCode = command.Code(iota + command.VCConfig)

	// GetConfigurationErrorCode is for failures to fetch or read a VC configuration.
	GetConfigurationErrorCode
)

const (
	// command name.
	CommandName = "vcconfig"

	// command methods.
	GetConfigurationCommandMethod = "GetConfiguration"

	// error messages.
	errEmptyServiceURL = "serviceURL is mandatory"

	// log constants.
	serviceURLString = "serviceURL"
)

type configurationClient interface {
	GetConfiguration(ctx context.Context, serviceURL string) (*vcconfig.Configuration, error)
}

// Command contains command operations provided by the VC service discovery controller.
type Command struct {
	client configurationClient
}

// New returns new VC service discovery controller command instance.
func New(client configurationClient) *Command {
	return &Command{client: client}
}

// GetHandlers returns list of all commands supported by this controller command.
func (o *Command) GetHandlers() []command.Handler {
	return []command.Handler{
		cmdutil.NewCommandHandler(CommandName, GetConfigurationCommandMethod, o.GetConfiguration),
	}
}

// GetConfiguration discovers the VC services advertised by a server.
func (o *Command) GetConfiguration(rw io.Writer, req io.Reader) command.Error {
	request := &DiscoverRequest{}

	if cmdErr := cmdutil.DecodeRequest(req, request, InvalidRequestErrorCode); cmdErr != nil {
		logutil.LogInfo(logger, CommandName, GetConfigurationCommandMethod, cmdErr.Error())

		return cmdErr
	}

	if request.ServiceURL == "" {
		logutil.LogDebug(logger, CommandName, GetConfigurationCommandMethod, errEmptyServiceURL)

		return command.NewValidationError(InvalidRequestErrorCode, errors.New(errEmptyServiceURL))
	}

	if _, err := vcconfig.WellKnownIRI(request.ServiceURL); err != nil {
		logutil.LogInfo(logger, CommandName, GetConfigurationCommandMethod, err.Error(),
			logutil.CreateKeyValueString(serviceURLString, request.ServiceURL))

		return command.NewValidationError(InvalidRequestErrorCode, err)
	}

	config, err := o.client.GetConfiguration(context.Background(), request.ServiceURL)
	if err != nil {
		logutil.LogError(logger, CommandName, GetConfigurationCommandMethod, "get configuration : "+err.Error(),
			logutil.CreateKeyValueString(serviceURLString, request.ServiceURL))

		return command.NewExecuteError(GetConfigurationErrorCode, fmt.Errorf("get configuration : %w", err))
	}

	command.WriteNillableResponse(rw, config, logger)

	logutil.LogDebug(logger, CommandName, GetConfigurationCommandMethod, "success",
		logutil.CreateKeyValueString(serviceURLString, request.ServiceURL))

	return nil
}
