/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verifiable

import (
	"errors"
	"io"
	"strconv"

	"github.com/solid/vc-go/pkg/common/log"
	"github.com/solid/vc-go/pkg/controller/command"
	"github.com/solid/vc-go/pkg/controller/internal/cmdutil"
	"github.com/solid/vc-go/pkg/doc/ldcontext"
	"github.com/solid/vc-go/pkg/doc/verifiable"
	"github.com/solid/vc-go/pkg/internal/logutil"
)

var logger = log.New("solid-vc/command/verifiable")

// Error codes.
const (
	// InvalidRequestErrorCode is typically a code for invalid requests.
	InvalidRequestErrorCode = command.Code(iota + command.Verifiable)

	// MissingDocumentErrorCode is returned when the document to validate is absent.
	MissingDocumentErrorCode
)

const (
	// command name.
	CommandName = "verifiable"

	// command methods.
	ValidateCredentialCommandMethod   = "ValidateCredential"
	ValidatePresentationCommandMethod = "ValidatePresentation"
	ConcatenateContextsCommandMethod  = "ConcatenateContexts"

	// error messages.
	errEmptyCredential   = "credential is mandatory"
	errEmptyPresentation = "presentation is mandatory"
)

// Command contains command operations provided by the credential validation controller.
type Command struct{}

// New returns new credential validation controller command instance.
func New() *Command {
	return &Command{}
}

// GetHandlers returns list of all commands supported by this controller command.
func (o *Command) GetHandlers() []command.Handler {
	return []command.Handler{
		cmdutil.NewCommandHandler(CommandName, ValidateCredentialCommandMethod, o.ValidateCredential),
		cmdutil.NewCommandHandler(CommandName, ValidatePresentationCommandMethod, o.ValidatePresentation),
		cmdutil.NewCommandHandler(CommandName, ConcatenateContextsCommandMethod, o.ConcatenateContexts),
	}
}

// ValidateCredential checks the shape of a verifiable credential.
// A malformed credential is not a command error, the response lists the failed checks.
func (o *Command) ValidateCredential(rw io.Writer, req io.Reader) command.Error {
	request := &CredentialRequest{}

	if cmdErr := cmdutil.DecodeRequest(req, request, InvalidRequestErrorCode); cmdErr != nil {
		logutil.LogInfo(logger, CommandName, ValidateCredentialCommandMethod, cmdErr.Error())

		return cmdErr
	}

	if len(request.Credential) == 0 {
		logutil.LogDebug(logger, CommandName, ValidateCredentialCommandMethod, errEmptyCredential)

		return command.NewValidationError(MissingDocumentErrorCode, errors.New(errEmptyCredential))
	}

	result := verifiable.ValidateCredential(request.Credential)

	command.WriteNillableResponse(rw, &ValidationResponse{Valid: result.Valid(), Checks: result.Checks}, logger)

	logutil.LogDebug(logger, CommandName, ValidateCredentialCommandMethod, "success",
		logutil.CreateKeyValueString("valid", strconv.FormatBool(result.Valid())))

	return nil
}

// ValidatePresentation checks the shape of a verifiable presentation and its credentials.
func (o *Command) ValidatePresentation(rw io.Writer, req io.Reader) command.Error {
	request := &PresentationRequest{}

	if cmdErr := cmdutil.DecodeRequest(req, request, InvalidRequestErrorCode); cmdErr != nil {
		logutil.LogInfo(logger, CommandName, ValidatePresentationCommandMethod, cmdErr.Error())

		return cmdErr
	}

	if len(request.Presentation) == 0 {
		logutil.LogDebug(logger, CommandName, ValidatePresentationCommandMethod, errEmptyPresentation)

		return command.NewValidationError(MissingDocumentErrorCode, errors.New(errEmptyPresentation))
	}

	result := verifiable.ValidatePresentation(request.Presentation)

	command.WriteNillableResponse(rw, &ValidationResponse{Valid: result.Valid(), Checks: result.Checks}, logger)

	logutil.LogDebug(logger, CommandName, ValidatePresentationCommandMethod, "success",
		logutil.CreateKeyValueString("valid", strconv.FormatBool(result.Valid())))

	return nil
}

// ConcatenateContexts merges JSON-LD contexts, dropping duplicates and keeping the first-seen order.
func (o *Command) ConcatenateContexts(rw io.Writer, req io.Reader) command.Error {
	request := &ContextsRequest{}

	if cmdErr := cmdutil.DecodeRequest(req, request, InvalidRequestErrorCode); cmdErr != nil {
		logutil.LogInfo(logger, CommandName, ConcatenateContextsCommandMethod, cmdErr.Error())

		return cmdErr
	}

	command.WriteNillableResponse(rw, &ContextsResponse{
		Context: ldcontext.Concatenate(request.Contexts...),
	}, logger)

	logutil.LogDebug(logger, CommandName, ConcatenateContextsCommandMethod, "success")

	return nil
}

