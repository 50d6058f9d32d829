/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/solid/vc-go/pkg/common/log"
	"github.com/solid/vc-go/pkg/controller"
	"github.com/solid/vc-go/pkg/doc/jsonld"
)

const (
	// api host flag.
	apiHostFlagName      = "api-host"
	apiHostEnvKey        = "VC_REST_API_HOST"
	apiHostFlagShorthand = "a"
	apiHostFlagUsage     = "Host Name:Port." +
		" Alternatively, this can be set with the following environment variable: " + apiHostEnvKey

	// api token flag.
	apiTokenFlagName      = "api-token"
	apiTokenEnvKey        = "VC_REST_API_TOKEN" // nolint:gosec
	apiTokenFlagShorthand = "t"
	apiTokenFlagUsage     = "Check for bearer token in the authorization header (optional)." +
		" Alternatively, this can be set with the following environment variable: " + apiTokenEnvKey

	// log level.
	logLevelFlagName  = "log-level"
	logLevelEnvKey    = "VC_REST_LOG_LEVEL"
	logLevelFlagUsage = "Log level." +
		" Possible values [INFO] [DEBUG] [ERROR] [WARNING] [CRITICAL] . Defaults to INFO if not set." +
		" Alternatively, this can be set with the following environment variable: " + logLevelEnvKey

	tlsCertFileFlagName      = "tls-cert-file"
	tlsCertFileEnvKey        = "TLS_CERT_FILE"
	tlsCertFileFlagShorthand = "c"
	tlsCertFileFlagUsage     = "tls certificate file." +
		" Alternatively, this can be set with the following environment variable: " + tlsCertFileEnvKey

	tlsKeyFileFlagName      = "tls-key-file"
	tlsKeyFileEnvKey        = "TLS_KEY_FILE"
	tlsKeyFileFlagShorthand = "k"
	tlsKeyFileFlagUsage     = "tls key file." +
		" Alternatively, this can be set with the following environment variable: " + tlsKeyFileEnvKey

	// outbound http timeout flag.
	httpTimeoutFlagName  = "http-timeout"
	httpTimeoutEnvKey    = "VC_REST_HTTP_TIMEOUT"
	httpTimeoutDefault   = "60"
	httpTimeoutFlagUsage = "Timeout in seconds of the requests fetching VC configurations and JSON-LD contexts." +
		" Default: " + httpTimeoutDefault + " seconds." +
		" Alternatively, this can be set with the following environment variable: " + httpTimeoutEnvKey

	// strict subject flag.
	strictSubjectFlagName  = "strict-subject"
	strictSubjectEnvKey    = "VC_REST_STRICT_SUBJECT"
	strictSubjectFlagUsage = "Reject VC configurations with more than one anonymous subject." +
		" Possible values [true] [false]. Defaults to false if not set." +
		" Alternatively, this can be set with the following environment variable: " + strictSubjectEnvKey
)

var errMissingHost = errors.New("host not provided")

var logger = log.New("solid-vc/vc-rest")

type restParameters struct {
	server                  server
	host, token             string
	tlsCertFile, tlsKeyFile string
	httpTimeout             time.Duration
	strictSubject           bool
}

type server interface {
	ListenAndServe(host string, router http.Handler, certFile, keyFile string) error
}

// HTTPServer represents an actual server implementation.
type HTTPServer struct{}

// ListenAndServe starts the server using the standard Go HTTP server implementation.
func (s *HTTPServer) ListenAndServe(host string, router http.Handler, certFile, keyFile string) error {
	if certFile != "" && keyFile != "" {
		return http.ListenAndServeTLS(host, certFile, keyFile, router)
	}

	return http.ListenAndServe(host, router)
}

// Cmd returns the Cobra start command.
func Cmd(server server) (*cobra.Command, error) {
	startCmd := createStartCMD(server)

	createFlags(startCmd)

	return startCmd, nil
}

func createStartCMD(server server) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the VC REST server",
		Long:  `Start the REST server validating credentials and discovering VC services`,
		RunE: func(cmd *cobra.Command, args []string) error {
			parameters, err := getParameters(cmd)
			if err != nil {
				return err
			}

			parameters.server = server

			return startServer(parameters)
		},
	}
}

func getParameters(cmd *cobra.Command) (*restParameters, error) {
	logLevel, err := getUserSetVar(cmd, logLevelFlagName, logLevelEnvKey, true)
	if err != nil {
		return nil, err
	}

	if err = setLogLevel(logLevel); err != nil {
		return nil, err
	}

	host, err := getUserSetVar(cmd, apiHostFlagName, apiHostEnvKey, false)
	if err != nil {
		return nil, err
	}

	token, err := getUserSetVar(cmd, apiTokenFlagName, apiTokenEnvKey, true)
	if err != nil {
		return nil, err
	}

	tlsCertFile, err := getUserSetVar(cmd, tlsCertFileFlagName, tlsCertFileEnvKey, true)
	if err != nil {
		return nil, err
	}

	tlsKeyFile, err := getUserSetVar(cmd, tlsKeyFileFlagName, tlsKeyFileEnvKey, true)
	if err != nil {
		return nil, err
	}

	httpTimeout, err := getHTTPTimeout(cmd)
	if err != nil {
		return nil, err
	}

	strictSubject, err := getStrictSubject(cmd)
	if err != nil {
		return nil, err
	}

	return &restParameters{
		host:          host,
		token:         token,
		tlsCertFile:   tlsCertFile,
		tlsKeyFile:    tlsKeyFile,
		httpTimeout:   httpTimeout,
		strictSubject: strictSubject,
	}, nil
}

func getHTTPTimeout(cmd *cobra.Command) (time.Duration, error) {
	timeout, err := getUserSetVar(cmd, httpTimeoutFlagName, httpTimeoutEnvKey, true)
	if err != nil {
		return 0, err
	}

	if timeout == "" {
		timeout = httpTimeoutDefault
	}

	seconds, err := strconv.ParseUint(timeout, 10, 0)
	if err != nil {
		return 0, fmt.Errorf("failed to parse http timeout %s: %w", timeout, err)
	}

	return time.Duration(seconds) * time.Second, nil
}

func getStrictSubject(cmd *cobra.Command) (bool, error) {
	v, err := getUserSetVar(cmd, strictSubjectFlagName, strictSubjectEnvKey, true)
	if err != nil {
		return false, err
	}

	if v == "" {
		return false, nil
	}

	return strconv.ParseBool(v)
}

func createFlags(startCmd *cobra.Command) {
	// api host flag
	startCmd.Flags().StringP(apiHostFlagName, apiHostFlagShorthand, "", apiHostFlagUsage)

	// api token flag
	startCmd.Flags().StringP(apiTokenFlagName, apiTokenFlagShorthand, "", apiTokenFlagUsage)

	// log level
	startCmd.Flags().StringP(logLevelFlagName, "", "", logLevelFlagUsage)

	// tls cert file
	startCmd.Flags().StringP(tlsCertFileFlagName, tlsCertFileFlagShorthand, "", tlsCertFileFlagUsage)

	// tls key file
	startCmd.Flags().StringP(tlsKeyFileFlagName, tlsKeyFileFlagShorthand, "", tlsKeyFileFlagUsage)

	// http timeout
	startCmd.Flags().StringP(httpTimeoutFlagName, "", "", httpTimeoutFlagUsage)

	// strict subject
	startCmd.Flags().StringP(strictSubjectFlagName, "", "", strictSubjectFlagUsage)
}

func getUserSetVar(cmd *cobra.Command, flagName, envKey string, isOptional bool) (string, error) {
	if cmd.Flags().Changed(flagName) {
		value, err := cmd.Flags().GetString(flagName)
		if err != nil {
			return "", fmt.Errorf(flagName+" flag not found: %s", err)
		}

		return value, nil
	}

	value, isSet := os.LookupEnv(envKey)

	if isOptional || isSet {
		return value, nil
	}

	return "", errors.New("Neither " + flagName + " (command line flag) nor " + envKey +
		" (environment variable) have been set.")
}

func setLogLevel(logLevel string) error {
	if logLevel != "" {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("failed to parse log level '%s' : %w", logLevel, err)
		}

		log.SetLevel("", level)

		logger.Infof("logger level set to %s", logLevel)
	}

	return nil
}

func validateAuthorizationBearerToken(w http.ResponseWriter, r *http.Request, token string) bool {
	actHdr := r.Header.Get("Authorization")
	expHdr := "Bearer " + token

	if subtle.ConstantTimeCompare([]byte(actHdr), []byte(expHdr)) != 1 {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte("Unauthorised.\n")) // nolint:gosec,errcheck

		return false
	}

	return true
}

func authorizationMiddleware(token string) mux.MiddlewareFunc {
	middleware := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if validateAuthorizationBearerToken(w, r, token) {
				next.ServeHTTP(w, r)
			}
		})
	}

	return middleware
}

func createRouter(parameters *restParameters) (http.Handler, error) {
	httpClient := &http.Client{Timeout: parameters.httpTimeout}

	documentLoader, err := jsonld.NewDocumentLoader(
		jsonld.WithRemoteDocumentLoader(jsonld.NewRemoteDocumentLoader(httpClient)))
	if err != nil {
		return nil, fmt.Errorf("create document loader: %w", err)
	}

	opts := []controller.Opt{
		controller.WithHTTPClient(httpClient),
		controller.WithJSONLDDocumentLoader(documentLoader),
	}

	if parameters.strictSubject {
		opts = append(opts, controller.WithStrictSubject())
	}

	// get all HTTP REST API handlers available for controller API
	handlers, err := controller.GetRESTHandlers(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to get rest service api : %w", err)
	}

	router := mux.NewRouter()

	if parameters.token != "" {
		router.Use(authorizationMiddleware(parameters.token))
	}

	for _, handler := range handlers {
		router.HandleFunc(handler.Path(), handler.Handle()).Methods(handler.Method())
	}

	return cors.New(
		cors.Options{
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodHead},
			AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With", "Authorization"},
		},
	).Handler(router), nil
}

func startServer(parameters *restParameters) error {
	if parameters.host == "" {
		return errMissingHost
	}

	handler, err := createRouter(parameters)
	if err != nil {
		return fmt.Errorf("failed to start vc rest on port [%s], %w", parameters.host, err)
	}

	logger.Infof("Starting vc rest on host [%s]", parameters.host)

	err = parameters.server.ListenAndServe(parameters.host, handler, parameters.tlsCertFile, parameters.tlsKeyFile)
	if err != nil {
		return fmt.Errorf("failed to start vc rest on port [%s], cause:  %w", parameters.host, err)
	}

	return nil
}
