/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package verifiable checks whether arbitrary JSON values have the shape of a Verifiable Credential
// or a Verifiable Presentation.
//
// The checks are structural only: proofs are not verified and JSON-LD contexts are not resolved.
// IsCredential and IsPresentation never fail; they are meant to guard untyped values received from
// remote services. ValidateCredential and ValidatePresentation report every check with a reason, and
// ParseCredential and ParsePresentation return typed values for documents that pass.
package verifiable

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Credential and presentation types.
const (
	TypeVerifiableCredential   = "VerifiableCredential"
	TypeSolidCredential        = "SolidCredential"
	TypeVerifiablePresentation = "VerifiablePresentation"
)

// DefaultCredentialTypes returns the types every issued credential carries.
// A fresh slice is returned on each call.
func DefaultCredentialTypes() []string {
	return []string{TypeVerifiableCredential, TypeSolidCredential}
}

// JSONObject is a decoded JSON object.
type JSONObject = map[string]interface{}

// normalize turns data into its generic JSON form through a JSON round trip, so nested typed values
// (structs, map[string]string) look the same as values decoded by encoding/json.
func normalize(data interface{}) (interface{}, error) {
	switch v := data.(type) {
	case nil:
		return nil, nil
	case []byte:
		data = json.RawMessage(v)
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}

	var doc interface{}

	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal document: %w", err)
	}

	return doc, nil
}

// decode fills out from a validated document.
func decode(doc JSONObject, out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: singleToSliceHook,
		Result:     out,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(doc)
}

// singleToSliceHook lets a single value stand for a one element list, as JSON-LD allows for "type"
// and "@context".
func singleToSliceHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if to.Kind() == reflect.Slice && from.Kind() != reflect.Slice && from.Kind() != reflect.Array {
		return []interface{}{data}, nil
	}

	return data, nil
}

// merge copies custom fields into obj without overwriting the known ones.
func merge(obj, custom JSONObject) JSONObject {
	for k, v := range custom {
		if _, exists := obj[k]; !exists {
			obj[k] = v
		}
	}

	return obj
}
