/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package ldcontext merges JSON-LD "@context" values.
package ldcontext

import (
	"reflect"
)

// CredentialsV1 is the base context of the W3C Verifiable Credentials data model.
const CredentialsV1 = "https://www.w3.org/2018/credentials/v1"

// Default returns the contexts every credential issuance request starts with.
// A fresh slice is returned on each call.
func Default() []interface{} {
	return []interface{}{CredentialsV1}
}

// Concatenate merges @context values into one ordered list without duplicates.
//
// Each argument is either a list of contexts, contributing its elements in order, or a single context
// (an IRI string or an inline context object). Nil arguments contribute nothing. The first occurrence
// of a value decides its position. Strings and other comparable values are equal when their values
// are; maps and slices are equal only when they are the same instance, so two identical inline
// contexts held in different maps are both kept.
func Concatenate(contexts ...interface{}) []interface{} {
	result := make([]interface{}, 0, len(contexts))
	seen := make(map[interface{}]struct{})

	add := func(ctx interface{}) {
		key := identity(ctx)
		if _, ok := seen[key]; ok {
			return
		}

		seen[key] = struct{}{}
		result = append(result, ctx)
	}

	for _, ctx := range contexts {
		if ctx == nil {
			continue
		}

		v := reflect.ValueOf(ctx)

		switch v.Kind() { //nolint:exhaustive
		case reflect.Slice, reflect.Array:
			for i := 0; i < v.Len(); i++ {
				add(v.Index(i).Interface())
			}
		default:
			add(ctx)
		}
	}

	return result
}

type nilContext struct{}

type instanceKey struct {
	typ reflect.Type
	ptr uintptr
	len int
}

// identity returns a comparable key for ctx: the value itself when it is comparable, or its
// instance address otherwise.
func identity(ctx interface{}) interface{} {
	if ctx == nil {
		return nilContext{}
	}

	v := reflect.ValueOf(ctx)

	switch v.Kind() { //nolint:exhaustive
	case reflect.Map, reflect.Func, reflect.Chan:
		return instanceKey{typ: v.Type(), ptr: v.Pointer()}
	case reflect.Slice:
		return instanceKey{typ: v.Type(), ptr: v.Pointer(), len: v.Len()}
	}

	if !v.Comparable() {
		// non-comparable structs and arrays have no identity of their own; keep every occurrence
		return &instanceKey{typ: v.Type()}
	}

	return ctx
}
