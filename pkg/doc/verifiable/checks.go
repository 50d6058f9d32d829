/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verifiable

import (
	"net/url"
	"strings"
)

// checkDate records whether value is a string in the date grammar of ParseDate.
func checkDate(r *Result, name string, value interface{}, present bool) {
	if !present {
		r.fail(name, "missing")

		return
	}

	s, ok := value.(string)
	if !ok {
		r.fail(name, "not a string")

		return
	}

	if _, err := ParseDate(s); err != nil {
		r.fail(name, "%v", err)

		return
	}

	r.pass(name)
}

// IsURL reports whether s is an absolute URL. Web schemes must also name a host.
func IsURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		return false
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https", "ws", "wss", "ftp":
		return u.Host != ""
	default:
		return true
	}
}
