// SPDX-License-Identifier: Apache-2.0

package http

import "errors"

var (
	// ErrNoSessionCookie is returned by the auth middleware when the
	// incoming request does not include a session cookie at all.
	ErrNoSessionCookie = errors.New("no session cookie")
)
