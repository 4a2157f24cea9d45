// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrNoSessionCookie is returned by requireSession when the request
	// carries no session cookie.
	ErrNoSessionCookie = errors.New("login required")

	// ErrInvalidJSON is reported for request bodies that fail to decode.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrJSONContentTypeRequired is reported when a JSON endpoint receives a
	// body of another media type.
	ErrJSONContentTypeRequired = errors.New("request body must be application/json")

	// ErrInvalidID is reported when the {id} path segment is not a positive integer.
	ErrInvalidID = errors.New("invalid id")
)
