// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks incoming credentials, tasks and notes before
// the server services act on them.
//
// A [Validator] may be asked to run only some of its checks by passing field
// names (see the Field* constants).
package validators

import "context"

// Validator validates an input value.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
