// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package render turns tasks and notes into terminal text.
//
// Every function is pure. User content always passes through [Sanitize] or
// [SanitizeLine] before it is interpolated, so titles and note bodies cannot
// inject escape sequences into the terminal.
package render
