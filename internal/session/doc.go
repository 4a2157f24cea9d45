// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the client-side state of the taskflow terminal
// client: whether the user is signed in, which screen and auth form are
// shown, and the task and note lists last fetched from the backend.
//
// Every mutating call is sent as-is and followed by a full refetch of the
// affected list, so the local lists are always a copy of what the server
// returned most recently. Nothing is spliced or updated optimistically.
//
// A 401 on any list fetch logs the user out locally and returns
// [ErrSessionExpired].
package session
