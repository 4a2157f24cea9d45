// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings of the taskflow
// terminal client.
//
// The session layer uses them as error texts and the TUI shows them in
// alerts, confirmations and status lines, so the wording stays the same on
// every screen.
package app

const (
	// MsgFillAllFields is shown when login or password is left empty.
	MsgFillAllFields = "Please fill in all fields"

	// MsgTitleRequired is shown when a task or note title is blank.
	MsgTitleRequired = "Title is required"

	// MsgAccountCreated is shown after a successful registration.
	MsgAccountCreated = "Account created! Please sign in."

	// MsgNetworkError is the alert for transport failures, when no server
	// text is available.
	MsgNetworkError = "Network error: server is unreachable"

	// MsgRequestFailed is the alert for a non-2xx answer with an empty body.
	MsgRequestFailed = "Request failed"

	// MsgSessionExpired is shown when the backend rejects the session.
	MsgSessionExpired = "Session expired, please sign in again"

	// MsgCancelled is the text of a declined confirmation.
	MsgCancelled = "Cancelled"

	MsgConfirmDeleteTask    = "Delete this task?"
	MsgConfirmDeleteNote    = "Are you sure you want to delete this note?"
	MsgConfirmDeleteAccount = "Are you sure? This action cannot be undone!"

	// MsgNoContent is the preview of a note without content.
	MsgNoContent = "No content yet..."

	// MsgCopied is shown after note content was copied to the clipboard.
	MsgCopied = "Copied to clipboard"
)
