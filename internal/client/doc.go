// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It restores the saved session, then alternates between the auth flow and
// the main loop of the terminal UI until the user quits.
package client
