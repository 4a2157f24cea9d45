// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the Bubble Tea front-end of the taskflow client.
//
// The auth flow ([TUI.AuthFlow]) routes between the login and register
// pages through [RootModel]. The main loop ([TUI.MainLoop]) shows tasks,
// notes and the account page, and draws modals and overlays on top.
// Every backend call goes through [ClientSession]; the models only keep
// cursors, inputs and overlay state.
package tui

import (
	"context"

	"github.com/MKhiriev/go-taskflow/internal/session"
	"github.com/MKhiriev/go-taskflow/models"
)

// ClientSession is the part of *session.Session the TUI uses.
type ClientSession interface {
	Login(ctx context.Context, login, password string) error
	Register(ctx context.Context, login, password string) error
	ShowLoginForm()
	ShowRegisterForm()
	Logout()
	DeleteAccount(ctx context.Context, c session.Confirmer) error

	AddTask(ctx context.Context, title string) error
	ToggleTask(ctx context.Context, task models.Task) error
	DeleteTask(ctx context.Context, task models.Task, c session.Confirmer) error
	AddNote(ctx context.Context, title, content string) error
	UpdateNote(ctx context.Context, id int64, title, content string) error
	DeleteNote(ctx context.Context, note models.Note, c session.Confirmer) error
	OpenNote(ctx context.Context, id int64) (models.Note, error)
	RefreshTasks(ctx context.Context) error
	RefreshNotes(ctx context.Context) error

	Screen() session.Screen
	Form() session.Form
	User() string
	PendingTasks() []models.Task
	CompletedTasks() []models.Task
	Notes() []models.Note
}
