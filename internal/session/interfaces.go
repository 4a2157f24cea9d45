package session

import "net/http"

// Screen is the top-level screen the client shows.
type Screen int

const (
	ScreenAuth Screen = iota
	ScreenMain
)

func (s Screen) String() string {
	if s == ScreenMain {
		return "main"
	}
	return "auth"
}

// Form is the auth form shown on ScreenAuth.
type Form int

const (
	FormLogin Form = iota
	FormRegister
)

// Confirmer asks the user to approve a destructive action.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to [Confirmer].
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool {
	return f(prompt)
}

// Approved is a Confirmer for actions the user already confirmed in the UI.
var Approved Confirmer = ConfirmFunc(func(string) bool { return true })

// CookieStore persists the session cookie between client runs.
// store.SessionFileStorage satisfies it.
type CookieStore interface {
	Load() (*http.Cookie, error)
	Save(cookie *http.Cookie) error
	Clear() error
}
