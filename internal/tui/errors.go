package tui

import "errors"

// ErrUserQuit is returned by the flows when the user quit the program.
var ErrUserQuit = errors.New("user quit")
