package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong login or password")

	ErrSessionInvalid = errors.New("session is invalid")
	ErrSessionExpired = errors.New("session has expired")

	ErrSessionCreationFailed = errors.New("session creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
