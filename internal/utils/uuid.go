package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// sessionIDBytes is the amount of randomness in a session identifier.
const sessionIDBytes = 32

// NewTraceID returns a time-ordered UUIDv7, or a random UUIDv4 if the clock
// source fails.
func NewTraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// NewSessionID returns 32 random bytes encoded as 64 hex characters.
func NewSessionID() (string, error) {
	b := make([]byte, sessionIDBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("error reading random bytes: %w", err)
	}

	return hex.EncodeToString(b), nil
}
