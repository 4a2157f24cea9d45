package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-taskflow/internal/config"
	"github.com/MKhiriev/go-taskflow/internal/logger"
)

// sessionFileRecord is the on-disk form of the session cookie.
type sessionFileRecord struct {
	Name    string    `json:"name"`
	Value   string    `json:"value"`
	Expires time.Time `json:"expires,omitempty"`
}

type sessionFileStorage struct {
	path   string
	logger *logger.Logger
}

// NewSessionFileStorage returns a [SessionFileStorage] writing to cfg.SessionFile.
func NewSessionFileStorage(cfg config.ClientStorage, logger *logger.Logger) SessionFileStorage {
	return &sessionFileStorage{
		path:   cfg.SessionFile,
		logger: logger,
	}
}

// Load returns the saved cookie, or nil without error when nothing is saved
// or the saved cookie already expired.
func (s *sessionFileStorage) Load() (*http.Cookie, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading session file: %w", err)
	}

	var rec sessionFileRecord
	if err = json.Unmarshal(data, &rec); err != nil {
		s.logger.Warn().Err(err).Str("func", "*sessionFileStorage.Load").Msg("corrupted session file, ignoring")
		return nil, nil
	}
	if rec.Value == "" {
		return nil, nil
	}
	if !rec.Expires.IsZero() && !time.Now().Before(rec.Expires) {
		return nil, nil
	}

	return &http.Cookie{
		Name:    rec.Name,
		Value:   rec.Value,
		Path:    "/",
		Expires: rec.Expires,
	}, nil
}

// Save overwrites the session file with cookie. A nil cookie clears it.
func (s *sessionFileStorage) Save(cookie *http.Cookie) error {
	if cookie == nil {
		return s.Clear()
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("error creating session directory: %w", err)
	}

	data, err := json.Marshal(sessionFileRecord{
		Name:    cookie.Name,
		Value:   cookie.Value,
		Expires: cookie.Expires,
	})
	if err != nil {
		return fmt.Errorf("error encoding session: %w", err)
	}

	if err = os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("error writing session file: %w", err)
	}

	return nil
}

// Clear removes the session file. A missing file is not an error.
func (s *sessionFileStorage) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("error removing session file: %w", err)
	}
	return nil
}
