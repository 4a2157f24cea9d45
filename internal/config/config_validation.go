// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

const (
	minBcryptCost = 4
	maxBcryptCost = 31
)

// validate checks that the backend configuration can be used at startup.
func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.SessionTTL <= 0 || cfg.App.BcryptCost < minBcryptCost || cfg.App.BcryptCost > maxBcryptCost {
		return ErrInvalidAppConfigs
	}

	if cfg.Workers.SessionCleanupInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// validate checks the client configuration. A zero request timeout is valid
// and means the transport default.
func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.SessionFile == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
