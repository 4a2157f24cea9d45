// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ServerConfig is the backend view of [StructuredConfig].
type ServerConfig struct {
	Server  Server
	Storage DB
	App     App
	Workers Workers
}

// GetServerConfig builds and validates the backend configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newServerConfig(cfg)
}

func newServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		Server:  cfg.Server,
		Storage: cfg.Storage.DB,
		App:     cfg.App,
		Workers: cfg.Workers,
	}

	return serverCfg, serverCfg.validate()
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the backend base URL.
	HTTPAddress string
	// RequestTimeout is the timeout for outbound requests, zero means none.
	RequestTimeout time.Duration
}

// ClientStorage groups client storage settings.
type ClientStorage struct {
	// SessionFile persists the session cookie between client runs.
	SessionFile string
}

// ClientConfig is the client view of [StructuredConfig].
type ClientConfig struct {
	Adapter ClientAdapter
	Storage ClientStorage
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			SessionFile: cfg.Storage.SessionFile,
		},
	}

	return clientCfg, clientCfg.validate()
}
