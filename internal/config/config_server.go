// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ServerConfig is the reference data store view of [StructuredConfig].
type ServerConfig struct {
	App     App
	Server  Server
	Storage ServerStorage
}

// ServerStorage groups the server's persistence settings.
type ServerStorage struct {
	DB    DB
	Files Files
}

const defaultServerRequestTimeout = 30 * time.Second

// GetServerConfig builds and validates the server config view.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newServerConfig(cfg)
}

func newServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		App:    cfg.App,
		Server: cfg.Server,
		Storage: ServerStorage{
			DB:    cfg.Storage.DB,
			Files: cfg.Storage.Files,
		},
	}
	if serverCfg.Server.RequestTimeout == 0 {
		serverCfg.Server.RequestTimeout = defaultServerRequestTimeout
	}

	return serverCfg, serverCfg.validate()
}
