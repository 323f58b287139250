// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks the invariants shared by every config view: only the
// log level is checked here, the rest depends on the binary.
func (cfg *StructuredConfig) validate() error {
	return validateLogLevel(cfg.App.LogLevel)
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" || cfg.Storage.Files.BinaryDataDir == "" {
		return ErrInvalidStorageConfigs
	}

	return validateLogLevel(cfg.App.LogLevel)
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.Cache.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	return validateLogLevel(cfg.App.LogLevel)
}

func validateLogLevel(level string) error {
	if level == "" {
		return nil
	}
	if _, err := zerolog.ParseLevel(level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}
	return nil
}
