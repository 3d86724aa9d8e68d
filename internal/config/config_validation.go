// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "golang.org/x/crypto/bcrypt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	if cfg.Storage.DB.Driver != DriverPostgres && cfg.Storage.DB.Driver != DriverSQLite {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.SessionDuration <= 0 || cfg.App.SessionCookieName == "" {
		return ErrInvalidAppConfigs
	}
	if cfg.App.BcryptCost != 0 && (cfg.App.BcryptCost < bcrypt.MinCost || cfg.App.BcryptCost > bcrypt.MaxCost) {
		return ErrInvalidAppConfigs
	}

	if cfg.Workers.SessionSweepInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
