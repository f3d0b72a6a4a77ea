// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// dotEnvFile is read from the working directory when present.
const dotEnvFile = ".env"

// loadEnviron merges process variables over those of the dotenv file at
// path. A missing file is not an error.
func loadEnviron(process []string, path string) (map[string]string, error) {
	environ := env.ToMap(process)

	fromFile, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return environ, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}

	for name, value := range fromFile {
		if _, set := environ[name]; !set {
			environ[name] = value
		}
	}

	return environ, nil
}

// parseEnv reads the env-tagged fields of [StructuredConfig] from environ.
func parseEnv(environ map[string]string) (*StructuredConfig, error) {
	cfg, err := env.ParseAsWithOptions[StructuredConfig](env.Options{Environment: environ})
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return &cfg, nil
}
