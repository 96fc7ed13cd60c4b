/*
Copyright 2024-2025 the Unikorn Authors.
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// DefaultBaseURL is the public QA deployment of the scooter service. The
// envDefault tag on TestConfig.BaseURL repeats it and must be kept in step.
const DefaultBaseURL = "http://qa-scooter.praktikum-services.ru"

type TestConfig struct {
	BaseURL         string        `env:"SCOOTER_API_BASE_URL" envDefault:"http://qa-scooter.praktikum-services.ru"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	SkipIntegration bool          `env:"SKIP_INTEGRATION" envDefault:"false"`
	UseFakeServer   bool          `env:"USE_FAKE_SERVER" envDefault:"false"`
	ValidateSchema  bool          `env:"VALIDATE_SCHEMA" envDefault:"true"`
	LogRequests     bool          `env:"LOG_REQUESTS" envDefault:"false"`
	LogResponses    bool          `env:"LOG_RESPONSES" envDefault:"false"`
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if a value cannot be parsed or the base URL is unusable.
func LoadTestConfig() (*TestConfig, error) {
	return LoadTestConfigFromFiles(
		"../../.env",    // From test/api/suites directory
		"../../../.env", // From test/contracts/consumer/scooter directory
		"../.env",       // From test/api directory
	)
}

// LoadTestConfigFromFiles is LoadTestConfig with an explicit .env search list,
// the first file that exists is loaded.
func LoadTestConfigFromFiles(envPaths ...string) (*TestConfig, error) {
	loadEnvFile(envPaths)

	config := &TestConfig{}

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// DefaultTestConfig returns the configuration used when nothing is set in the
// environment.
func DefaultTestConfig() *TestConfig {
	return &TestConfig{
		BaseURL:        DefaultBaseURL,
		RequestTimeout: 30 * time.Second,
		ValidateSchema: true,
	}
}

func loadEnvFile(envPaths []string) {
	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	// Existing environment variables win over the file.
	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

func validateConfig(config *TestConfig) error {
	u, err := url.Parse(config.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid SCOOTER_API_BASE_URL %q: %w", config.BaseURL, err)
	}

	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid SCOOTER_API_BASE_URL %q: scheme and host are required", config.BaseURL)
	}

	if config.RequestTimeout < 0 {
		return fmt.Errorf("invalid REQUEST_TIMEOUT %s: must not be negative", config.RequestTimeout)
	}

	return nil
}
