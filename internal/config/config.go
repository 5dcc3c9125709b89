// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults struct {
		Format  string `yaml:"format"`
		Verbose bool   `yaml:"verbose"`
		Debug   bool   `yaml:"debug"`
		NoColor bool   `yaml:"no_color"`
	} `yaml:"defaults"`

	// Validator configurations
	Validators struct {
		CreditCard struct {
			LuhnCheck bool `yaml:"luhn_check"`
		} `yaml:"credit_card"`
	} `yaml:"validators"`

	// NER provider configuration
	NER struct {
		// Provider selects the recognizer: "rules" (in-process
		// baseline), "http" (external service), or "off".
		Provider       string `yaml:"provider"`
		Endpoint       string `yaml:"endpoint"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"ner"`

	// Classifier configuration
	Classifier struct {
		// Endpoint of the external model server; empty selects the
		// keyword fallback.
		Endpoint       string `yaml:"endpoint"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"classifier"`

	// Storage configuration
	Storage struct {
		// Path to the SQLite database file. Overridden by the
		// MAILMASK_DB_PATH environment variable.
		Path string `yaml:"path"`
		// AccessKey guards retrieval of original text. Overridden by
		// the MAILMASK_ACCESS_KEY environment variable.
		AccessKey string `yaml:"access_key"`
	} `yaml:"storage"`

	// Web server configuration
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
}

// LoadConfig loads configuration from the specified file path
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	// Set default values
	config.Defaults.Format = "text"
	config.NER.Provider = "rules"
	config.NER.TimeoutSeconds = 10
	config.Classifier.TimeoutSeconds = 10
	config.Storage.Path = "emails.db"
	config.Server.Port = 8080

	// If no config file specified, return default config
	if configPath == "" {
		applyEnvOverrides(config)
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	applyEnvOverrides(config)

	if err := ValidateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// applyEnvOverrides lets deployment environments override the
// file-based storage settings without editing the config file.
func applyEnvOverrides(config *Config) {
	if path := os.Getenv("MAILMASK_DB_PATH"); path != "" {
		config.Storage.Path = path
	}
	if key := os.Getenv("MAILMASK_ACCESS_KEY"); key != "" {
		config.Storage.AccessKey = key
	}
}

// ValidateConfig checks the loaded configuration for inconsistencies
func ValidateConfig(config *Config) error {
	switch config.NER.Provider {
	case "", "rules", "http", "off":
	default:
		return fmt.Errorf("unknown ner provider %q (expected rules, http, or off)", config.NER.Provider)
	}

	if config.NER.Provider == "http" && config.NER.Endpoint == "" {
		return fmt.Errorf("ner provider %q requires an endpoint", config.NER.Provider)
	}

	if config.Server.Port < 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", config.Server.Port)
	}

	return nil
}

// FindConfigFile locates a configuration file in the standard locations
func FindConfigFile() string {
	// Check current directory first - prioritize config.yaml
	candidates := []string{
		"config.yaml",
		"mailmask.yaml",
		"mailmask.yml",
		".mailmask.yaml",
		".mailmask.yml",
	}
	for _, candidate := range candidates {
		if fileExists(candidate) {
			return candidate
		}
	}

	// Check the user config directory
	if configDir, err := os.UserConfigDir(); err == nil {
		candidate := configDir + "/mailmask/config.yaml"
		if fileExists(candidate) {
			return candidate
		}
	}

	return ""
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// LoadConfigOrDefault loads the given config file, searching standard
// locations when none is specified, and falls back to defaults on any
// error — callers should not crash on a missing/bad config file.
func LoadConfigOrDefault(configFile string) *Config {
	configPath := configFile
	if configPath == "" {
		configPath = FindConfigFile()
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		cfg, _ = LoadConfig("")
	}
	return cfg
}
