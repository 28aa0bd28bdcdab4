package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfigName = ".verification-report.json"

// ReportConfig is the optional JSON file supplying connection defaults.
// Flags set on the command line win over it.
type ReportConfig struct {
	TemporalHost string `json:"temporal_host"`
	Namespace    string `json:"namespace"`
}

func LoadConfig(path string) (*ReportConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec,G304
	if err != nil {
		return nil, err
	}

	cfg := &ReportConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// GetDefaultConfigPath is ~/.verification-report.json, or the working directory when HOME is unknown
func GetDefaultConfigPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, defaultConfigName)
	}
	return defaultConfigName
}
