// SPDX-License-Identifier: MIT

package config

import (
	"encoding/json"
	"os"
)

// Sample returns a configuration with every section filled in.
func Sample() Config {
	return Config{
		LogLevel:       LogLevelInfo,
		Implementation: "optimized",
		MaxTasks:       0,
		Archive:        ConfigArchive{Compress: true},
		Database: Database{
			Sqlite: "linalg.db",
		},
	}
}

// CreateSample writes Sample to path as indented JSON.
func CreateSample(path string) error {
	raw, err := json.MarshalIndent(Sample(), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o600)
}
