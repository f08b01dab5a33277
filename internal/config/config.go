package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig is the application configuration, loaded from config.toml next to
// the executable.
type AppConfig struct {
	Server ServerConfig `toml:"server"`
	Sheet  SheetConfig  `toml:"sheet"`
}

// ServerConfig configures the review server.
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// SheetConfig configures how workbooks are read.
type SheetConfig struct {
	Name       string `toml:"name"`        // empty = first sheet
	HeaderRows int    `toml:"header_rows"` // leading rows to skip
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20333,
			DevMode: false,
		},
		Sheet: SheetConfig{
			Name:       "",
			HeaderRows: 1,
		},
	}
}

// GetExeDir returns the directory of the running executable.
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfig reads config.toml from the executable directory, falling back to
// defaults when the file is absent. Environment variables override the file.
func LoadConfig() (*AppConfig, error) {
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnvOverrides(config)
			return config, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	applyEnvOverrides(config)
	return config, nil
}

// applyEnvOverrides lets automation pin sheet settings without a file edit.
func applyEnvOverrides(config *AppConfig) {
	if v := os.Getenv("BARS_SHEET_NAME"); v != "" {
		config.Sheet.Name = v
	}
}

// SaveConfig writes the configuration back to config.toml.
func SaveConfig(config *AppConfig) error {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	configPath := filepath.Join(exeDir, "config.toml")

	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(configPath, data, 0644)
}
