package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"

	"github.com/gpessoni/pokedex/internal/pokeapi"
)

// Config holds all application configuration
type Config struct {
	Backend BackendConfig `mapstructure:"backend"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// BackendConfig holds the ownership/auth backend configuration
type BackendConfig struct {
	URL string `mapstructure:"url"`
}

// CatalogConfig holds the external catalog configuration
type CatalogConfig struct {
	URL      string `mapstructure:"url"`       // PokeAPI base URL
	PageSize int    `mapstructure:"page_size"` // Items per browse page
}

// UIConfig holds UI configuration
type UIConfig struct {
	ToastSeconds int `mapstructure:"toast_seconds"` // Toast auto-expiry
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Backend: BackendConfig{
			URL: "http://localhost:3000/api",
		},
		Catalog: CatalogConfig{
			URL:      pokeapi.DefaultBaseURL,
			PageSize: 20,
		},
		UI: UIConfig{
			ToastSeconds: 5,
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "pokedex", "pokedex.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "pokedex", "pokedex.log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "pokedex")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "pokedex")
	}
}

// DefaultDataPath returns the directory for durable client state (the
// session database).
func DefaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "pokedex")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "pokedex")
	}
}

// LoadConfig loads configuration from file and environment
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(defaultConfigPath())
	viper.AddConfigPath(".")

	// Environment variable overrides
	viper.SetEnvPrefix("POKEDEX")
	viper.AutomaticEnv()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the current configuration to file
func SaveConfig(cfg *Config) error {
	configPath := defaultConfigPath()
	if err := os.MkdirAll(configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.Set("backend.url", cfg.Backend.URL)
	viper.Set("catalog.url", cfg.Catalog.URL)
	viper.Set("catalog.page_size", cfg.Catalog.PageSize)
	viper.Set("ui.toast_seconds", cfg.UI.ToastSeconds)
	viper.Set("logging.file", cfg.Logging.File)
	viper.Set("logging.level", cfg.Logging.Level)

	configFile := filepath.Join(configPath, "config.yaml")
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
