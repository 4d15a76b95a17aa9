package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	UI      UIConfig      `mapstructure:"ui"`
	Viewer  ViewerConfig  `mapstructure:"viewer"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig holds artwork service configuration
type APIConfig struct {
	BaseURL           string        `mapstructure:"base_url"`
	IIIFURL           string        `mapstructure:"iiif_url"`
	UserAgent         string        `mapstructure:"user_agent"`
	Timeout           time.Duration `mapstructure:"timeout"`
	RequestsPerSecond int           `mapstructure:"requests_per_second"` // hydrate pacing, 0 = unlimited
}

// UIConfig holds UI configuration
type UIConfig struct {
	Debounce    time.Duration `mapstructure:"debounce"`
	GridColumns int           `mapstructure:"grid_columns"`
}

// ViewerConfig holds the external image viewer configuration
type ViewerConfig struct {
	Command string   `mapstructure:"command"`
	Args    []string `mapstructure:"args"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:           "https://api.artic.edu/api/v1",
			IIIFURL:           "https://www.artic.edu/iiif/2",
			UserAgent:         "artic-tui/1.0",
			Timeout:           30 * time.Second,
			RequestsPerSecond: 10,
		},
		UI: UIConfig{
			Debounce:    800 * time.Millisecond,
			GridColumns: 2,
		},
		Viewer: ViewerConfig{
			Command: "",
			Args:    []string{},
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
		return filepath.Join(os.Getenv("APPDATA"), "artic", "artic.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "artic", "artic.log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "artic")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "artic")
	}
}

// newViper creates a viper instance bound to the default search paths and
// ARTIC_* environment variables
func newViper(configDirs ...string) *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, dir := range configDirs {
		v.AddConfigPath(dir)
	}

	// Environment variable overrides (ARTIC_API_BASE_URL, ARTIC_UI_DEBOUNCE, ...)
	v.SetEnvPrefix("ARTIC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, DefaultConfig())
	return v
}

// setDefaults registers every key so AutomaticEnv can see it during Unmarshal
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("api.base_url", cfg.API.BaseURL)
	v.SetDefault("api.iiif_url", cfg.API.IIIFURL)
	v.SetDefault("api.user_agent", cfg.API.UserAgent)
	v.SetDefault("api.timeout", cfg.API.Timeout)
	v.SetDefault("api.requests_per_second", cfg.API.RequestsPerSecond)

	v.SetDefault("ui.debounce", cfg.UI.Debounce)
	v.SetDefault("ui.grid_columns", cfg.UI.GridColumns)

	v.SetDefault("viewer.command", cfg.Viewer.Command)
	v.SetDefault("viewer.args", cfg.Viewer.Args)

	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)
}

// LoadConfig loads configuration from file and environment
func LoadConfig() (*Config, error) {
	return loadConfig(newViper(defaultConfigPath(), "."))
}

func loadConfig(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logFile, err := expandHome(cfg.Logging.File)
	if err != nil {
		return nil, err
	}
	cfg.Logging.File = logFile

	return cfg, nil
}

// expandHome expands a leading ~ to the user's home directory
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// Validate checks values that would break the UI or client
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url must not be empty")
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must not be negative")
	}
	if c.UI.Debounce < 0 {
		return fmt.Errorf("ui.debounce must not be negative")
	}
	if c.UI.GridColumns < 1 {
		c.UI.GridColumns = 1
	}
	return nil
}

// SaveConfig writes cfg to the default config file
func SaveConfig(cfg *Config) (string, error) {
	return saveConfig(cfg, defaultConfigPath())
}

func saveConfig(cfg *Config, configPath string) (string, error) {
	// Ensure config directory exists
	if err := os.MkdirAll(configPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()

	// Set fields individually to ensure correct key names (snake_case)
	v.Set("api.base_url", cfg.API.BaseURL)
	v.Set("api.iiif_url", cfg.API.IIIFURL)
	v.Set("api.user_agent", cfg.API.UserAgent)
	v.Set("api.timeout", cfg.API.Timeout.String())
	v.Set("api.requests_per_second", cfg.API.RequestsPerSecond)

	v.Set("ui.debounce", cfg.UI.Debounce.String())
	v.Set("ui.grid_columns", cfg.UI.GridColumns)

	v.Set("viewer.command", cfg.Viewer.Command)
	v.Set("viewer.args", cfg.Viewer.Args)

	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)

	configFile := filepath.Join(configPath, "config.yaml")
	if err := v.WriteConfigAs(configFile); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return configFile, nil
}
