package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config fields carry both toml tags (for the example file) and mapstructure
// tags: viper decodes through mapstructure, which ignores the toml tags, so
// snake_case keys only load when the mapstructure tag names them too.
type Config struct {
	Network   NetworkConfig   `toml:"network" mapstructure:"network"`
	Browser   BrowserConfig   `toml:"browser" mapstructure:"browser"`
	Rendering RenderingConfig `toml:"rendering" mapstructure:"rendering"`
	Output    OutputConfig    `toml:"output" mapstructure:"output"`
	Sync      SyncConfig      `toml:"sync" mapstructure:"sync"`
	Logging   LoggingConfig   `toml:"logging" mapstructure:"logging"`
}

type NetworkConfig struct {
	Timeout      int    `toml:"timeout" mapstructure:"timeout"`
	UserAgent    string `toml:"user_agent" mapstructure:"user_agent"`
	BrowserAgent string `toml:"browser_agent" mapstructure:"browser_agent"`
	Delay        int    `toml:"delay" mapstructure:"delay"`
}

type BrowserConfig struct {
	Default string `toml:"default" mapstructure:"default"`
}

type RenderingConfig struct {
	EnableJavaScript string `toml:"enable_javascript" mapstructure:"enable_javascript"`
	JSTimeout        int    `toml:"js_timeout" mapstructure:"js_timeout"`
	WaitForSelector  string `toml:"wait_for_selector" mapstructure:"wait_for_selector"`
}

type OutputConfig struct {
	DefaultFormat    string `toml:"default_format" mapstructure:"default_format"`
	IncludeStatement bool   `toml:"include_statement" mapstructure:"include_statement"`
	Separator        string `toml:"separator" mapstructure:"separator"`
}

type SyncConfig struct {
	BaseURL   string `toml:"base_url" mapstructure:"base_url"`
	PseudoIDs bool   `toml:"pseudo_ids" mapstructure:"pseudo_ids"`
}

type LoggingConfig struct {
	Level string `toml:"level" mapstructure:"level"`
	File  string `toml:"file" mapstructure:"file"`
}

func Default() *Config {
	return &Config{
		Network: NetworkConfig{
			Timeout:      30,
			UserAgent:    "",
			BrowserAgent: "",
			Delay:        0,
		},
		Browser: BrowserConfig{
			Default: "auto",
		},
		Rendering: RenderingConfig{
			EnableJavaScript: "auto",
			JSTimeout:        15,
			WaitForSelector:  "",
		},
		Output: OutputConfig{
			DefaultFormat:    "json",
			IncludeStatement: false,
			Separator:        "---",
		},
		Sync: SyncConfig{
			BaseURL:   "",
			PseudoIDs: false,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
	}
}

func Load(configFile string) (*Config, error) {
	cfg := Default()

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		configHome := os.Getenv("XDG_CONFIG_HOME")
		if configHome == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return cfg, fmt.Errorf("error finding home directory: %w", err)
			}
			configHome = filepath.Join(home, ".config")
		}

		configDir := filepath.Join(configHome, "questlog")
		viper.AddConfigPath(configDir)
		viper.SetConfigType("toml")
		viper.SetConfigName("config")

		// Create config directory if it doesn't exist
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return cfg, fmt.Errorf("error creating config directory: %w", err)
		}
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("QUESTLOG")

	if err := viper.ReadInConfig(); err != nil {
		// Config file not found is not an error, we'll use defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return cfg, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return cfg, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return cfg, nil
}

func (c *Config) CreateExampleConfig(configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	exampleContent := `# questlog configuration file

[network]
# Request settings
timeout = 30              # seconds
user_agent = ""           # Custom user agent (empty = rotate modern defaults)
browser_agent = ""        # Browser agent type (auto|chrome|firefox|safari)

# Rate limiting
delay = 0                 # seconds between requests (for multiple URLs)

[browser]
# Browser to pull session cookies from. Solved status is only visible
# to a logged-in session, so pick the browser you use for the sites.
default = "auto"          # auto, chrome, firefox, safari

[rendering]
# JavaScript rendering for pages served as empty React shells
enable_javascript = "auto"  # auto, always, never
js_timeout = 15             # seconds to wait for JS execution
wait_for_selector = ""      # CSS selector to wait for (optional)

[output]
# Default output format
default_format = "json"   # json, text

# Include the full problem statement text in the output
include_statement = false

# Separator between multiple URL outputs in text format
separator = "---"

[sync]
# Backend base URL (empty = built-in default)
base_url = ""

# Generate a deterministic number for platforms that have none
pseudo_ids = false

[logging]
level = "info"            # debug, info, warn, error
file = ""                 # Log file path (empty = stderr only)
`

	return os.WriteFile(configPath, []byte(exampleContent), 0644)
}
