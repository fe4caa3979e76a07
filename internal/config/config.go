package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"greeter/pkg/logger"
)

// Config represents the root configuration structure
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Greeting GreetingConfig `yaml:"greeting"`
}

// ServerConfig configures the HTTP server
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// GreetingConfig configures the greeting rendering. Template is an optional
// expression over the variable "name"; empty means the built-in rendering.
type GreetingConfig struct {
	Template string `yaml:"template"`
}

// Addr returns the host:port pair the server should bind to.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

const DefaultConfigTemplate = `server:
  host: "127.0.0.1"
  port: 8000
greeting:
  # Optional greeting template, evaluated with the request path segment bound
  # to "name". Leave empty for the default "Hello <name>" body.
  template: ""
`

// Load reads configuration from GREETER_CONFIG_PATH or ~/.config/greeter/config.yaml
// If the configuration file doesn't exist, it creates a template for the user.
func Load() (*Config, error) {
	configPath := os.Getenv("GREETER_CONFIG_PATH")
	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		configPath = filepath.Join(home, ".config", "greeter", "config.yaml")
	}

	// Check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		logger.Printf("Config file missing at %s, creating default template...", configPath)
		if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}
		if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate), 0644); err != nil {
			return nil, fmt.Errorf("failed to write default config template: %w", err)
		}
		return nil, fmt.Errorf("generated default config at %s. Please update it and restart", configPath)
	}

	// Read and parse
	f, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	var conf Config
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return nil, fmt.Errorf("failed to parse yaml config: %w", err)
	}

	if conf.Server.Host == "" {
		conf.Server.Host = "127.0.0.1"
	}
	if conf.Server.Port == 0 {
		conf.Server.Port = 8000
	}

	return &conf, nil
}
