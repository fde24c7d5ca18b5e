package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Server     ServerConfig     `json:"server"`
	API        APIConfig        `json:"api"`
	Session    SessionConfig    `json:"session"`
	Storage    StorageConfig    `json:"storage"`
	Monitoring MonitoringConfig `json:"monitoring"`
}

// ServerConfig holds web server configuration
type ServerConfig struct {
	Port            int           `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	IdleTimeout     time.Duration `json:"idle_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
	AllowedOrigins  []string      `json:"allowed_origins"`
}

// APIConfig describes the remote job-board API
type APIConfig struct {
	BaseURL string            `json:"base_url"`
	Timeout time.Duration     `json:"timeout"`
	Headers map[string]string `json:"headers"`
}

// SessionConfig holds identity settings. The API has no login, so a
// development employer id can stand in when the request carries none.
type SessionConfig struct {
	DefaultEmployerID int `json:"default_employer_id"`
}

// StorageConfig holds the submission log backend
type StorageConfig struct {
	SupabaseURL string `json:"supabase_url"`
	SupabaseKey string `json:"supabase_key"`
}

// MonitoringConfig holds logging configuration
type MonitoringConfig struct {
	LogLevel      string `json:"log_level"`
	LogFormat     string `json:"log_format"`
	LogFile       string `json:"log_file"`
	LogMaxSizeMB  int    `json:"log_max_size_mb"`
	LogMaxBackups int    `json:"log_max_backups"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            3000,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			AllowedOrigins:  []string{"*"},
		},
		API: APIConfig{
			BaseURL: "http://localhost:8080/api",
			Timeout: 15 * time.Second,
			Headers: map[string]string{},
		},
		Storage: StorageConfig{
			SupabaseURL: os.Getenv("SUPABASE_URL"),
			SupabaseKey: os.Getenv("SUPABASE_KEY"),
		},
		Monitoring: MonitoringConfig{
			LogLevel:      "info",
			LogFormat:     "text",
			LogMaxSizeMB:  50,
			LogMaxBackups: 3,
		},
	}
}

// LoadEnv loads variables from a .env file. A missing file is not an error.
func LoadEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// LoadConfig loads configuration from a JSON file and applies environment
// overrides. A missing file means defaults.
func LoadConfig(filename string) (*Config, error) {
	// Start with default config
	config := DefaultConfig()

	if filename != "" {
		if err := decodeFile(filename, config); err != nil {
			return nil, err
		}
	}

	if err := config.applyEnv(); err != nil {
		return nil, err
	}
	return config, nil
}

func decodeFile(filename string, config *Config) error {
	// If file doesn't exist, keep the defaults
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return nil
	}

	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return fmt.Errorf("failed to decode config file: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("JOBBOARD_API_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("JOBBOARD_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid JOBBOARD_PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("JOBBOARD_EMPLOYER_ID"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid JOBBOARD_EMPLOYER_ID %q: %w", v, err)
		}
		c.Session.DefaultEmployerID = id
	}
	if v := os.Getenv("JOBBOARD_LOG_LEVEL"); v != "" {
		c.Monitoring.LogLevel = v
	}
	if v := os.Getenv("SUPABASE_URL"); v != "" {
		c.Storage.SupabaseURL = v
	}
	if v := os.Getenv("SUPABASE_KEY"); v != "" {
		c.Storage.SupabaseKey = v
	}
	return nil
}

// SaveConfig saves configuration to a JSON file
func (c *Config) SaveConfig(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}

// Addr is the listen address of the web server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api base URL is required")
	}

	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api base URL %q must be an absolute URL", c.API.BaseURL)
	}

	if c.API.Timeout <= 0 {
		return fmt.Errorf("api timeout must be positive")
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535")
	}

	if c.Session.DefaultEmployerID < 0 {
		return fmt.Errorf("default employer id cannot be negative")
	}

	switch strings.ToLower(c.Monitoring.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Monitoring.LogLevel)
	}

	if c.Monitoring.LogMaxSizeMB < 0 || c.Monitoring.LogMaxBackups < 0 {
		return fmt.Errorf("log rotation settings cannot be negative")
	}

	switch c.Monitoring.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Monitoring.LogFormat)
	}

	return nil
}
