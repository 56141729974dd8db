package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const yearPlaceholder = "{year}"

// Config represents application configuration
type Config struct {
	Source    SourceConfig    `mapstructure:"source"`
	Output    OutputConfig    `mapstructure:"output"`
	Reference ReferenceConfig `mapstructure:"reference"`
	Log       LogConfig       `mapstructure:"log"`
}

// SourceConfig describes where the legal text is published
type SourceConfig struct {
	URL       string            `mapstructure:"url"`  // "{year}" is replaced, otherwise the year is appended
	Year      int               `mapstructure:"year"` // 0 means the current year
	Timeout   string            `mapstructure:"timeout"`
	UserAgent string            `mapstructure:"user_agent"`
	Cookies   map[string]string `mapstructure:"cookies"`
}

// OutputConfig represents where year maps are written
type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

// ReferenceConfig represents the isdayoff.ru cross-check
type ReferenceConfig struct {
	URL      string `mapstructure:"url"`
	CacheTTL string `mapstructure:"cache_ttl"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Load loads configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.workcal")
		v.AddConfigPath("/etc/workcal")
	}

	v.SetDefault("output.dir", ".")
	v.SetDefault("source.timeout", "15s")
	v.SetDefault("log.level", "info")

	// WORKCAL_SOURCE_URL overrides source.url
	v.SetEnvPrefix("workcal")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Source.URL == "" {
		return fmt.Errorf("source.url is required")
	}
	if c.Source.Year != 0 && (c.Source.Year < 2000 || c.Source.Year > 2099) {
		return fmt.Errorf("source.year must be between 2000 and 2099, got %d", c.Source.Year)
	}
	if c.Source.Timeout != "" {
		if _, err := time.ParseDuration(c.Source.Timeout); err != nil {
			return fmt.Errorf("source.timeout is not a duration: %w", err)
		}
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir is required")
	}

	return nil
}

// GetTimeout returns the fetch timeout
func (c *SourceConfig) GetTimeout() time.Duration {
	if c.Timeout == "" {
		return 15 * time.Second
	}
	duration, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 15 * time.Second
	}
	return duration
}

// GetYear returns the configured year, or the current one
func (c *SourceConfig) GetYear() int {
	if c.Year != 0 {
		return c.Year
	}
	return time.Now().Year()
}

// URLForYear returns the document URL for year
func (c *SourceConfig) URLForYear(year int) string {
	y := strconv.Itoa(year)
	if strings.Contains(c.URL, yearPlaceholder) {
		return strings.ReplaceAll(c.URL, yearPlaceholder, y)
	}
	return c.URL + y
}

// GetCacheTTL returns cache TTL duration
func (c *ReferenceConfig) GetCacheTTL() time.Duration {
	if c.CacheTTL == "" {
		return 24 * time.Hour
	}
	duration, err := time.ParseDuration(c.CacheTTL)
	if err != nil {
		return 24 * time.Hour
	}
	return duration
}

// ExpandEnvVars expands environment variables in config strings
func (c *Config) ExpandEnvVars() {
	c.Source.URL = os.ExpandEnv(c.Source.URL)
	for name, value := range c.Source.Cookies {
		c.Source.Cookies[name] = os.ExpandEnv(value)
	}
}
