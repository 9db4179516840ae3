package logger

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds logging configuration
type Config struct {
	Level          string `yaml:"level"`
	ConsoleEnabled bool   `yaml:"console_enabled"`
	ConsoleFormat  string `yaml:"console_format"`
	FileEnabled    bool   `yaml:"file_enabled"`
	FilePath       string `yaml:"file_path"`
	FileFormat     string `yaml:"file_format"`
	FileMaxSizeMB  int    `yaml:"file_max_size_mb"`
	FileMaxBackups int    `yaml:"file_max_backups"`
	FileMaxAgeDays int    `yaml:"file_max_age_days"`
}

// LoggingConfig wraps the Config for YAML parsing
type LoggingConfig struct {
	Logging Config `yaml:"logging"`
}

// DefaultConfig returns the logging defaults. The console only shows
// warnings so log lines don't drown out the game on a shared terminal.
func DefaultConfig() Config {
	return Config{
		Level:          "WARNING",
		ConsoleEnabled: true,
		ConsoleFormat:  "text",
		FileEnabled:    false,
		FilePath:       "logs/adventure.log",
		FileFormat:     "text",
		FileMaxSizeMB:  10,
		FileMaxBackups: 5,
		FileMaxAgeDays: 30,
	}
}

// LoadConfig loads logging configuration from a YAML file
// and applies environment variable overrides
func LoadConfig(configPath string) (Config, error) {
	config := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err == nil {
			var loggingConfig LoggingConfig
			if err := yaml.Unmarshal(data, &loggingConfig); err != nil {
				return config, err
			}
			merge(&config, loggingConfig.Logging)
		}
		// Missing file means defaults
	}

	if logLevel := os.Getenv("ADVENTURE_LOG_LEVEL"); logLevel != "" {
		config.Level = logLevel
	}

	if consoleFormat := os.Getenv("ADVENTURE_LOG_CONSOLE_FORMAT"); consoleFormat != "" {
		config.ConsoleFormat = consoleFormat
	}

	if fileEnabled := os.Getenv("ADVENTURE_LOG_FILE_ENABLED"); fileEnabled != "" {
		if enabled, err := strconv.ParseBool(fileEnabled); err == nil {
			config.FileEnabled = enabled
		}
	}

	if filePath := os.Getenv("ADVENTURE_LOG_FILE_PATH"); filePath != "" {
		config.FilePath = filePath
	}

	return config, nil
}

// merge copies the fields set in loaded over the defaults
func merge(config *Config, loaded Config) {
	if loaded.Level != "" {
		config.Level = loaded.Level
	}
	config.ConsoleEnabled = loaded.ConsoleEnabled
	if loaded.ConsoleFormat != "" {
		config.ConsoleFormat = loaded.ConsoleFormat
	}
	config.FileEnabled = loaded.FileEnabled
	if loaded.FilePath != "" {
		config.FilePath = loaded.FilePath
	}
	if loaded.FileFormat != "" {
		config.FileFormat = loaded.FileFormat
	}
	if loaded.FileMaxSizeMB > 0 {
		config.FileMaxSizeMB = loaded.FileMaxSizeMB
	}
	if loaded.FileMaxBackups > 0 {
		config.FileMaxBackups = loaded.FileMaxBackups
	}
	if loaded.FileMaxAgeDays > 0 {
		config.FileMaxAgeDays = loaded.FileMaxAgeDays
	}
}
