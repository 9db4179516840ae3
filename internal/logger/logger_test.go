package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARNING", slog.LevelWarn},
		{"WARN", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"invalid", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := parseLogLevel(tt.input)
			if result != tt.expected {
				t.Errorf("parseLogLevel(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig("nonexistent.yaml")
	if err != nil {
		t.Fatalf("LoadConfig returned error for missing file: %v", err)
	}

	if config.Level != "WARNING" {
		t.Errorf("Default level = %q, want %q", config.Level, "WARNING")
	}
	if !config.ConsoleEnabled {
		t.Error("Default ConsoleEnabled = false, want true")
	}
	if config.FileEnabled {
		t.Error("Default FileEnabled = true, want false")
	}
	if config.FilePath != "logs/adventure.log" {
		t.Errorf("Default FilePath = %q, want %q", config.FilePath, "logs/adventure.log")
	}
}

func TestLoadConfigFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logging.yaml")
	yamlContent := `logging:
  level: DEBUG
  console_enabled: false
  console_format: json
  file_enabled: true
  file_path: test.log
  file_max_size_mb: 20
`
	if err := os.WriteFile(path, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if config.Level != "DEBUG" {
		t.Errorf("Level = %q, want %q", config.Level, "DEBUG")
	}
	if config.ConsoleEnabled {
		t.Error("ConsoleEnabled = true, want false")
	}
	if config.ConsoleFormat != "json" {
		t.Errorf("ConsoleFormat = %q, want %q", config.ConsoleFormat, "json")
	}
	if !config.FileEnabled {
		t.Error("FileEnabled = false, want true")
	}
	if config.FilePath != "test.log" {
		t.Errorf("FilePath = %q, want %q", config.FilePath, "test.log")
	}
	if config.FileMaxSizeMB != 20 {
		t.Errorf("FileMaxSizeMB = %d, want %d", config.FileMaxSizeMB, 20)
	}
	// Unset values keep their defaults
	if config.FileMaxBackups != 5 {
		t.Errorf("FileMaxBackups = %d, want %d", config.FileMaxBackups, 5)
	}
}

func TestLoadConfigMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logging.yaml")
	if err := os.WriteFile(path, []byte("logging: [not, a, map"), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err == nil {
		t.Error("expected parse error")
	}
	if config.Level != "WARNING" {
		t.Errorf("expected defaults on error, got level %q", config.Level)
	}
}

func TestEnvVarOverride(t *testing.T) {
	t.Setenv("ADVENTURE_LOG_LEVEL", "ERROR")
	t.Setenv("ADVENTURE_LOG_CONSOLE_FORMAT", "json")
	t.Setenv("ADVENTURE_LOG_FILE_ENABLED", "true")
	t.Setenv("ADVENTURE_LOG_FILE_PATH", "/custom/path.log")

	config, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if config.Level != "ERROR" {
		t.Errorf("Level = %q, want %q (from env var)", config.Level, "ERROR")
	}
	if config.ConsoleFormat != "json" {
		t.Errorf("ConsoleFormat = %q, want %q (from env var)", config.ConsoleFormat, "json")
	}
	if !config.FileEnabled {
		t.Error("FileEnabled = false, want true (from env var)")
	}
	if config.FilePath != "/custom/path.log" {
		t.Errorf("FilePath = %q, want %q (from env var)", config.FilePath, "/custom/path.log")
	}
}

func TestTextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger = slog.New(newHandler(&buf, "text", slog.LevelInfo))

	Info("Test message", "key", "value")
	Debug("This should not appear")

	output := buf.String()
	if !strings.Contains(output, "Test message") {
		t.Errorf("Output missing INFO message: %s", output)
	}
	if !strings.Contains(output, "key=value") {
		t.Errorf("Output missing structured field: %s", output)
	}
	if strings.Contains(output, "This should not appear") {
		t.Errorf("Output contains DEBUG message when level is INFO: %s", output)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger = slog.New(newHandler(&buf, "json", slog.LevelInfo))

	Info("JSON test", "room", 3, "command", "NORTH")

	output := buf.String()
	if !strings.Contains(output, `"msg":"JSON test"`) {
		t.Errorf("Output missing JSON message field: %s", output)
	}
	if !strings.Contains(output, `"room":3`) {
		t.Errorf("Output missing numeric JSON field: %s", output)
	}
	if !strings.Contains(output, `"command":"NORTH"`) {
		t.Errorf("Output missing JSON field: %s", output)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger = slog.New(newHandler(&buf, "text", slog.LevelWarn))

	Debug("Debug message")
	Info("Info message")
	Warning("Warning message")
	Error("Error message")

	output := buf.String()
	if strings.Contains(output, "Debug message") || strings.Contains(output, "Info message") {
		t.Errorf("messages below WARN leaked: %s", output)
	}
	if !strings.Contains(output, "Warning message") || !strings.Contains(output, "Error message") {
		t.Errorf("expected WARN and ERROR messages: %s", output)
	}
}

func TestMultiHandler(t *testing.T) {
	var buf1, buf2 bytes.Buffer

	handler1 := slog.NewTextHandler(&buf1, &slog.HandlerOptions{Level: slog.LevelInfo})
	handler2 := slog.NewTextHandler(&buf2, &slog.HandlerOptions{Level: slog.LevelError})
	logger = slog.New(newMultiHandler(handler1, handler2))

	Info("Multi-handler test", "field", "value")

	if !strings.Contains(buf1.String(), "field=value") {
		t.Error("First handler did not receive message")
	}
	if buf2.Len() != 0 {
		t.Errorf("Second handler should filter INFO, got %s", buf2.String())
	}
}

func TestInitializeFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	err := Initialize(Config{
		Level:          "INFO",
		ConsoleEnabled: false,
		FileEnabled:    true,
		FilePath:       path,
		FileFormat:     "text",
		FileMaxSizeMB:  1,
	})
	if err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	Info("written to file", "room", 1)
	if err := Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "written to file") {
		t.Errorf("log file missing message: %s", data)
	}
}

func TestNilLogger(t *testing.T) {
	logger = nil

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Logging with nil logger caused panic: %v", r)
		}
	}()

	Debug("debug")
	Info("info")
	Warning("warning")
	Error("error")
}
