package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config конфигурация shredfile
type Config struct {
	Shred struct {
		Passes        int     `yaml:"passes"`
		Scheme        string  `yaml:"scheme"`
		ChunkSize     int     `yaml:"chunk_size"`
		MaxSpeedMBps  float64 `yaml:"max_speed_mbps"`
		ObfuscateName bool    `yaml:"obfuscate_name"`
	} `yaml:"shred"`

	Security struct {
		RequireConfirmation bool     `yaml:"require_confirmation"`
		ProtectedPaths      []string `yaml:"protected_paths"`
	} `yaml:"security"`

	Logging struct {
		Level      string `yaml:"level"`
		File       string `yaml:"file"`
		Structured bool   `yaml:"structured"`
	} `yaml:"logging"`

	Reporting struct {
		Enabled   bool   `yaml:"enabled"`
		LocalPath string `yaml:"local_path"`
	} `yaml:"reporting"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	cfg := &Config{}

	cfg.Shred.Passes = 3
	cfg.Shred.Scheme = "standard"
	cfg.Shred.ChunkSize = 64 * 1024 // 64KB
	cfg.Shred.MaxSpeedMBps = 0      // unlimited
	cfg.Shred.ObfuscateName = true

	cfg.Security.RequireConfirmation = true
	cfg.Security.ProtectedPaths = defaultProtectedPaths()

	cfg.Logging.Level = "INFO"
	cfg.Logging.File = ""
	cfg.Logging.Structured = true

	cfg.Reporting.Enabled = false
	cfg.Reporting.LocalPath = "./reports"

	return cfg
}

// Load загружает конфигурацию из файла
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := Validate(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Validate проверяет конфигурацию на валидность
func Validate(config *Config) error {
	if config.Shred.Passes < 1 {
		return fmt.Errorf("shred.passes must be >= 1, got %d", config.Shred.Passes)
	}
	if config.Shred.ChunkSize <= 0 {
		return fmt.Errorf("shred.chunk_size must be positive, got %d", config.Shred.ChunkSize)
	}
	if config.Shred.MaxSpeedMBps < 0 {
		return fmt.Errorf("shred.max_speed_mbps must not be negative")
	}

	for _, path := range config.Security.ProtectedPaths {
		cleaned := filepath.Clean(path)
		if cleaned == "" || cleaned == "." {
			return fmt.Errorf("invalid protected path: %q", path)
		}
	}

	return nil
}

// Save сохраняет конфигурацию в файл
func Save(config *Config, path string) error {
	if err := Validate(config); err != nil {
		return fmt.Errorf("cannot save invalid config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// defaultProtectedPaths возвращает системные пути, запрещённые к затиранию
func defaultProtectedPaths() []string {
	if runtime.GOOS == "windows" {
		systemDrive := os.Getenv("SystemDrive")
		if systemDrive == "" {
			systemDrive = "C:"
		}
		return []string{
			filepath.Join(systemDrive, "Windows"),
			filepath.Join(systemDrive, "Program Files"),
			filepath.Join(systemDrive, "Program Files (x86)"),
		}
	}

	return []string{"/bin", "/boot", "/etc", "/lib", "/sbin", "/usr"}
}
