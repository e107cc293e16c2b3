package config

import (
	"fmt"
)

// ApplyProfile применяет именованный профиль затирания к конфигурации
func ApplyProfile(cfg *Config, profile string) error {
	switch profile {
	case "quick":
		cfg.Shred.Passes = 1
		cfg.Shred.Scheme = "random"
		cfg.Shred.ChunkSize = 1024 * 1024 // 1MB
		cfg.Shred.MaxSpeedMBps = 0
	case "standard":
		cfg.Shred.Passes = 3
		cfg.Shred.Scheme = "standard"
		cfg.Shred.ChunkSize = 64 * 1024 // 64KB
	case "dod":
		cfg.Shred.Passes = 3
		cfg.Shred.Scheme = "dod5220"
		cfg.Shred.ChunkSize = 64 * 1024 // 64KB
	case "paranoid":
		cfg.Shred.Passes = 7
		cfg.Shred.Scheme = "standard"
		cfg.Shred.ChunkSize = 64 * 1024 // 64KB
		cfg.Shred.MaxSpeedMBps = 50 // keep sustained load off the device
	default:
		return fmt.Errorf("unknown profile: %s", profile)
	}
	return nil
}
