package security

import (
	"fmt"
	"path/filepath"
	"strings"

	"shredfile/internal/config"
)

// Checks rejects shred targets under protected system roots before any
// destructive work starts.
func Checks(cfg *config.Config, path string) error {
	if cfg == nil {
		cfg = config.Default()
	}

	if IsProtected(cfg, path) {
		return fmt.Errorf("refusing to shred protected path: %s", path)
	}

	return nil
}

// IsProtected проверяет, находится ли путь внутри защищённой директории
func IsProtected(cfg *config.Config, path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		// Путь не резолвится - считаем его защищённым
		return true
	}
	abs = filepath.Clean(abs)

	for _, root := range cfg.Security.ProtectedPaths {
		cleanRoot := filepath.Clean(root)
		if abs == cleanRoot {
			return true
		}
		if strings.HasPrefix(abs, cleanRoot+string(filepath.Separator)) {
			return true
		}
	}

	return false
}
