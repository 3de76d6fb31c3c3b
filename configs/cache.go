package configs

import "path/filepath"

// Cache points at the badger root directory. Each binary opens its own
// subdirectory.
type Cache struct {
	Path     string `env:"CACHE_PATH" envDefault:"data/cache"`
	InMemory bool   `env:"CACHE_IN_MEMORY"`
}

// Dir returns the cache directory of a binary, or "" for an in-memory cache.
func (c Cache) Dir(binary string) string {
	if c.InMemory || c.Path == "" {
		return ""
	}
	return filepath.Join(c.Path, binary)
}
