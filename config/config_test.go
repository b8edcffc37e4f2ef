package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvOverrides(t *testing.T) {
	t.Run("environment wins over defaults", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("MONGO_DB", "pets")
		t.Setenv("DB_DRIVER", "MEMORY")
		t.Setenv("STORAGE_DRIVER", "memory")
		t.Setenv("PUBLIC_BASE_URL", "https://pets.example.com/")
		t.Setenv("REQUEST_TIMEOUT", "2s")
		t.Setenv("CACHE_SIZE", "16")
		t.Setenv("LOG_DEV", "true")

		cfg := Default()
		require.NoError(t, cfg.applyEnvOverrides())

		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "pets", cfg.MongoDB)
		assert.Equal(t, DriverMemory, cfg.DBDriver)
		assert.Equal(t, StorageMemory, cfg.StorageDriver)
		assert.Equal(t, "https://pets.example.com", cfg.PublicBaseURL)
		assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
		assert.Equal(t, 16, cfg.CacheSize)
		assert.True(t, cfg.LogDev)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("bad duration is reported", func(t *testing.T) {
		t.Setenv("REQUEST_TIMEOUT", "soon")
		cfg := Default()
		assert.Error(t, cfg.applyEnvOverrides())
	})

	t.Run("bad cache size is reported", func(t *testing.T) {
		t.Setenv("CACHE_SIZE", "lots")
		cfg := Default()
		assert.Error(t, cfg.applyEnvOverrides())
	})
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "smartpet.yaml")
	body := []byte("port: \"9000\"\nmongo_db: shelter\nstorage_driver: local\nstorage_dir: /tmp/pets\ncache_size: 4\n")
	require.NoError(t, os.WriteFile(path, body, 0o600))

	cfg := Default()
	require.NoError(t, cfg.loadFile(path))

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "shelter", cfg.MongoDB)
	assert.Equal(t, StorageLocal, cfg.StorageDriver)
	assert.Equal(t, "/tmp/pets", cfg.StorageDir)
	assert.Equal(t, 4, cfg.CacheSize)
	// untouched keys keep their defaults
	assert.Equal(t, DriverMongo, cfg.DBDriver)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"unknown db driver":      func(c *Config) { c.DBDriver = "postgres" },
		"unknown storage driver": func(c *Config) { c.StorageDriver = "s3" },
		"gridfs without mongo": func(c *Config) {
			c.DBDriver = DriverMemory
			c.StorageDriver = StorageGridFS
		},
		"zero timeout":    func(c *Config) { c.RequestTimeout = 0 },
		"zero cache size": func(c *Config) { c.CacheSize = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	assert.NoError(t, Default().Validate())
}
