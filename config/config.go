package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"

	StorageGridFS = "gridfs"
	StorageLocal  = "local"
	StorageMemory = "memory"
)

type Config struct {
	Port           string        `yaml:"port"`
	MongoURI       string        `yaml:"mongo_uri"`
	MongoDB        string        `yaml:"mongo_db"`
	JWTSecret      string        `yaml:"jwt_secret"`
	DBDriver       string        `yaml:"db_driver"`
	StorageDriver  string        `yaml:"storage_driver"`
	StorageDir     string        `yaml:"storage_dir"`
	PublicBaseURL  string        `yaml:"public_base_url"`
	CORSOrigins    string        `yaml:"cors_origins"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	CacheSize      int           `yaml:"cache_size"`
	LogLevel       string        `yaml:"log_level"`
	LogDev         bool          `yaml:"log_dev"`
}

func Default() Config {
	return Config{
		Port:           "3000",
		MongoURI:       "mongodb://localhost:27017",
		MongoDB:        "smartpet",
		DBDriver:       DriverMongo,
		StorageDriver:  StorageGridFS,
		StorageDir:     "./uploads",
		PublicBaseURL:  "http://localhost:3000",
		CORSOrigins:    "*",
		RequestTimeout: 5 * time.Second,
		CacheSize:      128,
		LogLevel:       "info",
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Load reads .env (when present), then the YAML file named by SMARTPET_CONFIG,
// then lets environment variables override both.
func Load() (Config, error) {
	// a missing .env is normal outside of local development
	_ = godotenv.Load()

	cfg := Default()
	if path := os.Getenv("SMARTPET_CONFIG"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return cfg, err
		}
	}
	if err := cfg.applyEnvOverrides(); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	c.Port = getEnv("PORT", c.Port)
	c.MongoURI = getEnv("MONGO_URI", c.MongoURI)
	c.MongoDB = getEnv("MONGO_DB", c.MongoDB)
	c.JWTSecret = getEnv("JWT_SECRET", c.JWTSecret)
	c.DBDriver = strings.ToLower(getEnv("DB_DRIVER", c.DBDriver))
	c.StorageDriver = strings.ToLower(getEnv("STORAGE_DRIVER", c.StorageDriver))
	c.StorageDir = getEnv("STORAGE_DIR", c.StorageDir)
	c.PublicBaseURL = strings.TrimRight(getEnv("PUBLIC_BASE_URL", c.PublicBaseURL), "/")
	c.CORSOrigins = getEnv("CORS_ORIGINS", c.CORSOrigins)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)

	if v, ok := os.LookupEnv("REQUEST_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("REQUEST_TIMEOUT: %w", err)
		}
		c.RequestTimeout = d
	}
	if v, ok := os.LookupEnv("CACHE_SIZE"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CACHE_SIZE: %w", err)
		}
		c.CacheSize = n
	}
	if v, ok := os.LookupEnv("LOG_DEV"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("LOG_DEV: %w", err)
		}
		c.LogDev = b
	}
	return nil
}

func (c Config) Validate() error {
	switch c.DBDriver {
	case DriverMongo, DriverMemory:
	default:
		return fmt.Errorf("unknown DB_DRIVER %q", c.DBDriver)
	}
	switch c.StorageDriver {
	case StorageGridFS, StorageLocal, StorageMemory:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}
	if c.StorageDriver == StorageGridFS && c.DBDriver != DriverMongo {
		return fmt.Errorf("STORAGE_DRIVER=gridfs needs DB_DRIVER=mongo")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive")
	}
	if c.CacheSize <= 0 {
		return fmt.Errorf("CACHE_SIZE must be positive")
	}
	return nil
}
