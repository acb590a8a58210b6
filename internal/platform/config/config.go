package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Storage driver names accepted by STORAGE_DRIVER / storage.driver.
const (
	DriverMemory   = "memory"
	DriverBolt     = "bolt"
	DriverPostgres = "postgres"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName   string
	HTTPPort      string
	StorageDriver string
	BoltPath      string
	PostgresDSN   string
}

type fileConfig struct {
	ServiceName string `yaml:"service_name"`
	HTTPPort    string `yaml:"http_port"`
	Storage     struct {
		Driver   string `yaml:"driver"`
		BoltPath string `yaml:"bolt_path"`
		Postgres string `yaml:"postgres_dsn"`
	} `yaml:"storage"`
}

// Load reads the optional YAML file named by CONFIG_FILE, then lets
// environment variables override any value from it.
func Load() (Config, error) {
	cfg := Config{
		ServiceName:   "anjett",
		HTTPPort:      "8080",
		StorageDriver: DriverMemory,
		BoltPath:      "anjett.db",
	}

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		var file fileConfig
		if err := yaml.Unmarshal(raw, &file); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
		applyString(&cfg.ServiceName, file.ServiceName)
		applyString(&cfg.HTTPPort, file.HTTPPort)
		applyString(&cfg.StorageDriver, file.Storage.Driver)
		applyString(&cfg.BoltPath, file.Storage.BoltPath)
		applyString(&cfg.PostgresDSN, file.Storage.Postgres)
	}

	applyString(&cfg.ServiceName, os.Getenv("SERVICE_NAME"))
	applyString(&cfg.HTTPPort, os.Getenv("HTTP_PORT"))
	applyString(&cfg.StorageDriver, os.Getenv("STORAGE_DRIVER"))
	applyString(&cfg.BoltPath, os.Getenv("BOLT_PATH"))
	applyString(&cfg.PostgresDSN, os.Getenv("POSTGRES_DSN"))

	cfg.StorageDriver = strings.ToLower(strings.TrimSpace(cfg.StorageDriver))
	switch cfg.StorageDriver {
	case DriverMemory, DriverBolt, DriverPostgres:
	default:
		return Config{}, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
	if cfg.StorageDriver == DriverPostgres && strings.TrimSpace(cfg.PostgresDSN) == "" {
		return Config{}, fmt.Errorf("storage driver %q requires POSTGRES_DSN", DriverPostgres)
	}
	return cfg, nil
}

func applyString(target *string, value string) {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		*target = trimmed
	}
}
