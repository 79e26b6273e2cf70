package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net"
	neturl "net/url"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort   = 5000
	defaultEnv    = "development"
	defaultDBHost = "127.0.0.1"
	defaultDBPort = 27017
	defaultDBName = "seva_mitra"
)

// AppConfig holds runtime startup configuration loaded from YAML,
// overridable by the PORT and MONGODB_URI environment variables.
type AppConfig struct {
	Port     int                   `yaml:"port"`
	Env      string                `yaml:"env"` // "development" | "production"
	Database DatabaseRuntimeConfig `yaml:"database"`
}

type DatabaseRuntimeConfig struct {
	URI  string `yaml:"uri"`
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	Name string `yaml:"name"`
}

type rawAppConfig struct {
	Port       int               `yaml:"port"`
	Env        string            `yaml:"env"`
	NodeEnv    string            `yaml:"node_env"`
	MongoDBURI string            `yaml:"mongodb_uri"`
	Database   rawDatabaseConfig `yaml:"database"`
	DBName     string            `yaml:"db_name"`
}

type rawDatabaseConfig struct {
	URI  string `yaml:"uri"`
	URL  string `yaml:"url"`
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	Name string `yaml:"name"`
}

// Load reads the YAML config at configPath. A missing file at the default
// path is not an error; the built-in defaults (local Mongo instance) apply.
func Load(configPath string) (*AppConfig, error) {
	path := strings.TrimSpace(configPath)
	if path == "" {
		path = DefaultConfigPath
	}

	cfg := defaultAppConfig()

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && path == DefaultConfigPath {
			applyEnvOverrides(&cfg)
			return &cfg, nil
		}
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	raw := rawAppConfig{}
	if err := decoder.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config file %q: %w", path, err)
	}

	applyRawAppConfig(&cfg, raw)
	applyEnvOverrides(&cfg)

	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d in %q, expected 1-65535", cfg.Port, path)
	}
	if cfg.Database.Port < 1 || cfg.Database.Port > 65535 {
		return nil, fmt.Errorf("invalid database.port %d in %q, expected 1-65535", cfg.Database.Port, path)
	}

	return &cfg, nil
}

func defaultAppConfig() AppConfig {
	return AppConfig{
		Port: defaultPort,
		Env:  defaultEnv,
		Database: DatabaseRuntimeConfig{
			Host: defaultDBHost,
			Port: defaultDBPort,
			Name: defaultDBName,
		},
	}
}

func applyRawAppConfig(cfg *AppConfig, raw rawAppConfig) {
	if raw.Port != 0 {
		cfg.Port = raw.Port
	}
	if v := strings.TrimSpace(raw.Env); v != "" {
		cfg.Env = v
	}
	if v := strings.TrimSpace(raw.NodeEnv); v != "" {
		cfg.Env = v
	}

	db := cfg.Database
	if v := strings.TrimSpace(raw.Database.URI); v != "" {
		db.URI = v
	}
	if v := strings.TrimSpace(raw.Database.URL); v != "" {
		db.URI = v
	}
	if v := strings.TrimSpace(raw.MongoDBURI); v != "" {
		db.URI = v
	}
	if v := strings.TrimSpace(raw.Database.Host); v != "" {
		db.Host = v
	}
	if raw.Database.Port != 0 {
		db.Port = raw.Database.Port
	}
	if v := strings.TrimSpace(raw.Database.Name); v != "" {
		db.Name = v
	}
	if v := strings.TrimSpace(raw.DBName); v != "" {
		db.Name = v
	}
	cfg.Database = db

	cfg.Env = normalizeEnv(cfg.Env)
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			cfg.Port = port
		}
	}
	if v := strings.TrimSpace(os.Getenv("MONGODB_URI")); v != "" {
		cfg.Database.URI = v
	}
}

// URIValue returns the connection string, built from host/port when no
// explicit URI was configured.
func (c DatabaseRuntimeConfig) URIValue() string {
	if v := normalizeMongoRawURI(c.URI); v != "" {
		return v
	}

	host := strings.TrimSpace(c.Host)
	if host == "" {
		host = defaultDBHost
	}
	port := c.Port
	if port == 0 {
		port = defaultDBPort
	}

	u := &neturl.URL{
		Scheme: "mongodb",
		Host:   net.JoinHostPort(host, strconv.Itoa(port)),
	}
	return u.String()
}

// DatabaseName extracts the database name, preferring the path component
// of an explicit URI over the configured name.
func (c DatabaseRuntimeConfig) DatabaseName() string {
	if uri := normalizeMongoRawURI(c.URI); uri != "" {
		if u, err := neturl.Parse(uri); err == nil {
			if name := strings.Trim(u.Path, "/"); name != "" {
				return name
			}
		}
	}
	if v := strings.TrimSpace(c.Name); v != "" {
		return v
	}
	return defaultDBName
}

func normalizeMongoRawURI(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "mongodb://") || strings.HasPrefix(trimmed, "mongodb+srv://") {
		return trimmed
	}
	return "mongodb://" + trimmed
}

func normalizeEnv(env string) string {
	trimmed := strings.ToLower(strings.TrimSpace(env))
	if trimmed == "" {
		return defaultEnv
	}
	return trimmed
}

func (c *AppConfig) IsDev() bool {
	return strings.EqualFold(c.Env, defaultEnv)
}
