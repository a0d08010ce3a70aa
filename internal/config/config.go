package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Logger     LoggerConfig
	Catalog    CatalogConfig
	Media      MediaConfig
	Probe      ProbeConfig
	Database   DatabaseConfig
	SQLite     SQLiteConfig
	Kubernetes KubernetesConfig
	CORS       CORSConfig
	Session    SessionConfig
	I18n       I18nConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type LoggerConfig struct {
	Level  string
	Format string
}

// CatalogConfig selects where the authored dataset is read from.
type CatalogConfig struct {
	Source string // static | file | postgres | sqlite | configmap
	File   string
}

type MediaConfig struct {
	Root      string
	URLPrefix string
}

type ProbeConfig struct {
	Timeout     time.Duration
	Concurrency int
	MaxBytes    int64
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type SQLiteConfig struct {
	Path string
}

type KubernetesConfig struct {
	InCluster      bool
	KubeConfigPath string
	Namespace      string
	ConfigMap      string
	Key            string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type SessionConfig struct {
	TTL           time.Duration
	SweepInterval time.Duration
}

type I18nConfig struct {
	DefaultLang string
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")

	v.SetDefault("CATALOG_SOURCE", "static")
	v.SetDefault("CATALOG_FILE", "catalog.yaml")
	v.SetDefault("MEDIA_ROOT", "./media")
	v.SetDefault("MEDIA_URL_PREFIX", "/media")

	v.SetDefault("PROBE_TIMEOUT", "5s")
	v.SetDefault("PROBE_CONCURRENCY", 8)
	v.SetDefault("PROBE_MAX_BYTES", 10<<20)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "portfolio")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 2)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "30m")

	v.SetDefault("SQLITE_PATH", "portfolio.db")

	v.SetDefault("K8S_IN_CLUSTER", false)
	v.SetDefault("K8S_KUBECONFIG", "")
	v.SetDefault("K8S_NAMESPACE", "default")
	v.SetDefault("K8S_CONFIGMAP", "portfolio-catalog")
	v.SetDefault("K8S_CONFIGMAP_KEY", "catalog.yaml")

	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("SESSION_TTL", "30m")
	v.SetDefault("SESSION_SWEEP_INTERVAL", "1m")
	v.SetDefault("I18N_DEFAULT_LANG", "en")

	// Env
	v.AutomaticEnv()

	source := strings.ToLower(v.GetString("CATALOG_SOURCE"))
	switch source {
	case "static", "file", "postgres", "sqlite", "configmap":
	default:
		return nil, fmt.Errorf("invalid CATALOG_SOURCE %q", source)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
		Catalog: CatalogConfig{
			Source: source,
			File:   v.GetString("CATALOG_FILE"),
		},
		Media: MediaConfig{
			Root:      v.GetString("MEDIA_ROOT"),
			URLPrefix: v.GetString("MEDIA_URL_PREFIX"),
		},
		Probe: ProbeConfig{
			Timeout:     duration(v, "PROBE_TIMEOUT", 5*time.Second),
			Concurrency: v.GetInt("PROBE_CONCURRENCY"),
			MaxBytes:    v.GetInt64("PROBE_MAX_BYTES"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			Name:            v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: duration(v, "DB_CONN_MAX_LIFETIME", 30*time.Minute),
		},
		SQLite: SQLiteConfig{
			Path: v.GetString("SQLITE_PATH"),
		},
		Kubernetes: KubernetesConfig{
			InCluster:      v.GetBool("K8S_IN_CLUSTER"),
			KubeConfigPath: v.GetString("K8S_KUBECONFIG"),
			Namespace:      v.GetString("K8S_NAMESPACE"),
			ConfigMap:      v.GetString("K8S_CONFIGMAP"),
			Key:            v.GetString("K8S_CONFIGMAP_KEY"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Session: SessionConfig{
			TTL:           duration(v, "SESSION_TTL", 30*time.Minute),
			SweepInterval: duration(v, "SESSION_SWEEP_INTERVAL", time.Minute),
		},
		I18n: I18nConfig{
			DefaultLang: v.GetString("I18N_DEFAULT_LANG"),
		},
	}

	return cfg, nil
}

func duration(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil || d < 0 {
		return fallback
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
