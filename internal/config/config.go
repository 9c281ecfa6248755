package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	HTTPAddr           string
	Storage            string
	AutoMigrate        bool
	Postgres           PostgresConfig
	JWTSecret          string
	SessionTTL         time.Duration
	CookieDomain       string
	CookieSecure       bool
	CORSAllowedOrigins []string
	GeminiAPIKey       string
	GeminiTextModel    string
	GeminiImageModel   string
	AITimeout          time.Duration
	ViewCacheTTL       time.Duration
}

type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DB       string
	SSLMode  string
}

func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.DB, p.SSLMode)
}

var defaults = map[string]any{
	"HTTP_ADDR":            "0.0.0.0:8080",
	"STORAGE":              StoragePostgres,
	"AUTO_MIGRATE":         false,
	"POSTGRES_HOST":        "localhost",
	"POSTGRES_PORT":        "5432",
	"POSTGRES_USER":        "postgres",
	"POSTGRES_DB":          "wevote",
	"POSTGRES_SSLMODE":     "disable",
	"SESSION_TTL":          "24h",
	"COOKIE_SECURE":        false,
	"CORS_ALLOWED_ORIGINS": "*",
	"GEMINI_TEXT_MODEL":    "gemini-2.0-flash",
	"GEMINI_IMAGE_MODEL":   "gemini-2.0-flash-exp",
	"AI_TIMEOUT":           "20s",
	"VIEW_CACHE_TTL":       "30s",
}

// Loader reads settings from the environment, an optional .env file and
// <KEY>_FILE secret files, in that order of precedence for secrets.
type Loader struct {
	v *viper.Viper
}

func NewLoader() *Loader {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	return &Loader{v: v}
}

// Load reads .env files when present and builds the configuration.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}
	return NewLoader().Config()
}

func (l *Loader) Get(key string) string {
	filename := l.v.GetString(key + "_FILE")
	if filename == "" {
		return l.v.GetString(key)
	}
	val, err := readSecret(filename)
	if err != nil {
		slog.Error("error reading secret", "key", key, "error", err)
		return l.v.GetString(key)
	}
	return val
}

func (l *Loader) Config() (*Config, error) {
	cfg := &Config{
		HTTPAddr:     l.Get("HTTP_ADDR"),
		Storage:      strings.ToLower(l.Get("STORAGE")),
		AutoMigrate:  cast.ToBool(l.Get("AUTO_MIGRATE")),
		JWTSecret:    l.Get("JWT_SECRET"),
		CookieDomain: l.Get("COOKIE_DOMAIN"),
		CookieSecure: cast.ToBool(l.Get("COOKIE_SECURE")),
		Postgres: PostgresConfig{
			Host:     l.Get("POSTGRES_HOST"),
			Port:     l.Get("POSTGRES_PORT"),
			User:     l.Get("POSTGRES_USER"),
			Password: l.Get("POSTGRES_PASSWORD"),
			DB:       l.Get("POSTGRES_DB"),
			SSLMode:  l.Get("POSTGRES_SSLMODE"),
		},
		CORSAllowedOrigins: splitList(l.Get("CORS_ALLOWED_ORIGINS")),
		GeminiAPIKey:       l.Get("GEMINI_API_KEY"),
		GeminiTextModel:    l.Get("GEMINI_TEXT_MODEL"),
		GeminiImageModel:   l.Get("GEMINI_IMAGE_MODEL"),
	}

	var err error
	if cfg.SessionTTL, err = l.duration("SESSION_TTL"); err != nil {
		return nil, err
	}
	if cfg.AITimeout, err = l.duration("AI_TIMEOUT"); err != nil {
		return nil, err
	}
	if cfg.ViewCacheTTL, err = l.duration("VIEW_CACHE_TTL"); err != nil {
		return nil, err
	}

	switch cfg.Storage {
	case StorageMemory, StoragePostgres:
	default:
		return nil, fmt.Errorf("unsupported STORAGE %q", cfg.Storage)
	}
	return cfg, nil
}

func (l *Loader) duration(key string) (time.Duration, error) {
	d, err := cast.ToDurationE(l.Get(key))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func readSecret(file string) (string, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
