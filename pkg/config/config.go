package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config groups the application configuration (read via Viper from env vars
// and optionally a file).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	JWT     JWTConfig
	Admin   AdminConfig
	Storage StorageConfig
}

// AppConfig general application settings.
type AppConfig struct {
	Env       string // development, staging, production
	Name      string
	HomeState string // seller's GST state; decides intra- vs inter-state tax
}

// HTTPConfig HTTP server settings.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr returns the listen address (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig session token settings.
type JWTConfig struct {
	Secret     string
	Expiration int // minutes
	Issuer     string
}

// AdminConfig the single operator credential. Defaults match the shipped
// demo login; override both in any real deployment.
type AdminConfig struct {
	Email    string
	Password string
	Name     string
}

// StorageConfig local snapshot persistence.
type StorageConfig struct {
	Dir           string
	FlushInterval time.Duration
}

// Load reads configuration from environment variables (and optionally a
// .env / config.env file). Env vars win. Expected names: APP_ENV,
// HTTP_PORT, JWT_SECRET, ADMIN_EMAIL, STORAGE_DIR, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Optional config file (.env or config.env); missing files are fine.
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:       getString(v, "APP_ENV", "development"),
			Name:      getString(v, "APP_NAME", "inventrack-api"),
			HomeState: getString(v, "APP_HOME_STATE", "Maharashtra"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "inventrack-api"),
		},
		Admin: AdminConfig{
			Email:    getString(v, "ADMIN_EMAIL", "admin@inventrax.com"),
			Password: getString(v, "ADMIN_PASSWORD", "admin123"),
			Name:     getString(v, "ADMIN_NAME", "Admin User"),
		},
		Storage: StorageConfig{
			Dir:           getString(v, "STORAGE_DIR", "./data"),
			FlushInterval: time.Duration(getInt(v, "STORAGE_FLUSH_SECONDS", 5)) * time.Second,
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
