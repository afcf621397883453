package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Cache drivers accepted by CACHE_DRIVER.
const (
	CacheDriverBadger = "badger"
	CacheDriverSQLite = "sqlite"
	CacheDriverMemory = "memory"
)

type Config struct {
	Server ServerConfig
	Cache  CacheConfig
	Remote RemoteConfig
	JWT    JWTConfig
}

type ServerConfig struct {
	AppEnv   string
	HTTPPort int
	LogMode  string
}

type CacheConfig struct {
	Driver string
	Path   string
}

// RemoteConfig describes the DynamoDB backend. When Enabled is false the
// service runs local-only.
type RemoteConfig struct {
	Enabled         bool
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
	Tables          TableNames
}

type TableNames struct {
	Clients           string
	Constructions     string
	Offers            string
	CalendarEvents    string
	RateTable         string
	CompanySettings   string
	TransportSettings string
}

type JWTConfig struct {
	Secret string
}

// Load reads configuration from the environment (and .env, when autoloaded
// by the caller), applying defaults suited for local development.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{
		Server: ServerConfig{
			AppEnv:   v.GetString("APP_ENV"),
			HTTPPort: v.GetInt("HTTP_PORT"),
			LogMode:  v.GetString("LOG_MODE"),
		},
		Cache: CacheConfig{
			Driver: strings.ToLower(strings.TrimSpace(v.GetString("CACHE_DRIVER"))),
			Path:   v.GetString("CACHE_PATH"),
		},
		Remote: RemoteConfig{
			Enabled:         v.GetBool("REMOTE_ENABLED"),
			Region:          v.GetString("AWS_REGION"),
			AccessKeyID:     v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
			Endpoint:        v.GetString("DYNAMODB_ENDPOINT"),
			Tables: TableNames{
				Clients:           v.GetString("CLIENTS_TABLE"),
				Constructions:     v.GetString("CONSTRUCTIONS_TABLE"),
				Offers:            v.GetString("OFFERS_TABLE"),
				CalendarEvents:    v.GetString("CALENDAR_EVENTS_TABLE"),
				RateTable:         v.GetString("RATE_TABLE_TABLE"),
				CompanySettings:   v.GetString("COMPANY_SETTINGS_TABLE"),
				TransportSettings: v.GetString("TRANSPORT_SETTINGS_TABLE"),
			},
		},
		JWT: JWTConfig{
			Secret: v.GetString("JWT_SECRET"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Cache.Driver {
	case CacheDriverBadger, CacheDriverSQLite:
		if strings.TrimSpace(c.Cache.Path) == "" {
			return fmt.Errorf("CACHE_PATH is required for cache driver %q", c.Cache.Driver)
		}
	case CacheDriverMemory:
	default:
		return fmt.Errorf("unsupported CACHE_DRIVER %q", c.Cache.Driver)
	}
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP_PORT %d", c.Server.HTTPPort)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "dev")
	v.SetDefault("HTTP_PORT", 8080)
	v.SetDefault("LOG_MODE", "dev")

	v.SetDefault("CACHE_DRIVER", CacheDriverBadger)
	v.SetDefault("CACHE_PATH", "./data/cache")

	v.SetDefault("REMOTE_ENABLED", true)
	v.SetDefault("AWS_REGION", "us-east-1")
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")

	v.SetDefault("CLIENTS_TABLE", "clients")
	v.SetDefault("CONSTRUCTIONS_TABLE", "constructions")
	v.SetDefault("OFFERS_TABLE", "offers")
	v.SetDefault("CALENDAR_EVENTS_TABLE", "calendar_events")
	v.SetDefault("RATE_TABLE_TABLE", "rate_tables")
	v.SetDefault("COMPANY_SETTINGS_TABLE", "company_settings")
	v.SetDefault("TRANSPORT_SETTINGS_TABLE", "transport_settings")

	v.SetDefault("JWT_SECRET", "")
}
