package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"store-locator-service/internal/domain"
)

type ProvidersConfig struct {
	GoogleAPIKey     string
	MelhorEnvioToken string
	ViaCEPBaseURL    string
	GoogleBaseURL    string
	MelhorEnvioURL   string
	Timeout          time.Duration
}

type LocatorConfig struct {
	CatalogRadiusKm     float64
	LocalDeliveryMaxKm  float64
	LocalDeliveryPrice  float64
	DistanceConcurrency int
}

type CacheConfig struct {
	RedisAddr string
	TTL       time.Duration
}

type Config struct {
	Port        string
	DatabaseURL string
	SeedPath    string
	LogLevel    string
	Providers   ProvidersConfig
	Locator     LocatorConfig
	Cache       CacheConfig
}

// Load reads configuration from an optional yaml file plus environment
// variables (env wins). Provider credentials are validated here, once, so
// a missing key is fatal at boot rather than surfacing per-request.
func Load(configFilePath string) (*Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFilePath != "" {
		v.SetConfigFile(configFilePath)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config file %s", configFilePath)
		}
	}

	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("seed.path", "data/seeds/stores.json")
	v.SetDefault("providers.viacep.url", "https://viacep.com.br")
	v.SetDefault("providers.google.url", "https://maps.googleapis.com")
	v.SetDefault("providers.melhorenvio.url", "https://www.melhorenvio.com.br")
	v.SetDefault("providers.timeout_ms", 10000)
	v.SetDefault("locator.catalog_radius_km", 0.0)
	v.SetDefault("locator.local_delivery_max_km", 50.0)
	v.SetDefault("locator.local_delivery_price", 15.0)
	v.SetDefault("locator.distance_concurrency", 10)
	v.SetDefault("cache.ttl_ms", 15*60*1000)

	bindings := map[string]string{
		"port":                        "PORT",
		"database.url":                "DATABASE_URL",
		"providers.google.key":        "GOOGLE_API_KEY",
		"providers.melhorenvio.token": "MELHOR_ENVIO_TOKEN",
		"cache.redis_addr":            "REDIS_ADDR",
		"log.level":                   "LOG_LEVEL",
		"seed.path":                   "SEED_PATH",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, errors.Wrapf(err, "bind env %s", env)
		}
	}

	cfg := &Config{
		Port:        v.GetString("port"),
		DatabaseURL: v.GetString("database.url"),
		SeedPath:    v.GetString("seed.path"),
		LogLevel:    v.GetString("log.level"),
		Providers: ProvidersConfig{
			GoogleAPIKey:     v.GetString("providers.google.key"),
			MelhorEnvioToken: v.GetString("providers.melhorenvio.token"),
			ViaCEPBaseURL:    v.GetString("providers.viacep.url"),
			GoogleBaseURL:    v.GetString("providers.google.url"),
			MelhorEnvioURL:   v.GetString("providers.melhorenvio.url"),
			Timeout:          time.Duration(v.GetInt("providers.timeout_ms")) * time.Millisecond,
		},
		Locator: LocatorConfig{
			CatalogRadiusKm:     v.GetFloat64("locator.catalog_radius_km"),
			LocalDeliveryMaxKm:  v.GetFloat64("locator.local_delivery_max_km"),
			LocalDeliveryPrice:  v.GetFloat64("locator.local_delivery_price"),
			DistanceConcurrency: v.GetInt("locator.distance_concurrency"),
		},
		Cache: CacheConfig{
			RedisAddr: v.GetString("cache.redis_addr"),
			TTL:       time.Duration(v.GetInt("cache.ttl_ms")) * time.Millisecond,
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return domain.ConfigError("DATABASE_URL is required")
	}
	if strings.TrimSpace(c.Providers.GoogleAPIKey) == "" {
		return domain.ConfigError("GOOGLE_API_KEY is required")
	}
	if strings.TrimSpace(c.Providers.MelhorEnvioToken) == "" {
		return domain.ConfigError("MELHOR_ENVIO_TOKEN is required")
	}
	if c.Locator.DistanceConcurrency < 1 {
		return domain.ConfigError("locator.distance_concurrency must be at least 1")
	}
	if c.Locator.CatalogRadiusKm > 0 && c.Locator.LocalDeliveryMaxKm > c.Locator.CatalogRadiusKm {
		return domain.ConfigError("locator.local_delivery_max_km must not exceed locator.catalog_radius_km")
	}
	return nil
}
