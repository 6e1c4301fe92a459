package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"store-locator-service/internal/adapters/cache"
	"store-locator-service/internal/adapters/carrier"
	"store-locator-service/internal/adapters/maps"
	"store-locator-service/internal/adapters/postal"
	"store-locator-service/internal/adapters/repositories"
	"store-locator-service/internal/api"
	"store-locator-service/internal/config"
	"store-locator-service/internal/platform/db"
	"store-locator-service/internal/platform/obs"
	"store-locator-service/internal/ports"
	"store-locator-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, ViaCEP, Google Maps, Melhor Envio,
// Redis) behind ports and starts the HTTP server. Missing credentials are
// fatal here; no provider key is ever read per-request.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatal(err)
	}

	if err := obs.Init(cfg.LogLevel); err != nil {
		log.Fatal(err)
	}
	defer obs.Sync()
	logger := obs.Logger()

	database, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal(err)
	}
	defer database.Close()

	repo := repositories.NewPostgresStoreRepository(database)

	viaCEP := postal.NewViaCEPClient(cfg.Providers.ViaCEPBaseURL, cfg.Providers.Timeout)

	google, err := maps.NewGoogleClient(cfg.Providers.GoogleAPIKey, cfg.Providers.GoogleBaseURL, cfg.Providers.Timeout)
	if err != nil {
		logger.Fatal(err)
	}

	melhorEnvio, err := carrier.NewMelhorEnvioClient(cfg.Providers.MelhorEnvioToken, cfg.Providers.MelhorEnvioURL, cfg.Providers.Timeout)
	if err != nil {
		logger.Fatal(err)
	}

	// The geocode cache is optional: without a Redis address every
	// request re-runs the full pipeline.
	var geocodeCache ports.GeocodeCache
	if cfg.Cache.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Cache.RedisAddr})
		geocodeCache = cache.NewRedisGeocodeCache(rdb, cfg.Cache.TTL)
		logger.Infow("geocode cache enabled", "addr", cfg.Cache.RedisAddr, "ttl", cfg.Cache.TTL)
	}

	locator := services.NewStoreLocator(repo, viaCEP, google, google, melhorEnvio, geocodeCache, services.LocatorConfig{
		CatalogRadiusKm:     cfg.Locator.CatalogRadiusKm,
		LocalDeliveryMaxKm:  cfg.Locator.LocalDeliveryMaxKm,
		LocalDeliveryPrice:  cfg.Locator.LocalDeliveryPrice,
		DistanceConcurrency: cfg.Locator.DistanceConcurrency,
		ProviderTimeout:     cfg.Providers.Timeout,
	})
	catalog := services.NewStoreCatalog(repo)

	router := api.NewRouter(locator, catalog)

	// Timeouts are tuned for cold-cache locates (external API latency).
	logger.Infow("server listening", "addr", ":"+cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	logger.Fatal(srv.ListenAndServe())
}
