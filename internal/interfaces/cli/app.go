// Package cli implements the dfictl command tree.
package cli

import (
	"context"

	goredis "github.com/redis/go-redis/v9"

	appsvc "github.com/nutrirx/DrugFood-Intelligence/internal/application/interaction"
	"github.com/nutrirx/DrugFood-Intelligence/internal/config"
	redisdb "github.com/nutrirx/DrugFood-Intelligence/internal/infrastructure/database/redis"
	"github.com/nutrirx/DrugFood-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/nutrirx/DrugFood-Intelligence/internal/infrastructure/monitoring/prometheus"
	"github.com/nutrirx/DrugFood-Intelligence/internal/infrastructure/sources/cactus"
	"github.com/nutrirx/DrugFood-Intelligence/internal/infrastructure/sources/usda"
	"github.com/nutrirx/DrugFood-Intelligence/internal/infrastructure/storage"
	intelligence "github.com/nutrirx/DrugFood-Intelligence/internal/intelligence/interaction"
)

// App bundles everything a command needs after bootstrapping.
type App struct {
	Config  *config.Config
	Log     logging.Logger
	Service *appsvc.Service
	Metrics *prometheus.Metrics

	redisClient *goredis.Client
}

// Close releases connections held by the app.
func (a *App) Close() {
	if a.redisClient != nil {
		_ = a.redisClient.Close()
	}
}

// newArtifactStore selects the artifact backend from config.
func newArtifactStore(ctx context.Context, cfg *config.Config) (storage.ArtifactStore, error) {
	if cfg.Model.Source == "minio" {
		return storage.NewMinIOStore(ctx, storage.MinIOOptions{
			Endpoint:  cfg.Model.MinIO.Endpoint,
			AccessKey: cfg.Model.MinIO.AccessKey,
			SecretKey: cfg.Model.MinIO.SecretKey,
			Bucket:    cfg.Model.MinIO.Bucket,
			UseSSL:    cfg.Model.MinIO.UseSSL,
		})
	}
	return storage.NewLocalStore(cfg.Model.Dir), nil
}

// Bootstrap loads config, builds the logger and wires the full service
// graph.  A missing or invalid model bundle is logged and the service runs
// in fallback-only mode; it is never fatal.
func Bootstrap(ctx context.Context, configPath string, withMetrics bool) (*App, error) {
	var cfg *config.Config
	var err error
	if configPath == "" {
		cfg, err = config.LoadFromEnv()
	} else {
		cfg, err = config.Load(configPath)
	}
	if err != nil {
		return nil, err
	}

	log, err := logging.NewLogger(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return nil, err
	}
	logging.SetDefault(log)

	var metrics *prometheus.Metrics
	if withMetrics {
		metrics = prometheus.New()
	}

	app := &App{Config: cfg, Log: log, Metrics: metrics}

	var cache *redisdb.Cache
	if cfg.Redis.Enabled {
		client, err := redisdb.NewClient(ctx, redisdb.ClientConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			// degrade to uncached operation rather than failing startup
			log.Warn("cache unavailable, continuing without it", logging.Err(err))
		} else {
			app.redisClient = client
			var obs redisdb.Observer
			if metrics != nil {
				obs = metrics
			}
			cache = redisdb.NewCache(client, cfg.Redis.Prefix, cfg.Redis.TTL, log, obs)
		}
	}

	var bundle *intelligence.ClassifierBundle
	store, err := newArtifactStore(ctx, cfg)
	if err != nil {
		log.Warn("artifact store unavailable, predictions will use fallback", logging.Err(err))
	} else if bundle, err = intelligence.LoadBundle(ctx, store); err != nil {
		log.Warn("classifier bundle load failed, predictions will use fallback", logging.Err(err))
		bundle = nil
	} else {
		log.Info("classifier bundle loaded", logging.Int("features", bundle.NumFeatures()))
	}

	predictor := intelligence.NewPredictor(
		intelligence.NewClassifier(bundle),
		intelligence.NewFallbackScorer(cfg.Fallback.OverrideProbability),
		log,
	)

	resolver := cactus.NewClient(cactus.Options{
		BaseURL: cfg.Sources.Cactus.BaseURL,
		Timeout: cfg.Sources.Cactus.Timeout,
		Logger:  log,
	})
	foods := usda.NewClient(usda.Options{
		BaseURL: cfg.Sources.USDA.BaseURL,
		APIKey:  cfg.Sources.USDA.APIKey,
		Timeout: cfg.Sources.USDA.Timeout,
		Logger:  log,
	})

	app.Service = appsvc.NewService(resolver, foods, cache, predictor, metrics, log)
	return app, nil
}
