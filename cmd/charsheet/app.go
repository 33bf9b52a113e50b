package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-charsheet/internal/config"
	"github.com/KirkDiggler/rpg-charsheet/internal/entities"
	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
	"github.com/KirkDiggler/rpg-charsheet/internal/orchestrators/roster"
	"github.com/KirkDiggler/rpg-charsheet/internal/redis"
	rosterrepo "github.com/KirkDiggler/rpg-charsheet/internal/repositories/roster"
	"github.com/KirkDiggler/rpg-charsheet/internal/transfer"
)

const redisPingTimeout = 2 * time.Second

// closeFunc flushes pending durable writes and releases the stores
type closeFunc func(ctx context.Context) error

// serviceFactory opens the roster service for a single command
var serviceFactory = openService

// runWithService opens the service, loads the roster, runs fn and always
// flushes the durable store before returning
func runWithService(cmd *cobra.Command, fn func(ctx context.Context, svc roster.Service) error) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(requestTimeoutS)*time.Second)
	defer cancel()

	svc, closeFn, err := serviceFactory(ctx, cmd)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeFn(ctx); err != nil {
			slog.WarnContext(ctx, "failed to close stores", "error", err)
		}
	}()

	if _, err := svc.Load(ctx, &roster.LoadInput{}); err != nil {
		return err
	}
	return fn(ctx, svc)
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if primaryBackend != "" {
		cfg.Primary.Backend = primaryBackend
	}
	if redisAddr != "" {
		cfg.Primary.RedisAddr = redisAddr
	}
	if sqlitePath != "" {
		cfg.Durable.SQLitePath = sqlitePath
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

func setupLogger(cfg config.LogConfig, w io.Writer) {
	level, err := cfg.SlogLevel()
	if err != nil {
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func openService(ctx context.Context, cmd *cobra.Command) (roster.Service, closeFunc, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	setupLogger(cfg.Log, cmd.ErrOrStderr())

	var closers []func() error
	primary, err := openPrimary(ctx, cfg.Primary, &closers)
	if err != nil {
		return nil, nil, err
	}

	durable, err := openDurable(ctx, cfg.Durable)
	if err != nil {
		closeAll(closers)
		return nil, nil, err
	}
	closers = append(closers, durable.Close)

	seed, err := loadSeed(cfg.SeedFile)
	if err != nil {
		closeAll(closers)
		return nil, nil, err
	}

	repo, err := rosterrepo.NewTiered(&rosterrepo.TieredConfig{
		Primary: primary,
		Durable: durable,
		Seed:    seed,
		Closers: closers,
	})
	if err != nil {
		closeAll(closers)
		return nil, nil, errors.Wrap(err, "failed to create roster repository")
	}

	svc, err := roster.NewOrchestrator(&roster.Config{
		Repository: repo,
		Resolver: transfer.NewInliner(&transfer.InlinerConfig{
			HTTPClient: &http.Client{Timeout: cfg.Export.FetchTimeout},
			AssetDir:   cfg.Export.AssetDir,
		}),
		Render: func(c *entities.Character) {
			if c == nil {
				slog.DebugContext(ctx, "no character selected")
				return
			}
			slog.DebugContext(ctx, "selected character changed", "character_id", c.ID)
		},
	})
	if err != nil {
		_ = repo.Close()
		return nil, nil, err
	}

	return svc, func(ctx context.Context) error {
		if err := repo.Flush(ctx); err != nil {
			slog.WarnContext(ctx, "durable writes did not finish", "error", err)
		}
		return repo.Close()
	}, nil
}

func openPrimary(ctx context.Context, cfg config.PrimaryConfig, closers *[]func() error) (rosterrepo.Store, error) {
	if cfg.Backend != config.BackendRedis {
		return rosterrepo.NewMemoryStore(cfg.QuotaBytes), nil
	}

	client, err := redis.NewClient(cfg.RedisAddr, &redis.Options{
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to create redis client")
	}
	if err := redis.Ping(ctx, client, redisPingTimeout); err != nil {
		// an unreachable primary is tolerated: reads fall back to the durable store
		slog.WarnContext(ctx, "redis is not reachable", "addr", cfg.RedisAddr, "error", err)
	}
	*closers = append(*closers, client.Close)

	return rosterrepo.NewRedisStore(&rosterrepo.RedisStoreConfig{
		Client:        client,
		Namespace:     cfg.Namespace,
		MaxValueBytes: cfg.QuotaBytes,
	})
}

func openDurable(ctx context.Context, cfg config.DurableConfig) (*rosterrepo.SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0o750); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to create database directory")
	}
	return rosterrepo.OpenSQLiteStore(ctx, &rosterrepo.SQLiteStoreConfig{Path: cfg.SQLitePath})
}

func loadSeed(path string) (rosterrepo.SeedFunc, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeNotFound, "failed to read seed file")
	}
	characters, err := rosterrepo.SeedFromYAML(data)
	if err != nil {
		return nil, err
	}
	return func() []*entities.Character { return characters }, nil
}

func closeAll(closers []func() error) {
	for _, c := range closers {
		_ = c()
	}
}
