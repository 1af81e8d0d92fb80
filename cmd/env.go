package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/blaezi/blaezi/internal/config"
	"github.com/blaezi/blaezi/internal/dashboard"
	"github.com/blaezi/blaezi/internal/history"
	"github.com/blaezi/blaezi/internal/kvstore"
	"github.com/blaezi/blaezi/internal/logger"
	"github.com/blaezi/blaezi/internal/metrics"
	"github.com/blaezi/blaezi/internal/store"
)

// env is the set of dependencies a command runs with.
type env struct {
	cfg     *config.Config
	log     *logger.Logger
	store   *store.Store
	history *history.Store
	metrics *metrics.Metrics

	closers []io.Closer
}

// openEnv loads config, opens the store and the history backend.
func openEnv(cmd *cobra.Command) (*env, error) {
	e, err := openRecordEnv(cmd)
	if err != nil {
		return nil, err
	}

	kv, err := e.openHistoryKV(cmd.Context())
	if err != nil {
		e.Close()
		return nil, err
	}
	e.history = history.NewStore(kv,
		history.WithRetention(e.cfg.History.Retention),
		history.WithLogger(e.log.With("component", "history")),
	)

	e.log.Debug("history ready", "backend", e.cfg.Storage.Backend)
	return e, nil
}

// openRecordEnv loads config and opens the record store. Commands that only
// edit records use it directly so an unreachable history backend does not
// block them.
func openRecordEnv(cmd *cobra.Command) (*env, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log.Mode, cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	e := &env{cfg: cfg, log: log.With("command", cmd.CommandPath()), store: st, metrics: metrics.New()}
	e.closers = append(e.closers, st)

	e.log.Debug("store ready", "db", dbPath)
	return e, nil
}

func (e *env) openHistoryKV(ctx context.Context) (history.KV, error) {
	s := e.cfg.Storage
	switch s.Backend {
	case config.BackendRedis:
		r, err := kvstore.NewRedis(ctx, kvstore.RedisConfig{
			Address:  s.RedisAddr,
			Password: s.RedisPassword,
			DB:       s.RedisDB,
			Prefix:   s.RedisPrefix,
		})
		if err != nil {
			return nil, err
		}
		e.closers = append(e.closers, r)
		return r, nil
	case config.BackendPostgres:
		p, err := kvstore.NewPostgres(ctx, s.PostgresDSN)
		if err != nil {
			return nil, err
		}
		e.closers = append(e.closers, p)
		return p, nil
	case config.BackendMemory:
		return kvstore.NewMemory(), nil
	default:
		return e.store.KV(), nil
	}
}

func (e *env) dashboardService() *dashboard.Service {
	return dashboard.NewService(e.history,
		dashboard.WithMetrics(e.metrics),
		dashboard.WithHealthPolicy(e.cfg.Health),
		dashboard.WithLogger(e.log),
	)
}

// compute loads every record and runs the dashboard pipeline.
func (e *env) compute(ctx context.Context) (*dashboard.Dashboard, error) {
	rec, err := dashboard.LoadRecords(ctx, e.store)
	if err != nil {
		return nil, err
	}
	return e.dashboardService().Compute(ctx, rec)
}

// Close releases backends in reverse order of opening.
func (e *env) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i].Close(); err != nil {
			e.log.Error("close failed", "error", err)
		}
	}
	e.log.Sync()
}
