// cmd/dashboard/main.go
package main

import (
	"context"
	"io"
	"log"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/David-Botos/consultant-insights/pkg/config"
	"github.com/David-Botos/consultant-insights/pkg/connector"
	"github.com/David-Botos/consultant-insights/pkg/dashboard"
	apperrors "github.com/David-Botos/consultant-insights/pkg/errors"
	"github.com/David-Botos/consultant-insights/pkg/query"
)

func loadConfig() (*config.Config, error) {
	return config.LoadConfig("")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	var zcfg zap.Config
	if cfg.LogFormat == "console" {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zcfg.Build()
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}

func newManager(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) *connector.Manager {
	manager := connector.NewManager(cfg.Database, logger)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return manager.Disconnect()
		},
	})
	return manager
}

func newExecutor(manager *connector.Manager, cfg *config.Config, logger *zap.Logger) *query.Executor {
	return query.NewExecutor(manager, cfg.Database.QueryTimeout, logger)
}

func newMetrics() (*dashboard.Metrics, error) {
	return dashboard.NewMetrics(prometheus.DefaultRegisterer)
}

func newLoader(executor *query.Executor, metrics *dashboard.Metrics, logger *zap.Logger) *dashboard.Loader {
	return dashboard.NewLoader(executor, metrics, logger)
}

// writeSnapshot loads the dashboard once and writes it to out
func writeSnapshot(ctx context.Context, loader *dashboard.Loader, out io.Writer) error {
	snapshot, err := loader.Load(ctx)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(snapshot)
}

var exit = os.Exit

// exitWithError logs err with its kind and exits non-zero
func exitWithError(logger *zap.Logger, msg string, err error) {
	logger.Error(msg,
		zap.String("kind", apperrors.KindOf(err).String()),
		zap.Error(err))
	_ = logger.Sync()
	exit(1)
}

func main() {
	var logger *zap.Logger
	app := fx.New(
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),
		fx.Provide(
			loadConfig,
			newLogger,
			newManager,
			newExecutor,
			newMetrics,
			newLoader,
		),
		fx.Populate(&logger),
		fx.Invoke(
			func(lc fx.Lifecycle, loader *dashboard.Loader) {
				lc.Append(fx.Hook{
					OnStart: func(ctx context.Context) error {
						return writeSnapshot(ctx, loader, os.Stdout)
					},
				})
			},
		),
		fx.StartTimeout(2*time.Minute),
	)
	if err := app.Err(); err != nil {
		// no logger yet when config or logger construction fails
		log.Fatalf("dashboard setup failed (%s): %v", apperrors.KindOf(err), err)
	}

	startCtx, cancel := context.WithTimeout(context.Background(), app.StartTimeout())
	err := app.Start(startCtx)
	cancel()
	if err != nil {
		exitWithError(logger, "dashboard load failed", err)
	}

	stopCtx, cancelStop := context.WithTimeout(context.Background(), app.StopTimeout())
	err = app.Stop(stopCtx)
	cancelStop()
	if err != nil {
		exitWithError(logger, "dashboard shutdown failed", err)
	}
	_ = logger.Sync()
}
