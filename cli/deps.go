package cli

import (
	"context"
	"os"

	"github.com/goto/lineage/core/lineage"
	"github.com/goto/lineage/internal/client"
	"github.com/goto/lineage/internal/store/postgres"
	"github.com/goto/lineage/pkg/statsd"
	"github.com/goto/lineage/pkg/telemetry"
	"github.com/goto/salt/log"
)

func initLogger(logLevel string) *log.Logrus {
	return log.NewLogrus(
		log.LogrusWithLevel(logLevel),
		log.LogrusWithWriter(os.Stderr),
	)
}

// newLineageService wires the catalog client and, when withSnapshots is set,
// the postgres snapshot store. The returned cleanup must always be called.
func newLineageService(ctx context.Context, cfg *Config, withSnapshots bool) (*lineage.Service, func(), error) {
	logger := initLogger(cfg.LogLevel)

	telemetryCfg := cfg.Telemetry
	telemetryCfg.AppVersion = Version
	shutdownTelemetry, err := telemetry.Init(ctx, telemetryCfg, logger)
	if err != nil {
		return nil, nil, err
	}
	cleanups := []func(){shutdownTelemetry}
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	reporter, err := statsd.Init(logger, cfg.StatsD)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	cleanups = append(cleanups, func() { _ = reporter.Close() })

	clnt, err := client.New(cfg.Client,
		client.WithLogger(logger),
		client.WithStatsDReporter(reporter),
	)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	deps := lineage.ServiceDeps{Transport: clnt}
	if withSnapshots {
		if cfg.DB.Host == "" {
			cleanup()
			return nil, nil, errSnapshotsDisabled
		}
		pgClient, err := postgres.NewClient(cfg.DB)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		cleanups = append(cleanups, func() { _ = pgClient.Close() })

		repo, err := postgres.NewSnapshotRepository(pgClient)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		deps.SnapshotRepo = repo
	}

	return lineage.NewService(deps), cleanup, nil
}
